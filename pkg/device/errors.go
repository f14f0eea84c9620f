package device

import "errors"

var (
	// ErrUnknownCategory is returned when a label does not name any Category.
	ErrUnknownCategory = errors.New("unknown device category")

	// ErrInvalidKeywords is returned when a keyword document cannot be decoded.
	ErrInvalidKeywords = errors.New("invalid keyword configuration")

	// ErrKeywordsFile is returned when a keyword file cannot be opened.
	ErrKeywordsFile = errors.New("failed to open keyword file")
)
