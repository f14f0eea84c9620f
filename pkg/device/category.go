package device

import "strings"

// Category is the coarse device class a client is sorted into.
type Category uint8

// Device categories. Other is the zero value so an unset Category never
// claims a concrete device class.
const (
	Other Category = iota
	Mobile
	Desktop
	Tablet
	TV
	Robot
)

var categoryLabels = [...]string{
	Other:   "other",
	Mobile:  "mobile",
	Desktop: "desktop",
	Tablet:  "tablet",
	TV:      "TV",
	Robot:   "ROBOT",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{Other, Mobile, Desktop, Tablet, TV, Robot}
}

// String returns the canonical label. Out-of-range values print as "other".
func (c Category) String() string {
	if int(c) >= len(categoryLabels) {
		return categoryLabels[Other]
	}
	return categoryLabels[c]
}

// ParseCategory converts a label back into a Category. Matching ignores case,
// so "tv", "TV" and "Tv" all resolve to TV.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for i, label := range categoryLabels {
		if strings.EqualFold(label, s) {
			return Category(i), nil
		}
	}
	return Other, ErrUnknownCategory
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
