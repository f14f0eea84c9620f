package device

import (
	"log/slog"
	"strings"
)

// Detector holds a captured Record and the Category computed from it.
// The category is computed once in New and never changes afterwards.
type Detector struct {
	record   Record
	category Category
}

// New classifies record against keywords and returns the resulting Detector.
// It never fails: every record, including an empty one, maps to exactly one
// Category.
func New(record Record, keywords Keywords) *Detector {
	return keywords.matcher().detect(record)
}

// Parse is a shortcut for New(NewRecord(userAgent, "", "", ""), keywords).
func Parse(userAgent string, keywords Keywords) *Detector {
	return New(NewRecord(userAgent, "", "", ""), keywords)
}

// Classify runs the ordered rule chain over the record's product token:
//
//  1. no product token                 -> Robot
//  2. "android" anywhere in the token  -> Tablet on a Tablet keyword, else Mobile
//  3. TV keyword in the full token     -> TV
//  4. Tablet keyword in the full token -> Tablet
//  5. Mobile keyword in the full token -> Mobile
//  6. Desktop keyword before first ";" -> Desktop
//  7. anything else                    -> Other
//
// The product token is Record.Product, or the parenthetical block of
// Record.UserAgent when Product is empty. The first matching rule wins.
func Classify(record Record, keywords Keywords) Category {
	return keywords.matcher().classify(record)
}

func (m matcher) classify(record Record) Category {
	product, ok := record.product()
	if !ok {
		return Robot
	}
	full := strings.ToLower(product)

	// Android tokens put the OS after the platform ("Linux; Android 10; K"),
	// so they never fall through to the generic scan.
	if strings.Contains(full, "android") {
		if matchAny(m.tablet, full) {
			return Tablet
		}
		return Mobile
	}

	switch {
	case matchAny(m.tv, full):
		return TV
	case matchAny(m.tablet, full):
		return Tablet
	case matchAny(m.mobile, full):
		return Mobile
	case matchAny(m.desktop, primaryToken(product)):
		return Desktop
	}
	return Other
}

func (m matcher) detect(record Record) *Detector {
	if product, ok := record.product(); ok {
		record.Product = product
	}
	return &Detector{record: record, category: m.classify(record)}
}

// Type returns the cached category.
func (d *Detector) Type() Category { return d.category }

// GetMetaData returns the captured record.
func (d *Detector) GetMetaData() Record { return d.record }

// Browser returns the reported browser vendor.
func (d *Detector) Browser() string { return d.record.Vendor }

// UserAgent returns the raw identification string.
func (d *Detector) UserAgent() string { return d.record.UserAgent }

// Language returns the reported locale.
func (d *Detector) Language() string { return d.record.Language }

// Platform returns the reported platform.
func (d *Detector) Platform() string { return d.record.Platform }

// Product returns the parenthetical token block of the user agent.
func (d *Detector) Product() string { return d.record.Product }

// IsMobile reports whether the client is a phone.
func (d *Detector) IsMobile() bool { return d.category == Mobile }

// IsDesktop reports whether the client is a desktop or laptop.
func (d *Detector) IsDesktop() bool { return d.category == Desktop }

// IsTablet reports whether the client is a tablet.
func (d *Detector) IsTablet() bool { return d.category == Tablet }

// IsTV reports whether the client is a television or streaming box.
func (d *Detector) IsTV() bool { return d.category == TV }

// IsRobot reports whether the user agent had no product token.
func (d *Detector) IsRobot() bool { return d.category == Robot }

// IsOther reports whether no keyword group matched.
func (d *Detector) IsOther() bool { return d.category == Other }

// LogValue implements slog.LogValuer.
func (d *Detector) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", d.category.String()),
		slog.String("platform", d.record.Platform),
		slog.String("language", d.record.Language),
		slog.String("browser", d.record.Vendor),
		slog.String("product", d.record.Product),
	)
}
