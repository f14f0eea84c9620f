package device

import (
	"context"
	"log/slog"
)

type detectorContextKey struct{}

// WithContext stores d in ctx.
func WithContext(ctx context.Context, d *Detector) context.Context {
	return context.WithValue(ctx, detectorContextKey{}, d)
}

// FromContext returns the Detector stored by Middleware, if any.
func FromContext(ctx context.Context) (*Detector, bool) {
	if ctx == nil {
		return nil, false
	}
	d, ok := ctx.Value(detectorContextKey{}).(*Detector)
	return d, ok && d != nil
}

// LoggerExtractor returns a context extractor for the logger that adds the
// request's device category under the "device" key.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if d, ok := FromContext(ctx); ok {
			return CategoryAttr(d.Type()), true
		}
		return slog.Attr{}, false
	}
}

// CategoryAttr records a device category under the key "device".
func CategoryAttr(c Category) slog.Attr {
	return slog.String("device", c.String())
}

// Attr records the full classification of d under the key "client".
// A nil detector yields an empty Attr.
func Attr(d *Detector) slog.Attr {
	if d == nil {
		return slog.Attr{}
	}
	return slog.Any("client", d)
}
