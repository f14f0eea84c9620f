// Package device sorts clients into coarse device categories by looking at
// the parenthetical block of their User-Agent string.
//
// A client is classified as one of six categories: mobile, desktop, tablet,
// TV, ROBOT or other. The rules are plain keyword membership against four
// configurable keyword groups (TV, Tablet, Mobile, Desktop). There is no
// browser or version extraction and no bot signature database; the package
// is meant for cheap branching in handlers and analytics tagging.
//
// # Classification
//
// The product token is the text between the first "(" and the following ")"
// of the user agent, e.g. "Linux; Android 10; K". Rules are evaluated in a
// fixed order and the first match wins:
//
//   - no product token: ROBOT
//   - token contains "android": tablet when a Tablet keyword matches, mobile otherwise
//   - a TV keyword anywhere in the token: TV
//   - a Tablet keyword anywhere in the token: tablet
//   - a Mobile keyword anywhere in the token: mobile
//   - a Desktop keyword in the segment before the first ";": desktop
//   - otherwise: other
//
// Matching is case-insensitive substring containment. Desktop keywords only
// look at the first segment so that "desktop-ish" words appearing later in
// the token do not produce false positives.
//
// # Usage
//
//	d := device.Parse(r.UserAgent(), device.DefaultKeywords())
//	if d.IsMobile() {
//	    // serve the compact layout
//	}
//
// In an HTTP service, Middleware captures the record once per request:
//
//	r := chi.NewRouter()
//	r.Use(device.Middleware(device.DefaultKeywords()))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    d, _ := device.FromContext(r.Context())
//	    fmt.Fprintln(w, d.Type())
//	})
//
// # Configuration
//
// Keyword groups are data. DefaultKeywords ships a reasonable set;
// LoadKeywordsFile reads a YAML document and Keywords carries env tags
// (DEVICE_TV_KEYWORDS etc.) so groups can be overridden from the environment
// with pkg/config. Merge layers one configuration over another.
package device
