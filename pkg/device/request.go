package device

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// Client hint headers consulted by RecordFromRequest.
const (
	HeaderPlatform = "Sec-CH-UA-Platform"
	HeaderBrands   = "Sec-CH-UA"
)

// RecordFromRequest captures the client's self-reported identification from
// an HTTP request. Missing or malformed headers leave the matching field empty.
func RecordFromRequest(r *http.Request) Record {
	return NewRecord(
		r.UserAgent(),
		strings.Trim(strings.TrimSpace(r.Header.Get(HeaderPlatform)), `"`),
		preferredLanguage(r.Header.Get("Accept-Language")),
		vendorFromBrands(r.Header.Get(HeaderBrands)),
	)
}

// preferredLanguage returns the highest-weighted tag of an Accept-Language value.
func preferredLanguage(header string) string {
	if strings.TrimSpace(header) == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return tags[0].String()
}

// vendorFromBrands picks the browser brand out of a Sec-CH-UA list, e.g.
//
//	"Chromium";v="124", "Google Chrome";v="124", "Not-A.Brand";v="99"
//
// GREASE entries are skipped and a specific brand is preferred over the
// generic "Chromium" one.
func vendorFromBrands(header string) string {
	var fallback string
	for item := range strings.SplitSeq(header, ",") {
		brand := brandName(item)
		if brand == "" || isGreaseBrand(brand) {
			continue
		}
		if strings.EqualFold(brand, "chromium") {
			fallback = brand
			continue
		}
		return brand
	}
	return fallback
}

// brandName extracts the quoted brand from a single `"Brand";v="1"` entry.
// GREASE brands may contain ";" so the quotes delimit the name, not the ";".
func brandName(item string) string {
	item = strings.TrimSpace(item)
	if rest, ok := strings.CutPrefix(item, `"`); ok {
		name, _, _ := strings.Cut(rest, `"`)
		return strings.TrimSpace(name)
	}
	name, _, _ := strings.Cut(item, ";")
	return strings.TrimSpace(name)
}

func isGreaseBrand(brand string) bool {
	lower := strings.ToLower(brand)
	return strings.Contains(lower, "not") && strings.Contains(lower, "brand")
}
