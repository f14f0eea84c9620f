package device

import "strings"

// Record is a point-in-time snapshot of what a client reported about itself.
// It is captured once and never mutated. NewRecord fills Product from the
// user agent; a Record built by hand or decoded from JSON with an empty
// Product gets it derived from UserAgent during classification.
type Record struct {
	UserAgent string `json:"user_agent"`
	Platform  string `json:"platform"`
	Language  string `json:"language"`
	Vendor    string `json:"browser"`
	Product   string `json:"product"`
}

// NewRecord builds a Record and derives Product from the user agent.
func NewRecord(userAgent, platform, language, vendor string) Record {
	product, _ := ProductToken(userAgent)
	return Record{
		UserAgent: userAgent,
		Platform:  platform,
		Language:  language,
		Vendor:    vendor,
		Product:   product,
	}
}

// HasProduct reports whether the record carries a product token, either in
// Product or as a parenthetical block of UserAgent.
func (r Record) HasProduct() bool {
	_, ok := r.product()
	return ok
}

// product returns the token the classifier matches against. An empty
// Product with "()" in the user agent is present but empty.
func (r Record) product() (string, bool) {
	if r.Product != "" {
		return r.Product, true
	}
	return ProductToken(r.UserAgent)
}

// ProductToken returns the text between the first "(" of ua and the first ")"
// that follows it. The boolean is false when no such block exists. A ")"
// before the first "(" is ignored, so "a) b (c)" yields "c".
//
//	ProductToken("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) ...")
//	// "Macintosh; Intel Mac OS X 10_15_7", true
func ProductToken(ua string) (string, bool) {
	open := strings.IndexByte(ua, '(')
	if open < 0 {
		return "", false
	}
	rest := ua[open+1:]
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// primaryToken returns the lower-cased product segment before the first ";".
func primaryToken(product string) string {
	if i := strings.IndexByte(product, ';'); i >= 0 {
		product = product[:i]
	}
	return strings.ToLower(product)
}
