package device

import "net/http"

// Middleware classifies every request once and stores the Detector in the
// request context. Keywords are normalized up front and shared read-only
// across requests.
func Middleware(keywords Keywords) func(http.Handler) http.Handler {
	m := keywords.matcher()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := m.detect(RecordFromRequest(r))
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), d)))
		})
	}
}
