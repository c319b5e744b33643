// internal/middleware/security.go
//
// Security-header middleware.
//
// Injects standard headers on every response:
//
//   • Strict-Transport-Security  –  only when HTTPS is enforced
//   • X-Content-Type-Options    –  MIME-sniffing defence
//   • X-Frame-Options           –  click-jacking defence
//   • Referrer-Policy           –  drops path/query from Referer
//   • Vary: Accept-Language     –  caches must key on the negotiated language
//
// Notes
// -----
// • Headers are set *before* next.ServeHTTP; handlers may still override
//   any of them.
// • Oxford commas, two spaces after periods.

package middleware

import "net/http"

// Security returns a wrapper that sets the headers above.  hsts controls
// whether Strict-Transport-Security is emitted.
func Security(hsts bool) func(http.Handler) http.Handler {
	const (
		hstsVal = "max-age=63072000; includeSubDomains"
		xfo     = "DENY"
		nosn    = "nosniff"
		refer   = "strict-origin-when-cross-origin"
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if hsts {
				h.Set("Strict-Transport-Security", hstsVal)
			}
			h.Set("X-Content-Type-Options", nosn)
			h.Set("X-Frame-Options", xfo)
			h.Set("Referrer-Policy", refer)
			h.Add("Vary", "Accept-Language")

			next.ServeHTTP(w, r)
		})
	}
}
