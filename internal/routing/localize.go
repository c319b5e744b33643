// internal/routing/localize.go
//
// Localized-route rewrite middleware.
//
// Context
// -------
// Public URLs start with a localized section segment (“/kompanii/…”,
// “/zlecenia/…”).  Handlers are mounted once, under the canonical /companies
// and /requests prefixes.  Localize sits at the top of the chain and, for
// every request:
//
//   1. Skips configured exclusions (static assets, API, metrics).
//   2. Looks the first path segment up in the company table, then the
//      request table.
//   3. On a hit, rewrites r.URL.Path to the canonical prefix, keeps the
//      remaining segments in order, and stamps the resolved language into
//      a request header and the request context.
//   4. On a miss, forwards the request unchanged.
//
// Notes
// -----
// • Stateless; the only shared data is the read-only route table.
// • Running the middleware twice yields the same request (the canonical
//   English prefixes map onto themselves).
// • Max line length 100 columns.

package routing

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/yanizio/seoroute/internal/lang"
	"github.com/yanizio/seoroute/internal/metrics"
)

// DefaultLangHeader carries the resolved language to downstream handlers.
const DefaultLangHeader = "X-Lang"

// Options configures Localize.
type Options struct {
	// LangHeader is the request header set on a rewrite.  Empty means
	// DefaultLangHeader.
	LangHeader string

	// Exclude lists path prefixes that are never rewritten, e.g. "/api/".
	Exclude []string
}

// Localize returns a Chi-compatible middleware that rewrites localized
// section paths to their canonical form.
func Localize(opts Options) func(http.Handler) http.Handler {
	header := opts.LangHeader
	if header == "" {
		header = DefaultLangHeader
	}
	exclude := append([]string(nil), opts.Exclude...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if excluded(r.URL.Path, exclude) {
				next.ServeHTTP(w, r)
				return
			}

			first, rest := splitFirst(r.URL.Path)
			section, l, ok := LookupSection(first)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			original := r.URL.Path
			target := "/" + section + rest

			r2 := r.Clone(lang.WithContext(r.Context(), l))
			r2.URL.Path = target
			r2.URL.RawPath = ""
			r2.RequestURI = r2.URL.RequestURI()
			r2.Header.Set(header, string(l))

			metrics.LocalizedRewritesTotal.WithLabelValues(section, string(l)).Inc()
			zap.L().Debug("localized rewrite",
				zap.String("from", original),
				zap.String("to", target),
				zap.String("lang", string(l)))

			next.ServeHTTP(w, r2)
		})
	}
}

// excluded reports whether path falls under any configured prefix.  Prefixes
// match on segment boundaries: "/metrics" and "/api/" both cover "/metrics",
// "/api", and everything below them, but never "/metricsfoo".
func excluded(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if p == "/" {
			return true
		}
		p = strings.TrimSuffix(p, "/")
		if p == "" {
			continue
		}
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// splitFirst returns the first segment of p and the remainder, which keeps
// its leading slash ("/kompanii/a/b" → "kompanii", "/a/b").
func splitFirst(p string) (first, rest string) {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i != -1 {
		return p[:i], p[i:]
	}
	return p, ""
}
