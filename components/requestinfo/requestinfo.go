// components/requestinfo/requestinfo.go
//
// Request-info component – echoes what the middleware chain derived for the
// current request: request id, parsed user agent, negotiated language, and
// the language the router resolved for the path.
package requestinfo

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/seoroute/internal/component"
	"github.com/yanizio/seoroute/internal/lang"
	"github.com/yanizio/seoroute/internal/links"
	ri "github.com/yanizio/seoroute/internal/requestinfo"
)

// compile-time assertion
var _ component.Component = (*Comp)(nil)

// Comp implements component.Component; no state needed.
type Comp struct{}

func (c *Comp) Name() string                { return "requestinfo" }
func (c *Comp) Init(_ component.Deps) error { return nil }

func (c *Comp) Routes(r chi.Router) {
	r.Get("/api/requestinfo", func(w http.ResponseWriter, r *http.Request) {
		info := ri.FromContext(r.Context())
		if info == nil {
			http.Error(w, "request info not available", http.StatusInternalServerError)
			return
		}

		// The path of interest arrives as ?path=; /api/ itself is never
		// localized.
		path := r.URL.Query().Get("path")
		if path == "" {
			path = "/"
		}

		out := map[string]any{
			"id":             info.ID,
			"ua":             info.UA,
			"preferred_lang": info.PreferredLang,
			"path_lang":      links.LangFromPathname(path),
			"alternates":     links.Alternates(path),
			"supported":      lang.All,
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(out); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// Register component at package init.
func init() {
	component.Register(&Comp{})
}
