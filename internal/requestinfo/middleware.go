// internal/requestinfo/middleware.go
//
// HTTP middleware that enriches each request with *RequestInfo.
//
/*
Context
--------
This handler sits high in the chain, right after the localized-route
rewrite and before the listing handlers.  For every request it:

  1. Reuses X-Request-ID when the edge supplied one, otherwise mints a
     UUID and echoes it on the response.
  2. Parses the User-Agent header (bot flag feeds the not-found metric).
  3. Negotiates the preferred language from Accept-Language.  Handlers
     only fall back to it when neither the path nor the rewriter named
     a language.
  4. Stores a `*RequestInfo` value in `request.Context` under an
     unexported key.

Instrumentation
---------------
At debug level each invocation logs request ID, browser family, device
class, bot flag, preferred language, and path.

Notes
-----
  • Oxford commas, two spaces after periods.  No em dash.
*/
package requestinfo

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yanizio/seoroute/internal/lang"
)

// RequestIDHeader is read from and written to every request.
const RequestIDHeader = "X-Request-ID"

/*──────────────────────────── middleware ───────────────────────────────────*/

// Enrich wraps an http.Handler, attaches *RequestInfo, and forwards.
func Enrich(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		info := &RequestInfo{
			ID:            id,
			UA:            parseUA(r.UserAgent()),
			PreferredLang: lang.Negotiate(r.Header.Get("Accept-Language")),
			URL:           r.URL, // pointer copy; safe for read-only access
			Timestamp:     time.Now().UTC(),
		}

		zap.S().Debugw("request info",
			"request_id", info.ID,
			"browser", info.UA.Browser,
			"device", info.UA.Device,
			"bot", info.UA.IsBot,
			"preferred_lang", info.PreferredLang,
			"path", r.URL.Path,
		)

		ctx := context.WithValue(r.Context(), ctxKey{}, info)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
