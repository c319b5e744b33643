//
//  internal/requestinfo/requestinfo.go
//
//  Lightweight types and helpers that collect per-request metadata
//  (request ID, user-agent fingerprint, preferred language, URL, and
//  timestamp).  These structs are inert.  They contain no pointers to
//  database handles or large buffers, so they are safe to log or
//  JSON-encode.
//
//  Dependencies
//  • github.com/avct/uasurfer   (UA parsing)
//  • github.com/google/uuid     (request IDs)
//  • golang.org/x/text/language (Accept-Language, via internal/lang)
//

package requestinfo

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avct/uasurfer"

	"github.com/yanizio/seoroute/internal/lang"
)

//
//  -----------------------------
//  Struct definitions
//  -----------------------------
//

// UA holds the parsed user-agent properties.
type UA struct {
	Raw     string // Entire User-Agent header
	Browser string // "Chrome", "Firefox", "GoogleBot", ...
	Version string // "124.0.6367"
	OS      string // "MacOSX", "Windows", "Android", ...
	Device  string // "Desktop", "Phone", "Tablet", "Bot", ...
	IsBot   bool   // True for crawler signatures
}

// RequestInfo is attached to the request context by Enrich.
type RequestInfo struct {
	ID            string
	UA            UA
	PreferredLang lang.Lang // negotiated from Accept-Language
	URL           *url.URL  // Pointer copy, safe to dereference read-only
	Timestamp     time.Time
}

//
//  -----------------------------
//  Public helper: FromContext
//  -----------------------------
//

type ctxKey struct{} // unexported, collision-proof

// FromContext returns the pointer previously stored by Enrich.
// It returns nil if the middleware has not run.
func FromContext(ctx context.Context) *RequestInfo {
	v, _ := ctx.Value(ctxKey{}).(*RequestInfo)
	return v
}

// IsBot is a nil-safe shortcut used by handlers that label metrics.
func IsBot(ctx context.Context) bool {
	if info := FromContext(ctx); info != nil {
		return info.UA.IsBot
	}
	return false
}

//
//  -----------------------------
//  Internal helpers
//  -----------------------------
//

// parseUA converts a raw header into our UA struct using uasurfer.
func parseUA(uaHeader string) UA {
	u := uasurfer.Parse(uaHeader)

	return UA{
		Raw:     uaHeader,
		Browser: strings.TrimPrefix(u.Browser.Name.String(), "Browser"),
		Version: trimVersion(u.Browser.Version),
		OS:      strings.TrimPrefix(u.OS.Name.String(), "OS"),
		Device:  deviceTypeToString(u.DeviceType),
		IsBot:   u.IsBot(),
	}
}

// trimVersion builds "major.minor.patch" and removes trailing ".0".
func trimVersion(v uasurfer.Version) string {
	out := strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Patch)
	for strings.HasSuffix(out, ".0") {
		out = strings.TrimSuffix(out, ".0")
	}
	return out
}

// deviceTypeToString maps uasurfer.DeviceType to a user-friendly string.
func deviceTypeToString(dt uasurfer.DeviceType) string {
	switch dt {
	case uasurfer.DeviceComputer:
		return "Desktop"
	case uasurfer.DevicePhone:
		return "Phone"
	case uasurfer.DeviceTablet:
		return "Tablet"
	case uasurfer.DeviceConsole:
		return "Console"
	case uasurfer.DeviceWearable:
		return "Wearable"
	case uasurfer.DeviceTV:
		return "TV"
	default:
		return "Unknown"
	}
}
