// internal/head/builder.go
//
// The Builder collects the SEO tags that belong inside a page’s <head>
// element.  It is scoped to a single request.  The listing handlers push a
// title, a canonical link, and one hreflang alternate per language, then
// render the result into the response document.
//
// Features
// --------
//   - SetTitle         – single <title> tag (last call wins).
//   - Canonical        – single <link rel="canonical"> (last call wins).
//   - Alternate        – <link rel="alternate" hreflang="…">, deduplicated
//     per language; XDefault adds the "x-default" variant.
//   - Meta             – arbitrary pre-built tags (e.g. robots noindex).
//   - Render helpers   – return template.HTML.
//
// Hrefs are absolute when the builder has a base URL, root-relative
// otherwise.
package head

import (
	"html/template"
	"sort"
	"strings"
	"sync"

	"github.com/yanizio/seoroute/internal/lang"
)

// Builder is safe for concurrent use, but typical use is one goroutine per
// request.
type Builder struct {
	mu   sync.Mutex
	base string

	// Single-value fields
	title     string
	canonical string

	// Multi-value fields
	alternates map[string]string // hreflang → href
	metas      []string

	// seen tracks meta tags for deduplication.
	seen map[string]struct{}
}

// New returns a Builder.  base is the public origin ("https://example.com")
// prefixed to every href; empty keeps hrefs root-relative.
func New(base string) *Builder {
	return &Builder{
		base:       strings.TrimRight(base, "/"),
		alternates: make(map[string]string, len(lang.All)+1),
		seen:       make(map[string]struct{}),
	}
}

// ------------------------------------------------------------------
// Single-value helpers
// ------------------------------------------------------------------

// SetTitle overrides the page <title>.  The last caller wins.
func (b *Builder) SetTitle(t string) {
	b.mu.Lock()
	b.title = t
	b.mu.Unlock()
}

// Canonical sets the canonical path.
func (b *Builder) Canonical(path string) {
	b.mu.Lock()
	b.canonical = b.base + path
	b.mu.Unlock()
}

// CanonicalHref returns the absolute (or root-relative) canonical href.
func (b *Builder) CanonicalHref() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.canonical
}

// ------------------------------------------------------------------
// Multi-value helpers
// ------------------------------------------------------------------

// Alternate records the path of this page in language l.
func (b *Builder) Alternate(l lang.Lang, path string) {
	b.setAlternate(l.Tag().String(), path)
}

// XDefault records the fallback variant for unmatched languages.
func (b *Builder) XDefault(path string) {
	b.setAlternate("x-default", path)
}

func (b *Builder) setAlternate(hreflang, path string) {
	b.mu.Lock()
	b.alternates[hreflang] = b.base + path
	b.mu.Unlock()
}

// AlternateHrefs returns a copy of hreflang → href.
func (b *Builder) AlternateHrefs() map[string]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]string, len(b.alternates))
	for k, v := range b.alternates {
		out[k] = v
	}
	return out
}

// Meta adds a pre-built tag once.
func (b *Builder) Meta(tag string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, dup := b.seen[tag]; dup {
		return
	}
	b.seen[tag] = struct{}{}
	b.metas = append(b.metas, tag)
}

// ------------------------------------------------------------------
// Rendering helpers
// ------------------------------------------------------------------

// Title returns a fully formed <title> tag or an empty string.
func (b *Builder) Title() template.HTML {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.title == "" {
		return ""
	}
	return template.HTML("<title>" + template.HTMLEscapeString(b.title) + "</title>")
}

// Links renders the canonical link followed by alternates in a stable
// order (hreflang ascending, x-default last).
func (b *Builder) Links() template.HTML {
	b.mu.Lock()
	defer b.mu.Unlock()

	var sb strings.Builder
	if b.canonical != "" {
		sb.WriteString(`<link rel="canonical" href="`)
		sb.WriteString(template.HTMLEscapeString(b.canonical))
		sb.WriteString(`">`)
	}

	keys := make([]string, 0, len(b.alternates))
	for k := range b.alternates {
		if k != "x-default" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := b.alternates["x-default"]; ok {
		keys = append(keys, "x-default")
	}
	for _, k := range keys {
		sb.WriteString(`<link rel="alternate" hreflang="`)
		sb.WriteString(k)
		sb.WriteString(`" href="`)
		sb.WriteString(template.HTMLEscapeString(b.alternates[k]))
		sb.WriteString(`">`)
	}
	return template.HTML(sb.String())
}

// Metas joins pre-escaped tags without a separator.
func (b *Builder) Metas() template.HTML {
	b.mu.Lock()
	defer b.mu.Unlock()
	return template.HTML(strings.Join(b.metas, ""))
}

// HTML renders title, metas, and links in that order.
func (b *Builder) HTML() template.HTML {
	return b.Title() + b.Metas() + b.Links()
}
