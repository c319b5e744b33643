// internal/links/links.go
//
// Outbound link helpers: the inverse of the Localize middleware.
//
// Context
// -------
// Handlers work with canonical paths (/companies/…, /design/ukraine).  When
// a link is rendered for a language the path must be turned back into what
// a visitor types:
//
//   • Section paths swap the first segment for the localized route
//     (/companies/x → /kompanii/x for uk).
//   • Every other path gets a /<lang> prefix, except English which stays
//     unprefixed.
//
// LangFromPathname reverses this, and SwitchLang re-derives the path for a
// different language while keeping trailing segments and the query string.
//
// Notes
// -----
// • Pure string transforms; no network, no shared state.
// • An existing language prefix is replaced, never stacked.

package links

import (
	"strings"

	"github.com/yanizio/seoroute/internal/lang"
	"github.com/yanizio/seoroute/internal/routing"
)

// LangPath localizes a canonical path for l.
func LangPath(path string, l lang.Lang) string {
	segs := routing.SplitPath(path)

	if len(segs) > 0 {
		if section, _, ok := routing.LookupSection(segs[0]); ok {
			seg, ok := routing.SectionRoute(section, l)
			if !ok {
				seg = section
			}
			segs[0] = seg
			return "/" + strings.Join(segs, "/")
		}
		if lang.IsCode(segs[0]) {
			segs = segs[1:]
		}
	}

	rest := strings.Join(segs, "/")
	if l == lang.EN {
		return "/" + rest
	}
	if rest == "" {
		return "/" + string(l)
	}
	return "/" + string(l) + "/" + rest
}

// LangFromPathname extracts the language a visitor is browsing in.  Company
// routes are checked first, then request routes, then the plain prefix.
// Anything else is English.
func LangFromPathname(pathname string) lang.Lang {
	segs := routing.SplitPath(pathname)
	if len(segs) == 0 {
		return lang.Default
	}
	first := segs[0]
	if l, ok := routing.LangForCompanyRoute(first); ok {
		return l
	}
	if l, ok := routing.LangForRequestRoute(first); ok {
		return l
	}
	if lang.IsCode(first) {
		l, _ := lang.Parse(first)
		return l
	}
	return lang.Default
}

// SwitchLang returns the equivalent of current in language l.  current may
// carry a query string or fragment; both are preserved verbatim.
func SwitchLang(current string, l lang.Lang) string {
	path, suffix := current, ""
	if i := strings.IndexAny(current, "?#"); i != -1 {
		path, suffix = current[:i], current[i:]
	}
	return LangPath(path, l) + suffix
}

// Alternate is one hreflang variant of a page.
type Alternate struct {
	Lang lang.Lang
	Path string
}

// Alternates returns the path of the same page in every supported language,
// in lang.All order.
func Alternates(current string) []Alternate {
	out := make([]Alternate, 0, len(lang.All))
	for _, l := range lang.All {
		out = append(out, Alternate{Lang: l, Path: SwitchLang(current, l)})
	}
	return out
}
