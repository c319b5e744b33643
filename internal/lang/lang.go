// internal/lang/lang.go
//
// Closed language enum shared by routing, resolution, and link helpers.
//
// Context
// -------
// Every localized field family (name_uk, slug_pl, …) and every localized route
// is keyed by one of five languages.  Code that needs "the field for language
// X" switches on Lang exhaustively instead of building field names at runtime.
//
// English is the default language and is never used as a path prefix.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.
package lang

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// Lang is one of the supported interface languages.
type Lang string

const (
	UK Lang = "uk"
	EN Lang = "en"
	PL Lang = "pl"
	FR Lang = "fr"
	DE Lang = "de"
)

// Default is returned whenever nothing else identifies a language.
const Default = EN

// All lists the supported languages in fallback order (uk first, matching the
// order slug and name fields are probed in).
var All = []Lang{UK, EN, PL, FR, DE}

// Parse returns the Lang for code.  Matching is case-insensitive.
func Parse(code string) (Lang, bool) {
	switch Lang(strings.ToLower(strings.TrimSpace(code))) {
	case UK:
		return UK, true
	case EN:
		return EN, true
	case PL:
		return PL, true
	case FR:
		return FR, true
	case DE:
		return DE, true
	}
	return "", false
}

// IsCode reports whether s is exactly a supported language code.
func IsCode(s string) bool {
	_, ok := Parse(s)
	return ok && s == strings.ToLower(s)
}

// String implements fmt.Stringer.
func (l Lang) String() string { return string(l) }

// Tag returns the BCP 47 tag for l, used in hreflang metadata.
func (l Lang) Tag() language.Tag {
	return language.Make(string(l))
}

/*──────────────────────────── negotiation ─────────────────────────────────*/

var matcher = language.NewMatcher([]language.Tag{
	language.English, // first entry is the matcher's fallback
	language.Ukrainian,
	language.Polish,
	language.French,
	language.German,
})

// Negotiate picks the best supported language for an Accept-Language header.
// Empty or unparsable headers yield Default.
func Negotiate(acceptLanguage string) Lang {
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	tag, _, _ := matcher.Match(tags...)
	base, _ := tag.Base()
	if l, ok := Parse(base.String()); ok {
		return l
	}
	return Default
}

/*──────────────────────────── context signal ──────────────────────────────*/

type ctxKey struct{}

// WithContext stores the resolved language for downstream handlers.
func WithContext(ctx context.Context, l Lang) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the language stored by WithContext.
func FromContext(ctx context.Context) (Lang, bool) {
	l, ok := ctx.Value(ctxKey{}).(Lang)
	return l, ok
}
