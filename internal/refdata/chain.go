// internal/refdata/chain.go
//
// Fallback chains over partially localized records.
//
// Backend data is incomplete: an entity may have a Ukrainian name but no
// English slug, or only the language-less `name`.  A Chain is an ordered list
// of accessors; First returns the first non-empty result.

package refdata

import (
	"strings"

	"github.com/yanizio/seoroute/internal/lang"
	"github.com/yanizio/seoroute/internal/routing"
)

// Chain is an ordered list of accessors evaluated until one yields a value.
type Chain[T any] []func(T) string

// First returns the first non-blank accessor result, or "".
func (c Chain[T]) First(v T) string {
	for _, get := range c {
		if s := strings.TrimSpace(get(v)); s != "" {
			return s
		}
	}
	return ""
}

func name(l lang.Lang) func(*Entity) string {
	return func(e *Entity) string { return e.NameFor(l) }
}

func slug(l lang.Lang) func(*Entity) string {
	return func(e *Entity) string { return routing.Transliterate(e.SlugFor(l)) }
}

func translitName(l lang.Lang) func(*Entity) string {
	return func(e *Entity) string { return routing.Transliterate(e.NameFor(l)) }
}

// DisplayName picks the label shown for e in language l: name_<l>, then
// name_en, then name.
func DisplayName(e Localized, l lang.Lang) string {
	return Chain[*Entity]{
		name(l),
		name(lang.EN),
		func(e *Entity) string { return e.Name },
	}.First(e.Base())
}

// CanonicalSlug picks the path segment emitted for e in language l:
// slug_<l>, transliterated name_<l>, slug_en, transliterated name_en, then
// transliterated name.  Every candidate goes through the transliterator, so
// the result is always something the slug matcher accepts for e.
func CanonicalSlug(e Localized, l lang.Lang) string {
	return Chain[*Entity]{
		slug(l),
		translitName(l),
		slug(lang.EN),
		translitName(lang.EN),
		func(e *Entity) string { return routing.Transliterate(e.Name) },
	}.First(e.Base())
}
