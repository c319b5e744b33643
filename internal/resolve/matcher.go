// internal/resolve/matcher.go
//
// Slug matcher.
//
// Context
// -------
// A URL segment carries no primary key, only text.  An entity matches a
// segment when any of three candidate families produces the segment:
//
//   1. Explicit slugs, transliterated: slug_<lang>, then uk, en, pl, fr, de.
//   2. Names, transliterated: name_<lang>, then uk, en, pl, fr, de, name.
//   3. Names under legacy normalization: lower-cased native script with
//      punctuation stripped ("будівництво").  Links generated before
//      transliteration existed still resolve.
//
// Every language is probed regardless of the requested one; the request
// language only goes first.
//
// Notes
// -----
// • The segment is lower-cased and NFC-normalized before comparison.
// • Both normalizations are memoized in bounded LRUs.  Entity names repeat
//   on every request, so the hit rate is high.

package resolve

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/yanizio/seoroute/internal/cache"
	"github.com/yanizio/seoroute/internal/lang"
	"github.com/yanizio/seoroute/internal/refdata"
	"github.com/yanizio/seoroute/internal/routing"
)

// DefaultMemoSize is used when NewMatcher receives a non-positive size.
const DefaultMemoSize = 4096

// Matcher decides whether an entity answers to a URL segment.  Safe for
// concurrent use.
type Matcher struct {
	translit *cache.LRU[string, string]
	legacy   *cache.LRU[string, string]
}

// NewMatcher returns a Matcher whose memos hold up to memoSize entries each.
func NewMatcher(memoSize int) *Matcher {
	if memoSize <= 0 {
		memoSize = DefaultMemoSize
	}
	return &Matcher{
		translit: cache.New[string, string](memoSize),
		legacy:   cache.New[string, string](memoSize),
	}
}

// Matches reports whether segment denotes e, preferring language l.
func (m *Matcher) Matches(e refdata.Localized, segment string, l lang.Lang) bool {
	seg := normalizeSegment(segment)
	if seg == "" {
		return false
	}
	base := e.Base()
	order := probeOrder(l)

	for _, x := range order {
		if m.transliterate(base.SlugFor(x)) == seg {
			return true
		}
	}

	names := nameCandidates(base, order)
	for _, n := range names {
		if m.transliterate(n) == seg {
			return true
		}
	}
	for _, n := range names {
		if m.legacyNormalize(n) == seg {
			return true
		}
	}
	return false
}

func (m *Matcher) transliterate(s string) string {
	if s == "" {
		return ""
	}
	return m.translit.GetOrAdd(s, func() string { return routing.Transliterate(s) })
}

func (m *Matcher) legacyNormalize(s string) string {
	if s == "" {
		return ""
	}
	return m.legacy.GetOrAdd(s, func() string { return LegacyNormalize(s) })
}

// probeOrder puts l first, then every language in lang.All order.  l is
// repeated when it is also in the tail; the duplicate compare is cheap.
func probeOrder(l lang.Lang) []lang.Lang {
	out := make([]lang.Lang, 0, len(lang.All)+1)
	out = append(out, l)
	return append(out, lang.All...)
}

func nameCandidates(e *refdata.Entity, order []lang.Lang) []string {
	out := make([]string, 0, len(order)+1)
	for _, x := range order {
		out = append(out, e.NameFor(x))
	}
	return append(out, e.Name)
}

func normalizeSegment(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// LegacyNormalize reproduces slugs generated before transliteration:
// lower-case, NFC, letters of any script and digits kept, whitespace and
// "_" turned into "-", everything else dropped, hyphens collapsed and
// trimmed.
func LegacyNormalize(s string) string {
	s = strings.ToLower(norm.NFC.String(s))
	var b strings.Builder
	b.Grow(len(s))
	dash := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Mn, r):
			b.WriteRune(r)
			dash = false
		case r == '-' || r == '_' || unicode.IsSpace(r):
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
