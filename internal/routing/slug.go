// internal/routing/slug.go
//
// Transliteration and path helpers.
//
// • Transliterate(text) ─ converts Ukrainian, Polish, French, and German text
//   into a URL-safe slug restricted to ASCII a-z, 0-9 and “-”.
// • BuildPath(parent, slug) ─ joins parent path + slug with a single “/” and
//   guarantees exactly one leading slash.
//
// Rules (Transliterate)
// ---------------------
// 1. NFC-normalize, then lower-case everything.
// 2. Map each rune through the substitution table (multi-letter outputs such
//    as “щ” → “shch” and “ß” → “ss” are allowed).
// 3. ASCII letters, digits, and “-” pass through.
// 4. Whitespace and “_” become “-”.
// 5. Everything else (punctuation, emoji, unmapped scripts) is dropped.
// 6. Collapse consecutive “-” and trim leading / trailing “-”.
//
// The output alphabet is [a-z0-9-], so Transliterate is idempotent.
//
// Notes
// -----
// • Ukrainian follows the KMU-2010 table in its non-initial forms (є → ie,
//   ї → i, й → i, ю → iu, я → ia) so “Київ” becomes “kyiv”.
// • German and French share ü; it maps to “ue”.

package routing

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var translitTable = map[rune]string{
	// Ukrainian
	'а': "a", 'б': "b", 'в': "v", 'г': "h", 'ґ': "g", 'д': "d", 'е': "e",
	'є': "ie", 'ж': "zh", 'з': "z", 'и': "y", 'і': "i", 'ї': "i", 'й': "i",
	'к': "k", 'л': "l", 'м': "m", 'н': "n", 'о': "o", 'п': "p", 'р': "r",
	'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ь': "", 'ю': "iu", 'я': "ia",
	// Cyrillic letters that show up in legacy Ukrainian data
	'ё': "e", 'ы': "y", 'э': "e", 'ъ': "",

	// Polish
	'ą': "a", 'ć': "c", 'ę': "e", 'ł': "l", 'ń': "n", 'ó': "o", 'ś': "s",
	'ź': "z", 'ż': "z",

	// French
	'à': "a", 'â': "a", 'æ': "ae", 'ç': "c", 'é': "e", 'è': "e", 'ê': "e",
	'ë': "e", 'î': "i", 'ï': "i", 'ô': "o", 'œ': "oe", 'ù': "u", 'û': "u",
	'ÿ': "y",

	// German
	'ä': "ae", 'ö': "oe", 'ü': "ue", 'ß': "ss",
}

// Transliterate converts text → lower-kebab ASCII.  Empty input yields "".
func Transliterate(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))

	lastWasDash := true // suppresses a leading dash
	writeDash := func() {
		if !lastWasDash {
			b.WriteByte('-')
			lastWasDash = true
		}
	}

	for _, r := range strings.ToLower(norm.NFC.String(text)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasDash = false
		case r == '-' || r == '_' || unicode.IsSpace(r):
			writeDash()
		default:
			if sub, ok := translitTable[r]; ok && sub != "" {
				b.WriteString(sub)
				lastWasDash = false
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// BuildPath joins parent + slug ensuring exactly one leading slash and no
// duplicate separators.
func BuildPath(parent, slug string) string {
	parent = strings.Trim(parent, "/")
	slug = strings.Trim(slug, "/")

	switch {
	case parent == "" && slug == "":
		return "/"
	case parent == "":
		return "/" + slug
	case slug == "":
		return "/" + parent
	default:
		return "/" + parent + "/" + slug
	}
}

// SplitPath returns the non-empty segments of p in order.
func SplitPath(p string) []string {
	parts := strings.Split(p, "/")
	out := parts[:0]
	for _, s := range parts {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
