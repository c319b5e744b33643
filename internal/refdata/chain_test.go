package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yanizio/seoroute/internal/lang"
)

func TestChainFirst(t *testing.T) {
	c := Chain[string]{
		func(string) string { return "" },
		func(string) string { return "   " },
		func(s string) string { return s + "!" },
		func(string) string { return "never" },
	}
	assert.Equal(t, "x!", c.First("x"))
	assert.Equal(t, "", Chain[string]{}.First("x"))
}

func TestDisplayName(t *testing.T) {
	full := &Category{Entity: Entity{NameUK: "Дизайн", NameEN: "Design", Name: "design-raw"}}
	onlyName := &Country{Entity: Entity{Name: "Polska"}}

	assert.Equal(t, "Дизайн", DisplayName(full, lang.UK))
	assert.Equal(t, "Design", DisplayName(full, lang.DE), "falls back to English")
	assert.Equal(t, "Polska", DisplayName(onlyName, lang.FR), "falls back to name")
}

func TestCanonicalSlug(t *testing.T) {
	cases := []struct {
		name string
		e    Localized
		l    lang.Lang
		want string
	}{
		{"explicit slug", &Category{Entity: Entity{SlugUK: "dyzain", NameUK: "Дизайн"}}, lang.UK, "dyzain"},
		{"transliterated name", &Category{Entity: Entity{NameUK: "Будівництво"}}, lang.UK, "budivnytstvo"},
		{"non-ascii slug cleaned", &City{Entity: Entity{SlugUK: "Київ"}}, lang.UK, "kyiv"},
		{"english slug fallback", &Country{Entity: Entity{SlugEN: "ukraine"}}, lang.PL, "ukraine"},
		{"english name fallback", &Country{Entity: Entity{NameEN: "Czech Republic"}}, lang.DE, "czech-republic"},
		{"bare name", &Country{Entity: Entity{Name: "Österreich"}}, lang.FR, "oesterreich"},
		{"nothing", &Country{}, lang.EN, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CanonicalSlug(c.e, c.l))
		})
	}
}

func TestEntityFieldSelection(t *testing.T) {
	e := Entity{
		NameUK: "a", NameEN: "b", NamePL: "c", NameFR: "d", NameDE: "e",
		SlugUK: "1", SlugEN: "2", SlugPL: "3", SlugFR: "4", SlugDE: "5",
	}
	wantNames := []string{"a", "b", "c", "d", "e"}
	wantSlugs := []string{"1", "2", "3", "4", "5"}
	for i, l := range lang.All {
		assert.Equal(t, wantNames[i], e.NameFor(l))
		assert.Equal(t, wantSlugs[i], e.SlugFor(l))
	}
	assert.Equal(t, "", e.NameFor(lang.Lang("xx")))
}
