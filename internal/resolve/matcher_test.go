package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yanizio/seoroute/internal/lang"
	"github.com/yanizio/seoroute/internal/refdata"
)

func TestMatches_TransliteratedAndLegacy(t *testing.T) {
	m := NewMatcher(16)
	e := &refdata.Category{Entity: refdata.Entity{ID: 7, NameUK: "Будівництво"}}

	assert.True(t, m.Matches(e, "budivnytstvo", lang.UK), "transliterated name")
	assert.True(t, m.Matches(e, "будівництво", lang.UK), "legacy native-script slug")
	assert.True(t, m.Matches(e, "Будівництво", lang.UK), "segment is lower-cased")
	assert.True(t, m.Matches(e, "budivnytstvo", lang.EN), "request language only goes first")
	assert.False(t, m.Matches(e, "budivnytstv", lang.UK))
	assert.False(t, m.Matches(e, "", lang.UK))
}

func TestMatches_ExplicitSlugAnyLanguage(t *testing.T) {
	m := NewMatcher(16)
	e := &refdata.Country{Entity: refdata.Entity{ID: 1, NameEN: "Ukraine", SlugUK: "ukraina", SlugDE: "Ukraїne"}}

	assert.True(t, m.Matches(e, "ukraina", lang.FR))
	assert.True(t, m.Matches(e, "ukraine", lang.FR), "english name")
	assert.True(t, m.Matches(e, "ukraine", lang.DE), "non-ascii slug is transliterated")
}

func TestMatches_BareNameFallback(t *testing.T) {
	m := NewMatcher(16)
	e := &refdata.City{Entity: refdata.Entity{ID: 5, Name: "Zürich Stadt"}}

	assert.True(t, m.Matches(e, "zuerich-stadt", lang.EN))
	assert.True(t, m.Matches(e, "zürich-stadt", lang.EN), "legacy form keeps umlaut")
}

func TestMatches_DecomposedSegment(t *testing.T) {
	m := NewMatcher(16)
	e := &refdata.City{Entity: refdata.Entity{ID: 9, NameFR: "Genève"}}

	assert.True(t, m.Matches(e, "Genève", lang.FR), "NFD segment equals NFC legacy slug")
	assert.True(t, m.Matches(e, "geneve", lang.FR))
}

func TestLegacyNormalize(t *testing.T) {
	cases := map[string]string{
		"Будівництво":         "будівництво",
		"  Кам'янець  Поділ ": "камянець-поділ",
		"IT & Software":       "it-software",
		"foo__bar--baz":       "foo-bar-baz",
		"":                    "",
		"!!!":                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, LegacyNormalize(in), "input %q", in)
	}
}
