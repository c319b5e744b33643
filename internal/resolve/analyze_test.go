package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanizio/seoroute/internal/lang"
)

func TestAnalyze_Kinds(t *testing.T) {
	r := newResolver()

	s := r.Analyze([]string{"design", "ukraine", "kyiv"}, lang.EN)
	assert.Equal(t, KindList, s.Kind)
	assert.True(t, s.Valid)
	require.NotNil(t, s.City)
	assert.EqualValues(t, 11, s.City.ID)

	s = r.Analyze([]string{"acme-build-42"}, lang.EN)
	assert.Equal(t, KindDetail, s.Kind)
	require.NotNil(t, s.Company)
	assert.EqualValues(t, 42, s.Company.ID)
	assert.False(t, s.HasFilters())

	s = r.Analyze([]string{"design", "acme-build-42"}, lang.EN)
	assert.Equal(t, KindMixed, s.Kind)
	assert.EqualValues(t, 5, s.Category.ID)

	s = r.Analyze(nil, lang.EN)
	assert.Equal(t, KindList, s.Kind)
	assert.True(t, s.Valid)
}

func TestAnalyze_Validity(t *testing.T) {
	r := newResolver()

	assert.False(t, r.Analyze([]string{"nonsense"}, lang.EN).Valid)
	assert.True(t, r.Analyze([]string{"design", "nonsense"}, lang.EN).Valid)
	assert.True(t, r.Analyze([]string{"nonsense", "acme-7"}, lang.EN).Valid)
	assert.True(t, r.Analyze([]string{"all", "nonsense"}, lang.EN).Valid)
	assert.True(t, r.Analyze([]string{"uk", "nonsense"}, lang.UK).Valid)
}

func TestAnalyze_ChildrenFollowKeptParent(t *testing.T) {
	r := newResolver()

	// "construction" is a second category: ignored, so "logo" resolves under design.
	s := r.Analyze([]string{"design", "construction", "logo"}, lang.EN)
	require.NotNil(t, s.Subcategory)
	assert.EqualValues(t, 51, s.Subcategory.ID)

	// A subcategory must directly follow its category.
	s = r.Analyze([]string{"design", "ukraine", "logo"}, lang.EN)
	assert.Nil(t, s.Subcategory)
	assert.True(t, s.Valid)

	s = r.Analyze([]string{"uk", "dyzain", "lohotyp"}, lang.UK)
	require.NotNil(t, s.Subcategory)
	assert.EqualValues(t, 51, s.Subcategory.ID)
}

func TestAnalyze_FiltersView(t *testing.T) {
	r := newResolver()
	s := r.Analyze([]string{"poland", "krakow", "firma-9"}, lang.EN)
	f := s.Filters()

	assert.Equal(t, KindMixed, s.Kind)
	assert.EqualValues(t, 2, f.Country.ID)
	assert.EqualValues(t, 21, f.City.ID)
	assert.True(t, f.Valid)
}
