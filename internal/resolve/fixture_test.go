package resolve

import (
	"github.com/yanizio/seoroute/internal/refdata"
)

func ent(id int64, en, uk, pl, fr, de string) refdata.Entity {
	return refdata.Entity{ID: id, NameEN: en, NameUK: uk, NamePL: pl, NameFR: fr, NameDE: de}
}

// fixture is a small snapshot covering every resolution rule.
func fixture() *refdata.Snapshot {
	ukraine := ent(1, "Ukraine", "Україна", "Ukraina", "Ukraine", "Ukraine")
	ukraine.SlugUK = "ukraina"

	return &refdata.Snapshot{
		Categories: []refdata.Category{
			{Entity: ent(5, "Design", "Дизайн", "Projektowanie", "Design", "Design")},
			{Entity: ent(7, "Construction", "Будівництво", "Budownictwo", "Construction", "Bauwesen")},
			{Entity: ent(9, "Turkey", "Індичка", "Indyk", "Dinde", "Truthahn")},
		},
		Subcategories: []refdata.Subcategory{
			{Entity: ent(51, "Logo", "Логотип", "Logo", "Logo", "Logo"), CategoryID: 5},
			{Entity: ent(52, "Branding", "Брендинг", "Branding", "Image de marque", "Markenbildung"), CategoryID: 5},
			{Entity: ent(71, "Logo", "Логотип", "Logo", "Logo", "Logo"), CategoryID: 7},
		},
		Countries: []refdata.Country{
			{Entity: ukraine},
			{Entity: ent(2, "Poland", "Польща", "Polska", "Pologne", "Polen")},
			{Entity: ent(3, "Turkey", "Туреччина", "Turcja", "Turquie", "Türkei")},
		},
		Cities: []refdata.City{
			{Entity: ent(11, "Kyiv", "Київ", "Kijów", "Kiev", "Kiew"), CountryID: 1},
			{Entity: ent(21, "Krakow", "Краків", "Kraków", "Cracovie", "Krakau"), CountryID: 2},
		},
	}
}

func newResolver() *Resolver {
	return New(fixture(), NewMatcher(64))
}
