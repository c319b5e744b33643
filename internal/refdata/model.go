// internal/refdata/model.go
//
// Reference-data model.
//
// Context
// -------
// Four flat collections describe every filter a listing page can carry:
// categories, subcategories (child of a category), countries, and cities
// (child of a country).  All four share one localized shape: a stable id,
// an optional display name and slug per language, and a language-less
// `name` used as the last fallback.
//
// The per-language fields are selected through NameFor / SlugFor, which
// switch exhaustively on lang.Lang.  Nothing builds field names at runtime.
//
// Notes
// -----
// • json tags follow the backend payload; db tags follow the SQL tables.
// • A Snapshot is read-only once published.  Callers never mutate slices.

package refdata

import (
	"time"

	"github.com/yanizio/seoroute/internal/lang"
)

// Entity is the localized shape shared by every reference record.
type Entity struct {
	ID   int64  `json:"id"   db:"id"`
	Name string `json:"name" db:"name"`

	NameUK string `json:"name_uk" db:"name_uk"`
	NameEN string `json:"name_en" db:"name_en"`
	NamePL string `json:"name_pl" db:"name_pl"`
	NameFR string `json:"name_fr" db:"name_fr"`
	NameDE string `json:"name_de" db:"name_de"`

	SlugUK string `json:"slug_uk" db:"slug_uk"`
	SlugEN string `json:"slug_en" db:"slug_en"`
	SlugPL string `json:"slug_pl" db:"slug_pl"`
	SlugFR string `json:"slug_fr" db:"slug_fr"`
	SlugDE string `json:"slug_de" db:"slug_de"`
}

// NameFor returns the display name stored for l, possibly empty.
func (e *Entity) NameFor(l lang.Lang) string {
	switch l {
	case lang.UK:
		return e.NameUK
	case lang.EN:
		return e.NameEN
	case lang.PL:
		return e.NamePL
	case lang.FR:
		return e.NameFR
	case lang.DE:
		return e.NameDE
	}
	return ""
}

// SlugFor returns the explicit slug stored for l, possibly empty.
func (e *Entity) SlugFor(l lang.Lang) string {
	switch l {
	case lang.UK:
		return e.SlugUK
	case lang.EN:
		return e.SlugEN
	case lang.PL:
		return e.SlugPL
	case lang.FR:
		return e.SlugFR
	case lang.DE:
		return e.SlugDE
	}
	return ""
}

// Base exposes the embedded Entity; it lets generic code accept any of the
// four record types.
func (e *Entity) Base() *Entity { return e }

// Localized is implemented by every record type through the embedded Entity.
type Localized interface {
	Base() *Entity
}

// Category is a top-level listing filter.
type Category struct {
	Entity
}

// Subcategory is valid only under its parent category.
type Subcategory struct {
	Entity
	CategoryID int64 `json:"full_category_id" db:"full_category_id"`
}

// Country is a top-level location filter.
type Country struct {
	Entity
}

// City is valid only under its parent country.
type City struct {
	Entity
	CountryID int64 `json:"country_id" db:"country_id"`
}

// Snapshot is one consistent set of the four collections.
type Snapshot struct {
	Categories    []Category    `json:"categories"`
	Subcategories []Subcategory `json:"subcategories"`
	Countries     []Country     `json:"countries"`
	Cities        []City        `json:"cities"`
	LoadedAt      time.Time     `json:"loaded_at"`
}

// EmptySnapshot returns a snapshot whose four collections are empty (not
// nil), the fail-soft result of a failed load.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Categories:    []Category{},
		Subcategories: []Subcategory{},
		Countries:     []Country{},
		Cities:        []City{},
	}
}

// IsEmpty reports whether all four collections are empty.
func (s *Snapshot) IsEmpty() bool {
	return len(s.Categories) == 0 && len(s.Subcategories) == 0 &&
		len(s.Countries) == 0 && len(s.Cities) == 0
}

// Counts returns collection sizes keyed by collection name.
func (s *Snapshot) Counts() map[string]int {
	return map[string]int{
		"categories":    len(s.Categories),
		"subcategories": len(s.Subcategories),
		"countries":     len(s.Countries),
		"cities":        len(s.Cities),
	}
}
