// internal/resolve/builder.go
//
// Canonical URL builder, the inverse of ParseFilters.
//
// Shape: /[<lang>/]<category>[/<subcategory>]/<country>[/<city>]
//        /[<lang>/]all                          when no filter survives
// plus "?zayavki=true" for the requests listing.  English has no prefix.
//
// Rules
// -----
// • Slugs are trimmed; "", "-", and "undefined" are rejected; leading and
//   trailing hyphens are stripped.
// • A subcategory is emitted only under a category, a city only under a
//   country.
// • A segment equal to one already emitted is dropped.

package resolve

import (
	"strings"

	"github.com/yanizio/seoroute/internal/lang"
	"github.com/yanizio/seoroute/internal/refdata"
	"github.com/yanizio/seoroute/internal/routing"
)

// ListingType selects the companies or requests listing.
type ListingType string

const (
	ListingCompanies ListingType = "companies"
	ListingRequests  ListingType = "requests"
)

// RequestsQuery marks a filter URL as the requests listing.
const RequestsQuery = "zayavki=true"

// FilterSlugs are raw slug strings for each slot.
type FilterSlugs struct {
	Category    string
	Subcategory string
	Country     string
	City        string
}

// BuildFilterPath assembles the canonical filter URL from raw slugs.
func BuildFilterPath(s FilterSlugs, l lang.Lang, t ListingType) string {
	segs := make([]string, 0, 5)
	seen := make(map[string]bool, 4)
	push := func(seg string) bool {
		if seg == "" || seen[seg] {
			return false
		}
		seen[seg] = true
		segs = append(segs, seg)
		return true
	}

	if l != lang.EN && lang.IsCode(string(l)) {
		segs = append(segs, string(l))
	}

	filters := 0
	if push(sanitizeSlug(s.Category)) {
		filters++
		push(sanitizeSlug(s.Subcategory))
	}
	if push(sanitizeSlug(s.Country)) {
		filters++
		push(sanitizeSlug(s.City))
	}
	if filters == 0 {
		segs = append(segs, routing.AllSegment)
	}

	out := "/" + strings.Join(segs, "/")
	if t == ListingRequests {
		out += "?" + RequestsQuery
	}
	return out
}

// Selection is a set of chosen entities.  Nil fields are unset.
type Selection struct {
	Category    *refdata.Category
	Subcategory *refdata.Subcategory
	Country     *refdata.Country
	City        *refdata.City
	Lang        lang.Lang
	Type        ListingType
}

// BuildFilterURL emits the canonical URL for sel.  Children whose parent id
// does not match the selected parent are dropped.
func BuildFilterURL(sel Selection) string {
	var s FilterSlugs
	if sel.Category != nil {
		s.Category = refdata.CanonicalSlug(sel.Category, sel.Lang)
		if sel.Subcategory != nil && sel.Subcategory.CategoryID == sel.Category.ID {
			s.Subcategory = refdata.CanonicalSlug(sel.Subcategory, sel.Lang)
		}
	}
	if sel.Country != nil {
		s.Country = refdata.CanonicalSlug(sel.Country, sel.Lang)
		if sel.City != nil && sel.City.CountryID == sel.Country.ID {
			s.City = refdata.CanonicalSlug(sel.City, sel.Lang)
		}
	}
	return BuildFilterPath(s, sel.Lang, sel.Type)
}

// SelectionFrom converts resolved filters into a Selection.
func SelectionFrom(f Filters, l lang.Lang, t ListingType) Selection {
	sel := Selection{Lang: l, Type: t}
	if f.Category != nil {
		sel.Category, _ = f.Category.Entity.(*refdata.Category)
	}
	if f.Subcategory != nil {
		sel.Subcategory, _ = f.Subcategory.Entity.(*refdata.Subcategory)
	}
	if f.Country != nil {
		sel.Country, _ = f.Country.Entity.(*refdata.Country)
	}
	if f.City != nil {
		sel.City, _ = f.City.Entity.(*refdata.City)
	}
	return sel
}

func sanitizeSlug(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" || s == "undefined" {
		return ""
	}
	return strings.Trim(s, "-")
}
