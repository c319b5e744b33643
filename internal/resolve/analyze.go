// internal/resolve/analyze.go
//
// URL structure analyzer for the /companies and /requests sections, where a
// path may end in a company leaf ("acme-build-42").

package resolve

import (
	"strings"

	"github.com/yanizio/seoroute/internal/lang"
)

// StructureKind tags what a section path denotes.
type StructureKind string

const (
	KindList   StructureKind = "list"   // filters only, or nothing
	KindDetail StructureKind = "detail" // a company leaf only
	KindMixed  StructureKind = "mixed"  // filters and a company leaf
)

// Structure holds at most one segment per kind.
type Structure struct {
	Category    *Segment
	Subcategory *Segment
	Country     *Segment
	City        *Segment
	Company     *Segment
	Kind        StructureKind
	Valid       bool
}

// HasFilters reports whether any filter slot is filled.
func (s Structure) HasFilters() bool {
	return s.Category != nil || s.Subcategory != nil || s.Country != nil || s.City != nil
}

// Filters returns the filter slots of s.
func (s Structure) Filters() Filters {
	return Filters{
		Category:    s.Category,
		Subcategory: s.Subcategory,
		Country:     s.Country,
		City:        s.City,
		Valid:       s.Valid,
	}
}

// Analyze resolves segments left to right, each against the last segment
// that was kept.  The first segment of each kind is kept; later ones of the
// same kind are ignored and do not become the parent of what follows, so a
// subcategory or city always belongs to the kept category or country.
func (r *Resolver) Analyze(segments []string, l lang.Lang) Structure {
	var (
		out       Structure
		prev      *Segment
		matched   int
		unmatched int
	)
	for _, raw := range segments {
		seg := strings.TrimSpace(raw)
		if seg == "" {
			continue
		}
		if isNoop(seg) {
			matched++
			continue
		}
		s := r.Segment(seg, l, prev)
		if s.Kind == KindUnknown {
			unmatched++
			continue
		}
		matched++
		if keep(&out, s) {
			prev = &s
		}
	}

	switch {
	case out.Company != nil && out.HasFilters():
		out.Kind = KindMixed
	case out.Company != nil:
		out.Kind = KindDetail
	default:
		out.Kind = KindList
	}
	out.Valid = !(unmatched > 0 && matched == 0)
	return out
}

// keep stores s in its slot unless the slot is taken.
func keep(out *Structure, s Segment) bool {
	var slot **Segment
	switch s.Kind {
	case KindCategory:
		slot = &out.Category
	case KindSubcategory:
		slot = &out.Subcategory
	case KindCountry:
		slot = &out.Country
	case KindCity:
		slot = &out.City
	case KindCompany:
		slot = &out.Company
	default:
		return false
	}
	if *slot != nil {
		return false
	}
	*slot = &s
	return true
}
