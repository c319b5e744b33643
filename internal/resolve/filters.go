// internal/resolve/filters.go
//
// Filter parser: a left fold over path segments.
//
// Context
// -------
// A listing path such as /uk/dyzain/logo/ukraina/kyiv fills up to four
// slots.  Each segment is offered, in order, to every slot still open:
//
//   category     if none yet
//   subcategory  if a category is set and no subcategory yet (children of
//                the accumulated category only)
//   country      if none yet
//   city         if a country is set and no city yet (children of the
//                accumulated country only)
//
// The first slot that accepts the segment takes it.  Filled slots are never
// overwritten.  Empty segments are skipped.  Language codes and "all" fill
// no slot but count as recognised.
//
// Validity: a path is rejected only when something failed to match and
// nothing was recognised at all.  One recognised segment, a language
// prefix included, tolerates trailing junk.

package resolve

import (
	"strings"

	"github.com/yanizio/seoroute/internal/lang"
	"github.com/yanizio/seoroute/internal/metrics"
	"github.com/yanizio/seoroute/internal/refdata"
	"github.com/yanizio/seoroute/internal/routing"
)

// Filters is the outcome of ParseFilters.
type Filters struct {
	Category    *Segment
	Subcategory *Segment
	Country     *Segment
	City        *Segment
	Valid       bool
}

// Empty reports whether no slot is filled.
func (f Filters) Empty() bool {
	return f.Category == nil && f.Subcategory == nil && f.Country == nil && f.City == nil
}

// foldState is the accumulator threaded through step.
type foldState struct {
	Filters
	matched   int
	unmatched int
}

// ParseFilters folds segments into Filters for language l.
func (r *Resolver) ParseFilters(segments []string, l lang.Lang) Filters {
	acc := foldState{}
	for _, seg := range segments {
		acc = r.step(acc, seg, l)
	}
	out := acc.Filters
	out.Valid = !(acc.unmatched > 0 && acc.matched == 0)
	return out
}

// step offers one segment to the open slots and returns the next state.
func (r *Resolver) step(acc foldState, seg string, l lang.Lang) foldState {
	seg = strings.TrimSpace(seg)
	if seg == "" {
		return acc
	}
	if isNoop(seg) {
		// Structurally valid: counts toward validity, fills no slot.
		acc.matched++
		return acc
	}

	if s, ok := r.fill(acc.Filters, seg, l); ok {
		acc.matched++
		switch s.Kind {
		case KindCategory:
			acc.Category = &s
		case KindSubcategory:
			acc.Subcategory = &s
		case KindCountry:
			acc.Country = &s
		case KindCity:
			acc.City = &s
		}
		metrics.SegmentResolutionsTotal.WithLabelValues(string(s.Kind)).Inc()
		return acc
	}

	acc.unmatched++
	metrics.SegmentResolutionsTotal.WithLabelValues(string(KindUnknown)).Inc()
	return acc
}

// fill finds the first open slot that accepts seg.
func (r *Resolver) fill(f Filters, seg string, l lang.Lang) (Segment, bool) {
	if f.Category == nil {
		if c := r.category(seg, l); c != nil {
			return entitySegment(KindCategory, seg, c), true
		}
	}
	if f.Category != nil && f.Subcategory == nil {
		if s := r.subcategory(seg, l, f.Category.ID); s != nil {
			return entitySegment(KindSubcategory, seg, s), true
		}
	}
	if f.Country == nil {
		if c := r.country(seg, l); c != nil {
			return entitySegment(KindCountry, seg, c), true
		}
	}
	if f.Country != nil && f.City == nil {
		if c := r.city(seg, l, f.Country.ID); c != nil {
			return entitySegment(KindCity, seg, c), true
		}
	}
	return Segment{}, false
}

func entitySegment(k Kind, seg string, e refdata.Localized) Segment {
	return Segment{Kind: k, ID: e.Base().ID, Slug: seg, Entity: e}
}

// isNoop reports segments that are structurally valid but fill no slot:
// the "all" sentinel and language codes.
func isNoop(seg string) bool {
	return seg == routing.AllSegment || lang.IsCode(seg)
}
