// internal/resolve/resolver.go
//
// Segment resolver.
//
// Context
// -------
// Resolver classifies one path segment against a single reference-data
// snapshot.  The decision order is fixed and the first hit wins:
//
//   1. category
//   2. subcategory, only when the previous segment resolved to a category,
//      and only among that category's children
//   3. country
//   4. city, only when the previous segment resolved to a country, and only
//      among that country's children
//   5. company leaf: "<slug>-<digits>", the digits being the company id
//   6. unknown
//
// A segment that names both a category and a country therefore resolves to
// the category.
//
// Notes
// -----
// • A Resolver is cheap; build one per request from loader.Load(ctx).
// • Never returns an error.  Missing data resolves to KindUnknown.

package resolve

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yanizio/seoroute/internal/lang"
	"github.com/yanizio/seoroute/internal/metrics"
	"github.com/yanizio/seoroute/internal/refdata"
)

// Kind classifies a resolved segment.
type Kind string

const (
	KindCategory    Kind = "category"
	KindSubcategory Kind = "subcategory"
	KindCountry     Kind = "country"
	KindCity        Kind = "city"
	KindCompany     Kind = "company"
	KindUnknown     Kind = "unknown"
)

// Segment is the classification of one path segment.
type Segment struct {
	Kind   Kind
	ID     int64
	Slug   string            // the segment text as it appeared in the path
	Entity refdata.Localized // nil for company and unknown
}

// leafPattern matches "<anything>-<digits>".
var leafPattern = regexp.MustCompile(`^(.+)-(\d+)$`)

// Resolver resolves segments against one snapshot.
type Resolver struct {
	snap *refdata.Snapshot
	m    *Matcher
}

// New returns a Resolver over snap.  A nil snap behaves as empty data.
func New(snap *refdata.Snapshot, m *Matcher) *Resolver {
	if snap == nil {
		snap = refdata.EmptySnapshot()
	}
	if m == nil {
		m = NewMatcher(0)
	}
	return &Resolver{snap: snap, m: m}
}

// Segment classifies seg in language l.  prev is the previously resolved
// segment, or nil at the start of a path.
func (r *Resolver) Segment(seg string, l lang.Lang, prev *Segment) Segment {
	out := r.segment(seg, l, prev)
	metrics.SegmentResolutionsTotal.WithLabelValues(string(out.Kind)).Inc()
	return out
}

func (r *Resolver) segment(seg string, l lang.Lang, prev *Segment) Segment {
	seg = strings.TrimSpace(seg)
	if seg == "" {
		return Segment{Kind: KindUnknown}
	}

	if c := r.category(seg, l); c != nil {
		return Segment{Kind: KindCategory, ID: c.ID, Slug: seg, Entity: c}
	}
	if prev != nil && prev.Kind == KindCategory {
		if s := r.subcategory(seg, l, prev.ID); s != nil {
			return Segment{Kind: KindSubcategory, ID: s.ID, Slug: seg, Entity: s}
		}
	}
	if c := r.country(seg, l); c != nil {
		return Segment{Kind: KindCountry, ID: c.ID, Slug: seg, Entity: c}
	}
	if prev != nil && prev.Kind == KindCountry {
		if c := r.city(seg, l, prev.ID); c != nil {
			return Segment{Kind: KindCity, ID: c.ID, Slug: seg, Entity: c}
		}
	}
	if id, ok := LeafID(seg); ok {
		return Segment{Kind: KindCompany, ID: id, Slug: seg}
	}
	return Segment{Kind: KindUnknown, Slug: seg}
}

// LeafID extracts the trailing id of a "<slug>-<digits>" segment.
func LeafID(seg string) (int64, bool) {
	m := leafPattern.FindStringSubmatch(seg)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

/*──────────────────────────── collection scans ────────────────────────────*/

func (r *Resolver) category(seg string, l lang.Lang) *refdata.Category {
	for i := range r.snap.Categories {
		if c := &r.snap.Categories[i]; r.m.Matches(c, seg, l) {
			return c
		}
	}
	return nil
}

func (r *Resolver) subcategory(seg string, l lang.Lang, parent int64) *refdata.Subcategory {
	for i := range r.snap.Subcategories {
		s := &r.snap.Subcategories[i]
		if s.CategoryID == parent && r.m.Matches(s, seg, l) {
			return s
		}
	}
	return nil
}

func (r *Resolver) country(seg string, l lang.Lang) *refdata.Country {
	for i := range r.snap.Countries {
		if c := &r.snap.Countries[i]; r.m.Matches(c, seg, l) {
			return c
		}
	}
	return nil
}

func (r *Resolver) city(seg string, l lang.Lang, parent int64) *refdata.City {
	for i := range r.snap.Cities {
		c := &r.snap.Cities[i]
		if c.CountryID == parent && r.m.Matches(c, seg, l) {
			return c
		}
	}
	return nil
}
