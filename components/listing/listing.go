// components/listing/listing.go
//
// Listing component – resolves SEO filter paths and the localized
// /companies and /requests sections into a JSON page description.
//
// Routes
// ------
//   - GET /healthz          – snapshot counts and load time.
//   - GET /companies[/…]    – section listing or company detail.
//   - GET /requests[/…]     – same shape, requests section.
//   - GET /*                – filter listing (“/uk/dyzain/kyiv?zayavki=true”).
//
// Every successful response carries the canonical URL, one alternate per
// language plus x-default, and the rendered <head> fragment.  Paths that
// resolve to nothing answer 404 so crawlers drop them.
//
// The Localize middleware has already rewritten localized section
// prefixes to their canonical form by the time these handlers run, and has
// stored the language in the request context.
package listing

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/seoroute/internal/component"
	"github.com/yanizio/seoroute/internal/head"
	"github.com/yanizio/seoroute/internal/lang"
	"github.com/yanizio/seoroute/internal/links"
	"github.com/yanizio/seoroute/internal/metrics"
	"github.com/yanizio/seoroute/internal/refdata"
	"github.com/yanizio/seoroute/internal/requestinfo"
	"github.com/yanizio/seoroute/internal/resolve"
	"github.com/yanizio/seoroute/internal/routing"
)

// compile-time assertion
var _ component.Component = (*Comp)(nil)

// Comp implements component.Component.
type Comp struct {
	refdata component.SnapshotLoader
	matcher *resolve.Matcher
	base    string
	log     *zap.SugaredLogger
}

func (c *Comp) Name() string { return "listing" }

func (c *Comp) Init(d component.Deps) error {
	if d.Refdata == nil {
		return errors.New("listing: refdata loader is required")
	}
	c.refdata = d.Refdata
	c.matcher = d.Matcher
	if c.matcher == nil {
		c.matcher = resolve.NewMatcher(resolve.DefaultMemoSize)
	}
	c.base = d.BaseURL
	c.log = d.Log
	if c.log == nil {
		c.log = zap.S()
	}
	c.log = c.log.Named("listing")
	return nil
}

func (c *Comp) Routes(r chi.Router) {
	r.Get("/healthz", c.health)
	for _, section := range []string{routing.SectionCompanies, routing.SectionRequests} {
		h := c.section(section)
		r.Get("/"+section, h)
		r.Get("/"+section+"/*", h)
	}
	r.Get("/*", c.filters)
}

// Register component at package init.
func init() {
	component.Register(&Comp{})
}

/*──────────────────────────── response shape ───────────────────────────────*/

// Ref is one resolved entity in the language of the page.
type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// FilterRefs mirrors resolve.Filters for JSON output.
type FilterRefs struct {
	Category    *Ref `json:"category,omitempty"`
	Subcategory *Ref `json:"subcategory,omitempty"`
	Country     *Ref `json:"country,omitempty"`
	City        *Ref `json:"city,omitempty"`
}

// Page is the body of every successful listing response.
type Page struct {
	Lang       lang.Lang             `json:"lang"`
	Type       resolve.ListingType   `json:"type"`
	Kind       resolve.StructureKind `json:"kind,omitempty"`
	Filters    FilterRefs            `json:"filters"`
	CompanyID  int64                 `json:"company_id,omitempty"`
	Canonical  string                `json:"canonical"`
	Alternates map[string]string     `json:"alternates"`
	Head       string                `json:"head"`
}

/*──────────────────────────── handlers ─────────────────────────────────────*/

// filters serves the catch-all filter listing.
func (c *Comp) filters(w http.ResponseWriter, r *http.Request) {
	l := requestLang(r)
	t := resolve.ListingCompanies
	if r.URL.Query().Get("zayavki") == "true" {
		t = resolve.ListingRequests
	}

	snap := c.refdata.Load(r.Context())
	f := resolve.New(snap, c.matcher).ParseFilters(routing.SplitPath(r.URL.Path), l)
	if !f.Valid {
		c.notFound(w, r)
		return
	}

	page := Page{Lang: l, Type: t, Filters: refs(f, l)}
	hb := head.New(c.base)
	for _, alt := range lang.All {
		hb.Alternate(alt, resolve.BuildFilterURL(resolve.SelectionFrom(f, alt, t)))
	}
	hb.XDefault(resolve.BuildFilterURL(resolve.SelectionFrom(f, lang.Default, t)))
	hb.Canonical(resolve.BuildFilterURL(resolve.SelectionFrom(f, l, t)))
	hb.SetTitle(title(page.Filters))
	c.render(w, page, hb)
}

// section serves /companies and /requests, with or without a company leaf.
func (c *Comp) section(section string) http.HandlerFunc {
	t := resolve.ListingCompanies
	if section == routing.SectionRequests {
		t = resolve.ListingRequests
	}
	return func(w http.ResponseWriter, r *http.Request) {
		l := requestLang(r)
		rest := chi.URLParam(r, "*")

		snap := c.refdata.Load(r.Context())
		st := resolve.New(snap, c.matcher).Analyze(routing.SplitPath(rest), l)
		if !st.Valid {
			c.notFound(w, r)
			return
		}

		f := st.Filters()
		page := Page{Lang: l, Type: t, Kind: st.Kind, Filters: refs(f, l)}
		if st.Company != nil {
			page.CompanyID = st.Company.ID
		}

		hb := head.New(c.base)
		for _, alt := range lang.All {
			hb.Alternate(alt, sectionPath(section, st, alt))
		}
		hb.XDefault(sectionPath(section, st, lang.Default))
		hb.Canonical(sectionPath(section, st, l))
		hb.SetTitle(title(page.Filters))
		c.render(w, page, hb)
	}
}

// health reports the published snapshot without triggering a load.
func (c *Comp) health(w http.ResponseWriter, _ *http.Request) {
	snap := c.refdata.Current()
	out := map[string]any{
		"status": "ok",
		"counts": snap.Counts(),
	}
	if !snap.LoadedAt.IsZero() {
		out["loaded_at"] = snap.LoadedAt.UTC().Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, out)
}

/*──────────────────────────── helpers ──────────────────────────────────────*/

func (c *Comp) render(w http.ResponseWriter, page Page, hb *head.Builder) {
	page.Canonical = hb.CanonicalHref()
	page.Alternates = hb.AlternateHrefs()
	page.Head = string(hb.HTML())
	writeJSON(w, http.StatusOK, page)
}

func (c *Comp) notFound(w http.ResponseWriter, r *http.Request) {
	bot := requestinfo.IsBot(r.Context())
	metrics.FilterNotFoundTotal.WithLabelValues(strconv.FormatBool(bot)).Inc()
	c.log.Debugw("unresolved path", "path", r.URL.Path, "bot", bot)
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
}

// requestLang prefers the language set by Localize, then the path prefix.
func requestLang(r *http.Request) lang.Lang {
	if l, ok := lang.FromContext(r.Context()); ok {
		return l
	}
	return links.LangFromPathname(r.URL.Path)
}

// sectionPath builds the canonical section URL in language l: the localized
// section segment, the kept filters in slot order, then the company leaf.
func sectionPath(section string, st resolve.Structure, l lang.Lang) string {
	route, ok := routing.SectionRoute(section, l)
	if !ok {
		route = section
	}
	segs := []string{route}
	for _, s := range []*resolve.Segment{st.Category, st.Subcategory, st.Country, st.City} {
		if s == nil || s.Entity == nil {
			continue
		}
		if slug := refdata.CanonicalSlug(s.Entity, l); slug != "" {
			segs = append(segs, slug)
		}
	}
	if st.Company != nil {
		segs = append(segs, st.Company.Slug)
	}
	return "/" + strings.Join(segs, "/")
}

func refs(f resolve.Filters, l lang.Lang) FilterRefs {
	return FilterRefs{
		Category:    ref(f.Category, l),
		Subcategory: ref(f.Subcategory, l),
		Country:     ref(f.Country, l),
		City:        ref(f.City, l),
	}
}

func ref(s *resolve.Segment, l lang.Lang) *Ref {
	if s == nil || s.Entity == nil {
		return nil
	}
	return &Ref{
		ID:   s.ID,
		Name: refdata.DisplayName(s.Entity, l),
		Slug: refdata.CanonicalSlug(s.Entity, l),
	}
}

// title joins the display names, most specific first.
func title(f FilterRefs) string {
	var parts []string
	for _, r := range []*Ref{f.Subcategory, f.Category, f.City, f.Country} {
		if r != nil && r.Name != "" {
			parts = append(parts, r.Name)
		}
	}
	if len(parts) == 0 {
		return "All"
	}
	return strings.Join(parts, " – ")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
