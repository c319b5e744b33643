// internal/routing/routes.go
//
// Localized route table.
//
// Context
// -------
// Company and request listings are reachable under one localized first
// segment per language (“kompanii”, “firmy”, …).  Internally every handler is
// mounted under the canonical prefixes /companies and /requests; the
// Localize middleware maps one onto the other.
//
// The two value sets must never intersect each other, a language code, the
// “all” sentinel, or any reserved prefix used elsewhere in routing.  A
// collision silently misclassifies requests, so ValidateRouteTable runs at
// startup and the process refuses to boot on failure.
//
// Notes
// -----
// • Reverse lookups are exact-match; callers lower-case nothing.
// • Oxford commas, two spaces after periods.

package routing

import (
	"fmt"
	"strings"

	"github.com/yanizio/seoroute/internal/lang"
)

// Canonical internal prefixes.
const (
	SectionCompanies = "companies"
	SectionRequests  = "requests"
)

// AllSegment is the filter path used when no category or country is selected.
const AllSegment = "all"

// CompanyRoutes maps each language to its localized company-listing segment.
var CompanyRoutes = map[lang.Lang]string{
	lang.UK: "kompanii",
	lang.EN: "companies",
	lang.PL: "firmy",
	lang.FR: "entreprises",
	lang.DE: "unternehmen",
}

// RequestRoutes maps each language to its localized request-listing segment.
var RequestRoutes = map[lang.Lang]string{
	lang.UK: "zayavki",
	lang.EN: "requests",
	lang.PL: "zlecenia",
	lang.FR: "demandes",
	lang.DE: "auftrage",
}

var (
	companyByRoute = invert(CompanyRoutes)
	requestByRoute = invert(RequestRoutes)
)

func invert(m map[lang.Lang]string) map[string]lang.Lang {
	out := make(map[string]lang.Lang, len(m))
	for l, seg := range m {
		out[seg] = l
	}
	return out
}

// LangForCompanyRoute returns the language whose company route is segment.
func LangForCompanyRoute(segment string) (lang.Lang, bool) {
	l, ok := companyByRoute[segment]
	return l, ok
}

// LangForRequestRoute returns the language whose request route is segment.
func LangForRequestRoute(segment string) (lang.Lang, bool) {
	l, ok := requestByRoute[segment]
	return l, ok
}

// SectionRoute returns the localized first segment of section for l.
func SectionRoute(section string, l lang.Lang) (string, bool) {
	switch section {
	case SectionCompanies:
		seg, ok := CompanyRoutes[l]
		return seg, ok
	case SectionRequests:
		seg, ok := RequestRoutes[l]
		return seg, ok
	}
	return "", false
}

// LookupSection classifies a first path segment as a localized company or
// request route.  ok is false for anything else.
func LookupSection(segment string) (section string, l lang.Lang, ok bool) {
	if l, ok := LangForCompanyRoute(segment); ok {
		return SectionCompanies, l, true
	}
	if l, ok := LangForRequestRoute(segment); ok {
		return SectionRequests, l, true
	}
	return "", "", false
}

// ValidateRouteTable checks the structural invariants of both tables against
// the reserved first segments used elsewhere (e.g. "api", "static").
func ValidateRouteTable(reserved []string) error {
	seen := make(map[string]string, 2*len(lang.All))

	check := func(table string, m map[lang.Lang]string) error {
		if len(m) != len(lang.All) {
			return fmt.Errorf("%s routes: %d entries, want %d", table, len(m), len(lang.All))
		}
		for _, l := range lang.All {
			seg, ok := m[l]
			if !ok || seg == "" {
				return fmt.Errorf("%s routes: missing language %q", table, l)
			}
			if seg != strings.ToLower(seg) || strings.Contains(seg, "/") {
				return fmt.Errorf("%s routes: %q must be a lowercase single segment", table, seg)
			}
			if prev, dup := seen[seg]; dup {
				return fmt.Errorf("%s routes: %q already used by %s", table, seg, prev)
			}
			seen[seg] = table + "/" + string(l)
		}
		return nil
	}
	if err := check("company", CompanyRoutes); err != nil {
		return err
	}
	if err := check("request", RequestRoutes); err != nil {
		return err
	}

	forbidden := append([]string{AllSegment}, reserved...)
	for _, l := range lang.All {
		forbidden = append(forbidden, string(l))
	}
	for _, f := range forbidden {
		f = strings.ToLower(strings.Trim(f, "/"))
		if owner, clash := seen[f]; clash {
			return fmt.Errorf("route %q (%s) collides with reserved segment", f, owner)
		}
	}
	return nil
}
