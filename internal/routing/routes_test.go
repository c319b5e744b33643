// internal/routing/routes_test.go
//
// Route-table invariants: bijectivity, disjointness, and the startup guard.

package routing

import (
	"testing"

	"github.com/yanizio/seoroute/internal/lang"
)

func TestRouteTable_Bijective(t *testing.T) {
	for _, l := range lang.All {
		if got, ok := LangForCompanyRoute(CompanyRoutes[l]); !ok || got != l {
			t.Fatalf("company route %q → %q, want %q", CompanyRoutes[l], got, l)
		}
		if got, ok := LangForRequestRoute(RequestRoutes[l]); !ok || got != l {
			t.Fatalf("request route %q → %q, want %q", RequestRoutes[l], got, l)
		}
	}
}

func TestRouteTable_Disjoint(t *testing.T) {
	for _, c := range CompanyRoutes {
		if _, clash := LangForRequestRoute(c); clash {
			t.Fatalf("%q is both a company and a request route", c)
		}
	}
}

func TestLookupSection(t *testing.T) {
	sec, l, ok := LookupSection("zlecenia")
	if !ok || sec != SectionRequests || l != lang.PL {
		t.Fatalf("LookupSection(zlecenia) = %q %q %v", sec, l, ok)
	}
	sec, l, ok = LookupSection("kompanii")
	if !ok || sec != SectionCompanies || l != lang.UK {
		t.Fatalf("LookupSection(kompanii) = %q %q %v", sec, l, ok)
	}
	if _, _, ok := LookupSection("Kompanii"); ok {
		t.Fatalf("reverse lookup must be exact-match")
	}
}

func TestValidateRouteTable(t *testing.T) {
	if err := ValidateRouteTable([]string{"api", "/static/", "_next"}); err != nil {
		t.Fatalf("default table should validate: %v", err)
	}
	if err := ValidateRouteTable([]string{"/firmy/"}); err == nil {
		t.Fatalf("reserved prefix collision not detected")
	}
}

func TestValidateRouteTable_DetectsOverlap(t *testing.T) {
	orig := RequestRoutes[lang.DE]
	RequestRoutes[lang.DE] = CompanyRoutes[lang.DE]
	defer func() { RequestRoutes[lang.DE] = orig }()

	if err := ValidateRouteTable(nil); err == nil {
		t.Fatalf("company/request overlap not detected")
	}
}
