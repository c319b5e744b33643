package head

import (
	"strings"
	"testing"

	"github.com/yanizio/seoroute/internal/lang"
)

func TestBuilder_LinksOrderAndEscaping(t *testing.T) {
	b := New("https://example.com/")
	b.Canonical("/uk/dyzain?zayavki=true")
	b.Alternate(lang.UK, "/uk/dyzain")
	b.Alternate(lang.EN, "/design")
	b.Alternate(lang.EN, "/design") // duplicate language overwrites
	b.XDefault("/design")

	got := string(b.Links())
	want := `<link rel="canonical" href="https://example.com/uk/dyzain?zayavki=true">` +
		`<link rel="alternate" hreflang="en" href="https://example.com/design">` +
		`<link rel="alternate" hreflang="uk" href="https://example.com/uk/dyzain">` +
		`<link rel="alternate" hreflang="x-default" href="https://example.com/design">`
	if got != want {
		t.Fatalf("Links()\n got: %s\nwant: %s", got, want)
	}
	if len(b.AlternateHrefs()) != 3 {
		t.Fatalf("alternates = %v", b.AlternateHrefs())
	}
}

func TestBuilder_TitleAndMeta(t *testing.T) {
	b := New("")
	b.SetTitle("Design & Logo")
	b.Meta(`<meta name="robots" content="noindex">`)
	b.Meta(`<meta name="robots" content="noindex">`)

	html := string(b.HTML())
	if !strings.HasPrefix(html, "<title>Design &amp; Logo</title>") {
		t.Fatalf("title not escaped: %s", html)
	}
	if strings.Count(html, "robots") != 1 {
		t.Fatalf("meta not deduplicated: %s", html)
	}
}

func TestBuilder_RelativeHrefs(t *testing.T) {
	b := New("")
	b.Canonical("/all")
	if b.CanonicalHref() != "/all" {
		t.Fatalf("got %q", b.CanonicalHref())
	}
	if New("").Title() != "" || New("").Links() != "" {
		t.Fatalf("empty builder should render nothing")
	}
}
