package links

import (
	"testing"

	"github.com/yanizio/seoroute/internal/lang"
)

func TestLangPath(t *testing.T) {
	cases := []struct {
		path string
		l    lang.Lang
		want string
	}{
		{"/companies/acme-12", lang.UK, "/kompanii/acme-12"},
		{"/companies", lang.DE, "/unternehmen"},
		{"/requests/design", lang.PL, "/zlecenia/design"},
		{"/requests/design", lang.EN, "/requests/design"},
		{"/design/ukraine", lang.EN, "/design/ukraine"},
		{"/design/ukraine", lang.FR, "/fr/design/ukraine"},
		{"/", lang.UK, "/uk"},
		{"/", lang.EN, "/"},
		{"/uk/design", lang.PL, "/pl/design"},
		{"/uk/design", lang.EN, "/design"},
		{"/kompanii/acme-12", lang.FR, "/entreprises/acme-12"},
	}
	for _, c := range cases {
		if got := LangPath(c.path, c.l); got != c.want {
			t.Errorf("LangPath(%q, %s) = %q, want %q", c.path, c.l, got, c.want)
		}
	}
}

func TestLangPath_UnknownLangKeepsSection(t *testing.T) {
	l := lang.Lang("xx")
	if got := LangPath("/kompanii/acme-12", l); got != "/companies/acme-12" {
		t.Fatalf("company section: got %q", got)
	}
	if got := LangPath("/zayavki", l); got != "/requests" {
		t.Fatalf("request section: got %q", got)
	}
}

func TestLangFromPathname(t *testing.T) {
	cases := map[string]lang.Lang{
		"":                 lang.EN,
		"/":                lang.EN,
		"/kompanii/x":      lang.UK,
		"/zlecenia":        lang.PL,
		"/entreprises/a/b": lang.FR,
		"/companies":       lang.EN,
		"/de/design":       lang.DE,
		"/DE/design":       lang.EN,
		"/design/ukraine":  lang.EN,
	}
	for in, want := range cases {
		if got := LangFromPathname(in); got != want {
			t.Errorf("LangFromPathname(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSwitchLang(t *testing.T) {
	cases := []struct {
		cur  string
		l    lang.Lang
		want string
	}{
		{"/kompanii/budivnytstvo?page=2", lang.DE, "/unternehmen/budivnytstvo?page=2"},
		{"/uk/design/ukraina?zayavki=true", lang.EN, "/design/ukraina?zayavki=true"},
		{"/design", lang.UK, "/uk/design"},
		{"/pl", lang.FR, "/fr"},
		{"/zayavki#top", lang.EN, "/requests#top"},
	}
	for _, c := range cases {
		if got := SwitchLang(c.cur, c.l); got != c.want {
			t.Errorf("SwitchLang(%q, %s) = %q, want %q", c.cur, c.l, got, c.want)
		}
	}
}

func TestSwitchLang_RoundTrip(t *testing.T) {
	for _, from := range lang.All {
		for _, to := range lang.All {
			p := SwitchLang("/companies/acme-3", from)
			back := SwitchLang(SwitchLang(p, to), from)
			if back != p {
				t.Errorf("%s→%s→%s: %q became %q", from, to, from, p, back)
			}
			if got := LangFromPathname(SwitchLang(p, to)); got != to {
				t.Errorf("LangFromPathname after switch to %s = %s", to, got)
			}
		}
	}
}

func TestAlternates(t *testing.T) {
	alts := Alternates("/uk/design")
	if len(alts) != len(lang.All) {
		t.Fatalf("got %d alternates", len(alts))
	}
	want := map[lang.Lang]string{
		lang.UK: "/uk/design",
		lang.EN: "/design",
		lang.PL: "/pl/design",
		lang.FR: "/fr/design",
		lang.DE: "/de/design",
	}
	for _, a := range alts {
		if want[a.Lang] != a.Path {
			t.Errorf("alternate %s = %q, want %q", a.Lang, a.Path, want[a.Lang])
		}
	}
}
