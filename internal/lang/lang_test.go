package lang

import (
	"context"
	"testing"
)

func TestParse(t *testing.T) {
	cases := map[string]Lang{"uk": UK, "EN": EN, " pl ": PL, "fr": FR, "de": DE}
	for in, want := range cases {
		got, ok := Parse(in)
		if !ok || got != want {
			t.Fatalf("Parse(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := Parse("ru"); ok {
		t.Fatalf("Parse(ru) should fail")
	}
}

func TestIsCode(t *testing.T) {
	if !IsCode("uk") {
		t.Fatalf("uk should be a code")
	}
	if IsCode("UK") || IsCode("all") || IsCode("") {
		t.Fatalf("only exact lowercase codes qualify")
	}
}

func TestNegotiate(t *testing.T) {
	cases := []struct {
		header string
		want   Lang
	}{
		{"", EN},
		{"uk-UA,uk;q=0.9,en;q=0.8", UK},
		{"de-CH", DE},
		{"fr-CA;q=0.8, pl;q=0.9", PL},
		{"ja", EN},
		{";;;", EN},
	}
	for _, c := range cases {
		if got := Negotiate(c.header); got != c.want {
			t.Fatalf("Negotiate(%q) = %q, want %q", c.header, got, c.want)
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Fatalf("empty context should not carry a language")
	}
	ctx := WithContext(context.Background(), PL)
	if got, ok := FromContext(ctx); !ok || got != PL {
		t.Fatalf("FromContext = %q, %v", got, ok)
	}
}
