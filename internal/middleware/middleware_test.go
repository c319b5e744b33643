package middleware

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestForceHTTPS(t *testing.T) {
	cases := []struct {
		name    string
		enabled bool
		host    string
		tls     bool
		proto   string
		want    int
	}{
		{"disabled", false, "example.com", false, "", http.StatusOK},
		{"plain http", true, "example.com", false, "", http.StatusPermanentRedirect},
		{"tls", true, "example.com", true, "", http.StatusOK},
		{"proxy tls", true, "example.com", false, "https", http.StatusOK},
		{"localhost", true, "localhost:8080", false, "", http.StatusOK},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/kompanii?page=2", nil)
			req.Host = c.host
			if c.tls {
				req.TLS = &tls.ConnectionState{}
			}
			if c.proto != "" {
				req.Header.Set("X-Forwarded-Proto", c.proto)
			}
			rr := httptest.NewRecorder()
			ForceHTTPS(c.enabled)(ok).ServeHTTP(rr, req)

			if rr.Code != c.want {
				t.Fatalf("status = %d, want %d", rr.Code, c.want)
			}
			if c.want == http.StatusPermanentRedirect {
				if loc := rr.Header().Get("Location"); loc != "https://example.com/kompanii?page=2" {
					t.Fatalf("Location = %q", loc)
				}
			}
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	rr := httptest.NewRecorder()
	Security(false)(ok).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("nosniff missing")
	}
	if rr.Header().Get("Strict-Transport-Security") != "" {
		t.Fatalf("HSTS set while disabled")
	}

	rr = httptest.NewRecorder()
	Security(true)(ok).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Header().Get("Strict-Transport-Security") == "" {
		t.Fatalf("HSTS missing")
	}
}
