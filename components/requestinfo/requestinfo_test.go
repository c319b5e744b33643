package requestinfo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ri "github.com/yanizio/seoroute/internal/requestinfo"
)

func TestEcho(t *testing.T) {
	r := chi.NewRouter()
	r.Use(ri.Enrich)
	(&Comp{}).Routes(r)

	req := httptest.NewRequest(http.MethodGet, "/api/requestinfo?path=/firmy/projektowanie", nil)
	req.Header.Set("Accept-Language", "pl-PL,pl;q=0.9")
	req.Header.Set(ri.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		ID            string `json:"id"`
		PreferredLang string `json:"preferred_lang"`
		PathLang      string `json:"path_lang"`
		Alternates    []struct {
			Lang string
			Path string
		} `json:"alternates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "abc-123", body.ID)
	assert.Equal(t, "pl", body.PreferredLang)
	assert.Equal(t, "pl", body.PathLang)
	require.Len(t, body.Alternates, 5)
	assert.Equal(t, "/kompanii/projektowanie", body.Alternates[0].Path)
}

func TestEcho_WithoutMiddleware(t *testing.T) {
	r := chi.NewRouter()
	(&Comp{}).Routes(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/requestinfo", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
