// internal/refdata/http_source.go
//
// REST-backed Source.
//
// Context
// -------
// The backend exposes one list endpoint per collection
// (GET {base}/api/categories/ …).  Responses are either a bare JSON array
// or a paginated envelope {"results": [...]}; both decode into the same
// slice.  Envelopes with a "next" link are followed until exhausted.
//
// Notes
// -----
// • Retries are resty's (two, with short backoff); the loader adds the
//   overall fetch timeout through ctx.
// • Any non-2xx status is an error.  The loader turns every error into the
//   fail-soft empty snapshot.

package refdata

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"resty.dev/v3"
)

// Endpoints are paths relative to the base URL.
type Endpoints struct {
	Categories    string
	Subcategories string
	Countries     string
	Cities        string
}

// DefaultEndpoints matches the backend's router.
var DefaultEndpoints = Endpoints{
	Categories:    "/api/categories/",
	Subcategories: "/api/subcategories/",
	Countries:     "/api/countries/",
	Cities:        "/api/cities/",
}

// maxPages bounds pagination so a misbehaving backend cannot loop forever.
const maxPages = 100

// HTTPSource implements Source over the backend REST API.
type HTTPSource struct {
	client    *resty.Client
	endpoints Endpoints
}

// NewHTTPSource builds a resty client for baseURL.  Zero-valued endpoint
// fields fall back to DefaultEndpoints.
func NewHTTPSource(baseURL string, ep Endpoints) *HTTPSource {
	if ep.Categories == "" {
		ep.Categories = DefaultEndpoints.Categories
	}
	if ep.Subcategories == "" {
		ep.Subcategories = DefaultEndpoints.Subcategories
	}
	if ep.Countries == "" {
		ep.Countries = DefaultEndpoints.Countries
	}
	if ep.Cities == "" {
		ep.Cities = DefaultEndpoints.Cities
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(200*time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		SetHeader("Accept", "application/json")

	return &HTTPSource{client: client, endpoints: ep}
}

// Close releases idle connections held by the resty client.
func (s *HTTPSource) Close() error {
	return s.client.Close()
}

func (s *HTTPSource) Categories(ctx context.Context) ([]Category, error) {
	return fetchList[Category](ctx, s.client, s.endpoints.Categories)
}

func (s *HTTPSource) Subcategories(ctx context.Context) ([]Subcategory, error) {
	return fetchList[Subcategory](ctx, s.client, s.endpoints.Subcategories)
}

func (s *HTTPSource) Countries(ctx context.Context) ([]Country, error) {
	return fetchList[Country](ctx, s.client, s.endpoints.Countries)
}

func (s *HTTPSource) Cities(ctx context.Context) ([]City, error) {
	return fetchList[City](ctx, s.client, s.endpoints.Cities)
}

/*──────────────────────────── decoding ────────────────────────────────────*/

// page accepts a bare array or a {"results": [...], "next": "..."} envelope.
type page[T any] struct {
	Items []T
	Next  string
}

func (p *page[T]) UnmarshalJSON(b []byte) error {
	if err := json.Unmarshal(b, &p.Items); err == nil {
		return nil
	}
	var env struct {
		Results []T     `json:"results"`
		Next    *string `json:"next"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	p.Items = env.Results
	if env.Next != nil {
		p.Next = *env.Next
	}
	return nil
}

func fetchList[T any](ctx context.Context, c *resty.Client, path string) ([]T, error) {
	out := []T{}
	url := path
	for i := 0; i < maxPages && url != ""; i++ {
		var p page[T]
		resp, err := c.R().
			SetContext(ctx).
			SetResult(&p).
			Get(url)
		if err != nil {
			return nil, fmt.Errorf("refdata: GET %s: %w", url, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("refdata: GET %s: status %s", url, resp.Status())
		}
		out = append(out, p.Items...)
		url = p.Next
	}
	return out, nil
}
