package component

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stub struct {
	name    string
	initErr error
	inited  bool
}

func (s *stub) Name() string { return s.name }
func (s *stub) Init(Deps) error {
	s.inited = true
	return s.initErr
}
func (s *stub) Routes(r chi.Router) {
	r.Get("/"+s.name, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(s.name))
	})
}

func reset(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := registry
	registry = map[string]Component{}
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		registry = saved
		mu.Unlock()
	})
}

func TestMount_RegistersRoutesInNameOrder(t *testing.T) {
	reset(t)
	b, a := &stub{name: "beta"}, &stub{name: "alpha"}
	Register(b)
	Register(a)
	assert.Equal(t, []string{"alpha", "beta"}, AllNames())

	r := chi.NewRouter()
	require.NoError(t, Mount(r, Deps{}))
	assert.True(t, a.inited)
	assert.True(t, b.inited)

	for _, name := range []string{"alpha", "beta"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+name, nil))
		assert.Equal(t, name, rec.Body.String())
	}
}

func TestMount_InitError(t *testing.T) {
	reset(t)
	Register(&stub{name: "broken", initErr: errors.New("boom")})
	err := Mount(chi.NewRouter(), Deps{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "component broken: init: boom")
}
