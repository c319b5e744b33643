// internal/component/registry.go
//
// Component registry (cycle-free).
//
// Each concrete component lives under components/<name> and calls
// component.Register() in an init() function.  main.go blank-imports the
// components it ships, then calls Mount() once the reference-data loader
// exists.  Mount() initialises every component with the shared Deps and
// lets it register its routes on the root router.
//
// Notes
// -----
// • Components register patterns on the router they are given rather than
//   returning a sub-router, so two components may share the “/” prefix
//   without a chi mount conflict.
// • Mount order is by Name() so route registration is deterministic.
// • Oxford commas, two spaces after periods.

package component

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Component contract.
//
// Routes() should register BOTH page and API endpoints, e.g:
//
//	r.Get("/companies/*", h.section)
//	r.Get("/api/requestinfo", h.echo)
type Component interface {
	Name() string
	Init(Deps) error
	Routes(r chi.Router)
}

var (
	mu       sync.RWMutex
	registry = map[string]Component{}
)

// Register is invoked from component init() functions.  Registering the
// same name twice replaces the earlier component.
func Register(c Component) {
	mu.Lock()
	registry[c.Name()] = c
	mu.Unlock()
}

// All returns every registered component sorted by name.
func All() []Component {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Component, 0, len(registry))
	for _, c := range registry {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// AllNames returns the registered component names, sorted.
func AllNames() []string {
	all := All()
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = c.Name()
	}
	return names
}

// Mount initialises each component with deps and registers its routes on r.
// The first Init error aborts; routes of earlier components stay mounted.
func Mount(r chi.Router, deps Deps) error {
	for _, c := range All() {
		if err := c.Init(deps); err != nil {
			return fmt.Errorf("component %s: init: %w", c.Name(), err)
		}
		c.Routes(r)
	}
	return nil
}
