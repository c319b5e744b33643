// internal/refdata/source.go
//
// Source and SnapshotStore contracts.

package refdata

import (
	"context"
	"errors"
)

// Source fetches the four reference collections.  Each call is independent
// so the loader can issue them concurrently.
type Source interface {
	Categories(ctx context.Context) ([]Category, error)
	Subcategories(ctx context.Context) ([]Subcategory, error)
	Countries(ctx context.Context) ([]Country, error)
	Cities(ctx context.Context) ([]City, error)
}

// ErrStoreMiss is returned by SnapshotStore.Get when nothing is stored.
var ErrStoreMiss = errors.New("refdata: snapshot not in store")

// SnapshotStore shares a published snapshot between processes so that only
// one of them has to hit the backend per TTL window.
type SnapshotStore interface {
	Get(ctx context.Context) (*Snapshot, error)
	Put(ctx context.Context, s *Snapshot) error
}
