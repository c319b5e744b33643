// internal/component/deps.go
package component

import (
	"context"

	"go.uber.org/zap"

	"github.com/yanizio/seoroute/internal/refdata"
	"github.com/yanizio/seoroute/internal/resolve"
)

// SnapshotLoader is the part of *refdata.Loader that components use.
type SnapshotLoader interface {
	Load(ctx context.Context) *refdata.Snapshot
	Current() *refdata.Snapshot
}

// Deps exposes shared resources to Components during Init.
type Deps struct {
	Refdata SnapshotLoader
	Matcher *resolve.Matcher
	BaseURL string // public origin for canonical and hreflang hrefs
	Log     *zap.SugaredLogger
}
