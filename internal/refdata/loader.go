// internal/refdata/loader.go
//
// Reference-data loader and cache.
//
// Context
// -------
// Every resolution pass reads the four collections.  The Loader keeps the
// current Snapshot behind an atomic pointer; readers never lock and never
// observe a half-updated set.  Load():
//
//   1. Returns the published snapshot while it is fresh.
//   2. Otherwise collapses concurrent callers onto one fetch (singleflight).
//   3. Consults the optional SnapshotStore (shared Redis copy).
//   4. Fetches the four collections concurrently (errgroup) under
//      FetchTimeout.  All four must succeed.
//   5. Publishes the result with one pointer swap and writes it back to
//      the store.
//
// Failure policy
// --------------
// Load never returns an error and never panics.  When a fetch fails:
//
//   • a previous good snapshot keeps being served, and the fetch is retried
//     once RetryBackoff has passed;
//   • with nothing published yet, EmptySnapshot() is returned and nothing
//     is cached; the next fetch happens once RetryBackoff has passed.
//
// A failure in one collection discards the whole batch; subcategory and
// city parents must come from the same fetch as their children.
//
// Notes
// -----
// • TTL == 0 keeps the first successful snapshot for the process lifetime.
// • StartRefresher optionally refreshes in the background so request
//   goroutines rarely pay for a fetch.
// • Oxford commas, two spaces after periods.

package refdata

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/yanizio/seoroute/internal/metrics"
)

// Options tunes a Loader.
type Options struct {
	// TTL is the freshness window of a published snapshot; 0 means forever.
	TTL time.Duration

	// FetchTimeout bounds one fetch of all four collections.  0 means 5s.
	FetchTimeout time.Duration

	// RetryBackoff stops a stale-but-present snapshot from triggering a
	// fetch on every request while the source is down.  0 means 10s.
	RetryBackoff time.Duration

	// Store is optional.
	Store SnapshotStore

	// Now is the clock; tests replace it.
	Now func() time.Time
}

// Loader is safe for concurrent use.  Create one per process and share it.
type Loader struct {
	src  Source
	opts Options
	log  *zap.Logger

	cur      atomic.Pointer[Snapshot]
	sfg      singleflight.Group
	failedAt atomic.Int64 // unix nanos of the last failed fetch, 0 after success
}

// NewLoader returns a Loader over src.  Nothing is fetched until the first
// Load or Refresh.
func NewLoader(src Source, opts Options) *Loader {
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 5 * time.Second
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = 10 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Loader{src: src, opts: opts, log: zap.L().Named("refdata")}
}

/*──────────────────────────── public API ──────────────────────────────────*/

// Load returns the current snapshot, fetching it when missing or stale.
// The result is never nil.
func (l *Loader) Load(ctx context.Context) *Snapshot {
	if s := l.cur.Load(); s != nil && l.fresh(s) {
		return s
	}

	v, _, _ := l.sfg.Do("load", func() (any, error) {
		// Double-check after singleflight barrier.
		s := l.cur.Load()
		if s != nil && l.fresh(s) {
			return s, nil
		}
		if l.backingOff() {
			if s != nil {
				return s, nil
			}
			return EmptySnapshot(), nil
		}
		return l.reload(ctx, true), nil
	})
	return v.(*Snapshot)
}

// Refresh fetches from the source unconditionally, bypassing the store
// read, and publishes on success.  Used for warm-up and by the refresher.
func (l *Loader) Refresh(ctx context.Context) error {
	_, err, _ := l.sfg.Do("refresh", func() (any, error) {
		snap, err := l.fetch(ctx)
		if err != nil {
			l.failedAt.Store(l.opts.Now().UnixNano())
			metrics.RefdataLoadTotal.WithLabelValues("error").Inc()
			return nil, err
		}
		l.publish(snap)
		l.writeStore(ctx, snap)
		metrics.RefdataLoadTotal.WithLabelValues("ok").Inc()
		return snap, nil
	})
	return err
}

// Current returns the published snapshot without loading.  Before the first
// successful load it returns an empty snapshot.
func (l *Loader) Current() *Snapshot {
	if s := l.cur.Load(); s != nil {
		return s
	}
	return EmptySnapshot()
}

// StartRefresher calls Refresh every interval until ctx is done.  Errors are
// logged; the previous snapshot stays published.
func (l *Loader) StartRefresher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if err := l.Refresh(ctx); err != nil {
					l.log.Warn("background refresh failed", zap.Error(err))
				}
			}
		}
	}()
}

/*──────────────────────────── internals ───────────────────────────────────*/

func (l *Loader) fresh(s *Snapshot) bool {
	if l.opts.TTL == 0 {
		return true
	}
	return l.opts.Now().Sub(s.LoadedAt) < l.opts.TTL
}

// reload runs under the singleflight barrier.  It always returns a snapshot.
func (l *Loader) reload(ctx context.Context, useStore bool) *Snapshot {
	// The first caller's cancellation must not fail every collapsed caller.
	ctx = context.WithoutCancel(ctx)

	if useStore && l.opts.Store != nil {
		if snap := l.readStore(ctx); snap != nil && l.fresh(snap) {
			l.publish(snap)
			metrics.RefdataLoadTotal.WithLabelValues("store_hit").Inc()
			return snap
		}
	}

	snap, err := l.fetch(ctx)
	if err != nil {
		l.failedAt.Store(l.opts.Now().UnixNano())
		if prev := l.cur.Load(); prev != nil {
			l.log.Warn("refresh failed, serving previous snapshot",
				zap.Time("loaded_at", prev.LoadedAt), zap.Error(err))
			metrics.RefdataLoadTotal.WithLabelValues("stale").Inc()
			return prev
		}
		l.log.Error("reference data unavailable, serving empty snapshot", zap.Error(err))
		metrics.RefdataLoadTotal.WithLabelValues("error").Inc()
		return EmptySnapshot()
	}

	l.publish(snap)
	l.writeStore(ctx, snap)
	metrics.RefdataLoadTotal.WithLabelValues("ok").Inc()
	return snap
}

// fetch pulls all four collections concurrently.  Any error cancels the
// rest and fails the batch.
func (l *Loader) fetch(ctx context.Context) (*Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, l.opts.FetchTimeout)
	defer cancel()

	snap := &Snapshot{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Categories, err = l.src.Categories(gctx)
		return named("categories", err)
	})
	g.Go(func() (err error) {
		snap.Subcategories, err = l.src.Subcategories(gctx)
		return named("subcategories", err)
	})
	g.Go(func() (err error) {
		snap.Countries, err = l.src.Countries(gctx)
		return named("countries", err)
	})
	g.Go(func() (err error) {
		snap.Cities, err = l.src.Cities(gctx)
		return named("cities", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	normalize(snap)
	snap.LoadedAt = l.opts.Now()
	return snap, nil
}

// backingOff reports whether the last failure is recent enough to skip a
// fetch.
func (l *Loader) backingOff() bool {
	at := l.failedAt.Load()
	return at != 0 && l.opts.Now().Sub(time.Unix(0, at)) < l.opts.RetryBackoff
}

func (l *Loader) publish(snap *Snapshot) {
	normalize(snap)
	l.failedAt.Store(0)
	l.cur.Store(snap)
	for coll, n := range snap.Counts() {
		metrics.RefdataEntities.WithLabelValues(coll).Set(float64(n))
	}
	l.log.Info("reference data published",
		zap.Int("categories", len(snap.Categories)),
		zap.Int("subcategories", len(snap.Subcategories)),
		zap.Int("countries", len(snap.Countries)),
		zap.Int("cities", len(snap.Cities)),
		zap.Time("loaded_at", snap.LoadedAt))
}

func (l *Loader) readStore(ctx context.Context) *Snapshot {
	snap, err := l.opts.Store.Get(ctx)
	if err != nil {
		if !errors.Is(err, ErrStoreMiss) {
			l.log.Warn("snapshot store read failed", zap.Error(err))
		}
		return nil
	}
	return snap
}

func (l *Loader) writeStore(ctx context.Context, snap *Snapshot) {
	if l.opts.Store == nil {
		return
	}
	if err := l.opts.Store.Put(ctx, snap); err != nil {
		l.log.Warn("snapshot store write failed", zap.Error(err))
	}
}

// normalize replaces nil collections with empty ones.
func normalize(s *Snapshot) {
	if s.Categories == nil {
		s.Categories = []Category{}
	}
	if s.Subcategories == nil {
		s.Subcategories = []Subcategory{}
	}
	if s.Countries == nil {
		s.Countries = []Country{}
	}
	if s.Cities == nil {
		s.Cities = []City{}
	}
}

type collectionError struct {
	collection string
	err        error
}

func (e *collectionError) Error() string { return e.collection + ": " + e.err.Error() }
func (e *collectionError) Unwrap() error { return e.err }

func named(collection string, err error) error {
	if err == nil {
		return nil
	}
	return &collectionError{collection: collection, err: err}
}
