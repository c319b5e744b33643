package refdata

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var errBackend = errors.New("backend down")

// fakeSource serves fixed data; fail names a collection that errors.
type fakeSource struct {
	mu    sync.Mutex
	fail  string
	delay time.Duration
	block bool // wait for ctx.Done()
	calls atomic.Int32

	cats  []Category
	subs  []Subcategory
	ctrs  []Country
	cties []City
}

func sampleSource() *fakeSource {
	return &fakeSource{
		cats: []Category{
			{Entity: Entity{ID: 5, NameEN: "Design", NameUK: "Дизайн"}},
			{Entity: Entity{ID: 7, NameEN: "Construction", NameUK: "Будівництво"}},
		},
		subs: []Subcategory{
			{Entity: Entity{ID: 51, NameEN: "Logo"}, CategoryID: 5},
		},
		ctrs: []Country{
			{Entity: Entity{ID: 1, NameEN: "Ukraine", NameUK: "Україна"}},
		},
		cties: []City{
			{Entity: Entity{ID: 11, NameEN: "Kyiv", NameUK: "Київ"}, CountryID: 1},
		},
	}
}

func (f *fakeSource) setFail(c string) {
	f.mu.Lock()
	f.fail = c
	f.mu.Unlock()
}

func (f *fakeSource) gate(ctx context.Context, coll string) error {
	if coll == "categories" {
		f.calls.Add(1)
	}
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail == coll {
		return errBackend
	}
	return nil
}

func (f *fakeSource) Categories(ctx context.Context) ([]Category, error) {
	if err := f.gate(ctx, "categories"); err != nil {
		return nil, err
	}
	return f.cats, nil
}

func (f *fakeSource) Subcategories(ctx context.Context) ([]Subcategory, error) {
	if err := f.gate(ctx, "subcategories"); err != nil {
		return nil, err
	}
	return f.subs, nil
}

func (f *fakeSource) Countries(ctx context.Context) ([]Country, error) {
	if err := f.gate(ctx, "countries"); err != nil {
		return nil, err
	}
	return f.ctrs, nil
}

func (f *fakeSource) Cities(ctx context.Context) ([]City, error) {
	if err := f.gate(ctx, "cities"); err != nil {
		return nil, err
	}
	return f.cties, nil
}

// memStore is an in-memory SnapshotStore.
type memStore struct {
	mu   sync.Mutex
	snap *Snapshot
	puts int
}

func (m *memStore) Get(context.Context) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap == nil {
		return nil, ErrStoreMiss
	}
	return m.snap, nil
}

func (m *memStore) Put(_ context.Context, s *Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = s
	m.puts++
	return nil
}

// clock is a manually advanced time source.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock { return &clock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)} }

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
