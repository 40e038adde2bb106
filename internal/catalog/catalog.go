// Package catalog reconciles the compiled-in seed paintings, the locally
// hidden seed ids and the remote painting rows into the single list the
// storefront shows, and routes every mutation to the store that owns it.
package catalog

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"gallery-storefront/internal/domain/paintings"
	"gallery-storefront/internal/logger"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

type RowStore interface {
	List(ctx context.Context) ([]paintings.Painting, error)
	Insert(ctx context.Context, p paintings.Painting) (paintings.Painting, error)
	Update(ctx context.Context, p paintings.Painting, expectedVersion *int) (paintings.Painting, error)
	Delete(ctx context.Context, id string) error
}

type BlobStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	PublicURL(key string) string
	// Owns reports whether url is a public URL of an object in this store.
	Owns(url string) bool
	Remove(ctx context.Context, keys ...string) error
	List(ctx context.Context) ([]string, error)
}

type OverrideStore interface {
	Load() mapset.Set[string]
	Save(ids mapset.Set[string]) error
}

type Deps struct {
	Rows      RowStore
	Blobs     BlobStore // nil disables inline image uploads
	Overrides OverrideStore
	Log       *logger.Logger
}

type Options struct {
	RemoteFirst   bool
	SeedEdits     SeedEditPolicy
	StorageMarker string

	Now   func() time.Time
	NewID func() string
}

type State string

const (
	StateIdle     State = "idle"
	StateInFlight State = "in_flight"
)

type Status struct {
	State       State     `json:"state"`
	InFlight    int       `json:"in_flight"`
	LastError   string    `json:"last_error,omitempty"`
	LastRefresh time.Time `json:"last_refresh,omitempty"`
	Remote      int       `json:"remote"`
	Seed        int       `json:"seed"`
	Hidden      int       `json:"hidden"`
	Total       int       `json:"total"`
}

// Catalog is safe for concurrent use. Its lock guards the in-memory view
// only: two mutations may still race against the remote store, which is
// why updates carry a row version.
type Catalog struct {
	rows      RowStore
	blobs     BlobStore
	overrides OverrideStore
	log       *logger.Logger
	opts      Options

	seed []paintings.Painting

	// hiddenMu serializes read-modify-write of the hidden set, including the
	// override save, so concurrent hides cannot drop each other's ids.
	hiddenMu sync.Mutex

	mu          sync.RWMutex
	remote      []paintings.Painting
	hidden      mapset.Set[string]
	edits       map[string]paintings.Painting
	merged      []paintings.Painting
	inFlight    int
	lastErr     error
	lastRefresh time.Time

	subMu  sync.Mutex
	subs   map[int]func([]paintings.Painting)
	nextID int
}

// New builds a catalog showing the seed paintings minus the persisted hidden
// ids. Call Refresh to pull in the remote rows.
func New(deps Deps, opts Options) *Catalog {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.SeedEdits == "" {
		opts.SeedEdits = SeedEditsSession
	}
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	hidden := mapset.NewSet[string]()
	if deps.Overrides != nil {
		hidden = deps.Overrides.Load()
	}

	c := &Catalog{
		rows:      deps.Rows,
		blobs:     deps.Blobs,
		overrides: deps.Overrides,
		log:       log.With("component", "catalog"),
		opts:      opts,
		seed:      paintings.SeedCatalog(),
		hidden:    hidden,
		edits:     make(map[string]paintings.Painting),
		subs:      make(map[int]func([]paintings.Painting)),
	}
	c.merged = c.mergeLocked()
	return c
}

// List returns a copy of the working catalog.
func (c *Catalog) List() []paintings.Painting {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.merged)
}

func (c *Catalog) Get(id string) (paintings.Painting, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.merged {
		if p.ID == id {
			return p, nil
		}
	}
	return paintings.Painting{}, paintings.ErrNotFound
}

// HiddenIDs lists the seed ids currently suppressed.
func (c *Catalog) HiddenIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := c.hidden.ToSlice()
	slices.Sort(ids)
	return ids
}

func (c *Catalog) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Status{
		State:       StateIdle,
		InFlight:    c.inFlight,
		LastRefresh: c.lastRefresh,
		Remote:      len(c.remote),
		Seed:        len(c.seed),
		Hidden:      c.hidden.Cardinality(),
		Total:       len(c.merged),
	}
	if c.inFlight > 0 {
		s.State = StateInFlight
	}
	if c.lastErr != nil {
		s.LastError = c.lastErr.Error()
	}
	return s
}

// Subscribe registers fn to receive the working catalog after every change.
// The returned func removes the subscription.
func (c *Catalog) Subscribe(fn func([]paintings.Painting)) (cancel func()) {
	c.subMu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

func (c *Catalog) notify() {
	snapshot := c.List()

	c.subMu.Lock()
	fns := slices.Collect(maps.Values(c.subs))
	c.subMu.Unlock()

	for _, fn := range fns {
		fn(slices.Clone(snapshot))
	}
}

// Refresh re-fetches the remote rows and recomputes the merge. On failure
// the previous list is kept.
func (c *Catalog) Refresh(ctx context.Context) (err error) {
	done := c.begin()
	defer func() { done(err) }()
	return c.refresh(ctx)
}

func (c *Catalog) refresh(ctx context.Context) error {
	if c.rows == nil {
		return &RemoteOperationError{Op: "list", Err: errStorageNotEnabled}
	}
	remote, err := c.rows.List(ctx)
	if err != nil {
		return &RemoteOperationError{Op: "list", Err: err}
	}

	c.mu.Lock()
	c.remote = remote
	c.lastRefresh = c.opts.Now()
	c.merged = c.mergeLocked()
	c.mu.Unlock()

	c.notify()
	return nil
}

// mergeLocked must be called with mu held.
func (c *Catalog) mergeLocked() []paintings.Painting {
	return Merge(c.seed, c.hidden, c.edits, c.remote, c.opts.RemoteFirst)
}

// begin marks a call in flight; the returned func records its outcome.
func (c *Catalog) begin() func(error) {
	c.mu.Lock()
	c.inFlight++
	c.mu.Unlock()

	return func(err error) {
		c.mu.Lock()
		c.inFlight--
		c.lastErr = err
		c.mu.Unlock()
	}
}

func (c *Catalog) isSeed(id string) bool {
	return paintings.IsSeedID(id)
}

func (c *Catalog) findRemote(id string) (paintings.Painting, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.remote {
		if p.ID == id {
			return p, true
		}
	}
	return paintings.Painting{}, false
}
