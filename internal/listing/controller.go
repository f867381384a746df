package listing

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// State is the lifecycle state of a Controller.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateErrored
)

// Strategy selects how a Controller loads and filters its collection.
type Strategy int

const (
	// ServerPaginated requests one page at a time; filtering is done by the
	// backend and the fetched page is shown as-is.
	ServerPaginated Strategy = iota
	// ClientSide fetches the full collection once and filters and paginates
	// it locally.
	ClientSide
	// Hybrid behaves like ServerPaginated while no filter is active and
	// switches to full-fetch plus local filtering as soon as any filter is
	// set. This mirrors the orders and appointments screens.
	Hybrid
)

// Op identifies a mutation kind for Guard checks.
type Op int

const (
	OpUpdate Op = iota
	OpDelete
)

// Query carries the load parameters for one fetch.
type Query struct {
	Page     int
	PageSize int
	Search   string
	Filters  map[string]string
	Dates    DateRange
}

// HasActiveFilters reports whether any search, categorical, or date filter
// is set to a non-default value.
func (q Query) HasActiveFilters() bool {
	if NormalizeQuery(q.Search) != "" {
		return true
	}
	for _, v := range q.Filters {
		if strings.TrimSpace(v) != "" && !strings.EqualFold(strings.TrimSpace(v), "all") {
			return true
		}
	}
	return q.Dates.IsActive()
}

// Result is one fetched page of a remote collection.
type Result[T any] struct {
	Items      []T
	TotalItems int64
	TotalPages int
}

// Fetcher loads a collection from the backend. FetchPage is used by the
// server-paginated strategy, FetchAll by the client-side strategy (and by
// Hybrid when a filter is active).
type Fetcher[T any] interface {
	FetchPage(ctx context.Context, q Query) (Result[T], error)
	FetchAll(ctx context.Context, q Query) ([]T, error)
}

// Guard vets a mutation before any local change or network call is made.
// Returning an error aborts the operation; the collection stays untouched.
type Guard[T any] func(collection []T, target T, op Op) error

// NotifyFunc surfaces a user-visible message (a toast in the dashboard).
type NotifyFunc func(msg string)

// Config wires a Controller for one entity type.
type Config[T any] struct {
	Fetcher    Fetcher[T]
	Strategy   Strategy
	PageSize   int
	ID         func(T) uint
	Predicates func(Query) []Predicate[T]
	Guard      Guard[T]
	Notify     NotifyFunc
}

// Controller owns the collection, filter state, and pagination state of one
// list screen, and exposes its load and mutation operations. All methods
// are safe for concurrent use; loads that resolve after a newer load has
// been issued are discarded rather than overwriting fresher state.
type Controller[T any] struct {
	cfg Config[T]

	mu         sync.Mutex
	state      State
	query      Query
	all        []T // full collection when filtering locally
	visible    []T
	totalItems int64
	totalPages int
	loadSeq    uint64
	lastErr    error
}

const defaultPageSize = 10

// NewController creates a Controller from cfg.
// Panics if the fetcher or the identity function is missing.
func NewController[T any](cfg Config[T]) *Controller[T] {
	if cfg.Fetcher == nil {
		panic("listing.NewController: fetcher must not be nil")
	}
	if cfg.ID == nil {
		panic("listing.NewController: id function must not be nil")
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.Notify == nil {
		cfg.Notify = func(string) {}
	}
	return &Controller[T]{
		cfg: cfg,
		query: Query{
			Page:     1,
			PageSize: cfg.PageSize,
			Filters:  make(map[string]string),
		},
	}
}

// Load fetches the collection for the current query. A Load superseded by a
// newer one returns nil without touching state. On failure the last known
// good collection is retained and the error is surfaced via Notify.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loadSeq++
	seq := c.loadSeq
	q := c.query
	c.state = StateLoading
	clientSide := c.clientSideLocked(q)
	c.mu.Unlock()

	var (
		items []T
		res   Result[T]
		err   error
	)
	if clientSide {
		items, err = c.cfg.Fetcher.FetchAll(ctx, q)
	} else {
		res, err = c.cfg.Fetcher.FetchPage(ctx, q)
	}

	c.mu.Lock()
	if seq != c.loadSeq {
		// A newer load has been issued; this response is stale.
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		c.state = StateErrored
		c.lastErr = err
		c.mu.Unlock()
		c.cfg.Notify(loadErrorMessage(err))
		return err
	}

	if clientSide {
		c.all = items
		c.recomputeLocked()
	} else {
		c.all = nil
		c.visible = res.Items
		c.totalItems = res.TotalItems
		c.totalPages = max(res.TotalPages, 1)
		c.query.Page = ClampPage(c.query.Page, c.totalPages)
	}
	c.state = StateLoaded
	c.lastErr = nil
	c.mu.Unlock()
	return nil
}

// SetSearch updates the free-text query, resets to page 1, and reloads.
// Callers are expected to feed it the debounced value, not raw keystrokes.
func (c *Controller[T]) SetSearch(ctx context.Context, search string) error {
	c.mu.Lock()
	if c.query.Search == search {
		c.mu.Unlock()
		return nil
	}
	c.query.Search = search
	c.query.Page = 1
	c.mu.Unlock()
	return c.Load(ctx)
}

// SetFilter updates one categorical filter, resets to page 1, and reloads.
func (c *Controller[T]) SetFilter(ctx context.Context, name, value string) error {
	c.mu.Lock()
	if c.query.Filters == nil {
		c.query.Filters = make(map[string]string)
	}
	if c.query.Filters[name] == value {
		c.mu.Unlock()
		return nil
	}
	c.query.Filters[name] = value
	c.query.Page = 1
	c.mu.Unlock()
	return c.Load(ctx)
}

// SetDateRange updates the date filter, resets to page 1, and reloads.
func (c *Controller[T]) SetDateRange(ctx context.Context, r DateRange) error {
	c.mu.Lock()
	c.query.Dates = r
	c.query.Page = 1
	c.mu.Unlock()
	return c.Load(ctx)
}

// SetPage navigates to a page and reloads. The page is floored at 1; a page
// past the end is corrected once the load resolves.
func (c *Controller[T]) SetPage(ctx context.Context, page int) error {
	c.mu.Lock()
	if page < 1 {
		page = 1
	}
	c.query.Page = page
	c.mu.Unlock()
	return c.Load(ctx)
}

// Refresh reloads the current query. Dialog forms call this after a
// successful create or structural update.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

// Patch applies an optimistic in-place mutation to the record with the
// given id (a status toggle, a renamed field) and then persists it. The
// visible collection reflects the change immediately; if persist fails, the
// record is restored to its exact pre-mutation snapshot and the error is
// surfaced via Notify.
func (c *Controller[T]) Patch(ctx context.Context, id uint, apply func(*T), persist func(context.Context, T) error) error {
	c.mu.Lock()
	idx, inAll := c.locateLocked(id)
	if idx < 0 {
		c.mu.Unlock()
		return errors.New("listing: record not found in collection")
	}
	target := c.itemAtLocked(idx, inAll)
	if c.cfg.Guard != nil {
		if err := c.cfg.Guard(c.collectionLocked(), target, OpUpdate); err != nil {
			c.mu.Unlock()
			c.cfg.Notify(err.Error())
			return err
		}
	}

	snapshot := target
	updated := target
	apply(&updated)
	c.storeLocked(idx, inAll, updated)
	c.mu.Unlock()

	if err := persist(ctx, updated); err != nil {
		c.mu.Lock()
		// Roll back by id: the index may have shifted under a concurrent load.
		if idx, inAll := c.locateLocked(id); idx >= 0 {
			c.storeLocked(idx, inAll, snapshot)
		}
		c.mu.Unlock()
		c.cfg.Notify(err.Error())
		return err
	}
	return nil
}

// Delete removes the record with the given id. The backend call runs first;
// on success the record is dropped locally and the page is corrected so the
// user never lands on an empty page. On failure the collection is untouched
// and the error is surfaced via Notify.
func (c *Controller[T]) Delete(ctx context.Context, id uint, persist func(context.Context, uint) error) error {
	c.mu.Lock()
	idx, inAll := c.locateLocked(id)
	if idx < 0 {
		c.mu.Unlock()
		return errors.New("listing: record not found in collection")
	}
	target := c.itemAtLocked(idx, inAll)
	if c.cfg.Guard != nil {
		if err := c.cfg.Guard(c.collectionLocked(), target, OpDelete); err != nil {
			c.mu.Unlock()
			c.cfg.Notify(err.Error())
			return err
		}
	}
	c.mu.Unlock()

	if err := persist(ctx, id); err != nil {
		c.cfg.Notify(err.Error())
		return err
	}

	c.mu.Lock()
	itemsOnPage := len(c.visible)
	if inAll {
		c.all = removeByID(c.all, id, c.cfg.ID)
		c.query.Page = PageAfterDelete(itemsOnPage, c.query.Page)
		c.recomputeLocked()
		c.mu.Unlock()
		return nil
	}
	c.visible = removeByID(c.visible, id, c.cfg.ID)
	c.query.Page = PageAfterDelete(itemsOnPage, c.query.Page)
	c.mu.Unlock()
	// Server-paginated: reload so the page is refilled from the backend.
	return c.Load(ctx)
}

// State returns the controller's lifecycle state.
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the error of the most recent failed load, if any.
func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Visible returns a copy of the rows currently shown.
func (c *Controller[T]) Visible() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.visible))
	copy(out, c.visible)
	return out
}

// Page returns the current 1-based page number.
func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query.Page
}

// TotalPages returns the page count from the last completed load.
func (c *Controller[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return max(c.totalPages, 1)
}

// TotalItems returns the filtered item count from the last completed load.
func (c *Controller[T]) TotalItems() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalItems
}

// --- internals ---

func (c *Controller[T]) clientSideLocked(q Query) bool {
	switch c.cfg.Strategy {
	case ClientSide:
		return true
	case Hybrid:
		return q.HasActiveFilters()
	default:
		return false
	}
}

// recomputeLocked re-derives the visible slice from the full collection:
// filter, clamp the page, slice.
func (c *Controller[T]) recomputeLocked() {
	filtered := c.all
	if c.cfg.Predicates != nil {
		filtered = Apply(c.all, c.cfg.Predicates(c.query)...)
	}
	c.totalItems = int64(len(filtered))
	c.totalPages = TotalPages(len(filtered), c.query.PageSize)
	c.query.Page = ClampPage(c.query.Page, c.totalPages)
	c.visible = PageSlice(filtered, c.query.Page, c.query.PageSize)
}

// locateLocked finds a record by id, preferring the full collection when
// one is held. Returns the index and whether it refers to c.all.
func (c *Controller[T]) locateLocked(id uint) (int, bool) {
	if c.all != nil {
		for i, item := range c.all {
			if c.cfg.ID(item) == id {
				return i, true
			}
		}
		return -1, true
	}
	for i, item := range c.visible {
		if c.cfg.ID(item) == id {
			return i, false
		}
	}
	return -1, false
}

func (c *Controller[T]) itemAtLocked(idx int, inAll bool) T {
	if inAll {
		return c.all[idx]
	}
	return c.visible[idx]
}

func (c *Controller[T]) storeLocked(idx int, inAll bool, item T) {
	if inAll {
		c.all[idx] = item
		c.recomputeLocked()
		return
	}
	c.visible[idx] = item
}

func (c *Controller[T]) collectionLocked() []T {
	if c.all != nil {
		return c.all
	}
	return c.visible
}

func removeByID[T any](items []T, id uint, idOf func(T) uint) []T {
	out := items[:0]
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}

func loadErrorMessage(err error) string {
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return "failed to load list"
}
