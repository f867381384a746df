package listing

import (
	"context"
	"errors"
)

// SequencePersister stores the full ordered id list on the backend.
type SequencePersister func(ctx context.Context, orderedIDs []uint) error

// Reorderer wraps a client-side Controller with drag reordering. Used by
// the banners screen: the new order is shown immediately and the ordered id
// list persisted; if persistence fails the original order is restored and
// the error surfaced, matching the rollback discipline of the other
// optimistic mutations.
type Reorderer[T any] struct {
	ctrl    *Controller[T]
	persist SequencePersister
}

// NewReorderer creates a Reorderer over ctrl. The controller must use the
// ClientSide strategy, since reordering operates on the full collection.
func NewReorderer[T any](ctrl *Controller[T], persist SequencePersister) *Reorderer[T] {
	if ctrl == nil {
		panic("listing.NewReorderer: controller must not be nil")
	}
	if persist == nil {
		panic("listing.NewReorderer: persist must not be nil")
	}
	return &Reorderer[T]{ctrl: ctrl, persist: persist}
}

// Move drags the item at index from (within the full collection) to index
// to, shifting the items in between. The local order updates immediately;
// the complete ordered id list is then persisted.
func (r *Reorderer[T]) Move(ctx context.Context, from, to int) error {
	c := r.ctrl

	c.mu.Lock()
	n := len(c.all)
	if from < 0 || from >= n || to < 0 || to >= n {
		c.mu.Unlock()
		return errors.New("listing: reorder index out of range")
	}
	if from == to {
		c.mu.Unlock()
		return nil
	}

	snapshot := make([]T, n)
	copy(snapshot, c.all)

	item := c.all[from]
	c.all = append(c.all[:from], c.all[from+1:]...)
	c.all = append(c.all[:to], append([]T{item}, c.all[to:]...)...)

	ids := make([]uint, n)
	for i, it := range c.all {
		ids[i] = c.cfg.ID(it)
	}
	c.recomputeLocked()
	c.mu.Unlock()

	if err := r.persist(ctx, ids); err != nil {
		c.mu.Lock()
		c.all = snapshot
		c.recomputeLocked()
		c.mu.Unlock()
		c.cfg.Notify(err.Error())
		return err
	}
	return nil
}
