package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Folio-25-26J-118/portfolio-backend/internal/kv"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/domain"
)

// Store keys. These names are part of the persisted-state contract and must
// not change: existing installs already hold data under them.
const (
	ProjectsKey    = "projects"
	ExperiencesKey = "experiences"
)

// Collection persists an ordered list of entities as a single JSON array
// under one store key. Order is display order: inserts append, nothing
// sorts. Both portfolio collections share this implementation.
//
// Read-modify-write here is not atomic against a second writer; the service
// runs a single mutation path, so no synchronization is layered on top. A
// multi-writer deployment would need a WATCH/MULTI or Lua step instead.
type Collection[T domain.Entity] struct {
	store kv.Store
	key   string
}

func NewCollection[T domain.Entity](store kv.Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// List returns the stored collection. A key that was never written yields an
// empty slice; stored text that fails to parse is an error, never a silent
// reset.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	raw, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !found {
		return []T{}, nil
	}

	items := make([]T, 0, 16)
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %q collection: %w", c.key, err)
	}
	return items, nil
}

// Save overwrites the whole collection in a single store write.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal %q collection: %w", c.key, err)
	}
	return c.store.Set(ctx, c.key, string(raw))
}

// GetByID scans the collection for the first entry with the given id.
func (c *Collection[T]) GetByID(ctx context.Context, id int64) (T, bool, error) {
	var zero T

	items, err := c.List(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, item := range items {
		if item.EntityID() == id {
			return item, true, nil
		}
	}
	return zero, false, nil
}

// ContainsID reports whether any entry carries the given id.
func (c *Collection[T]) ContainsID(ctx context.Context, id int64) (bool, error) {
	_, found, err := c.GetByID(ctx, id)
	return found, err
}

// Insert appends the entity and persists.
func (c *Collection[T]) Insert(ctx context.Context, item T) error {
	items, err := c.List(ctx)
	if err != nil {
		return err
	}
	return c.Save(ctx, append(items, item))
}

// Update locates the entry by id, applies mutate in place and persists. A
// lookup miss is reported through the found flag without writing anything.
func (c *Collection[T]) Update(ctx context.Context, id int64, mutate func(*T)) (T, bool, error) {
	var zero T

	items, err := c.List(ctx)
	if err != nil {
		return zero, false, err
	}

	for i := range items {
		if items[i].EntityID() != id {
			continue
		}
		mutate(&items[i])
		if err := c.Save(ctx, items); err != nil {
			return zero, false, err
		}
		return items[i], true, nil
	}
	return zero, false, nil
}

// Remove filters the id out of the collection and persists. Removing an id
// that was never present leaves the collection unchanged.
func (c *Collection[T]) Remove(ctx context.Context, id int64) (bool, error) {
	items, err := c.List(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]T, 0, len(items))
	for _, item := range items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}
	return true, c.Save(ctx, kept)
}

// EnsureSeed writes the default entries if and only if the key has never
// been written. An explicitly emptied collection stays empty: an empty
// array is still a present key, so the seed never refills it.
func (c *Collection[T]) EnsureSeed(ctx context.Context, seed []T) error {
	_, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return err
	}
	if found {
		return nil
	}
	return c.Save(ctx, seed)
}
