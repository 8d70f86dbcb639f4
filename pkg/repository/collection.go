package repository

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"neat.bar/Neat/pkg/model"
)

// Record is any entity stored in one of the three collections.
type Record interface {
	model.Cocktail | model.Rating | model.BarItem
}

// Collection is the generic access layer over one collection: CRUD plus an
// in-memory snapshot that is re-fetched in full after every mutation. No
// incremental patching - correctness over efficiency, fine for collections of
// tens to low hundreds of records. A failed call leaves the previous snapshot
// in place.
//
// Operations on one Collection instance are serialized by its mutex; the
// status pair (Loading, Err) reflects the most recent operation.
type Collection[T Record] struct {
	repo *Repository

	mu      sync.Mutex
	items   []T
	loading bool
	err     error
}

func NewCollection[T Record](repo *Repository) *Collection[T] {
	return &Collection[T]{repo: repo}
}

func (r *Repository) Cocktails() *Collection[model.Cocktail] {
	return NewCollection[model.Cocktail](r)
}

func (r *Repository) Ratings() *Collection[model.Rating] {
	return NewCollection[model.Rating](r)
}

func (r *Repository) BarItems() *Collection[model.BarItem] {
	return NewCollection[model.BarItem](r)
}

// All re-fetches the collection and returns it. Records come back in primary
// key order, but callers must not depend on ordering; it is not part of the
// contract.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fetchLocked(ctx)
}

// Items returns the snapshot from the most recent fetch without touching the
// store.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.items
}

func (c *Collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loading
}

// Err returns the error recorded by the most recent operation, nil after a
// success.
func (c *Collection[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.err
}

func (c *Collection[T]) Get(ctx context.Context, id uint) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var item T
	if result := c.repo.DB.WithContext(ctx).First(&item, id); result.Error != nil {
		c.err = storageErr(result.Error)

		return nil, c.err
	}

	c.err = nil

	return &item, nil
}

// Add persists the record, assigns its identifier, and re-fetches the
// collection. The assigned id is returned even when the re-fetch fails.
func (c *Collection[T]) Add(ctx context.Context, item *T) (uint, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if result := c.repo.DB.WithContext(ctx).Create(item); result.Error != nil {
		c.err = storageErr(result.Error)
		c.repo.Logger.Error("error adding record", zap.Error(c.err))

		return 0, c.err
	}

	id := recordID(item)

	if _, err := c.fetchLocked(ctx); err != nil {
		c.repo.Logger.Error("error re-fetching collection after add", zap.Uint("id", id), zap.Error(err))
	}

	return id, nil
}

// Update merges the changed columns into the record matched by id, then
// re-fetches the collection. Returns ErrNotFound when the id is absent.
func (c *Collection[T]) Update(ctx context.Context, id uint, changes map[string]any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var existing T
	if result := c.repo.DB.WithContext(ctx).Select("id").First(&existing, id); result.Error != nil {
		c.err = storageErr(result.Error)

		return c.err
	}

	if result := c.repo.DB.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(changes); result.Error != nil {
		c.err = storageErr(result.Error)
		c.repo.Logger.Error("error updating record", zap.Uint("id", id), zap.Error(c.err))

		return c.err
	}

	_, err := c.fetchLocked(ctx)

	return err
}

// Delete removes the record matched by id and re-fetches the collection.
// Deleting an absent id is a no-op.
func (c *Collection[T]) Delete(ctx context.Context, id uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if result := c.repo.DB.WithContext(ctx).Unscoped().Delete(new(T), id); result.Error != nil {
		c.err = storageErr(result.Error)
		c.repo.Logger.Error("error deleting record", zap.Uint("id", id), zap.Error(c.err))

		return c.err
	}

	_, err := c.fetchLocked(ctx)

	return err
}

func (c *Collection[T]) fetchLocked(ctx context.Context) ([]T, error) {
	c.loading = true
	defer func() { c.loading = false }()

	var items []T
	if result := c.repo.DB.WithContext(ctx).Order("id").Find(&items); result.Error != nil {
		c.err = storageErr(result.Error)

		return nil, c.err
	}

	c.items = items
	c.err = nil

	return items, nil
}

func recordID[T Record](item *T) uint {
	switch v := any(item).(type) {
	case *model.Cocktail:
		return v.ID
	case *model.Rating:
		return v.ID
	case *model.BarItem:
		return v.ID
	}

	return 0
}
