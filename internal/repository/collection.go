// Package repository stores named collections of records as whole JSON
// arrays on top of a domain.Backend.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"eventr/internal/domain"
)

// SeedFunc produces the records a collection holds before its first save.
type SeedFunc[T any] func() ([]T, error)

// Collection is a typed view of one named collection.
// Update holds the collection's mutex across load, mutate and save, so
// concurrent read-modify-write cycles never overwrite each other.
type Collection[T any] struct {
	backend domain.Backend
	name    string
	seed    SeedFunc[T]
	mu      sync.Mutex
}

// NewCollection returns a Collection stored under name. seed may be nil,
// in which case a missing collection loads as empty.
func NewCollection[T any](backend domain.Backend, name string, seed SeedFunc[T]) *Collection[T] {
	return &Collection[T]{
		backend: backend,
		name:    name,
		seed:    seed,
	}
}

// Name returns the collection's storage key.
func (c *Collection[T]) Name() string {
	return c.name
}

// Load returns the stored records, or the seed when nothing was stored yet.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Save replaces the whole collection.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, records)
}

// Update loads the collection, passes it to fn and saves what fn returns.
// If fn returns an error nothing is saved and the error is returned as is.
func (c *Collection[T]) Update(ctx context.Context, fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return c.save(ctx, updated)
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	data, ok, err := c.backend.Get(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %w", domain.ErrStorageUnavailable, c.name, err)
	}
	if !ok {
		return c.bootstrap()
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", domain.ErrStorageUnavailable, c.name, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (c *Collection[T]) bootstrap() ([]T, error) {
	if c.seed == nil {
		return []T{}, nil
	}
	records, err := c.seed()
	if err != nil {
		return nil, fmt.Errorf("%w: seed %s: %w", domain.ErrStorageUnavailable, c.name, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (c *Collection[T]) save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", domain.ErrStorageUnavailable, c.name, err)
	}
	if err := c.backend.Put(ctx, c.name, data); err != nil {
		return fmt.Errorf("%w: save %s: %w", domain.ErrStorageUnavailable, c.name, err)
	}
	return nil
}
