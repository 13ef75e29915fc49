package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Collection is a typed handle over one named collection. All access goes
// through a mutex, so a load-mutate-save cycle is atomic with respect to
// other writers of the same collection.
type Collection[T any] struct {
	name     string
	backend  Backend
	defaults func() T
	mu       sync.Mutex
}

// NewCollection binds a collection name to a backend. defaults produces the
// value a never-written collection reads as (empty slice, default config).
func NewCollection[T any](backend Backend, name string, defaults func() T) *Collection[T] {
	return &Collection[T]{
		name:     name,
		backend:  backend,
		defaults: defaults,
	}
}

// Name returns the collection's stable name.
func (c *Collection[T]) Name() string {
	return c.name
}

// Load reads the full collection.
func (c *Collection[T]) Load(ctx context.Context) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Save overwrites the full collection.
func (c *Collection[T]) Save(ctx context.Context, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, value)
}

// Update runs one load-mutate-save cycle under the collection lock and
// returns the value as saved. When mutate returns an error nothing is
// persisted.
func (c *Collection[T]) Update(ctx context.Context, mutate func(T) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	value, err := c.load(ctx)
	if err != nil {
		return zero, err
	}

	value, err = mutate(value)
	if err != nil {
		return zero, err
	}

	if err := c.save(ctx, value); err != nil {
		return zero, err
	}
	return value, nil
}

func (c *Collection[T]) load(ctx context.Context) (T, error) {
	var zero T

	data, ok, err := c.backend.Load(ctx, c.name)
	if err != nil {
		return zero, err
	}
	if !ok {
		return c.defaults(), nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return zero, fmt.Errorf("decode collection %s: %w", c.name, err)
	}
	return value, nil
}

func (c *Collection[T]) save(ctx context.Context, value T) error {
	// Two-space indent keeps the files hand-inspectable.
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", c.name, err)
	}
	return c.backend.Save(ctx, c.name, data)
}
