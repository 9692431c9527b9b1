package settings

import (
	"sync"
)

// Reference is a concurrency safe cell holding the live value of a settings
// domain. Values are copied in and out, so readers always observe a fully
// built value, never a partially updated one.
type Reference[T any] struct {
	mu          sync.RWMutex
	value       T
	subscribers []func(T)
}

// NewReference creates a reference seeded with the given value.
func NewReference[T any](value T) *Reference[T] {
	return &Reference[T]{value: value}
}

// Get returns the current value.
func (r *Reference[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.value
}

// Update replaces the current value and notifies subscribers in subscription
// order. Subscribers run after the new value is committed, outside the lock.
func (r *Reference[T]) Update(value T) {
	r.mu.Lock()
	r.value = value
	subscribers := make([]func(T), len(r.subscribers))
	copy(subscribers, r.subscribers)
	r.mu.Unlock()

	for _, subscriber := range subscribers {
		subscriber(value)
	}
}

// Subscribe registers a hook invoked with the new value after every update.
func (r *Reference[T]) Subscribe(subscriber func(T)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subscribers = append(r.subscribers, subscriber)
}
