// Package eventbus provides the in-process publish/subscribe and filter registry.
package eventbus

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/llegomark/better-nginx-cache/internal/core/ports"
)

// Bus is a synchronous event bus. Handlers run on the emitting goroutine in
// the order they were subscribed.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]ports.Handler
	filters  map[string][]ports.Filter
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{
		handlers: make(map[string][]ports.Handler),
		filters:  make(map[string][]ports.Filter),
	}
}

// Subscribe registers h for event.
func (b *Bus) Subscribe(event string, h ports.Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[event] = append(b.handlers[event], h)
}

// Emit runs every handler of event. A failing handler does not stop the
// remaining ones; their errors are joined.
func (b *Bus) Emit(ctx context.Context, event string, payload any) error {
	b.mu.RLock()
	handlers := slices.Clone(b.handlers[event])
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h(ctx, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// HasSubscribers reports whether any handler is registered for event.
func (b *Bus) HasSubscribers(event string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[event]) > 0
}

// AddFilter registers f under name.
func (b *Bus) AddFilter(name string, f ports.Filter) {
	if f == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filters[name] = append(b.filters[name], f)
}

// ApplyFilter chains value through the filters registered under name. With
// no filters the value is returned unchanged.
func (b *Bus) ApplyFilter(ctx context.Context, name string, value any, args ...any) any {
	b.mu.RLock()
	filters := slices.Clone(b.filters[name])
	b.mu.RUnlock()

	for _, f := range filters {
		value = f(ctx, value, args...)
	}
	return value
}
