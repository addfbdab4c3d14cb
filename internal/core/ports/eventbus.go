package ports

import "context"

// Handler receives the payload of an emitted event.
type Handler func(ctx context.Context, payload any) error

// Filter transforms value. Extra context is passed in args.
type Filter func(ctx context.Context, value any, args ...any) any

// EventBus is the subscribe, emit and filter contract between the engine and its host.
type EventBus interface {
	// Subscribe registers h for event. Handlers run in subscription order.
	Subscribe(event string, h Handler)
	// Emit delivers payload to every handler of event and joins their errors.
	Emit(ctx context.Context, event string, payload any) error
	// HasSubscribers reports whether anything listens to event.
	HasSubscribers(event string) bool
	// AddFilter registers f under name. Filters run in registration order.
	AddFilter(name string, f Filter)
	// ApplyFilter passes value through every filter registered under name.
	ApplyFilter(ctx context.Context, name string, value any, args ...any) any
}
