package message

import "context"

// CommandHandler handles commands of type C.
// Implementations must be safe for concurrent use by multiple goroutines.
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, c C) error
}

// QueryHandler handles queries of type Q and returns a result of type R.
// Implementations must be safe for concurrent use by multiple goroutines.
type QueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, q Q) (R, error)
}

// EventHandler handles domain events of type E. Handlers for the same event
// run synchronously, in registration order, on the publisher's goroutine.
type EventHandler[E DomainEvent] interface {
	Handle(ctx context.Context, e E) error
}
