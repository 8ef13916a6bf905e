package message

import "context"

// Mediator is a minimal, tech-agnostic interface mirroring the capabilities of
// the concrete bus while remaining non-generic for interface compatibility.
//
// Typed helpers remain available via generic helper functions in the mediator
// package. This interface is intended for consumers that want to depend only
// on contracts.
type Mediator interface {
	// Bind (untyped) – type-safe bindings continue via helper funcs in mediator.
	BindCommandOf(name string, handler func(ctx context.Context, v any) error) error
	BindQueryOf(name string, handler func(ctx context.Context, v any) (any, error)) error
	BindEventOf(name string, handler func(ctx context.Context, v any) error) error

	// Exec
	Dispatch(ctx context.Context, cmd Command) error

	// Query
	Ask(ctx context.Context, query Query) (any, error)

	// Events
	Publish(ctx context.Context, event DomainEvent) error
}
