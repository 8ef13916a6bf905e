package message

import "context"

// EventPublisher delivers a domain event to every handler registered for its
// name, in registration order, stopping at the first failure.
//
// Aggregates hold an EventPublisher and flush their buffered events through it
// on commit; the mediator bus is the canonical implementation.
type EventPublisher interface {
	Publish(ctx context.Context, e DomainEvent) error
}
