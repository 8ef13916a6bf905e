package aggregate

import (
	"context"
	"fmt"

	merr "github.com/next-trace/scg-mediator/contract/errors"
	"github.com/next-trace/scg-mediator/contract/message"
)

// Root is the event-buffering half of an aggregate. Domain types embed it and
// call Record for every state transition that constitutes a business fact;
// Commit then flushes the buffer through the bound publisher in record order.
//
// Root is composition, not a framework base class: it owns only the buffer and
// the publisher handle, never the aggregate's state or identity. Construct it
// through New or Rehydrate; committing recorded events on a zero-value Root
// fails with ErrPublisherMissing.
type Root struct {
	pub     message.EventPublisher
	pending []message.DomainEvent
}

// New returns a Root bound to a publisher with an empty buffer.
func New(pub message.EventPublisher) Root {
	return Root{pub: pub}
}

// Rehydrate binds a publisher to an aggregate reconstructed from storage.
// The buffer starts empty: historical events are state, not news, and are
// never replayed through the publisher. Subsequent new mutations commit as
// usual.
func Rehydrate(pub message.EventPublisher) Root {
	return Root{pub: pub}
}

// Record appends an event to the uncommitted buffer. The caller updates its
// in-memory state alongside; pure corrections with no business significance
// may mutate state without recording.
func (r *Root) Record(e message.DomainEvent) {
	r.pending = append(r.pending, e)
}

// Pending returns the uncommitted events in record order. The returned slice
// is a copy.
func (r *Root) Pending() []message.DomainEvent {
	return append([]message.DomainEvent(nil), r.pending...)
}

// Commit publishes every buffered event in record order and clears the
// buffer. A commit with an empty buffer is a no-op and invokes no handlers.
//
// If publishing event k of n fails, events before k are removed from the
// buffer, events k..n stay buffered, and the failure is returned. A retried
// Commit resumes at the failed event, so no event is ever published twice
// across repeated commits.
func (r *Root) Commit(ctx context.Context) error {
	if len(r.pending) > 0 && r.pub == nil {
		return fmt.Errorf("commit %d pending events: %w", len(r.pending), merr.ErrPublisherMissing)
	}

	for len(r.pending) > 0 {
		e := r.pending[0]
		if err := r.pub.Publish(ctx, e); err != nil {
			return err
		}

		r.pending = r.pending[1:]
	}

	r.pending = nil

	return nil
}
