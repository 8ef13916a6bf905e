package memnotify

import (
	"context"
	"sync"

	"github.com/next-trace/scg-mediator/contract/port"
)

// Notifier is a thread-safe in-memory implementation of port.Notifier.
// It records sent notifications for testing and examples.
type Notifier struct {
	mu   sync.Mutex
	sent []port.Notification

	// Err, when set, is returned by every Send. Useful for failure-path tests.
	Err error
}

// Ensure Notifier implements the port.
var _ port.Notifier = (*Notifier)(nil)

// New creates a new recording notifier.
func New() *Notifier { return &Notifier{} }

func (n *Notifier) Send(ctx context.Context, msg port.Notification) error {
	_ = ctx

	if n.Err != nil {
		return n.Err
	}

	n.mu.Lock()
	n.sent = append(n.sent, msg)
	n.mu.Unlock()

	return nil
}

// Sent returns a copy of everything delivered so far, in send order.
func (n *Notifier) Sent() []port.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]port.Notification(nil), n.sent...)
}
