package port

import "context"

// Repository abstracts entity storage for command and query handlers.
// Library users provide an implementation backed by their store. Visibility is
// "next call on the same process"; no transactional guarantee is assumed and
// no ordering across independent callers is implied.
type Repository[E any] interface {
	Save(ctx context.Context, e E) (E, error)
	FindByID(ctx context.Context, id string) (E, bool, error)
	FindAll(ctx context.Context) ([]E, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Notification is the payload handed to a Notifier.
type Notification struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// Notifier delivers notifications to an external channel. Invoked only from
// event handlers, never from command or query handlers directly, so that all
// outbound side effects ride on committed events.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}
