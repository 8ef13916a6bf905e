package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	merr "github.com/next-trace/scg-mediator/contract/errors"
	"github.com/next-trace/scg-mediator/contract/port"
)

// DefaultSubject is the subject notifications are published to when none is
// configured.
const DefaultSubject = "notify.outbound"

// Client is a minimal NATS-like publisher interface decoupled from any concrete library.
// Users can provide a wrapper around their NATS connection to satisfy this.
type Client interface {
	// Publish publishes a message to a subject with optional headers.
	Publish(subject string, data []byte, headers map[string]string) error
}

// Adapter implements port.Notifier over an injected NATS-like Client.
// Each notification is serialized to JSON and published to Subject, with the
// recipient carried in a header for subscriber-side routing.
type Adapter struct {
	Client  Client
	Subject string // defaults to DefaultSubject when empty
}

// Ensure Adapter implements the port.
var _ port.Notifier = (*Adapter)(nil)

// New creates a new NATS adapter instance with the provided client.
func New(c Client) *Adapter { return &Adapter{Client: c} }

func (a *Adapter) Send(ctx context.Context, n port.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if a.Client == nil {
		return fmt.Errorf("nats send: %w", merr.ErrSendFailed)
	}

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("nats send serialize: %w", errors.Join(merr.ErrSerializationFailed, err))
	}

	subject := a.Subject
	if subject == "" {
		subject = DefaultSubject
	}

	headers := map[string]string{"recipient": n.Recipient}

	if err := a.Client.Publish(subject, body, headers); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("nats send publish: %w", errors.Join(merr.ErrSendFailed, err))
	}

	return nil
}
