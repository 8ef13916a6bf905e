package user

import (
	"context"
	"fmt"

	"github.com/next-trace/scg-mediator/contract/message"
	"github.com/next-trace/scg-mediator/contract/port"
)

// WelcomeMailer greets newly created users through the notification port.
// It runs as a Created event handler, never from a command handler, so mail
// goes out only for committed facts.
type WelcomeMailer struct {
	Notifier port.Notifier
}

func (m WelcomeMailer) Handle(ctx context.Context, e Created) error {
	return m.Notifier.Send(ctx, port.Notification{
		Recipient: e.Email,
		Subject:   "Welcome",
		Body:      fmt.Sprintf("Welcome, %s!", e.Name),
	})
}

var _ message.EventHandler[Created] = (*WelcomeMailer)(nil)
