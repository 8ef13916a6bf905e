package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	merr "github.com/next-trace/scg-mediator/contract/errors"
	"github.com/next-trace/scg-mediator/contract/port"
)

// DefaultRoutingKey is used when the adapter has no routing key configured.
const DefaultRoutingKey = "notify.outbound"

type PubMsg struct {
	Exchange   string
	RoutingKey string
	Body       []byte
	Headers    map[string]string
}

type Publisher interface {
	Publish(ctx context.Context, m PubMsg) error
}

// Adapter implements port.Notifier over an injected AMQP-like Publisher.
type Adapter struct {
	Publisher  Publisher
	Exchange   string
	RoutingKey string                // defaults to DefaultRoutingKey when empty
	Propagator port.HeaderPropagator // optional, for context propagation into headers
}

// Ensure Adapter implements the port.
var _ port.Notifier = (*Adapter)(nil)

func New(p Publisher) *Adapter { return &Adapter{Publisher: p} }

// NewWithPropagator allows configuring a HeaderPropagator for context propagation.
func NewWithPropagator(p Publisher, hp port.HeaderPropagator) *Adapter {
	return &Adapter{Publisher: p, Propagator: hp}
}

func (a *Adapter) Send(ctx context.Context, n port.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if a.Publisher == nil {
		return fmt.Errorf("rabbitmq send: %w", merr.ErrSendFailed)
	}

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("rabbitmq send serialize: %w", errors.Join(merr.ErrSerializationFailed, err))
	}

	rk := a.RoutingKey
	if rk == "" {
		rk = DefaultRoutingKey
	}

	headers := map[string]string{"recipient": n.Recipient}
	// Inject tracing context via configured propagator (keeps adapter decoupled)
	if a.Propagator != nil {
		a.Propagator.Inject(ctx, headers)
	}

	msg := PubMsg{
		Exchange:   a.Exchange,
		RoutingKey: rk,
		Body:       body,
		Headers:    headers,
	}
	if err := a.Publisher.Publish(ctx, msg); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("rabbitmq send publish: %w", errors.Join(merr.ErrSendFailed, err))
	}

	return nil
}

type amqpChannelPublisher struct{ ch *amqp.Channel }

func (p amqpChannelPublisher) Publish(ctx context.Context, m PubMsg) error {
	var h amqp.Table
	if len(m.Headers) > 0 {
		h = amqp.Table{}
		for k, v := range m.Headers {
			h[k] = v
		}
	}

	return p.ch.PublishWithContext(
		ctx,
		m.Exchange,
		m.RoutingKey,
		false,
		false,
		amqp.Publishing{
			Headers:     h,
			Body:        m.Body,
			ContentType: "application/json",
		},
	)
}

// NewWithAMQPChannel wraps an existing channel without reconnect handling.
func NewWithAMQPChannel(ch *amqp.Channel) *Adapter {
	return &Adapter{Publisher: amqpChannelPublisher{ch: ch}}
}
