package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	merr "github.com/next-trace/scg-mediator/contract/errors"
	"github.com/next-trace/scg-mediator/contract/port"
)

// DefaultTopic is the topic notifications are produced to when none is
// configured.
const DefaultTopic = "notifications"

// Writer is a minimal Kafka-like writer interface.
// Users can adapt any client to this.
type Writer interface {
	Write(topic string, key, value []byte, headers map[string]string) error
}

// Adapter implements port.Notifier over an injected Writer. The recipient is
// used as the record key so notifications for one recipient stay ordered
// within a partition.
type Adapter struct {
	Writer Writer
	Topic  string // defaults to DefaultTopic when empty
}

// Ensure Adapter implements the port.
var _ port.Notifier = (*Adapter)(nil)

// New creates a new Kafka adapter instance with the provided writer.
func New(w Writer) *Adapter { return &Adapter{Writer: w} }

func (a *Adapter) Send(ctx context.Context, n port.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if a.Writer == nil {
		return fmt.Errorf("kafka send: %w", merr.ErrSendFailed)
	}

	val, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("kafka send serialize: %w", errors.Join(merr.ErrSerializationFailed, err))
	}

	topic := a.Topic
	if topic == "" {
		topic = DefaultTopic
	}

	headers := map[string]string{"recipient": n.Recipient}

	if err = a.Writer.Write(topic, []byte(n.Recipient), val, headers); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("kafka send write: %w", errors.Join(merr.ErrSendFailed, err))
	}

	return nil
}
