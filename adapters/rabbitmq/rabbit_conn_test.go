package rabbitmq_test

import (
	"errors"
	"testing"

	"github.com/next-trace/scg-mediator/adapters/rabbitmq"
	merr "github.com/next-trace/scg-mediator/contract/errors"
)

func TestNewWithAMQPConn_RequiresURL(t *testing.T) {
	_, _, err := rabbitmq.NewWithAMQPConn(rabbitmq.Config{})
	if !errors.Is(err, merr.ErrSendFailed) {
		t.Fatalf("want ErrSendFailed for empty url, got %v", err)
	}
}
