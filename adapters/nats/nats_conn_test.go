package nats_test

import (
	"errors"
	"testing"

	"github.com/next-trace/scg-mediator/adapters/nats"
	merr "github.com/next-trace/scg-mediator/contract/errors"
)

func TestNewWithNATS_RequiresURL(t *testing.T) {
	_, _, err := nats.NewWithNATS(nats.Config{})
	if !errors.Is(err, merr.ErrSendFailed) {
		t.Fatalf("want ErrSendFailed for empty url, got %v", err)
	}
}
