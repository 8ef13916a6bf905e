package nats_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/next-trace/scg-mediator/adapters/nats"
	merr "github.com/next-trace/scg-mediator/contract/errors"
	"github.com/next-trace/scg-mediator/contract/port"
)

type fakeClient struct {
	calls []struct {
		subject string
		data    []byte
		headers map[string]string
	}
	err error
}

func (f *fakeClient) Publish(subject string, data []byte, headers map[string]string) error {
	f.calls = append(f.calls, struct {
		subject string
		data    []byte
		headers map[string]string
	}{subject, data, headers})

	return f.err
}

func TestNATS_Send(t *testing.T) {
	fc := &fakeClient{}
	ad := nats.New(fc)

	n := port.Notification{Recipient: "a@b.com", Subject: "Welcome", Body: "Welcome, Al!"}
	if err := ad.Send(context.Background(), n); err != nil {
		t.Fatalf("send: %v", err)
	}

	if len(fc.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(fc.calls))
	}

	c := fc.calls[0]
	if c.subject != nats.DefaultSubject {
		t.Fatalf("subject mismatch: %s", c.subject)
	}

	if c.headers["recipient"] != "a@b.com" {
		t.Fatalf("headers missing or wrong: %+v", c.headers)
	}

	var got port.Notification
	if err := json.Unmarshal(c.data, &got); err != nil || got.Body != "Welcome, Al!" {
		t.Fatalf("body round-trip: %v %+v", err, got)
	}

	// configured subject wins
	ad2 := &nats.Adapter{Client: fc, Subject: "notify.mail"}
	_ = ad2.Send(context.Background(), n)

	if fc.calls[1].subject != "notify.mail" {
		t.Fatalf("subject=%s", fc.calls[1].subject)
	}
}

func TestNATS_NilClientError(t *testing.T) {
	ad := nats.New(nil)

	err := ad.Send(context.Background(), port.Notification{Recipient: "a@b.com"})
	if !errors.Is(err, merr.ErrSendFailed) {
		t.Fatalf("want ErrSendFailed for nil client, got %v", err)
	}
}

func TestNATS_ErrorWrapping_And_ContextCancel(t *testing.T) {
	// client returns generic error -> should wrap
	fc := &fakeClient{err: errors.New("boom")}
	ad := nats.New(fc)

	if err := ad.Send(context.Background(), port.Notification{Recipient: "a@b.com"}); !errors.Is(err, merr.ErrSendFailed) {
		t.Fatalf("want wrapped ErrSendFailed, got %v", err)
	}

	// client returns context.Canceled -> propagate as-is
	fc2 := &fakeClient{err: context.Canceled}
	ad2 := nats.New(fc2)

	err := ad2.Send(context.Background(), port.Notification{Recipient: "a@b.com"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}

	// canceled caller context short-circuits before publishing
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fc3 := &fakeClient{}
	ad3 := nats.New(fc3)

	if err := ad3.Send(ctx, port.Notification{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}

	if len(fc3.calls) != 0 {
		t.Fatalf("publish must not happen on canceled context")
	}
}
