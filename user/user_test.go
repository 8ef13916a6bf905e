package user_test

import (
	"context"
	"errors"
	"testing"

	merr "github.com/next-trace/scg-mediator/contract/errors"
	"github.com/next-trace/scg-mediator/contract/message"
	"github.com/next-trace/scg-mediator/user"
)

type recordingPub struct{ events []message.DomainEvent }

func (p *recordingPub) Publish(ctx context.Context, e message.DomainEvent) error {
	p.events = append(p.events, e)
	return nil
}

func Test_New_RecordsCreationEvent(t *testing.T) {
	pub := &recordingPub{}

	u, err := user.New(pub, "u-1", "Al", "a@b.com")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	pending := u.Pending()
	if len(pending) != 1 {
		t.Fatalf("pending=%d, want the creation event buffered", len(pending))
	}

	c, ok := pending[0].(user.Created)
	if !ok || c.Email != "a@b.com" || c.Name != "Al" {
		t.Fatalf("bad creation event: %+v", pending[0])
	}

	// nothing published until commit
	if len(pub.events) != 0 {
		t.Fatalf("events published before commit: %d", len(pub.events))
	}

	if err := u.Commit(context.Background()); err != nil {
		t.Fatalf("commit: %v", err)
	}

	if len(pub.events) != 1 {
		t.Fatalf("events=%d", len(pub.events))
	}
}

func Test_New_Validation(t *testing.T) {
	pub := &recordingPub{}

	if _, err := user.New(pub, "u-1", "A", "a@b.com"); !errors.Is(err, merr.ErrValidation) {
		t.Fatalf("short name: want ErrValidation, got %v", err)
	}

	if _, err := user.New(pub, "u-1", "Al", "not-an-email"); !errors.Is(err, merr.ErrValidation) {
		t.Fatalf("bad email: want ErrValidation, got %v", err)
	}

	if len(pub.events) != 0 {
		t.Fatalf("failed construction must publish nothing")
	}
}

func Test_Rename_ValidatesBeforeMutating(t *testing.T) {
	pub := &recordingPub{}
	u := user.Rehydrate(pub, user.Snapshot{ID: "u-1", Name: "Al", Email: "a@b.com"})

	if err := u.Rename("X"); !errors.Is(err, merr.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}

	if u.Name != "Al" {
		t.Fatalf("state mutated on failed rename: %s", u.Name)
	}

	if len(u.Pending()) != 0 {
		t.Fatalf("event recorded on failed rename")
	}

	if err := u.Rename("Alice"); err != nil {
		t.Fatalf("rename: %v", err)
	}

	pending := u.Pending()
	if len(pending) != 1 {
		t.Fatalf("pending=%d", len(pending))
	}

	r := pending[0].(user.Renamed)
	if r.OldName != "Al" || r.NewName != "Alice" {
		t.Fatalf("bad rename event: %+v", r)
	}
}

func Test_Rehydrate_DoesNotReplayHistory(t *testing.T) {
	pub := &recordingPub{}
	u := user.Rehydrate(pub, user.Snapshot{ID: "u-1", Name: "Al", Email: "a@b.com"})

	if len(u.Pending()) != 0 {
		t.Fatalf("rehydrated aggregate must start with an empty buffer")
	}

	if err := u.Commit(context.Background()); err != nil {
		t.Fatalf("commit: %v", err)
	}

	if len(pub.events) != 0 {
		t.Fatalf("rehydration must not publish history")
	}
}
