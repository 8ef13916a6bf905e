package memstore_test

import (
	"context"
	"testing"

	"github.com/next-trace/scg-mediator/adapters/memstore"
	"github.com/next-trace/scg-mediator/user"
)

func TestStore_CRUD(t *testing.T) {
	s := memstore.New()

	if _, found, err := s.FindByID(context.Background(), "u-1"); err != nil || found {
		t.Fatalf("empty store: found=%v err=%v", found, err)
	}

	saved, err := s.Save(context.Background(), user.Snapshot{ID: "u-1", Name: "Al", Email: "a@b.com"})
	if err != nil || saved.ID != "u-1" {
		t.Fatalf("save: %v %+v", err, saved)
	}

	got, found, err := s.FindByID(context.Background(), "u-1")
	if err != nil || !found || got.Name != "Al" {
		t.Fatalf("find by id: %v found=%v got=%+v", err, found, got)
	}

	got, found, err = s.FindByEmail(context.Background(), "a@b.com")
	if err != nil || !found || got.ID != "u-1" {
		t.Fatalf("find by email: %v found=%v got=%+v", err, found, got)
	}

	if _, found, _ := s.FindByEmail(context.Background(), "x@b.com"); found {
		t.Fatalf("unexpected email hit")
	}

	_, _ = s.Save(context.Background(), user.Snapshot{ID: "u-2", Name: "Bo", Email: "b@b.com"})

	all, err := s.FindAll(context.Background())
	if err != nil || len(all) != 2 {
		t.Fatalf("find all: %v n=%d", err, len(all))
	}

	ok, err := s.Delete(context.Background(), "u-1")
	if err != nil || !ok {
		t.Fatalf("delete: %v ok=%v", err, ok)
	}

	ok, err = s.Delete(context.Background(), "u-1")
	if err != nil || ok {
		t.Fatalf("second delete should report absence: %v ok=%v", err, ok)
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := memstore.New()

	_, _ = s.Save(context.Background(), user.Snapshot{ID: "u-1", Name: "Al", Email: "a@b.com"})
	_, _ = s.Save(context.Background(), user.Snapshot{ID: "u-1", Name: "Alice", Email: "a@b.com"})

	got, _, _ := s.FindByID(context.Background(), "u-1")
	if got.Name != "Alice" {
		t.Fatalf("overwrite failed: %+v", got)
	}

	all, _ := s.FindAll(context.Background())
	if len(all) != 1 {
		t.Fatalf("n=%d", len(all))
	}
}
