package user

import (
	"context"
	"errors"
	"fmt"

	merr "github.com/next-trace/scg-mediator/contract/errors"
	"github.com/next-trace/scg-mediator/contract/message"
)

// CreateHandler handles Create commands: uniqueness check, aggregate factory,
// save, then commit. Domain errors surface unchanged; unexpected repository
// failures are wrapped as handler failures.
type CreateHandler struct {
	Repo Repository
	Pub  message.EventPublisher
}

func (h CreateHandler) Handle(ctx context.Context, c Create) error {
	if _, exists, err := h.Repo.FindByEmail(ctx, c.Email); err != nil {
		return fmt.Errorf("create user: lookup email: %w", errors.Join(merr.ErrHandlerFailed, err))
	} else if exists {
		return fmt.Errorf("create user: email %q taken: %w", c.Email, merr.ErrConflict)
	}

	u, err := New(h.Pub, c.ID, c.Name, c.Email)
	if err != nil {
		return err
	}

	if _, err := h.Repo.Save(ctx, u.Snapshot()); err != nil {
		return fmt.Errorf("create user: save: %w", errors.Join(merr.ErrHandlerFailed, err))
	}

	return u.Commit(ctx)
}

var _ message.CommandHandler[Create] = (*CreateHandler)(nil)

// RenameHandler handles Rename commands. The aggregate is rehydrated from its
// snapshot, so only the rename itself is committed.
type RenameHandler struct {
	Repo Repository
	Pub  message.EventPublisher
}

func (h RenameHandler) Handle(ctx context.Context, c Rename) error {
	s, found, err := h.Repo.FindByID(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("rename user: lookup: %w", errors.Join(merr.ErrHandlerFailed, err))
	}

	if !found {
		return fmt.Errorf("rename user %s: %w", c.ID, merr.ErrNotFound)
	}

	u := Rehydrate(h.Pub, s)
	if err := u.Rename(c.NewName); err != nil {
		return err
	}

	if _, err := h.Repo.Save(ctx, u.Snapshot()); err != nil {
		return fmt.Errorf("rename user: save: %w", errors.Join(merr.ErrHandlerFailed, err))
	}

	return u.Commit(ctx)
}

var _ message.CommandHandler[Rename] = (*RenameHandler)(nil)

// DeleteHandler handles Delete commands.
type DeleteHandler struct {
	Repo Repository
	Pub  message.EventPublisher
}

func (h DeleteHandler) Handle(ctx context.Context, c Delete) error {
	s, found, err := h.Repo.FindByID(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("delete user: lookup: %w", errors.Join(merr.ErrHandlerFailed, err))
	}

	if !found {
		return fmt.Errorf("delete user %s: %w", c.ID, merr.ErrNotFound)
	}

	u := Rehydrate(h.Pub, s)
	u.MarkDeleted()

	if _, err := h.Repo.Delete(ctx, c.ID); err != nil {
		return fmt.Errorf("delete user: delete: %w", errors.Join(merr.ErrHandlerFailed, err))
	}

	return u.Commit(ctx)
}

var _ message.CommandHandler[Delete] = (*DeleteHandler)(nil)

// GetHandler answers Get queries. Absence is reported through View.Found, not
// an error.
type GetHandler struct {
	Repo Repository
}

func (h GetHandler) Handle(ctx context.Context, q Get) (View, error) {
	s, found, err := h.Repo.FindByID(ctx, q.ID)
	if err != nil {
		return View{}, fmt.Errorf("get user: %w", errors.Join(merr.ErrHandlerFailed, err))
	}

	return View{Found: found, User: s}, nil
}

var _ message.QueryHandler[Get, View] = (*GetHandler)(nil)

// ListHandler answers List queries.
type ListHandler struct {
	Repo Repository
}

func (h ListHandler) Handle(ctx context.Context, _ List) ([]Snapshot, error) {
	all, err := h.Repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", errors.Join(merr.ErrHandlerFailed, err))
	}

	return all, nil
}

var _ message.QueryHandler[List, []Snapshot] = (*ListHandler)(nil)
