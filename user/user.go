package user

import (
	"fmt"
	"net/mail"
	"unicode/utf8"

	"github.com/next-trace/scg-mediator/aggregate"
	merr "github.com/next-trace/scg-mediator/contract/errors"
	"github.com/next-trace/scg-mediator/contract/message"
)

const minNameLen = 2

// User is the demo aggregate: identity, current state, and the uncommitted
// event buffer inherited by composition from aggregate.Root.
type User struct {
	aggregate.Root

	ID    string
	Name  string
	Email string
}

// Snapshot is the persisted shape of a User, free of publisher and buffer.
type Snapshot struct {
	ID    string
	Name  string
	Email string
}

// New validates invariants and constructs a User bound to the given
// publisher, recording a Created event. Nothing is recorded when validation
// fails.
func New(pub message.EventPublisher, id, name, email string) (*User, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	if err := validateEmail(email); err != nil {
		return nil, err
	}

	u := &User{
		Root:  aggregate.New(pub),
		ID:    id,
		Name:  name,
		Email: email,
	}
	u.Record(Created{ID: id, Name: name, Email: email})

	return u, nil
}

// Rehydrate reconstructs a User from a stored snapshot and binds a publisher
// without replaying history: the buffer starts empty, so only mutations made
// after rehydration are committed.
func Rehydrate(pub message.EventPublisher, s Snapshot) *User {
	return &User{
		Root:  aggregate.Rehydrate(pub),
		ID:    s.ID,
		Name:  s.Name,
		Email: s.Email,
	}
}

// Snapshot returns the persistable state of the user.
func (u *User) Snapshot() Snapshot {
	return Snapshot{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Rename changes the user's name, recording a Renamed event.
// State is untouched when validation fails.
func (u *User) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	old := u.Name
	u.Name = name
	u.Record(Renamed{ID: u.ID, OldName: old, NewName: name})

	return nil
}

// MarkDeleted records a Deleted event. Removal from storage is the handler's
// job; the aggregate only states the fact.
func (u *User) MarkDeleted() {
	u.Record(Deleted{ID: u.ID, Email: u.Email})
}

func validateName(name string) error {
	if utf8.RuneCountInString(name) < minNameLen {
		return fmt.Errorf("user name %q too short: %w", name, merr.ErrValidation)
	}

	return nil
}

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("user email %q: %w", email, merr.ErrValidation)
	}

	return nil
}
