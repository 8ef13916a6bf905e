package user

// Event names are the stable discriminants dispatch is keyed by.
const (
	EventCreated = "user.created"
	EventRenamed = "user.renamed"
	EventDeleted = "user.deleted"
)

// Created states that a user came into existence.
type Created struct {
	ID    string
	Name  string
	Email string
}

func (Created) EventName() string { return EventCreated }

// Renamed states that a user's name changed.
type Renamed struct {
	ID      string
	OldName string
	NewName string
}

func (Renamed) EventName() string { return EventRenamed }

// Deleted states that a user was removed.
type Deleted struct {
	ID    string
	Email string
}

func (Deleted) EventName() string { return EventDeleted }
