package user

// Command and query names.
const (
	CommandCreate = "user.create"
	CommandRename = "user.rename"
	CommandDelete = "user.delete"
	QueryGet      = "user.get"
	QueryList     = "user.list"
)

// Create requests a new user.
type Create struct {
	ID    string
	Name  string
	Email string
}

func (Create) CommandName() string { return CommandCreate }

// Rename requests a name change for an existing user.
type Rename struct {
	ID      string
	NewName string
}

func (Rename) CommandName() string { return CommandRename }

// Delete requests removal of an existing user.
type Delete struct {
	ID string
}

func (Delete) CommandName() string { return CommandDelete }

// Get reads a single user by id.
type Get struct {
	ID string
}

func (Get) QueryName() string { return QueryGet }

// View is the Get result. Found=false is a valid answer, not an error: the
// handler, not the bus, decides whether absence matters.
type View struct {
	Found bool
	User  Snapshot
}

// List reads all users.
type List struct{}

func (List) QueryName() string { return QueryList }
