package user

import (
	"context"

	"github.com/next-trace/scg-mediator/contract/port"
)

// Repository is the storage port the user handlers consume. FindByEmail backs
// the uniqueness rule checked before any event is buffered.
type Repository interface {
	port.Repository[Snapshot]

	FindByEmail(ctx context.Context, email string) (Snapshot, bool, error)
}
