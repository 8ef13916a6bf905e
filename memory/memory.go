package memory

import (
	"log/slog"

	"github.com/next-trace/scg-mediator/adapters/memnotify"
	"github.com/next-trace/scg-mediator/adapters/memstore"
	"github.com/next-trace/scg-mediator/mediator"
	"github.com/next-trace/scg-mediator/user"
)

// App is a fully wired in-memory composition: bus facades plus the concrete
// adapters, exposed so tests and demos can inspect what happened.
type App struct {
	Bus      *mediator.Bus
	Commands *mediator.CommandBus
	Queries  *mediator.QueryBus
	Events   *mediator.EventBus
	Store    *memstore.Store
	Notifier *memnotify.Notifier
}

// New constructs the bus, backs it with in-memory adapters, and registers the
// user module's handlers. logger may be nil.
func New(logger *slog.Logger, opts ...mediator.BusOption) (*App, error) {
	b := mediator.New(logger, opts...)
	store := memstore.New()
	notifier := memnotify.New()

	if err := user.Register(b, store, notifier); err != nil {
		return nil, err
	}

	return &App{
		Bus:      b,
		Commands: mediator.NewCommandBus(b),
		Queries:  mediator.NewQueryBus(b),
		Events:   mediator.NewEventBus(b),
		Store:    store,
		Notifier: notifier,
	}, nil
}
