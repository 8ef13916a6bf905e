package mediator

import (
	"context"
	"fmt"
	"sync"

	merr "github.com/next-trace/scg-mediator/contract/errors"
)

// Registry maps message names to handlers. Command and query names hold
// exactly one handler each; event names hold an ordered handler list.
//
// The registry is populated during composition and treated as immutable
// afterwards. The mutex keeps misuse from racing, it is not a hot-reload
// mechanism.
type Registry struct {
	mu  sync.RWMutex
	cmd map[string]func(ctx context.Context, v any) error
	qry map[string]func(ctx context.Context, v any) (any, error)
	evt map[string][]func(ctx context.Context, v any) error
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		cmd: make(map[string]func(context.Context, any) error),
		qry: make(map[string]func(context.Context, any) (any, error)),
		evt: make(map[string][]func(context.Context, any) error),
	}
}

// RegisterCommand binds a handler under a command name. A second registration
// for the same name is rejected at registration time, before any dispatch.
func (r *Registry) RegisterCommand(name string, h func(ctx context.Context, v any) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cmd[name]; exists {
		return fmt.Errorf("register command %s: %w", name, merr.ErrHandlerExists)
	}

	r.cmd[name] = h

	return nil
}

// RegisterQuery binds a handler under a query name. Duplicates are rejected.
func (r *Registry) RegisterQuery(name string, h func(ctx context.Context, v any) (any, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.qry[name]; exists {
		return fmt.Errorf("register query %s: %w", name, merr.ErrHandlerExists)
	}

	r.qry[name] = h

	return nil
}

// SubscribeEvent appends a handler to the ordered list for an event name.
// Any number of handlers is allowed; registering the same handler twice is
// permitted at the caller's risk and results in two invocations per publish.
func (r *Registry) SubscribeEvent(name string, h func(ctx context.Context, v any) error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evt[name] = append(r.evt[name], h)
}

func (r *Registry) commandHandler(name string) (func(context.Context, any) error, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.cmd[name]

	return h, ok
}

func (r *Registry) queryHandler(name string) (func(context.Context, any) (any, error), bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.qry[name]

	return h, ok
}

// eventHandlers returns a snapshot of the handler list so a publish iterates a
// stable slice even if composition code misbehaves concurrently.
func (r *Registry) eventHandlers(name string) []func(context.Context, any) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]func(context.Context, any) error(nil), r.evt[name]...)
}
