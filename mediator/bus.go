package mediator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	merr "github.com/next-trace/scg-mediator/contract/errors"
	"github.com/next-trace/scg-mediator/contract/message"
)

// Bus is a thin in-process mediator over a Registry.
// It supports synchronous command/query handling and domain event publication.
// Dispatch is keyed by the string discriminant each message carries; the bus
// never inspects runtime types.
//
// Bus is concurrency-safe and contains no global state. It introduces no
// concurrency of its own: every handler runs on the caller's goroutine, and
// the caller's context passes through untouched.
type Bus struct {
	reg *Registry

	// global command middleware executed in registration order
	cmdMW []CommandMiddleware

	logger *slog.Logger
}

// CommandBus is a thin facade over Bus for commands.
type CommandBus struct{ b *Bus }

// NewCommandBus constructs a CommandBus over a Bus.
func NewCommandBus(b *Bus) *CommandBus { return &CommandBus{b: b} }

// Dispatch dispatches a command using the underlying Bus.
func (c *CommandBus) Dispatch(ctx context.Context, cmd message.Command) error {
	return c.b.Dispatch(ctx, cmd)
}

// QueryBus is a thin facade over Bus for queries.
type QueryBus struct{ b *Bus }

// NewQueryBus constructs a QueryBus over a Bus.
func NewQueryBus(b *Bus) *QueryBus { return &QueryBus{b: b} }

// Ask executes an untyped query using the underlying Bus.
func (q *QueryBus) Ask(ctx context.Context, query message.Query) (any, error) {
	return q.b.Ask(ctx, query)
}

// AskGeneric is a typed helper to execute queries via a QueryBus.
func AskGeneric[Q message.Query, R any](ctx context.Context, qb *QueryBus, query Q) (R, error) {
	return Ask[Q, R](ctx, qb.b, query)
}

// EventBus is a thin facade over Bus for domain events.
type EventBus struct{ b *Bus }

// NewEventBus constructs an EventBus over a Bus.
func NewEventBus(b *Bus) *EventBus { return &EventBus{b: b} }

// Publish fans an event out using the underlying Bus.
func (e *EventBus) Publish(ctx context.Context, evt message.DomainEvent) error {
	return e.b.Publish(ctx, evt)
}

// Subscribe appends an untyped handler for an event name. Composition-time
// only; typed subscriptions go through BindEvent.
func (e *EventBus) Subscribe(name string, handler func(ctx context.Context, v any) error) error {
	return e.b.BindEventOf(name, handler)
}

// New constructs a new Bus with an optional logger (nil disables logging).
func New(logger *slog.Logger, opts ...BusOption) *Bus {
	b := &Bus{
		reg:    NewRegistry(),
		logger: logger,
	}
	for _, o := range opts {
		o(b)
	}

	return b
}

// Registry exposes the underlying registry for composition code.
func (b *Bus) Registry() *Registry { return b.reg }

// BusOption configures a Bus instance.
type BusOption func(*Bus)

// WithCommandMiddleware registers global command middleware via an option.
func WithCommandMiddleware(mw ...CommandMiddleware) BusOption {
	return func(b *Bus) { b.cmdMW = append(b.cmdMW, mw...) }
}

// CommandMiddleware wraps command handler execution. Middlewares are executed in registration order.
type CommandMiddleware func(next func(ctx context.Context, cmd any) error) func(ctx context.Context, cmd any) error

// BindCommandOf registers an untyped handler under a command name.
func (b *Bus) BindCommandOf(name string, handler func(ctx context.Context, v any) error) error {
	return b.reg.RegisterCommand(name, handler)
}

// BindQueryOf registers an untyped handler under a query name.
func (b *Bus) BindQueryOf(name string, handler func(ctx context.Context, v any) (any, error)) error {
	return b.reg.RegisterQuery(name, handler)
}

// BindEventOf registers an untyped handler under an event name.
// Multiple handlers are allowed; they run in registration order.
func (b *Bus) BindEventOf(name string, handler func(ctx context.Context, v any) error) error {
	b.reg.SubscribeEvent(name, handler)
	return nil
}

// BindCommand registers a handler for command type C. Duplicate bindings are rejected.
func BindCommand[C message.Command](b *Bus, h message.CommandHandler[C]) error {
	var zero C

	name := zero.CommandName()

	return b.reg.RegisterCommand(name, func(ctx context.Context, v any) error {
		c, ok := v.(C)
		if !ok {
			return fmt.Errorf("dispatch %s: %w", name, merr.ErrHandlerTypeMismatch)
		}

		return h.Handle(ctx, c)
	})
}

// BindQuery registers a handler for query type Q producing R. Duplicate bindings are rejected.
func BindQuery[Q message.Query, R any](b *Bus, h message.QueryHandler[Q, R]) error {
	var zero Q

	name := zero.QueryName()

	return b.reg.RegisterQuery(name, func(ctx context.Context, v any) (any, error) {
		q, ok := v.(Q)
		if !ok {
			return nil, fmt.Errorf("ask %s: %w", name, merr.ErrHandlerTypeMismatch)
		}

		return h.Handle(ctx, q)
	})
}

// BindEvent registers a handler for event type E. Multiple handlers are allowed.
func BindEvent[E message.DomainEvent](b *Bus, h message.EventHandler[E]) error {
	var zero E

	name := zero.EventName()

	b.reg.SubscribeEvent(name, func(ctx context.Context, v any) error {
		e, ok := v.(E)
		if !ok {
			return fmt.Errorf("publish %s: %w", name, merr.ErrHandlerTypeMismatch)
		}

		return h.Handle(ctx, e)
	})

	return nil
}

// Dispatch executes the command handler synchronously (with middleware).
// The handler's result or failure is returned unmodified; the bus does not
// retry, queue, or deduplicate.
func (b *Bus) Dispatch(ctx context.Context, cmd message.Command) error {
	return b.dispatchWithMiddleware(ctx, cmd)
}

// Ask executes a query handler synchronously and returns an untyped result.
func (b *Bus) Ask(ctx context.Context, q message.Query) (any, error) {
	f, ok := b.reg.queryHandler(q.QueryName())
	if !ok {
		return nil, fmt.Errorf("ask %s: %w", q.QueryName(), merr.ErrHandlerNotFound)
	}

	return f(ctx, q)
}

// Ask executes a query handler synchronously and returns a typed result.
func Ask[Q message.Query, R any](ctx context.Context, b *Bus, q Q) (R, error) {
	var zero R

	res, err := b.Ask(ctx, q)
	if err != nil {
		return zero, err
	}

	r, ok := res.(R)
	if !ok {
		return zero, fmt.Errorf("ask %s: %w", q.QueryName(), merr.ErrHandlerTypeMismatch)
	}

	return r, nil
}

// Publish delivers a domain event to every registered handler, synchronously,
// in registration order. An event with no handlers is dropped without error.
//
// Failure policy is stop-on-first-error: if handler i fails, handlers i+1..n
// are not invoked and the failure propagates verbatim to the caller. Callers
// that need independent delivery must swallow errors inside their handlers.
func (b *Bus) Publish(ctx context.Context, e message.DomainEvent) error {
	handlers := b.reg.eventHandlers(e.EventName())
	if len(handlers) == 0 {
		return nil
	}

	for i, h := range handlers {
		if err := h(ctx, e); err != nil {
			if b.logger != nil {
				b.logger.WarnContext(ctx, "event handler failed",
					"event", e.EventName(), "handler_index", i, "err", err)
			}

			return err
		}
	}

	return nil
}

// Ensure Bus satisfies the publisher contract aggregates commit through.
var _ message.EventPublisher = (*Bus)(nil)

// Ensure Bus satisfies the contract-only mediator surface.
var _ message.Mediator = (*Bus)(nil)

// DispatchWithMiddleware executes a command with additional per-call middleware.
func (b *Bus) DispatchWithMiddleware(ctx context.Context, cmd message.Command, mws ...CommandMiddleware) error {
	return b.dispatchWithMiddleware(ctx, cmd, mws...)
}

func (b *Bus) dispatchWithMiddleware(ctx context.Context, cmd message.Command, mws ...CommandMiddleware) error {
	f, ok := b.reg.commandHandler(cmd.CommandName())
	if !ok {
		return fmt.Errorf("dispatch %s: %w", cmd.CommandName(), merr.ErrHandlerNotFound)
	}

	// Combine global and per-call middleware
	chain := make([]CommandMiddleware, 0, len(b.cmdMW)+len(mws))
	chain = append(chain, b.cmdMW...)
	chain = append(chain, mws...)

	// Build chain so the first registered middleware runs first
	final := f
	for i := len(chain) - 1; i >= 0; i-- {
		final = chain[i](final)
	}

	return final(ctx, cmd)
}

// Chain executes commands in order and stops on the first error.
func (b *Bus) Chain(ctx context.Context, cmds ...message.Command) error {
	for _, c := range cmds {
		if err := b.dispatchWithMiddleware(ctx, c); err != nil {
			return err
		}
	}

	return nil
}

// BatchOptions controls Batch execution behavior.
// OnProgress is called after each command completes (success or failure) with done and total.
// OnError is called when a command returns an error with its index, the command value, and the error.
type BatchOptions struct {
	OnProgress func(done, total int)
	OnError    func(index int, cmd message.Command, err error)
}

// BatchOpt configures BatchOptions.
type BatchOpt func(*BatchOptions)

// WithBatchProgress sets the progress callback.
func WithBatchProgress(fn func(done, total int)) BatchOpt {
	return func(o *BatchOptions) { o.OnProgress = fn }
}

// WithBatchOnError sets the error callback.
func WithBatchOnError(fn func(index int, cmd message.Command, err error)) BatchOpt {
	return func(o *BatchOptions) { o.OnError = fn }
}

// Batch executes the provided commands sequentially.
// It respects context cancellation, reports progress, and aggregates errors.
func (b *Bus) Batch(ctx context.Context, cmds []message.Command, opts ...BatchOpt) error {
	var o BatchOptions
	for _, f := range opts {
		f(&o)
	}

	total := len(cmds)

	var errs []error

	for i, c := range cmds {
		if err := ctx.Err(); err != nil { // canceled or deadline exceeded
			return errors.Join(append(errs, err)...)
		}

		err := b.dispatchWithMiddleware(ctx, c)
		if err != nil {
			if o.OnError != nil {
				o.OnError(i, c, err)
			}

			errs = append(errs, err)
		}

		if o.OnProgress != nil {
			o.OnProgress(i+1, total)
		}
	}

	return errors.Join(errs...)
}
