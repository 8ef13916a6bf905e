package message

// Command expresses intent to change state. Exactly one handler may be
// registered per command name.
//
// The name is an explicit discriminant carried by the message value itself;
// dispatch never inspects runtime types. Names must be stable for the process
// lifetime and unique across commands.
type Command interface {
	CommandName() string
}

// Query expresses intent to read state. Exactly one handler may be registered
// per query name. Query handlers must not mutate shared state or record
// events; the bus does not enforce this, handler authors do.
type Query interface {
	QueryName() string
}

// DomainEvent expresses a fact that already happened. Zero or more handlers
// may be registered per event name; an event with no handlers is dropped
// without error.
type DomainEvent interface {
	EventName() string
}
