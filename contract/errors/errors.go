package errors

// Error codes for the mediator contracts. Keep stable; used across adapters,
// buses, and domain handlers.
const (
	ErrCodeHandlerExists       = "mediator.handler_exists"
	ErrCodeHandlerNotFound     = "mediator.handler_not_found"
	ErrCodeHandlerTypeMismatch = "mediator.handler_type_mismatch"
	ErrCodeHandlerFailed       = "mediator.handler_failed"
	ErrCodeValidation          = "domain.validation"
	ErrCodeConflict            = "domain.conflict"
	ErrCodeNotFound            = "domain.not_found"
	ErrCodeSendFailed          = "notify.send_failed"
	ErrCodeSerializationFailed = "notify.serialization_failed"
	ErrCodePublisherMissing    = "aggregate.publisher_missing"
)

// Code returns an error value that carries only a code string.
// It implements error by returning the code string in Error().
func Code(code string) error { return codedError(code) }

type codedError string

func (e codedError) Error() string { return string(e) }

var (
	// ErrHandlerExists reports a second command/query registration for a name
	// that already has a handler. Always a composition-time programming error.
	ErrHandlerExists = Code(ErrCodeHandlerExists)

	// ErrHandlerNotFound reports a dispatch for a command/query name with no
	// registered handler. Always a programming error, surfaced at first dispatch.
	ErrHandlerNotFound = Code(ErrCodeHandlerNotFound)

	// ErrHandlerTypeMismatch reports a payload whose concrete type does not
	// match the handler bound under its name.
	ErrHandlerTypeMismatch = Code(ErrCodeHandlerTypeMismatch)

	// ErrHandlerFailed wraps an unexpected failure inside a handler or a port
	// it called. Domain errors below pass through buses unwrapped.
	ErrHandlerFailed = Code(ErrCodeHandlerFailed)

	// ErrValidation reports a violated domain invariant.
	ErrValidation = Code(ErrCodeValidation)

	// ErrConflict reports a violated uniqueness rule.
	ErrConflict = Code(ErrCodeConflict)

	// ErrNotFound reports a referenced entity that does not exist.
	ErrNotFound = Code(ErrCodeNotFound)

	// ErrSendFailed reports a notification that could not be delivered.
	ErrSendFailed = Code(ErrCodeSendFailed)

	// ErrSerializationFailed reports a notification payload that could not be
	// encoded for transport.
	ErrSerializationFailed = Code(ErrCodeSerializationFailed)

	// ErrPublisherMissing reports a commit attempted on an aggregate that was
	// never bound to a publisher. Always a programming error.
	ErrPublisherMissing = Code(ErrCodePublisherMissing)
)
