/*
Package mediator provides a thin, opinionated facade over command, query, and
domain event handling. It routes each message by the string discriminant the
message carries, keeps exactly one handler per command/query name, and fans
events out to an ordered handler list, all synchronously on the caller's
goroutine.
*/
package mediator
