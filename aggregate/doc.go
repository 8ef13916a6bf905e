/*
Package aggregate provides the buffer/commit discipline for domain aggregates:
state transitions record domain events into an uncommitted buffer, and a
successful unit of work commits the buffer through an event publisher, in
order, exactly once.
*/
package aggregate
