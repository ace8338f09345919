// Package query models the lifecycle of an outstanding asynchronous command.
//
// Every command family (joining a board, adding a card, ...) carries one
// Query. Dispatch marks it pending; the upstream response resolves it to
// success or failure. Observers compare the previously seen Query with the
// current one using Failed and Succeeded so that side effects fire exactly
// once per transition, never while the status is stable.
package query

// Status is the lifecycle tag of a Query.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusIdle, StatusPending, StatusSuccess, StatusFailure:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Query is the status of one command family plus the error message of the
// last failure. The zero value reads as idle.
type Query struct {
	Status Status
	Error  string
}

// Idle returns an idle Query.
func Idle() Query { return Query{Status: StatusIdle} }

// Pending returns a Query for a dispatched, unresolved command.
func Pending() Query { return Query{Status: StatusPending} }

// Success returns a resolved, successful Query.
func Success() Query { return Query{Status: StatusSuccess} }

// Failure returns a resolved, failed Query carrying msg.
func Failure(msg string) Query { return Query{Status: StatusFailure, Error: msg} }

// State returns the status, treating the zero value as idle.
func (q Query) State() Status {
	if q.Status == "" {
		return StatusIdle
	}
	return q.Status
}

// IsPending reports whether the command is still in flight.
func (q Query) IsPending() bool { return q.State() == StatusPending }

// Failed reports a transition from any non-failure status into failure.
func Failed(prev, next Query) bool {
	return prev.State() != StatusFailure && next.State() == StatusFailure
}

// Succeeded reports a transition from any non-success status into success.
func Succeeded(prev, next Query) bool {
	return prev.State() != StatusSuccess && next.State() == StatusSuccess
}
