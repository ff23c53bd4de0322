package view

import "github.com/morikuni/failure/v2"

// Status represents where a call lifecycle currently stands
type Status int

const (
	// StatusIdle means no call has been triggered yet
	StatusIdle Status = iota
	// StatusPending means a call has been issued and has not settled
	StatusPending
	// StatusSucceeded means the most recent settle was a success
	StatusSucceeded
	// StatusFailed means the most recent settle was a failure
	StatusFailed
)

// String returns the string representation of the Status
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable copy of a controller's state, published to
// subscribers whenever the state changes.
//
// Result holds the payload of the most recent successful settle. A failed
// settle leaves Result untouched, so a stale result and a fresh error can
// coexist; Status tells which one the most recent settle produced.
type Snapshot[T any] struct {
	Status Status
	Result T
	Err    error
}

// ErrorMessage returns a human-readable message for the snapshot's error,
// or an empty string when there is none. The message is never empty for a
// non-nil error.
func (s Snapshot[T]) ErrorMessage() string {
	if s.Err == nil {
		return ""
	}
	if fmsg := failure.MessageOf(s.Err); fmsg != "" {
		return fmsg.String()
	}
	return s.Err.Error()
}
