// Package api implements the domain model and the remote gateway for the
// record service that mado displays.
package api

import "context"

// RecordGateway fetches a single record identified by the "id" parameter.
//
// A gateway invocation settles exactly once: it returns either a record or an
// error, never both. Callers that feed view state must not invoke a gateway on
// the goroutine that owns that state; see the view package.
type RecordGateway interface {
	Record(ctx context.Context, params Params) (Record, error)
}

// ListGateway fetches every record the service exposes. Parameters are
// currently unused for list calls but kept for a uniform invocation shape.
type ListGateway interface {
	Records(ctx context.Context, params Params) ([]Record, error)
}
