// Package view implements the client-side controller that issues imperative
// gateway calls and reflects their outcome into observable state.
//
// A controller never performs a call on the goroutine that triggered it: the
// state visible immediately after Trigger is always Pending, and every settle
// arrives through at least one scheduling step.
package view

import (
	"context"
	"sync"

	"github.com/ka2n/mado/api"
	"github.com/ka2n/mado/log"
)

// Gateway is the remote call boundary the controller depends on. It is
// injected at construction and invoked with a bag of named scalar values.
// It must settle exactly once: either a payload or an error.
type Gateway[T any] func(ctx context.Context, params api.Params) (T, error)

// Controller holds UI-bound state and orchestrates when gateway calls are
// issued. All state mutation happens behind a single mutex; subscribers are
// notified outside of it.
//
// Settle policy, latest-issued wins: every Trigger supersedes the calls that
// came before it, and a superseded call's settle is discarded even if it
// arrives after the newer call's. The state therefore always reflects the
// most recently issued call that has settled.
//
// Error policy: a successful settle replaces the result and clears the
// error; a failed settle sets the error and leaves the prior result in
// place.
type Controller[T any] struct {
	gateway   Gateway[T]
	normalize func(T) T

	mu      sync.Mutex
	seq     uint64
	snap    Snapshot[T]
	subs    map[uint64]func(Snapshot[T])
	nextSub uint64
}

// New creates a Controller around the given gateway
func New[T any](gateway Gateway[T]) *Controller[T] {
	return &Controller[T]{
		gateway: gateway,
		subs:    make(map[uint64]func(Snapshot[T])),
	}
}

// NewRecordController creates a controller for single-record fetches
func NewRecordController(gw api.RecordGateway) *Controller[api.Record] {
	return New(gw.Record)
}

// NewListController creates a controller for collection fetches.
// A successful settle always yields a non-nil slice, so an empty collection
// is distinguishable from "never fetched".
func NewListController(gw api.ListGateway) *Controller[[]api.Record] {
	c := New(gw.Records)
	c.normalize = func(records []api.Record) []api.Record {
		if records == nil {
			return []api.Record{}
		}
		return records
	}
	return c
}

// Snapshot returns a copy of the current state
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Subscribe registers fn to be called with a snapshot after every state
// change. The returned cancel func removes the subscription; call it when
// the observing view goes away.
func (c *Controller[T]) Subscribe(fn func(Snapshot[T])) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// Trigger issues a new gateway call with the given parameters. It returns
// as soon as the call is issued; the outcome arrives through subscribers.
// Each Trigger starts an independent call lifecycle that supersedes all
// earlier ones.
func (c *Controller[T]) Trigger(ctx context.Context, params api.Params) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.snap.Status = StatusPending
	snap := c.snap
	c.mu.Unlock()

	c.publish(snap)

	go func() {
		result, err := c.gateway(ctx, params)
		c.settle(seq, result, err)
	}()
}

// settle applies the outcome of call seq, unless a newer call has been
// issued since.
func (c *Controller[T]) settle(seq uint64, result T, err error) {
	c.mu.Lock()
	if seq != c.seq {
		latest := c.seq
		c.mu.Unlock()
		log.Debug("discarding settle of superseded call", "seq", seq, "latest", latest)
		return
	}

	if err != nil {
		c.snap.Status = StatusFailed
		c.snap.Err = err
	} else {
		if c.normalize != nil {
			result = c.normalize(result)
		}
		c.snap.Status = StatusSucceeded
		c.snap.Result = result
		c.snap.Err = nil
	}
	snap := c.snap
	c.mu.Unlock()

	if err != nil {
		log.Error("gateway call failed", "error", err)
	}
	c.publish(snap)
}

// publish delivers the snapshot to all current subscribers
func (c *Controller[T]) publish(snap Snapshot[T]) {
	c.mu.Lock()
	fns := make([]func(Snapshot[T]), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
