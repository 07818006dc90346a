// Package order contains the Order aggregate: the consistency boundary for a
// marketplace order and its nested cancellation, revision, extension, and
// dispute requests.
//
// The aggregate is mutated exclusively through its transition methods, which
// validate the actor, the current state, and the payload before applying any
// change. Each method either succeeds, leaving the aggregate in a new valid
// state with pending side effects recorded, or returns a typed rejection from
// the errs package and leaves the aggregate untouched.
//
// Time-triggered transitions (auto-complete, auto-cancel, dispute default
// judgment) are exposed as Auto* methods. They are idempotent: once the
// aggregate has moved past the guarded state, re-applying the same deadline
// check is a no-op rejection that callers may safely ignore.
//
// Side effects (escrow instructions and notifications) are accumulated on the
// aggregate during transitions and drained by the application layer after the
// change has been committed, so money movement and delivery of notifications
// never happen for a transition that failed to persist.
package order
