package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the billing lifecycle state of an order.
//
// State transitions:
//
//	Pending/InProgress ──deliverWork──> Delivered ──accept/auto──> Completed
//	InProgress/Delivered ──requestCancellation──> CancellationPending
//	CancellationPending ──approve/auto──> Cancelled
//	CancellationPending ──reject/withdraw──> prior status
//	InProgress/Delivered ──openDispute──> Disputed ──close──> Completed | Cancelled
//
// Completed and Cancelled are terminal: no transition is permitted afterward.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status assigned by the ordering flow.
	// The professional has not started work yet.
	StatusPending

	// StatusInProgress indicates the professional is working on the order,
	// including reworking it after an accepted revision request.
	StatusInProgress

	// StatusDelivered indicates work has been delivered and the client's
	// response window is running.
	StatusDelivered

	// StatusCompleted indicates the order finished successfully and escrow
	// was released to the professional. Terminal.
	StatusCompleted

	// StatusCancelled indicates the order was cancelled and escrow refunded
	// to the client. Terminal.
	StatusCancelled

	// StatusCancellationPending indicates a cancellation request is awaiting
	// the counterpart's response.
	StatusCancellationPending

	// StatusDisputed indicates an open dispute froze the order.
	StatusDisputed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:             "Unknown",
		StatusPending:             "Pending",
		StatusInProgress:          "InProgress",
		StatusDelivered:           "Delivered",
		StatusCompleted:           "Completed",
		StatusCancelled:           "Cancelled",
		StatusCancellationPending: "CancellationPending",
		StatusDisputed:            "Disputed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:             "Pending",
		StatusInProgress:          "InProgress",
		StatusDelivered:           "Delivered",
		StatusCompleted:           "Completed",
		StatusCancelled:           "Cancelled",
		StatusCancellationPending: "CancellationPending",
		StatusDisputed:            "Disputed",
	}
}

// Validate checks if the Status value is valid.
// This is used to ensure Status values from external sources
// (e.g. database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanDeliver reports whether work may be delivered from this status.
func (s Status) CanDeliver() bool {
	return s == StatusPending || s == StatusInProgress
}

// CanRequestCancellation reports whether a cancellation request may be
// opened from this status.
func (s Status) CanRequestCancellation() bool {
	return s == StatusInProgress || s == StatusDelivered
}

// CanRequestExtension reports whether a delivery extension may be
// requested from this status.
func (s Status) CanRequestExtension() bool {
	return s == StatusPending || s == StatusInProgress
}
