package order

import (
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// CancellationResponseWindow is how long the counterpart has to answer a
// cancellation request before it is auto-approved. Auto-approval protects the
// requesting party from an unresponsive counterpart.
const CancellationResponseWindow = 24 * time.Hour

// CancellationStatus is the state of an order's cancellation request.
//
// State transitions:
//
//	None ──request──> Pending ──approve/auto──> Approved
//	                     │ ├──reject──> Rejected
//	                     │ └──withdraw──> Withdrawn
type CancellationStatus int

const (
	// CancellationNone means no cancellation request exists.
	CancellationNone CancellationStatus = iota

	// CancellationPendingResponse means the request awaits the counterpart.
	CancellationPendingResponse

	// CancellationApproved means the request was approved and the order
	// cancelled.
	CancellationApproved

	// CancellationRejected means the counterpart rejected the request.
	CancellationRejected

	// CancellationWithdrawn means the requester withdrew the request.
	CancellationWithdrawn
)

func getCancellationStatusStrings() map[CancellationStatus]string {
	return map[CancellationStatus]string{
		CancellationNone:            "none",
		CancellationPendingResponse: "pending",
		CancellationApproved:        "approved",
		CancellationRejected:        "rejected",
		CancellationWithdrawn:       "withdrawn",
	}
}

// String returns the wire name of the cancellation status.
func (s CancellationStatus) String() string {
	if str, ok := getCancellationStatusStrings()[s]; ok {
		return str
	}
	return "none"
}

// Validate checks if the CancellationStatus value is valid.
func (s CancellationStatus) Validate() error {
	if s < CancellationNone || s > CancellationWithdrawn {
		return errs.NewValueIsInvalidErrorWithCause("cancellation status",
			fmt.Errorf("%d is not a valid cancellation status", s))
	}
	return nil
}

// Cancellation is the nested cancellation request record owned by an Order.
// At most one exists per order; it cannot outlive the order.
type Cancellation struct {
	status           CancellationStatus
	requestedBy      kernel.UUID
	reason           string
	files            []FileRef
	responseDeadline *time.Time
	respondedAt      *time.Time
	priorStatus      Status
}

// RestoreCancellation reconstructs a cancellation record from persistence.
func RestoreCancellation(
	status CancellationStatus,
	requestedBy kernel.UUID,
	reason string,
	files []FileRef,
	responseDeadline *time.Time,
	respondedAt *time.Time,
	priorStatus Status,
) Cancellation {
	return Cancellation{
		status:           status,
		requestedBy:      requestedBy,
		reason:           reason,
		files:            files,
		responseDeadline: responseDeadline,
		respondedAt:      respondedAt,
		priorStatus:      priorStatus,
	}
}

// Status returns the state of the cancellation request.
func (c Cancellation) Status() CancellationStatus { return c.status }

// RequestedBy returns the party that opened the request.
func (c Cancellation) RequestedBy() kernel.UUID { return c.requestedBy }

// Reason returns the requester's stated reason.
func (c Cancellation) Reason() string { return c.reason }

// Files returns evidence attached by the requester.
func (c Cancellation) Files() []FileRef { return c.files }

// ResponseDeadline returns when the request auto-approves, nil unless pending.
func (c Cancellation) ResponseDeadline() *time.Time { return c.responseDeadline }

// RespondedAt returns when the request was answered, nil while pending.
func (c Cancellation) RespondedAt() *time.Time { return c.respondedAt }

// PriorStatus returns the order status to restore if the request is rejected
// or withdrawn.
func (c Cancellation) PriorStatus() Status { return c.priorStatus }

// IsPending reports whether the request still awaits a response.
func (c Cancellation) IsPending() bool { return c.status == CancellationPendingResponse }

// RequestCancellation opens a cancellation request. Either party may request;
// the order must be InProgress or Delivered, no other sub-request may be
// active, and the counterpart gets CancellationResponseWindow to answer.
func (o *Order) RequestCancellation(actor kernel.UUID, reason string, files []FileRef, now time.Time) error {
	if err := o.requireParty(actor, "request cancellation"); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellation reason")
	}
	if err := validateFiles(files); err != nil {
		return err
	}
	if !o.status.CanRequestCancellation() {
		return errs.NewInvalidStateError("request cancellation", o.status.String())
	}
	if name, active := o.activeSubRequest(); active {
		return errs.NewInvalidStateError("request cancellation", fmt.Sprintf("%s request is active", name))
	}

	deadline := now.Add(CancellationResponseWindow)
	o.cancellation = Cancellation{
		status:           CancellationPendingResponse,
		requestedBy:      actor,
		reason:           reason,
		files:            files,
		responseDeadline: &deadline,
		priorStatus:      o.status,
	}
	o.status = StatusCancellationPending
	o.notify(EventCancellationRequested, o.counterpartOf(actor))
	return nil
}

// RespondToCancellation answers a pending cancellation request. Only the
// party that did not open the request may answer. Approval cancels the order
// and refunds the client; rejection restores the order's prior status.
func (o *Order) RespondToCancellation(actor kernel.UUID, approve bool, now time.Time) error {
	if err := o.requireParty(actor, "respond to cancellation"); err != nil {
		return err
	}
	if !o.cancellation.IsPending() {
		return errs.NewInvalidStateError("respond to cancellation", o.cancellation.status.String())
	}
	if actor.IsEqual(o.cancellation.requestedBy) {
		return errs.NewUnauthorizedError("requester", "respond to own cancellation request")
	}

	if approve {
		o.approveCancellation(now)
		return nil
	}

	o.cancellation.status = CancellationRejected
	o.clearCancellation(now)
	o.notify(EventCancellationResolved, o.cancellation.requestedBy)
	return nil
}

// WithdrawCancellation retracts a pending cancellation request. Only the
// original requester may withdraw; the order returns to its prior status.
func (o *Order) WithdrawCancellation(actor kernel.UUID, now time.Time) error {
	if err := o.requireParty(actor, "withdraw cancellation"); err != nil {
		return err
	}
	if !o.cancellation.IsPending() {
		return errs.NewInvalidStateError("withdraw cancellation", o.cancellation.status.String())
	}
	if !actor.IsEqual(o.cancellation.requestedBy) {
		return errs.NewUnauthorizedError("counterpart", "withdraw a cancellation it did not request")
	}

	o.cancellation.status = CancellationWithdrawn
	o.clearCancellation(now)
	o.notify(EventCancellationResolved, o.counterpartOf(actor))
	return nil
}

// AutoCancel applies the deadline default for an unanswered cancellation
// request: approval, order cancelled, client refunded. It is a no-op
// rejection when the deadline has not passed or the request was already
// answered, which makes repeated scheduler sweeps safe.
func (o *Order) AutoCancel(now time.Time) error {
	if o.status != StatusCancellationPending || !o.cancellation.IsPending() {
		return errs.NewInvalidStateError("auto-cancel", o.status.String())
	}
	if o.cancellation.responseDeadline == nil || now.Before(*o.cancellation.responseDeadline) {
		return errs.NewInvalidStateError("auto-cancel", "response deadline has not passed")
	}

	o.approveCancellation(now)
	return nil
}

func (o *Order) approveCancellation(now time.Time) {
	o.cancellation.status = CancellationApproved
	o.cancellation.respondedAt = &now
	o.status = StatusCancelled
	o.deliveryStatus = DeliveryCancelled
	o.archiveSubRequests()
	o.emitEscrow(EscrowInstruction{Kind: EscrowRefund, Amount: o.amount})
	o.notifyBoth(EventOrderCancelled)
}

// clearCancellation restores the pre-request order status after a rejection
// or withdrawal. The Delivered response window restarts from the response so
// the client keeps a full window after the interruption.
func (o *Order) clearCancellation(now time.Time) {
	o.cancellation.respondedAt = &now
	o.status = o.cancellation.priorStatus
	if o.status == StatusDelivered {
		deadline := now.Add(ClientResponseWindow)
		o.autoCompleteAt = &deadline
	}
}
