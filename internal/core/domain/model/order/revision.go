package order

import (
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// RevisionStatus is the state of an order's revision request.
//
// State transitions:
//
//	None ──request──> Pending ──accept──> InProgress ──complete──> Completed
//	                     └──reject──> Rejected
type RevisionStatus int

const (
	// RevisionNone means no revision request exists.
	RevisionNone RevisionStatus = iota

	// RevisionPendingResponse means the request awaits the professional.
	RevisionPendingResponse

	// RevisionInProgress means the professional accepted and is reworking.
	RevisionInProgress

	// RevisionCompleted means the rework was delivered.
	RevisionCompleted

	// RevisionRejected means the professional declined the request.
	RevisionRejected
)

func getRevisionStatusStrings() map[RevisionStatus]string {
	return map[RevisionStatus]string{
		RevisionNone:            "none",
		RevisionPendingResponse: "pending",
		RevisionInProgress:      "in_progress",
		RevisionCompleted:       "completed",
		RevisionRejected:        "rejected",
	}
}

// String returns the wire name of the revision status.
func (s RevisionStatus) String() string {
	if str, ok := getRevisionStatusStrings()[s]; ok {
		return str
	}
	return "none"
}

// Validate checks if the RevisionStatus value is valid.
func (s RevisionStatus) Validate() error {
	if s < RevisionNone || s > RevisionRejected {
		return errs.NewValueIsInvalidErrorWithCause("revision status",
			fmt.Errorf("%d is not a valid revision status", s))
	}
	return nil
}

// Revision is the nested revision request record owned by an Order.
type Revision struct {
	status          RevisionStatus
	reason          string
	clientMessage   string
	clientFiles     []FileRef
	additionalNotes string
	requestedAt     *time.Time
	respondedAt     *time.Time
}

// RestoreRevision reconstructs a revision record from persistence.
func RestoreRevision(
	status RevisionStatus,
	reason string,
	clientMessage string,
	clientFiles []FileRef,
	additionalNotes string,
	requestedAt *time.Time,
	respondedAt *time.Time,
) Revision {
	return Revision{
		status:          status,
		reason:          reason,
		clientMessage:   clientMessage,
		clientFiles:     clientFiles,
		additionalNotes: additionalNotes,
		requestedAt:     requestedAt,
		respondedAt:     respondedAt,
	}
}

// Status returns the state of the revision request.
func (r Revision) Status() RevisionStatus { return r.status }

// Reason returns the client's stated reason.
func (r Revision) Reason() string { return r.reason }

// ClientMessage returns the client's free-text description of the rework.
func (r Revision) ClientMessage() string { return r.clientMessage }

// ClientFiles returns attachments the client supplied with the request.
func (r Revision) ClientFiles() []FileRef { return r.clientFiles }

// AdditionalNotes returns the professional's reply notes.
func (r Revision) AdditionalNotes() string { return r.additionalNotes }

// RequestedAt returns when the revision was requested.
func (r Revision) RequestedAt() *time.Time { return r.requestedAt }

// RespondedAt returns when the professional answered. While a revision is
// in progress this is the baseline of the professional's work timer.
func (r Revision) RespondedAt() *time.Time { return r.respondedAt }

// IsActive reports whether the request is pending or being worked on.
func (r Revision) IsActive() bool {
	return r.status == RevisionPendingResponse || r.status == RevisionInProgress
}

// RequestRevision opens a revision request. Only the client may request, only
// while work is delivered, and the request stops the auto-complete clock.
func (o *Order) RequestRevision(actor kernel.UUID, reason, message string, files []FileRef, now time.Time) error {
	if err := o.requireParty(actor, "request revision"); err != nil {
		return err
	}
	if !actor.IsEqual(o.clientID) {
		return errs.NewUnauthorizedError("professional", "request a revision")
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("revision reason")
	}
	if err := validateFiles(files); err != nil {
		return err
	}
	if o.status != StatusDelivered || o.deliveryStatus != DeliveryDelivered {
		return errs.NewInvalidStateError("request revision", o.status.String())
	}
	if name, active := o.activeSubRequest(); active {
		return errs.NewInvalidStateError("request revision", fmt.Sprintf("%s request is active", name))
	}

	o.revision = Revision{
		status:        RevisionPendingResponse,
		reason:        reason,
		clientMessage: message,
		clientFiles:   files,
		requestedAt:   &now,
	}
	o.status = StatusInProgress
	o.autoCompleteAt = nil
	o.notify(EventRevisionRequested, o.professionalID)
	return nil
}

// RespondToRevision answers a pending revision request. Only the professional
// may answer. Acceptance starts the rework and resets the work timer baseline
// at the response time; rejection restores the Delivered state with a fresh
// client response window.
func (o *Order) RespondToRevision(actor kernel.UUID, accept bool, notes string, now time.Time) error {
	if err := o.requireParty(actor, "respond to revision"); err != nil {
		return err
	}
	if !actor.IsEqual(o.professionalID) {
		return errs.NewUnauthorizedError("client", "respond to a revision request")
	}
	if o.revision.status != RevisionPendingResponse {
		return errs.NewInvalidStateError("respond to revision", o.revision.status.String())
	}

	o.revision.respondedAt = &now
	o.revision.additionalNotes = notes

	if accept {
		o.revision.status = RevisionInProgress
		o.deliveryStatus = DeliveryActive
	} else {
		o.revision.status = RevisionRejected
		o.status = StatusDelivered
		deadline := now.Add(ClientResponseWindow)
		o.autoCompleteAt = &deadline
	}

	o.notify(EventRevisionResolved, o.clientID)
	return nil
}

// CompleteRevision delivers the reworked result. Only the professional may
// complete, only from an in-progress revision; the order re-enters Delivered
// with a fresh client response window.
func (o *Order) CompleteRevision(actor kernel.UUID, message string, files []FileRef, now time.Time) error {
	if err := o.requireParty(actor, "complete revision"); err != nil {
		return err
	}
	if !actor.IsEqual(o.professionalID) {
		return errs.NewUnauthorizedError("client", "complete a revision")
	}
	if o.revision.status != RevisionInProgress {
		return errs.NewInvalidStateError("complete revision", o.revision.status.String())
	}
	if message == "" && len(files) == 0 {
		return errs.NewValueIsRequiredError("revision delivery message or files")
	}
	if err := validateFiles(files); err != nil {
		return err
	}

	o.revision.status = RevisionCompleted
	o.status = StatusDelivered
	o.deliveryStatus = DeliveryDelivered
	deadline := now.Add(ClientResponseWindow)
	o.autoCompleteAt = &deadline
	o.notify(EventRevisionCompleted, o.clientID)
	return nil
}
