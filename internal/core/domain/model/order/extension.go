package order

import (
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ExtensionStatus is the state of an order's delivery extension request.
//
// State transitions:
//
//	None ──request──> Pending ──approve──> Approved
//	                     └──reject──> Rejected
//
// Extension requests have no expiry: an unanswered request stays pending
// until the client responds.
type ExtensionStatus int

const (
	// ExtensionNone means no extension request exists.
	ExtensionNone ExtensionStatus = iota

	// ExtensionPendingResponse means the request awaits the client.
	ExtensionPendingResponse

	// ExtensionApproved means the client accepted the new delivery date.
	// Retained for history after the date is applied.
	ExtensionApproved

	// ExtensionRejected means the client declined; the delivery date is
	// unchanged.
	ExtensionRejected
)

func getExtensionStatusStrings() map[ExtensionStatus]string {
	return map[ExtensionStatus]string{
		ExtensionNone:            "none",
		ExtensionPendingResponse: "pending",
		ExtensionApproved:        "approved",
		ExtensionRejected:        "rejected",
	}
}

// String returns the wire name of the extension status.
func (s ExtensionStatus) String() string {
	if str, ok := getExtensionStatusStrings()[s]; ok {
		return str
	}
	return "none"
}

// Validate checks if the ExtensionStatus value is valid.
func (s ExtensionStatus) Validate() error {
	if s < ExtensionNone || s > ExtensionRejected {
		return errs.NewValueIsInvalidErrorWithCause("extension status",
			fmt.Errorf("%d is not a valid extension status", s))
	}
	return nil
}

// Extension is the nested delivery extension request record owned by an Order.
type Extension struct {
	status          ExtensionStatus
	newDeliveryDate time.Time
	reason          string
	requestedAt     *time.Time
	respondedAt     *time.Time
}

// RestoreExtension reconstructs an extension record from persistence.
func RestoreExtension(
	status ExtensionStatus,
	newDeliveryDate time.Time,
	reason string,
	requestedAt *time.Time,
	respondedAt *time.Time,
) Extension {
	return Extension{
		status:          status,
		newDeliveryDate: newDeliveryDate,
		reason:          reason,
		requestedAt:     requestedAt,
		respondedAt:     respondedAt,
	}
}

// Status returns the state of the extension request.
func (e Extension) Status() ExtensionStatus { return e.status }

// NewDeliveryDate returns the proposed delivery date.
func (e Extension) NewDeliveryDate() time.Time { return e.newDeliveryDate }

// Reason returns the professional's stated reason.
func (e Extension) Reason() string { return e.reason }

// RequestedAt returns when the extension was requested.
func (e Extension) RequestedAt() *time.Time { return e.requestedAt }

// RespondedAt returns when the client answered, nil while pending.
func (e Extension) RespondedAt() *time.Time { return e.respondedAt }

// IsPending reports whether the request still awaits a response.
func (e Extension) IsPending() bool { return e.status == ExtensionPendingResponse }

// RequestExtension asks the client for a later delivery date. Only the
// professional may request, only while the order is Pending or InProgress,
// and the proposed date must be strictly after the current expected delivery.
func (o *Order) RequestExtension(actor kernel.UUID, newDeliveryDate time.Time, reason string, now time.Time) error {
	if err := o.requireParty(actor, "request extension"); err != nil {
		return err
	}
	if !actor.IsEqual(o.professionalID) {
		return errs.NewUnauthorizedError("client", "request a delivery extension")
	}
	if !o.status.CanRequestExtension() {
		return errs.NewInvalidStateError("request extension", o.status.String())
	}
	if name, active := o.activeSubRequest(); active {
		return errs.NewInvalidStateError("request extension", fmt.Sprintf("%s request is active", name))
	}
	if !newDeliveryDate.After(o.expectedDelivery) {
		return errs.NewValueIsInvalidErrorWithCause("newDeliveryDate",
			fmt.Errorf("%s is not after current expected delivery %s",
				newDeliveryDate.Format(time.RFC3339), o.expectedDelivery.Format(time.RFC3339)))
	}

	o.extension = Extension{
		status:          ExtensionPendingResponse,
		newDeliveryDate: newDeliveryDate,
		reason:          reason,
		requestedAt:     &now,
	}
	o.notify(EventExtensionRequested, o.clientID)
	return nil
}

// RespondToExtension answers a pending extension request. Only the client may
// answer. Approval moves the expected delivery to the proposed date; the
// request record is retained for history either way.
func (o *Order) RespondToExtension(actor kernel.UUID, approve bool, now time.Time) error {
	if err := o.requireParty(actor, "respond to extension"); err != nil {
		return err
	}
	if !actor.IsEqual(o.clientID) {
		return errs.NewUnauthorizedError("professional", "respond to own extension request")
	}
	if !o.extension.IsPending() {
		return errs.NewInvalidStateError("respond to extension", o.extension.status.String())
	}

	o.extension.respondedAt = &now
	if approve {
		o.extension.status = ExtensionApproved
		o.expectedDelivery = o.extension.newDeliveryDate
	} else {
		o.extension.status = ExtensionRejected
	}

	o.notify(EventExtensionResolved, o.professionalID)
	return nil
}
