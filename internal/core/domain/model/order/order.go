package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ClientResponseWindow is how long the client has to accept or contest
// delivered work before the order auto-completes and escrow is released.
const ClientResponseWindow = 24 * time.Hour

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a marketplace order between a client and a
// professional. It owns at most one each of the nested cancellation,
// revision, extension, and dispute requests and is the single consistency
// boundary for all of them.
//
// Order follows these invariants:
//   - Client and professional are distinct valid parties
//   - The amount is a non-negative integer number of minor currency units
//   - At most one of {cancellation, revision, extension} is active at a time
//   - Dispute offers never exceed the order amount
//   - Once a terminal status (Completed or Cancelled) is reached, no further
//     transition is permitted
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through the transition methods.
type Order struct {
	id             kernel.UUID
	clientID       kernel.UUID
	professionalID kernel.UUID
	amount         kernel.Money

	status         Status
	deliveryStatus DeliveryStatus

	expectedDelivery time.Time
	autoCompleteAt   *time.Time
	closedAt         *time.Time

	// statusBeforeDispute is the status to restore if a dispute is cancelled.
	statusBeforeDispute Status

	cancellation Cancellation
	revision     Revision
	extension    Extension
	dispute      Dispute

	rating          *Rating
	buyerReview     *Rating
	additionalNotes []Note

	version int

	escrowEffects []EscrowInstruction
	notifications []Notification

	isConstructed bool
}

// NewOrder creates a new Order in Pending status. This is the entry point of
// the external ordering flow; all later mutation happens through transition
// methods.
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	professionalID kernel.UUID,
	amount kernel.Money,
	expectedDelivery time.Time,
) (*Order, error) {
	o := &Order{
		status:         StatusPending,
		deliveryStatus: DeliveryPending,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(clientID, professionalID),
		o.setExpectedDelivery(expectedDelivery),
	); err != nil {
		return nil, err
	}

	o.amount = amount
	return o, nil
}

// RestoreOrderParams carries the persisted state of an order aggregate.
type RestoreOrderParams struct {
	ID               kernel.UUID
	ClientID         kernel.UUID
	ProfessionalID   kernel.UUID
	Amount           kernel.Money
	Status           Status
	DeliveryStatus   DeliveryStatus
	ExpectedDelivery time.Time
	AutoCompleteAt   *time.Time
	ClosedAt         *time.Time
	PriorStatus      Status
	Cancellation     Cancellation
	Revision         Revision
	Extension        Extension
	Dispute          Dispute
	Rating           *Rating
	BuyerReview      *Rating
	AdditionalNotes  []Note
	Version          int
}

// RestoreOrder reconstructs an order aggregate from persistence. Unlike
// NewOrder it accepts any valid stored status, but it still refuses
// structurally invalid state so corrupt rows surface as errors instead of
// undefined transitions.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o := &Order{
		deliveryStatus:      p.DeliveryStatus,
		amount:              p.Amount,
		autoCompleteAt:      p.AutoCompleteAt,
		closedAt:            p.ClosedAt,
		statusBeforeDispute: p.PriorStatus,
		cancellation:        p.Cancellation,
		revision:            p.Revision,
		extension:           p.Extension,
		dispute:             p.Dispute,
		rating:              p.Rating,
		buyerReview:         p.BuyerReview,
		additionalNotes:     p.AdditionalNotes,
		version:             p.Version,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setParties(p.ClientID, p.ProfessionalID),
		o.setExpectedDelivery(p.ExpectedDelivery),
		p.Status.Validate(),
		p.DeliveryStatus.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = p.Status
	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// ClientID returns the ordering party.
func (o *Order) ClientID() kernel.UUID { return o.clientID }

// ProfessionalID returns the party performing the work.
func (o *Order) ProfessionalID() kernel.UUID { return o.professionalID }

// Amount returns the escrowed order amount.
func (o *Order) Amount() kernel.Money { return o.amount }

// Status returns the billing status of the order.
func (o *Order) Status() Status { return o.status }

// DeliveryStatus returns the work sub-state of the order.
func (o *Order) DeliveryStatus() DeliveryStatus { return o.deliveryStatus }

// ExpectedDelivery returns the agreed delivery date.
func (o *Order) ExpectedDelivery() time.Time { return o.expectedDelivery }

// AutoCompleteAt returns when the order auto-completes, nil unless the client
// response window is running.
func (o *Order) AutoCompleteAt() *time.Time { return o.autoCompleteAt }

// ClosedAt returns when the order reached a terminal status, nil before then.
func (o *Order) ClosedAt() *time.Time { return o.closedAt }

// PriorStatus returns the status to restore if the active dispute is
// cancelled.
func (o *Order) PriorStatus() Status { return o.statusBeforeDispute }

// Cancellation returns the nested cancellation request record.
func (o *Order) Cancellation() Cancellation { return o.cancellation }

// Revision returns the nested revision request record.
func (o *Order) Revision() Revision { return o.revision }

// Extension returns the nested extension request record.
func (o *Order) Extension() Extension { return o.extension }

// Dispute returns the nested dispute record.
func (o *Order) Dispute() Dispute { return o.dispute }

// Rating returns the client's rating of the completed order, nil until rated.
func (o *Order) Rating() *Rating { return o.rating }

// BuyerReview returns the professional's review of the client, nil until
// submitted.
func (o *Order) BuyerReview() *Rating { return o.buyerReview }

// AdditionalNotes returns information the client attached during the work.
func (o *Order) AdditionalNotes() []Note { return o.additionalNotes }

// Version returns the optimistic concurrency version of the aggregate.
// The version is bumped by the repository on every successful update.
func (o *Order) Version() int { return o.version }

// IncrementVersion records a successful persistence of the aggregate under
// the optimistic version guard. Called by the repository after a
// version-checked write so subsequent snapshots carry the stored version.
func (o *Order) IncrementVersion() { o.version++ }

// DeliverWork delivers the work result to the client. Only the professional
// may deliver, only from Pending or InProgress, and the delivery must carry a
// message or at least one file. Delivery starts the client response window.
func (o *Order) DeliverWork(actor kernel.UUID, message string, files []FileRef, now time.Time) error {
	if err := o.requireParty(actor, "deliver work"); err != nil {
		return err
	}
	if !actor.IsEqual(o.professionalID) {
		return errs.NewUnauthorizedError("client", "deliver work")
	}
	if message == "" && len(files) == 0 {
		return errs.NewValueIsRequiredError("delivery message or files")
	}
	if err := validateFiles(files); err != nil {
		return err
	}
	if !o.status.CanDeliver() {
		return errs.NewInvalidStateError("deliver work", o.status.String())
	}

	o.status = StatusDelivered
	o.deliveryStatus = DeliveryDelivered
	deadline := now.Add(ClientResponseWindow)
	o.autoCompleteAt = &deadline
	o.notify(EventWorkDelivered, o.clientID)
	return nil
}

// AcceptDelivery is the client accepting delivered work. The order completes
// and escrow is released to the professional.
func (o *Order) AcceptDelivery(actor kernel.UUID, now time.Time) error {
	if err := o.requireParty(actor, "accept delivery"); err != nil {
		return err
	}
	if !actor.IsEqual(o.clientID) {
		return errs.NewUnauthorizedError("professional", "accept delivery")
	}
	if o.status != StatusDelivered || o.deliveryStatus != DeliveryDelivered {
		return errs.NewInvalidStateError("accept delivery", o.status.String())
	}

	o.complete(now)
	return nil
}

// ProfessionalComplete lets the professional finalize an order whose client
// response window has already elapsed, without waiting for the scheduler
// sweep. It requires delivered work and a passed deadline, so it can never
// shortcut the client's window.
func (o *Order) ProfessionalComplete(actor kernel.UUID, now time.Time) error {
	if err := o.requireParty(actor, "complete order"); err != nil {
		return err
	}
	if !actor.IsEqual(o.professionalID) {
		return errs.NewUnauthorizedError("client", "complete the order as professional")
	}
	if o.status != StatusDelivered || o.deliveryStatus != DeliveryDelivered {
		return errs.NewInvalidStateError("complete order", o.status.String())
	}
	if o.autoCompleteAt == nil || now.Before(*o.autoCompleteAt) {
		return errs.NewInvalidStateError("complete order", "client response window is still open")
	}

	o.complete(now)
	return nil
}

// AutoComplete applies the deadline default for delivered work the client
// never answered: completion and escrow release. No-op rejection when the
// window has not elapsed or the order already moved on, which makes repeated
// scheduler sweeps safe.
func (o *Order) AutoComplete(now time.Time) error {
	if o.status != StatusDelivered || o.deliveryStatus != DeliveryDelivered {
		return errs.NewInvalidStateError("auto-complete", o.status.String())
	}
	if o.revision.IsActive() {
		return errs.NewInvalidStateError("auto-complete", "revision request is active")
	}
	if o.autoCompleteAt == nil || now.Before(*o.autoCompleteAt) {
		return errs.NewInvalidStateError("auto-complete", "client response window is still open")
	}

	o.complete(now)
	return nil
}

// RateOrder records the client's rating of a completed order. One rating per
// order.
func (o *Order) RateOrder(actor kernel.UUID, stars int, comment string, now time.Time) error {
	if err := o.requireParty(actor, "rate order"); err != nil {
		return err
	}
	if !actor.IsEqual(o.clientID) {
		return errs.NewUnauthorizedError("professional", "rate the order")
	}
	if o.status != StatusCompleted {
		return errs.NewInvalidStateError("rate order", o.status.String())
	}
	if o.rating != nil {
		return errs.NewInvalidStateError("rate order", "order is already rated")
	}

	rating, err := newRating(stars, comment, actor, now)
	if err != nil {
		return err
	}
	o.rating = &rating
	o.notify(EventOrderRated, o.professionalID)
	return nil
}

// SubmitBuyerReview records the professional's review of the client on a
// completed order. One review per order.
func (o *Order) SubmitBuyerReview(actor kernel.UUID, stars int, comment string, now time.Time) error {
	if err := o.requireParty(actor, "review buyer"); err != nil {
		return err
	}
	if !actor.IsEqual(o.professionalID) {
		return errs.NewUnauthorizedError("client", "review the buyer")
	}
	if o.status != StatusCompleted {
		return errs.NewInvalidStateError("review buyer", o.status.String())
	}
	if o.buyerReview != nil {
		return errs.NewInvalidStateError("review buyer", "buyer is already reviewed")
	}

	review, err := newRating(stars, comment, actor, now)
	if err != nil {
		return err
	}
	o.buyerReview = &review
	o.notify(EventBuyerReviewed, o.clientID)
	return nil
}

// AddAdditionalInfo attaches client notes or files while work has not been
// delivered yet.
func (o *Order) AddAdditionalInfo(actor kernel.UUID, text string, files []FileRef, now time.Time) error {
	if err := o.requireParty(actor, "add additional info"); err != nil {
		return err
	}
	if !actor.IsEqual(o.clientID) {
		return errs.NewUnauthorizedError("professional", "add client info")
	}
	if text == "" && len(files) == 0 {
		return errs.NewValueIsRequiredError("note text or files")
	}
	if err := validateFiles(files); err != nil {
		return err
	}
	if o.status != StatusPending && o.status != StatusInProgress {
		return errs.NewInvalidStateError("add additional info", o.status.String())
	}

	o.additionalNotes = append(o.additionalNotes, Note{Text: text, Files: files, AddedAt: now})
	o.notify(EventInfoAdded, o.professionalID)
	return nil
}

// HasDueDeadline reports whether any time-triggered transition is due at now.
// The scheduler uses it to avoid issuing system commands for orders whose
// deadlines are all in the future.
func (o *Order) HasDueDeadline(now time.Time) bool {
	if o.status == StatusDelivered && !o.revision.IsActive() &&
		o.autoCompleteAt != nil && !now.Before(*o.autoCompleteAt) {
		return true
	}
	if o.status == StatusCancellationPending && o.cancellation.IsPending() &&
		o.cancellation.responseDeadline != nil && !now.Before(*o.cancellation.responseDeadline) {
		return true
	}
	if o.dispute.status == DisputeOpen &&
		o.dispute.responseDeadline != nil && !now.Before(*o.dispute.responseDeadline) {
		return true
	}
	return false
}

// ApplyDueDeadlines runs every auto-transition whose deadline has passed.
// It returns true when at least one transition was applied. Calling it on an
// order with no due deadline is a no-op, so the scheduler may sweep the same
// order repeatedly without side effects.
func (o *Order) ApplyDueDeadlines(now time.Time) bool {
	applied := false
	if err := o.AutoComplete(now); err == nil {
		applied = true
	}
	if err := o.AutoCancel(now); err == nil {
		applied = true
	}
	if err := o.AutoCloseDispute(now); err == nil {
		applied = true
	}
	return applied
}

func (o *Order) complete(now time.Time) {
	o.status = StatusCompleted
	o.deliveryStatus = DeliveryCompleted
	o.autoCompleteAt = nil
	o.closedAt = &now
	o.archiveSubRequests()
	o.emitEscrow(EscrowInstruction{Kind: EscrowRelease, Amount: o.amount})
	o.notifyBoth(EventOrderCompleted)
}

// archiveSubRequests closes out any still-active nested request when the
// order reaches a terminal status; a request cannot outlive its order.
func (o *Order) archiveSubRequests() {
	if o.cancellation.IsPending() && o.status == StatusCompleted {
		o.cancellation.status = CancellationRejected
	}
	if o.revision.IsActive() {
		o.revision.status = RevisionRejected
	}
	if o.extension.IsPending() {
		o.extension.status = ExtensionRejected
	}
	o.autoCompleteAt = nil
}

// requireParty rejects actors that are not a party to the order. Terminal
// orders reject every transition regardless of actor.
func (o *Order) requireParty(actor kernel.UUID, action string) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError(action, o.status.String())
	}
	if !actor.IsEqual(o.clientID) && !actor.IsEqual(o.professionalID) {
		return errs.NewUnauthorizedError("non-party", action)
	}
	return nil
}

// counterpartOf returns the other party of the order.
func (o *Order) counterpartOf(actor kernel.UUID) kernel.UUID {
	if actor.IsEqual(o.clientID) {
		return o.professionalID
	}
	return o.clientID
}

// activeSubRequest reports which of the cancellation, revision, or extension
// requests is currently active, if any. At most one may be active at a time.
func (o *Order) activeSubRequest() (string, bool) {
	switch {
	case o.cancellation.IsPending():
		return "cancellation", true
	case o.revision.IsActive():
		return "revision", true
	case o.extension.IsPending():
		return "extension", true
	default:
		return "", false
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(clientID, professionalID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	if err := professionalID.Validate(); err != nil {
		return err
	}
	if clientID.IsEqual(professionalID) {
		return errs.NewValueIsInvalidErrorWithCause("parties",
			fmt.Errorf("client and professional are the same party %s", clientID))
	}
	o.clientID = clientID
	o.professionalID = professionalID
	return nil
}

func (o *Order) setExpectedDelivery(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("expected delivery date")
	}
	o.expectedDelivery = t
	return nil
}
