package order

import (
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	// DisputeResponseWindow is how long the respondent has to answer a new
	// dispute before default judgment closes it in the claimant's favor.
	DisputeResponseWindow = 24 * time.Hour

	// NegotiationWindow is the negotiation deadline set when the respondent
	// answers. A stalled negotiation is not auto-resolved; the deadline is
	// informational until a party escalates or cancels.
	NegotiationWindow = 24 * time.Hour
)

// DisputeStatus is the state of an order's dispute.
//
// State transitions:
//
//	None ──open──> Open ──respond──> Negotiation ──escalate──> AdminArbitration
//	                │                     │                         │
//	                │ (deadline)          ├──cancel──> None         ├──cancel──> None
//	                └──────> Closed <─────┴─────── (admin decision)─┘
type DisputeStatus int

const (
	// DisputeNone means no dispute exists.
	DisputeNone DisputeStatus = iota

	// DisputeOpen means the dispute awaits the respondent's first answer.
	DisputeOpen

	// DisputeNegotiation means both parties are exchanging offers.
	DisputeNegotiation

	// DisputeAdminArbitration means a party escalated to admin review.
	DisputeAdminArbitration

	// DisputeClosed means the dispute was decided. Exactly one winner and
	// one loser are set.
	DisputeClosed
)

func getDisputeStatusStrings() map[DisputeStatus]string {
	return map[DisputeStatus]string{
		DisputeNone:             "none",
		DisputeOpen:             "open",
		DisputeNegotiation:      "negotiation",
		DisputeAdminArbitration: "admin_arbitration",
		DisputeClosed:           "closed",
	}
}

// String returns the wire name of the dispute status.
func (s DisputeStatus) String() string {
	if str, ok := getDisputeStatusStrings()[s]; ok {
		return str
	}
	return "none"
}

// Validate checks if the DisputeStatus value is valid.
func (s DisputeStatus) Validate() error {
	if s < DisputeNone || s > DisputeClosed {
		return errs.NewValueIsInvalidErrorWithCause("dispute status",
			fmt.Errorf("%d is not a valid dispute status", s))
	}
	return nil
}

// Dispute is the nested dispute record owned by an Order.
type Dispute struct {
	id                     kernel.UUID
	status                 DisputeStatus
	claimantID             kernel.UUID
	respondentID           kernel.UUID
	requirements           string
	unmetRequirements      string
	claimantOffer          kernel.Money
	respondentOffer        *kernel.Money
	evidence               []FileRef
	responseDeadline       *time.Time
	negotiationDeadline    *time.Time
	arbitrationRequested   bool
	arbitrationRequestedBy kernel.UUID
	winnerID               kernel.UUID
	loserID                kernel.UUID
	autoClosed             bool
	decisionNotes          string
}

// RestoreDisputeParams carries the persisted state of a dispute record.
type RestoreDisputeParams struct {
	ID                     kernel.UUID
	Status                 DisputeStatus
	ClaimantID             kernel.UUID
	RespondentID           kernel.UUID
	Requirements           string
	UnmetRequirements      string
	ClaimantOffer          kernel.Money
	RespondentOffer        *kernel.Money
	Evidence               []FileRef
	ResponseDeadline       *time.Time
	NegotiationDeadline    *time.Time
	ArbitrationRequested   bool
	ArbitrationRequestedBy kernel.UUID
	WinnerID               kernel.UUID
	LoserID                kernel.UUID
	AutoClosed             bool
	DecisionNotes          string
}

// RestoreDispute reconstructs a dispute record from persistence.
func RestoreDispute(p RestoreDisputeParams) Dispute {
	return Dispute{
		id:                     p.ID,
		status:                 p.Status,
		claimantID:             p.ClaimantID,
		respondentID:           p.RespondentID,
		requirements:           p.Requirements,
		unmetRequirements:      p.UnmetRequirements,
		claimantOffer:          p.ClaimantOffer,
		respondentOffer:        p.RespondentOffer,
		evidence:               p.Evidence,
		responseDeadline:       p.ResponseDeadline,
		negotiationDeadline:    p.NegotiationDeadline,
		arbitrationRequested:   p.ArbitrationRequested,
		arbitrationRequestedBy: p.ArbitrationRequestedBy,
		winnerID:               p.WinnerID,
		loserID:                p.LoserID,
		autoClosed:             p.AutoClosed,
		decisionNotes:          p.DecisionNotes,
	}
}

// ID returns the dispute identifier.
func (d Dispute) ID() kernel.UUID { return d.id }

// Status returns the state of the dispute.
func (d Dispute) Status() DisputeStatus { return d.status }

// ClaimantID returns the party that opened the dispute.
func (d Dispute) ClaimantID() kernel.UUID { return d.claimantID }

// RespondentID returns the party that must answer the dispute.
func (d Dispute) RespondentID() kernel.UUID { return d.respondentID }

// Requirements returns the claimant's statement of the agreed requirements.
func (d Dispute) Requirements() string { return d.requirements }

// UnmetRequirements returns the claimant's statement of what was not met.
func (d Dispute) UnmetRequirements() string { return d.unmetRequirements }

// ClaimantOffer returns the claimant's settlement offer.
func (d Dispute) ClaimantOffer() kernel.Money { return d.claimantOffer }

// RespondentOffer returns the respondent's counter-offer, nil until made.
func (d Dispute) RespondentOffer() *kernel.Money { return d.respondentOffer }

// Evidence returns the claimant's evidence attachments.
func (d Dispute) Evidence() []FileRef { return d.evidence }

// ResponseDeadline returns the default judgment deadline, set while open.
func (d Dispute) ResponseDeadline() *time.Time { return d.responseDeadline }

// NegotiationDeadline returns the negotiation deadline, set while negotiating.
func (d Dispute) NegotiationDeadline() *time.Time { return d.negotiationDeadline }

// ArbitrationRequested reports whether a party escalated to admin review.
func (d Dispute) ArbitrationRequested() bool { return d.arbitrationRequested }

// ArbitrationRequestedBy returns the escalating party, zero if none.
func (d Dispute) ArbitrationRequestedBy() kernel.UUID { return d.arbitrationRequestedBy }

// WinnerID returns the winning party once the dispute is closed.
func (d Dispute) WinnerID() kernel.UUID { return d.winnerID }

// LoserID returns the losing party once the dispute is closed.
func (d Dispute) LoserID() kernel.UUID { return d.loserID }

// AutoClosed reports whether the dispute closed by default judgment.
func (d Dispute) AutoClosed() bool { return d.autoClosed }

// DecisionNotes returns the admin's decision notes.
func (d Dispute) DecisionNotes() string { return d.decisionNotes }

// Exists reports whether a dispute record is present on the order.
func (d Dispute) Exists() bool { return d.status != DisputeNone }

// OpenDispute opens a dispute against the counterpart. Either party may open
// one while work is delivered or in progress. The offer must not exceed the
// order amount; offers are rejected, never clamped.
func (o *Order) OpenDispute(
	actor kernel.UUID,
	requirements, unmetRequirements string,
	offer kernel.Money,
	evidence []FileRef,
	now time.Time,
) error {
	if err := o.requireParty(actor, "open dispute"); err != nil {
		return err
	}
	if requirements == "" {
		return errs.NewValueIsRequiredError("dispute requirements")
	}
	if err := validateFiles(evidence); err != nil {
		return err
	}
	if o.dispute.Exists() {
		return errs.NewInvalidStateError("open dispute", fmt.Sprintf("dispute is %s", o.dispute.status))
	}
	if o.status == StatusCancellationPending {
		return errs.NewInvalidStateError("open dispute", o.status.String())
	}
	if o.deliveryStatus != DeliveryDelivered && o.status != StatusInProgress {
		return errs.NewInvalidStateError("open dispute", o.status.String())
	}
	if offer.GreaterThan(o.amount) {
		return errs.NewValueIsOutOfRangeError("offerAmount", offer.Units(), 0, o.amount.Units())
	}

	deadline := now.Add(DisputeResponseWindow)
	o.dispute = Dispute{
		id:                kernel.NewUUID(),
		status:            DisputeOpen,
		claimantID:        actor,
		respondentID:      o.counterpartOf(actor),
		requirements:      requirements,
		unmetRequirements: unmetRequirements,
		claimantOffer:     offer,
		evidence:          evidence,
		responseDeadline:  &deadline,
	}
	o.statusBeforeDispute = o.status
	o.status = StatusDisputed
	o.deliveryStatus = DeliveryDisputed
	o.emitEscrow(EscrowInstruction{Kind: EscrowFreeze, Amount: o.amount})
	o.notify(EventDisputeOpened, o.dispute.respondentID)
	return nil
}

// RespondToDispute is the respondent's first answer; it moves the dispute
// into negotiation and starts the negotiation deadline. A counter-offer is
// optional and must not exceed the order amount.
func (o *Order) RespondToDispute(actor kernel.UUID, counterOffer *kernel.Money, now time.Time) error {
	if err := o.requireParty(actor, "respond to dispute"); err != nil {
		return err
	}
	if o.dispute.status != DisputeOpen {
		return errs.NewInvalidStateError("respond to dispute", o.dispute.status.String())
	}
	if !actor.IsEqual(o.dispute.respondentID) {
		return errs.NewUnauthorizedError("claimant", "respond to own dispute")
	}
	if counterOffer != nil && counterOffer.GreaterThan(o.amount) {
		return errs.NewValueIsOutOfRangeError("offerAmount", counterOffer.Units(), 0, o.amount.Units())
	}

	deadline := now.Add(NegotiationWindow)
	o.dispute.status = DisputeNegotiation
	o.dispute.negotiationDeadline = &deadline
	o.dispute.responseDeadline = nil
	o.dispute.respondentOffer = counterOffer
	o.notify(EventDisputeNegotiation, o.dispute.claimantID)
	return nil
}

// RequestArbitration escalates a negotiating dispute to admin review. The
// caller must have verified through the escrow gateway that the actor's
// balance covers the arbitration fee before invoking this transition.
func (o *Order) RequestArbitration(actor kernel.UUID) error {
	if err := o.requireParty(actor, "request arbitration"); err != nil {
		return err
	}
	if o.dispute.status != DisputeNegotiation {
		return errs.NewInvalidStateError("request arbitration", o.dispute.status.String())
	}

	o.dispute.status = DisputeAdminArbitration
	o.dispute.arbitrationRequested = true
	o.dispute.arbitrationRequestedBy = actor
	o.dispute.negotiationDeadline = nil
	o.notify(EventDisputeArbitration, o.counterpartOf(actor))
	return nil
}

// CancelDispute discards a negotiating or arbitrated dispute. The order
// returns to its pre-dispute state; when that state is Delivered the client
// response window restarts so neither party loses time to the dispute.
func (o *Order) CancelDispute(actor kernel.UUID, now time.Time) error {
	if err := o.requireParty(actor, "cancel dispute"); err != nil {
		return err
	}
	if o.dispute.status != DisputeNegotiation && o.dispute.status != DisputeAdminArbitration {
		return errs.NewInvalidStateError("cancel dispute", o.dispute.status.String())
	}

	counterpart := o.counterpartOf(actor)
	o.dispute = Dispute{}
	o.status = o.statusBeforeDispute
	if o.status == StatusDelivered {
		o.deliveryStatus = DeliveryDelivered
		deadline := now.Add(ClientResponseWindow)
		o.autoCompleteAt = &deadline
	} else {
		o.deliveryStatus = DeliveryActive
	}
	o.emitEscrow(EscrowInstruction{Kind: EscrowUnfreeze})
	o.notify(EventDisputeCancelled, counterpart)
	return nil
}

// DecideDispute applies an admin arbitration decision: the named winner takes
// the full disputed amount and the loser additionally forfeits the
// arbitration fee. The forfeiture is the platform's deterrent against
// frivolous escalation.
func (o *Order) DecideDispute(winnerID kernel.UUID, notes string, fee kernel.Money, now time.Time) error {
	if o.dispute.status != DisputeAdminArbitration {
		return errs.NewInvalidStateError("decide dispute", o.dispute.status.String())
	}
	if !winnerID.IsEqual(o.clientID) && !winnerID.IsEqual(o.professionalID) {
		return errs.NewUnauthorizedError("non-party", "win a dispute")
	}

	o.dispute.decisionNotes = notes
	o.closeDispute(winnerID, false, fee, now)
	return nil
}

// AutoCloseDispute applies default judgment to an unanswered dispute: the
// claimant wins and the respondent loses the disputed amount, forfeiting
// nothing beyond it. No-op rejection if the deadline has not passed or the
// dispute already moved on, so repeated scheduler sweeps are safe.
func (o *Order) AutoCloseDispute(now time.Time) error {
	if o.dispute.status != DisputeOpen {
		return errs.NewInvalidStateError("auto-close dispute", o.dispute.status.String())
	}
	if o.dispute.responseDeadline == nil || now.Before(*o.dispute.responseDeadline) {
		return errs.NewInvalidStateError("auto-close dispute", "response deadline has not passed")
	}

	o.closeDispute(o.dispute.claimantID, true, kernel.Money{}, now)
	return nil
}

// closeDispute finalizes the dispute and settles the order per the winner:
// Completed when the professional wins, Cancelled when the client wins.
func (o *Order) closeDispute(winnerID kernel.UUID, autoClosed bool, fee kernel.Money, now time.Time) {
	o.dispute.status = DisputeClosed
	o.dispute.winnerID = winnerID
	o.dispute.loserID = o.counterpartOf(winnerID)
	o.dispute.autoClosed = autoClosed
	o.dispute.responseDeadline = nil
	o.dispute.negotiationDeadline = nil
	o.closedAt = &now

	if winnerID.IsEqual(o.professionalID) {
		o.status = StatusCompleted
		o.deliveryStatus = DeliveryCompleted
	} else {
		o.status = StatusCancelled
		o.deliveryStatus = DeliveryCancelled
	}
	o.archiveSubRequests()

	o.emitEscrow(EscrowInstruction{
		Kind:     EscrowSettle,
		Amount:   o.amount,
		WinnerID: o.dispute.winnerID,
		LoserID:  o.dispute.loserID,
		Fee:      fee,
	})
	o.notifyBoth(EventDisputeClosed)
}
