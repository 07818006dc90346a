package order

import "marketplace/internal/core/domain/model/kernel"

// EscrowInstructionKind identifies what the escrow gateway must do with the
// funds held for an order.
type EscrowInstructionKind int

const (
	// EscrowRelease pays the held order amount out to the professional.
	EscrowRelease EscrowInstructionKind = iota + 1

	// EscrowRefund returns the held order amount to the client.
	EscrowRefund

	// EscrowFreeze blocks the held funds while a dispute is open.
	EscrowFreeze

	// EscrowSettle resolves a closed dispute: the winner receives the order
	// amount and the loser additionally forfeits the arbitration fee when
	// one was charged.
	EscrowSettle

	// EscrowUnfreeze lifts the dispute freeze when a dispute is cancelled,
	// making the hold movable again by later transitions.
	EscrowUnfreeze
)

// EscrowInstruction is a side effect produced by an order transition. The
// engine decides that funds move; the gateway decides how.
type EscrowInstruction struct {
	Kind    EscrowInstructionKind
	OrderID kernel.UUID
	Amount  kernel.Money

	// Settlement fields, set only for EscrowSettle.
	WinnerID kernel.UUID
	LoserID  kernel.UUID
	Fee      kernel.Money
}

// Notification informs the other party (or both) of a state change.
// Delivery is at-least-once and never authoritative: the committed transition
// is the source of truth.
type Notification struct {
	Event       string
	OrderID     kernel.UUID
	RecipientID kernel.UUID
}

// Notification event names emitted by order transitions.
const (
	EventWorkDelivered         = "order.work_delivered"
	EventOrderCompleted        = "order.completed"
	EventOrderCancelled        = "order.cancelled"
	EventOrderRated            = "order.rated"
	EventBuyerReviewed         = "order.buyer_reviewed"
	EventInfoAdded             = "order.info_added"
	EventCancellationRequested = "cancellation.requested"
	EventCancellationResolved  = "cancellation.resolved"
	EventRevisionRequested     = "revision.requested"
	EventRevisionResolved      = "revision.resolved"
	EventRevisionCompleted     = "revision.completed"
	EventExtensionRequested    = "extension.requested"
	EventExtensionResolved     = "extension.resolved"
	EventDisputeOpened         = "dispute.opened"
	EventDisputeNegotiation    = "dispute.negotiation"
	EventDisputeArbitration    = "dispute.arbitration"
	EventDisputeCancelled      = "dispute.cancelled"
	EventDisputeClosed         = "dispute.closed"
)

func (o *Order) emitEscrow(instr EscrowInstruction) {
	instr.OrderID = o.id
	o.escrowEffects = append(o.escrowEffects, instr)
}

func (o *Order) notify(event string, recipient kernel.UUID) {
	o.notifications = append(o.notifications, Notification{
		Event:       event,
		OrderID:     o.id,
		RecipientID: recipient,
	})
}

func (o *Order) notifyBoth(event string) {
	o.notify(event, o.clientID)
	o.notify(event, o.professionalID)
}

// DrainEffects returns and clears the side effects accumulated by transitions
// since the last drain. The application layer dispatches them to the escrow
// and notifier gateways after the transition has been committed.
func (o *Order) DrainEffects() ([]EscrowInstruction, []Notification) {
	escrow, notes := o.escrowEffects, o.notifications
	o.escrowEffects = nil
	o.notifications = nil
	return escrow, notes
}
