package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// EscrowGateway executes monetary decisions made by order transitions. The
// engine decides that funds move; the gateway owns how they move. Gateway
// calls are dispatched after the transition has been committed and after the
// per-order lock has been released.
type EscrowGateway interface {
	// Hold secures the order amount from the client's balance when the
	// order is created. Returns an insufficient balance error when the
	// client cannot cover the amount.
	Hold(ctx context.Context, orderID, clientID kernel.UUID, amount kernel.Money) error

	// Release pays the held order amount out to the professional.
	Release(ctx context.Context, orderID, professionalID kernel.UUID, amount kernel.Money) error

	// Refund returns the held order amount to the client.
	Refund(ctx context.Context, orderID, clientID kernel.UUID, amount kernel.Money) error

	// Freeze blocks the held funds while a dispute is open. A frozen hold
	// can only be moved by Settle or by a later Unfreeze.
	Freeze(ctx context.Context, orderID kernel.UUID) error

	// Unfreeze lifts the dispute freeze after a dispute is cancelled.
	Unfreeze(ctx context.Context, orderID kernel.UUID) error

	// Settle resolves a closed dispute: the winner receives the disputed
	// amount and the loser forfeits the amount plus the fee, if any.
	Settle(ctx context.Context, instr order.EscrowInstruction) error

	// Balance returns a party's available escrow balance, used to verify
	// the arbitration fee is covered before escalation.
	Balance(ctx context.Context, partyID kernel.UUID) (kernel.Money, error)
}

// NotifierGateway informs parties of state changes. Delivery is at-least-once
// and never authoritative; the committed transition is the source of truth.
type NotifierGateway interface {
	Notify(ctx context.Context, notification order.Notification) error
}
