// Package escrow provides an in-memory ledger implementation of the escrow
// gateway. Funds held for an order are tracked per order; party balances are
// tracked per party. The ledger is the system of record for local development
// and tests; a payment provider adapter would replace it in production.
package escrow

import (
	"context"
	"log/slog"
	"sync"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// PlatformAccount receives arbitration fees forfeited by dispute losers.
var PlatformAccount = kernel.UUID{}

type hold struct {
	amount kernel.Money
	frozen bool
}

// LedgerEscrowGateway implements ports.EscrowGateway over an in-memory
// double-entry ledger. Safe for concurrent use.
type LedgerEscrowGateway struct {
	mu         sync.Mutex
	balances   map[kernel.UUID]int64
	holds      map[kernel.UUID]hold
	settlement services.DisputeSettlement
	logger     *slog.Logger
}

// NewLedgerEscrowGateway creates an empty ledger.
func NewLedgerEscrowGateway(logger *slog.Logger) *LedgerEscrowGateway {
	return &LedgerEscrowGateway{
		balances:   make(map[kernel.UUID]int64),
		holds:      make(map[kernel.UUID]hold),
		settlement: services.NewDisputeSettlement(),
		logger:     logger.With(slog.String("component", "escrow-ledger")),
	}
}

// Deposit credits a party's balance. Used to fund accounts before orders are
// placed and to seed test fixtures.
func (g *LedgerEscrowGateway) Deposit(partyID kernel.UUID, amount kernel.Money) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.balances[partyID] += amount.Units()
}

// Hold debits the client and holds the order amount until the order closes.
// Returns an InsufficientBalanceError when the client cannot cover the
// amount.
func (g *LedgerEscrowGateway) Hold(_ context.Context, orderID, clientID kernel.UUID, amount kernel.Money) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	available := g.balances[clientID]
	if available < amount.Units() {
		return errs.NewInsufficientBalanceError("orderAmount", amount.Units(), available)
	}

	g.balances[clientID] -= amount.Units()
	g.holds[orderID] = hold{amount: amount}
	return nil
}

// Release pays the held order amount out to the professional. Fails on a
// frozen hold; a dispute must be settled or cancelled first.
func (g *LedgerEscrowGateway) Release(ctx context.Context, orderID, professionalID kernel.UUID, amount kernel.Money) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.consumeHold(orderID, amount, false); err != nil {
		return err
	}

	g.balances[professionalID] += amount.Units()
	g.logger.InfoContext(ctx, "released escrow",
		slog.String("orderId", orderID.String()),
		slog.Int64("amount", amount.Units()))
	return nil
}

// Refund returns the held order amount to the client. Fails on a frozen
// hold; a dispute must be settled or cancelled first.
func (g *LedgerEscrowGateway) Refund(ctx context.Context, orderID, clientID kernel.UUID, amount kernel.Money) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.consumeHold(orderID, amount, false); err != nil {
		return err
	}

	g.balances[clientID] += amount.Units()
	g.logger.InfoContext(ctx, "refunded escrow",
		slog.String("orderId", orderID.String()),
		slog.Int64("amount", amount.Units()))
	return nil
}

// Freeze blocks the held funds while a dispute is open. Freezing an already
// frozen hold is a no-op; disputes can be cancelled and reopened.
func (g *LedgerEscrowGateway) Freeze(_ context.Context, orderID kernel.UUID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	h, ok := g.holds[orderID]
	if !ok {
		return errs.NewObjectNotFoundError("escrowHold", orderID)
	}

	h.frozen = true
	g.holds[orderID] = h
	return nil
}

// Unfreeze lifts the dispute freeze after a dispute is cancelled.
func (g *LedgerEscrowGateway) Unfreeze(_ context.Context, orderID kernel.UUID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	h, ok := g.holds[orderID]
	if !ok {
		return errs.NewObjectNotFoundError("escrowHold", orderID)
	}

	h.frozen = false
	g.holds[orderID] = h
	return nil
}

// Settle resolves a closed dispute. The winner is credited the disputed
// amount from the hold; the loser is additionally debited the arbitration
// fee, which accrues to the platform account.
func (g *LedgerEscrowGateway) Settle(ctx context.Context, instr order.EscrowInstruction) error {
	movements, err := g.settlement.Settle(instr)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.consumeHold(instr.OrderID, instr.Amount, true); err != nil {
		return err
	}

	g.balances[movements.WinnerID] += movements.WinnerCredit.Units()
	if !movements.PlatformFee.IsZero() {
		g.balances[movements.LoserID] -= movements.PlatformFee.Units()
		g.balances[PlatformAccount] += movements.PlatformFee.Units()
	}

	g.logger.InfoContext(ctx, "settled dispute",
		slog.String("orderId", instr.OrderID.String()),
		slog.String("winnerId", movements.WinnerID.String()),
		slog.Int64("amount", movements.WinnerCredit.Units()),
		slog.Int64("fee", movements.PlatformFee.Units()))
	return nil
}

// Balance returns a party's available balance. Held funds are not part of
// anyone's balance until released, refunded, or settled.
func (g *LedgerEscrowGateway) Balance(_ context.Context, partyID kernel.UUID) (kernel.Money, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	units := g.balances[partyID]
	if units < 0 {
		units = 0
	}
	return kernel.NewMoney(units)
}

// consumeHold removes the hold for an order, verifying it covers the amount
// being moved. A frozen hold can only be consumed when allowFrozen is set,
// which is the case for dispute settlement. Callers must hold the mutex.
func (g *LedgerEscrowGateway) consumeHold(orderID kernel.UUID, amount kernel.Money, allowFrozen bool) error {
	h, ok := g.holds[orderID]
	if !ok {
		return errs.NewObjectNotFoundError("escrowHold", orderID)
	}
	if h.frozen && !allowFrozen {
		return errs.NewInvalidStateError("move escrow hold", "frozen")
	}
	if h.amount.LessThan(amount) {
		return errs.NewInsufficientBalanceError("escrowHold", amount.Units(), h.amount.Units())
	}

	delete(g.holds, orderID)
	return nil
}
