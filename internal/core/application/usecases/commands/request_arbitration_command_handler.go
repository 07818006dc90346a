package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// RequestArbitrationCommandHandler handles dispute escalation to admin
// arbitration. Escalation is only accepted when the requester's escrow
// balance covers the arbitration fee; the fee itself is charged at
// settlement and only against the losing party.
type RequestArbitrationCommandHandler struct {
	executor       TransitionExecutor
	escrow         ports.EscrowGateway
	arbitrationFee kernel.Money
}

// NewRequestArbitrationCommandHandler creates a handler for arbitration requests.
func NewRequestArbitrationCommandHandler(
	executor TransitionExecutor,
	escrow ports.EscrowGateway,
	arbitrationFee kernel.Money,
) RequestArbitrationCommandHandler {
	return RequestArbitrationCommandHandler{
		executor:       executor,
		escrow:         escrow,
		arbitrationFee: arbitrationFee,
	}
}

// Handle escalates the dispute to admin arbitration. Returns an
// InsufficientBalanceError when the requester cannot cover the fee.
func (h RequestArbitrationCommandHandler) Handle(
	ctx context.Context,
	cmd RequestArbitrationCommand,
) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	balance, err := h.escrow.Balance(ctx, cmd.ActorID())
	if err != nil {
		return order.Snapshot{}, err
	}
	if balance.LessThan(h.arbitrationFee) {
		return order.Snapshot{}, errs.NewInsufficientBalanceError(
			"arbitrationFee", h.arbitrationFee.Units(), balance.Units())
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Version(),
		func(o *order.Order, _ time.Time) error {
			return o.RequestArbitration(cmd.ActorID())
		})
}
