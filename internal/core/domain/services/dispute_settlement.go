// Package services contains stateless domain services that operate across
// aggregates or translate domain decisions into gateway-facing terms.
package services

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// ErrNotASettlement is returned when a non-settlement escrow instruction is
// passed to the settlement service.
var ErrNotASettlement = errors.New("escrow instruction is not a settlement")

// Settlement is the monetary outcome of a closed dispute, expressed as ledger
// movements for the escrow gateway to execute.
//
// Business rules:
//   - The winner is credited the full disputed amount out of the order's hold
//   - The loser is additionally charged the arbitration fee
//   - The fee goes to the platform, never to the winner
//
// The loser's total forfeiture is therefore the disputed amount plus the
// fee. The asymmetry is the platform's deterrent against frivolous
// arbitration and must be preserved exactly.
type Settlement struct {
	WinnerID     kernel.UUID
	LoserID      kernel.UUID
	WinnerCredit kernel.Money
	PlatformFee  kernel.Money
}

// DisputeSettlement is a domain service that converts a dispute settlement
// instruction into concrete ledger movements.
type DisputeSettlement struct{}

// NewDisputeSettlement creates a new DisputeSettlement instance.
func NewDisputeSettlement() DisputeSettlement {
	return DisputeSettlement{}
}

// Settle computes the ledger movements for a closed dispute.
//
// Returns ErrNotASettlement if the instruction is not an EscrowSettle, and a
// validation error if winner and loser are not two distinct parties.
func (s DisputeSettlement) Settle(instr order.EscrowInstruction) (Settlement, error) {
	if instr.Kind != order.EscrowSettle {
		return Settlement{}, ErrNotASettlement
	}
	if err := instr.WinnerID.Validate(); err != nil {
		return Settlement{}, err
	}
	if err := instr.LoserID.Validate(); err != nil {
		return Settlement{}, err
	}
	if instr.WinnerID.IsEqual(instr.LoserID) {
		return Settlement{}, errors.New("winner and loser are the same party")
	}

	return Settlement{
		WinnerID:     instr.WinnerID,
		LoserID:      instr.LoserID,
		WinnerCredit: instr.Amount,
		PlatformFee:  instr.Fee,
	}, nil
}
