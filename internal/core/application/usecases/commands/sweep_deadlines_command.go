package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrSweepDeadlinesCommandIsNotConstructed = errors.New(
	"SweepDeadlinesCommand must be created via NewSweepDeadlinesCommand constructor",
)

// SweepDeadlinesCommand triggers a pass over all orders with expired
// deadlines, applying the deadline defaults: delivered orders auto-complete,
// unanswered cancellations auto-approve, and unanswered disputes auto-close
// in the claimant's favor.
//
// Example:
//
//	cmd := NewSweepDeadlinesCommand()
//	handler := NewSweepDeadlinesCommandHandler(uowFactory, executor, clock, logger)
//
//	// Run periodically from the scheduler.
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("deadline sweep failed: %v", err)
//	}
type SweepDeadlinesCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepDeadlinesCommand creates a command to sweep expired deadlines.
// This is a parameterless command that processes all due orders.
func NewSweepDeadlinesCommand() SweepDeadlinesCommand {
	return SweepDeadlinesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrSweepDeadlinesCommandIsNotConstructed if validation fails.
func (c *SweepDeadlinesCommand) Validate() error {
	return c.guard.Validate(ErrSweepDeadlinesCommandIsNotConstructed)
}
