// Package errs provides standardized error types for the order lifecycle engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the rejection taxonomy surfaced by
// order commands:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     validation failures; the caller must resubmit with corrected input
//   - ObjectNotFoundError: the referenced order or sub-request does not exist
//   - UnauthorizedError: the actor is not a party to the order, or is the
//     wrong party for the action
//   - InvalidStateError: the command is not valid from the current state
//   - VersionConflictError: optimistic concurrency failure; reload and retry
//   - InsufficientBalanceError: an escrow balance does not cover a charge
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidState)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause applies
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// All rejections are terminal for the command invocation that produced them;
// the engine never retries internally.
package errs
