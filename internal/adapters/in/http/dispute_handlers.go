package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
)

// OpenDispute handles POST /api/v1/orders/:orderId/dispute.
func (s *Server) OpenDispute(ctx echo.Context) error {
	var req openDisputeRequest
	orderID, actorID, err := s.bindActing(ctx, &req, &req.acting)
	if err != nil {
		return err
	}

	offer, err := kernel.NewMoney(req.Offer)
	if err != nil {
		return badRequest(ctx, "Invalid offer: "+err.Error())
	}

	cmd, err := commands.NewOpenDisputeCommand(
		orderID, actorID, req.Version,
		req.Requirements, req.UnmetRequirements, offer, toFileRefs(req.Evidence))
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.openDisputeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// RespondToDispute handles POST /api/v1/orders/:orderId/dispute/response.
// A body without a counterOffer accepts the claimant's offer.
func (s *Server) RespondToDispute(ctx echo.Context) error {
	var req respondToDisputeRequest
	orderID, actorID, err := s.bindActing(ctx, &req, &req.acting)
	if err != nil {
		return err
	}

	var counterOffer *kernel.Money
	if req.CounterOffer != nil {
		offer, moneyErr := kernel.NewMoney(*req.CounterOffer)
		if moneyErr != nil {
			return badRequest(ctx, "Invalid counterOffer: "+moneyErr.Error())
		}
		counterOffer = &offer
	}

	cmd, err := commands.NewRespondToDisputeCommand(orderID, actorID, req.Version, counterOffer)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.respondToDisputeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// RequestArbitration handles POST /api/v1/orders/:orderId/dispute/arbitration.
func (s *Server) RequestArbitration(ctx echo.Context) error {
	var req struct{ acting }
	orderID, actorID, err := s.bindActing(ctx, &req, &req.acting)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRequestArbitrationCommand(orderID, actorID, req.Version)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.requestArbitrationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// CancelDispute handles POST /api/v1/orders/:orderId/dispute/cancellation.
// Either party may cancel once negotiation has started; the order returns to
// its pre-dispute state.
func (s *Server) CancelDispute(ctx echo.Context) error {
	var req struct{ acting }
	orderID, actorID, err := s.bindActing(ctx, &req, &req.acting)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelDisputeCommand(orderID, actorID, req.Version)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.cancelDisputeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// DecideDispute handles POST /api/v1/orders/:orderId/dispute/decision. This
// is the arbitration ruling endpoint used by platform administrators.
func (s *Server) DecideDispute(ctx echo.Context) error {
	var req decideDisputeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	winnerID, err := kernel.UUIDFromString(req.WinnerID)
	if err != nil {
		return badRequest(ctx, "Invalid winnerId: "+err.Error())
	}

	cmd, err := commands.NewDecideDisputeCommand(orderID, winnerID, req.Version, req.DecisionNotes)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.decideDisputeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}
