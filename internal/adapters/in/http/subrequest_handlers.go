package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplace/internal/core/application/usecases/commands"
)

// RequestCancellation handles POST /api/v1/orders/:orderId/cancellation.
func (s *Server) RequestCancellation(ctx echo.Context) error {
	var req requestCancellationRequest
	orderID, actorID, err := s.bindActing(ctx, &req, &req.acting)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRequestCancellationCommand(
		orderID, actorID, req.Version, req.Reason, toFileRefs(req.Files))
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.requestCancellationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// RespondToCancellation handles POST /api/v1/orders/:orderId/cancellation/response.
func (s *Server) RespondToCancellation(ctx echo.Context) error {
	var req approvalRequest
	orderID, actorID, err := s.bindActing(ctx, &req, &req.acting)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRespondToCancellationCommand(orderID, actorID, req.Version, req.Approve)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.respondToCancellationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// WithdrawCancellation handles POST /api/v1/orders/:orderId/cancellation/withdrawal.
func (s *Server) WithdrawCancellation(ctx echo.Context) error {
	var req struct{ acting }
	orderID, actorID, err := s.bindActing(ctx, &req, &req.acting)
	if err != nil {
		return err
	}

	cmd, err := commands.NewWithdrawCancellationCommand(orderID, actorID, req.Version)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.withdrawCancellationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// RequestRevision handles POST /api/v1/orders/:orderId/revision.
func (s *Server) RequestRevision(ctx echo.Context) error {
	var req requestRevisionRequest
	orderID, actorID, err := s.bindActing(ctx, &req, &req.acting)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRequestRevisionCommand(
		orderID, actorID, req.Version, req.Reason, req.Message, toFileRefs(req.Files))
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.requestRevisionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// RespondToRevision handles POST /api/v1/orders/:orderId/revision/response.
func (s *Server) RespondToRevision(ctx echo.Context) error {
	var req respondToRevisionRequest
	orderID, actorID, err := s.bindActing(ctx, &req, &req.acting)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRespondToRevisionCommand(
		orderID, actorID, req.Version, req.Accept, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.respondToRevisionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// CompleteRevision handles POST /api/v1/orders/:orderId/revision/completion.
func (s *Server) CompleteRevision(ctx echo.Context) error {
	var req completeRevisionRequest
	orderID, actorID, err := s.bindActing(ctx, &req, &req.acting)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteRevisionCommand(
		orderID, actorID, req.Version, req.Message, toFileRefs(req.Files))
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.completeRevisionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// RequestExtension handles POST /api/v1/orders/:orderId/extension.
func (s *Server) RequestExtension(ctx echo.Context) error {
	var req requestExtensionRequest
	orderID, actorID, err := s.bindActing(ctx, &req, &req.acting)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRequestExtensionCommand(
		orderID, actorID, req.Version, req.NewDeliveryDate, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.requestExtensionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// RespondToExtension handles POST /api/v1/orders/:orderId/extension/response.
func (s *Server) RespondToExtension(ctx echo.Context) error {
	var req approvalRequest
	orderID, actorID, err := s.bindActing(ctx, &req, &req.acting)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRespondToExtensionCommand(orderID, actorID, req.Version, req.Approve)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.respondToExtensionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}
