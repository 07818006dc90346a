package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid clientId: "+err.Error())
	}
	professionalID, err := kernel.UUIDFromString(req.ProfessionalID)
	if err != nil {
		return badRequest(ctx, "Invalid professionalId: "+err.Error())
	}
	amount, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), clientID, professionalID, amount, req.ExpectedDelivery)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, snapshot)
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// DeliverWork handles POST /api/v1/orders/:orderId/deliver.
func (s *Server) DeliverWork(ctx echo.Context) error {
	var req deliverWorkRequest
	orderID, actorID, err := s.bindActing(ctx, &req, &req.acting)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeliverWorkCommand(
		orderID, actorID, req.Version, req.Message, toFileRefs(req.Files))
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.deliverWorkHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// AcceptDelivery handles POST /api/v1/orders/:orderId/accept.
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	var req struct{ acting }
	orderID, actorID, err := s.bindActing(ctx, &req, &req.acting)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptDeliveryCommand(orderID, actorID, req.Version)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.acceptDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// ProfessionalComplete handles POST /api/v1/orders/:orderId/complete.
func (s *Server) ProfessionalComplete(ctx echo.Context) error {
	var req struct{ acting }
	orderID, actorID, err := s.bindActing(ctx, &req, &req.acting)
	if err != nil {
		return err
	}

	cmd, err := commands.NewProfessionalCompleteCommand(orderID, actorID, req.Version)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.professionalCompleteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// RateOrder handles POST /api/v1/orders/:orderId/rating.
func (s *Server) RateOrder(ctx echo.Context) error {
	var req ratingRequest
	orderID, actorID, err := s.bindActing(ctx, &req, &req.acting)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRateOrderCommand(orderID, actorID, req.Version, req.Stars, req.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.rateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// SubmitBuyerReview handles POST /api/v1/orders/:orderId/buyer-review.
func (s *Server) SubmitBuyerReview(ctx echo.Context) error {
	var req ratingRequest
	orderID, actorID, err := s.bindActing(ctx, &req, &req.acting)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSubmitBuyerReviewCommand(
		orderID, actorID, req.Version, req.Stars, req.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.submitBuyerReviewHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// AddAdditionalInfo handles POST /api/v1/orders/:orderId/info.
func (s *Server) AddAdditionalInfo(ctx echo.Context) error {
	var req additionalInfoRequest
	orderID, actorID, err := s.bindActing(ctx, &req, &req.acting)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddAdditionalInfoCommand(
		orderID, actorID, req.Version, req.Text, toFileRefs(req.Files))
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.addAdditionalInfoHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// bindActing binds the request body and parses the order id and acting party
// shared by all transition endpoints. On failure it writes the error response
// and returns the echo error to stop the handler.
func (s *Server) bindActing(ctx echo.Context, body any, act *acting) (kernel.UUID, kernel.UUID, error) {
	if err := ctx.Bind(body); err != nil {
		return kernel.UUID{}, kernel.UUID{}, badRequest(ctx, "Invalid request body")
	}

	orderID, err := pathOrderID(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, badRequest(ctx, "Invalid order id")
	}

	actorID, err := kernel.UUIDFromString(act.ActorID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, badRequest(ctx, "Invalid actorId: "+err.Error())
	}

	return orderID, actorID, nil
}
