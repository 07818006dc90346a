// Package http exposes the order lifecycle over a JSON API. Every mutating
// endpoint carries the acting party and the expected aggregate version;
// handlers translate requests into commands and command rejections into
// status codes.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	deliverWorkHandler           commands.DeliverWorkCommandHandler
	acceptDeliveryHandler        commands.AcceptDeliveryCommandHandler
	professionalCompleteHandler  commands.ProfessionalCompleteCommandHandler
	rateOrderHandler             commands.RateOrderCommandHandler
	submitBuyerReviewHandler     commands.SubmitBuyerReviewCommandHandler
	addAdditionalInfoHandler     commands.AddAdditionalInfoCommandHandler
	requestCancellationHandler   commands.RequestCancellationCommandHandler
	respondToCancellationHandler commands.RespondToCancellationCommandHandler
	withdrawCancellationHandler  commands.WithdrawCancellationCommandHandler
	requestRevisionHandler       commands.RequestRevisionCommandHandler
	respondToRevisionHandler     commands.RespondToRevisionCommandHandler
	completeRevisionHandler      commands.CompleteRevisionCommandHandler
	requestExtensionHandler      commands.RequestExtensionCommandHandler
	respondToExtensionHandler    commands.RespondToExtensionCommandHandler
	openDisputeHandler           commands.OpenDisputeCommandHandler
	respondToDisputeHandler      commands.RespondToDisputeCommandHandler
	requestArbitrationHandler    commands.RequestArbitrationCommandHandler
	cancelDisputeHandler         commands.CancelDisputeCommandHandler
	decideDisputeHandler         commands.DecideDisputeCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// Handlers bundles the use case handlers the server depends on.
type Handlers struct {
	CreateOrder           commands.CreateOrderCommandHandler
	DeliverWork           commands.DeliverWorkCommandHandler
	AcceptDelivery        commands.AcceptDeliveryCommandHandler
	ProfessionalComplete  commands.ProfessionalCompleteCommandHandler
	RateOrder             commands.RateOrderCommandHandler
	SubmitBuyerReview     commands.SubmitBuyerReviewCommandHandler
	AddAdditionalInfo     commands.AddAdditionalInfoCommandHandler
	RequestCancellation   commands.RequestCancellationCommandHandler
	RespondToCancellation commands.RespondToCancellationCommandHandler
	WithdrawCancellation  commands.WithdrawCancellationCommandHandler
	RequestRevision       commands.RequestRevisionCommandHandler
	RespondToRevision     commands.RespondToRevisionCommandHandler
	CompleteRevision      commands.CompleteRevisionCommandHandler
	RequestExtension      commands.RequestExtensionCommandHandler
	RespondToExtension    commands.RespondToExtensionCommandHandler
	OpenDispute           commands.OpenDisputeCommandHandler
	RespondToDispute      commands.RespondToDisputeCommandHandler
	RequestArbitration    commands.RequestArbitrationCommandHandler
	CancelDispute         commands.CancelDisputeCommandHandler
	DecideDispute         commands.DecideDisputeCommandHandler

	GetOrder        queries.GetOrderQueryHandler
	GetActiveOrders queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createOrderHandler:           h.CreateOrder,
		deliverWorkHandler:           h.DeliverWork,
		acceptDeliveryHandler:        h.AcceptDelivery,
		professionalCompleteHandler:  h.ProfessionalComplete,
		rateOrderHandler:             h.RateOrder,
		submitBuyerReviewHandler:     h.SubmitBuyerReview,
		addAdditionalInfoHandler:     h.AddAdditionalInfo,
		requestCancellationHandler:   h.RequestCancellation,
		respondToCancellationHandler: h.RespondToCancellation,
		withdrawCancellationHandler:  h.WithdrawCancellation,
		requestRevisionHandler:       h.RequestRevision,
		respondToRevisionHandler:     h.RespondToRevision,
		completeRevisionHandler:      h.CompleteRevision,
		requestExtensionHandler:      h.RequestExtension,
		respondToExtensionHandler:    h.RespondToExtension,
		openDisputeHandler:           h.OpenDispute,
		respondToDisputeHandler:      h.RespondToDispute,
		requestArbitrationHandler:    h.RequestArbitration,
		cancelDisputeHandler:         h.CancelDispute,
		decideDisputeHandler:         h.DecideDispute,
		getOrderHandler:              h.GetOrder,
		getActiveOrdersHandler:       h.GetActiveOrders,
	}
}

// RegisterRoutes mounts all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:orderId", s.GetOrder)

	api.POST("/orders/:orderId/deliver", s.DeliverWork)
	api.POST("/orders/:orderId/accept", s.AcceptDelivery)
	api.POST("/orders/:orderId/complete", s.ProfessionalComplete)
	api.POST("/orders/:orderId/rating", s.RateOrder)
	api.POST("/orders/:orderId/buyer-review", s.SubmitBuyerReview)
	api.POST("/orders/:orderId/info", s.AddAdditionalInfo)

	api.POST("/orders/:orderId/cancellation", s.RequestCancellation)
	api.POST("/orders/:orderId/cancellation/response", s.RespondToCancellation)
	api.POST("/orders/:orderId/cancellation/withdrawal", s.WithdrawCancellation)

	api.POST("/orders/:orderId/revision", s.RequestRevision)
	api.POST("/orders/:orderId/revision/response", s.RespondToRevision)
	api.POST("/orders/:orderId/revision/completion", s.CompleteRevision)

	api.POST("/orders/:orderId/extension", s.RequestExtension)
	api.POST("/orders/:orderId/extension/response", s.RespondToExtension)

	api.POST("/orders/:orderId/dispute", s.OpenDispute)
	api.POST("/orders/:orderId/dispute/response", s.RespondToDispute)
	api.POST("/orders/:orderId/dispute/arbitration", s.RequestArbitration)
	api.POST("/orders/:orderId/dispute/cancellation", s.CancelDispute)
	api.POST("/orders/:orderId/dispute/decision", s.DecideDispute)
}

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps command rejections onto HTTP status codes. Validation
// failures are client errors; state and version conflicts report 409 so the
// caller can refetch and retry.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrVersionConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInsufficientBalance):
		code = http.StatusPaymentRequired
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, errorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
