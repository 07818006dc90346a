package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// fileRef is the wire form of a file attachment reference.
type fileRef struct {
	URL         string `json:"url"`
	Name        string `json:"name"`
	ContentType string `json:"contentType,omitempty"`
}

func toFileRefs(files []fileRef) []order.FileRef {
	if len(files) == 0 {
		return nil
	}
	refs := make([]order.FileRef, len(files))
	for i, f := range files {
		refs[i] = order.FileRef{URL: f.URL, Name: f.Name, ContentType: f.ContentType}
	}
	return refs
}

// acting identifies the acting party and the aggregate version the caller
// read. Embedded by every mutating request body except order creation.
type acting struct {
	ActorID string `json:"actorId"`
	Version int    `json:"version"`
}

type createOrderRequest struct {
	ClientID         string    `json:"clientId"`
	ProfessionalID   string    `json:"professionalId"`
	Amount           int64     `json:"amount"`
	ExpectedDelivery time.Time `json:"expectedDelivery"`
}

type deliverWorkRequest struct {
	acting
	Message string    `json:"message"`
	Files   []fileRef `json:"files,omitempty"`
}

type ratingRequest struct {
	acting
	Stars   int    `json:"stars"`
	Comment string `json:"comment,omitempty"`
}

type additionalInfoRequest struct {
	acting
	Text  string    `json:"text"`
	Files []fileRef `json:"files,omitempty"`
}

type requestCancellationRequest struct {
	acting
	Reason string    `json:"reason"`
	Files  []fileRef `json:"files,omitempty"`
}

type approvalRequest struct {
	acting
	Approve bool `json:"approve"`
}

type requestRevisionRequest struct {
	acting
	Reason  string    `json:"reason"`
	Message string    `json:"message,omitempty"`
	Files   []fileRef `json:"files,omitempty"`
}

type respondToRevisionRequest struct {
	acting
	Accept bool   `json:"accept"`
	Notes  string `json:"notes,omitempty"`
}

type completeRevisionRequest struct {
	acting
	Message string    `json:"message"`
	Files   []fileRef `json:"files,omitempty"`
}

type requestExtensionRequest struct {
	acting
	NewDeliveryDate time.Time `json:"newDeliveryDate"`
	Reason          string    `json:"reason,omitempty"`
}

type openDisputeRequest struct {
	acting
	Requirements      string    `json:"requirements"`
	UnmetRequirements string    `json:"unmetRequirements"`
	Offer             int64     `json:"offer"`
	Evidence          []fileRef `json:"evidence,omitempty"`
}

type respondToDisputeRequest struct {
	acting
	CounterOffer *int64 `json:"counterOffer,omitempty"`
}

type decideDisputeRequest struct {
	WinnerID      string `json:"winnerId"`
	Version       int    `json:"version"`
	DecisionNotes string `json:"decisionNotes,omitempty"`
}

// pathOrderID parses the :orderId path parameter.
func pathOrderID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("orderId"))
}
