// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The whole aggregate, including its nested cancellation,
// revision, extension, and dispute records, lives in a single orders row so a
// transition commits atomically without cross-table coordination.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Nested request records are embedded with column prefixes; attachment lists
// are stored as JSON since the engine never queries into them.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID         uuid.UUID `gorm:"type:uuid;index"`
	ProfessionalID   uuid.UUID `gorm:"type:uuid;index"`
	Amount           int64
	Status           int `gorm:"index"`
	DeliveryStatus   int
	ExpectedDelivery time.Time
	AutoCompleteAt   *time.Time `gorm:"index"`
	ClosedAt         *time.Time
	PriorStatus      int

	Cancellation CancellationDTO `gorm:"embedded;embeddedPrefix:cancellation_"`
	Revision     RevisionDTO     `gorm:"embedded;embeddedPrefix:revision_"`
	Extension    ExtensionDTO    `gorm:"embedded;embeddedPrefix:extension_"`
	Dispute      DisputeDTO      `gorm:"embedded;embeddedPrefix:dispute_"`

	Rating      RatingDTO `gorm:"embedded;embeddedPrefix:rating_"`
	BuyerReview RatingDTO `gorm:"embedded;embeddedPrefix:buyer_review_"`

	AdditionalNotes []order.Note `gorm:"serializer:json;type:jsonb"`

	Version int `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CancellationDTO represents the embedded cancellation request columns.
type CancellationDTO struct {
	Status           int `gorm:"index"`
	RequestedBy      uuid.UUID
	Reason           string
	Files            []order.FileRef `gorm:"serializer:json;type:jsonb"`
	ResponseDeadline *time.Time
	RespondedAt      *time.Time
	PriorStatus      int
}

// RevisionDTO represents the embedded revision request columns.
type RevisionDTO struct {
	Status          int
	Reason          string
	ClientMessage   string
	ClientFiles     []order.FileRef `gorm:"serializer:json;type:jsonb"`
	AdditionalNotes string
	RequestedAt     *time.Time
	RespondedAt     *time.Time
}

// ExtensionDTO represents the embedded extension request columns.
type ExtensionDTO struct {
	Status          int
	NewDeliveryDate *time.Time
	Reason          string
	RequestedAt     *time.Time
	RespondedAt     *time.Time
}

// DisputeDTO represents the embedded dispute columns.
type DisputeDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid"`
	Status                 int       `gorm:"index"`
	ClaimantID             uuid.UUID
	RespondentID           uuid.UUID
	Requirements           string
	UnmetRequirements      string
	ClaimantOffer          int64
	RespondentOffer        *int64
	Evidence               []order.FileRef `gorm:"serializer:json;type:jsonb"`
	ResponseDeadline       *time.Time
	NegotiationDeadline    *time.Time
	ArbitrationRequested   bool
	ArbitrationRequestedBy uuid.UUID
	WinnerID               uuid.UUID
	LoserID                uuid.UUID
	AutoClosed             bool
	DecisionNotes          string
}

// RatingDTO represents the embedded rating columns. Zero stars means no
// rating was submitted.
type RatingDTO struct {
	Stars   int
	Comment string
	RatedBy uuid.UUID
	RatedAt *time.Time
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	cancellation := aggregate.Cancellation()
	revision := aggregate.Revision()
	extension := aggregate.Extension()
	dispute := aggregate.Dispute()

	dto := OrderDTO{
		ID:               aggregate.ID().Bytes(),
		ClientID:         aggregate.ClientID().Bytes(),
		ProfessionalID:   aggregate.ProfessionalID().Bytes(),
		Amount:           aggregate.Amount().Units(),
		Status:           int(aggregate.Status()),
		DeliveryStatus:   int(aggregate.DeliveryStatus()),
		ExpectedDelivery: aggregate.ExpectedDelivery(),
		AutoCompleteAt:   aggregate.AutoCompleteAt(),
		ClosedAt:         aggregate.ClosedAt(),
		PriorStatus:      int(aggregate.PriorStatus()),
		Cancellation: CancellationDTO{
			Status:           int(cancellation.Status()),
			RequestedBy:      cancellation.RequestedBy().Bytes(),
			Reason:           cancellation.Reason(),
			Files:            cancellation.Files(),
			ResponseDeadline: cancellation.ResponseDeadline(),
			RespondedAt:      cancellation.RespondedAt(),
			PriorStatus:      int(cancellation.PriorStatus()),
		},
		Revision: RevisionDTO{
			Status:          int(revision.Status()),
			Reason:          revision.Reason(),
			ClientMessage:   revision.ClientMessage(),
			ClientFiles:     revision.ClientFiles(),
			AdditionalNotes: revision.AdditionalNotes(),
			RequestedAt:     revision.RequestedAt(),
			RespondedAt:     revision.RespondedAt(),
		},
		Extension: ExtensionDTO{
			Status:      int(extension.Status()),
			Reason:      extension.Reason(),
			RequestedAt: extension.RequestedAt(),
			RespondedAt: extension.RespondedAt(),
		},
		Dispute: DisputeDTO{
			ID:                     dispute.ID().Bytes(),
			Status:                 int(dispute.Status()),
			ClaimantID:             dispute.ClaimantID().Bytes(),
			RespondentID:           dispute.RespondentID().Bytes(),
			Requirements:           dispute.Requirements(),
			UnmetRequirements:      dispute.UnmetRequirements(),
			ClaimantOffer:          dispute.ClaimantOffer().Units(),
			Evidence:               dispute.Evidence(),
			ResponseDeadline:       dispute.ResponseDeadline(),
			NegotiationDeadline:    dispute.NegotiationDeadline(),
			ArbitrationRequested:   dispute.ArbitrationRequested(),
			ArbitrationRequestedBy: dispute.ArbitrationRequestedBy().Bytes(),
			WinnerID:               dispute.WinnerID().Bytes(),
			LoserID:                dispute.LoserID().Bytes(),
			AutoClosed:             dispute.AutoClosed(),
			DecisionNotes:          dispute.DecisionNotes(),
		},
		Rating:          ratingToDTO(aggregate.Rating()),
		BuyerReview:     ratingToDTO(aggregate.BuyerReview()),
		AdditionalNotes: aggregate.AdditionalNotes(),
		Version:         aggregate.Version(),
	}

	if date := extension.NewDeliveryDate(); !date.IsZero() {
		dto.Extension.NewDeliveryDate = &date
	}
	if offer := dispute.RespondentOffer(); offer != nil {
		units := offer.Units()
		dto.Dispute.RespondentOffer = &units
	}

	return dto
}

func ratingToDTO(rating *order.Rating) RatingDTO {
	if rating == nil {
		return RatingDTO{}
	}

	ratedAt := rating.RatedAt()
	return RatingDTO{
		Stars:   rating.Stars(),
		Comment: rating.Comment(),
		RatedBy: rating.RatedBy().Bytes(),
		RatedAt: &ratedAt,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all nested request records
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	professionalID, err := kernel.UUIDFromBytes(dto.ProfessionalID[:])
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	dispute, err := disputeToDomain(dto.Dispute)
	if err != nil {
		return nil, err
	}

	extension := order.RestoreExtension(
		order.ExtensionStatus(dto.Extension.Status),
		derefTime(dto.Extension.NewDeliveryDate),
		dto.Extension.Reason,
		dto.Extension.RequestedAt,
		dto.Extension.RespondedAt,
	)

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:               id,
		ClientID:         clientID,
		ProfessionalID:   professionalID,
		Amount:           amount,
		Status:           order.Status(dto.Status),
		DeliveryStatus:   order.DeliveryStatus(dto.DeliveryStatus),
		ExpectedDelivery: dto.ExpectedDelivery,
		AutoCompleteAt:   dto.AutoCompleteAt,
		ClosedAt:         dto.ClosedAt,
		PriorStatus:      order.Status(dto.PriorStatus),
		Cancellation: order.RestoreCancellation(
			order.CancellationStatus(dto.Cancellation.Status),
			uuidFromColumn(dto.Cancellation.RequestedBy),
			dto.Cancellation.Reason,
			dto.Cancellation.Files,
			dto.Cancellation.ResponseDeadline,
			dto.Cancellation.RespondedAt,
			order.Status(dto.Cancellation.PriorStatus),
		),
		Revision: order.RestoreRevision(
			order.RevisionStatus(dto.Revision.Status),
			dto.Revision.Reason,
			dto.Revision.ClientMessage,
			dto.Revision.ClientFiles,
			dto.Revision.AdditionalNotes,
			dto.Revision.RequestedAt,
			dto.Revision.RespondedAt,
		),
		Extension:       extension,
		Dispute:         dispute,
		Rating:          ratingToDomain(dto.Rating),
		BuyerReview:     ratingToDomain(dto.BuyerReview),
		AdditionalNotes: dto.AdditionalNotes,
		Version:         dto.Version,
	})
}

func disputeToDomain(dto DisputeDTO) (order.Dispute, error) {
	claimantOffer, err := kernel.NewMoney(dto.ClaimantOffer)
	if err != nil {
		return order.Dispute{}, err
	}

	var respondentOffer *kernel.Money
	if dto.RespondentOffer != nil {
		offer, offerErr := kernel.NewMoney(*dto.RespondentOffer)
		if offerErr != nil {
			return order.Dispute{}, offerErr
		}
		respondentOffer = &offer
	}

	return order.RestoreDispute(order.RestoreDisputeParams{
		ID:                     uuidFromColumn(dto.ID),
		Status:                 order.DisputeStatus(dto.Status),
		ClaimantID:             uuidFromColumn(dto.ClaimantID),
		RespondentID:           uuidFromColumn(dto.RespondentID),
		Requirements:           dto.Requirements,
		UnmetRequirements:      dto.UnmetRequirements,
		ClaimantOffer:          claimantOffer,
		RespondentOffer:        respondentOffer,
		Evidence:               dto.Evidence,
		ResponseDeadline:       dto.ResponseDeadline,
		NegotiationDeadline:    dto.NegotiationDeadline,
		ArbitrationRequested:   dto.ArbitrationRequested,
		ArbitrationRequestedBy: uuidFromColumn(dto.ArbitrationRequestedBy),
		WinnerID:               uuidFromColumn(dto.WinnerID),
		LoserID:                uuidFromColumn(dto.LoserID),
		AutoClosed:             dto.AutoClosed,
		DecisionNotes:          dto.DecisionNotes,
	}), nil
}

func ratingToDomain(dto RatingDTO) *order.Rating {
	if dto.Stars == 0 {
		return nil
	}

	rating := order.RestoreRating(dto.Stars, dto.Comment, uuidFromColumn(dto.RatedBy), derefTime(dto.RatedAt))
	return &rating
}

// uuidFromColumn maps a stored identifier to the domain type. The nil UUID
// round-trips to the kernel zero value, which the domain reads as "not set".
func uuidFromColumn(id uuid.UUID) kernel.UUID {
	if id == uuid.Nil {
		return kernel.UUID{}
	}

	restored, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}
	}
	return restored
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
