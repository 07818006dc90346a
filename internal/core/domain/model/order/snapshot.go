package order

import "time"

// Snapshot is the read model of an order returned to callers after every
// successful command and by the order query. All identifiers are canonical
// UUID strings and all amounts are minor currency units.
type Snapshot struct {
	ID               string    `json:"id"`
	ClientID         string    `json:"clientId"`
	ProfessionalID   string    `json:"professionalId"`
	Amount           int64     `json:"amount"`
	Status           string    `json:"status"`
	DeliveryStatus   string    `json:"deliveryStatus"`
	ExpectedDelivery time.Time `json:"expectedDelivery"`

	AutoCompleteAt *time.Time `json:"autoCompleteAt,omitempty"`
	ClosedAt       *time.Time `json:"closedAt,omitempty"`

	Cancellation *CancellationSnapshot `json:"cancellation,omitempty"`
	Revision     *RevisionSnapshot     `json:"revision,omitempty"`
	Extension    *ExtensionSnapshot    `json:"extension,omitempty"`
	Dispute      *DisputeSnapshot      `json:"dispute,omitempty"`

	Rating      *RatingSnapshot `json:"rating,omitempty"`
	BuyerReview *RatingSnapshot `json:"buyerReview,omitempty"`

	Version int `json:"version"`
}

// CancellationSnapshot is the read model of the cancellation request.
type CancellationSnapshot struct {
	Status           string     `json:"status"`
	RequestedBy      string     `json:"requestedBy"`
	Reason           string     `json:"reason"`
	ResponseDeadline *time.Time `json:"responseDeadline,omitempty"`
	RespondedAt      *time.Time `json:"respondedAt,omitempty"`
}

// RevisionSnapshot is the read model of the revision request.
type RevisionSnapshot struct {
	Status          string     `json:"status"`
	Reason          string     `json:"reason"`
	ClientMessage   string     `json:"clientMessage,omitempty"`
	AdditionalNotes string     `json:"additionalNotes,omitempty"`
	RequestedAt     *time.Time `json:"requestedAt,omitempty"`
	RespondedAt     *time.Time `json:"respondedAt,omitempty"`
}

// ExtensionSnapshot is the read model of the extension request.
type ExtensionSnapshot struct {
	Status          string     `json:"status"`
	NewDeliveryDate time.Time  `json:"newDeliveryDate"`
	Reason          string     `json:"reason,omitempty"`
	RequestedAt     *time.Time `json:"requestedAt,omitempty"`
	RespondedAt     *time.Time `json:"respondedAt,omitempty"`
}

// DisputeSnapshot is the read model of the dispute.
type DisputeSnapshot struct {
	ID                   string     `json:"id"`
	Status               string     `json:"status"`
	ClaimantID           string     `json:"claimantId"`
	RespondentID         string     `json:"respondentId"`
	ClaimantOffer        int64      `json:"claimantOffer"`
	RespondentOffer      *int64     `json:"respondentOffer,omitempty"`
	ResponseDeadline     *time.Time `json:"responseDeadline,omitempty"`
	NegotiationDeadline  *time.Time `json:"negotiationDeadline,omitempty"`
	ArbitrationRequested bool       `json:"arbitrationRequested"`
	WinnerID             string     `json:"winnerId,omitempty"`
	LoserID              string     `json:"loserId,omitempty"`
	AutoClosed           bool       `json:"autoClosed"`
	DecisionNotes        string     `json:"decisionNotes,omitempty"`
}

// RatingSnapshot is the read model of a rating or buyer review.
type RatingSnapshot struct {
	Stars   int       `json:"stars"`
	Comment string    `json:"comment,omitempty"`
	RatedAt time.Time `json:"ratedAt"`
}

// Snapshot builds the read model of the aggregate's current state.
func (o *Order) Snapshot() Snapshot {
	s := Snapshot{
		ID:               o.id.String(),
		ClientID:         o.clientID.String(),
		ProfessionalID:   o.professionalID.String(),
		Amount:           o.amount.Units(),
		Status:           o.status.String(),
		DeliveryStatus:   o.deliveryStatus.String(),
		ExpectedDelivery: o.expectedDelivery,
		AutoCompleteAt:   o.autoCompleteAt,
		ClosedAt:         o.closedAt,
		Version:          o.version,
	}

	if o.cancellation.status != CancellationNone {
		s.Cancellation = &CancellationSnapshot{
			Status:           o.cancellation.status.String(),
			RequestedBy:      o.cancellation.requestedBy.String(),
			Reason:           o.cancellation.reason,
			ResponseDeadline: o.cancellation.responseDeadline,
			RespondedAt:      o.cancellation.respondedAt,
		}
	}
	if o.revision.status != RevisionNone {
		s.Revision = &RevisionSnapshot{
			Status:          o.revision.status.String(),
			Reason:          o.revision.reason,
			ClientMessage:   o.revision.clientMessage,
			AdditionalNotes: o.revision.additionalNotes,
			RequestedAt:     o.revision.requestedAt,
			RespondedAt:     o.revision.respondedAt,
		}
	}
	if o.extension.status != ExtensionNone {
		s.Extension = &ExtensionSnapshot{
			Status:          o.extension.status.String(),
			NewDeliveryDate: o.extension.newDeliveryDate,
			Reason:          o.extension.reason,
			RequestedAt:     o.extension.requestedAt,
			RespondedAt:     o.extension.respondedAt,
		}
	}
	if o.dispute.Exists() {
		d := &DisputeSnapshot{
			ID:                   o.dispute.id.String(),
			Status:               o.dispute.status.String(),
			ClaimantID:           o.dispute.claimantID.String(),
			RespondentID:         o.dispute.respondentID.String(),
			ClaimantOffer:        o.dispute.claimantOffer.Units(),
			ResponseDeadline:     o.dispute.responseDeadline,
			NegotiationDeadline:  o.dispute.negotiationDeadline,
			ArbitrationRequested: o.dispute.arbitrationRequested,
			AutoClosed:           o.dispute.autoClosed,
			DecisionNotes:        o.dispute.decisionNotes,
		}
		if o.dispute.respondentOffer != nil {
			units := o.dispute.respondentOffer.Units()
			d.RespondentOffer = &units
		}
		if o.dispute.status == DisputeClosed {
			d.WinnerID = o.dispute.winnerID.String()
			d.LoserID = o.dispute.loserID.String()
		}
		s.Dispute = d
	}
	if o.rating != nil {
		s.Rating = &RatingSnapshot{Stars: o.rating.stars, Comment: o.rating.comment, RatedAt: o.rating.ratedAt}
	}
	if o.buyerReview != nil {
		s.BuyerReview = &RatingSnapshot{
			Stars:   o.buyerReview.stars,
			Comment: o.buyerReview.comment,
			RatedAt: o.buyerReview.ratedAt,
		}
	}
	return s
}
