package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// DeliveryStatus tracks the work sub-state of an order independently of its
// billing Status. The billing status may move through cancellation or dispute
// states while the delivery status keeps recording where the work itself
// stands.
type DeliveryStatus int

const (
	// DeliveryUnknown represents an invalid or undefined delivery status.
	DeliveryUnknown DeliveryStatus = iota

	// DeliveryPending means work has not started.
	DeliveryPending

	// DeliveryActive means the professional is working, including revisions.
	DeliveryActive

	// DeliveryDelivered means work is delivered and awaiting the client.
	DeliveryDelivered

	// DeliveryCompleted means the work was accepted.
	DeliveryCompleted

	// DeliveryCancelled means the order was cancelled before completion.
	DeliveryCancelled

	// DeliveryDisputed means the work is frozen under an open dispute.
	DeliveryDisputed
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryUnknown:   "unknown",
		DeliveryPending:   "pending",
		DeliveryActive:    "active",
		DeliveryDelivered: "delivered",
		DeliveryCompleted: "completed",
		DeliveryCancelled: "cancelled",
		DeliveryDisputed:  "dispute",
	}
}

// Validate checks if the DeliveryStatus value is valid.
func (s DeliveryStatus) Validate() error {
	if s <= DeliveryUnknown || s > DeliveryDisputed {
		return errs.NewValueIsInvalidErrorWithCause("delivery status",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the wire name of the delivery status.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
