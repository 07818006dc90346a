// Package notify provides notifier gateway implementations. The Kafka
// notifier publishes order events to a topic consumed by downstream channels
// (email, push, in-app); the log notifier is a stand-in for environments
// without a broker.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"marketplace/internal/core/domain/model/order"
)

// messageWriter is the subset of kafka.Writer the notifier depends on.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// notificationMessage is the wire format published to the notifications
// topic.
type notificationMessage struct {
	Event       string    `json:"event"`
	OrderID     string    `json:"orderId"`
	RecipientID string    `json:"recipientId"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// KafkaNotifierGateway implements ports.NotifierGateway by publishing JSON
// messages to Kafka. Messages are keyed by recipient so each recipient's
// notifications stay ordered within a partition.
type KafkaNotifierGateway struct {
	writer messageWriter
}

// NewKafkaNotifierGateway creates a notifier publishing to the given brokers
// and topic.
func NewKafkaNotifierGateway(brokers []string, topic string) *KafkaNotifierGateway {
	return &KafkaNotifierGateway{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
	}
}

// Notify publishes the notification. Delivery is at-least-once; the caller
// treats failures as non-fatal because the committed transition, not the
// notification, is the source of truth.
func (g *KafkaNotifierGateway) Notify(ctx context.Context, notification order.Notification) error {
	payload, err := json.Marshal(notificationMessage{
		Event:       notification.Event,
		OrderID:     notification.OrderID.String(),
		RecipientID: notification.RecipientID.String(),
		OccurredAt:  time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	err = g.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notification.RecipientID.String()),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

// Close closes the underlying Kafka writer.
func (g *KafkaNotifierGateway) Close() error {
	return g.writer.Close()
}
