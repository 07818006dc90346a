package notify

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/order"
)

// LogNotifierGateway implements ports.NotifierGateway by writing structured
// log records. Used when no Kafka brokers are configured.
type LogNotifierGateway struct {
	logger *slog.Logger
}

// NewLogNotifierGateway creates a notifier that logs instead of publishing.
func NewLogNotifierGateway(logger *slog.Logger) *LogNotifierGateway {
	return &LogNotifierGateway{logger: logger.With(slog.String("component", "notifier"))}
}

// Notify logs the notification at info level.
func (g *LogNotifierGateway) Notify(ctx context.Context, notification order.Notification) error {
	g.logger.InfoContext(ctx, "notification",
		slog.String("event", notification.Event),
		slog.String("orderId", notification.OrderID.String()),
		slog.String("recipientId", notification.RecipientID.String()))
	return nil
}
