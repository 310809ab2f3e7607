package notification

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"shopdash/internal/changefeed"
)

// Handler turns changefeed events from Kafka into operator notifications.
// New orders are announced; edits and deletions are only traced.
type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) HandleEvent(ctx context.Context, key, value []byte) error {
	var event changefeed.Event
	if err := json.Unmarshal(value, &event); err != nil {
		h.logger.Error("unmarshalling change event", zap.String("key", string(key)), zap.Error(err))
		return err
	}

	switch event.Type {
	case changefeed.OrderCreated:
		h.logger.Info("new order received",
			zap.String("order_id", event.Order.ID),
			zap.String("email", event.Order.Email),
			zap.String("total_price", event.Order.TotalPrice),
			zap.String("product", event.Order.Product),
		)
	case changefeed.OrderUpdated:
		h.logger.Debug("order updated", zap.String("order_id", event.Order.ID))
	case changefeed.OrderDeleted:
		h.logger.Info("order removed", zap.String("order_id", event.Order.ID))
	default:
		h.logger.Warn("unknown change event type", zap.String("type", string(event.Type)))
	}

	return nil
}
