package notification

import (
	"context"
	"fmt"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/order"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"go.uber.org/zap"
)

// OrderStatusHandler notifies the employee when their order changes status
type OrderStatusHandler struct {
	logger   *zap.Logger
	notifier Notifier
}

// NewOrderStatusHandler creates a new handler for order status events
func NewOrderStatusHandler(notifier Notifier, logger *zap.Logger) *OrderStatusHandler {
	return &OrderStatusHandler{
		logger:   logger,
		notifier: notifier,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *OrderStatusHandler) EventTypes() []string {
	return []string{order.EventTypeStatusChanged}
}

// Handle processes a StatusChangedEvent
func (h *OrderStatusHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	statusEvent, ok := event.(*order.StatusChangedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", order.EventTypeStatusChanged),
			zap.String("actual", event.EventType()))
		return fmt.Errorf("unexpected event type: %s", event.EventType())
	}

	err := h.notifier.Notify(ctx, AudienceEmployee, statusEvent.EmployeeID.String(), "order_status_changed", map[string]any{
		"order_id": statusEvent.AggregateID().String(),
		"from":     string(statusEvent.FromStatus),
		"to":       string(statusEvent.ToStatus),
		"note":     statusEvent.Note,
	})
	if err != nil {
		h.logger.Warn("failed to send order status notification",
			zap.String("order_id", statusEvent.AggregateID().String()),
			zap.Error(err))
	}
	return nil
}
