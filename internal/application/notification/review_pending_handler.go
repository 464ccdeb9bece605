package notification

import (
	"context"
	"fmt"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/reconciliation"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"go.uber.org/zap"
)

// ReviewPendingHandler alerts administrators when a purchase sync opens a
// review that needs manual resolution
type ReviewPendingHandler struct {
	logger   *zap.Logger
	notifier Notifier
}

// NewReviewPendingHandler creates a new handler for pending review events
func NewReviewPendingHandler(notifier Notifier, logger *zap.Logger) *ReviewPendingHandler {
	return &ReviewPendingHandler{
		logger:   logger,
		notifier: notifier,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *ReviewPendingHandler) EventTypes() []string {
	return []string{reconciliation.EventTypeReviewCreated}
}

// Handle processes a ReviewCreatedEvent
func (h *ReviewPendingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	created, ok := event.(*reconciliation.ReviewCreatedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", reconciliation.EventTypeReviewCreated),
			zap.String("actual", event.EventType()))
		return fmt.Errorf("unexpected event type: %s", event.EventType())
	}

	err := h.notifier.Notify(ctx, AudienceAdmins, "", "purchase_review_pending", map[string]any{
		"review_id":      created.ReviewID.String(),
		"employee_id":    created.EmployeeID.String(),
		"hibob_entry_id": created.HibobEntryID,
		"amount_cents":   created.AmountCents,
	})
	if err != nil {
		h.logger.Warn("failed to send review pending notification",
			zap.String("review_id", created.ReviewID.String()),
			zap.Error(err))
	}
	return nil
}
