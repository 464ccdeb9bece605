package event

import (
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/budget"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/order"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/reconciliation"
)

// RegisterAllEvents registers all domain event types with the serializer.
// This is required for the OutboxProcessor to deserialize events from the
// outbox table.
func RegisterAllEvents(serializer *EventSerializer) {
	// Budget ledger events
	serializer.Register(budget.EventTypeAdjustmentCreated, &budget.AdjustmentCreatedEvent{})
	serializer.Register(budget.EventTypeAdjustmentDeleted, &budget.AdjustmentDeletedEvent{})

	// Order state machine events
	serializer.Register(order.EventTypeCreated, &order.CreatedEvent{})
	serializer.Register(order.EventTypeStatusChanged, &order.StatusChangedEvent{})
	serializer.Register(order.EventTypeHibobSynced, &order.HibobSyncedEvent{})

	// Purchase reconciliation events
	serializer.Register(reconciliation.EventTypeReviewCreated, &reconciliation.ReviewCreatedEvent{})
	serializer.Register(reconciliation.EventTypeReviewResolved, &reconciliation.ReviewResolvedEvent{})
	serializer.Register(reconciliation.EventTypeSyncCompleted, &reconciliation.SyncCompletedEvent{})
}
