package budget

import (
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// Event types for the budget context
const (
	EventTypeAdjustmentCreated = "budget.adjustment_created"
	EventTypeAdjustmentDeleted = "budget.adjustment_deleted"
)

// AdjustmentCreatedEvent is emitted when a budget adjustment is recorded
type AdjustmentCreatedEvent struct {
	shared.BaseDomainEvent
	EmployeeID   uuid.UUID        `json:"employee_id"`
	AmountCents  int64            `json:"amount_cents"`
	Reason       string           `json:"reason"`
	Source       AdjustmentSource `json:"source"`
	HibobEntryID *string          `json:"hibob_entry_id,omitempty"`
}

// NewAdjustmentCreatedEvent creates an AdjustmentCreatedEvent
func NewAdjustmentCreatedEvent(adj *BudgetAdjustment) *AdjustmentCreatedEvent {
	return &AdjustmentCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAdjustmentCreated, "BudgetAdjustment", adj.ID),
		EmployeeID:      adj.EmployeeID,
		AmountCents:     adj.AmountCents,
		Reason:          adj.Reason,
		Source:          adj.Source,
		HibobEntryID:    adj.HibobEntryID,
	}
}

// AdjustmentDeletedEvent is emitted when a manual adjustment is removed
type AdjustmentDeletedEvent struct {
	shared.BaseDomainEvent
	EmployeeID  uuid.UUID `json:"employee_id"`
	AmountCents int64     `json:"amount_cents"`
}

// NewAdjustmentDeletedEvent creates an AdjustmentDeletedEvent
func NewAdjustmentDeletedEvent(adj *BudgetAdjustment) *AdjustmentDeletedEvent {
	return &AdjustmentDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAdjustmentDeleted, "BudgetAdjustment", adj.ID),
		EmployeeID:      adj.EmployeeID,
		AmountCents:     adj.AmountCents,
	}
}
