package order

import (
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// Event types for the order context
const (
	EventTypeCreated       = "order.created"
	EventTypeStatusChanged = "order.status_changed"
	EventTypeHibobSynced   = "order.hibob_synced"
)

// CreatedEvent is emitted when an order is created from a cart
type CreatedEvent struct {
	shared.BaseDomainEvent
	EmployeeID uuid.UUID `json:"employee_id"`
	TotalCents int64     `json:"total_cents"`
	ItemCount  int       `json:"item_count"`
}

// NewCreatedEvent creates a CreatedEvent
func NewCreatedEvent(o *Order) *CreatedEvent {
	return &CreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCreated, "Order", o.ID),
		EmployeeID:      o.EmployeeID,
		TotalCents:      o.TotalCents,
		ItemCount:       len(o.Items),
	}
}

// StatusChangedEvent is emitted on every state machine transition
type StatusChangedEvent struct {
	shared.BaseDomainEvent
	EmployeeID uuid.UUID  `json:"employee_id"`
	FromStatus Status     `json:"from_status"`
	ToStatus   Status     `json:"to_status"`
	ReviewedBy *uuid.UUID `json:"reviewed_by,omitempty"`
	Note       string     `json:"note,omitempty"`
}

// NewStatusChangedEvent creates a StatusChangedEvent
func NewStatusChangedEvent(o *Order, from Status) *StatusChangedEvent {
	return &StatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStatusChanged, "Order", o.ID),
		EmployeeID:      o.EmployeeID,
		FromStatus:      from,
		ToStatus:        o.Status,
		ReviewedBy:      o.ReviewedBy,
		Note:            o.ReviewNote,
	}
}

// HibobSyncedEvent is emitted when an order's items have been fully pushed
// to the external HR system
type HibobSyncedEvent struct {
	shared.BaseDomainEvent
	EmployeeID  uuid.UUID `json:"employee_id"`
	PushedItems int       `json:"pushed_items"`
	SyncedAt    time.Time `json:"synced_at"`
}

// NewHibobSyncedEvent creates a HibobSyncedEvent
func NewHibobSyncedEvent(o *Order, pushedItems int, at time.Time) *HibobSyncedEvent {
	return &HibobSyncedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeHibobSynced, "Order", o.ID),
		EmployeeID:      o.EmployeeID,
		PushedItems:     pushedItems,
		SyncedAt:        at,
	}
}
