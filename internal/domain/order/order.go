package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// Item is a line item of an order, priced at order time. HibobSynced tracks
// per-line push-back idempotency independent of the order-level sync stamp.
type Item struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	PriceCents  int64
	HibobSynced bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AmountCents returns quantity times unit price
func (i *Item) AmountCents() int64 {
	return int64(i.Quantity) * i.PriceCents
}

// ExpenseDescription reconstructs the description string used for external
// expense entries. Unsync relies on this being deterministic.
func (i *Item) ExpenseDescription() string {
	return fmt.Sprintf("%s x%d (order %s)", i.ProductName, i.Quantity, shortID(i.OrderID))
}

func shortID(id uuid.UUID) string {
	return strings.SplitN(id.String(), "-", 2)[0]
}

// Order is the aggregate root for an employee purchase. It is created from a
// cart snapshot and only ever mutates through its state machine.
type Order struct {
	shared.BaseAggregateRoot
	EmployeeID   uuid.UUID
	Items        []Item
	TotalCents   int64
	DeliveryNote string
	Status       Status
	ReviewNote   string
	ReviewedBy   *uuid.UUID
	ReviewedAt   *time.Time

	HibobSyncedAt *time.Time
	HibobSyncedBy *uuid.UUID
}

// ItemSpec describes one line of a new order
type ItemSpec struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	PriceCents  int64
}

// NewOrder creates a pending order from resolved cart lines. Prices are the
// live catalog prices, not the cart snapshot.
func NewOrder(employeeID uuid.UUID, deliveryNote string, specs []ItemSpec) (*Order, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID cannot be empty")
	}
	if len(specs) == 0 {
		return nil, shared.NewDomainError("EMPTY_CART", "Cannot create an order from an empty cart")
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EmployeeID:        employeeID,
		DeliveryNote:      deliveryNote,
		Status:            StatusPending,
		Items:             make([]Item, 0, len(specs)),
	}

	now := time.Now()
	for _, spec := range specs {
		if spec.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Item quantity must be positive")
		}
		if spec.PriceCents < 0 {
			return nil, shared.NewDomainError("INVALID_PRICE", "Item price cannot be negative")
		}
		item := Item{
			ID:          uuid.New(),
			OrderID:     o.ID,
			ProductID:   spec.ProductID,
			ProductName: spec.ProductName,
			Quantity:    spec.Quantity,
			PriceCents:  spec.PriceCents,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		o.Items = append(o.Items, item)
		o.TotalCents += item.AmountCents()
	}

	o.AddDomainEvent(NewCreatedEvent(o))
	return o, nil
}

// TransitionTo moves the order to newStatus if the legality table allows it.
// Rejections require a non-empty note. The reviewing actor and instant are
// stamped on success.
func (o *Order) TransitionTo(newStatus Status, actorID uuid.UUID, note string) error {
	if !newStatus.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", newStatus))
	}
	if !o.Status.CanTransitionTo(newStatus) {
		return NewInvalidTransitionError(o.Status, newStatus)
	}
	if newStatus == StatusRejected && strings.TrimSpace(note) == "" {
		return shared.NewDomainError("REJECTION_NOTE_REQUIRED", "Rejecting an order requires a note")
	}

	from := o.Status
	now := time.Now()
	o.Status = newStatus
	o.ReviewNote = note
	o.ReviewedBy = &actorID
	o.ReviewedAt = &now
	o.Touch()

	o.AddDomainEvent(NewStatusChangedEvent(o, from))
	return nil
}

// IsSynced reports whether the order has been fully pushed to the external
// HR system
func (o *Order) IsSynced() bool {
	return o.HibobSyncedAt != nil
}

// UnsyncedItems returns the items not yet pushed to the external system
func (o *Order) UnsyncedItems() []*Item {
	var items []*Item
	for i := range o.Items {
		if !o.Items[i].HibobSynced {
			items = append(items, &o.Items[i])
		}
	}
	return items
}

// MarkSynced stamps the order-level sync state once every item is synced
func (o *Order) MarkSynced(actorID uuid.UUID, at time.Time) error {
	for i := range o.Items {
		if !o.Items[i].HibobSynced {
			return shared.NewDomainError("ITEMS_UNSYNCED", "Cannot finalize sync while items remain unsynced")
		}
	}
	o.HibobSyncedAt = &at
	o.HibobSyncedBy = &actorID
	o.Touch()
	return nil
}

// ClearSyncState reverses a completed push-back: the order stamp and every
// per-item flag are reset
func (o *Order) ClearSyncState() {
	o.HibobSyncedAt = nil
	o.HibobSyncedBy = nil
	for i := range o.Items {
		o.Items[i].HibobSynced = false
		o.Items[i].UpdatedAt = time.Now()
	}
	o.Touch()
}

// NewInvalidTransitionError builds the transition error with the current
// state and the enumerated legal next states
func NewInvalidTransitionError(from, to Status) *shared.DomainError {
	legal := from.LegalNextStatuses()
	names := make([]string, len(legal))
	for i, s := range legal {
		names[i] = s.String()
	}
	allowed := "none"
	if len(names) > 0 {
		allowed = strings.Join(names, ", ")
	}
	return shared.NewDomainError(
		"INVALID_STATUS_TRANSITION",
		fmt.Sprintf("Cannot transition order from %s to %s (allowed: %s)", from, to, allowed),
	)
}
