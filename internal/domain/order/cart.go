package order

import (
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// CartItem is one line of an employee's cart. PriceAtAddCents snapshots the
// catalog price at the moment the item was added; the live price is resolved
// again at checkout.
type CartItem struct {
	ID              uuid.UUID
	EmployeeID      uuid.UUID
	ProductID       uuid.UUID
	Quantity        int
	PriceAtAddCents int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewCartItem creates a cart line for an employee
func NewCartItem(employeeID, productID uuid.UUID, quantity int, priceAtAddCents int64) (*CartItem, error) {
	if employeeID == uuid.Nil || productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Employee and product IDs are required")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Cart quantity must be positive")
	}
	if priceAtAddCents < 0 {
		return nil, shared.NewDomainError("INVALID_PRICE", "Cart price cannot be negative")
	}
	now := time.Now()
	return &CartItem{
		ID:              uuid.New(),
		EmployeeID:      employeeID,
		ProductID:       productID,
		Quantity:        quantity,
		PriceAtAddCents: priceAtAddCents,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// SnapshotCents returns this line's total at the price recorded when it was
// added
func (c *CartItem) SnapshotCents() int64 {
	return int64(c.Quantity) * c.PriceAtAddCents
}

// ProductInfo is the slice of the catalog the order context needs. The
// catalog itself is an external collaborator.
type ProductInfo struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
	Active     bool
}
