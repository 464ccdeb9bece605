package order

import (
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/order"
	"github.com/google/uuid"
)

// CreateOrderRequest converts the employee's cart into an order
type CreateOrderRequest struct {
	DeliveryNote        string `json:"delivery_note"`
	ConfirmPriceChanges bool   `json:"confirm_price_changes"`
}

// TransitionRequest moves an order to a new status
type TransitionRequest struct {
	Status order.Status `json:"status" binding:"required"`
	Note   string       `json:"note"`
}

// ItemResponse is one order line
type ItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	PriceCents  int64     `json:"price_cents"`
	AmountCents int64     `json:"amount_cents"`
	HibobSynced bool      `json:"hibob_synced"`
}

// OrderResponse is the API shape of an order
type OrderResponse struct {
	ID            uuid.UUID      `json:"id"`
	EmployeeID    uuid.UUID      `json:"employee_id"`
	Items         []ItemResponse `json:"items"`
	TotalCents    int64          `json:"total_cents"`
	DeliveryNote  string         `json:"delivery_note,omitempty"`
	Status        order.Status   `json:"status"`
	ReviewNote    string         `json:"review_note,omitempty"`
	ReviewedBy    *uuid.UUID     `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time     `json:"reviewed_at,omitempty"`
	HibobSyncedAt *time.Time     `json:"hibob_synced_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// CartLineResponse is one cart line with both the snapshot and the live
// catalog price, so clients can surface price changes before checkout
type CartLineResponse struct {
	ID                uuid.UUID `json:"id"`
	ProductID         uuid.UUID `json:"product_id"`
	ProductName       string    `json:"product_name"`
	Quantity          int       `json:"quantity"`
	PriceAtAddCents   int64     `json:"price_at_add_cents"`
	CurrentPriceCents int64     `json:"current_price_cents"`
	PriceChanged      bool      `json:"price_changed"`
}

// AddCartItemRequest puts a product into the employee's cart
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// ToOrderResponse maps an order to its API shape
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(o.Items))
	for i := range o.Items {
		item := &o.Items[i]
		items = append(items, ItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			PriceCents:  item.PriceCents,
			AmountCents: item.AmountCents(),
			HibobSynced: item.HibobSynced,
		})
	}
	return OrderResponse{
		ID:            o.ID,
		EmployeeID:    o.EmployeeID,
		Items:         items,
		TotalCents:    o.TotalCents,
		DeliveryNote:  o.DeliveryNote,
		Status:        o.Status,
		ReviewNote:    o.ReviewNote,
		ReviewedBy:    o.ReviewedBy,
		ReviewedAt:    o.ReviewedAt,
		HibobSyncedAt: o.HibobSyncedAt,
		CreatedAt:     o.CreatedAt,
	}
}
