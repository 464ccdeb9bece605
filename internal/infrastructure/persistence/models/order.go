package models

import (
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/order"
	"github.com/google/uuid"
)

// OrderModel is the persistence model for the Order aggregate root.
type OrderModel struct {
	AggregateModel
	EmployeeID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	Items         []OrderItemModel `gorm:"foreignKey:OrderID;references:ID"`
	TotalCents    int64            `gorm:"not null"`
	DeliveryNote  string           `gorm:"type:text"`
	Status        order.Status     `gorm:"type:varchar(20);not null;index"`
	ReviewNote    string           `gorm:"type:text"`
	ReviewedBy    *uuid.UUID       `gorm:"type:uuid"`
	ReviewedAt    *time.Time
	HibobSyncedAt *time.Time
	HibobSyncedBy *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order
func (m *OrderModel) ToDomain() *order.Order {
	o := &order.Order{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		EmployeeID:        m.EmployeeID,
		TotalCents:        m.TotalCents,
		DeliveryNote:      m.DeliveryNote,
		Status:            m.Status,
		ReviewNote:        m.ReviewNote,
		ReviewedBy:        m.ReviewedBy,
		ReviewedAt:        m.ReviewedAt,
		HibobSyncedAt:     m.HibobSyncedAt,
		HibobSyncedBy:     m.HibobSyncedBy,
		Items:             make([]order.Item, len(m.Items)),
	}
	for i, item := range m.Items {
		o.Items[i] = *item.ToDomain()
	}
	return o
}

// FromDomain populates the persistence model from a domain Order
func (m *OrderModel) FromDomain(o *order.Order) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.EmployeeID = o.EmployeeID
	m.TotalCents = o.TotalCents
	m.DeliveryNote = o.DeliveryNote
	m.Status = o.Status
	m.ReviewNote = o.ReviewNote
	m.ReviewedBy = o.ReviewedBy
	m.ReviewedAt = o.ReviewedAt
	m.HibobSyncedAt = o.HibobSyncedAt
	m.HibobSyncedBy = o.HibobSyncedBy
	m.Items = make([]OrderItemModel, len(o.Items))
	for i := range o.Items {
		m.Items[i] = *OrderItemModelFromDomain(&o.Items[i])
	}
}

// OrderModelFromDomain creates a persistence model from a domain Order
func OrderModelFromDomain(o *order.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// OrderItemModel is the persistence model for order line items.
type OrderItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"type:varchar(200);not null"`
	Quantity    int       `gorm:"not null"`
	PriceCents  int64     `gorm:"not null"`
	HibobSynced bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain order Item
func (m *OrderItemModel) ToDomain() *order.Item {
	return &order.Item{
		ID:          m.ID,
		OrderID:     m.OrderID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		PriceCents:  m.PriceCents,
		HibobSynced: m.HibobSynced,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// OrderItemModelFromDomain creates a persistence model from a domain order Item
func OrderItemModelFromDomain(i *order.Item) *OrderItemModel {
	return &OrderItemModel{
		ID:          i.ID,
		OrderID:     i.OrderID,
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		PriceCents:  i.PriceCents,
		HibobSynced: i.HibobSynced,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// CartItemModel is the persistence model for cart lines.
type CartItemModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	EmployeeID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity        int       `gorm:"not null"`
	PriceAtAddCents int64     `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CartItemModel) TableName() string {
	return "cart_items"
}

// ToDomain converts the persistence model to a domain CartItem
func (m *CartItemModel) ToDomain() *order.CartItem {
	return &order.CartItem{
		ID:              m.ID,
		EmployeeID:      m.EmployeeID,
		ProductID:       m.ProductID,
		Quantity:        m.Quantity,
		PriceAtAddCents: m.PriceAtAddCents,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// CartItemModelFromDomain creates a persistence model from a domain CartItem
func CartItemModelFromDomain(c *order.CartItem) *CartItemModel {
	return &CartItemModel{
		ID:              c.ID,
		EmployeeID:      c.EmployeeID,
		ProductID:       c.ProductID,
		Quantity:        c.Quantity,
		PriceAtAddCents: c.PriceAtAddCents,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ProductModel is the persistence model backing the catalog gateway. The
// shop catalog is maintained elsewhere; the core only reads name, price and
// active flag.
type ProductModel struct {
	BaseModel
	Name       string `gorm:"type:varchar(200);not null"`
	PriceCents int64  `gorm:"not null"`
	Active     bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToProductInfo converts the persistence model to the order context's view
func (m *ProductModel) ToProductInfo() order.ProductInfo {
	return order.ProductInfo{
		ID:         m.ID,
		Name:       m.Name,
		PriceCents: m.PriceCents,
		Active:     m.Active,
	}
}
