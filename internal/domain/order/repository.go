package order

import (
	"context"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines persistence for orders
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// FindByIDForUpdate loads the order and its items under an exclusive
	// row lock. Must be called inside a transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID, filter shared.Filter) ([]Order, int64, error)
	// FindBudgetRelevantByEmployee returns the employee's orders in
	// pending, ordered or delivered status
	FindBudgetRelevantByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Order, error)
	// SumBudgetRelevantByEmployee returns the live spend sum over orders
	// in pending, ordered or delivered status
	SumBudgetRelevantByEmployee(ctx context.Context, employeeID uuid.UUID) (int64, error)
	Save(ctx context.Context, order *Order) error
	// SaveItem persists a single item's state. Push-back sync uses this to
	// checkpoint each line immediately after its external push.
	SaveItem(ctx context.Context, item *Item) error
}

// CartRepository defines persistence for cart lines
type CartRepository interface {
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]CartItem, error)
	Save(ctx context.Context, item *CartItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ClearForEmployee removes every cart line of the employee
	ClearForEmployee(ctx context.Context, employeeID uuid.UUID) error
}

// CatalogGateway resolves current product data for cart lines. The product
// catalog is an external collaborator; this is the only view of it the order
// context depends on.
type CatalogGateway interface {
	// GetProducts returns info for each requested product id; missing ids
	// are absent from the map
	GetProducts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]ProductInfo, error)
}
