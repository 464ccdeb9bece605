package order

import (
	"context"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/order"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartService manages the employee's cart. Cart lines snapshot the catalog
// price at add time; checkout compares that snapshot against live prices.
type CartService struct {
	cartRepo order.CartRepository
	catalog  order.CatalogGateway
	logger   *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(cartRepo order.CartRepository, catalog order.CatalogGateway, logger *zap.Logger) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		catalog:  catalog,
		logger:   logger,
	}
}

// AddItem puts a product into the cart at its current catalog price
func (s *CartService) AddItem(ctx context.Context, employeeID uuid.UUID, req AddCartItemRequest) (*CartLineResponse, error) {
	products, err := s.catalog.GetProducts(ctx, []uuid.UUID{req.ProductID})
	if err != nil {
		return nil, err
	}
	product, ok := products[req.ProductID]
	if !ok || !product.Active {
		return nil, shared.NewDomainError("PRODUCT_UNAVAILABLE", "Product is not available")
	}

	line, err := order.NewCartItem(employeeID, req.ProductID, req.Quantity, product.PriceCents)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, line); err != nil {
		return nil, err
	}

	return &CartLineResponse{
		ID:                line.ID,
		ProductID:         line.ProductID,
		ProductName:       product.Name,
		Quantity:          line.Quantity,
		PriceAtAddCents:   line.PriceAtAddCents,
		CurrentPriceCents: product.PriceCents,
	}, nil
}

// GetCart returns the cart with live prices alongside the add-time
// snapshots
func (s *CartService) GetCart(ctx context.Context, employeeID uuid.UUID) ([]CartLineResponse, error) {
	lines, err := s.cartRepo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return []CartLineResponse{}, nil
	}

	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	products, err := s.catalog.GetProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		resp := CartLineResponse{
			ID:              line.ID,
			ProductID:       line.ProductID,
			Quantity:        line.Quantity,
			PriceAtAddCents: line.PriceAtAddCents,
		}
		if product, ok := products[line.ProductID]; ok {
			resp.ProductName = product.Name
			resp.CurrentPriceCents = product.PriceCents
			resp.PriceChanged = product.PriceCents != line.PriceAtAddCents
		}
		out = append(out, resp)
	}
	return out, nil
}

// RemoveItem deletes one cart line
func (s *CartService) RemoveItem(ctx context.Context, lineID uuid.UUID) error {
	return s.cartRepo.Delete(ctx, lineID)
}

// Clear removes every line of the employee's cart
func (s *CartService) Clear(ctx context.Context, employeeID uuid.UUID) error {
	return s.cartRepo.ClearForEmployee(ctx, employeeID)
}
