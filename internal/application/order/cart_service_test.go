package order

import (
	"context"
	"testing"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/order"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCartService_AddItem(t *testing.T) {
	carts := new(MockCartRepository)
	catalog := new(MockCatalogGateway)
	svc := NewCartService(carts, catalog, zap.NewNop())

	employeeID := uuid.New()
	productID := uuid.New()
	catalog.On("GetProducts", mock.Anything, []uuid.UUID{productID}).
		Return(map[uuid.UUID]order.ProductInfo{
			productID: {ID: productID, Name: "Webcam", PriceCents: 12000, Active: true},
		}, nil)
	carts.On("Save", mock.Anything, mock.AnythingOfType("*order.CartItem")).Return(nil)

	line, err := svc.AddItem(context.Background(), employeeID, AddCartItemRequest{ProductID: productID, Quantity: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(12000), line.PriceAtAddCents)
	assert.Equal(t, "Webcam", line.ProductName)
	carts.AssertExpectations(t)
}

func TestCartService_AddItem_Inactive(t *testing.T) {
	carts := new(MockCartRepository)
	catalog := new(MockCatalogGateway)
	svc := NewCartService(carts, catalog, zap.NewNop())

	productID := uuid.New()
	catalog.On("GetProducts", mock.Anything, []uuid.UUID{productID}).
		Return(map[uuid.UUID]order.ProductInfo{
			productID: {ID: productID, Name: "Webcam", PriceCents: 12000, Active: false},
		}, nil)

	_, err := svc.AddItem(context.Background(), uuid.New(), AddCartItemRequest{ProductID: productID, Quantity: 1})

	assert.Error(t, err)
	carts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCartService_GetCart_FlagsPriceChanges(t *testing.T) {
	carts := new(MockCartRepository)
	catalog := new(MockCatalogGateway)
	svc := NewCartService(carts, catalog, zap.NewNop())

	employeeID := uuid.New()
	productID := uuid.New()
	carts.On("FindByEmployee", mock.Anything, employeeID).
		Return([]order.CartItem{cartLine(t, employeeID, productID, 1, 10000)}, nil)
	catalog.On("GetProducts", mock.Anything, []uuid.UUID{productID}).
		Return(map[uuid.UUID]order.ProductInfo{
			productID: {ID: productID, Name: "Webcam", PriceCents: 11000, Active: true},
		}, nil)

	lines, err := svc.GetCart(context.Background(), employeeID)

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].PriceChanged)
	assert.Equal(t, int64(10000), lines[0].PriceAtAddCents)
	assert.Equal(t, int64(11000), lines[0].CurrentPriceCents)
}
