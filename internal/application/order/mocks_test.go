package order

import (
	"context"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/budget"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/order"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of order.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByEmployee(ctx context.Context, employeeID uuid.UUID, filter shared.Filter) ([]order.Order, int64, error) {
	args := m.Called(ctx, employeeID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]order.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) FindBudgetRelevantByEmployee(ctx context.Context, employeeID uuid.UUID) ([]order.Order, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) SumBudgetRelevantByEmployee(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) SaveItem(ctx context.Context, item *order.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// MockCartRepository is a mock implementation of order.CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]order.CartItem, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.CartItem), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, item *order.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartRepository) ClearForEmployee(ctx context.Context, employeeID uuid.UUID) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

// MockCatalogGateway is a mock implementation of order.CatalogGateway
type MockCatalogGateway struct {
	mock.Mock
}

func (m *MockCatalogGateway) GetProducts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]order.ProductInfo, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]order.ProductInfo), args.Error(1)
}

// MockEmployeeRepository is a mock implementation of budget.EmployeeRepository
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*budget.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*budget.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]budget.Employee, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]budget.Employee), args.Get(1).(int64), args.Error(2)
}

func (m *MockEmployeeRepository) FindHibobLinked(ctx context.Context) ([]budget.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]budget.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Save(ctx context.Context, employee *budget.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

// MockAdjustmentRepository is a mock implementation of budget.AdjustmentRepository
type MockAdjustmentRepository struct {
	mock.Mock
}

func (m *MockAdjustmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*budget.BudgetAdjustment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.BudgetAdjustment), args.Error(1)
}

func (m *MockAdjustmentRepository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]budget.BudgetAdjustment, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]budget.BudgetAdjustment), args.Error(1)
}

func (m *MockAdjustmentRepository) FindByHibobEntryID(ctx context.Context, hibobEntryID string) (*budget.BudgetAdjustment, error) {
	args := m.Called(ctx, hibobEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.BudgetAdjustment), args.Error(1)
}

func (m *MockAdjustmentRepository) SumByEmployee(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdjustmentRepository) Save(ctx context.Context, adjustment *budget.BudgetAdjustment) error {
	args := m.Called(ctx, adjustment)
	return args.Error(0)
}

func (m *MockAdjustmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
