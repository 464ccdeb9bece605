package hrsync

import (
	"context"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/budget"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/hibob"
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

// MockHibobClient is a mock implementation of hibob.Client
type MockHibobClient struct {
	mock.Mock
}

func (m *MockHibobClient) GetTableEntries(ctx context.Context, employeeHibobID, tableID string) ([]hibob.TableEntry, error) {
	args := m.Called(ctx, employeeHibobID, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hibob.TableEntry), args.Error(1)
}

func (m *MockHibobClient) CreateTableEntry(ctx context.Context, employeeHibobID, tableID string, values map[string]any) error {
	args := m.Called(ctx, employeeHibobID, tableID, values)
	return args.Error(0)
}

func (m *MockHibobClient) DeleteTableEntry(ctx context.Context, employeeHibobID, tableID, entryID string) error {
	args := m.Called(ctx, employeeHibobID, tableID, entryID)
	return args.Error(0)
}
