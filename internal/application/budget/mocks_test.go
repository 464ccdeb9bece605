package budget

import (
	"context"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/budget"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockEmployeeRepository is a mock implementation of EmployeeRepository
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

// MockBudgetRuleRepository is a mock implementation of BudgetRuleRepository
type MockBudgetRuleRepository struct {
	mock.Mock
}

func (m *MockBudgetRuleRepository) FindAll(ctx context.Context) ([]budget.BudgetRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]budget.BudgetRule), args.Error(1)
}

func (m *MockBudgetRuleRepository) Save(ctx context.Context, rule *budget.BudgetRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockBudgetRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOverrideRepository is a mock implementation of OverrideRepository
type MockOverrideRepository struct {
	mock.Mock
}

func (m *MockOverrideRepository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]budget.UserBudgetOverride, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]budget.UserBudgetOverride), args.Error(1)
}

func (m *MockOverrideRepository) Save(ctx context.Context, override *budget.UserBudgetOverride) error {
	args := m.Called(ctx, override)
	return args.Error(0)
}

func (m *MockOverrideRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAdjustmentRepository is a mock implementation of AdjustmentRepository
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

// MockSpentReader is a mock implementation of SpentReader
type MockSpentReader struct {
	mock.Mock
}

func (m *MockSpentReader) SpentCents(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(int64), args.Error(1)
}
