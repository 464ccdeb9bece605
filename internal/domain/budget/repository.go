package budget

import (
	"context"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// EmployeeRepository defines persistence for employees
type EmployeeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	// FindByIDForUpdate loads the employee under an exclusive row lock.
	// Must be called inside a transaction; the lock is held until commit.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Employee, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Employee, int64, error)
	// FindHibobLinked returns active employees with an external HR identity
	FindHibobLinked(ctx context.Context) ([]Employee, error)
	Save(ctx context.Context, employee *Employee) error
}

// BudgetRuleRepository defines persistence for global accrual rules
type BudgetRuleRepository interface {
	FindAll(ctx context.Context) ([]BudgetRule, error)
	Save(ctx context.Context, rule *BudgetRule) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OverrideRepository defines persistence for per-employee overrides
type OverrideRepository interface {
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]UserBudgetOverride, error)
	Save(ctx context.Context, override *UserBudgetOverride) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AdjustmentRepository defines persistence for budget adjustments
type AdjustmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BudgetAdjustment, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]BudgetAdjustment, error)
	// FindByHibobEntryID returns shared.ErrNotFound when no adjustment
	// carries the given external entry id
	FindByHibobEntryID(ctx context.Context, hibobEntryID string) (*BudgetAdjustment, error)
	// SumByEmployee returns the live signed sum of all adjustments
	SumByEmployee(ctx context.Context, employeeID uuid.UUID) (int64, error)
	Save(ctx context.Context, adjustment *BudgetAdjustment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SpentReader exposes the live spend sum owned by the order context.
// Spend counts orders in pending, ordered and delivered status.
type SpentReader interface {
	SpentCents(ctx context.Context, employeeID uuid.UUID) (int64, error)
}
