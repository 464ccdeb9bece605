package persistence

import (
	"context"

	apporder "github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/application/order"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/budget"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/order"
	"gorm.io/gorm"
)

// GormTransactionScope implements the order context's TransactionScope using
// GORM transactions. Row locks taken inside the scope are held until commit.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction. The
// transaction is rolled back if the function returns an error.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apporder.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides repositories scoped to one
// transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// OrderRepo returns the order repository scoped to the current transaction
func (r *gormTransactionalRepositories) OrderRepo() order.Repository {
	return NewGormOrderRepository(r.tx)
}

// CartRepo returns the cart repository scoped to the current transaction
func (r *gormTransactionalRepositories) CartRepo() order.CartRepository {
	return NewGormCartRepository(r.tx)
}

// EmployeeRepo returns the employee repository scoped to the current transaction
func (r *gormTransactionalRepositories) EmployeeRepo() budget.EmployeeRepository {
	return NewGormEmployeeRepository(r.tx)
}

// AdjustmentRepo returns the adjustment repository scoped to the current transaction
func (r *gormTransactionalRepositories) AdjustmentRepo() budget.AdjustmentRepository {
	return NewGormBudgetAdjustmentRepository(r.tx)
}

var _ apporder.TransactionScope = (*GormTransactionScope)(nil)

var _ apporder.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
