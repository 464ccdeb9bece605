package order

import (
	"context"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/budget"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/order"
)

// TransactionScope provides transactional access to the repositories that
// participate in order creation and lifecycle changes. All repository
// operations inside Execute share one database transaction; the employee
// row lock taken by the budget gate is held until that transaction commits.
type TransactionScope interface {
	// Execute runs fn within a database transaction. An error from fn
	// rolls the transaction back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to repositories scoped to the
// current transaction.
type TransactionalRepositories interface {
	OrderRepo() order.Repository
	CartRepo() order.CartRepository
	EmployeeRepo() budget.EmployeeRepository
	AdjustmentRepo() budget.AdjustmentRepository
}

// NoOpTransactionScope runs functions without a real transaction. Used in
// tests.
type NoOpTransactionScope struct {
	orderRepo      order.Repository
	cartRepo       order.CartRepository
	employeeRepo   budget.EmployeeRepository
	adjustmentRepo budget.AdjustmentRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given
// repositories
func NewNoOpTransactionScope(
	orderRepo order.Repository,
	cartRepo order.CartRepository,
	employeeRepo budget.EmployeeRepository,
	adjustmentRepo budget.AdjustmentRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orderRepo:      orderRepo,
		cartRepo:       cartRepo,
		employeeRepo:   employeeRepo,
		adjustmentRepo: adjustmentRepo,
	}
}

// Execute runs the function without transaction semantics
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// OrderRepo returns the order repository
func (s *NoOpTransactionScope) OrderRepo() order.Repository {
	return s.orderRepo
}

// CartRepo returns the cart repository
func (s *NoOpTransactionScope) CartRepo() order.CartRepository {
	return s.cartRepo
}

// EmployeeRepo returns the employee repository
func (s *NoOpTransactionScope) EmployeeRepo() budget.EmployeeRepository {
	return s.employeeRepo
}

// AdjustmentRepo returns the adjustment repository
func (s *NoOpTransactionScope) AdjustmentRepo() budget.AdjustmentRepository {
	return s.adjustmentRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
