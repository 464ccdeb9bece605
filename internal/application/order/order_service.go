package order

import (
	"context"
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/budget"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/order"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService converts carts into orders under the budget gate and drives
// the order lifecycle.
type OrderService struct {
	scope          TransactionScope
	orderRepo      order.Repository
	catalog        order.CatalogGateway
	eventPublisher shared.EventPublisher
	audit          shared.AuditSink
	logger         *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(scope TransactionScope, orderRepo order.Repository, catalog order.CatalogGateway, logger *zap.Logger) *OrderService {
	return &OrderService{
		scope:     scope,
		orderRepo: orderRepo,
		catalog:   catalog,
		audit:     shared.NopAuditSink{},
		logger:    logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetAuditSink sets the audit sink for state-changing operations
func (s *OrderService) SetAuditSink(sink shared.AuditSink) {
	s.audit = sink
}

// ErrPriceChanged is returned when a cart line's catalog price moved since
// it was added and the caller did not confirm the change.
var ErrPriceChanged = shared.NewDomainError("PRICE_CHANGED", "Product prices changed since they were added to the cart; confirm to proceed")

// CreateFromCart creates a pending order from the employee's cart. The
// order is priced at live catalog prices; a price drift against the cart
// snapshot must be explicitly confirmed. Budget is checked under an
// exclusive employee row lock, so two concurrent creations against the same
// budget serialize and at most one can overdraw.
func (s *OrderService) CreateFromCart(ctx context.Context, employeeID uuid.UUID, req CreateOrderRequest) (*OrderResponse, error) {
	var created *order.Order

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		lines, err := repos.CartRepo().FindByEmployee(ctx, employeeID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return shared.NewDomainError("EMPTY_CART", "Cannot create an order from an empty cart")
		}

		ids := make([]uuid.UUID, 0, len(lines))
		for _, line := range lines {
			ids = append(ids, line.ProductID)
		}
		products, err := s.catalog.GetProducts(ctx, ids)
		if err != nil {
			return err
		}

		var snapshotTotal, liveTotal int64
		specs := make([]order.ItemSpec, 0, len(lines))
		for _, line := range lines {
			product, ok := products[line.ProductID]
			if !ok || !product.Active {
				return shared.NewDomainError("PRODUCT_UNAVAILABLE", "Cart contains a product that is no longer available")
			}
			snapshotTotal += line.SnapshotCents()
			liveTotal += int64(line.Quantity) * product.PriceCents
			specs = append(specs, order.ItemSpec{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				PriceCents:  product.PriceCents,
			})
		}
		if snapshotTotal != liveTotal && !req.ConfirmPriceChanges {
			return ErrPriceChanged
		}

		// Budget gate: row lock plus live sums, never the cache
		employee, err := repos.EmployeeRepo().FindByIDForUpdate(ctx, employeeID)
		if err != nil {
			return err
		}
		liveSpent, err := repos.OrderRepo().SumBudgetRelevantByEmployee(ctx, employeeID)
		if err != nil {
			return err
		}
		liveAdjustments, err := repos.AdjustmentRepo().SumByEmployee(ctx, employeeID)
		if err != nil {
			return err
		}
		if !employee.CanReserve(liveTotal, liveSpent, liveAdjustments) {
			return shared.ErrInsufficientBudget
		}

		newOrder, err := order.NewOrder(employeeID, req.DeliveryNote, specs)
		if err != nil {
			return err
		}
		if err := repos.OrderRepo().Save(ctx, newOrder); err != nil {
			return err
		}
		if err := repos.CartRepo().ClearForEmployee(ctx, employeeID); err != nil {
			return err
		}

		employee.RefreshCache(liveSpent+newOrder.TotalCents, liveAdjustments, time.Now())
		if err := repos.EmployeeRepo().Save(ctx, employee); err != nil {
			return err
		}

		created = newOrder
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, created)
	if err := s.audit.Record(ctx, employeeID, "order.create", "Order", created.ID, map[string]any{
		"total_cents": created.TotalCents,
		"items":       len(created.Items),
	}); err != nil {
		s.logger.Warn("audit record failed", zap.Error(err))
	}

	s.logger.Info("order created",
		zap.String("order_id", created.ID.String()),
		zap.String("employee_id", employeeID.String()),
		zap.Int64("total_cents", created.TotalCents))

	response := ToOrderResponse(created)
	return &response, nil
}

// Transition moves an order through its state machine under a row lock and
// refreshes the employee's budget cache, since status changes can move the
// order in or out of the spend sum.
func (s *OrderService) Transition(ctx context.Context, orderID uuid.UUID, actorID uuid.UUID, req TransitionRequest) (*OrderResponse, error) {
	var updated *order.Order
	var fromStatus order.Status

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		o, err := repos.OrderRepo().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		fromStatus = o.Status
		if err := o.TransitionTo(req.Status, actorID, req.Note); err != nil {
			return err
		}
		if err := repos.OrderRepo().Save(ctx, o); err != nil {
			return err
		}

		employee, err := repos.EmployeeRepo().FindByID(ctx, o.EmployeeID)
		if err != nil {
			return err
		}
		liveSpent, err := repos.OrderRepo().SumBudgetRelevantByEmployee(ctx, o.EmployeeID)
		if err != nil {
			return err
		}
		liveAdjustments, err := repos.AdjustmentRepo().SumByEmployee(ctx, o.EmployeeID)
		if err != nil {
			return err
		}
		employee.RefreshCache(liveSpent, liveAdjustments, time.Now())
		if err := repos.EmployeeRepo().Save(ctx, employee); err != nil {
			return err
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, updated)
	if err := s.audit.Record(ctx, actorID, "order.transition", "Order", orderID, map[string]any{
		"from": string(fromStatus),
		"to":   string(req.Status),
	}); err != nil {
		s.logger.Warn("audit record failed", zap.Error(err))
	}

	response := ToOrderResponse(updated)
	return &response, nil
}

// GetByID returns one order
func (s *OrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(o)
	return &response, nil
}

// ListByEmployee returns an employee's orders, newest first
func (s *OrderService) ListByEmployee(ctx context.Context, employeeID uuid.UUID, filter shared.Filter) ([]OrderResponse, int64, error) {
	orders, total, err := s.orderRepo.FindByEmployee(ctx, employeeID, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, ToOrderResponse(&orders[i]))
	}
	return out, total, nil
}

func (s *OrderService) publishEvents(ctx context.Context, o *order.Order) {
	if s.eventPublisher == nil {
		return
	}
	events := o.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("failed to publish order events",
			zap.String("order_id", o.ID.String()),
			zap.Error(err))
	}
	o.ClearDomainEvents()
}

// SpentReader adapts the order repository to the budget context's live
// spend interface.
type SpentReader struct {
	repo order.Repository
}

// NewSpentReader creates a SpentReader over the order repository
func NewSpentReader(repo order.Repository) *SpentReader {
	return &SpentReader{repo: repo}
}

// SpentCents returns the employee's live spend sum
func (r *SpentReader) SpentCents(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	return r.repo.SumBudgetRelevantByEmployee(ctx, employeeID)
}

var _ budget.SpentReader = (*SpentReader)(nil)
