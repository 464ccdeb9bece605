package persistence

import (
	"context"
	"errors"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/order"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// budgetRelevantStatuses are the order states that count against the budget
var budgetRelevantStatuses = []order.Status{
	order.StatusPending,
	order.StatusOrdered,
	order.StatusDelivered,
}

// OrderSortFields contains allowed sort fields for orders
var OrderSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"status":      true,
	"total_cents": true,
}

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order with its items by ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds an order with its items under an exclusive row
// lock. Must run inside a transaction. Only the order row is locked; items
// never change outside their order's lock.
func (r *GormOrderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	var items []models.OrderItemModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", id).
		Find(&items).Error; err != nil {
		return nil, err
	}
	model.Items = items
	return model.ToDomain(), nil
}

// FindByEmployee finds the employee's orders with pagination
func (r *GormOrderRepository) FindByEmployee(ctx context.Context, employeeID uuid.UUID, filter shared.Filter) ([]order.Order, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("employee_id = ?", employeeID)

	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, OrderSortFields, "created_at")
	query = query.Preload("Items").
		Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var rows []models.OrderModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]order.Order, len(rows))
	for i := range rows {
		orders[i] = *rows[i].ToDomain()
	}
	return orders, total, nil
}

// FindBudgetRelevantByEmployee returns the employee's orders in pending,
// ordered or delivered status
func (r *GormOrderRepository) FindBudgetRelevantByEmployee(ctx context.Context, employeeID uuid.UUID) ([]order.Order, error) {
	var rows []models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("employee_id = ? AND status IN ?", employeeID, budgetRelevantStatuses).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]order.Order, len(rows))
	for i := range rows {
		orders[i] = *rows[i].ToDomain()
	}
	return orders, nil
}

// SumBudgetRelevantByEmployee returns the live spend sum over orders in
// pending, ordered or delivered status
func (r *GormOrderRepository) SumBudgetRelevantByEmployee(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	var sum int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("employee_id = ? AND status IN ?", employeeID, budgetRelevantStatuses).
		Select("COALESCE(SUM(total_cents), 0)").
		Scan(&sum).Error; err != nil {
		return 0, err
	}
	return sum, nil
}

// Save persists an order and reconciles its item rows
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.OrderModelFromDomain(o)
		if err := tx.Omit("Items").Save(model).Error; err != nil {
			return err
		}

		currentItemIDs := make([]uuid.UUID, len(o.Items))
		for i, item := range o.Items {
			currentItemIDs[i] = item.ID
		}

		query := tx.Where("order_id = ?", o.ID)
		if len(currentItemIDs) > 0 {
			query = query.Where("id NOT IN ?", currentItemIDs)
		}
		if err := query.Delete(&models.OrderItemModel{}).Error; err != nil {
			return err
		}

		for i := range o.Items {
			o.Items[i].OrderID = o.ID
			if err := tx.Save(models.OrderItemModelFromDomain(&o.Items[i])).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveItem persists a single item row. Push-back sync checkpoints each line
// with this immediately after its external push.
func (r *GormOrderRepository) SaveItem(ctx context.Context, item *order.Item) error {
	return r.db.WithContext(ctx).Save(models.OrderItemModelFromDomain(item)).Error
}

var _ order.Repository = (*GormOrderRepository)(nil)
