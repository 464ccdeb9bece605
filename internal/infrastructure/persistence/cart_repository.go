package persistence

import (
	"context"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/order"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCartRepository implements order.CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByEmployee returns the employee's cart lines in insertion order
func (r *GormCartRepository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]order.CartItem, error) {
	var rows []models.CartItemModel
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]order.CartItem, len(rows))
	for i := range rows {
		items[i] = *rows[i].ToDomain()
	}
	return items, nil
}

// Save persists a cart line
func (r *GormCartRepository) Save(ctx context.Context, item *order.CartItem) error {
	return r.db.WithContext(ctx).Save(models.CartItemModelFromDomain(item)).Error
}

// Delete removes a cart line
func (r *GormCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.CartItemModel{}, "id = ?", id).Error
}

// ClearForEmployee removes every cart line of the employee
func (r *GormCartRepository) ClearForEmployee(ctx context.Context, employeeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.CartItemModel{}, "employee_id = ?", employeeID).Error
}

var _ order.CartRepository = (*GormCartRepository)(nil)
