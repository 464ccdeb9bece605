package persistence

import (
	"context"
	"errors"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/budget"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBudgetAdjustmentRepository implements budget.AdjustmentRepository
// using GORM
type GormBudgetAdjustmentRepository struct {
	db *gorm.DB
}

// NewGormBudgetAdjustmentRepository creates a new GormBudgetAdjustmentRepository
func NewGormBudgetAdjustmentRepository(db *gorm.DB) *GormBudgetAdjustmentRepository {
	return &GormBudgetAdjustmentRepository{db: db}
}

// FindByID finds an adjustment by ID
func (r *GormBudgetAdjustmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*budget.BudgetAdjustment, error) {
	var model models.BudgetAdjustmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmployee returns the employee's adjustments, newest first
func (r *GormBudgetAdjustmentRepository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]budget.BudgetAdjustment, error) {
	var rows []models.BudgetAdjustmentModel
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	adjustments := make([]budget.BudgetAdjustment, len(rows))
	for i := range rows {
		adjustments[i] = *rows[i].ToDomain()
	}
	return adjustments, nil
}

// FindByHibobEntryID finds the adjustment carrying the given external entry id
func (r *GormBudgetAdjustmentRepository) FindByHibobEntryID(ctx context.Context, hibobEntryID string) (*budget.BudgetAdjustment, error) {
	var model models.BudgetAdjustmentModel
	if err := r.db.WithContext(ctx).
		First(&model, "hibob_entry_id = ?", hibobEntryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// SumByEmployee returns the live signed sum of all adjustments
func (r *GormBudgetAdjustmentRepository) SumByEmployee(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	var sum int64
	if err := r.db.WithContext(ctx).
		Model(&models.BudgetAdjustmentModel{}).
		Where("employee_id = ?", employeeID).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&sum).Error; err != nil {
		return 0, err
	}
	return sum, nil
}

// Save persists an adjustment
func (r *GormBudgetAdjustmentRepository) Save(ctx context.Context, adjustment *budget.BudgetAdjustment) error {
	model := models.BudgetAdjustmentModelFromDomain(adjustment)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes an adjustment
func (r *GormBudgetAdjustmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.BudgetAdjustmentModel{}, "id = ?", id).Error
}

var _ budget.AdjustmentRepository = (*GormBudgetAdjustmentRepository)(nil)
