package persistence

import (
	"context"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/budget"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBudgetRuleRepository implements budget.BudgetRuleRepository using GORM
type GormBudgetRuleRepository struct {
	db *gorm.DB
}

// NewGormBudgetRuleRepository creates a new GormBudgetRuleRepository
func NewGormBudgetRuleRepository(db *gorm.DB) *GormBudgetRuleRepository {
	return &GormBudgetRuleRepository{db: db}
}

// FindAll returns all global accrual rules ordered by effective date
func (r *GormBudgetRuleRepository) FindAll(ctx context.Context) ([]budget.BudgetRule, error) {
	var rows []models.BudgetRuleModel
	if err := r.db.WithContext(ctx).
		Order("effective_from ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	rules := make([]budget.BudgetRule, len(rows))
	for i := range rows {
		rules[i] = *rows[i].ToDomain()
	}
	return rules, nil
}

// Save persists a budget rule
func (r *GormBudgetRuleRepository) Save(ctx context.Context, rule *budget.BudgetRule) error {
	model := models.BudgetRuleModelFromDomain(rule)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a budget rule
func (r *GormBudgetRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.BudgetRuleModel{}, "id = ?", id).Error
}

var _ budget.BudgetRuleRepository = (*GormBudgetRuleRepository)(nil)

// GormOverrideRepository implements budget.OverrideRepository using GORM
type GormOverrideRepository struct {
	db *gorm.DB
}

// NewGormOverrideRepository creates a new GormOverrideRepository
func NewGormOverrideRepository(db *gorm.DB) *GormOverrideRepository {
	return &GormOverrideRepository{db: db}
}

// FindByEmployee returns the employee's overrides ordered by window start
func (r *GormOverrideRepository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]budget.UserBudgetOverride, error) {
	var rows []models.UserBudgetOverrideModel
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("effective_from ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	overrides := make([]budget.UserBudgetOverride, len(rows))
	for i := range rows {
		overrides[i] = *rows[i].ToDomain()
	}
	return overrides, nil
}

// Save persists an override
func (r *GormOverrideRepository) Save(ctx context.Context, override *budget.UserBudgetOverride) error {
	model := models.UserBudgetOverrideModelFromDomain(override)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes an override
func (r *GormOverrideRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.UserBudgetOverrideModel{}, "id = ?", id).Error
}

var _ budget.OverrideRepository = (*GormOverrideRepository)(nil)
