package persistence

import (
	"context"
	"errors"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/budget"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EmployeeSortFields contains allowed sort fields for employees
var EmployeeSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"full_name":  true,
	"email":      true,
	"start_date": true,
}

// GormEmployeeRepository implements budget.EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindByID finds an employee by ID
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*budget.Employee, error) {
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds an employee by ID under an exclusive row lock.
// Must run inside a transaction; the lock is held until commit.
func (r *GormEmployeeRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*budget.Employee, error) {
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all employees with filtering and pagination
func (r *GormEmployeeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]budget.Employee, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.EmployeeModel{})

	for key, value := range filter.Filters {
		switch key {
		case "active":
			query = query.Where("active = ?", value)
		case "hibob_linked":
			if value == true {
				query = query.Where("hibob_id IS NOT NULL AND hibob_id <> ''")
			}
		case "search":
			if s, ok := value.(string); ok && s != "" {
				pattern := "%" + s + "%"
				query = query.Where("full_name ILIKE ? OR email ILIKE ?", pattern, pattern)
			}
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, EmployeeSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var rows []models.EmployeeModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	employees := make([]budget.Employee, len(rows))
	for i := range rows {
		employees[i] = *rows[i].ToDomain()
	}
	return employees, total, nil
}

// FindHibobLinked finds active employees with an external HR identity
func (r *GormEmployeeRepository) FindHibobLinked(ctx context.Context) ([]budget.Employee, error) {
	var rows []models.EmployeeModel
	if err := r.db.WithContext(ctx).
		Where("active = ? AND hibob_id IS NOT NULL AND hibob_id <> ''", true).
		Order("full_name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	employees := make([]budget.Employee, len(rows))
	for i := range rows {
		employees[i] = *rows[i].ToDomain()
	}
	return employees, nil
}

// Save persists an employee
func (r *GormEmployeeRepository) Save(ctx context.Context, employee *budget.Employee) error {
	model := models.EmployeeModelFromDomain(employee)
	return r.db.WithContext(ctx).Save(model).Error
}

var _ budget.EmployeeRepository = (*GormEmployeeRepository)(nil)
