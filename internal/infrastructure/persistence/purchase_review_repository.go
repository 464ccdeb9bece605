package persistence

import (
	"context"
	"errors"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/reconciliation"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewSortFields contains allowed sort fields for purchase reviews
var ReviewSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"entry_date":   true,
	"amount_cents": true,
	"status":       true,
}

// GormPurchaseReviewRepository implements reconciliation.ReviewRepository
// using GORM
type GormPurchaseReviewRepository struct {
	db *gorm.DB
}

// NewGormPurchaseReviewRepository creates a new GormPurchaseReviewRepository
func NewGormPurchaseReviewRepository(db *gorm.DB) *GormPurchaseReviewRepository {
	return &GormPurchaseReviewRepository{db: db}
}

// FindByID finds a review by ID
func (r *GormPurchaseReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*reconciliation.PurchaseReview, error) {
	var model models.PurchaseReviewModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByHibobEntryID is the ingestion idempotency gate
func (r *GormPurchaseReviewRepository) ExistsByHibobEntryID(ctx context.Context, hibobEntryID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PurchaseReviewModel{}).
		Where("hibob_entry_id = ?", hibobEntryID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByStatus finds reviews in the given status with pagination
func (r *GormPurchaseReviewRepository) FindByStatus(ctx context.Context, status reconciliation.ReviewStatus, filter shared.Filter) ([]reconciliation.PurchaseReview, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.PurchaseReviewModel{}).
		Where("status = ?", status)
	return r.findPage(query, filter)
}

// CountByStatus counts reviews in the given status
func (r *GormPurchaseReviewRepository) CountByStatus(ctx context.Context, status reconciliation.ReviewStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PurchaseReviewModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByEmployee finds the employee's reviews with pagination
func (r *GormPurchaseReviewRepository) FindByEmployee(ctx context.Context, employeeID uuid.UUID, filter shared.Filter) ([]reconciliation.PurchaseReview, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.PurchaseReviewModel{}).
		Where("employee_id = ?", employeeID)
	return r.findPage(query, filter)
}

func (r *GormPurchaseReviewRepository) findPage(query *gorm.DB, filter shared.Filter) ([]reconciliation.PurchaseReview, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, ReviewSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var rows []models.PurchaseReviewModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	reviews := make([]reconciliation.PurchaseReview, len(rows))
	for i := range rows {
		reviews[i] = *rows[i].ToDomain()
	}
	return reviews, total, nil
}

// Save persists a review
func (r *GormPurchaseReviewRepository) Save(ctx context.Context, review *reconciliation.PurchaseReview) error {
	model := models.PurchaseReviewModelFromDomain(review)
	return r.db.WithContext(ctx).Save(model).Error
}

var _ reconciliation.ReviewRepository = (*GormPurchaseReviewRepository)(nil)
