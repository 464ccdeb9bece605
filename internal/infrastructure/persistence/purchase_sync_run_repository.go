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

// GormPurchaseSyncRunRepository implements reconciliation.SyncRunRepository
// using GORM
type GormPurchaseSyncRunRepository struct {
	db *gorm.DB
}

// NewGormPurchaseSyncRunRepository creates a new GormPurchaseSyncRunRepository
func NewGormPurchaseSyncRunRepository(db *gorm.DB) *GormPurchaseSyncRunRepository {
	return &GormPurchaseSyncRunRepository{db: db}
}

// FindByID finds a run by ID
func (r *GormPurchaseSyncRunRepository) FindByID(ctx context.Context, id uuid.UUID) (*reconciliation.PurchaseSyncRun, error) {
	var model models.PurchaseSyncRunModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindRecent returns the most recently started runs
func (r *GormPurchaseSyncRunRepository) FindRecent(ctx context.Context, limit int) ([]reconciliation.PurchaseSyncRun, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows []models.PurchaseSyncRunModel
	if err := r.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	runs := make([]reconciliation.PurchaseSyncRun, len(rows))
	for i := range rows {
		runs[i] = *rows[i].ToDomain()
	}
	return runs, nil
}

// Save persists a run log row
func (r *GormPurchaseSyncRunRepository) Save(ctx context.Context, run *reconciliation.PurchaseSyncRun) error {
	model := models.PurchaseSyncRunModelFromDomain(run)
	return r.db.WithContext(ctx).Save(model).Error
}

var _ reconciliation.SyncRunRepository = (*GormPurchaseSyncRunRepository)(nil)
