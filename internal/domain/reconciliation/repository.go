package reconciliation

import (
	"context"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// ReviewRepository defines persistence for purchase reviews
type ReviewRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseReview, error)
	// ExistsByHibobEntryID is the ingestion idempotency gate
	ExistsByHibobEntryID(ctx context.Context, hibobEntryID string) (bool, error)
	FindByStatus(ctx context.Context, status ReviewStatus, filter shared.Filter) ([]PurchaseReview, int64, error)
	CountByStatus(ctx context.Context, status ReviewStatus) (int64, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID, filter shared.Filter) ([]PurchaseReview, int64, error)
	Save(ctx context.Context, review *PurchaseReview) error
}

// SyncRunRepository defines persistence for reconciliation run logs
type SyncRunRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseSyncRun, error)
	FindRecent(ctx context.Context, limit int) ([]PurchaseSyncRun, error)
	Save(ctx context.Context, run *PurchaseSyncRun) error
}
