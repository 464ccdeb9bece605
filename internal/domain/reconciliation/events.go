package reconciliation

import (
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

const (
	EventTypeReviewCreated  = "reconciliation.review_created"
	EventTypeReviewResolved = "reconciliation.review_resolved"
	EventTypeSyncCompleted  = "reconciliation.sync_completed"
)

// ReviewCreatedEvent is emitted when an external purchase entry could not be
// matched automatically and needs manual review.
type ReviewCreatedEvent struct {
	shared.BaseDomainEvent
	ReviewID     uuid.UUID `json:"review_id"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	HibobEntryID string    `json:"hibob_entry_id"`
	AmountCents  int64     `json:"amount_cents"`
}

func NewReviewCreatedEvent(review *PurchaseReview) *ReviewCreatedEvent {
	return &ReviewCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReviewCreated, "PurchaseReview", review.ID),
		ReviewID:        review.ID,
		EmployeeID:      review.EmployeeID,
		HibobEntryID:    review.HibobEntryID,
		AmountCents:     review.AmountCents,
	}
}

// ReviewResolvedEvent is emitted when a pending review reaches a final status.
type ReviewResolvedEvent struct {
	shared.BaseDomainEvent
	ReviewID   uuid.UUID    `json:"review_id"`
	EmployeeID uuid.UUID    `json:"employee_id"`
	Status     ReviewStatus `json:"status"`
	ResolvedBy uuid.UUID    `json:"resolved_by"`
}

func NewReviewResolvedEvent(review *PurchaseReview, resolvedBy uuid.UUID) *ReviewResolvedEvent {
	return &ReviewResolvedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReviewResolved, "PurchaseReview", review.ID),
		ReviewID:        review.ID,
		EmployeeID:      review.EmployeeID,
		Status:          review.Status,
		ResolvedBy:      resolvedBy,
	}
}

// SyncCompletedEvent is emitted when a reconciliation run finishes.
type SyncCompletedEvent struct {
	shared.BaseDomainEvent
	RunID         uuid.UUID `json:"run_id"`
	Status        RunStatus `json:"status"`
	EntriesFound  int       `json:"entries_found"`
	ReviewsOpened int       `json:"reviews_opened"`
}

func NewSyncCompletedEvent(run *PurchaseSyncRun) *SyncCompletedEvent {
	return &SyncCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSyncCompleted, "PurchaseSyncRun", run.ID),
		RunID:           run.ID,
		Status:          run.Status,
		EntriesFound:    run.EntriesFound,
		ReviewsOpened:   run.EntriesPending,
	}
}
