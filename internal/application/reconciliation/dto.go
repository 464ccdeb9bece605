package reconciliation

import (
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/reconciliation"
	"github.com/google/uuid"
)

// SyncRunResponse is the API shape of one reconciliation run
type SyncRunResponse struct {
	ID              uuid.UUID  `json:"id"`
	Status          string     `json:"status"`
	StartedAt       time.Time  `json:"started_at"`
	FinishedAt      *time.Time `json:"finished_at,omitempty"`
	EntriesFound    int        `json:"entries_found"`
	EntriesMatched  int        `json:"entries_matched"`
	EntriesAdjusted int        `json:"entries_adjusted"`
	EntriesPending  int        `json:"entries_pending"`
	Error           string     `json:"error,omitempty"`
}

// ReviewResponse is the API shape of one purchase review
type ReviewResponse struct {
	ID             uuid.UUID  `json:"id"`
	HibobEntryID   string     `json:"hibob_entry_id"`
	EmployeeID     uuid.UUID  `json:"employee_id"`
	EntryDate      time.Time  `json:"entry_date"`
	AmountCents    int64      `json:"amount_cents"`
	Currency       string     `json:"currency"`
	Description    string     `json:"description,omitempty"`
	Status         string     `json:"status"`
	MatchedOrderID *uuid.UUID `json:"matched_order_id,omitempty"`
	AdjustmentID   *uuid.UUID `json:"adjustment_id,omitempty"`
	ResolvedBy     *uuid.UUID `json:"resolved_by,omitempty"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ResolveMatchRequest binds a pending review to a chosen order
type ResolveMatchRequest struct {
	OrderID uuid.UUID `json:"order_id" binding:"required"`
}

// ToSyncRunResponse maps a run log to its API shape
func ToSyncRunResponse(run *reconciliation.PurchaseSyncRun) SyncRunResponse {
	return SyncRunResponse{
		ID:              run.ID,
		Status:          string(run.Status),
		StartedAt:       run.StartedAt,
		FinishedAt:      run.FinishedAt,
		EntriesFound:    run.EntriesFound,
		EntriesMatched:  run.EntriesMatched,
		EntriesAdjusted: run.EntriesAdjusted,
		EntriesPending:  run.EntriesPending,
		Error:           run.Error,
	}
}

// ToReviewResponse maps a purchase review to its API shape
func ToReviewResponse(r *reconciliation.PurchaseReview) ReviewResponse {
	return ReviewResponse{
		ID:             r.ID,
		HibobEntryID:   r.HibobEntryID,
		EmployeeID:     r.EmployeeID,
		EntryDate:      r.EntryDate,
		AmountCents:    r.AmountCents,
		Currency:       r.Currency,
		Description:    r.Description,
		Status:         string(r.Status),
		MatchedOrderID: r.MatchedOrderID,
		AdjustmentID:   r.AdjustmentID,
		ResolvedBy:     r.ResolvedBy,
		ResolvedAt:     r.ResolvedAt,
		CreatedAt:      r.CreatedAt,
	}
}
