package reconciliation

import (
	"strings"
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// ReviewStatus represents the resolution state of a purchase review
type ReviewStatus string

const (
	ReviewStatusPending   ReviewStatus = "pending"
	ReviewStatusMatched   ReviewStatus = "matched"
	ReviewStatusAdjusted  ReviewStatus = "adjusted"
	ReviewStatusDismissed ReviewStatus = "dismissed"
)

// IsValid checks if the status is a known ReviewStatus
func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusMatched, ReviewStatusAdjusted, ReviewStatusDismissed:
		return true
	}
	return false
}

// PurchaseReview is the core's record of reconciling one external purchase
// entry. The hibob entry id is globally unique and acts as the ingestion
// idempotency key. A matched review points at an order, an adjusted review
// points at an adjustment; never both.
type PurchaseReview struct {
	shared.BaseAggregateRoot
	HibobEntryID string
	EmployeeID   uuid.UUID
	EntryDate    time.Time
	AmountCents  int64
	Currency     string
	Description  string
	Status       ReviewStatus

	MatchedOrderID *uuid.UUID
	AdjustmentID   *uuid.UUID
	ResolvedBy     *uuid.UUID
	ResolvedAt     *time.Time
}

// NewPurchaseReview ingests one external entry as a pending review
func NewPurchaseReview(hibobEntryID string, employeeID uuid.UUID, entryDate time.Time, amountCents int64, currency, description string) (*PurchaseReview, error) {
	if strings.TrimSpace(hibobEntryID) == "" {
		return nil, shared.NewDomainError("INVALID_ENTRY_ID", "Hibob entry ID cannot be empty")
	}
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID cannot be empty")
	}
	return &PurchaseReview{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		HibobEntryID:      hibobEntryID,
		EmployeeID:        employeeID,
		EntryDate:         entryDate,
		AmountCents:       amountCents,
		Currency:          currency,
		Description:       description,
		Status:            ReviewStatusPending,
	}, nil
}

// ErrReviewAlreadyResolved is returned when a resolution is attempted on a
// review that has already left pending
var ErrReviewAlreadyResolved = shared.NewDomainError("REVIEW_ALREADY_RESOLVED", "Purchase review has already been resolved")

func (r *PurchaseReview) ensurePending() error {
	if r.Status != ReviewStatusPending {
		return ErrReviewAlreadyResolved
	}
	return nil
}

// ResolveMatched binds the review to an order. The order's own total already
// reserved budget, so matching has no budget impact.
func (r *PurchaseReview) ResolveMatched(orderID, resolvedBy uuid.UUID) error {
	if err := r.ensurePending(); err != nil {
		return err
	}
	if orderID == uuid.Nil {
		return shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	now := time.Now()
	r.Status = ReviewStatusMatched
	r.MatchedOrderID = &orderID
	r.AdjustmentID = nil
	r.stampResolution(resolvedBy, now)
	return nil
}

// ResolveAdjusted binds the review to the budget adjustment that debited the
// unattributed purchase
func (r *PurchaseReview) ResolveAdjusted(adjustmentID, resolvedBy uuid.UUID) error {
	if err := r.ensurePending(); err != nil {
		return err
	}
	if adjustmentID == uuid.Nil {
		return shared.NewDomainError("INVALID_ADJUSTMENT", "Adjustment ID cannot be empty")
	}
	now := time.Now()
	r.Status = ReviewStatusAdjusted
	r.AdjustmentID = &adjustmentID
	r.MatchedOrderID = nil
	r.stampResolution(resolvedBy, now)
	return nil
}

// ResolveDismissed closes the review with no budget effect
func (r *PurchaseReview) ResolveDismissed(resolvedBy uuid.UUID) error {
	if err := r.ensurePending(); err != nil {
		return err
	}
	r.Status = ReviewStatusDismissed
	r.stampResolution(resolvedBy, time.Now())
	return nil
}

func (r *PurchaseReview) stampResolution(resolvedBy uuid.UUID, at time.Time) {
	if resolvedBy != uuid.Nil {
		r.ResolvedBy = &resolvedBy
	}
	r.ResolvedAt = &at
	r.Touch()
}

// IsPending reports whether the review still needs resolution
func (r *PurchaseReview) IsPending() bool {
	return r.Status == ReviewStatusPending
}
