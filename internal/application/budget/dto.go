package budget

import (
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/budget"
	"github.com/google/uuid"
)

// CreateEmployeeRequest registers a new employee
type CreateEmployeeRequest struct {
	FullName  string     `json:"full_name" binding:"required"`
	Email     string     `json:"email" binding:"required,email"`
	StartDate *time.Time `json:"start_date,omitempty"`
}

// EmployeeResponse is the API shape of an employee
type EmployeeResponse struct {
	ID               uuid.UUID  `json:"id"`
	FullName         string     `json:"full_name"`
	Email            string     `json:"email"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	Active           bool       `json:"active"`
	HibobID          *string    `json:"hibob_id,omitempty"`
	TotalBudgetCents int64      `json:"total_budget_cents"`
	AvailableCents   int64      `json:"available_cents"`
	CacheUpdatedAt   *time.Time `json:"cache_updated_at,omitempty"`
}

// AvailableBudgetResponse is the cached budget view of one employee
type AvailableBudgetResponse struct {
	EmployeeID      uuid.UUID  `json:"employee_id"`
	TotalCents      int64      `json:"total_cents"`
	SpentCents      int64      `json:"spent_cents"`
	AdjustmentCents int64      `json:"adjustment_cents"`
	AvailableCents  int64      `json:"available_cents"`
	CacheUpdatedAt  *time.Time `json:"cache_updated_at,omitempty"`
}

// TimelineEntryResponse is one accrual year in an employee's budget timeline
type TimelineEntryResponse struct {
	Year            int       `json:"year"`
	AnchorDate      time.Time `json:"anchor_date"`
	AmountCents     int64     `json:"amount_cents"`
	CumulativeCents int64     `json:"cumulative_cents"`
	Source          string    `json:"source"`
}

// CreateAdjustmentRequest creates a manual budget adjustment
type CreateAdjustmentRequest struct {
	EmployeeID  uuid.UUID `json:"employee_id" binding:"required"`
	AmountCents int64     `json:"amount_cents" binding:"required"`
	Reason      string    `json:"reason" binding:"required"`
}

// AdjustmentResponse is one ledger adjustment
type AdjustmentResponse struct {
	ID           uuid.UUID `json:"id"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	AmountCents  int64     `json:"amount_cents"`
	Reason       string    `json:"reason"`
	Source       string    `json:"source"`
	HibobEntryID *string   `json:"hibob_entry_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateRuleRequest creates a global accrual rule
type CreateRuleRequest struct {
	EffectiveFrom        time.Time `json:"effective_from" binding:"required"`
	InitialCents         int64     `json:"initial_cents" binding:"required"`
	YearlyIncrementCents int64     `json:"yearly_increment_cents" binding:"required"`
}

// RuleResponse is one global accrual rule
type RuleResponse struct {
	ID                   uuid.UUID `json:"id"`
	EffectiveFrom        time.Time `json:"effective_from"`
	InitialCents         int64     `json:"initial_cents"`
	YearlyIncrementCents int64     `json:"yearly_increment_cents"`
}

// CreateOverrideRequest creates a per-employee accrual override
type CreateOverrideRequest struct {
	EmployeeID           uuid.UUID  `json:"employee_id" binding:"required"`
	EffectiveFrom        time.Time  `json:"effective_from" binding:"required"`
	EffectiveUntil       *time.Time `json:"effective_until,omitempty"`
	InitialCents         int64      `json:"initial_cents" binding:"required"`
	YearlyIncrementCents int64      `json:"yearly_increment_cents" binding:"required"`
	Reason               string     `json:"reason" binding:"required"`
}

// OverrideResponse is one per-employee accrual override
type OverrideResponse struct {
	ID                   uuid.UUID  `json:"id"`
	EmployeeID           uuid.UUID  `json:"employee_id"`
	EffectiveFrom        time.Time  `json:"effective_from"`
	EffectiveUntil       *time.Time `json:"effective_until,omitempty"`
	InitialCents         int64      `json:"initial_cents"`
	YearlyIncrementCents int64      `json:"yearly_increment_cents"`
	Reason               string     `json:"reason"`
}

// ToEmployeeResponse maps an employee to its API shape
func ToEmployeeResponse(e *budget.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		FullName:         e.FullName,
		Email:            e.Email,
		StartDate:        e.StartDate,
		Active:           e.Active,
		HibobID:          e.HibobID,
		TotalBudgetCents: e.TotalBudgetCents,
		AvailableCents:   e.AvailableCents(),
		CacheUpdatedAt:   e.CacheUpdatedAt,
	}
}

// ToAvailableBudgetResponse maps an employee's cached budget fields
func ToAvailableBudgetResponse(e *budget.Employee) AvailableBudgetResponse {
	return AvailableBudgetResponse{
		EmployeeID:      e.ID,
		TotalCents:      e.TotalBudgetCents,
		SpentCents:      e.CachedSpentCents,
		AdjustmentCents: e.CachedAdjustmentCents,
		AvailableCents:  e.AvailableCents(),
		CacheUpdatedAt:  e.CacheUpdatedAt,
	}
}

// ToAdjustmentResponse maps an adjustment to its API shape
func ToAdjustmentResponse(a *budget.BudgetAdjustment) AdjustmentResponse {
	return AdjustmentResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		AmountCents:  a.AmountCents,
		Reason:       a.Reason,
		Source:       string(a.Source),
		HibobEntryID: a.HibobEntryID,
		CreatedAt:    a.CreatedAt,
	}
}

// ToRuleResponse maps a rule to its API shape
func ToRuleResponse(r *budget.BudgetRule) RuleResponse {
	return RuleResponse{
		ID:                   r.ID,
		EffectiveFrom:        r.EffectiveFrom,
		InitialCents:         r.InitialCents,
		YearlyIncrementCents: r.YearlyIncrementCents,
	}
}

// ToOverrideResponse maps an override to its API shape
func ToOverrideResponse(o *budget.UserBudgetOverride) OverrideResponse {
	return OverrideResponse{
		ID:                   o.ID,
		EmployeeID:           o.EmployeeID,
		EffectiveFrom:        o.EffectiveFrom,
		EffectiveUntil:       o.EffectiveUntil,
		InitialCents:         o.InitialCents,
		YearlyIncrementCents: o.YearlyIncrementCents,
		Reason:               o.Reason,
	}
}

// ToTimelineResponse maps resolved timeline entries
func ToTimelineResponse(entries []budget.TimelineEntry) []TimelineEntryResponse {
	out := make([]TimelineEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, TimelineEntryResponse{
			Year:            e.Year,
			AnchorDate:      e.AnchorDate,
			AmountCents:     e.AmountCents,
			CumulativeCents: e.CumulativeCents,
			Source:          string(e.Source),
		})
	}
	return out
}
