package budget

import (
	"strings"
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// Built-in fallback used when no rule or override covers an accrual year.
const (
	DefaultInitialCents         int64 = 75000
	DefaultYearlyIncrementCents int64 = 25000
)

// BudgetRule is a global accrual rule. The rule with the latest
// effective_from on or before the anchor date applies; effective_from is
// unique across rules.
type BudgetRule struct {
	shared.BaseEntity
	EffectiveFrom        time.Time
	InitialCents         int64
	YearlyIncrementCents int64
}

// NewBudgetRule creates a new global budget rule
func NewBudgetRule(effectiveFrom time.Time, initialCents, yearlyIncrementCents int64) (*BudgetRule, error) {
	if effectiveFrom.IsZero() {
		return nil, shared.NewDomainError("INVALID_EFFECTIVE_FROM", "Effective-from date is required")
	}
	if initialCents < 0 || yearlyIncrementCents < 0 {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Rule amounts cannot be negative")
	}
	return &BudgetRule{
		BaseEntity:           shared.NewBaseEntity(),
		EffectiveFrom:        effectiveFrom.Truncate(24 * time.Hour),
		InitialCents:         initialCents,
		YearlyIncrementCents: yearlyIncrementCents,
	}, nil
}

// AppliesAt reports whether the rule is in effect at the given date
func (r *BudgetRule) AppliesAt(date time.Time) bool {
	return !r.EffectiveFrom.After(date)
}

// UserBudgetOverride is a per-employee accrual override. It wins over global
// rules for anchor dates inside its [EffectiveFrom, EffectiveUntil] window;
// a nil EffectiveUntil means open-ended.
type UserBudgetOverride struct {
	shared.BaseEntity
	EmployeeID           uuid.UUID
	EffectiveFrom        time.Time
	EffectiveUntil       *time.Time
	InitialCents         int64
	YearlyIncrementCents int64
	Reason               string
}

// NewUserBudgetOverride creates a new per-employee override
func NewUserBudgetOverride(employeeID uuid.UUID, effectiveFrom time.Time, effectiveUntil *time.Time, initialCents, yearlyIncrementCents int64, reason string) (*UserBudgetOverride, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID cannot be empty")
	}
	if effectiveFrom.IsZero() {
		return nil, shared.NewDomainError("INVALID_EFFECTIVE_FROM", "Effective-from date is required")
	}
	if effectiveUntil != nil && effectiveUntil.Before(effectiveFrom) {
		return nil, shared.NewDomainError("INVALID_WINDOW", "Effective-until cannot precede effective-from")
	}
	if initialCents < 0 || yearlyIncrementCents < 0 {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Override amounts cannot be negative")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, shared.NewDomainError("REASON_REQUIRED", "Override reason cannot be empty")
	}
	return &UserBudgetOverride{
		BaseEntity:           shared.NewBaseEntity(),
		EmployeeID:           employeeID,
		EffectiveFrom:        effectiveFrom,
		EffectiveUntil:       effectiveUntil,
		InitialCents:         initialCents,
		YearlyIncrementCents: yearlyIncrementCents,
		Reason:               reason,
	}, nil
}

// Covers reports whether the override window contains the given date
func (o *UserBudgetOverride) Covers(date time.Time) bool {
	if date.Before(o.EffectiveFrom) {
		return false
	}
	if o.EffectiveUntil != nil && date.After(*o.EffectiveUntil) {
		return false
	}
	return true
}
