package budget

import (
	"strings"
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
)

// Employee is the aggregate root of the budget ledger. It carries the
// authoritative accrued total plus a cached projection of live spend and
// adjustments. The cache is derived state: it is overwritten on refresh and
// is never consulted for the reservation gate.
type Employee struct {
	shared.BaseAggregateRoot
	FullName  string
	Email     string
	StartDate *time.Time
	Active    bool

	// HibobID links this employee to their record in the external HR
	// system. Employees without a link are skipped by reconciliation.
	HibobID *string

	TotalBudgetCents      int64
	CachedSpentCents      int64
	CachedAdjustmentCents int64
	CacheUpdatedAt        *time.Time
}

// NewEmployee creates a new employee
func NewEmployee(fullName, email string, startDate *time.Time) (*Employee, error) {
	if strings.TrimSpace(fullName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Employee name cannot be empty")
	}
	if strings.TrimSpace(email) == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Employee email cannot be empty")
	}
	return &Employee{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FullName:          fullName,
		Email:             email,
		StartDate:         startDate,
		Active:            true,
	}, nil
}

// AvailableCents returns the cached available budget:
// total + cached adjustments - cached spend. O(1), no locking.
func (e *Employee) AvailableCents() int64 {
	return e.TotalBudgetCents + e.CachedAdjustmentCents - e.CachedSpentCents
}

// HasLinkedHibob reports whether the employee has an external HR identity
func (e *Employee) HasLinkedHibob() bool {
	return e.HibobID != nil && *e.HibobID != ""
}

// LinkHibob attaches the external HR identity
func (e *Employee) LinkHibob(hibobID string) error {
	if strings.TrimSpace(hibobID) == "" {
		return shared.NewDomainError("INVALID_HIBOB_ID", "HiBob ID cannot be empty")
	}
	e.HibobID = &hibobID
	e.Touch()
	return nil
}

// SetTotalBudget overwrites the authoritative accrued total. Called when the
// HR employee sync recomputes accrual from the timeline.
func (e *Employee) SetTotalBudget(totalCents int64) {
	e.TotalBudgetCents = totalCents
	e.Touch()
}

// RefreshCache overwrites the cached spend/adjustment projection with freshly
// computed live sums and stamps the refresh instant.
func (e *Employee) RefreshCache(spentCents, adjustmentCents int64, at time.Time) {
	e.CachedSpentCents = spentCents
	e.CachedAdjustmentCents = adjustmentCents
	e.CacheUpdatedAt = &at
	e.Touch()
}

// CanReserve reports whether amountCents fits into the budget given live
// spend and adjustment sums. Callers must hold the employee row lock and
// must pass live sums, never cached ones.
func (e *Employee) CanReserve(amountCents, liveSpentCents, liveAdjustmentCents int64) bool {
	return amountCents <= e.TotalBudgetCents+liveAdjustmentCents-liveSpentCents
}

// Deactivate marks the employee inactive
func (e *Employee) Deactivate() {
	e.Active = false
	e.Touch()
}
