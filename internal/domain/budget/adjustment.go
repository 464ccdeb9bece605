package budget

import (
	"strings"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// AdjustmentSource identifies where a budget adjustment originated
type AdjustmentSource string

const (
	AdjustmentSourceManual AdjustmentSource = "manual"
	AdjustmentSourceHibob  AdjustmentSource = "hibob"
)

// IsValid checks if the source is a valid AdjustmentSource
func (s AdjustmentSource) IsValid() bool {
	return s == AdjustmentSourceManual || s == AdjustmentSourceHibob
}

// BudgetAdjustment is a signed ledger entry against an employee's budget.
// Hibob-sourced adjustments carry the originating entry id as a global
// idempotency key and are immutable outside the reconciliation workflow.
type BudgetAdjustment struct {
	shared.BaseEntity
	EmployeeID   uuid.UUID
	AmountCents  int64
	Reason       string
	Source       AdjustmentSource
	HibobEntryID *string
	CreatedBy    *uuid.UUID
}

// NewManualAdjustment creates an admin-entered adjustment
func NewManualAdjustment(employeeID uuid.UUID, amountCents int64, reason string, createdBy uuid.UUID) (*BudgetAdjustment, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID cannot be empty")
	}
	if amountCents == 0 {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Adjustment amount cannot be zero")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, shared.NewDomainError("REASON_REQUIRED", "Adjustment reason cannot be empty")
	}
	adj := &BudgetAdjustment{
		BaseEntity:  shared.NewBaseEntity(),
		EmployeeID:  employeeID,
		AmountCents: amountCents,
		Reason:      reason,
		Source:      AdjustmentSourceManual,
	}
	if createdBy != uuid.Nil {
		adj.CreatedBy = &createdBy
	}
	return adj, nil
}

// NewHibobAdjustment creates an adjustment sourced from an external purchase
// entry. The amount debits the budget, so it must be negative.
func NewHibobAdjustment(employeeID uuid.UUID, amountCents int64, reason, hibobEntryID string) (*BudgetAdjustment, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID cannot be empty")
	}
	if amountCents >= 0 {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Hibob adjustment must debit the budget")
	}
	if strings.TrimSpace(hibobEntryID) == "" {
		return nil, shared.NewDomainError("INVALID_ENTRY_ID", "Hibob entry ID cannot be empty")
	}
	return &BudgetAdjustment{
		BaseEntity:   shared.NewBaseEntity(),
		EmployeeID:   employeeID,
		AmountCents:  amountCents,
		Reason:       reason,
		Source:       AdjustmentSourceHibob,
		HibobEntryID: &hibobEntryID,
	}, nil
}

// IsManual reports whether the adjustment was entered by an admin
func (a *BudgetAdjustment) IsManual() bool {
	return a.Source == AdjustmentSourceManual
}
