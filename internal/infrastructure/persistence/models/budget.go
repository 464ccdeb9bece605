package models

import (
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/budget"
	"github.com/google/uuid"
)

// EmployeeModel is the persistence model for the Employee aggregate root.
type EmployeeModel struct {
	AggregateModel
	FullName              string     `gorm:"type:varchar(200);not null"`
	Email                 string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	StartDate             *time.Time `gorm:"type:date"`
	Active                bool       `gorm:"not null;default:true;index"`
	HibobID               *string    `gorm:"type:varchar(100);uniqueIndex"`
	TotalBudgetCents      int64      `gorm:"not null;default:0"`
	CachedSpentCents      int64      `gorm:"not null;default:0"`
	CachedAdjustmentCents int64      `gorm:"not null;default:0"`
	CacheUpdatedAt        *time.Time
}

// TableName returns the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the persistence model to a domain Employee
func (m *EmployeeModel) ToDomain() *budget.Employee {
	return &budget.Employee{
		BaseAggregateRoot:     m.ToDomainAggregateRoot(),
		FullName:              m.FullName,
		Email:                 m.Email,
		StartDate:             m.StartDate,
		Active:                m.Active,
		HibobID:               m.HibobID,
		TotalBudgetCents:      m.TotalBudgetCents,
		CachedSpentCents:      m.CachedSpentCents,
		CachedAdjustmentCents: m.CachedAdjustmentCents,
		CacheUpdatedAt:        m.CacheUpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Employee
func (m *EmployeeModel) FromDomain(e *budget.Employee) {
	m.FromDomainAggregateRoot(e.BaseAggregateRoot)
	m.FullName = e.FullName
	m.Email = e.Email
	m.StartDate = e.StartDate
	m.Active = e.Active
	m.HibobID = e.HibobID
	m.TotalBudgetCents = e.TotalBudgetCents
	m.CachedSpentCents = e.CachedSpentCents
	m.CachedAdjustmentCents = e.CachedAdjustmentCents
	m.CacheUpdatedAt = e.CacheUpdatedAt
}

// EmployeeModelFromDomain creates a persistence model from a domain Employee
func EmployeeModelFromDomain(e *budget.Employee) *EmployeeModel {
	m := &EmployeeModel{}
	m.FromDomain(e)
	return m
}

// BudgetRuleModel is the persistence model for global accrual rules.
type BudgetRuleModel struct {
	BaseModel
	EffectiveFrom        time.Time `gorm:"type:date;not null;uniqueIndex"`
	InitialCents         int64     `gorm:"not null"`
	YearlyIncrementCents int64     `gorm:"not null"`
}

// TableName returns the table name for GORM
func (BudgetRuleModel) TableName() string {
	return "budget_rules"
}

// ToDomain converts the persistence model to a domain BudgetRule
func (m *BudgetRuleModel) ToDomain() *budget.BudgetRule {
	return &budget.BudgetRule{
		BaseEntity:           m.BaseModel.ToDomain(),
		EffectiveFrom:        m.EffectiveFrom,
		InitialCents:         m.InitialCents,
		YearlyIncrementCents: m.YearlyIncrementCents,
	}
}

// BudgetRuleModelFromDomain creates a persistence model from a domain BudgetRule
func BudgetRuleModelFromDomain(r *budget.BudgetRule) *BudgetRuleModel {
	m := &BudgetRuleModel{}
	m.FromDomainBaseEntity(r.BaseEntity)
	m.EffectiveFrom = r.EffectiveFrom
	m.InitialCents = r.InitialCents
	m.YearlyIncrementCents = r.YearlyIncrementCents
	return m
}

// UserBudgetOverrideModel is the persistence model for per-employee accrual
// overrides.
type UserBudgetOverrideModel struct {
	BaseModel
	EmployeeID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	EffectiveFrom        time.Time  `gorm:"type:date;not null"`
	EffectiveUntil       *time.Time `gorm:"type:date"`
	InitialCents         int64      `gorm:"not null"`
	YearlyIncrementCents int64      `gorm:"not null"`
	Reason               string     `gorm:"type:varchar(500);not null"`
}

// TableName returns the table name for GORM
func (UserBudgetOverrideModel) TableName() string {
	return "user_budget_overrides"
}

// ToDomain converts the persistence model to a domain UserBudgetOverride
func (m *UserBudgetOverrideModel) ToDomain() *budget.UserBudgetOverride {
	return &budget.UserBudgetOverride{
		BaseEntity:           m.BaseModel.ToDomain(),
		EmployeeID:           m.EmployeeID,
		EffectiveFrom:        m.EffectiveFrom,
		EffectiveUntil:       m.EffectiveUntil,
		InitialCents:         m.InitialCents,
		YearlyIncrementCents: m.YearlyIncrementCents,
		Reason:               m.Reason,
	}
}

// UserBudgetOverrideModelFromDomain creates a persistence model from a domain
// UserBudgetOverride
func UserBudgetOverrideModelFromDomain(o *budget.UserBudgetOverride) *UserBudgetOverrideModel {
	m := &UserBudgetOverrideModel{}
	m.FromDomainBaseEntity(o.BaseEntity)
	m.EmployeeID = o.EmployeeID
	m.EffectiveFrom = o.EffectiveFrom
	m.EffectiveUntil = o.EffectiveUntil
	m.InitialCents = o.InitialCents
	m.YearlyIncrementCents = o.YearlyIncrementCents
	m.Reason = o.Reason
	return m
}

// BudgetAdjustmentModel is the persistence model for signed budget ledger
// entries. The hibob entry id, when present, is globally unique.
type BudgetAdjustmentModel struct {
	BaseModel
	EmployeeID   uuid.UUID               `gorm:"type:uuid;not null;index"`
	AmountCents  int64                   `gorm:"not null"`
	Reason       string                  `gorm:"type:varchar(500);not null"`
	Source       budget.AdjustmentSource `gorm:"type:varchar(20);not null"`
	HibobEntryID *string                 `gorm:"type:varchar(100);uniqueIndex"`
	CreatedBy    *uuid.UUID              `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (BudgetAdjustmentModel) TableName() string {
	return "budget_adjustments"
}

// ToDomain converts the persistence model to a domain BudgetAdjustment
func (m *BudgetAdjustmentModel) ToDomain() *budget.BudgetAdjustment {
	return &budget.BudgetAdjustment{
		BaseEntity:   m.BaseModel.ToDomain(),
		EmployeeID:   m.EmployeeID,
		AmountCents:  m.AmountCents,
		Reason:       m.Reason,
		Source:       m.Source,
		HibobEntryID: m.HibobEntryID,
		CreatedBy:    m.CreatedBy,
	}
}

// BudgetAdjustmentModelFromDomain creates a persistence model from a domain
// BudgetAdjustment
func BudgetAdjustmentModelFromDomain(a *budget.BudgetAdjustment) *BudgetAdjustmentModel {
	m := &BudgetAdjustmentModel{}
	m.FromDomainBaseEntity(a.BaseEntity)
	m.EmployeeID = a.EmployeeID
	m.AmountCents = a.AmountCents
	m.Reason = a.Reason
	m.Source = a.Source
	m.HibobEntryID = a.HibobEntryID
	m.CreatedBy = a.CreatedBy
	return m
}
