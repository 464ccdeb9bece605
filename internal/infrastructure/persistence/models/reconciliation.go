package models

import (
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/reconciliation"
	"github.com/google/uuid"
)

// PurchaseReviewModel is the persistence model for the PurchaseReview
// aggregate root. The hibob entry id is the global ingestion idempotency key.
type PurchaseReviewModel struct {
	AggregateModel
	HibobEntryID   string                      `gorm:"type:varchar(100);not null;uniqueIndex"`
	EmployeeID     uuid.UUID                   `gorm:"type:uuid;not null;index"`
	EntryDate      time.Time                   `gorm:"type:date;not null"`
	AmountCents    int64                       `gorm:"not null"`
	Currency       string                      `gorm:"type:varchar(10)"`
	Description    string                      `gorm:"type:text"`
	Status         reconciliation.ReviewStatus `gorm:"type:varchar(20);not null;index"`
	MatchedOrderID *uuid.UUID                  `gorm:"type:uuid"`
	AdjustmentID   *uuid.UUID                  `gorm:"type:uuid"`
	ResolvedBy     *uuid.UUID                  `gorm:"type:uuid"`
	ResolvedAt     *time.Time
}

// TableName returns the table name for GORM
func (PurchaseReviewModel) TableName() string {
	return "purchase_reviews"
}

// ToDomain converts the persistence model to a domain PurchaseReview
func (m *PurchaseReviewModel) ToDomain() *reconciliation.PurchaseReview {
	return &reconciliation.PurchaseReview{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		HibobEntryID:      m.HibobEntryID,
		EmployeeID:        m.EmployeeID,
		EntryDate:         m.EntryDate,
		AmountCents:       m.AmountCents,
		Currency:          m.Currency,
		Description:       m.Description,
		Status:            m.Status,
		MatchedOrderID:    m.MatchedOrderID,
		AdjustmentID:      m.AdjustmentID,
		ResolvedBy:        m.ResolvedBy,
		ResolvedAt:        m.ResolvedAt,
	}
}

// FromDomain populates the persistence model from a domain PurchaseReview
func (m *PurchaseReviewModel) FromDomain(r *reconciliation.PurchaseReview) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.HibobEntryID = r.HibobEntryID
	m.EmployeeID = r.EmployeeID
	m.EntryDate = r.EntryDate
	m.AmountCents = r.AmountCents
	m.Currency = r.Currency
	m.Description = r.Description
	m.Status = r.Status
	m.MatchedOrderID = r.MatchedOrderID
	m.AdjustmentID = r.AdjustmentID
	m.ResolvedBy = r.ResolvedBy
	m.ResolvedAt = r.ResolvedAt
}

// PurchaseReviewModelFromDomain creates a persistence model from a domain
// PurchaseReview
func PurchaseReviewModelFromDomain(r *reconciliation.PurchaseReview) *PurchaseReviewModel {
	m := &PurchaseReviewModel{}
	m.FromDomain(r)
	return m
}

// PurchaseSyncRunModel is the persistence model for reconciliation run logs.
type PurchaseSyncRunModel struct {
	BaseModel
	StartedAt       time.Time                `gorm:"not null;index"`
	FinishedAt      *time.Time
	Status          reconciliation.RunStatus `gorm:"type:varchar(20);not null"`
	EntriesFound    int                      `gorm:"not null;default:0"`
	EntriesMatched  int                      `gorm:"not null;default:0"`
	EntriesAdjusted int                      `gorm:"not null;default:0"`
	EntriesPending  int                      `gorm:"not null;default:0"`
	Error           string                   `gorm:"type:varchar(500)"`
	TriggeredBy     *uuid.UUID               `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (PurchaseSyncRunModel) TableName() string {
	return "purchase_sync_runs"
}

// ToDomain converts the persistence model to a domain PurchaseSyncRun
func (m *PurchaseSyncRunModel) ToDomain() *reconciliation.PurchaseSyncRun {
	return &reconciliation.PurchaseSyncRun{
		BaseEntity:      m.BaseModel.ToDomain(),
		StartedAt:       m.StartedAt,
		FinishedAt:      m.FinishedAt,
		Status:          m.Status,
		EntriesFound:    m.EntriesFound,
		EntriesMatched:  m.EntriesMatched,
		EntriesAdjusted: m.EntriesAdjusted,
		EntriesPending:  m.EntriesPending,
		Error:           m.Error,
		TriggeredBy:     m.TriggeredBy,
	}
}

// PurchaseSyncRunModelFromDomain creates a persistence model from a domain
// PurchaseSyncRun
func PurchaseSyncRunModelFromDomain(r *reconciliation.PurchaseSyncRun) *PurchaseSyncRunModel {
	m := &PurchaseSyncRunModel{}
	m.FromDomainBaseEntity(r.BaseEntity)
	m.StartedAt = r.StartedAt
	m.FinishedAt = r.FinishedAt
	m.Status = r.Status
	m.EntriesFound = r.EntriesFound
	m.EntriesMatched = r.EntriesMatched
	m.EntriesAdjusted = r.EntriesAdjusted
	m.EntriesPending = r.EntriesPending
	m.Error = r.Error
	m.TriggeredBy = r.TriggeredBy
	return m
}
