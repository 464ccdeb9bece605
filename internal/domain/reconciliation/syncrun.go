package reconciliation

import (
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// RunStatus is the overall outcome of one reconciliation run
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// maxRunErrorLen bounds the stored error message of a failed run
const maxRunErrorLen = 500

// PurchaseSyncRun is the log row of one reconciliation pass. Partial
// progress survives a failed run: reviews committed per employee before the
// failure are kept.
type PurchaseSyncRun struct {
	shared.BaseEntity
	StartedAt       time.Time
	FinishedAt      *time.Time
	Status          RunStatus
	EntriesFound    int
	EntriesMatched  int
	EntriesAdjusted int
	EntriesPending  int
	Error           string
	TriggeredBy     *uuid.UUID
}

// NewPurchaseSyncRun starts a new run log
func NewPurchaseSyncRun(triggeredBy uuid.UUID) *PurchaseSyncRun {
	run := &PurchaseSyncRun{
		BaseEntity: shared.NewBaseEntity(),
		StartedAt:  time.Now(),
		Status:     RunStatusRunning,
	}
	if triggeredBy != uuid.Nil {
		run.TriggeredBy = &triggeredBy
	}
	return run
}

// RecordEntry accumulates per-entry counters
func (r *PurchaseSyncRun) RecordEntry(status ReviewStatus) {
	r.EntriesFound++
	switch status {
	case ReviewStatusMatched:
		r.EntriesMatched++
	case ReviewStatusAdjusted:
		r.EntriesAdjusted++
	case ReviewStatusPending:
		r.EntriesPending++
	}
}

// Complete marks the run as finished successfully
func (r *PurchaseSyncRun) Complete() {
	now := time.Now()
	r.Status = RunStatusCompleted
	r.FinishedAt = &now
	r.Touch()
}

// Fail marks the run as failed with a truncated error message
func (r *PurchaseSyncRun) Fail(err error) {
	now := time.Now()
	r.Status = RunStatusFailed
	r.FinishedAt = &now
	msg := err.Error()
	if len(msg) > maxRunErrorLen {
		msg = msg[:maxRunErrorLen]
	}
	r.Error = msg
	r.Touch()
}
