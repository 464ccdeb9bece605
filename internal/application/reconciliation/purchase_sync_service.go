package reconciliation

import (
	"context"
	"errors"
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/budget"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/hibob"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/order"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/reconciliation"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultInterRequestDelay spaces the per-employee round trips to the
// external system
const DefaultInterRequestDelay = 500 * time.Millisecond

// PurchaseSyncService runs the reconciliation pass: it ingests externally
// recorded purchase entries, matches them against known orders and either
// auto-matches, auto-debits the budget, or queues a manual review.
type PurchaseSyncService struct {
	coordinator    *SyncCoordinator
	settings       shared.SettingsProvider
	client         hibob.Client
	employeeRepo   budget.EmployeeRepository
	adjustmentRepo budget.AdjustmentRepository
	orderRepo      order.Repository
	reviewRepo     reconciliation.ReviewRepository
	runRepo        reconciliation.SyncRunRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger

	interRequestDelay time.Duration
}

// NewPurchaseSyncService creates a new PurchaseSyncService
func NewPurchaseSyncService(
	coordinator *SyncCoordinator,
	settings shared.SettingsProvider,
	client hibob.Client,
	employeeRepo budget.EmployeeRepository,
	adjustmentRepo budget.AdjustmentRepository,
	orderRepo order.Repository,
	reviewRepo reconciliation.ReviewRepository,
	runRepo reconciliation.SyncRunRepository,
	logger *zap.Logger,
) *PurchaseSyncService {
	return &PurchaseSyncService{
		coordinator:       coordinator,
		settings:          settings,
		client:            client,
		employeeRepo:      employeeRepo,
		adjustmentRepo:    adjustmentRepo,
		orderRepo:         orderRepo,
		reviewRepo:        reviewRepo,
		runRepo:           runRepo,
		logger:            logger,
		interRequestDelay: DefaultInterRequestDelay,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *PurchaseSyncService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetInterRequestDelay overrides the delay between per-employee external
// reads. Tests set this to zero.
func (s *PurchaseSyncService) SetInterRequestDelay(d time.Duration) {
	s.interRequestDelay = d
}

// Run executes one reconciliation pass over every employee with a linked
// external identity. At most one purchase sync runs at a time; a second
// trigger fails fast with ErrSyncInProgress. Reviews are committed per
// entry, so a failure partway preserves the progress already made.
func (s *PurchaseSyncService) Run(ctx context.Context, triggeredBy uuid.UUID) (*SyncRunResponse, error) {
	if !s.coordinator.TryAcquire(SyncKindPurchase) {
		return nil, shared.ErrSyncInProgress
	}
	defer s.coordinator.Release(SyncKindPurchase)

	cfg, err := hibob.ResolveTableConfig(ctx, s.settings)
	if err != nil {
		return nil, err
	}

	run := reconciliation.NewPurchaseSyncRun(triggeredBy)
	if err := s.runRepo.Save(ctx, run); err != nil {
		return nil, err
	}

	if err := s.runEmployees(ctx, cfg, run); err != nil {
		run.Fail(err)
		s.logger.Error("purchase sync failed",
			zap.String("run_id", run.ID.String()),
			zap.Error(err))
	} else {
		run.Complete()
	}
	if err := s.runRepo.Save(ctx, run); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, reconciliation.NewSyncCompletedEvent(run)); err != nil {
			s.logger.Warn("failed to publish sync completed event", zap.Error(err))
		}
	}

	s.logger.Info("purchase sync finished",
		zap.String("run_id", run.ID.String()),
		zap.String("status", string(run.Status)),
		zap.Int("entries_found", run.EntriesFound),
		zap.Int("entries_matched", run.EntriesMatched),
		zap.Int("entries_adjusted", run.EntriesAdjusted),
		zap.Int("entries_pending", run.EntriesPending))

	response := ToSyncRunResponse(run)
	return &response, nil
}

func (s *PurchaseSyncService) runEmployees(ctx context.Context, cfg hibob.TableConfig, run *reconciliation.PurchaseSyncRun) error {
	employees, err := s.employeeRepo.FindHibobLinked(ctx)
	if err != nil {
		return err
	}

	for i := range employees {
		employee := &employees[i]
		if i > 0 {
			if err := sleepCtx(ctx, s.interRequestDelay); err != nil {
				return err
			}
		}

		rows, err := s.client.GetTableEntries(ctx, *employee.HibobID, cfg.TableID)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if err := s.processRow(ctx, cfg, run, employee, row); err != nil {
				return err
			}
		}
	}
	return nil
}

// processRow handles one external entry. Parse and extraction problems are
// row-scoped: logged and skipped, never fatal to the run.
func (s *PurchaseSyncService) processRow(ctx context.Context, cfg hibob.TableConfig, run *reconciliation.PurchaseSyncRun, employee *budget.Employee, row hibob.TableEntry) error {
	exists, err := s.reviewRepo.ExistsByHibobEntryID(ctx, row.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	entry, err := cfg.Mapping.Extract(row)
	if err != nil {
		s.logger.Warn("skipping malformed external entry",
			zap.String("entry_id", row.ID),
			zap.Error(err))
		return nil
	}
	amountCents, err := reconciliation.ParseAmountToCents(entry.Amount)
	if err != nil {
		s.logger.Warn("skipping external entry with unparseable amount",
			zap.String("entry_id", entry.ID),
			zap.String("amount", entry.Amount),
			zap.Error(err))
		return nil
	}

	review, err := reconciliation.NewPurchaseReview(entry.ID, employee.ID, entry.Date, amountCents, entry.Currency, entry.Description)
	if err != nil {
		return err
	}

	orders, err := s.orderRepo.FindBudgetRelevantByEmployee(ctx, employee.ID)
	if err != nil {
		return err
	}
	candidates := reconciliation.MatchCandidates(amountCents, entry.Date, orders)

	switch len(candidates) {
	case 1:
		if err := review.ResolveMatched(candidates[0].ID, uuid.Nil); err != nil {
			return err
		}
	case 0:
		adjustment, err := s.createEntryAdjustment(ctx, employee, entry, amountCents)
		if err != nil {
			return err
		}
		if err := review.ResolveAdjusted(adjustment.ID, uuid.Nil); err != nil {
			return err
		}
	default:
		// Ambiguous: more than one order within tolerance. Routed to
		// manual review, no automatic budget effect.
	}

	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return err
	}
	run.RecordEntry(review.Status)

	if review.IsPending() && s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, reconciliation.NewReviewCreatedEvent(review)); err != nil {
			s.logger.Warn("failed to publish review created event",
				zap.String("review_id", review.ID.String()),
				zap.Error(err))
		}
	}
	return nil
}

// createEntryAdjustment debits the budget for an unattributed external
// purchase and refreshes the employee's cache. If a previous run already
// inserted the adjustment but failed before saving its review, the existing
// adjustment is reused instead of tripping the unique entry-id index.
func (s *PurchaseSyncService) createEntryAdjustment(ctx context.Context, employee *budget.Employee, entry hibob.Entry, amountCents int64) (*budget.BudgetAdjustment, error) {
	existing, err := s.adjustmentRepo.FindByHibobEntryID(ctx, entry.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	reason := "Unmatched external purchase"
	if entry.Description != "" {
		reason = "Unmatched external purchase: " + entry.Description
	}
	adjustment, err := budget.NewHibobAdjustment(employee.ID, -amountCents, reason, entry.ID)
	if err != nil {
		return nil, err
	}
	if err := s.adjustmentRepo.Save(ctx, adjustment); err != nil {
		return nil, err
	}

	spent, err := s.orderRepo.SumBudgetRelevantByEmployee(ctx, employee.ID)
	if err != nil {
		return nil, err
	}
	adjustments, err := s.adjustmentRepo.SumByEmployee(ctx, employee.ID)
	if err != nil {
		return nil, err
	}
	employee.RefreshCache(spent, adjustments, time.Now())
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}
	return adjustment, nil
}

// GetRun returns one run log
func (s *PurchaseSyncService) GetRun(ctx context.Context, runID uuid.UUID) (*SyncRunResponse, error) {
	run, err := s.runRepo.FindByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	response := ToSyncRunResponse(run)
	return &response, nil
}

// ListRecentRuns returns the most recent run logs
func (s *PurchaseSyncService) ListRecentRuns(ctx context.Context, limit int) ([]SyncRunResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	runs, err := s.runRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]SyncRunResponse, 0, len(runs))
	for i := range runs {
		out = append(out, ToSyncRunResponse(&runs[i]))
	}
	return out, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
