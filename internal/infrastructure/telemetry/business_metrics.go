package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// BusinessMetrics tracks order activity, reconciliation runs and expense
// push-backs for the shop service.
type BusinessMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	orderCreatedTotal     *Counter
	orderAmountTotal      *Counter
	orderTransitionTotal  *Counter
	syncRunTotal          *Counter
	syncEntryTotal        *Counter
	expensePushTotal      *Counter
	budgetAdjustmentTotal *Counter

	pendingReviewCount *Gauge

	stopChan    chan struct{}
	stopOnce    sync.Once
	collectOnce sync.Once

	reviewProvider ReviewMetricsProvider
}

// ReviewMetricsProvider supplies reconciliation data for the periodic
// gauge collector. The interface keeps the telemetry layer off the
// reconciliation domain.
type ReviewMetricsProvider interface {
	GetPendingReviewCount(ctx context.Context) (int64, error)
}

// BusinessMetricsConfig holds configuration for business metrics.
type BusinessMetricsConfig struct {
	Meter           metric.Meter
	Logger          *zap.Logger
	CollectInterval time.Duration // Default: 5 minutes
	ReviewProvider  ReviewMetricsProvider
}

// NewBusinessMetrics registers the domain instruments on the configured meter.
func NewBusinessMetrics(cfg BusinessMetricsConfig) (*BusinessMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bm := &BusinessMetrics{
		meter:          cfg.Meter,
		logger:         logger,
		stopChan:       make(chan struct{}),
		reviewProvider: cfg.ReviewProvider,
	}

	var err error
	if bm.orderCreatedTotal, err = NewCounter(cfg.Meter, "shop_order_created_total",
		"Total number of orders created", "{orders}"); err != nil {
		return nil, err
	}
	if bm.orderAmountTotal, err = NewCounter(cfg.Meter, "shop_order_amount_total",
		"Total order amount in cents", "{cents}"); err != nil {
		return nil, err
	}
	if bm.orderTransitionTotal, err = NewCounter(cfg.Meter, "shop_order_transition_total",
		"Total number of order status transitions", "{transitions}"); err != nil {
		return nil, err
	}
	if bm.syncRunTotal, err = NewCounter(cfg.Meter, "shop_purchase_sync_run_total",
		"Total number of purchase reconciliation runs", "{runs}"); err != nil {
		return nil, err
	}
	if bm.syncEntryTotal, err = NewCounter(cfg.Meter, "shop_purchase_sync_entry_total",
		"Total number of external purchase entries processed", "{entries}"); err != nil {
		return nil, err
	}
	if bm.expensePushTotal, err = NewCounter(cfg.Meter, "shop_expense_push_total",
		"Total number of expense entries pushed to the HR system", "{entries}"); err != nil {
		return nil, err
	}
	if bm.budgetAdjustmentTotal, err = NewCounter(cfg.Meter, "shop_budget_adjustment_total",
		"Total number of budget adjustments recorded", "{adjustments}"); err != nil {
		return nil, err
	}
	if bm.pendingReviewCount, err = NewGauge(cfg.Meter, "shop_pending_review_count",
		"Number of purchase reviews awaiting manual resolution", "{reviews}"); err != nil {
		return nil, err
	}

	return bm, nil
}

// RecordOrderCreated records an order creation event together with its
// charged amount in cents.
func (bm *BusinessMetrics) RecordOrderCreated(ctx context.Context, amountCents int64) {
	bm.orderCreatedTotal.Inc(ctx)
	bm.orderAmountTotal.Add(ctx, amountCents)
}

// RecordOrderTransition records a status transition on an order.
func (bm *BusinessMetrics) RecordOrderTransition(ctx context.Context, fromStatus, toStatus string) {
	bm.orderTransitionTotal.Inc(ctx,
		AttrOrderFromStatus.String(fromStatus),
		AttrOrderToStatus.String(toStatus),
	)
}

// SyncRunStatus labels the outcome of a reconciliation run.
type SyncRunStatus string

const (
	SyncRunStatusCompleted SyncRunStatus = "completed"
	SyncRunStatusFailed    SyncRunStatus = "failed"
)

// SyncEntryOutcome labels how a processed external entry was resolved.
type SyncEntryOutcome string

const (
	SyncEntryOutcomeMatched  SyncEntryOutcome = "matched"
	SyncEntryOutcomeAdjusted SyncEntryOutcome = "adjusted"
	SyncEntryOutcomePending  SyncEntryOutcome = "pending"
	SyncEntryOutcomeSkipped  SyncEntryOutcome = "skipped"
)

// RecordSyncRun records a completed or failed reconciliation run.
func (bm *BusinessMetrics) RecordSyncRun(ctx context.Context, status SyncRunStatus) {
	bm.syncRunTotal.Inc(ctx, AttrSyncRunStatus.String(string(status)))
}

// RecordSyncEntry records one processed external purchase entry.
func (bm *BusinessMetrics) RecordSyncEntry(ctx context.Context, outcome SyncEntryOutcome) {
	bm.syncEntryTotal.Inc(ctx, AttrSyncEntryOutcome.String(string(outcome)))
}

// PushStatus labels the outcome of an expense push.
type PushStatus string

const (
	PushStatusSuccess PushStatus = "success"
	PushStatusFailed  PushStatus = "failed"
)

// RecordExpensePush records one expense entry pushed to the HR system.
func (bm *BusinessMetrics) RecordExpensePush(ctx context.Context, status PushStatus) {
	bm.expensePushTotal.Inc(ctx, AttrPushStatus.String(string(status)))
}

// RecordBudgetAdjustment records a budget adjustment, labeled by its source
// (manual or hibob).
func (bm *BusinessMetrics) RecordBudgetAdjustment(ctx context.Context, source string) {
	bm.budgetAdjustmentTotal.Inc(ctx, AttrAdjustmentSource.String(source))
}

// RecordPendingReviewCount records the number of pending purchase reviews.
func (bm *BusinessMetrics) RecordPendingReviewCount(ctx context.Context, count int64) {
	bm.pendingReviewCount.Record(ctx, count)
}

// StartPeriodicCollection launches the gauge collector. Non-blocking and
// single-shot; Stop ends it.
func (bm *BusinessMetrics) StartPeriodicCollection(ctx context.Context, interval time.Duration) {
	bm.collectOnce.Do(func() {
		if interval <= 0 {
			interval = 5 * time.Minute
		}
		go bm.collectLoop(ctx, interval)
	})
}

func (bm *BusinessMetrics) collectLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	bm.collectReviewMetrics(ctx)
	for {
		select {
		case <-bm.stopChan:
			bm.logger.Info("Stopping periodic business metrics collection")
			return
		case <-ctx.Done():
			bm.logger.Info("Context cancelled, stopping periodic business metrics collection")
			return
		case <-ticker.C:
			bm.collectReviewMetrics(ctx)
		}
	}
}

func (bm *BusinessMetrics) collectReviewMetrics(ctx context.Context) {
	if bm.reviewProvider == nil {
		bm.logger.Debug("No review provider configured, skipping review metrics collection")
		return
	}

	count, err := bm.reviewProvider.GetPendingReviewCount(ctx)
	if err != nil {
		bm.logger.Warn("Failed to get pending review count", zap.Error(err))
		return
	}

	bm.RecordPendingReviewCount(ctx, count)
}

// Stop stops the periodic collection. Idempotent.
func (bm *BusinessMetrics) Stop() {
	bm.stopOnce.Do(func() {
		close(bm.stopChan)
	})
}

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewBusinessMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}

// Attribute keys for the domain instruments.
var (
	AttrOrderFromStatus  = attribute.Key("from_status")
	AttrOrderToStatus    = attribute.Key("to_status")
	AttrSyncRunStatus    = attribute.Key("run_status")
	AttrSyncEntryOutcome = attribute.Key("entry_outcome")
	AttrPushStatus       = attribute.Key("push_status")
	AttrAdjustmentSource = attribute.Key("adjustment_source")
)
