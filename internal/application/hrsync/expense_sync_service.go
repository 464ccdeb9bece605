package hrsync

import (
	"context"
	"sync"
	"time"

	apporder "github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/application/order"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/hibob"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/order"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultInterPushDelay spaces the per-item pushes to the external system
const DefaultInterPushDelay = 300 * time.Millisecond

const expenseCurrency = "EUR"

// ExpenseSyncService pushes delivered orders into the external HR system as
// expense entries, one per line item, idempotently and resumably.
type ExpenseSyncService struct {
	scope          apporder.TransactionScope
	client         hibob.Client
	settings       shared.SettingsProvider
	eventPublisher shared.EventPublisher
	audit          shared.AuditSink
	logger         *zap.Logger

	interPushDelay time.Duration

	// active guards each order against concurrent pushes. Item checkpoints
	// commit one at a time, so the row lock alone cannot serialize a full
	// run.
	active sync.Map
}

// NewExpenseSyncService creates a new ExpenseSyncService
func NewExpenseSyncService(
	scope apporder.TransactionScope,
	client hibob.Client,
	settings shared.SettingsProvider,
	logger *zap.Logger,
) *ExpenseSyncService {
	return &ExpenseSyncService{
		scope:          scope,
		client:         client,
		settings:       settings,
		audit:          shared.NopAuditSink{},
		logger:         logger,
		interPushDelay: DefaultInterPushDelay,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *ExpenseSyncService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetAuditSink sets the audit sink for state-changing operations
func (s *ExpenseSyncService) SetAuditSink(sink shared.AuditSink) {
	s.audit = sink
}

// SetInterPushDelay overrides the delay between item pushes. Tests set this
// to zero.
func (s *ExpenseSyncService) SetInterPushDelay(d time.Duration) {
	s.interPushDelay = d
}

// SyncOrderResponse reports the outcome of one push-back
type SyncOrderResponse struct {
	OrderID     uuid.UUID `json:"order_id"`
	PushedItems int       `json:"pushed_items"`
	TotalItems  int       `json:"total_items"`
	SyncedAt    time.Time `json:"synced_at"`
}

// UnsyncOrderResponse reports the outcome of a sync reversal
type UnsyncOrderResponse struct {
	OrderID        uuid.UUID `json:"order_id"`
	DeletedEntries int       `json:"deleted_entries"`
}

// SyncOrder pushes a delivered order's unsynced items as external expense
// entries. Each item's checkpoint commits in its own transaction before the
// next push starts; a failure partway leaves the completed checkpoints
// durable, so a retry resends only the remaining items. Concurrent sync
// requests for the same order are rejected while a push is running.
func (s *ExpenseSyncService) SyncOrder(ctx context.Context, orderID, actorID uuid.UUID) (*SyncOrderResponse, error) {
	cfg, err := hibob.ResolveTableConfig(ctx, s.settings)
	if err != nil {
		return nil, err
	}

	if _, busy := s.active.LoadOrStore(orderID, struct{}{}); busy {
		return nil, shared.NewDomainError("ORDER_SYNC_IN_PROGRESS", "A sync for this order is already running")
	}
	defer s.active.Delete(orderID)

	var hibobID string
	var pending []*order.Item
	var totalItems int

	err = s.scope.Execute(ctx, func(repos apporder.TransactionalRepositories) error {
		o, err := repos.OrderRepo().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Status != order.StatusDelivered {
			return shared.NewDomainError("ORDER_NOT_DELIVERED", "Only delivered orders can be synced")
		}
		if o.IsSynced() {
			return shared.NewDomainError("ORDER_ALREADY_SYNCED", "Order has already been synced")
		}
		employee, err := repos.EmployeeRepo().FindByID(ctx, o.EmployeeID)
		if err != nil {
			return err
		}
		if !employee.HasLinkedHibob() {
			return shared.NewDomainError("NO_HIBOB_IDENTITY", "Employee has no linked external HR identity")
		}
		hibobID = *employee.HibobID
		pending = o.UnsyncedItems()
		totalItems = len(o.Items)
		return nil
	})
	if err != nil {
		return nil, err
	}

	pushed := 0
	for _, item := range pending {
		if pushed > 0 {
			if err := sleepCtx(ctx, s.interPushDelay); err != nil {
				return nil, err
			}
		}
		values := map[string]any{
			cfg.Mapping.DateKey:        time.Now().Format("2006-01-02"),
			cfg.Mapping.DescriptionKey: item.ExpenseDescription(),
			cfg.Mapping.AmountKey:      formatCents(item.AmountCents()),
			cfg.Mapping.CurrencyKey:    expenseCurrency,
		}
		if err := s.client.CreateTableEntry(ctx, hibobID, cfg.TableID, values); err != nil {
			return nil, err
		}
		// The checkpoint commits on its own before the next push starts.
		// It must survive a later failure in this run, so it cannot share
		// a transaction with the rest of the loop.
		item.HibobSynced = true
		item.UpdatedAt = time.Now()
		checkpoint := item
		if err := s.scope.Execute(ctx, func(repos apporder.TransactionalRepositories) error {
			return repos.OrderRepo().SaveItem(ctx, checkpoint)
		}); err != nil {
			return nil, err
		}
		pushed++
	}

	var result SyncOrderResponse
	var synced *order.Order

	err = s.scope.Execute(ctx, func(repos apporder.TransactionalRepositories) error {
		o, err := repos.OrderRepo().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		now := time.Now()
		if err := o.MarkSynced(actorID, now); err != nil {
			return err
		}
		if err := repos.OrderRepo().Save(ctx, o); err != nil {
			return err
		}

		o.AddDomainEvent(order.NewHibobSyncedEvent(o, pushed, now))
		synced = o
		result = SyncOrderResponse{
			OrderID:     o.ID,
			PushedItems: pushed,
			TotalItems:  totalItems,
			SyncedAt:    now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, synced)
	if err := s.audit.Record(ctx, actorID, "order.hibob_sync", "Order", orderID, map[string]any{
		"pushed_items": result.PushedItems,
	}); err != nil {
		s.logger.Warn("audit record failed", zap.Error(err))
	}

	s.logger.Info("order synced to external HR system",
		zap.String("order_id", orderID.String()),
		zap.Int("pushed_items", result.PushedItems))

	return &result, nil
}

// UnsyncOrder reverses a completed push-back: it deletes the external rows
// whose descriptions match the order's items, then clears the order and
// item sync state. External rows that cannot be found are logged, not
// fatal; the external table may have diverged.
func (s *ExpenseSyncService) UnsyncOrder(ctx context.Context, orderID, actorID uuid.UUID) (*UnsyncOrderResponse, error) {
	cfg, err := hibob.ResolveTableConfig(ctx, s.settings)
	if err != nil {
		return nil, err
	}

	var result UnsyncOrderResponse

	err = s.scope.Execute(ctx, func(repos apporder.TransactionalRepositories) error {
		o, err := repos.OrderRepo().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if !o.IsSynced() {
			return shared.NewDomainError("ORDER_NOT_SYNCED", "Order has not been synced")
		}
		employee, err := repos.EmployeeRepo().FindByID(ctx, o.EmployeeID)
		if err != nil {
			return err
		}
		if !employee.HasLinkedHibob() {
			return shared.NewDomainError("NO_HIBOB_IDENTITY", "Employee has no linked external HR identity")
		}

		expected := make(map[string]bool, len(o.Items))
		for i := range o.Items {
			expected[o.Items[i].ExpenseDescription()] = true
		}

		rows, err := s.client.GetTableEntries(ctx, *employee.HibobID, cfg.TableID)
		if err != nil {
			return err
		}
		deleted := 0
		for _, row := range rows {
			desc, _ := row.Values[cfg.Mapping.DescriptionKey].(string)
			if !expected[desc] {
				continue
			}
			if err := s.client.DeleteTableEntry(ctx, *employee.HibobID, cfg.TableID, row.ID); err != nil {
				return err
			}
			deleted++
		}
		if deleted == 0 {
			s.logger.Warn("no external entries matched the order's items during unsync",
				zap.String("order_id", orderID.String()))
		}

		o.ClearSyncState()
		if err := repos.OrderRepo().Save(ctx, o); err != nil {
			return err
		}
		for i := range o.Items {
			if err := repos.OrderRepo().SaveItem(ctx, &o.Items[i]); err != nil {
				return err
			}
		}

		result = UnsyncOrderResponse{OrderID: o.ID, DeletedEntries: deleted}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, actorID, "order.hibob_unsync", "Order", orderID, map[string]any{
		"deleted_entries": result.DeletedEntries,
	}); err != nil {
		s.logger.Warn("audit record failed", zap.Error(err))
	}

	return &result, nil
}

func (s *ExpenseSyncService) publishEvents(ctx context.Context, o *order.Order) {
	if s.eventPublisher == nil || o == nil {
		return
	}
	events := o.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("failed to publish sync events",
			zap.String("order_id", o.ID.String()),
			zap.Error(err))
	}
	o.ClearDomainEvents()
}

// formatCents renders a cent amount as a decimal string, e.g. 30000 as
// "300.00"
func formatCents(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
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
