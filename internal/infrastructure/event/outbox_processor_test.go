package event

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryOutbox is an in-memory OutboxRepository. Individual methods can be
// overridden per test through the hook funcs.
type memoryOutbox struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*shared.OutboxEntry

	findRetryableFn func(ctx context.Context, before time.Time, limit int) ([]*shared.OutboxEntry, error)
	deleteFn        func(ctx context.Context, before time.Time) (int64, error)
}

func newMemoryOutbox() *memoryOutbox {
	return &memoryOutbox{entries: make(map[uuid.UUID]*shared.OutboxEntry)}
}

func (r *memoryOutbox) Save(_ context.Context, entries ...*shared.OutboxEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range entries {
		r.entries[e.ID] = e
	}
	return nil
}

func (r *memoryOutbox) FindPending(_ context.Context, limit int) ([]*shared.OutboxEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var pending []*shared.OutboxEntry
	for _, e := range r.entries {
		if e.Status == shared.OutboxStatusPending {
			pending = append(pending, e)
			if len(pending) >= limit {
				break
			}
		}
	}
	return pending, nil
}

func (r *memoryOutbox) FindRetryable(ctx context.Context, before time.Time, limit int) ([]*shared.OutboxEntry, error) {
	if r.findRetryableFn != nil {
		return r.findRetryableFn(ctx, before, limit)
	}
	return nil, nil
}

func (r *memoryOutbox) MarkProcessing(_ context.Context, ids []uuid.UUID) ([]*shared.OutboxEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var claimed []*shared.OutboxEntry
	for _, id := range ids {
		if e, ok := r.entries[id]; ok {
			e.Status = shared.OutboxStatusProcessing
			claimed = append(claimed, e)
		}
	}
	return claimed, nil
}

func (r *memoryOutbox) Update(_ context.Context, entry *shared.OutboxEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.ID] = entry
	return nil
}

func (r *memoryOutbox) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	if r.deleteFn != nil {
		return r.deleteFn(ctx, before)
	}
	return 0, nil
}

func (r *memoryOutbox) status(id uuid.UUID) shared.OutboxStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries[id].Status
}

func (r *memoryOutbox) lastError(id uuid.UUID) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries[id].LastError
}

// startProcessor starts p and registers a graceful stop on test cleanup.
func startProcessor(t *testing.T, p *OutboxProcessor) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, p.Start(ctx))
	t.Cleanup(func() {
		cancel()
		stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
		defer stopCancel()
		if err := p.Stop(stopCtx); err != nil {
			t.Errorf("processor stop: %v", err)
		}
	})
}

func fastPollConfig() OutboxProcessorConfig {
	return OutboxProcessorConfig{
		BatchSize:    100,
		PollInterval: 10 * time.Millisecond,
	}
}

func TestOutboxProcessor_DeliversPendingEntries(t *testing.T) {
	logger := zap.NewNop()
	serializer := NewEventSerializer()
	serializer.Register("order.created", &shopEvent{})

	repo := newMemoryOutbox()
	bus := NewInMemoryEventBus(logger)
	handler := newRecordingHandler("order.created")
	bus.Subscribe(handler, "order.created")

	evt := newShopEvent("order.created")
	payload, err := serializer.Serialize(evt)
	require.NoError(t, err)
	entry := shared.NewOutboxEntry(evt, payload)
	require.NoError(t, repo.Save(context.Background(), entry))

	processor := NewOutboxProcessor(repo, bus, serializer, fastPollConfig(), logger)
	startProcessor(t, processor)

	assert.Eventually(t, func() bool {
		return repo.status(entry.ID) == shared.OutboxStatusSent
	}, time.Second, 10*time.Millisecond)
	assert.Len(t, handler.getHandled(), 1)
}

func TestOutboxProcessor_StopGracefully(t *testing.T) {
	logger := zap.NewNop()
	processor := NewOutboxProcessor(
		newMemoryOutbox(),
		NewInMemoryEventBus(logger),
		NewEventSerializer(),
		DefaultOutboxProcessorConfig(),
		logger,
	)

	require.NoError(t, processor.Start(context.Background()))

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, processor.Stop(stopCtx))
}

func TestOutboxProcessor_UnknownEventTypeFailsEntry(t *testing.T) {
	logger := zap.NewNop()
	// Serializer deliberately has no type registered, so deserialization
	// of the stored payload must fail.
	serializer := NewEventSerializer()

	repo := newMemoryOutbox()
	evt := newShopEvent("order.legacy_import")
	entry := shared.NewOutboxEntry(evt, []byte(`{"type": "order.legacy_import"}`))
	entry.EventType = "order.legacy_import"
	require.NoError(t, repo.Save(context.Background(), entry))

	processor := NewOutboxProcessor(repo, NewInMemoryEventBus(logger), serializer, fastPollConfig(), logger)
	startProcessor(t, processor)

	assert.Eventually(t, func() bool {
		return repo.status(entry.ID) == shared.OutboxStatusFailed
	}, time.Second, 10*time.Millisecond)
	assert.Contains(t, repo.lastError(entry.ID), "unknown event type")
}

func TestDefaultOutboxProcessorConfig(t *testing.T) {
	config := DefaultOutboxProcessorConfig()

	assert.Equal(t, 100, config.BatchSize)
	assert.Equal(t, 5*time.Second, config.PollInterval)
	assert.True(t, config.CleanupEnabled)
	assert.Equal(t, 7*24*time.Hour, config.CleanupRetention)
	assert.Equal(t, 1*time.Hour, config.CleanupInterval)
}
