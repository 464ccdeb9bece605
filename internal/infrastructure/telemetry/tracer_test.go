package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func newDisabledTracerProvider(t *testing.T, ratio float64) *telemetry.TracerProvider {
	t.Helper()

	tp, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           false,
		CollectorEndpoint: "localhost:14317",
		SamplingRatio:     ratio,
		ServiceName:       "homeoffice-shop",
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NotNil(t, tp)
	return tp
}

func TestNewTracerProvider_DisabledIsNoop(t *testing.T) {
	ctx := context.Background()
	tp := newDisabledTracerProvider(t, 1.0)

	assert.False(t, tp.IsEnabled())

	cfg := tp.GetConfig()
	assert.Equal(t, "homeoffice-shop", cfg.ServiceName)
	assert.False(t, cfg.Enabled)

	// The disabled provider still hands out usable tracers.
	tracer := tp.Tracer("order-sync")
	require.NotNil(t, tracer)
	_, span := tracer.Start(ctx, "order.sync")
	span.End()

	assert.NoError(t, tp.ForceFlush(ctx))
	assert.NoError(t, tp.Shutdown(ctx))
}

func TestNewTracerProvider_SamplingRatioAccepted(t *testing.T) {
	for _, ratio := range []float64{0.0, 0.5, 1.0} {
		tp := newDisabledTracerProvider(t, ratio)
		assert.NoError(t, tp.Shutdown(context.Background()))
	}
}

func TestTracerProvider_ShutdownWithCancelledContext(t *testing.T) {
	tp := newDisabledTracerProvider(t, 1.0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A disabled provider has nothing to flush, so a dead context is fine.
	assert.NoError(t, tp.Shutdown(ctx))
}

func TestNewTracerProvider_Enabled(t *testing.T) {
	// Needs a reachable OTLP collector, so only runs outside short mode.
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           true,
		CollectorEndpoint: "localhost:14317",
		SamplingRatio:     1.0,
		ServiceName:       "homeoffice-shop",
	}, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.True(t, tp.IsEnabled())

	_, span := tp.Tracer("order-sync").Start(ctx, "order.sync")
	span.End()

	assert.NoError(t, tp.ForceFlush(ctx))
	assert.NoError(t, tp.Shutdown(ctx))
}

func TestNewTracerProvider_UnreachableCollector(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           true,
		CollectorEndpoint: "invalid-host:99999",
		SamplingRatio:     1.0,
		ServiceName:       "homeoffice-shop",
	}, zaptest.NewLogger(t, zaptest.Level(zap.ErrorLevel)))
	if err != nil {
		t.Logf("collector unreachable: %v", err)
		return
	}

	// The gRPC exporter connects lazily, so construction may succeed.
	_ = tp.Shutdown(context.Background())
}
