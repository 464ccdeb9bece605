package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDBMetrics(t *testing.T) *DBMetrics {
	t.Helper()
	m, err := NewDBMetrics(noop.NewMeterProvider().Meter("db.client"), DBMetricsConfig{
		Enabled:            true,
		SlowQueryThreshold: 50 * time.Millisecond,
	}, zap.NewNop())
	require.NoError(t, err)
	return m
}

func TestDefaultDBMetricsConfig(t *testing.T) {
	cfg := DefaultDBMetricsConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 200*time.Millisecond, cfg.SlowQueryThreshold)
	assert.Equal(t, 15*time.Second, cfg.PoolStatsInterval)
}

func TestDBMetrics_RecordQuery(t *testing.T) {
	m := newTestDBMetrics(t)
	ctx := context.Background()

	// Fast and slow statements, plus a missing operation name
	m.RecordQuery(ctx, "select", "orders", 5*time.Millisecond, nil)
	m.RecordQuery(ctx, "INSERT", "budget_adjustments", 120*time.Millisecond, nil)
	m.RecordQuery(ctx, "", "", 120*time.Millisecond, nil)
}

func poolGauge(t *testing.T, reader *sdkmetric.ManualReader, name string) (metricdata.Metrics, bool) {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return metricdata.Metrics{}, false
}

func TestDBMetrics_SamplePool(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("db.client")

	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	mockDB.SetMaxOpenConns(7)

	m, err := NewDBMetrics(meter, DBMetricsConfig{Enabled: true}, zap.NewNop())
	require.NoError(t, err)
	m.SetSQLDB(mockDB)

	m.samplePool(context.Background())

	maxGauge, ok := poolGauge(t, reader, "db_pool_connections_max")
	require.True(t, ok)
	points := maxGauge.Data.(metricdata.Gauge[int64]).DataPoints
	require.Len(t, points, 1)
	assert.Equal(t, int64(7), points[0].Value)

	connGauge, ok := poolGauge(t, reader, "db_pool_connections")
	require.True(t, ok)
	// One point per pool state: idle, in_use, open
	assert.Len(t, connGauge.Data.(metricdata.Gauge[int64]).DataPoints, 3)
}

func TestDBMetrics_SamplePoolWithoutDB(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("db.client")

	m, err := NewDBMetrics(meter, DBMetricsConfig{Enabled: true}, zap.NewNop())
	require.NoError(t, err)

	m.samplePool(context.Background())

	_, ok := poolGauge(t, reader, "db_pool_connections_max")
	assert.False(t, ok)
}

func TestDBMetrics_PoolStatsCollection(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("db.client")

	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	m, err := NewDBMetrics(meter, DBMetricsConfig{
		Enabled:           true,
		PoolStatsInterval: 10 * time.Millisecond,
	}, zap.NewNop())
	require.NoError(t, err)
	m.SetSQLDB(mockDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.StartPoolStatsCollection(ctx)
	defer m.Stop()

	assert.Eventually(t, func() bool {
		_, ok := poolGauge(t, reader, "db_pool_connections")
		return ok
	}, time.Second, 10*time.Millisecond)
}

func TestDBMetrics_StopIsIdempotent(t *testing.T) {
	m := newTestDBMetrics(t)
	m.Stop()
	m.Stop()
}

func TestDBMetricsPlugin_InitializeAndQuery(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	m := newTestDBMetrics(t)
	require.NoError(t, db.Use(NewDBMetricsPlugin(m, zap.NewNop())))

	// Callbacks must not interfere with statement execution
	require.NoError(t, db.Exec("CREATE TABLE purchase_reviews (id TEXT PRIMARY KEY)").Error)
	require.NoError(t, db.Exec("INSERT INTO purchase_reviews (id) VALUES ('r1')").Error)
	var count int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM purchase_reviews").Scan(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDetectOperationType(t *testing.T) {
	cases := map[string]string{
		"SELECT * FROM orders":               "SELECT",
		"  insert into budget_rules values": "INSERT",
		"UPDATE employees SET active = 0":    "UPDATE",
		"delete from cart_items":             "DELETE",
		"PRAGMA foreign_keys = ON":           "OTHER",
		"":                                   "OTHER",
	}
	for sql, want := range cases {
		assert.Equal(t, want, detectOperationType(sql), sql)
	}
}
