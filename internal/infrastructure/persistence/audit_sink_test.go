package persistence

import (
	"context"
	"testing"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuditTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.AuditLogModel{})
	require.NoError(t, err)

	return db
}

func TestGormAuditSink_Record(t *testing.T) {
	db := setupAuditTestDB(t)
	sink := NewGormAuditSink(db, zap.NewNop())
	ctx := context.Background()

	actorID := uuid.New()
	resourceID := uuid.New()
	err := sink.Record(ctx, actorID, "order.approve", "order", resourceID, map[string]any{
		"from": "pending",
		"to":   "ordered",
	})
	require.NoError(t, err)

	var rows []models.AuditLogModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "order.approve", rows[0].Action)
	assert.Equal(t, "order", rows[0].ResourceType)
	assert.Equal(t, resourceID, rows[0].ResourceID)
	require.NotNil(t, rows[0].ActorID)
	assert.Equal(t, actorID, *rows[0].ActorID)
	assert.Contains(t, string(rows[0].Details), `"from":"pending"`)
}

func TestGormAuditSink_Record_SystemActor(t *testing.T) {
	db := setupAuditTestDB(t)
	sink := NewGormAuditSink(db, zap.NewNop())

	err := sink.Record(context.Background(), uuid.Nil, "sync.completed", "sync_run", uuid.New(), nil)
	require.NoError(t, err)

	var rows []models.AuditLogModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].ActorID)
	assert.Empty(t, rows[0].Details)
}

func TestGormAuditSink_Record_SwallowsWriteFailure(t *testing.T) {
	db := setupAuditTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.AuditLogModel{}))
	sink := NewGormAuditSink(db, zap.NewNop())

	err := sink.Record(context.Background(), uuid.New(), "order.approve", "order", uuid.New(), nil)
	assert.NoError(t, err)
}
