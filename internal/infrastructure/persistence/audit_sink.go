package persistence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormAuditSink implements shared.AuditSink with an append-only table.
// Failures are logged and swallowed so auditing can never fail the
// operation it records.
type GormAuditSink struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormAuditSink creates a new GormAuditSink
func NewGormAuditSink(db *gorm.DB, logger *zap.Logger) *GormAuditSink {
	return &GormAuditSink{db: db, logger: logger}
}

// Record appends one audit row
func (s *GormAuditSink) Record(ctx context.Context, actorID uuid.UUID, action, resourceType string, resourceID uuid.UUID, details map[string]any) error {
	row := models.AuditLogModel{
		ID:           uuid.New(),
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		CreatedAt:    time.Now(),
	}
	if actorID != uuid.Nil {
		row.ActorID = &actorID
	}
	if len(details) > 0 {
		payload, err := json.Marshal(details)
		if err != nil {
			s.logger.Warn("failed to serialize audit details",
				zap.String("action", action),
				zap.Error(err))
		} else {
			row.Details = payload
		}
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		s.logger.Warn("failed to write audit record",
			zap.String("action", action),
			zap.String("resource_type", resourceType),
			zap.Error(err))
	}
	return nil
}

var _ shared.AuditSink = (*GormAuditSink)(nil)
