package shared

import (
	"context"

	"github.com/google/uuid"
)

// AuditSink records state-changing operations for later inspection.
// The sink is append-only; nothing in the core ever reads it back.
type AuditSink interface {
	Record(ctx context.Context, actorID uuid.UUID, action, resourceType string, resourceID uuid.UUID, details map[string]any) error
}

// NopAuditSink discards all audit records. Used in tests.
type NopAuditSink struct{}

// Record implements AuditSink
func (NopAuditSink) Record(_ context.Context, _ uuid.UUID, _, _ string, _ uuid.UUID, _ map[string]any) error {
	return nil
}
