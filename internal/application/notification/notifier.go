package notification

import "context"

// Audience selects who a notification is addressed to
type Audience string

const (
	AudienceEmployee Audience = "employee"
	AudienceAdmins   Audience = "admins"
)

// Notifier delivers user-facing notifications. Delivery is fire-and-forget
// from the ledger's point of view: handlers run off the outbox, so a failed
// delivery can never roll back the mutation that triggered it.
type Notifier interface {
	Notify(ctx context.Context, audience Audience, recipient string, template string, data map[string]any) error
}

// NopNotifier discards all notifications. Used in tests and when no
// delivery channel is configured.
type NopNotifier struct{}

// Notify implements Notifier
func (NopNotifier) Notify(context.Context, Audience, string, string, map[string]any) error {
	return nil
}
