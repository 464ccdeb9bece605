package notification

import (
	"context"

	appnotification "github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/application/notification"
	"go.uber.org/zap"
)

// LogNotifier writes notifications to the application log. It stands in for
// a real delivery channel (email, Slack) until one is configured.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a new log-backed notifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements notification.Notifier
func (n *LogNotifier) Notify(ctx context.Context, audience appnotification.Audience, recipient string, template string, data map[string]any) error {
	n.logger.Info("notification dispatched",
		zap.String("audience", string(audience)),
		zap.String("recipient", recipient),
		zap.String("template", template),
		zap.Any("data", data),
	)
	return nil
}

var _ appnotification.Notifier = (*LogNotifier)(nil)
