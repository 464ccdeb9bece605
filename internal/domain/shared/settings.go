package shared

import "context"

// SettingsProvider resolves deployment configuration values stored outside
// the process. Implementations cache with a short TTL and fall back to
// static defaults for unknown keys.
type SettingsProvider interface {
	// Get returns the value for key, or "" when the key is unset and has
	// no default
	Get(ctx context.Context, key string) (string, error)
}
