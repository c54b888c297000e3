package adapter

import "context"

// SettingRepository persists small application settings as key-value
// pairs, such as the last-known localized name of the pinned category.
type SettingRepository interface {
	// Get returns the value for a key, or "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores the value for a key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
}
