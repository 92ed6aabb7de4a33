package ports

import "context"

// SecretStore keys are slash separated relative paths, for example
// discord/<guild id>/bot_token.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
