package metadata

import (
	"context"
)

// Repository is a key/value view over the local metadata table. Missing keys
// read as nil without an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetKeys(ctx context.Context, keys ...string) (map[string][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	DeleteKeys(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
