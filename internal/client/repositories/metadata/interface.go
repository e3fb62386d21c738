// Package metadata is a small key/value repository over the local SQLite
// database. It backs the persisted token pair and any other client state
// that must survive restarts.
package metadata

import (
	"context"
)

// Repository stores string values by key.
//
// Get reports found=false, with a nil error, when the key is absent.
// Delete and Clear are idempotent.
type Repository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
