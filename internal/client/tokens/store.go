// Package tokens persists the access/refresh token pair between runs.
//
// A pair is always written and removed as a unit: readers observe either
// both tokens or neither.
package tokens

import (
	"context"

	"github.com/sachink160/multitool-client/internal/client/models"
)

// Store is the credential store used by the API client and the session.
//
// Read reports ok=false, with a nil error, when no complete pair is stored.
// Clear is idempotent.
type Store interface {
	Save(ctx context.Context, pair models.TokenPair) error
	Read(ctx context.Context) (pair models.TokenPair, ok bool, err error)
	Clear(ctx context.Context) error
}
