package ports

import (
	"context"

	"github.com/termdeck/termdeck/internal/domain"
)

// FlagStore is the host's named-flag storage, used both for domain data
// (identity fields on entities) and session state (per-user booleans).
// A missing flag reads as the empty string, not an error.
type FlagStore interface {
	EntityFlag(ctx context.Context, id domain.EntityID, key string) (string, error)
	SetEntityFlag(ctx context.Context, id domain.EntityID, key, value string) error
	UserFlag(ctx context.Context, userID, key string) (string, error)
	SetUserFlag(ctx context.Context, userID, key, value string) error
}
