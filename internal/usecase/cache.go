package usecase

import (
	"context"
	"time"
)

// ResultCache is satisfied by the redis wrapper. A nil or unavailable cache
// means every lookup misses; callers must not depend on hits.
type ResultCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}
