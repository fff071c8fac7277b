package ports

import (
	"context"
	"time"

	"hubops/internal/core/domain/model/sequence"
)

// SequenceRepository backs the code allocator.
type SequenceRepository interface {
	// NextNumber atomically increments and returns the counter for
	// (kind, yy). The first call returns 1.
	NextNumber(ctx context.Context, kind sequence.Kind, yy int) (int64, error)

	// Reserve records code as issued for kind. It returns false without
	// error when the code was already issued.
	Reserve(ctx context.Context, kind sequence.Kind, code string, scopeKey string, at time.Time) (bool, error)
}

// ScopeLocker serializes allocations that share a key.
type ScopeLocker interface {
	// Lock blocks until the key is held or ctx is done. The returned
	// function releases it.
	Lock(ctx context.Context, key string) (release func(), err error)
}
