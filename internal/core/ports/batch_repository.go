package ports

import (
	"context"
	"errors"

	"hubops/internal/core/domain/model/batch"
	"hubops/internal/core/domain/model/kernel"
)

// ErrActiveBatchExists reports a lost race on the one-ACTIVE-per-staff rule.
var ErrActiveBatchExists = errors.New("an active batch already exists for the staff code")

type BatchRepository interface {
	// Add stores a new batch. A second ACTIVE batch for the same staff code
	// violates the storage constraint and fails with ErrActiveBatchExists.
	Add(ctx context.Context, aggregate *batch.Batch) error

	Update(ctx context.Context, aggregate *batch.Batch) error

	Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error)

	GetForUpdate(ctx context.Context, id kernel.UUID) (*batch.Batch, error)

	// GetActiveForUpdate returns the ACTIVE batch of staffCode locked for
	// update, or an ObjectNotFoundError.
	GetActiveForUpdate(ctx context.Context, staffCode string) (*batch.Batch, error)
}
