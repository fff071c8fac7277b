package commands

import (
	"context"
	"errors"
	"time"

	"hubops/internal/core/domain/model/batch"
	"hubops/internal/core/domain/model/sequence"
	"hubops/internal/core/ports"
	"hubops/internal/pkg/errs"
)

// openBatchAttempts bounds retries after losing the one-ACTIVE race.
const openBatchAttempts = 3

type OpenBatchCommandHandler struct {
	uowFactory BatchUoWFactory
	allocator  CodeAllocator
}

func NewOpenBatchCommandHandler(uowFactory BatchUoWFactory, allocator CodeAllocator) OpenBatchCommandHandler {
	return OpenBatchCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
	}
}

// Handle opens a new ACTIVE batch for the staff code. The previous ACTIVE
// batch, if any, is closed in the same transaction. A concurrent open that
// wins the race makes this attempt roll back and start over.
func (h OpenBatchCommandHandler) Handle(ctx context.Context, cmd OpenBatchCommand) (*batch.Batch, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for range openBatchAttempts {
		opened, err := h.rotate(ctx, cmd)
		if errors.Is(err, ports.ErrActiveBatchExists) {
			lastErr = err
			continue
		}
		return opened, err
	}
	return nil, lastErr
}

func (h OpenBatchCommandHandler) rotate(ctx context.Context, cmd OpenBatchCommand) (*batch.Batch, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.BatchRepository()
	now := time.Now().UTC()

	current, err := repo.GetActiveForUpdate(ctx, cmd.Scope().StaffCode)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
	case err != nil:
		return nil, err
	default:
		current.Close(now)
		if err = repo.Update(ctx, current); err != nil {
			return nil, err
		}
	}

	code, err := h.allocator.Allocate(ctx, uow.SequenceRepository(), sequence.KindBatch, cmd.Scope().StaffCode)
	if err != nil {
		return nil, err
	}

	opened, err := batch.NewBatch(cmd.BatchID(), code, cmd.Scope(), now)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, opened); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return opened, nil
}
