package commands

import (
	"context"
	"time"

	"hubops/internal/core/domain/model/batch"
)

type CloseBatchCommandHandler struct {
	uowFactory BatchUoWFactory
}

func NewCloseBatchCommandHandler(uowFactory BatchUoWFactory) CloseBatchCommandHandler {
	return CloseBatchCommandHandler{uowFactory: uowFactory}
}

// Handle closes the batch. Closing a CLOSED batch returns it unchanged.
func (h CloseBatchCommandHandler) Handle(ctx context.Context, cmd CloseBatchCommand) (*batch.Batch, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.BatchRepository()
	b, err := repo.GetForUpdate(ctx, cmd.BatchID())
	if err != nil {
		return nil, err
	}

	if !b.Close(time.Now().UTC()) {
		return b, nil
	}

	if err = repo.Update(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return b, nil
}
