package commands

import (
	"context"
	"time"

	"hubops/internal/core/domain/model/consignment"
)

type UpdateConsignmentStatusCommandHandler struct {
	uowFactory ConsignmentUoWFactory
}

func NewUpdateConsignmentStatusCommandHandler(uowFactory ConsignmentUoWFactory) UpdateConsignmentStatusCommandHandler {
	return UpdateConsignmentStatusCommandHandler{uowFactory: uowFactory}
}

// Handle applies a direct forward status update.
func (h UpdateConsignmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateConsignmentStatusCommand,
) (*consignment.Consignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateConsignment(ctx, h.uowFactory, cmd.CN(), func(c *consignment.Consignment) error {
		return c.Advance(cmd.Status(), cmd.Actor(), cmd.Note(), time.Now().UTC())
	})
}

// mutateConsignment locks one consignment, applies change and stores it.
func mutateConsignment(
	ctx context.Context,
	uowFactory ConsignmentUoWFactory,
	cn string,
	change func(c *consignment.Consignment) error,
) (*consignment.Consignment, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ConsignmentRepository()
	c, err := repo.GetForUpdate(ctx, cn)
	if err != nil {
		return nil, err
	}

	if err = change(c); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
