package commands

import (
	"context"
	"fmt"
	"time"

	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/core/domain/model/sequence"
	"hubops/internal/pkg/errs"
)

type RegisterConsignmentCommandHandler struct {
	uowFactory ConsignmentUoWFactory
	allocator  CodeAllocator
}

func NewRegisterConsignmentCommandHandler(
	uowFactory ConsignmentUoWFactory,
	allocator CodeAllocator,
) RegisterConsignmentCommandHandler {
	return RegisterConsignmentCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
	}
}

// Handle registers a PENDING consignment. A CN supplied by the caller is
// reserved like an allocated one so the allocator never issues it later.
func (h RegisterConsignmentCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterConsignmentCommand,
) (*consignment.Consignment, error) {
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

	now := time.Now().UTC()
	cn := cmd.CN()
	if cn == "" {
		allocated, err := h.allocator.Allocate(ctx, uow.SequenceRepository(), sequence.KindCN, cmd.StationCode())
		if err != nil {
			return nil, err
		}
		cn = allocated
	} else {
		reserved, err := uow.SequenceRepository().Reserve(ctx, sequence.KindCN, cn, cmd.StationCode(), now)
		if err != nil {
			return nil, err
		}
		if !reserved {
			return nil, errs.NewValueIsInvalidErrorWithCause("cn", fmt.Errorf("%s is already issued", cn))
		}
	}

	c, err := consignment.NewConsignment(cn, cmd.Details(), cmd.Actor(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.ConsignmentRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
