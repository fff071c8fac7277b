package commands

import (
	"context"
)

type AllocateSequenceCommandHandler struct {
	uowFactory SequenceUoWFactory
	allocator  CodeAllocator
}

func NewAllocateSequenceCommandHandler(
	uowFactory SequenceUoWFactory,
	allocator CodeAllocator,
) AllocateSequenceCommandHandler {
	return AllocateSequenceCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
	}
}

// Handle reserves one code and returns it.
func (h AllocateSequenceCommandHandler) Handle(ctx context.Context, cmd AllocateSequenceCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	code, err := h.allocator.Allocate(ctx, uow.SequenceRepository(), cmd.Kind(), cmd.ScopeKey())
	if err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return code, nil
}
