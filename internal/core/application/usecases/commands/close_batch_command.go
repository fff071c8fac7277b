package commands

import (
	"errors"

	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/guard"
)

var ErrCloseBatchCommandIsNotConstructed = errors.New(
	"CloseBatchCommand must be created via NewCloseBatchCommand constructor",
)

type CloseBatchCommand struct {
	batchID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCloseBatchCommand(batchID kernel.UUID) (CloseBatchCommand, error) {
	if err := batchID.Validate(); err != nil {
		return CloseBatchCommand{}, err
	}
	return CloseBatchCommand{batchID: batchID, guard: guard.NewConstructorGuard()}, nil
}

func (c CloseBatchCommand) Validate() error {
	return c.guard.Validate(ErrCloseBatchCommandIsNotConstructed)
}

func (c CloseBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}
