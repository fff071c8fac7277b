package commands

import (
	"errors"
	"strings"

	"hubops/internal/core/domain/model/batch"
	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/errs"
	"hubops/internal/pkg/guard"
)

var ErrOpenBatchCommandIsNotConstructed = errors.New(
	"OpenBatchCommand must be created via NewOpenBatchCommand constructor",
)

type OpenBatchCommand struct {
	batchID kernel.UUID
	scope   batch.Scope

	guard guard.ConstructorGuard
}

func NewOpenBatchCommand(batchID kernel.UUID, scope batch.Scope) (OpenBatchCommand, error) {
	cmd := OpenBatchCommand{guard: guard.NewConstructorGuard()}

	var staffErr error
	if strings.TrimSpace(scope.StaffCode) == "" {
		staffErr = errs.NewValueIsRequiredError("staffCode")
	}
	if err := errors.Join(batchID.Validate(), staffErr); err != nil {
		return OpenBatchCommand{}, err
	}

	cmd.batchID = batchID
	cmd.scope = scope
	return cmd, nil
}

func (c OpenBatchCommand) Validate() error {
	return c.guard.Validate(ErrOpenBatchCommandIsNotConstructed)
}

func (c OpenBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

func (c OpenBatchCommand) Scope() batch.Scope {
	return c.scope
}
