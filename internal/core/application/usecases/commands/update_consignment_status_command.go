package commands

import (
	"errors"
	"strings"

	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/pkg/errs"
	"hubops/internal/pkg/guard"
)

var ErrUpdateConsignmentStatusCommandIsNotConstructed = errors.New(
	"UpdateConsignmentStatusCommand must be created via NewUpdateConsignmentStatusCommand constructor",
)

type UpdateConsignmentStatusCommand struct {
	cn     string
	status consignment.Status
	actor  string
	note   string

	guard guard.ConstructorGuard
}

func NewUpdateConsignmentStatusCommand(
	cn string,
	status consignment.Status,
	actor string,
	note string,
) (UpdateConsignmentStatusCommand, error) {
	cn = strings.TrimSpace(cn)
	if err := errors.Join(requiredCN(cn), status.Validate()); err != nil {
		return UpdateConsignmentStatusCommand{}, err
	}
	return UpdateConsignmentStatusCommand{
		cn:     cn,
		status: status,
		actor:  actorOrSystem(actor),
		note:   strings.TrimSpace(note),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateConsignmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateConsignmentStatusCommandIsNotConstructed)
}

func (c UpdateConsignmentStatusCommand) CN() string {
	return c.cn
}

func (c UpdateConsignmentStatusCommand) Status() consignment.Status {
	return c.status
}

func (c UpdateConsignmentStatusCommand) Actor() string {
	return c.actor
}

func (c UpdateConsignmentStatusCommand) Note() string {
	return c.note
}

func requiredCN(cn string) error {
	if cn == "" {
		return errs.NewValueIsRequiredError("cn")
	}
	return nil
}
