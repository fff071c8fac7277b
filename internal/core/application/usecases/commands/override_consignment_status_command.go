package commands

import (
	"errors"
	"strings"

	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/pkg/errs"
	"hubops/internal/pkg/guard"
)

var ErrOverrideConsignmentStatusCommandIsNotConstructed = errors.New(
	"OverrideConsignmentStatusCommand must be created via NewOverrideConsignmentStatusCommand constructor",
)

// OverrideConsignmentStatusCommand is an administrative correction outside
// the lifecycle table.
type OverrideConsignmentStatusCommand struct {
	cn     string
	status consignment.Status
	reason string
	actor  string

	guard guard.ConstructorGuard
}

func NewOverrideConsignmentStatusCommand(
	cn string,
	status consignment.Status,
	reason string,
	actor string,
) (OverrideConsignmentStatusCommand, error) {
	cn = strings.TrimSpace(cn)
	reason = strings.TrimSpace(reason)

	var reasonErr error
	if reason == "" {
		reasonErr = errs.NewValueIsRequiredError("reason")
	}
	if err := errors.Join(requiredCN(cn), status.Validate(), reasonErr); err != nil {
		return OverrideConsignmentStatusCommand{}, err
	}

	return OverrideConsignmentStatusCommand{
		cn:     cn,
		status: status,
		reason: reason,
		actor:  actorOrSystem(actor),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c OverrideConsignmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrOverrideConsignmentStatusCommandIsNotConstructed)
}

func (c OverrideConsignmentStatusCommand) CN() string {
	return c.cn
}

func (c OverrideConsignmentStatusCommand) Status() consignment.Status {
	return c.status
}

func (c OverrideConsignmentStatusCommand) Reason() string {
	return c.reason
}

func (c OverrideConsignmentStatusCommand) Actor() string {
	return c.actor
}
