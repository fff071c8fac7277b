package commands

import (
	"errors"
	"strings"

	"hubops/internal/pkg/errs"
	"hubops/internal/pkg/guard"
)

var ErrVoidConsignmentCommandIsNotConstructed = errors.New(
	"VoidConsignmentCommand must be created via NewVoidConsignmentCommand constructor",
)

type VoidConsignmentCommand struct {
	cn     string
	reason string
	actor  string

	guard guard.ConstructorGuard
}

func NewVoidConsignmentCommand(cn string, reason string, actor string) (VoidConsignmentCommand, error) {
	cn = strings.TrimSpace(cn)
	reason = strings.TrimSpace(reason)

	var reasonErr error
	if reason == "" {
		reasonErr = errs.NewValueIsRequiredError("reason")
	}
	if err := errors.Join(requiredCN(cn), reasonErr); err != nil {
		return VoidConsignmentCommand{}, err
	}

	return VoidConsignmentCommand{
		cn:     cn,
		reason: reason,
		actor:  actorOrSystem(actor),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c VoidConsignmentCommand) Validate() error {
	return c.guard.Validate(ErrVoidConsignmentCommandIsNotConstructed)
}

func (c VoidConsignmentCommand) CN() string {
	return c.cn
}

func (c VoidConsignmentCommand) Reason() string {
	return c.reason
}

func (c VoidConsignmentCommand) Actor() string {
	return c.actor
}
