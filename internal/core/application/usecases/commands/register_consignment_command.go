package commands

import (
	"errors"
	"strings"

	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/pkg/guard"
)

var ErrRegisterConsignmentCommandIsNotConstructed = errors.New(
	"RegisterConsignmentCommand must be created via NewRegisterConsignmentCommand constructor",
)

// RegisterConsignmentCommand is the booking collaborator's entry point. An
// empty CN asks the core to allocate one in the station's scope.
type RegisterConsignmentCommand struct {
	cn          string
	stationCode string
	details     consignment.Details
	actor       string

	guard guard.ConstructorGuard
}

func NewRegisterConsignmentCommand(
	cn string,
	stationCode string,
	details consignment.Details,
	actor string,
) RegisterConsignmentCommand {
	return RegisterConsignmentCommand{
		cn:          strings.TrimSpace(cn),
		stationCode: strings.TrimSpace(stationCode),
		details:     details,
		actor:       actorOrSystem(actor),
		guard:       guard.NewConstructorGuard(),
	}
}

func (c RegisterConsignmentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterConsignmentCommandIsNotConstructed)
}

func (c RegisterConsignmentCommand) CN() string {
	return c.cn
}

func (c RegisterConsignmentCommand) StationCode() string {
	return c.stationCode
}

func (c RegisterConsignmentCommand) Details() consignment.Details {
	return c.details
}

func (c RegisterConsignmentCommand) Actor() string {
	return c.actor
}

// actorOrSystem defaults a missing actor to "system".
func actorOrSystem(actor string) string {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return "system"
	}
	return actor
}
