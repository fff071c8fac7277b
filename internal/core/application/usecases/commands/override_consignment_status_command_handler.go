package commands

import (
	"context"
	"time"

	"hubops/internal/core/domain/model/consignment"
)

type OverrideConsignmentStatusCommandHandler struct {
	uowFactory ConsignmentUoWFactory
}

func NewOverrideConsignmentStatusCommandHandler(uowFactory ConsignmentUoWFactory) OverrideConsignmentStatusCommandHandler {
	return OverrideConsignmentStatusCommandHandler{uowFactory: uowFactory}
}

func (h OverrideConsignmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd OverrideConsignmentStatusCommand,
) (*consignment.Consignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateConsignment(ctx, h.uowFactory, cmd.CN(), func(c *consignment.Consignment) error {
		return c.Override(cmd.Status(), cmd.Reason(), cmd.Actor(), time.Now().UTC())
	})
}
