package commands

import (
	"context"
	"time"

	"hubops/internal/core/domain/model/consignment"
)

type VoidConsignmentCommandHandler struct {
	uowFactory ConsignmentUoWFactory
}

func NewVoidConsignmentCommandHandler(uowFactory ConsignmentUoWFactory) VoidConsignmentCommandHandler {
	return VoidConsignmentCommandHandler{uowFactory: uowFactory}
}

func (h VoidConsignmentCommandHandler) Handle(
	ctx context.Context,
	cmd VoidConsignmentCommand,
) (*consignment.Consignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateConsignment(ctx, h.uowFactory, cmd.CN(), func(c *consignment.Consignment) error {
		return c.Void(cmd.Reason(), cmd.Actor(), time.Now().UTC())
	})
}
