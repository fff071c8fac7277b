package http

import (
	"net/http"

	"hubops/internal/core/application/usecases/commands"
	"hubops/internal/core/application/usecases/queries"
	"hubops/internal/core/domain/model/consignment"

	"github.com/labstack/echo/v4"
)

// RegisterConsignment handles POST /api/v1/consignments. Without a
// cnNumber a CN is allocated in the station's scope.
func (s *Server) RegisterConsignment(ctx echo.Context) error {
	var req RegisterConsignmentRequest
	if err := bindBody(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	cmd := commands.NewRegisterConsignmentCommand(req.CN, req.StationCode, consignment.Details{
		OriginCityID:      req.OriginCityID,
		DestinationCityID: req.DestinationCityID,
		ServiceID:         req.ServiceID,
		Weight:            req.Weight,
		Pieces:            req.Pieces,
		PaymentMode:       consignment.PaymentMode(req.PaymentMode),
		TotalAmount:       req.TotalAmount,
		CODAmount:         req.CODAmount,
	}, req.Actor)

	registered, err := s.h.RegisterCN.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, consignmentFromDomain(registered))
}

// GetConsignment handles GET /api/v1/consignments/{cn}.
func (s *Server) GetConsignment(ctx echo.Context) error {
	cn, err := stringParam(ctx, "cn")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetConsignmentQuery(cn)
	if err != nil {
		return s.fail(ctx, err)
	}
	found, err := s.h.GetConsignment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, consignmentFromQuery(found))
}

// UpdateConsignmentStatus handles POST /api/v1/consignments/{cn}/status.
// Only the direct pre-hub steps are accepted here; hub statuses come from
// document membership.
func (s *Server) UpdateConsignmentStatus(ctx echo.Context) error {
	cn, err := stringParam(ctx, "cn")
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	var req StatusUpdateRequest
	if err = bindBody(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}
	status, err := consignment.ParseStatus(req.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateConsignmentStatusCommand(cn, status, req.Actor, req.Note)
	if err != nil {
		return s.fail(ctx, err)
	}
	updated, err := s.h.UpdateStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, consignmentFromDomain(updated))
}

// VoidConsignment handles POST /api/v1/consignments/{cn}/void.
func (s *Server) VoidConsignment(ctx echo.Context) error {
	cn, err := stringParam(ctx, "cn")
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	var req VoidRequest
	if err = bindBody(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewVoidConsignmentCommand(cn, req.Reason, req.Actor)
	if err != nil {
		return s.fail(ctx, err)
	}
	voided, err := s.h.VoidCN.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, consignmentFromDomain(voided))
}

// OverrideConsignmentStatus handles POST /api/v1/consignments/{cn}/override.
func (s *Server) OverrideConsignmentStatus(ctx echo.Context) error {
	cn, err := stringParam(ctx, "cn")
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	var req OverrideRequest
	if err = bindBody(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}
	status, err := consignment.ParseStatus(req.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewOverrideConsignmentStatusCommand(cn, status, req.Reason, req.Actor)
	if err != nil {
		return s.fail(ctx, err)
	}
	overridden, err := s.h.OverrideStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, consignmentFromDomain(overridden))
}
