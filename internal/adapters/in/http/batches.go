package http

import (
	"net/http"

	"hubops/internal/core/application/usecases/commands"
	"hubops/internal/core/application/usecases/queries"
	"hubops/internal/core/domain/model/batch"
	"hubops/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// OpenBatch handles POST /api/v1/batches. An ACTIVE batch of the same staff
// code is closed first.
func (s *Server) OpenBatch(ctx echo.Context) error {
	var req OpenBatchRequest
	if err := bindBody(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewOpenBatchCommand(kernel.NewUUID(), batch.Scope{
		StationCode: req.StationCode,
		StaffCode:   req.StaffCode,
		RouteCode:   req.RouteCode,
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	opened, err := s.h.OpenBatch.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, batchFromDomain(opened))
}

// GetActiveBatch handles GET /api/v1/batches/active?staff=.
func (s *Server) GetActiveBatch(ctx echo.Context) error {
	var staff string
	if err := runtime.BindQueryParameter("form", true, true, "staff", ctx.QueryParams(), &staff); err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetActiveBatchQuery(staff)
	if err != nil {
		return s.fail(ctx, err)
	}
	active, err := s.h.GetActiveBatch.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, batchFromQuery(active))
}

// CloseBatch handles POST /api/v1/batches/{id}/close. Closing a CLOSED
// batch returns it unchanged.
func (s *Server) CloseBatch(ctx echo.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCloseBatchCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	closed, err := s.h.CloseBatch.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, batchFromDomain(closed))
}
