package http

import (
	"net/http"

	"hubops/internal/core/application/usecases/commands"
	"hubops/internal/core/domain/model/sequence"

	"github.com/labstack/echo/v4"
)

// AllocateSequence handles POST /api/v1/sequences/{kind}.
func (s *Server) AllocateSequence(ctx echo.Context) error {
	raw, err := stringParam(ctx, "kind")
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	kind, err := sequence.ParseKind(raw)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req AllocateRequest
	if err = bindBody(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAllocateSequenceCommand(kind, req.ScopeKey)
	if err != nil {
		return s.fail(ctx, err)
	}
	code, err := s.h.AllocateSequence.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, AllocatedCode{Code: code})
}
