package http

import (
	"net/http"
	"time"

	"hubops/internal/core/application/usecases/commands"
	"hubops/internal/core/application/usecases/queries"
	"hubops/internal/core/domain/model/hubdoc"
	"hubops/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateDocument handles POST /api/v1/{kind}.
func (s *Server) CreateDocument(kind hubdoc.Kind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var req CreateDocumentRequest
		if err := bindBody(ctx, &req); err != nil {
			return s.fail(ctx, err)
		}

		cmd, err := commands.NewCreateDocumentCommand(kernel.NewUUID(), kind, hubdoc.Attributes{
			StationCode:   req.StationCode,
			BatchCode:     req.BatchCode,
			RiderCode:     req.RiderCode,
			DriverCode:    req.DriverCode,
			VehicleNumber: req.VehicleNumber,
			RouteCode:     req.RouteCode,
			Remarks:       req.Remarks,
		})
		if err != nil {
			return s.fail(ctx, err)
		}
		doc, err := s.h.CreateDocument.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return s.fail(ctx, err)
		}
		return ctx.JSON(http.StatusCreated, documentFromDomain(doc))
	}
}

// ListDocuments handles GET /api/v1/{kind}?from=&to=&status=. Both dates
// are calendar days in UTC and to is inclusive.
func (s *Server) ListDocuments(kind hubdoc.Kind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var (
			from, to openapi_types.Date
			raw      []string
		)
		params := ctx.QueryParams()
		if err := runtime.BindQueryParameter("form", true, true, "from", params, &from); err != nil {
			return badRequest(ctx, err.Error())
		}
		if err := runtime.BindQueryParameter("form", true, true, "to", params, &to); err != nil {
			return badRequest(ctx, err.Error())
		}
		if err := runtime.BindQueryParameter("form", true, false, "status", params, &raw); err != nil {
			return badRequest(ctx, err.Error())
		}

		statuses := make([]hubdoc.Status, 0, len(raw))
		for _, r := range raw {
			status, err := hubdoc.ParseStatus(r)
			if err != nil {
				return s.fail(ctx, err)
			}
			statuses = append(statuses, status)
		}

		start := dayStart(from.Time)
		query, err := queries.NewListDocumentsQuery(kind, start, dayStart(to.Time).AddDate(0, 0, 1), statuses...)
		if err != nil {
			return s.fail(ctx, err)
		}
		documents, err := s.h.ListDocuments.Handle(ctx.Request().Context(), query)
		if err != nil {
			return s.fail(ctx, err)
		}

		resp := make([]DocumentSummary, 0, len(documents))
		for _, d := range documents {
			resp = append(resp, DocumentSummary{
				ID:          d.ID.String(),
				Code:        d.Code,
				Status:      d.Status,
				CreatedAt:   d.CreatedAt,
				CompletedAt: d.CompletedAt,
				Members:     d.Members,
				Unresolved:  d.Unresolved,
			})
		}
		return ctx.JSON(http.StatusOK, resp)
	}
}

// GetDocument handles GET /api/v1/{kind}/{id}.
func (s *Server) GetDocument(kind hubdoc.Kind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := uuidParam(ctx, "id")
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		doc, err := s.readDocument(ctx, kind, id)
		if err != nil {
			return s.fail(ctx, err)
		}
		return ctx.JSON(http.StatusOK, documentFromQuery(doc))
	}
}

// AddDocumentMember handles POST /api/v1/{kind}/{id}/members.
func (s *Server) AddDocumentMember(kind hubdoc.Kind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := uuidParam(ctx, "id")
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		var req AddMemberRequest
		if err = bindBody(ctx, &req); err != nil {
			return s.fail(ctx, err)
		}
		if _, err = s.readDocument(ctx, kind, id); err != nil {
			return s.fail(ctx, err)
		}

		cmd, err := commands.NewAddDocumentMemberCommand(id, kernel.NewUUID(), req.CN, req.Actor)
		if err != nil {
			return s.fail(ctx, err)
		}
		doc, err := s.h.AddMember.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return s.fail(ctx, err)
		}
		return ctx.JSON(http.StatusCreated, documentFromDomain(doc))
	}
}

// RemoveDocumentMember handles DELETE /api/v1/{kind}/{id}/members/{memberId}.
func (s *Server) RemoveDocumentMember(kind hubdoc.Kind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := uuidParam(ctx, "id")
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		memberID, err := uuidParam(ctx, "memberId")
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		var actor string
		if err = runtime.BindQueryParameter("form", true, false, "actor", ctx.QueryParams(), &actor); err != nil {
			return badRequest(ctx, err.Error())
		}
		if _, err = s.readDocument(ctx, kind, id); err != nil {
			return s.fail(ctx, err)
		}

		cmd, err := commands.NewRemoveDocumentMemberCommand(id, memberID, actor)
		if err != nil {
			return s.fail(ctx, err)
		}
		doc, err := s.h.RemoveMember.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return s.fail(ctx, err)
		}
		return ctx.JSON(http.StatusOK, documentFromDomain(doc))
	}
}

// ResolveDocumentMember handles POST /api/v1/{kind}/{id}/members/{memberId}/resolve.
func (s *Server) ResolveDocumentMember(kind hubdoc.Kind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := uuidParam(ctx, "id")
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		memberID, err := uuidParam(ctx, "memberId")
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		var req ResolveMemberRequest
		if err = bindBody(ctx, &req); err != nil {
			return s.fail(ctx, err)
		}
		outcome, err := hubdoc.ParseMemberStatus(req.Outcome)
		if err != nil {
			return s.fail(ctx, err)
		}
		if _, err = s.readDocument(ctx, kind, id); err != nil {
			return s.fail(ctx, err)
		}

		cmd, err := commands.NewResolveDocumentMemberCommand(id, memberID, outcome, req.Actor)
		if err != nil {
			return s.fail(ctx, err)
		}
		doc, err := s.h.ResolveMember.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return s.fail(ctx, err)
		}
		return ctx.JSON(http.StatusOK, documentFromDomain(doc))
	}
}

// CompleteDocument handles POST /api/v1/{kind}/{id}/complete. Completing a
// COMPLETED document returns it unchanged.
func (s *Server) CompleteDocument(kind hubdoc.Kind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := uuidParam(ctx, "id")
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		var req CompleteRequest
		if err = bindBody(ctx, &req); err != nil {
			return s.fail(ctx, err)
		}
		if _, err = s.readDocument(ctx, kind, id); err != nil {
			return s.fail(ctx, err)
		}

		cmd, err := commands.NewCompleteDocumentCommand(id, req.Actor)
		if err != nil {
			return s.fail(ctx, err)
		}
		doc, err := s.h.CompleteDocument.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return s.fail(ctx, err)
		}
		return ctx.JSON(http.StatusOK, documentFromDomain(doc))
	}
}

// readDocument loads the document through the read model. A document of
// another kind is not found under this resource.
func (s *Server) readDocument(ctx echo.Context, kind hubdoc.Kind, id kernel.UUID) (queries.GetDocumentQueryResponse, error) {
	query, err := queries.NewGetDocumentQuery(kind, id)
	if err != nil {
		return queries.GetDocumentQueryResponse{}, err
	}
	return s.h.GetDocument.Handle(ctx.Request().Context(), query)
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
