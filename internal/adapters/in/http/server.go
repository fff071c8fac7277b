// Package http exposes the hub operations use cases over HTTP/JSON with echo.
package http

import (
	"net/http"

	"hubops/internal/core/application/usecases/commands"
	"hubops/internal/core/application/usecases/queries"
	"hubops/internal/core/domain/model/hubdoc"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Handlers bundles the use cases the server dispatches to.
type Handlers struct {
	AllocateSequence  commands.AllocateSequenceCommandHandler
	OpenBatch         commands.OpenBatchCommandHandler
	CloseBatch        commands.CloseBatchCommandHandler
	RegisterCN        commands.RegisterConsignmentCommandHandler
	UpdateStatus      commands.UpdateConsignmentStatusCommandHandler
	VoidCN            commands.VoidConsignmentCommandHandler
	OverrideStatus    commands.OverrideConsignmentStatusCommandHandler
	CreateDocument    commands.CreateDocumentCommandHandler
	AddMember         commands.AddDocumentMemberCommandHandler
	RemoveMember      commands.RemoveDocumentMemberCommandHandler
	ResolveMember     commands.ResolveDocumentMemberCommandHandler
	CompleteDocument  commands.CompleteDocumentCommandHandler
	UpsertPricingRule commands.UpsertPricingRuleCommandHandler

	GetActiveBatch queries.GetActiveBatchQueryHandler
	GetConsignment queries.GetConsignmentQueryHandler
	GetDocument    queries.GetDocumentQueryHandler
	ListDocuments  queries.ListDocumentsQueryHandler
	GetPricingRule queries.GetPricingRuleQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h   Handlers
	log *logrus.Entry
}

func NewServer(handlers Handlers, log *logrus.Logger) *Server {
	return &Server{
		h:   handlers,
		log: log.WithField("component", "http"),
	}
}

// documentKinds maps the URL segment of each document resource to its kind.
var documentKinds = map[string]hubdoc.Kind{
	"arrivals":        hubdoc.Arrival,
	"manifests":       hubdoc.Manifest,
	"delivery-sheets": hubdoc.Delivery,
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/sequences/:kind", s.AllocateSequence)

	v1.POST("/batches", s.OpenBatch)
	v1.GET("/batches/active", s.GetActiveBatch)
	v1.POST("/batches/:id/close", s.CloseBatch)

	v1.POST("/consignments", s.RegisterConsignment)
	v1.GET("/consignments/:cn", s.GetConsignment)
	v1.POST("/consignments/:cn/status", s.UpdateConsignmentStatus)
	v1.POST("/consignments/:cn/void", s.VoidConsignment)
	v1.POST("/consignments/:cn/override", s.OverrideConsignmentStatus)

	for segment, kind := range documentKinds {
		g := v1.Group("/" + segment)
		g.POST("", s.CreateDocument(kind))
		g.GET("", s.ListDocuments(kind))
		g.GET("/:id", s.GetDocument(kind))
		g.POST("/:id/members", s.AddDocumentMember(kind))
		g.DELETE("/:id/members/:memberId", s.RemoveDocumentMember(kind))
		g.POST("/:id/members/:memberId/resolve", s.ResolveDocumentMember(kind))
		g.POST("/:id/complete", s.CompleteDocument(kind))
	}

	v1.PUT("/pricing/rules", s.UpsertPricingRule)
	v1.GET("/pricing/rules", s.GetPricingRule)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
