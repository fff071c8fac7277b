package queries

import (
	"errors"
	"time"

	"hubops/internal/core/domain/model/hubdoc"
	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/guard"
)

var ErrGetDocumentQueryIsNotConstructed = errors.New(
	"GetDocumentQuery must be created via NewGetDocumentQuery constructor",
)

// GetDocumentQuery reads one grouping document with its members. The kind
// guards against reading a manifest through the arrival endpoint.
type GetDocumentQuery struct {
	kind hubdoc.Kind
	id   kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDocumentQuery(kind hubdoc.Kind, id kernel.UUID) (GetDocumentQuery, error) {
	if err := errors.Join(kind.Validate(), id.Validate()); err != nil {
		return GetDocumentQuery{}, err
	}
	return GetDocumentQuery{kind: kind, id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDocumentQuery) Kind() hubdoc.Kind {
	return q.kind
}

func (q GetDocumentQuery) ID() kernel.UUID {
	return q.id
}

func (q GetDocumentQuery) Validate() error {
	return q.guard.Validate(ErrGetDocumentQueryIsNotConstructed)
}

type GetDocumentQueryResponse struct {
	ID            kernel.UUID
	Code          string
	Kind          string
	Status        string
	StationCode   string
	BatchCode     string
	RiderCode     string
	DriverCode    string
	VehicleNumber string
	RouteCode     string
	Remarks       string
	CreatedAt     time.Time
	CompletedAt   *time.Time
	Members       []DocumentMemberItem
}

type DocumentMemberItem struct {
	ID         kernel.UUID
	CN         string
	Status     string
	ScannedAt  time.Time
	ResolvedAt *time.Time
}
