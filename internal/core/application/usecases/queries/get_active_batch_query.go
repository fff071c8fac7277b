package queries

import (
	"errors"
	"strings"
	"time"

	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/errs"
	"hubops/internal/pkg/guard"
)

var ErrGetActiveBatchQueryIsNotConstructed = errors.New(
	"GetActiveBatchQuery must be created via NewGetActiveBatchQuery constructor",
)

// GetActiveBatchQuery asks for the ACTIVE batch of one staff member.
//
// Example:
//
//	query, err := NewGetActiveBatchQuery("EMP-17")
//	batch, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no shift open for EMP-17
//	}
type GetActiveBatchQuery struct {
	staffCode string

	guard guard.ConstructorGuard
}

func NewGetActiveBatchQuery(staffCode string) (GetActiveBatchQuery, error) {
	staffCode = strings.TrimSpace(staffCode)
	if staffCode == "" {
		return GetActiveBatchQuery{}, errs.NewValueIsRequiredError("staffCode")
	}
	return GetActiveBatchQuery{
		staffCode: staffCode,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetActiveBatchQuery) StaffCode() string {
	return q.staffCode
}

func (q GetActiveBatchQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveBatchQueryIsNotConstructed)
}

type GetActiveBatchQueryResponse struct {
	ID          kernel.UUID
	Code        string
	StationCode string
	StaffCode   string
	RouteCode   string
	CreatedAt   time.Time
}
