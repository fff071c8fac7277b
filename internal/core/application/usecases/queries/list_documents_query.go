package queries

import (
	"errors"
	"fmt"
	"time"

	"hubops/internal/core/domain/model/hubdoc"
	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/errs"
	"hubops/internal/pkg/guard"
)

var ErrListDocumentsQueryIsNotConstructed = errors.New(
	"ListDocumentsQuery must be created via NewListDocumentsQuery constructor",
)

// ListDocumentsQuery lists documents of one kind created in [from, to).
// An empty status list returns documents in any status.
//
// Example:
//
//	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
//	query, err := NewListDocumentsQuery(hubdoc.Manifest, day, day.AddDate(0, 0, 1), hubdoc.Open)
type ListDocumentsQuery struct {
	kind     hubdoc.Kind
	from     time.Time
	to       time.Time
	statuses []hubdoc.Status

	guard guard.ConstructorGuard
}

func NewListDocumentsQuery(kind hubdoc.Kind, from, to time.Time, statuses ...hubdoc.Status) (ListDocumentsQuery, error) {
	var errList []error
	if err := kind.Validate(); err != nil {
		errList = append(errList, err)
	}
	if from.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("from"))
	}
	if to.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("to"))
	}
	if !from.IsZero() && !to.After(from) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"to", fmt.Errorf("%s is not after %s", to.Format(time.RFC3339), from.Format(time.RFC3339))))
	}
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return ListDocumentsQuery{}, err
	}

	return ListDocumentsQuery{
		kind:     kind,
		from:     from,
		to:       to,
		statuses: append([]hubdoc.Status(nil), statuses...),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListDocumentsQuery) Kind() hubdoc.Kind {
	return q.kind
}

func (q ListDocumentsQuery) From() time.Time {
	return q.from
}

func (q ListDocumentsQuery) To() time.Time {
	return q.to
}

func (q ListDocumentsQuery) Statuses() []hubdoc.Status {
	return append([]hubdoc.Status(nil), q.statuses...)
}

func (q ListDocumentsQuery) Validate() error {
	return q.guard.Validate(ErrListDocumentsQueryIsNotConstructed)
}

type ListDocumentsQueryResponse struct {
	ID          kernel.UUID
	Code        string
	Status      string
	CreatedAt   time.Time
	CompletedAt *time.Time
	Members     int
	Unresolved  int
}
