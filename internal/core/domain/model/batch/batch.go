package batch

import (
	"errors"
	"strings"
	"time"

	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/errs"
	"hubops/internal/pkg/guard"
)

var ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch or RestoreBatch")

// Scope carries the attributes a batch is opened for. StaffCode is the scope
// key; station and route are stored for reporting.
type Scope struct {
	StationCode string
	StaffCode   string
	RouteCode   string
}

// Batch is an operating batch with a sequence-derived code.
type Batch struct {
	id        kernel.UUID
	code      string
	scope     Scope
	status    Status
	createdAt time.Time
	closedAt  *time.Time

	guard guard.ConstructorGuard
}

// NewBatch opens an ACTIVE batch.
func NewBatch(id kernel.UUID, code string, scope Scope, createdAt time.Time) (*Batch, error) {
	b := &Batch{
		status:    Active,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setCode(code),
		b.setScope(scope),
	); err != nil {
		return nil, err
	}
	return b, nil
}

// RestoreBatch rebuilds a batch loaded from storage.
func RestoreBatch(
	id kernel.UUID,
	code string,
	scope Scope,
	status Status,
	createdAt time.Time,
	closedAt *time.Time,
) (*Batch, error) {
	b := &Batch{
		status:    status,
		createdAt: createdAt,
		closedAt:  closedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setCode(code),
		b.setScope(scope),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if status == Closed && closedAt == nil {
		return nil, errs.NewValueIsRequiredError("closedAt")
	}
	return b, nil
}

func (b *Batch) Validate() error {
	if b == nil {
		return ErrBatchIsNotConstructed
	}
	return b.guard.Validate(ErrBatchIsNotConstructed)
}

func (b *Batch) ID() kernel.UUID {
	return b.id
}

func (b *Batch) Code() string {
	return b.code
}

func (b *Batch) Scope() Scope {
	return b.scope
}

func (b *Batch) Status() Status {
	return b.status
}

func (b *Batch) CreatedAt() time.Time {
	return b.createdAt
}

// ClosedAt is nil while the batch is ACTIVE.
func (b *Batch) ClosedAt() *time.Time {
	return b.closedAt
}

func (b *Batch) IsActive() bool {
	return b.status == Active
}

// Close moves the batch to CLOSED. It reports false when the batch was
// already closed, in which case nothing changes.
func (b *Batch) Close(at time.Time) bool {
	if b.status == Closed {
		return false
	}
	b.status = Closed
	b.closedAt = &at
	return true
}

func (b *Batch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Batch) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("batchCode")
	}
	b.code = code
	return nil
}

func (b *Batch) setScope(scope Scope) error {
	scope.StaffCode = strings.TrimSpace(scope.StaffCode)
	if scope.StaffCode == "" {
		return errs.NewValueIsRequiredError("staffCode")
	}
	scope.StationCode = strings.TrimSpace(scope.StationCode)
	scope.RouteCode = strings.TrimSpace(scope.RouteCode)
	b.scope = scope
	return nil
}
