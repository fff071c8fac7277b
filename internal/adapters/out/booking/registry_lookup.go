// Package booking adapts the booking collaborator to ports.BookingLookup.
package booking

import (
	"context"
	"errors"
	"time"

	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/core/ports"
	"hubops/internal/pkg/errs"
)

// DefaultTimeout bounds one lookup.
const DefaultTimeout = 3 * time.Second

// RegistryLookup answers lookups from the consignment registry that the
// booking collaborator fills through the register operation. Any failure
// other than an unknown CN is reported as LookupFailed.
type RegistryLookup struct {
	repo    ports.ConsignmentRepository
	timeout time.Duration
}

func NewRegistryLookup(repo ports.ConsignmentRepository, timeout time.Duration) *RegistryLookup {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RegistryLookup{
		repo:    repo,
		timeout: timeout,
	}
}

func (l *RegistryLookup) FindByCN(ctx context.Context, cn string) (*consignment.Consignment, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	c, err := l.repo.Get(ctx, cn)
	switch {
	case err == nil:
		return c, nil
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	default:
		return nil, errs.NewLookupFailedError(cn, err)
	}
}
