package ports

import (
	"context"

	"hubops/internal/core/domain/model/consignment"
)

// BookingLookup resolves a CN through the booking collaborator. It returns
// an ObjectNotFoundError for an unknown CN and a LookupFailedError when the
// collaborator cannot answer.
type BookingLookup interface {
	FindByCN(ctx context.Context, cn string) (*consignment.Consignment, error)
}
