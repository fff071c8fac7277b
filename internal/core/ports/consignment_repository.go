package ports

import (
	"context"

	"hubops/internal/core/domain/model/consignment"
)

// ConsignmentRepository persists consignments with their history log and
// document holders.
type ConsignmentRepository interface {
	// Add stores a new consignment. A CN that already exists fails.
	Add(ctx context.Context, aggregate *consignment.Consignment) error

	// Update stores status and holders and appends the uncommitted history
	// entries. History rows are never rewritten.
	Update(ctx context.Context, aggregate *consignment.Consignment) error

	// Get loads a consignment by CN with its full history.
	Get(ctx context.Context, cn string) (*consignment.Consignment, error)

	// GetForUpdate is Get with the consignment row locked until the
	// transaction ends.
	GetForUpdate(ctx context.Context, cn string) (*consignment.Consignment, error)
}
