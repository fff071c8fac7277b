package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one database transaction with the repositories bound to it.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// SavePoint marks a point inside the transaction that RollbackTo can
	// return to without aborting the whole transaction.
	SavePoint(ctx context.Context, name string) error
	RollbackTo(ctx context.Context, name string) error

	ConsignmentRepository() ConsignmentRepository
	BatchRepository() BatchRepository
	DocumentRepository() DocumentRepository
	PricingRuleRepository() PricingRuleRepository
	SequenceRepository() SequenceRepository
}
