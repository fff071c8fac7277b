package commands

import (
	"context"

	"hubops/internal/core/domain/model/sequence"
	"hubops/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	SavePointManager interface {
		SavePoint(ctx context.Context, name string) error
		RollbackTo(ctx context.Context, name string) error
	}

	ConsignmentRepoFactory interface {
		ConsignmentRepository() ports.ConsignmentRepository
	}

	BatchRepoFactory interface {
		BatchRepository() ports.BatchRepository
	}

	DocumentRepoFactory interface {
		DocumentRepository() ports.DocumentRepository
	}

	PricingRepoFactory interface {
		PricingRuleRepository() ports.PricingRuleRepository
	}

	SequenceRepoFactory interface {
		SequenceRepository() ports.SequenceRepository
	}

	SequenceUoW interface {
		TxManager
		SequenceRepoFactory
	}

	SequenceUoWFactory interface {
		Create() SequenceUoW
	}

	BatchUoW interface {
		TxManager
		BatchRepoFactory
		SequenceRepoFactory
	}

	BatchUoWFactory interface {
		Create() BatchUoW
	}

	ConsignmentUoW interface {
		TxManager
		ConsignmentRepoFactory
		SequenceRepoFactory
	}

	ConsignmentUoWFactory interface {
		Create() ConsignmentUoW
	}

	DocumentUoW interface {
		TxManager
		DocumentRepoFactory
		ConsignmentRepoFactory
		SequenceRepoFactory
	}

	DocumentUoWFactory interface {
		Create() DocumentUoW
	}

	PricingUoW interface {
		TxManager
		SavePointManager
		PricingRepoFactory
	}

	PricingUoWFactory interface {
		Create() PricingUoW
	}

	// CodeAllocator mints codes inside the caller's transaction.
	CodeAllocator interface {
		Allocate(ctx context.Context, store ports.SequenceRepository, kind sequence.Kind, scopeKey string) (string, error)
	}
)
