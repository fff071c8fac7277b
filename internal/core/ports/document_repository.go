package ports

import (
	"context"

	"hubops/internal/core/domain/model/hubdoc"
	"hubops/internal/core/domain/model/kernel"
)

// DocumentRepository persists grouping documents of every kind together
// with their members.
type DocumentRepository interface {
	Add(ctx context.Context, aggregate *hubdoc.Document) error

	// Update stores the header and synchronizes members: new members are
	// inserted, resolved members updated, removed members deleted. A member
	// insert that hits the (document, cn) constraint fails with a
	// DuplicateMemberError.
	Update(ctx context.Context, aggregate *hubdoc.Document) error

	Get(ctx context.Context, id kernel.UUID) (*hubdoc.Document, error)

	// GetForUpdate locks the document row; concurrent member changes on the
	// same document queue behind it.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*hubdoc.Document, error)
}
