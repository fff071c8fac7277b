package commands

import (
	"errors"

	"hubops/internal/core/domain/model/hubdoc"
	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/guard"
)

var ErrCreateDocumentCommandIsNotConstructed = errors.New(
	"CreateDocumentCommand must be created via NewCreateDocumentCommand constructor",
)

type CreateDocumentCommand struct {
	documentID kernel.UUID
	kind       hubdoc.Kind
	attributes hubdoc.Attributes

	guard guard.ConstructorGuard
}

func NewCreateDocumentCommand(
	documentID kernel.UUID,
	kind hubdoc.Kind,
	attributes hubdoc.Attributes,
) (CreateDocumentCommand, error) {
	if err := errors.Join(documentID.Validate(), kind.Validate()); err != nil {
		return CreateDocumentCommand{}, err
	}
	return CreateDocumentCommand{
		documentID: documentID,
		kind:       kind,
		attributes: attributes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDocumentCommand) Validate() error {
	return c.guard.Validate(ErrCreateDocumentCommandIsNotConstructed)
}

func (c CreateDocumentCommand) DocumentID() kernel.UUID {
	return c.documentID
}

func (c CreateDocumentCommand) Kind() hubdoc.Kind {
	return c.kind
}

func (c CreateDocumentCommand) Attributes() hubdoc.Attributes {
	return c.attributes
}
