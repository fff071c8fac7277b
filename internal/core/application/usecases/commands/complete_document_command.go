package commands

import (
	"errors"

	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/guard"
)

var ErrCompleteDocumentCommandIsNotConstructed = errors.New(
	"CompleteDocumentCommand must be created via NewCompleteDocumentCommand constructor",
)

type CompleteDocumentCommand struct {
	documentID kernel.UUID
	actor      string

	guard guard.ConstructorGuard
}

func NewCompleteDocumentCommand(documentID kernel.UUID, actor string) (CompleteDocumentCommand, error) {
	if err := documentID.Validate(); err != nil {
		return CompleteDocumentCommand{}, err
	}
	return CompleteDocumentCommand{
		documentID: documentID,
		actor:      actorOrSystem(actor),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteDocumentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDocumentCommandIsNotConstructed)
}

func (c CompleteDocumentCommand) DocumentID() kernel.UUID {
	return c.documentID
}

func (c CompleteDocumentCommand) Actor() string {
	return c.actor
}
