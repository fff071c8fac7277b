package commands

import (
	"errors"

	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/guard"
)

var ErrRemoveDocumentMemberCommandIsNotConstructed = errors.New(
	"RemoveDocumentMemberCommand must be created via NewRemoveDocumentMemberCommand constructor",
)

type RemoveDocumentMemberCommand struct {
	documentID kernel.UUID
	memberID   kernel.UUID
	actor      string

	guard guard.ConstructorGuard
}

func NewRemoveDocumentMemberCommand(
	documentID kernel.UUID,
	memberID kernel.UUID,
	actor string,
) (RemoveDocumentMemberCommand, error) {
	if err := errors.Join(documentID.Validate(), memberID.Validate()); err != nil {
		return RemoveDocumentMemberCommand{}, err
	}
	return RemoveDocumentMemberCommand{
		documentID: documentID,
		memberID:   memberID,
		actor:      actorOrSystem(actor),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveDocumentMemberCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDocumentMemberCommandIsNotConstructed)
}

func (c RemoveDocumentMemberCommand) DocumentID() kernel.UUID {
	return c.documentID
}

func (c RemoveDocumentMemberCommand) MemberID() kernel.UUID {
	return c.memberID
}

func (c RemoveDocumentMemberCommand) Actor() string {
	return c.actor
}
