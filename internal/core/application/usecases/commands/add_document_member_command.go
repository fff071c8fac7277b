package commands

import (
	"errors"
	"strings"

	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/guard"
)

var ErrAddDocumentMemberCommandIsNotConstructed = errors.New(
	"AddDocumentMemberCommand must be created via NewAddDocumentMemberCommand constructor",
)

type AddDocumentMemberCommand struct {
	documentID kernel.UUID
	memberID   kernel.UUID
	cn         string
	actor      string

	guard guard.ConstructorGuard
}

func NewAddDocumentMemberCommand(
	documentID kernel.UUID,
	memberID kernel.UUID,
	cn string,
	actor string,
) (AddDocumentMemberCommand, error) {
	cn = strings.TrimSpace(cn)
	if err := errors.Join(documentID.Validate(), memberID.Validate(), requiredCN(cn)); err != nil {
		return AddDocumentMemberCommand{}, err
	}
	return AddDocumentMemberCommand{
		documentID: documentID,
		memberID:   memberID,
		cn:         cn,
		actor:      actorOrSystem(actor),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AddDocumentMemberCommand) Validate() error {
	return c.guard.Validate(ErrAddDocumentMemberCommandIsNotConstructed)
}

func (c AddDocumentMemberCommand) DocumentID() kernel.UUID {
	return c.documentID
}

func (c AddDocumentMemberCommand) MemberID() kernel.UUID {
	return c.memberID
}

func (c AddDocumentMemberCommand) CN() string {
	return c.cn
}

func (c AddDocumentMemberCommand) Actor() string {
	return c.actor
}
