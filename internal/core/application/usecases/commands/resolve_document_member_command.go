package commands

import (
	"errors"

	"hubops/internal/core/domain/model/hubdoc"
	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/guard"
)

var ErrResolveDocumentMemberCommandIsNotConstructed = errors.New(
	"ResolveDocumentMemberCommand must be created via NewResolveDocumentMemberCommand constructor",
)

// ResolveDocumentMemberCommand records a de-manifest unload or a delivery
// phase 2 outcome for one member.
type ResolveDocumentMemberCommand struct {
	documentID kernel.UUID
	memberID   kernel.UUID
	outcome    hubdoc.MemberStatus
	actor      string

	guard guard.ConstructorGuard
}

func NewResolveDocumentMemberCommand(
	documentID kernel.UUID,
	memberID kernel.UUID,
	outcome hubdoc.MemberStatus,
	actor string,
) (ResolveDocumentMemberCommand, error) {
	if err := errors.Join(documentID.Validate(), memberID.Validate(), outcome.Validate()); err != nil {
		return ResolveDocumentMemberCommand{}, err
	}
	return ResolveDocumentMemberCommand{
		documentID: documentID,
		memberID:   memberID,
		outcome:    outcome,
		actor:      actorOrSystem(actor),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ResolveDocumentMemberCommand) Validate() error {
	return c.guard.Validate(ErrResolveDocumentMemberCommandIsNotConstructed)
}

func (c ResolveDocumentMemberCommand) DocumentID() kernel.UUID {
	return c.documentID
}

func (c ResolveDocumentMemberCommand) MemberID() kernel.UUID {
	return c.memberID
}

func (c ResolveDocumentMemberCommand) Outcome() hubdoc.MemberStatus {
	return c.outcome
}

func (c ResolveDocumentMemberCommand) Actor() string {
	return c.actor
}
