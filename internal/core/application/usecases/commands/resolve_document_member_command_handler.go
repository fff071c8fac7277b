package commands

import (
	"context"
	"time"

	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/core/domain/model/hubdoc"
	"hubops/internal/core/domain/services"
)

type ResolveDocumentMemberCommandHandler struct {
	uowFactory DocumentUoWFactory
}

func NewResolveDocumentMemberCommandHandler(uowFactory DocumentUoWFactory) ResolveDocumentMemberCommandHandler {
	return ResolveDocumentMemberCommandHandler{uowFactory: uowFactory}
}

func (h ResolveDocumentMemberCommandHandler) Handle(
	ctx context.Context,
	cmd ResolveDocumentMemberCommand,
) (*hubdoc.Document, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateMember(ctx, h.uowFactory, cmd.DocumentID(), cmd.MemberID(),
		func(doc *hubdoc.Document, c *consignment.Consignment) error {
			_, err := services.NewDocumentEngine().ResolveMember(
				doc, c, cmd.MemberID(), cmd.Outcome(), cmd.Actor(), time.Now().UTC())
			return err
		})
}
