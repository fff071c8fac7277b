package commands

import (
	"context"
	"time"

	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/core/domain/model/hubdoc"
	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/core/domain/services"
	"hubops/internal/core/ports"
	"hubops/internal/pkg/errs"
)

type RemoveDocumentMemberCommandHandler struct {
	uowFactory DocumentUoWFactory
}

func NewRemoveDocumentMemberCommandHandler(uowFactory DocumentUoWFactory) RemoveDocumentMemberCommandHandler {
	return RemoveDocumentMemberCommandHandler{uowFactory: uowFactory}
}

// Handle removes a member from an OPEN document. The consignment keeps its
// status and gets an annotation.
func (h RemoveDocumentMemberCommandHandler) Handle(
	ctx context.Context,
	cmd RemoveDocumentMemberCommand,
) (*hubdoc.Document, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateMember(ctx, h.uowFactory, cmd.DocumentID(), cmd.MemberID(),
		func(doc *hubdoc.Document, c *consignment.Consignment) error {
			_, err := services.NewDocumentEngine().RemoveMember(doc, c, cmd.MemberID(), cmd.Actor(), time.Now().UTC())
			return err
		})
}

// mutateMember locks a document and the consignment behind one of its
// members, applies change to both and stores them.
func mutateMember(
	ctx context.Context,
	uowFactory DocumentUoWFactory,
	documentID kernel.UUID,
	memberID kernel.UUID,
	change func(doc *hubdoc.Document, c *consignment.Consignment) error,
) (*hubdoc.Document, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	docRepo := uow.DocumentRepository()
	consignmentRepo := uow.ConsignmentRepository()

	doc, err := docRepo.GetForUpdate(ctx, documentID)
	if err != nil {
		return nil, err
	}

	c, err := memberConsignment(ctx, consignmentRepo, doc, memberID)
	if err != nil {
		return nil, err
	}

	if err = change(doc, c); err != nil {
		return nil, err
	}

	if err = docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	if err = consignmentRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return doc, nil
}

func memberConsignment(
	ctx context.Context,
	repo ports.ConsignmentRepository,
	doc *hubdoc.Document,
	memberID kernel.UUID,
) (*consignment.Consignment, error) {
	if !doc.IsOpen() {
		return nil, errs.NewAlreadyClosedError(doc.Kind().String(), doc.Code())
	}
	member, ok := doc.Member(memberID)
	if !ok {
		return nil, errs.NewObjectNotFoundError("member", memberID.String())
	}
	return repo.GetForUpdate(ctx, member.CN())
}
