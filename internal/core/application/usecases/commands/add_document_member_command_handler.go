package commands

import (
	"context"
	"errors"
	"time"

	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/core/domain/model/hubdoc"
	"hubops/internal/core/domain/services"
	"hubops/internal/core/ports"
	"hubops/internal/pkg/errs"
)

type AddDocumentMemberCommandHandler struct {
	uowFactory DocumentUoWFactory
	lookup     ports.BookingLookup
}

func NewAddDocumentMemberCommandHandler(
	uowFactory DocumentUoWFactory,
	lookup ports.BookingLookup,
) AddDocumentMemberCommandHandler {
	return AddDocumentMemberCommandHandler{
		uowFactory: uowFactory,
		lookup:     lookup,
	}
}

// Handle scans a CN into a document. The CN is first resolved through the
// booking lookup; then the document and the consignment are locked in that
// order and the kind's forward transition is applied.
func (h AddDocumentMemberCommandHandler) Handle(
	ctx context.Context,
	cmd AddDocumentMemberCommand,
) (*hubdoc.Document, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.lookup.FindByCN(ctx, cmd.CN()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	docRepo := uow.DocumentRepository()
	consignmentRepo := uow.ConsignmentRepository()

	doc, err := docRepo.GetForUpdate(ctx, cmd.DocumentID())
	if err != nil {
		return nil, err
	}
	if !doc.IsOpen() {
		return nil, errs.NewAlreadyClosedError(doc.Kind().String(), doc.Code())
	}
	if _, exists := doc.MemberByCN(cmd.CN()); exists {
		return nil, errs.NewDuplicateMemberError(cmd.CN(), doc.Code())
	}

	c, err := consignmentRepo.GetForUpdate(ctx, cmd.CN())
	if err != nil {
		return nil, err
	}

	if err = releaseStaleHolder(ctx, docRepo, doc, c); err != nil {
		return nil, err
	}

	if _, err = services.NewDocumentEngine().AddMember(doc, c, cmd.MemberID(), cmd.Actor(), time.Now().UTC()); err != nil {
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

// releaseStaleHolder checks the document currently recorded as holding c for
// doc's phase. A holder that is still OPEN makes the add a DuplicateMember;
// a holder that completed or vanished is cleared.
func releaseStaleHolder(
	ctx context.Context,
	docRepo ports.DocumentRepository,
	doc *hubdoc.Document,
	c *consignment.Consignment,
) error {
	phase := doc.Policy().Phase
	holderID, held := c.HeldBy(phase)
	if !held || holderID.IsEqual(doc.ID()) {
		return nil
	}

	holder, err := docRepo.Get(ctx, holderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		c.Detach(phase, holderID)
		return nil
	}
	if err != nil {
		return err
	}
	if holder.IsOpen() {
		return errs.NewDuplicateMemberError(c.CN(), holder.Code())
	}

	c.Detach(phase, holderID)
	return nil
}
