package commands

import (
	"context"
	"sort"
	"time"

	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/core/domain/model/hubdoc"
	"hubops/internal/core/domain/services"
)

type CompleteDocumentCommandHandler struct {
	uowFactory DocumentUoWFactory
}

func NewCompleteDocumentCommandHandler(uowFactory DocumentUoWFactory) CompleteDocumentCommandHandler {
	return CompleteDocumentCommandHandler{uowFactory: uowFactory}
}

// Handle completes a document. Member consignments are locked in CN order.
// A COMPLETED document is returned as it is.
func (h CompleteDocumentCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteDocumentCommand,
) (*hubdoc.Document, error) {
	if err := cmd.Validate(); err != nil {
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
		return doc, nil
	}

	cns := make([]string, 0, len(doc.Members()))
	for _, m := range doc.Members() {
		cns = append(cns, m.CN())
	}
	sort.Strings(cns)

	members := make(map[string]*consignment.Consignment, len(cns))
	for _, cn := range cns {
		c, getErr := consignmentRepo.GetForUpdate(ctx, cn)
		if getErr != nil {
			return nil, getErr
		}
		members[cn] = c
	}

	if _, err = services.NewDocumentEngine().Complete(doc, members, cmd.Actor(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	for _, cn := range cns {
		if err = consignmentRepo.Update(ctx, members[cn]); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return doc, nil
}
