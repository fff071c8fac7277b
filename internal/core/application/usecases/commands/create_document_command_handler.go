package commands

import (
	"context"
	"time"

	"hubops/internal/core/domain/model/hubdoc"
)

type CreateDocumentCommandHandler struct {
	uowFactory DocumentUoWFactory
	allocator  CodeAllocator
}

func NewCreateDocumentCommandHandler(uowFactory DocumentUoWFactory, allocator CodeAllocator) CreateDocumentCommandHandler {
	return CreateDocumentCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
	}
}

// Handle allocates a code for the kind in the station's scope and stores an
// empty OPEN document.
func (h CreateDocumentCommandHandler) Handle(ctx context.Context, cmd CreateDocumentCommand) (*hubdoc.Document, error) {
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

	code, err := h.allocator.Allocate(ctx, uow.SequenceRepository(),
		cmd.Kind().Policy().CodeKind, cmd.Attributes().StationCode)
	if err != nil {
		return nil, err
	}

	doc, err := hubdoc.NewDocument(cmd.DocumentID(), code, cmd.Kind(), cmd.Attributes(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.DocumentRepository().Add(ctx, doc); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return doc, nil
}
