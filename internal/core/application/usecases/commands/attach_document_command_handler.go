package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
)

// AttachDocumentCommandHandler attaches a document record to a load.
type AttachDocumentCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewAttachDocumentCommandHandler creates a handler for document attachment.
func NewAttachDocumentCommandHandler(uowFactory LoadUoWFactory) AttachDocumentCommandHandler {
	return AttachDocumentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the document attachment command.
func (h *AttachDocumentCommandHandler) Handle(ctx context.Context, cmd AttachDocumentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadRepo := uow.LoadRepository()
	if _, err := loadRepo.Get(ctx, cmd.TenantCtx().TenantID(), cmd.LoadID()); err != nil {
		return err
	}

	doc, err := load.NewDocument(kernel.NewUUID(), cmd.DocType(), cmd.FileName(),
		cmd.StoragePath(), cmd.TenantCtx().UserID())
	if err != nil {
		return err
	}

	if err = loadRepo.AddDocument(ctx, cmd.TenantCtx().TenantID(), cmd.LoadID(), doc); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
