package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/guard"
)

var (
	ErrAttachDocumentCommandIsNotConstructed = errors.New(
		"AttachDocumentCommand must be created via NewAttachDocumentCommand constructor",
	)
	ErrFileNameIsRequired = errors.New("fileName is required")
)

// AttachDocumentCommand represents a request to attach a document record
// (BOL, POD, rate confirmation, ...) to a load.
type AttachDocumentCommand struct { //nolint:recvcheck //using for validation
	tenantCtx   kernel.TenantContext
	loadID      kernel.UUID
	docType     load.DocumentType
	fileName    string
	storagePath string

	guard guard.ConstructorGuard
}

// NewAttachDocumentCommand creates a command to attach a document to a load.
func NewAttachDocumentCommand(
	tenantCtx kernel.TenantContext,
	loadID kernel.UUID,
	docType load.DocumentType,
	fileName string,
	storagePath string,
) (AttachDocumentCommand, error) {
	cmd := AttachDocumentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenantCtx.Validate(),
		loadID.Validate(),
		docType.Validate(),
	); err != nil {
		return AttachDocumentCommand{}, err
	}
	if fileName == "" {
		return AttachDocumentCommand{}, ErrFileNameIsRequired
	}

	cmd.tenantCtx = tenantCtx
	cmd.loadID = loadID
	cmd.docType = docType
	cmd.fileName = fileName
	cmd.storagePath = storagePath

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachDocumentCommand) Validate() error {
	return c.guard.Validate(ErrAttachDocumentCommandIsNotConstructed)
}

// TenantCtx returns the caller's tenant context.
func (c AttachDocumentCommand) TenantCtx() kernel.TenantContext {
	return c.tenantCtx
}

// LoadID returns the load the document belongs to.
func (c AttachDocumentCommand) LoadID() kernel.UUID {
	return c.loadID
}

// DocType returns the document classification.
func (c AttachDocumentCommand) DocType() load.DocumentType {
	return c.docType
}

// FileName returns the uploaded file's name.
func (c AttachDocumentCommand) FileName() string {
	return c.fileName
}

// StoragePath returns where the file was stored, if known.
func (c AttachDocumentCommand) StoragePath() string {
	return c.storagePath
}
