package load

import (
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// DocumentType classifies a document attached to a load.
type DocumentType int

const (
	DocumentUnknown DocumentType = iota
	DocumentBOL
	DocumentPOD
	DocumentRateConfirmation
	DocumentInvoiceCopy
	DocumentOther
)

func getDocumentTypeStrings() map[DocumentType]string {
	return map[DocumentType]string{
		DocumentUnknown:          "UNKNOWN",
		DocumentBOL:              "BOL",
		DocumentPOD:              "POD",
		DocumentRateConfirmation: "RATE_CONFIRMATION",
		DocumentInvoiceCopy:      "INVOICE",
		DocumentOther:            "OTHER",
	}
}

// DocumentTypeFromString parses the wire representation of a document type.
func DocumentTypeFromString(s string) (DocumentType, error) {
	for dt, str := range getDocumentTypeStrings() {
		if dt != DocumentUnknown && str == s {
			return dt, nil
		}
	}
	return DocumentUnknown, errs.NewValueIsInvalidErrorWithCause("documentType",
		fmt.Errorf("%q is not a valid document type", s))
}

// String returns the wire representation of the document type.
func (d DocumentType) String() string {
	if str, ok := getDocumentTypeStrings()[d]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate reports whether the document type is one of the defined values.
func (d DocumentType) Validate() error {
	switch d {
	case DocumentBOL, DocumentPOD, DocumentRateConfirmation, DocumentInvoiceCopy, DocumentOther:
		return nil
	case DocumentUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("documentType",
		fmt.Errorf("%d is not a valid document type", d))
}

// Document references a file attached to a load. Only the path is stored;
// the file itself lives elsewhere.
type Document struct {
	id          kernel.UUID
	docType     DocumentType
	fileName    string
	storagePath string
	uploadedBy  kernel.UUID
}

// NewDocument creates a validated document reference. An empty storage path
// defaults to /tmp/<fileName>.
func NewDocument(id kernel.UUID, docType DocumentType, fileName, storagePath string, uploadedBy kernel.UUID) (Document, error) {
	if err := id.Validate(); err != nil {
		return Document{}, err
	}
	if err := docType.Validate(); err != nil {
		return Document{}, err
	}
	if fileName == "" {
		return Document{}, errs.NewValueIsRequiredError("fileName")
	}
	if err := uploadedBy.Validate(); err != nil {
		return Document{}, errs.NewValueIsRequiredErrorWithCause("uploadedBy", err)
	}
	if storagePath == "" {
		storagePath = "/tmp/" + fileName
	}

	return Document{
		id:          id,
		docType:     docType,
		fileName:    fileName,
		storagePath: storagePath,
		uploadedBy:  uploadedBy,
	}, nil
}

// ID returns the document's identifier.
func (d Document) ID() kernel.UUID { return d.id }

// Type returns the document classification.
func (d Document) Type() DocumentType { return d.docType }

// FileName returns the original file name.
func (d Document) FileName() string { return d.fileName }

// StoragePath returns where the file is stored.
func (d Document) StoragePath() string { return d.storagePath }

// UploadedBy returns the uploading user's identifier.
func (d Document) UploadedBy() kernel.UUID { return d.uploadedBy }
