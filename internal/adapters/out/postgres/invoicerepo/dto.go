// Package invoicerepo provides data transfer objects and mapping functions
// for invoice persistence.
package invoicerepo

import (
	"time"

	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceDTO represents the database structure for persisting invoice
// aggregates. The invoice number is unique per tenant.
type InvoiceDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TenantID           uuid.UUID       `gorm:"type:uuid;index;uniqueIndex:idx_invoices_tenant_number"`
	LoadID             uuid.UUID       `gorm:"type:uuid;index"`
	InvoiceNumber      string          `gorm:"type:varchar(64);uniqueIndex:idx_invoices_tenant_number"`
	BilledToCustomerID *uuid.UUID      `gorm:"type:uuid"`
	Amount             decimal.Decimal `gorm:"type:numeric(14,2)"`
	Currency           string          `gorm:"type:varchar(3)"`
	Status             string          `gorm:"type:varchar(16);index"`
	DueDate            *time.Time
	IssuedAt           *time.Time
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for invoice entities.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// fromDomain converts an invoice aggregate to its database representation.
func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	var billedTo *uuid.UUID
	if id := aggregate.BilledToCustomer(); id != nil {
		raw := id.Bytes()
		billedTo = &raw
	}

	return InvoiceDTO{
		ID:                 aggregate.ID().Bytes(),
		TenantID:           aggregate.TenantID().Bytes(),
		LoadID:             aggregate.LoadID().Bytes(),
		InvoiceNumber:      aggregate.InvoiceNumber(),
		BilledToCustomerID: billedTo,
		Amount:             aggregate.Amount(),
		Currency:           aggregate.Currency(),
		Status:             aggregate.Status().String(),
		DueDate:            aggregate.DueDate(),
		IssuedAt:           aggregate.IssuedAt(),
	}
}

// toDomain reconstructs the invoice aggregate using RestoreInvoice.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	loadID, err := kernel.UUIDFromBytes(dto.LoadID[:])
	if err != nil {
		return nil, err
	}

	var billedTo *kernel.UUID
	if dto.BilledToCustomerID != nil {
		bID, billedErr := kernel.UUIDFromBytes((*dto.BilledToCustomerID)[:])
		if billedErr != nil {
			return nil, billedErr
		}
		billedTo = &bID
	}

	status, err := invoice.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return invoice.RestoreInvoice(invoice.RestoreInvoiceParams{
		ID:                 id,
		TenantID:           tenantID,
		LoadID:             loadID,
		InvoiceNumber:      dto.InvoiceNumber,
		BilledToCustomerID: billedTo,
		Amount:             dto.Amount,
		Currency:           dto.Currency,
		Status:             status,
		DueDate:            dto.DueDate,
		IssuedAt:           dto.IssuedAt,
	})
}
