package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateInvoiceCommandHandler_Handle_DefaultsFromLoad(t *testing.T) {
	ctx := t.Context()
	tenantCtx := testTenantCtx(t)
	aggregate := storedLoad(t, tenantCtx.TenantID())

	customerID := kernel.NewUUID()
	require.NoError(t, aggregate.SetCustomer(&customerID, "PO-889"))
	require.NoError(t, aggregate.SetCurrency("CAD"))

	cmd, err := commands.NewCreateInvoiceCommand(tenantCtx, kernel.NewUUID(), aggregate.ID(),
		"INV-2001", nil, decimal.NewFromInt(4200), "", nil)
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		loadRepo.On("Get", ctx, tenantCtx.TenantID(), aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("Add", ctx, mock.AnythingOfType("*invoice.Invoice")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateInvoiceCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	created := invoiceRepo.Calls[0].Arguments.Get(1).(*invoice.Invoice)
	assert.Equal(t, invoice.StatusDraft, created.Status())
	assert.Equal(t, "CAD", created.Currency(), "currency defaults from the load")
	require.NotNil(t, created.BilledToCustomer())
	assert.True(t, created.BilledToCustomer().IsEqual(customerID), "bill-to defaults from the load's customer")
	invoiceRepo.AssertExpectations(t)
}

func TestCreateInvoiceCommandHandler_Handle_ExplicitFieldsWin(t *testing.T) {
	ctx := t.Context()
	tenantCtx := testTenantCtx(t)
	aggregate := storedLoad(t, tenantCtx.TenantID())
	billedTo := kernel.NewUUID()

	cmd, err := commands.NewCreateInvoiceCommand(tenantCtx, kernel.NewUUID(), aggregate.ID(),
		"INV-2002", &billedTo, decimal.NewFromInt(100), "EUR", nil)
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		loadRepo.On("Get", ctx, tenantCtx.TenantID(), aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("Add", ctx, mock.AnythingOfType("*invoice.Invoice")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateInvoiceCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	created := invoiceRepo.Calls[0].Arguments.Get(1).(*invoice.Invoice)
	assert.Equal(t, "EUR", created.Currency())
	require.NotNil(t, created.BilledToCustomer())
	assert.True(t, created.BilledToCustomer().IsEqual(billedTo))
}

func TestCreateInvoiceCommandHandler_Handle_DuplicateNumber(t *testing.T) {
	ctx := t.Context()
	tenantCtx := testTenantCtx(t)
	aggregate := storedLoad(t, tenantCtx.TenantID())

	cmd, err := commands.NewCreateInvoiceCommand(tenantCtx, kernel.NewUUID(), aggregate.ID(),
		"INV-2003", nil, decimal.NewFromInt(100), "", nil)
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)
	conflict := errs.NewConflictError("invoiceNumber", "INV-2003")

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		loadRepo.On("Get", ctx, tenantCtx.TenantID(), aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("Add", ctx, mock.AnythingOfType("*invoice.Invoice")).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateInvoiceCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
}
