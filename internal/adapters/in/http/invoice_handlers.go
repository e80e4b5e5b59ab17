package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
)

// CreateInvoice handles POST /api/v1/invoices.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	tenantCtx, ok := tenantContext(ctx)
	if !ok {
		return unauthorized(ctx, "caller identity is missing")
	}

	var req CreateInvoiceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	loadID, err := parseUUID("loadId", req.LoadID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	billedTo, err := parseOptionalUUID("billedToCustomerId", req.BilledToCustomerID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewCreateInvoiceCommand(tenantCtx, invoiceID, loadID,
		req.InvoiceNumber, billedTo, req.Amount, req.Currency, req.DueDate)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.createInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: invoiceID.String()})
}

// UpdateInvoice handles PATCH /api/v1/invoices/:invoiceId.
func (s *Server) UpdateInvoice(ctx echo.Context) error {
	tenantCtx, ok := tenantContext(ctx)
	if !ok {
		return unauthorized(ctx, "caller identity is missing")
	}

	invoiceID, err := parseUUID("invoiceId", ctx.Param("invoiceId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req UpdateInvoiceRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	changes, err := invoiceChanges(req)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateInvoiceCommand(tenantCtx, invoiceID, changes)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.updateInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListInvoices handles GET /api/v1/invoices.
func (s *Server) ListInvoices(ctx echo.Context) error {
	tenantCtx, ok := tenantContext(ctx)
	if !ok {
		return unauthorized(ctx, "caller identity is missing")
	}

	query, err := queries.NewListInvoicesQuery(tenantCtx, ctx.QueryParam("status"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	invoices, err := s.listInvoicesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, invoicesFromQuery(invoices))
}

// DashboardSummary handles GET /api/v1/dashboard/summary.
func (s *Server) DashboardSummary(ctx echo.Context) error {
	tenantCtx, ok := tenantContext(ctx)
	if !ok {
		return unauthorized(ctx, "caller identity is missing")
	}

	query, err := queries.NewDashboardSummaryQuery(tenantCtx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	summary, err := s.dashboardSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summary)
}

func invoiceChanges(req UpdateInvoiceRequest) (commands.UpdateInvoiceChanges, error) {
	changes := commands.UpdateInvoiceChanges{
		InvoiceNumber: req.InvoiceNumber,
		Currency:      req.Currency,
		DueDate:       req.DueDate,
		IssuedAt:      req.IssuedAt,
	}

	billedTo, err := parseOptionalUUID("billedToCustomerId", req.BilledToCustomerID)
	if err != nil {
		return commands.UpdateInvoiceChanges{}, err
	}
	changes.BilledToCustomerID = billedTo

	changes.Amount = req.Amount

	if req.Status != nil {
		status, statusErr := invoice.StatusFromString(*req.Status)
		if statusErr != nil {
			return commands.UpdateInvoiceChanges{}, statusErr
		}
		changes.Status = &status
	}

	return changes, nil
}
