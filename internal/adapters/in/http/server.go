// Package http is the inbound REST adapter. Handlers are thin: they bind and
// validate the payload, translate it into a command or query, and map the
// result back onto the wire. Authentication is a gateway concern; handlers
// receive an already-verified identity via headers.
package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createLoadHandler          commands.CreateLoadCommandHandler
	updateLoadHandler          commands.UpdateLoadCommandHandler
	cancelLoadHandler          commands.CancelLoadCommandHandler
	calculateRateHandler       commands.CalculateRateCommandHandler
	attachDocumentHandler      commands.AttachDocumentCommandHandler
	appendTrackingEventHandler commands.AppendTrackingEventCommandHandler
	createDispatchHandler      commands.CreateDispatchCommandHandler
	acceptDispatchHandler      commands.AcceptDispatchCommandHandler
	rejectDispatchHandler      commands.RejectDispatchCommandHandler
	recordDispatchHandler      commands.RecordDispatchStatusCommandHandler
	createInvoiceHandler       commands.CreateInvoiceCommandHandler
	updateInvoiceHandler       commands.UpdateInvoiceCommandHandler

	// Query handlers
	listLoadsHandler          queries.ListLoadsQueryHandler
	getLoadHandler            queries.GetLoadQueryHandler
	listDispatchesHandler     queries.ListDispatchesQueryHandler
	listTrackingEventsHandler queries.ListTrackingEventsQueryHandler
	listInvoicesHandler       queries.ListInvoicesQueryHandler
	dashboardSummaryHandler   queries.DashboardSummaryQueryHandler

	logger *logrus.Logger
}

// CommandHandlers bundles the write-side handlers the server depends on.
type CommandHandlers struct {
	CreateLoad          commands.CreateLoadCommandHandler
	UpdateLoad          commands.UpdateLoadCommandHandler
	CancelLoad          commands.CancelLoadCommandHandler
	CalculateRate       commands.CalculateRateCommandHandler
	AttachDocument      commands.AttachDocumentCommandHandler
	AppendTrackingEvent commands.AppendTrackingEventCommandHandler
	CreateDispatch      commands.CreateDispatchCommandHandler
	AcceptDispatch      commands.AcceptDispatchCommandHandler
	RejectDispatch      commands.RejectDispatchCommandHandler
	RecordDispatch      commands.RecordDispatchStatusCommandHandler
	CreateInvoice       commands.CreateInvoiceCommandHandler
	UpdateInvoice       commands.UpdateInvoiceCommandHandler
}

// QueryHandlers bundles the read-side handlers the server depends on.
type QueryHandlers struct {
	ListLoads          queries.ListLoadsQueryHandler
	GetLoad            queries.GetLoadQueryHandler
	ListDispatches     queries.ListDispatchesQueryHandler
	ListTrackingEvents queries.ListTrackingEventsQueryHandler
	ListInvoices       queries.ListInvoicesQueryHandler
	DashboardSummary   queries.DashboardSummaryQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(cmds CommandHandlers, qrys QueryHandlers, logger *logrus.Logger) *Server {
	return &Server{
		createLoadHandler:          cmds.CreateLoad,
		updateLoadHandler:          cmds.UpdateLoad,
		cancelLoadHandler:          cmds.CancelLoad,
		calculateRateHandler:       cmds.CalculateRate,
		attachDocumentHandler:      cmds.AttachDocument,
		appendTrackingEventHandler: cmds.AppendTrackingEvent,
		createDispatchHandler:      cmds.CreateDispatch,
		acceptDispatchHandler:      cmds.AcceptDispatch,
		rejectDispatchHandler:      cmds.RejectDispatch,
		recordDispatchHandler:      cmds.RecordDispatch,
		createInvoiceHandler:       cmds.CreateInvoice,
		updateInvoiceHandler:       cmds.UpdateInvoice,
		listLoadsHandler:           qrys.ListLoads,
		getLoadHandler:             qrys.GetLoad,
		listDispatchesHandler:      qrys.ListDispatches,
		listTrackingEventsHandler:  qrys.ListTrackingEvents,
		listInvoicesHandler:        qrys.ListInvoices,
		dashboardSummaryHandler:    qrys.DashboardSummary,
		logger:                     logger,
	}
}

// requestValidator adapts go-playground/validator to echo's Validator interface.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// RegisterRoutes mounts the API under /api/v1 behind the tenant identity
// middleware. The health endpoint stays outside the identity check.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = &requestValidator{validate: validator.New()}

	e.GET("/health", s.Health)

	api := e.Group("/api/v1", TenantContextMiddleware())

	api.POST("/loads", s.CreateLoad)
	api.GET("/loads", s.ListLoads)
	api.GET("/loads/:loadId", s.GetLoad)
	api.PATCH("/loads/:loadId", s.UpdateLoad)
	api.POST("/loads/:loadId/cancel", s.CancelLoad)
	api.POST("/loads/:loadId/rates", s.CalculateRate)
	api.POST("/loads/:loadId/documents", s.AttachDocument)
	api.POST("/loads/:loadId/events", s.AppendTrackingEvent)
	api.GET("/loads/:loadId/events", s.ListTrackingEvents)

	api.POST("/dispatches", s.CreateDispatch)
	api.GET("/dispatches", s.ListDispatches)
	api.POST("/dispatches/:dispatchId/accept", s.AcceptDispatch)
	api.POST("/dispatches/:dispatchId/reject", s.RejectDispatch)
	api.POST("/dispatches/:dispatchId/status", s.RecordDispatchStatus)

	api.POST("/invoices", s.CreateInvoice)
	api.GET("/invoices", s.ListInvoices)
	api.PATCH("/invoices/:invoiceId", s.UpdateInvoice)

	api.GET("/dashboard/summary", s.DashboardSummary)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
