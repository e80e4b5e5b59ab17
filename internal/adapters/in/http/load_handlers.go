package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/dispatch"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// CreateLoad handles POST /api/v1/loads.
func (s *Server) CreateLoad(ctx echo.Context) error {
	tenantCtx, ok := tenantContext(ctx)
	if !ok {
		return unauthorized(ctx, "caller identity is missing")
	}

	var req CreateLoadRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	mode, err := load.ModeFromString(req.Mode)
	if err != nil {
		return s.writeError(ctx, err)
	}
	equipmentType, err := load.EquipmentTypeFromString(req.EquipmentType)
	if err != nil {
		return s.writeError(ctx, err)
	}
	stops, err := stopParams(req.Stops)
	if err != nil {
		return s.writeError(ctx, err)
	}
	customerID, err := parseOptionalUUID("customerId", req.CustomerID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	accessorials, err := accessorialParams(req.Accessorials)
	if err != nil {
		return s.writeError(ctx, err)
	}

	loadID := kernel.NewUUID()
	cmd, err := commands.NewCreateLoadCommand(tenantCtx, loadID, req.ReferenceNumber,
		mode, equipmentType, stops, commands.CreateLoadOptions{
			CustomerReference: req.CustomerReference,
			CustomerID:        customerID,
			Currency:          req.Currency,
			TotalWeight:       req.TotalWeight,
			TotalVolume:       req.TotalVolume,
			Pieces:            req.Pieces,
			Items:             itemParams(req.Items),
			Accessorials:      accessorials,
		})
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.createLoadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: loadID.String()})
}

// ListLoads handles GET /api/v1/loads.
func (s *Server) ListLoads(ctx echo.Context) error {
	tenantCtx, ok := tenantContext(ctx)
	if !ok {
		return unauthorized(ctx, "caller identity is missing")
	}

	page := queryInt(ctx, "page", 1)
	pageSize := queryInt(ctx, "pageSize", defaultPageSize)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filter := queries.LoadFilter{
		Status:        ctx.QueryParam("status"),
		Mode:          ctx.QueryParam("mode"),
		ReferenceLike: ctx.QueryParam("reference"),
	}
	if raw := ctx.QueryParam("customerId"); raw != "" {
		customerID, err := parseUUID("customerId", raw)
		if err != nil {
			return s.writeError(ctx, err)
		}
		filter.CustomerID = &customerID
	}

	query, err := queries.NewListLoadsQuery(tenantCtx, filter, page, pageSize)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.listLoadsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loadPageFromQuery(result))
}

// GetLoad handles GET /api/v1/loads/:loadId.
func (s *Server) GetLoad(ctx echo.Context) error {
	tenantCtx, ok := tenantContext(ctx)
	if !ok {
		return unauthorized(ctx, "caller identity is missing")
	}

	loadID, err := parseUUID("loadId", ctx.Param("loadId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetLoadQuery(tenantCtx, loadID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	detail, err := s.getLoadHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loadDetailFromQuery(detail))
}

// UpdateLoad handles PATCH /api/v1/loads/:loadId.
func (s *Server) UpdateLoad(ctx echo.Context) error {
	tenantCtx, ok := tenantContext(ctx)
	if !ok {
		return unauthorized(ctx, "caller identity is missing")
	}

	loadID, err := parseUUID("loadId", ctx.Param("loadId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req UpdateLoadRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	changes, err := loadChanges(req)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateLoadCommand(tenantCtx, loadID, changes)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.updateLoadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelLoad handles POST /api/v1/loads/:loadId/cancel.
func (s *Server) CancelLoad(ctx echo.Context) error {
	tenantCtx, ok := tenantContext(ctx)
	if !ok {
		return unauthorized(ctx, "caller identity is missing")
	}

	loadID, err := parseUUID("loadId", ctx.Param("loadId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCancelLoadCommand(tenantCtx, loadID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.cancelLoadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CalculateRate handles POST /api/v1/loads/:loadId/rates.
func (s *Server) CalculateRate(ctx echo.Context) error {
	tenantCtx, ok := tenantContext(ctx)
	if !ok {
		return unauthorized(ctx, "caller identity is missing")
	}

	loadID, err := parseUUID("loadId", ctx.Param("loadId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req CalculateRateRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	accessorials, err := accessorialParams(req.Accessorials)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCalculateRateCommand(tenantCtx, loadID, req.BaseRate,
		req.FuelSurcharge, accessorials)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.calculateRateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RateResponse{Total: result.Total, Currency: result.Currency})
}

// AttachDocument handles POST /api/v1/loads/:loadId/documents.
func (s *Server) AttachDocument(ctx echo.Context) error {
	tenantCtx, ok := tenantContext(ctx)
	if !ok {
		return unauthorized(ctx, "caller identity is missing")
	}

	loadID, err := parseUUID("loadId", ctx.Param("loadId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req AttachDocumentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	docType, err := load.DocumentTypeFromString(req.DocType)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAttachDocumentCommand(tenantCtx, loadID, docType, req.FileName, req.StoragePath)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.attachDocumentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AppendTrackingEvent handles POST /api/v1/loads/:loadId/events.
func (s *Server) AppendTrackingEvent(ctx echo.Context) error {
	tenantCtx, ok := tenantContext(ctx)
	if !ok {
		return unauthorized(ctx, "caller identity is missing")
	}

	loadID, err := parseUUID("loadId", ctx.Param("loadId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req AppendTrackingEventRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	eventType, err := dispatch.EventTypeFromString(req.EventType)
	if err != nil {
		return s.writeError(ctx, err)
	}
	dispatchID, err := parseOptionalUUID("dispatchId", req.DispatchID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var point *kernel.GeoPoint
	switch {
	case req.Latitude != nil && req.Longitude != nil:
		p, pointErr := kernel.NewGeoPoint(*req.Latitude, *req.Longitude)
		if pointErr != nil {
			return s.writeError(ctx, pointErr)
		}
		point = &p
	case req.Latitude != nil || req.Longitude != nil:
		return badRequest(ctx, "latitude and longitude must be supplied together")
	}

	cmd, err := commands.NewAppendTrackingEventCommand(tenantCtx, loadID, dispatchID,
		eventType, point, req.Notes)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.appendTrackingEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ListTrackingEvents handles GET /api/v1/loads/:loadId/events.
func (s *Server) ListTrackingEvents(ctx echo.Context) error {
	tenantCtx, ok := tenantContext(ctx)
	if !ok {
		return unauthorized(ctx, "caller identity is missing")
	}

	loadID, err := parseUUID("loadId", ctx.Param("loadId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewListTrackingEventsQuery(tenantCtx, loadID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	events, err := s.listTrackingEventsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackingEventsFromQuery(events))
}

func loadChanges(req UpdateLoadRequest) (commands.UpdateLoadChanges, error) {
	changes := commands.UpdateLoadChanges{
		ReferenceNumber:   req.ReferenceNumber,
		CustomerReference: req.CustomerReference,
		Currency:          req.Currency,
	}

	customerID, err := parseOptionalUUID("customerId", req.CustomerID)
	if err != nil {
		return commands.UpdateLoadChanges{}, err
	}
	changes.CustomerID = customerID

	if req.Mode != nil {
		mode, modeErr := load.ModeFromString(*req.Mode)
		if modeErr != nil {
			return commands.UpdateLoadChanges{}, modeErr
		}
		changes.Mode = &mode
	}
	if req.EquipmentType != nil {
		equipmentType, equipErr := load.EquipmentTypeFromString(*req.EquipmentType)
		if equipErr != nil {
			return commands.UpdateLoadChanges{}, equipErr
		}
		changes.EquipmentType = &equipmentType
	}
	if req.Status != nil {
		status, statusErr := load.StatusFromString(*req.Status)
		if statusErr != nil {
			return commands.UpdateLoadChanges{}, statusErr
		}
		changes.Status = &status
	}
	if req.TotalWeight != nil || req.TotalVolume != nil || req.Pieces != nil {
		changes.Totals = &commands.TotalsParams{
			TotalWeight: req.TotalWeight,
			TotalVolume: req.TotalVolume,
			Pieces:      req.Pieces,
		}
	}
	if req.Stops != nil {
		stops, stopsErr := stopParams(req.Stops)
		if stopsErr != nil {
			return commands.UpdateLoadChanges{}, stopsErr
		}
		changes.Stops = stops
	}
	if req.Items != nil {
		changes.Items = itemParams(req.Items)
	}
	if req.Accessorials != nil {
		accessorials, accErr := accessorialParams(req.Accessorials)
		if accErr != nil {
			return commands.UpdateLoadChanges{}, accErr
		}
		changes.Accessorials = accessorials
	}

	return changes, nil
}

func queryInt(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
