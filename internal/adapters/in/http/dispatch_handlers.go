package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/dispatch"
	"freight/internal/core/domain/model/kernel"
)

// CreateDispatch handles POST /api/v1/dispatches.
func (s *Server) CreateDispatch(ctx echo.Context) error {
	tenantCtx, ok := tenantContext(ctx)
	if !ok {
		return unauthorized(ctx, "caller identity is missing")
	}

	var req CreateDispatchRequest
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
	driverID, err := parseOptionalUUID("driverId", req.DriverID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	carrierID, err := parseOptionalUUID("carrierId", req.CarrierID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	dispatchID := kernel.NewUUID()
	cmd, err := commands.NewCreateDispatchCommand(tenantCtx, dispatchID, loadID,
		driverID, carrierID, req.PlannedStart, req.PlannedEnd, req.Notes)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.createDispatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: dispatchID.String()})
}

// ListDispatches handles GET /api/v1/dispatches.
func (s *Server) ListDispatches(ctx echo.Context) error {
	tenantCtx, ok := tenantContext(ctx)
	if !ok {
		return unauthorized(ctx, "caller identity is missing")
	}

	query, err := queries.NewListDispatchesQuery(tenantCtx, ctx.QueryParam("status"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	board, err := s.listDispatchesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dispatchBoardFromQuery(board))
}

// AcceptDispatch handles POST /api/v1/dispatches/:dispatchId/accept.
func (s *Server) AcceptDispatch(ctx echo.Context) error {
	tenantCtx, ok := tenantContext(ctx)
	if !ok {
		return unauthorized(ctx, "caller identity is missing")
	}

	dispatchID, err := parseUUID("dispatchId", ctx.Param("dispatchId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptDispatchCommand(tenantCtx, dispatchID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.acceptDispatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectDispatch handles POST /api/v1/dispatches/:dispatchId/reject.
func (s *Server) RejectDispatch(ctx echo.Context) error {
	tenantCtx, ok := tenantContext(ctx)
	if !ok {
		return unauthorized(ctx, "caller identity is missing")
	}

	dispatchID, err := parseUUID("dispatchId", ctx.Param("dispatchId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRejectDispatchCommand(tenantCtx, dispatchID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.rejectDispatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordDispatchStatus handles POST /api/v1/dispatches/:dispatchId/status.
func (s *Server) RecordDispatchStatus(ctx echo.Context) error {
	tenantCtx, ok := tenantContext(ctx)
	if !ok {
		return unauthorized(ctx, "caller identity is missing")
	}

	dispatchID, err := parseUUID("dispatchId", ctx.Param("dispatchId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req RecordDispatchStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	next, err := dispatch.StatusFromString(req.Status)
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

	cmd, err := commands.NewRecordDispatchStatusCommand(tenantCtx, dispatchID, next, point, req.Notes)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.recordDispatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
