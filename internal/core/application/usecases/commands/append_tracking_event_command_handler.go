package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/dispatch"
	"freight/internal/core/domain/model/kernel"
)

// AppendTrackingEventCommandHandler appends a tracking event to a load's
// audit trail. The load must exist under the tenant; the timestamp is fixed
// at append time and the event is never mutated afterwards.
type AppendTrackingEventCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAppendTrackingEventCommandHandler creates a handler for tracking event
// reports.
func NewAppendTrackingEventCommandHandler(uowFactory DispatchUoWFactory) AppendTrackingEventCommandHandler {
	return AppendTrackingEventCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tracking event command.
func (h *AppendTrackingEventCommandHandler) Handle(ctx context.Context, cmd AppendTrackingEventCommand) error {
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

	if _, err := uow.LoadRepository().Get(ctx, cmd.TenantCtx().TenantID(), cmd.LoadID()); err != nil {
		return err
	}

	event, err := dispatch.NewTrackingEvent(kernel.NewUUID(), cmd.TenantCtx().TenantID(),
		cmd.LoadID(), cmd.DispatchID(), cmd.EventType(), cmd.Point(), cmd.Notes(),
		time.Now().UTC(), cmd.TenantCtx().UserID())
	if err != nil {
		return err
	}

	if err = uow.TrackingEventRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
