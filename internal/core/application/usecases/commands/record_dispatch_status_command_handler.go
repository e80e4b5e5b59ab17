package commands

import (
	"context"
	"fmt"
	"time"

	"freight/internal/core/domain/model/dispatch"
	"freight/internal/core/domain/model/kernel"
)

// RecordDispatchStatusCommandHandler moves a dispatch to a progress status
// and appends a STATUS_CHANGE tracking event. Both writes share one
// transaction: a failed event append rolls the status change back.
type RecordDispatchStatusCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewRecordDispatchStatusCommandHandler creates a handler for dispatch
// progress updates.
func NewRecordDispatchStatusCommandHandler(uowFactory DispatchUoWFactory) RecordDispatchStatusCommandHandler {
	return RecordDispatchStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch status command.
func (h *RecordDispatchStatusCommandHandler) Handle(ctx context.Context, cmd RecordDispatchStatusCommand) error {
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

	dispatchRepo := uow.DispatchRepository()
	aggregate, err := dispatchRepo.Get(ctx, cmd.TenantCtx().TenantID(), cmd.DispatchID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.RecordStatus(cmd.Next()); err != nil {
		return err
	}

	if err = dispatchRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	notes := cmd.Notes()
	if notes == "" {
		notes = fmt.Sprintf("dispatch status changed from %s to %s", previous, cmd.Next())
	}

	dispatchID := aggregate.ID()
	event, err := dispatch.NewTrackingEvent(kernel.NewUUID(), cmd.TenantCtx().TenantID(),
		aggregate.LoadID(), &dispatchID, dispatch.EventStatusChange, cmd.Point(), notes,
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
