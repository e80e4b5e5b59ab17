package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Multi-write
// operations (load create with children, dispatch status update plus tracking
// event, rate snapshot plus cached totals) run entirely inside one unit so a
// failure leaves prior state unchanged.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// LoadRepository returns a LoadRepository bound to the current transaction.
	LoadRepository() LoadRepository

	// DispatchRepository returns a DispatchRepository bound to the current transaction.
	DispatchRepository() DispatchRepository

	// TrackingEventRepository returns a TrackingEventRepository bound to the current transaction.
	TrackingEventRepository() TrackingEventRepository

	// InvoiceRepository returns an InvoiceRepository bound to the current transaction.
	InvoiceRepository() InvoiceRepository
}
