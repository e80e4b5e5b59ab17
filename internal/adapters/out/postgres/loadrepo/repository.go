package loadrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormLoadRepository implements ports.LoadRepository using GORM.
type GormLoadRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLoadRepository creates a new GORM load repository.
func NewGormLoadRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadRepository {
	return &GormLoadRepository{
		db:      db,
		tracker: tracker,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// Add saves a new load with its stops, items and accessorial charges.
// A duplicate reference number within the tenant surfaces as a conflict.
func (r *GormLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictError("referenceNumber", aggregate.ReferenceNumber())
		}
		return err
	}

	if err := r.insertChildren(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing load and replaces its child collections.
func (r *GormLoadRepository) Update(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&LoadDTO{}).
		Where("id = ? AND tenant_id = ?", dto.ID, dto.TenantID).
		Select("*").
		Omit("id", "tenant_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return errs.NewConflictError("referenceNumber", aggregate.ReferenceNumber())
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("loadId", aggregate.ID().String())
	}

	if err := r.deleteChildren(ctx, aggregate); err != nil {
		return err
	}
	if err := r.insertChildren(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a load with all children by ID within the tenant.
func (r *GormLoadRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}

	var dto LoadDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("loadId", id.String())
		}
		return nil, err
	}

	var stopDTOs []StopDTO
	err = r.db.WithContext(ctx).
		Order("sequence_number").
		Find(&stopDTOs, "load_id = ? AND tenant_id = ?", dto.ID, dto.TenantID).Error
	if err != nil {
		return nil, err
	}

	var itemDTOs []ItemDTO
	err = r.db.WithContext(ctx).
		Find(&itemDTOs, "load_id = ? AND tenant_id = ?", dto.ID, dto.TenantID).Error
	if err != nil {
		return nil, err
	}

	var accessorialDTOs []AccessorialDTO
	err = r.db.WithContext(ctx).
		Find(&accessorialDTOs, "load_id = ? AND tenant_id = ?", dto.ID, dto.TenantID).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, stopDTOs, itemDTOs, accessorialDTOs)
}

// AddRate appends an immutable rate snapshot row for a load.
func (r *GormLoadRepository) AddRate(ctx context.Context, tenantID, loadID kernel.UUID, rate load.Rate) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	if err := loadID.Validate(); err != nil {
		return err
	}

	dto := rateFromDomain(tenantID, loadID, rate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddDocument attaches a document metadata row to a load.
func (r *GormLoadRepository) AddDocument(ctx context.Context, tenantID, loadID kernel.UUID, doc load.Document) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	if err := loadID.Validate(); err != nil {
		return err
	}

	dto := documentFromDomain(tenantID, loadID, doc)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormLoadRepository) insertChildren(ctx context.Context, aggregate *load.Load) error {
	if stops := stopsFromDomain(aggregate); len(stops) > 0 {
		if err := r.db.WithContext(ctx).Create(&stops).Error; err != nil {
			return err
		}
	}
	if items := itemsFromDomain(aggregate); len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}
	if accessorials := accessorialsFromDomain(aggregate); len(accessorials) > 0 {
		if err := r.db.WithContext(ctx).Create(&accessorials).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *GormLoadRepository) deleteChildren(ctx context.Context, aggregate *load.Load) error {
	loadID := aggregate.ID().Bytes()
	tenantID := aggregate.TenantID().Bytes()

	for _, model := range []any{&StopDTO{}, &ItemDTO{}, &AccessorialDTO{}} {
		err := r.db.WithContext(ctx).
			Where("load_id = ? AND tenant_id = ?", loadID, tenantID).
			Delete(model).Error
		if err != nil {
			return err
		}
	}
	return nil
}
