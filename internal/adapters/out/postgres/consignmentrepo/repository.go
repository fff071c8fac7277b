package consignmentrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormConsignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormConsignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormConsignmentRepository {
	return &GormConsignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the consignment row and its initial history.
func (r *GormConsignmentRepository) Add(ctx context.Context, aggregate *consignment.Consignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate, time.Now().UTC())
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("cn", fmt.Errorf("%s is already registered", aggregate.CN()))
		}
		return err
	}

	if err := r.appendHistory(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.CN(), aggregate)
	return nil
}

// Update rewrites status and holders and appends pending history entries.
func (r *GormConsignmentRepository) Update(ctx context.Context, aggregate *consignment.Consignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate, time.Now().UTC())
	result := r.db.WithContext(ctx).
		Model(&ConsignmentDTO{}).
		Where("cn_number = ?", dto.CN).
		Select("status", "arrival_scan_id", "manifest_id", "delivery_sheet_id", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("consignment", aggregate.CN())
	}

	if err := r.appendHistory(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.CN(), aggregate)
	return nil
}

func (r *GormConsignmentRepository) Get(ctx context.Context, cn string) (*consignment.Consignment, error) {
	return r.load(ctx, r.db.WithContext(ctx), cn)
}

// GetForUpdate locks the consignment row with SELECT ... FOR UPDATE.
func (r *GormConsignmentRepository) GetForUpdate(ctx context.Context, cn string) (*consignment.Consignment, error) {
	return r.load(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), cn)
}

func (r *GormConsignmentRepository) load(_ context.Context, db *gorm.DB, cn string) (*consignment.Consignment, error) {
	var dto ConsignmentDTO
	err := db.
		Preload("History", func(tx *gorm.DB) *gorm.DB { return tx.Order("seq") }).
		First(&dto, "cn_number = ?", cn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("consignment", cn)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormConsignmentRepository) appendHistory(ctx context.Context, aggregate *consignment.Consignment) error {
	rows := pendingHistory(aggregate)
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}
