package documentrepo

import (
	"context"
	"errors"

	"hubops/internal/core/domain/model/hubdoc"
	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormDocumentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormDocumentRepository(db *gorm.DB, tracker aggregateTracker) *GormDocumentRepository {
	return &GormDocumentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDocumentRepository) Add(ctx context.Context, aggregate *hubdoc.Document) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update stores the header, deletes members that left the document and
// upserts the rest.
func (r *GormDocumentRepository) Update(ctx context.Context, aggregate *hubdoc.Document) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Omit(clause.Associations).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("document", aggregate.ID().String())
	}

	keep := make([]uuid.UUID, 0, len(dto.Members))
	for _, m := range dto.Members {
		keep = append(keep, m.ID)
	}
	stale := db.Where("document_id = ?", dto.ID)
	if len(keep) > 0 {
		stale = stale.Where("id NOT IN ?", keep)
	}
	if err := stale.Delete(&MemberDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Members) > 0 {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "resolved_at"}),
		}).Create(&dto.Members).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateMemberError(r.newestCN(aggregate), aggregate.Code())
		}
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormDocumentRepository) Get(ctx context.Context, id kernel.UUID) (*hubdoc.Document, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.load(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the document row. Member rows are read unlocked; every
// writer takes the document lock first.
func (r *GormDocumentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*hubdoc.Document, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.load(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormDocumentRepository) load(db *gorm.DB, id kernel.UUID) (*hubdoc.Document, error) {
	var dto DocumentDTO
	err := db.
		Preload("Members", func(tx *gorm.DB) *gorm.DB { return tx.Order("scanned_at") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("document", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

// newestCN names the most recently scanned member, which is the one a
// failed member insert is about.
func (r *GormDocumentRepository) newestCN(doc *hubdoc.Document) string {
	members := doc.Members()
	if len(members) == 0 {
		return ""
	}
	return members[len(members)-1].CN()
}
