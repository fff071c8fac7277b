package sequencerepo

import (
	"context"
	"time"

	"hubops/internal/core/domain/model/sequence"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormSequenceRepository struct {
	db *gorm.DB
}

func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// NextNumber bumps the counter row in a single statement. The row stays
// locked until the surrounding transaction ends.
func (r *GormSequenceRepository) NextNumber(ctx context.Context, kind sequence.Kind, yy int) (int64, error) {
	if err := kind.Validate(); err != nil {
		return 0, err
	}

	var value int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO sequence_counters (kind, yy, value)
		VALUES (?, ?, 1)
		ON CONFLICT (kind, yy) DO UPDATE SET value = sequence_counters.value + 1
		RETURNING value
	`, kind.String(), yy).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}

// Reserve inserts the code with ON CONFLICT DO NOTHING so a collision does
// not abort the transaction.
func (r *GormSequenceRepository) Reserve(
	ctx context.Context,
	kind sequence.Kind,
	code string,
	scopeKey string,
	at time.Time,
) (bool, error) {
	if err := kind.Validate(); err != nil {
		return false, err
	}

	dto := IssuedCodeDTO{
		Kind:     kind.String(),
		Code:     code,
		ScopeKey: scopeKey,
		IssuedAt: at,
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
