// Package batchrepo persists batches. The partial unique index on staff_code
// keeps at most one ACTIVE batch per staff member.
package batchrepo

import (
	"time"

	"hubops/internal/core/domain/model/batch"
	"hubops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type BatchDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code        string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	StationCode string     `gorm:"type:varchar(32)"`
	StaffCode   string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_batches_active_staff,where:status = 1"`
	RouteCode   string     `gorm:"type:varchar(32)"`
	Status      int        `gorm:"type:smallint;not null"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	ClosedAt    *time.Time `gorm:""`
}

func (BatchDTO) TableName() string {
	return "batches"
}

func fromDomain(b *batch.Batch) BatchDTO {
	scope := b.Scope()
	return BatchDTO{
		ID:          b.ID().Bytes(),
		Code:        b.Code(),
		StationCode: scope.StationCode,
		StaffCode:   scope.StaffCode,
		RouteCode:   scope.RouteCode,
		Status:      int(b.Status()),
		CreatedAt:   b.CreatedAt(),
		ClosedAt:    b.ClosedAt(),
	}
}

func toDomain(dto BatchDTO) (*batch.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return batch.RestoreBatch(
		id,
		dto.Code,
		batch.Scope{
			StationCode: dto.StationCode,
			StaffCode:   dto.StaffCode,
			RouteCode:   dto.RouteCode,
		},
		batch.Status(dto.Status),
		dto.CreatedAt,
		dto.ClosedAt,
	)
}
