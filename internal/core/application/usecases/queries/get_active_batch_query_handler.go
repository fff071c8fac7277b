package queries

import (
	"context"
	"database/sql"
	"errors"

	"hubops/internal/core/domain/model/batch"
	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetActiveBatchQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveBatchQueryHandler(db *gorm.DB) GetActiveBatchQueryHandler {
	return GetActiveBatchQueryHandler{db: db}
}

// Handle returns the ACTIVE batch for the staff code or an
// ObjectNotFoundError.
func (h GetActiveBatchQueryHandler) Handle(
	ctx context.Context,
	query GetActiveBatchQuery,
) (GetActiveBatchQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetActiveBatchQueryResponse{}, err
	}

	var (
		resp GetActiveBatchQueryResponse
		id   uuid.UUID
	)
	row := h.db.WithContext(ctx).Raw(`
		SELECT id, code, station_code, staff_code, route_code, created_at
		FROM batches
		WHERE staff_code = ? AND status = ?
	`, query.StaffCode(), int(batch.Active)).Row()

	err := row.Scan(&id, &resp.Code, &resp.StationCode, &resp.StaffCode, &resp.RouteCode, &resp.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetActiveBatchQueryResponse{}, errs.NewObjectNotFoundError("active batch", query.StaffCode())
	}
	if err != nil {
		return GetActiveBatchQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetActiveBatchQueryResponse{}, err
	}
	return resp, nil
}
