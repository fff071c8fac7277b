package queries

import (
	"context"
	"database/sql"
	"errors"

	"hubops/internal/core/domain/model/hubdoc"
	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetDocumentQueryHandler struct {
	db *gorm.DB
}

func NewGetDocumentQueryHandler(db *gorm.DB) GetDocumentQueryHandler {
	return GetDocumentQueryHandler{db: db}
}

// Handle returns the document and its members in scan order. A document of
// another kind is reported as not found.
func (h GetDocumentQueryHandler) Handle(
	ctx context.Context,
	query GetDocumentQuery,
) (GetDocumentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDocumentQueryResponse{}, err
	}
	db := h.db.WithContext(ctx)

	var (
		resp   GetDocumentQueryResponse
		status int
	)
	err := db.Raw(`
		SELECT code, status, station_code, batch_code, rider_code, driver_code,
			vehicle_number, route_code, remarks, created_at, completed_at
		FROM documents
		WHERE id = ? AND kind = ?
	`, query.ID().Bytes(), int(query.Kind())).Row().Scan(
		&resp.Code, &status, &resp.StationCode, &resp.BatchCode, &resp.RiderCode, &resp.DriverCode,
		&resp.VehicleNumber, &resp.RouteCode, &resp.Remarks, &resp.CreatedAt, &resp.CompletedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDocumentQueryResponse{}, errs.NewObjectNotFoundError(query.Kind().String(), query.ID().String())
	}
	if err != nil {
		return GetDocumentQueryResponse{}, err
	}
	resp.ID = query.ID()
	resp.Kind = query.Kind().String()
	resp.Status = hubdoc.Status(status).String()

	rows, err := db.Raw(`
		SELECT id, cn_number, status, scanned_at, resolved_at
		FROM document_members
		WHERE document_id = ?
		ORDER BY scanned_at, cn_number
	`, query.ID().Bytes()).Rows()
	if err != nil {
		return GetDocumentQueryResponse{}, err
	}
	defer rows.Close()

	resp.Members = make([]DocumentMemberItem, 0)
	for rows.Next() {
		var (
			item         DocumentMemberItem
			id           uuid.UUID
			memberStatus int
		)
		if err = rows.Scan(&id, &item.CN, &memberStatus, &item.ScannedAt, &item.ResolvedAt); err != nil {
			return GetDocumentQueryResponse{}, err
		}
		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetDocumentQueryResponse{}, err
		}
		item.Status = hubdoc.MemberStatus(memberStatus).String()
		resp.Members = append(resp.Members, item)
	}
	if err = rows.Err(); err != nil {
		return GetDocumentQueryResponse{}, err
	}

	return resp, nil
}
