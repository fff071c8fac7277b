package queries

import (
	"context"
	"database/sql"
	"errors"

	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetConsignmentQueryHandler struct {
	db *gorm.DB
}

func NewGetConsignmentQueryHandler(db *gorm.DB) GetConsignmentQueryHandler {
	return GetConsignmentQueryHandler{db: db}
}

// Handle reads the consignment row and its history ordered by sequence.
func (h GetConsignmentQueryHandler) Handle(
	ctx context.Context,
	query GetConsignmentQuery,
) (GetConsignmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetConsignmentQueryResponse{}, err
	}
	db := h.db.WithContext(ctx)

	var (
		resp                     GetConsignmentQueryResponse
		status                   int
		arrival, manifest, sheet uuid.NullUUID
	)
	err := db.Raw(`
		SELECT cn_number, origin_city_id, destination_city_id, service_id,
			weight, pieces, payment_mode, total_amount, cod_amount, status,
			arrival_scan_id, manifest_id, delivery_sheet_id, updated_at
		FROM consignments
		WHERE cn_number = ?
	`, query.CN()).Row().Scan(
		&resp.CN, &resp.OriginCityID, &resp.DestinationCityID, &resp.ServiceID,
		&resp.Weight, &resp.Pieces, &resp.PaymentMode, &resp.TotalAmount, &resp.CODAmount, &status,
		&arrival, &manifest, &sheet, &resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetConsignmentQueryResponse{}, errs.NewObjectNotFoundError("consignment", query.CN())
	}
	if err != nil {
		return GetConsignmentQueryResponse{}, err
	}
	resp.Status = consignment.Status(status).String()
	resp.ArrivalScanID = nullableID(arrival)
	resp.ManifestID = nullableID(manifest)
	resp.DeliverySheetID = nullableID(sheet)

	rows, err := db.Raw(`
		SELECT kind, from_status, to_status, actor, note, at
		FROM consignment_history
		WHERE cn_number = ?
		ORDER BY seq
	`, query.CN()).Rows()
	if err != nil {
		return GetConsignmentQueryResponse{}, err
	}
	defer rows.Close()

	resp.History = make([]HistoryItem, 0)
	for rows.Next() {
		var (
			item           HistoryItem
			kind, from, to int
		)
		if err = rows.Scan(&kind, &from, &to, &item.Actor, &item.Note, &item.At); err != nil {
			return GetConsignmentQueryResponse{}, err
		}
		item.Kind = consignment.EntryKind(kind).String()
		item.From = consignment.Status(from).String()
		item.To = consignment.Status(to).String()
		resp.History = append(resp.History, item)
	}
	if err = rows.Err(); err != nil {
		return GetConsignmentQueryResponse{}, err
	}

	return resp, nil
}

func nullableID(id uuid.NullUUID) string {
	if !id.Valid {
		return ""
	}
	return id.UUID.String()
}
