// Package consignmentrepo persists consignments, their append-only history
// and the document holder pointers.
package consignmentrepo

import (
	"time"

	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConsignmentDTO is one row of the registry. Status is stored as the
// integer enum value.
type ConsignmentDTO struct {
	CN                string          `gorm:"column:cn_number;type:varchar(32);primaryKey"`
	OriginCityID      string          `gorm:"type:varchar(64);not null"`
	DestinationCityID string          `gorm:"type:varchar(64);not null"`
	ServiceID         string          `gorm:"type:varchar(64);not null"`
	Weight            decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	Pieces            int             `gorm:"type:int;not null"`
	PaymentMode       string          `gorm:"type:varchar(16);not null"`
	TotalAmount       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CODAmount         decimal.Decimal `gorm:"column:cod_amount;type:numeric(14,2);not null"`
	Status            int             `gorm:"type:smallint;not null;index"`
	ArrivalScanID     *uuid.UUID      `gorm:"type:uuid;index"`
	ManifestID        *uuid.UUID      `gorm:"type:uuid;index"`
	DeliverySheetID   *uuid.UUID      `gorm:"type:uuid;index"`
	UpdatedAt         time.Time       `gorm:"not null"`
	History           []HistoryDTO    `gorm:"foreignKey:CN;references:CN;constraint:OnDelete:CASCADE"`
}

func (ConsignmentDTO) TableName() string {
	return "consignments"
}

// HistoryDTO is one immutable history line. Seq orders entries of one CN.
type HistoryDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	CN         string    `gorm:"column:cn_number;type:varchar(32);not null;uniqueIndex:idx_history_cn_seq"`
	Seq        int       `gorm:"type:int;not null;uniqueIndex:idx_history_cn_seq"`
	Kind       int       `gorm:"type:smallint;not null"`
	FromStatus int       `gorm:"type:smallint;not null"`
	ToStatus   int       `gorm:"type:smallint;not null"`
	Actor      string    `gorm:"type:varchar(128);not null"`
	Note       string    `gorm:"type:text"`
	At         time.Time `gorm:"not null"`
}

func (HistoryDTO) TableName() string {
	return "consignment_history"
}

func fromDomain(c *consignment.Consignment, at time.Time) ConsignmentDTO {
	d := c.Details()
	return ConsignmentDTO{
		CN:                c.CN(),
		OriginCityID:      d.OriginCityID,
		DestinationCityID: d.DestinationCityID,
		ServiceID:         d.ServiceID,
		Weight:            d.Weight,
		Pieces:            d.Pieces,
		PaymentMode:       string(d.PaymentMode),
		TotalAmount:       d.TotalAmount,
		CODAmount:         d.CODAmount,
		Status:            int(c.Status()),
		ArrivalScanID:     holder(c, consignment.PhaseArrival),
		ManifestID:        holder(c, consignment.PhaseManifest),
		DeliverySheetID:   holder(c, consignment.PhaseDelivery),
		UpdatedAt:         at,
	}
}

// pendingHistory maps the entries not yet stored. Seq continues after the
// persisted ones.
func pendingHistory(c *consignment.Consignment) []HistoryDTO {
	pending := c.UncommittedHistory()
	first := len(c.History()) - len(pending)

	rows := make([]HistoryDTO, 0, len(pending))
	for i, e := range pending {
		rows = append(rows, HistoryDTO{
			CN:         c.CN(),
			Seq:        first + i + 1,
			Kind:       int(e.Kind),
			FromStatus: int(e.From),
			ToStatus:   int(e.To),
			Actor:      e.Actor,
			Note:       e.Note,
			At:         e.At,
		})
	}
	return rows
}

func holder(c *consignment.Consignment, phase consignment.Phase) *uuid.UUID {
	id, ok := c.HeldBy(phase)
	if !ok {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

// toDomain expects History preloaded in seq order.
func toDomain(dto ConsignmentDTO) (*consignment.Consignment, error) {
	entries := make([]consignment.HistoryEntry, 0, len(dto.History))
	for _, h := range dto.History {
		entries = append(entries, consignment.HistoryEntry{
			Kind:  consignment.EntryKind(h.Kind),
			From:  consignment.Status(h.FromStatus),
			To:    consignment.Status(h.ToStatus),
			Actor: h.Actor,
			At:    h.At,
			Note:  h.Note,
		})
	}

	holders := make(map[consignment.Phase]kernel.UUID, 3)
	for phase, raw := range map[consignment.Phase]*uuid.UUID{
		consignment.PhaseArrival:  dto.ArrivalScanID,
		consignment.PhaseManifest: dto.ManifestID,
		consignment.PhaseDelivery: dto.DeliverySheetID,
	} {
		if raw == nil {
			continue
		}
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		holders[phase] = id
	}

	return consignment.RestoreConsignment(
		dto.CN,
		consignment.Details{
			OriginCityID:      dto.OriginCityID,
			DestinationCityID: dto.DestinationCityID,
			ServiceID:         dto.ServiceID,
			Weight:            dto.Weight,
			Pieces:            dto.Pieces,
			PaymentMode:       consignment.PaymentMode(dto.PaymentMode),
			TotalAmount:       dto.TotalAmount,
			CODAmount:         dto.CODAmount,
		},
		consignment.Status(dto.Status),
		entries,
		holders,
	)
}
