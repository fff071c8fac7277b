// Package documentrepo persists arrival scan sheets, manifests and delivery
// sheets in one table, with their members in a join table.
package documentrepo

import (
	"time"

	"hubops/internal/core/domain/model/hubdoc"
	"hubops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DocumentDTO struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Code          string      `gorm:"type:varchar(32);not null;uniqueIndex"`
	Kind          int         `gorm:"type:smallint;not null;index:idx_documents_kind_created"`
	Status        int         `gorm:"type:smallint;not null"`
	StationCode   string      `gorm:"type:varchar(32)"`
	BatchCode     string      `gorm:"type:varchar(32)"`
	RiderCode     string      `gorm:"type:varchar(64)"`
	DriverCode    string      `gorm:"type:varchar(64)"`
	VehicleNumber string      `gorm:"type:varchar(32)"`
	RouteCode     string      `gorm:"type:varchar(32)"`
	Remarks       string      `gorm:"type:text"`
	CreatedAt     time.Time   `gorm:"not null;index:idx_documents_kind_created"`
	CompletedAt   *time.Time  `gorm:""`
	Members       []MemberDTO `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
}

func (DocumentDTO) TableName() string {
	return "documents"
}

// MemberDTO is a document membership. (document_id, cn_number) is unique so
// concurrent scans of one CN into one document cannot both land.
type MemberDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DocumentID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_members_document_cn"`
	CN         string     `gorm:"column:cn_number;type:varchar(32);not null;uniqueIndex:idx_members_document_cn;index"`
	Status     int        `gorm:"type:smallint;not null"`
	ScannedAt  time.Time  `gorm:"not null"`
	ResolvedAt *time.Time `gorm:""`
}

func (MemberDTO) TableName() string {
	return "document_members"
}

func fromDomain(doc *hubdoc.Document) DocumentDTO {
	docID := doc.ID().Bytes()
	attrs := doc.Attributes()

	members := make([]MemberDTO, 0, len(doc.Members()))
	for _, m := range doc.Members() {
		members = append(members, MemberDTO{
			ID:         m.ID().Bytes(),
			DocumentID: docID,
			CN:         m.CN(),
			Status:     int(m.Status()),
			ScannedAt:  m.ScannedAt(),
			ResolvedAt: m.ResolvedAt(),
		})
	}

	return DocumentDTO{
		ID:            docID,
		Code:          doc.Code(),
		Kind:          int(doc.Kind()),
		Status:        int(doc.Status()),
		StationCode:   attrs.StationCode,
		BatchCode:     attrs.BatchCode,
		RiderCode:     attrs.RiderCode,
		DriverCode:    attrs.DriverCode,
		VehicleNumber: attrs.VehicleNumber,
		RouteCode:     attrs.RouteCode,
		Remarks:       attrs.Remarks,
		CreatedAt:     doc.CreatedAt(),
		CompletedAt:   doc.CompletedAt(),
		Members:       members,
	}
}

func toDomain(dto DocumentDTO) (*hubdoc.Document, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	members := make([]*hubdoc.Member, 0, len(dto.Members))
	for _, m := range dto.Members {
		member, memberErr := memberToDomain(m)
		if memberErr != nil {
			return nil, memberErr
		}
		members = append(members, member)
	}

	return hubdoc.RestoreDocument(
		id,
		dto.Code,
		hubdoc.Kind(dto.Kind),
		hubdoc.Status(dto.Status),
		hubdoc.Attributes{
			StationCode:   dto.StationCode,
			BatchCode:     dto.BatchCode,
			RiderCode:     dto.RiderCode,
			DriverCode:    dto.DriverCode,
			VehicleNumber: dto.VehicleNumber,
			RouteCode:     dto.RouteCode,
			Remarks:       dto.Remarks,
		},
		dto.CreatedAt,
		dto.CompletedAt,
		members,
	)
}

func memberToDomain(dto MemberDTO) (*hubdoc.Member, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return hubdoc.RestoreMember(id, dto.CN, hubdoc.MemberStatus(dto.Status), dto.ScannedAt, dto.ResolvedAt)
}
