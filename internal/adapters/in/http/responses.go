package http

import (
	"time"

	"hubops/internal/core/application/usecases/queries"
	"hubops/internal/core/domain/model/batch"
	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/core/domain/model/hubdoc"
	"hubops/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

type AllocatedCode struct {
	Code string `json:"code"`
}

type Batch struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	StationCode string     `json:"stationCode"`
	StaffCode   string     `json:"staffCode"`
	RouteCode   string     `json:"routeCode"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	ClosedAt    *time.Time `json:"closedAt"`
}

type HistoryEntry struct {
	Kind  string    `json:"kind"`
	From  string    `json:"from"`
	To    string    `json:"to"`
	Actor string    `json:"actor"`
	Note  string    `json:"note,omitempty"`
	At    time.Time `json:"at"`
}

type Consignment struct {
	CN                string          `json:"cnNumber"`
	OriginCityID      string          `json:"originCityId"`
	DestinationCityID string          `json:"destinationCityId"`
	ServiceID         string          `json:"serviceId"`
	Weight            decimal.Decimal `json:"weight"`
	Pieces            int             `json:"pieces"`
	PaymentMode       string          `json:"paymentMode"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	CODAmount         decimal.Decimal `json:"codAmount"`
	Status            string          `json:"status"`
	ArrivalScanID     string          `json:"arrivalScanId,omitempty"`
	ManifestID        string          `json:"manifestId,omitempty"`
	DeliverySheetID   string          `json:"deliverySheetId,omitempty"`
	History           []HistoryEntry  `json:"history"`
}

type Member struct {
	ID         string     `json:"id"`
	CN         string     `json:"cnNumber"`
	Status     string     `json:"status"`
	ScannedAt  time.Time  `json:"scannedAt"`
	ResolvedAt *time.Time `json:"resolvedAt"`
}

type Document struct {
	ID            string     `json:"id"`
	Code          string     `json:"code"`
	Kind          string     `json:"kind"`
	Status        string     `json:"status"`
	StationCode   string     `json:"stationCode,omitempty"`
	BatchCode     string     `json:"batchCode,omitempty"`
	RiderCode     string     `json:"riderCode,omitempty"`
	DriverCode    string     `json:"driverCode,omitempty"`
	VehicleNumber string     `json:"vehicleNumber,omitempty"`
	RouteCode     string     `json:"routeCode,omitempty"`
	Remarks       string     `json:"remarks,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt"`
	Members       []Member   `json:"members"`
}

type DocumentSummary struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
	Members     int        `json:"members"`
	Unresolved  int        `json:"unresolved"`
}

type PricingRule struct {
	OriginCityID      string          `json:"originCityId"`
	DestinationCityID string          `json:"destinationCityId"`
	ServiceID         string          `json:"serviceId"`
	WeightFrom        decimal.Decimal `json:"weightFrom"`
	WeightTo          decimal.Decimal `json:"weightTo"`
	BaseRate          decimal.Decimal `json:"baseRate"`
	AdditionalCharges decimal.Decimal `json:"additionalCharges"`
}

func batchFromDomain(b *batch.Batch) Batch {
	scope := b.Scope()
	return Batch{
		ID:          b.ID().String(),
		Code:        b.Code(),
		StationCode: scope.StationCode,
		StaffCode:   scope.StaffCode,
		RouteCode:   scope.RouteCode,
		Status:      b.Status().String(),
		CreatedAt:   b.CreatedAt(),
		ClosedAt:    b.ClosedAt(),
	}
}

func batchFromQuery(r queries.GetActiveBatchQueryResponse) Batch {
	return Batch{
		ID:          r.ID.String(),
		Code:        r.Code,
		StationCode: r.StationCode,
		StaffCode:   r.StaffCode,
		RouteCode:   r.RouteCode,
		Status:      batch.Active.String(),
		CreatedAt:   r.CreatedAt,
	}
}

func consignmentFromDomain(c *consignment.Consignment) Consignment {
	d := c.Details()
	resp := Consignment{
		CN:                c.CN(),
		OriginCityID:      d.OriginCityID,
		DestinationCityID: d.DestinationCityID,
		ServiceID:         d.ServiceID,
		Weight:            d.Weight,
		Pieces:            d.Pieces,
		PaymentMode:       string(d.PaymentMode),
		TotalAmount:       d.TotalAmount,
		CODAmount:         d.CODAmount,
		Status:            c.Status().String(),
		ArrivalScanID:     holder(c, consignment.PhaseArrival),
		ManifestID:        holder(c, consignment.PhaseManifest),
		DeliverySheetID:   holder(c, consignment.PhaseDelivery),
		History:           make([]HistoryEntry, 0, len(c.History())),
	}
	for _, e := range c.History() {
		resp.History = append(resp.History, HistoryEntry{
			Kind:  e.Kind.String(),
			From:  e.From.String(),
			To:    e.To.String(),
			Actor: e.Actor,
			Note:  e.Note,
			At:    e.At,
		})
	}
	return resp
}

func holder(c *consignment.Consignment, phase consignment.Phase) string {
	if id, ok := c.HeldBy(phase); ok {
		return id.String()
	}
	return ""
}

func consignmentFromQuery(r queries.GetConsignmentQueryResponse) Consignment {
	resp := Consignment{
		CN:                r.CN,
		OriginCityID:      r.OriginCityID,
		DestinationCityID: r.DestinationCityID,
		ServiceID:         r.ServiceID,
		Weight:            r.Weight,
		Pieces:            r.Pieces,
		PaymentMode:       r.PaymentMode,
		TotalAmount:       r.TotalAmount,
		CODAmount:         r.CODAmount,
		Status:            r.Status,
		ArrivalScanID:     r.ArrivalScanID,
		ManifestID:        r.ManifestID,
		DeliverySheetID:   r.DeliverySheetID,
		History:           make([]HistoryEntry, 0, len(r.History)),
	}
	for _, h := range r.History {
		resp.History = append(resp.History, HistoryEntry(h))
	}
	return resp
}

func documentFromDomain(doc *hubdoc.Document) Document {
	attrs := doc.Attributes()
	resp := Document{
		ID:            doc.ID().String(),
		Code:          doc.Code(),
		Kind:          doc.Kind().String(),
		Status:        doc.Status().String(),
		StationCode:   attrs.StationCode,
		BatchCode:     attrs.BatchCode,
		RiderCode:     attrs.RiderCode,
		DriverCode:    attrs.DriverCode,
		VehicleNumber: attrs.VehicleNumber,
		RouteCode:     attrs.RouteCode,
		Remarks:       attrs.Remarks,
		CreatedAt:     doc.CreatedAt(),
		CompletedAt:   doc.CompletedAt(),
		Members:       make([]Member, 0, len(doc.Members())),
	}
	for _, m := range doc.Members() {
		resp.Members = append(resp.Members, Member{
			ID:         m.ID().String(),
			CN:         m.CN(),
			Status:     m.Status().String(),
			ScannedAt:  m.ScannedAt(),
			ResolvedAt: m.ResolvedAt(),
		})
	}
	return resp
}

func documentFromQuery(r queries.GetDocumentQueryResponse) Document {
	resp := Document{
		ID:            r.ID.String(),
		Code:          r.Code,
		Kind:          r.Kind,
		Status:        r.Status,
		StationCode:   r.StationCode,
		BatchCode:     r.BatchCode,
		RiderCode:     r.RiderCode,
		DriverCode:    r.DriverCode,
		VehicleNumber: r.VehicleNumber,
		RouteCode:     r.RouteCode,
		Remarks:       r.Remarks,
		CreatedAt:     r.CreatedAt,
		CompletedAt:   r.CompletedAt,
		Members:       make([]Member, 0, len(r.Members)),
	}
	for _, m := range r.Members {
		resp.Members = append(resp.Members, Member{
			ID:         m.ID.String(),
			CN:         m.CN,
			Status:     m.Status,
			ScannedAt:  m.ScannedAt,
			ResolvedAt: m.ResolvedAt,
		})
	}
	return resp
}

func pricingRuleFromDomain(rule *pricing.Rule) PricingRule {
	key := rule.Key()
	return PricingRule{
		OriginCityID:      key.OriginCityID,
		DestinationCityID: key.DestinationCityID,
		ServiceID:         key.ServiceID,
		WeightFrom:        key.Band.From(),
		WeightTo:          key.Band.To(),
		BaseRate:          rule.Rates().BaseRate,
		AdditionalCharges: rule.Rates().AdditionalCharges,
	}
}
