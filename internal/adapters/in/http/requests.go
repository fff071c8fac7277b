package http

import (
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type AllocateRequest struct {
	ScopeKey string `json:"scopeKey"`
}

type OpenBatchRequest struct {
	StationCode string `json:"stationCode"`
	StaffCode   string `json:"staffCode" validate:"required"`
	RouteCode   string `json:"routeCode"`
}

type RegisterConsignmentRequest struct {
	CN                string          `json:"cnNumber"`
	StationCode       string          `json:"stationCode"`
	OriginCityID      string          `json:"originCityId" validate:"required"`
	DestinationCityID string          `json:"destinationCityId" validate:"required"`
	ServiceID         string          `json:"serviceId" validate:"required"`
	Weight            decimal.Decimal `json:"weight"`
	Pieces            int             `json:"pieces" validate:"gte=1"`
	PaymentMode       string          `json:"paymentMode" validate:"required,oneof=CASH CREDIT COD TO_PAY"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	CODAmount         decimal.Decimal `json:"codAmount"`
	Actor             string          `json:"actor"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
	Actor  string `json:"actor"`
	Note   string `json:"note"`
}

type VoidRequest struct {
	Reason string `json:"reason" validate:"required"`
	Actor  string `json:"actor"`
}

type OverrideRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason" validate:"required"`
	Actor  string `json:"actor"`
}

type CreateDocumentRequest struct {
	StationCode   string `json:"stationCode"`
	BatchCode     string `json:"batchCode"`
	RiderCode     string `json:"riderCode"`
	DriverCode    string `json:"driverCode"`
	VehicleNumber string `json:"vehicleNumber"`
	RouteCode     string `json:"routeCode"`
	Remarks       string `json:"remarks"`
}

type AddMemberRequest struct {
	CN    string `json:"cnNumber" validate:"required"`
	Actor string `json:"actor"`
}

type ResolveMemberRequest struct {
	Outcome string `json:"outcome" validate:"required"`
	Actor   string `json:"actor"`
}

type CompleteRequest struct {
	Actor string `json:"actor"`
}

type PricingRuleRequest struct {
	OriginCityID      string          `json:"originCityId" validate:"required"`
	DestinationCityID string          `json:"destinationCityId" validate:"required"`
	ServiceID         string          `json:"serviceId" validate:"required"`
	WeightFrom        decimal.Decimal `json:"weightFrom"`
	WeightTo          decimal.Decimal `json:"weightTo"`
	BaseRate          decimal.Decimal `json:"baseRate"`
	AdditionalCharges decimal.Decimal `json:"additionalCharges"`
}

// bindBody decodes the JSON body into req and runs struct validation. An
// empty body leaves req at its zero value.
func bindBody(ctx echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindBody(ctx, req); err != nil {
		return err
	}
	return ctx.Validate(req)
}
