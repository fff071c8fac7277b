package queries

import (
	"errors"
	"strings"
	"time"

	"hubops/internal/pkg/errs"
	"hubops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetConsignmentQueryIsNotConstructed = errors.New(
	"GetConsignmentQuery must be created via NewGetConsignmentQuery constructor",
)

// GetConsignmentQuery reads one consignment with its complete history.
type GetConsignmentQuery struct {
	cn string

	guard guard.ConstructorGuard
}

func NewGetConsignmentQuery(cn string) (GetConsignmentQuery, error) {
	cn = strings.TrimSpace(cn)
	if cn == "" {
		return GetConsignmentQuery{}, errs.NewValueIsRequiredError("cn")
	}
	return GetConsignmentQuery{cn: cn, guard: guard.NewConstructorGuard()}, nil
}

func (q GetConsignmentQuery) CN() string {
	return q.cn
}

func (q GetConsignmentQuery) Validate() error {
	return q.guard.Validate(ErrGetConsignmentQueryIsNotConstructed)
}

// GetConsignmentQueryResponse is the read model of a consignment. Statuses
// are rendered by name; holder ids are empty when no OPEN document holds
// the consignment in that phase.
type GetConsignmentQueryResponse struct {
	CN                string
	OriginCityID      string
	DestinationCityID string
	ServiceID         string
	Weight            decimal.Decimal
	Pieces            int
	PaymentMode       string
	TotalAmount       decimal.Decimal
	CODAmount         decimal.Decimal
	Status            string
	ArrivalScanID     string
	ManifestID        string
	DeliverySheetID   string
	UpdatedAt         time.Time
	History           []HistoryItem
}

type HistoryItem struct {
	Kind  string
	From  string
	To    string
	Actor string
	Note  string
	At    time.Time
}
