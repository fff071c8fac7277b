package commands_test

import (
	"testing"
	"time"

	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/core/domain/model/hubdoc"
	"hubops/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func testDetails() consignment.Details {
	return consignment.Details{
		OriginCityID:      "LHR",
		DestinationCityID: "KHI",
		ServiceID:         "overnight",
		Weight:            decimal.RequireFromString("1.5"),
		Pieces:            1,
		PaymentMode:       consignment.PaymentCash,
		TotalAmount:       decimal.NewFromInt(450),
		CODAmount:         decimal.Zero,
	}
}

// newConsignment builds a consignment and walks it forward to status.
func newConsignment(t *testing.T, cn string, status consignment.Status) *consignment.Consignment {
	t.Helper()

	c, err := consignment.NewConsignment(cn, testDetails(), "booking", fixtureTime)
	require.NoError(t, err)

	path := map[consignment.Status][]consignment.Status{
		consignment.Pending:        nil,
		consignment.Booked:         {consignment.Booked},
		consignment.AtHub:          {consignment.AtHub},
		consignment.InTransit:      {consignment.AtHub, consignment.InTransit},
		consignment.OutForDelivery: {consignment.AtHub, consignment.OutForDelivery},
	}
	steps, ok := path[status]
	require.True(t, ok, "no fixture path to %s", status)
	for _, next := range steps {
		require.NoError(t, c.TransitionTo(next, "fixture", "", fixtureTime))
	}
	c.MarkCommitted()
	return c
}

func newDocument(t *testing.T, kind hubdoc.Kind, code string) *hubdoc.Document {
	t.Helper()

	doc, err := hubdoc.NewDocument(kernel.NewUUID(), code, kind, hubdoc.Attributes{StationCode: "LHE"}, fixtureTime)
	require.NoError(t, err)
	return doc
}
