package consignment_test

import (
	"testing"
	"time"

	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func validDetails() consignment.Details {
	return consignment.Details{
		OriginCityID:      "LHE",
		DestinationCityID: "KHI",
		ServiceID:         "OVERNIGHT",
		Weight:            decimal.RequireFromString("1.25"),
		Pieces:            2,
		PaymentMode:       consignment.PaymentCOD,
		TotalAmount:       decimal.NewFromInt(450),
		CODAmount:         decimal.NewFromInt(3200),
	}
}

func newConsignment(t *testing.T) *consignment.Consignment {
	t.Helper()
	c, err := consignment.NewConsignment("CN25000123", validDetails(), "booking", testNow)
	require.NoError(t, err)
	return c
}

func TestNewConsignment(t *testing.T) {
	t.Run("starts pending with registration annotation", func(t *testing.T) {
		c := newConsignment(t)

		require.NoError(t, c.Validate())
		assert.Equal(t, "CN25000123", c.CN())
		assert.Equal(t, consignment.Pending, c.Status())
		require.Len(t, c.History(), 1)
		assert.Equal(t, consignment.AnnotationEntry, c.History()[0].Kind)
		assert.Len(t, c.UncommittedHistory(), 1)
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		details := validDetails()
		details.OriginCityID = ""
		details.Weight = decimal.Zero
		details.Pieces = 0
		details.PaymentMode = "BARTER"

		_, err := consignment.NewConsignment("", details, "booking", testNow)

		require.Error(t, err)
		for _, fragment := range []string{"cn", "originCityId", "weight", "pieces", "paymentMode"} {
			assert.Contains(t, err.Error(), fragment)
		}
	})

	t.Run("rejects cod amount on prepaid shipments", func(t *testing.T) {
		details := validDetails()
		details.PaymentMode = consignment.PaymentCash

		_, err := consignment.NewConsignment("CN1", details, "booking", testNow)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "codAmount")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var c consignment.Consignment
		require.ErrorIs(t, c.Validate(), consignment.ErrConsignmentIsNotConstructed)

		var nilC *consignment.Consignment
		require.ErrorIs(t, nilC.Validate(), consignment.ErrConsignmentIsNotConstructed)
	})
}

func TestConsignment_TransitionTo(t *testing.T) {
	t.Run("full forward lifecycle logs one entry per step", func(t *testing.T) {
		c := newConsignment(t)
		steps := []consignment.Status{
			consignment.Booked,
			consignment.PickupRequested,
			consignment.RiderOnWay,
			consignment.AtHub,
			consignment.InTransit,
			consignment.OutForDelivery,
			consignment.Delivered,
		}

		for i, step := range steps {
			require.NoError(t, c.TransitionTo(step, "ops", "", testNow.Add(time.Duration(i)*time.Minute)))
		}

		history := c.History()
		require.Len(t, history, len(steps)+1)
		previous := consignment.Pending
		for i, step := range steps {
			entry := history[i+1]
			assert.Equal(t, consignment.TransitionEntry, entry.Kind)
			assert.Equal(t, previous, entry.From)
			assert.Equal(t, step, entry.To)
			assert.Equal(t, "ops", entry.Actor)
			previous = step
		}
	})

	t.Run("backward move is rejected and not logged", func(t *testing.T) {
		c := newConsignment(t)
		require.NoError(t, c.TransitionTo(consignment.AtHub, "ops", "", testNow))

		err := c.TransitionTo(consignment.Booked, "ops", "", testNow)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, consignment.AtHub, c.Status())
		assert.Len(t, c.History(), 2)
	})

	t.Run("voided cannot be reached through TransitionTo", func(t *testing.T) {
		c := newConsignment(t)

		err := c.TransitionTo(consignment.Voided, "ops", "", testNow)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, consignment.Pending, c.Status())
	})
}

func TestConsignment_Void(t *testing.T) {
	t.Run("requires a reason", func(t *testing.T) {
		c := newConsignment(t)

		err := c.Void("   ", "ops", testNow)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, consignment.Pending, c.Status())
	})

	t.Run("pre hub consignment is voided with reason logged", func(t *testing.T) {
		c := newConsignment(t)
		require.NoError(t, c.TransitionTo(consignment.Booked, "ops", "", testNow))

		require.NoError(t, c.Void("duplicate booking", "supervisor", testNow))

		assert.Equal(t, consignment.Voided, c.Status())
		last := c.History()[len(c.History())-1]
		assert.Equal(t, consignment.Booked, last.From)
		assert.Equal(t, consignment.Voided, last.To)
		assert.Equal(t, "duplicate booking", last.Note)
	})

	t.Run("at hub consignment cannot be voided", func(t *testing.T) {
		c := newConsignment(t)
		require.NoError(t, c.TransitionTo(consignment.AtHub, "ops", "", testNow))

		err := c.Void("lost", "ops", testNow)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("voided is absorbing", func(t *testing.T) {
		c := newConsignment(t)
		require.NoError(t, c.Void("customer cancelled", "ops", testNow))

		require.ErrorIs(t, c.TransitionTo(consignment.AtHub, "ops", "", testNow), errs.ErrInvalidTransition)
		require.ErrorIs(t, c.Void("again", "ops", testNow), errs.ErrInvalidTransition)
	})
}

func TestConsignment_Override(t *testing.T) {
	c := newConsignment(t)
	require.NoError(t, c.TransitionTo(consignment.AtHub, "ops", "", testNow))
	require.NoError(t, c.TransitionTo(consignment.InTransit, "ops", "", testNow))

	require.ErrorIs(t, c.Override(consignment.AtHub, "", "admin", testNow), errs.ErrValueIsRequired)
	require.ErrorIs(t, c.Override(consignment.InTransit, "noop", "admin", testNow), errs.ErrInvalidTransition)

	require.NoError(t, c.Override(consignment.AtHub, "wrong manifest scanned", "admin", testNow))

	assert.Equal(t, consignment.AtHub, c.Status())
	last := c.History()[len(c.History())-1]
	assert.Equal(t, consignment.OverrideEntry, last.Kind)
	assert.Equal(t, consignment.InTransit, last.From)
	assert.Equal(t, "admin", last.Actor)
}

func TestConsignment_Holders(t *testing.T) {
	c := newConsignment(t)
	docID := kernel.NewUUID()

	_, held := c.HeldBy(consignment.PhaseManifest)
	assert.False(t, held)

	require.NoError(t, c.Attach(consignment.PhaseManifest, docID))
	holder, held := c.HeldBy(consignment.PhaseManifest)
	require.True(t, held)
	assert.True(t, holder.IsEqual(docID))

	c.Detach(consignment.PhaseManifest, kernel.NewUUID())
	_, held = c.HeldBy(consignment.PhaseManifest)
	assert.True(t, held, "detaching another document keeps the holder")

	c.Detach(consignment.PhaseManifest, docID)
	_, held = c.HeldBy(consignment.PhaseManifest)
	assert.False(t, held)

	require.Error(t, c.Attach(consignment.PhaseArrival, kernel.UUID{}))
}

func TestConsignment_HistoryCommitTracking(t *testing.T) {
	c := newConsignment(t)
	c.MarkCommitted()
	assert.Empty(t, c.UncommittedHistory())

	c.Annotate("short on MF2501", "system", testNow)

	pending := c.UncommittedHistory()
	require.Len(t, pending, 1)
	assert.Equal(t, consignment.AnnotationEntry, pending[0].Kind)
	assert.Equal(t, consignment.Pending, pending[0].From)
	assert.Equal(t, consignment.Pending, pending[0].To)
}

func TestRestoreConsignment(t *testing.T) {
	docID := kernel.NewUUID()
	history := []consignment.HistoryEntry{
		{Kind: consignment.AnnotationEntry, From: consignment.Pending, To: consignment.Pending, Actor: "booking", At: testNow},
		{Kind: consignment.TransitionEntry, From: consignment.Pending, To: consignment.AtHub, Actor: "ops", At: testNow},
	}

	c, err := consignment.RestoreConsignment("CN9", validDetails(), consignment.AtHub, history,
		map[consignment.Phase]kernel.UUID{consignment.PhaseArrival: docID})

	require.NoError(t, err)
	assert.Equal(t, consignment.AtHub, c.Status())
	assert.Len(t, c.History(), 2)
	assert.Empty(t, c.UncommittedHistory())
	holder, ok := c.HeldBy(consignment.PhaseArrival)
	require.True(t, ok)
	assert.True(t, holder.IsEqual(docID))

	_, err = consignment.RestoreConsignment("CN9", validDetails(), consignment.Unknown, nil, nil)
	require.Error(t, err)
}

func TestConsignment_Advance(t *testing.T) {
	c := newConsignment(t)

	require.NoError(t, c.Advance(consignment.Booked, "booking", "", testNow))
	require.NoError(t, c.Advance(consignment.PickupRequested, "booking", "", testNow))
	require.NoError(t, c.Advance(consignment.RiderOnWay, "rider-app", "", testNow))

	err := c.Advance(consignment.AtHub, "ops", "", testNow)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "hub documents")
	assert.Equal(t, consignment.RiderOnWay, c.Status())

	require.ErrorIs(t, c.Advance(consignment.Booked, "ops", "", testNow), errs.ErrInvalidTransition)
}
