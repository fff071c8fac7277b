package kernel_test

import (
	"testing"

	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeightBand(t *testing.T) {
	testCases := []struct {
		name      string
		from, to  string
		wantErrIs error
	}{
		{name: "half kilo band", from: "0", to: "0.5"},
		{name: "heavy band", from: "10.5", to: "25"},
		{name: "negative lower bound", from: "-1", to: "2", wantErrIs: errs.ErrValueIsOutOfRange},
		{name: "empty band", from: "1", to: "1", wantErrIs: errs.ErrValueIsInvalid},
		{name: "inverted band", from: "3", to: "1", wantErrIs: errs.ErrValueIsInvalid},
		{name: "gram precision", from: "0.001", to: "0.500"},
		{name: "trailing zeros beyond grams", from: "1.0000", to: "2.50000"},
		{name: "upper bound below a gram", from: "0", to: "0.0004", wantErrIs: errs.ErrValueIsInvalid},
		{name: "lower bound below a gram", from: "0.0001", to: "1", wantErrIs: errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			band, err := kernel.NewWeightBand(decimal.RequireFromString(tc.from), decimal.RequireFromString(tc.to))
			if tc.wantErrIs != nil {
				require.ErrorIs(t, err, tc.wantErrIs)
				return
			}
			require.NoError(t, err)
			require.NoError(t, band.Validate())
			assert.True(t, band.From().Equal(decimal.RequireFromString(tc.from)))
			assert.True(t, band.To().Equal(decimal.RequireFromString(tc.to)))
		})
	}
}

func TestWeightBand_Contains(t *testing.T) {
	band, err := kernel.NewWeightBand(decimal.Zero, decimal.RequireFromString("0.5"))
	require.NoError(t, err)

	assert.True(t, band.Contains(decimal.Zero))
	assert.True(t, band.Contains(decimal.RequireFromString("0.25")))
	assert.True(t, band.Contains(decimal.RequireFromString("0.5")))
	assert.False(t, band.Contains(decimal.RequireFromString("0.51")))
	assert.Equal(t, "[0,0.5]", band.String())
}

func TestWeightBand_IsEqual(t *testing.T) {
	a, err := kernel.NewWeightBand(decimal.Zero, decimal.RequireFromString("0.50"))
	require.NoError(t, err)
	b, err := kernel.NewWeightBand(decimal.Zero, decimal.RequireFromString("0.5"))
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
}

func TestWeightBand_ZeroValue(t *testing.T) {
	var band kernel.WeightBand

	require.ErrorIs(t, band.Validate(), kernel.ErrWeightBandIsNotConstructed)
}
