package pricing_test

import (
	"testing"
	"time"

	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/core/domain/model/pricing"
	"hubops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func band(t *testing.T, from, to string) kernel.WeightBand {
	t.Helper()
	b, err := kernel.NewWeightBand(decimal.RequireFromString(from), decimal.RequireFromString(to))
	require.NoError(t, err)
	return b
}

func TestKey(t *testing.T) {
	k, err := pricing.NewKey(" LHR ", "KHI", "svc1", band(t, "0", "0.5"))
	require.NoError(t, err)

	assert.Equal(t, "LHR", k.OriginCityID)
	assert.False(t, k.IsSelfRoute())
	assert.Equal(t, "LHR->KHI/svc1[0,0.5]", k.String())

	mirror := k.Mirror()
	assert.Equal(t, "KHI", mirror.OriginCityID)
	assert.Equal(t, "LHR", mirror.DestinationCityID)
	assert.True(t, mirror.Mirror().IsEqual(k))

	t.Run("pair is in canonical order from either side", func(t *testing.T) {
		assert.Equal(t, k.Pair(), mirror.Pair())
		assert.Equal(t, "KHI", k.Pair()[0].OriginCityID)
	})

	t.Run("self route has no mirror in its pair", func(t *testing.T) {
		self, err := pricing.NewKey("LHR", "LHR", "svc1", band(t, "0", "0.5"))
		require.NoError(t, err)
		assert.True(t, self.IsSelfRoute())
		assert.Len(t, self.Pair(), 1)
	})

	t.Run("missing fields are reported together", func(t *testing.T) {
		_, err := pricing.NewKey("", "", "", kernel.WeightBand{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "originCityId")
		assert.Contains(t, err.Error(), "serviceId")
		assert.Contains(t, err.Error(), "weight band")
	})
}

func TestRule(t *testing.T) {
	k, err := pricing.NewKey("LHR", "KHI", "svc1", band(t, "0", "0.5"))
	require.NoError(t, err)
	rates := pricing.Rates{BaseRate: decimal.NewFromInt(200), AdditionalCharges: decimal.RequireFromString("15.50")}
	now := time.Now()

	rule, err := pricing.NewRule(k, rates, now)
	require.NoError(t, err)
	require.NoError(t, rule.Validate())

	mirror, ok := rule.Mirror()
	require.True(t, ok)
	assert.True(t, rule.IsSymmetricWith(mirror))
	assert.True(t, mirror.IsSymmetricWith(rule))

	other, err := pricing.NewRule(k.Mirror(), pricing.Rates{BaseRate: decimal.RequireFromString("200.00"),
		AdditionalCharges: decimal.RequireFromString("15.5")}, now)
	require.NoError(t, err)
	assert.True(t, rule.IsSymmetricWith(other), "rates compare by value")

	diverged, err := pricing.NewRule(k.Mirror(), pricing.Rates{BaseRate: decimal.NewFromInt(250)}, now)
	require.NoError(t, err)
	assert.False(t, rule.IsSymmetricWith(diverged))

	_, err = pricing.NewRule(k, pricing.Rates{BaseRate: decimal.NewFromInt(-1)}, now)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	self, err := pricing.NewKey("LHR", "LHR", "svc1", band(t, "0", "0.5"))
	require.NoError(t, err)
	selfRule, err := pricing.NewRule(self, rates, now)
	require.NoError(t, err)
	_, ok = selfRule.Mirror()
	assert.False(t, ok)
}

func TestRates_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		base, add string
		wantErr   bool
	}{
		{name: "whole amount", base: "200", add: "0"},
		{name: "two decimal places", base: "199.99", add: "15.50"},
		{name: "trailing zeros", base: "200.0000", add: "15.500"},
		{name: "base rate with three decimals", base: "199.999", add: "0", wantErr: true},
		{name: "charges with three decimals", base: "200", add: "0.005", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := pricing.Rates{
				BaseRate:          decimal.RequireFromString(tc.base),
				AdditionalCharges: decimal.RequireFromString(tc.add),
			}.Validate()
			if tc.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
		})
	}
}
