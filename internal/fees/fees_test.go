package fees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeJoiningFeeBoundaries(t *testing.T) {
	cases := []struct {
		price int64
		fee   int64
	}{
		{1, 1_000},
		{500_000, 1_000},
		{1_000_000, 1_000},
		{1_000_001, 2_000},
		{1_050_000, 2_000},
		{2_000_000, 2_000},
		{2_000_001, 3_000},
		{3_000_000, 3_000},
		{3_000_001, 5_000},
		{25_000_000, 5_000},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.fee, ComputeJoiningFee(tc.price), "price %d", tc.price)
	}
}

func TestFeeIsMonotonic(t *testing.T) {
	var prev int64
	for price := int64(1); price <= 4_000_000; price += 12_345 {
		fee := ComputeJoiningFee(price)
		require.GreaterOrEqual(t, fee, prev, "price %d", price)
		prev = fee
	}
}

func TestFeePanicsOnNonPositivePrice(t *testing.T) {
	assert.Panics(t, func() { ComputeJoiningFee(0) })
	assert.Panics(t, func() { ComputeJoiningFee(-5) })
}

func TestNewTableValidation(t *testing.T) {
	cases := map[string]struct {
		bands    []Band
		catchAll int64
	}{
		"empty":              {nil, 10},
		"non-increasing":     {[]Band{{100, 1}, {100, 2}}, 3},
		"decreasing fee":     {[]Band{{100, 5}, {200, 2}}, 6},
		"zero fee":           {[]Band{{100, 0}}, 1},
		"non-positive bound": {[]Band{{0, 1}}, 1},
		"small catch-all":    {[]Band{{100, 1}, {200, 9}}, 5},
		"tied catch-all":     {[]Band{{100, 1}, {200, 9}}, 9},
	}
	for name, tc := range cases {
		_, err := NewTable(tc.bands, tc.catchAll)
		assert.Error(t, err, name)
	}

	table, err := NewTable([]Band{{100, 1}, {200, 1}}, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, table.Fee(200))
	assert.EqualValues(t, 2, table.Fee(250))
}

func TestBandsAreCopied(t *testing.T) {
	bands := Default.Bands()
	require.Len(t, bands, 3)
	bands[0].Fee = 99
	assert.EqualValues(t, 1_000, Default.Fee(10))
	assert.EqualValues(t, 5_000, Default.CatchAll())

	in := []Band{{100, 1}}
	table := MustTable(in, 2)
	in[0].UpTo = 1
	assert.EqualValues(t, 1, table.Fee(50))
}

func TestMustTablePanics(t *testing.T) {
	assert.Panics(t, func() { MustTable(nil, 1) })
}
