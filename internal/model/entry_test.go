package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAmount(t *testing.T) {
	tests := []struct {
		in   string
		want Amount
	}{
		{"93.5", "93.50"},
		{"74.8", "74.80"},
		{"34.595", "34.60"},
		{"-99", "-99.00"},
		{"-34.595", "-34.60"},
		{"0", "0.00"},
	}
	for _, tt := range tests {
		got := NewAmount(decimal.RequireFromString(tt.in))
		assert.Equal(t, tt.want, got, "NewAmount(%s)", tt.in)
	}
}

func TestAmountDecimal(t *testing.T) {
	d, err := Amount("34.60").Decimal()
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("34.6")))

	_, err = Amount("abc").Decimal()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"abc"`)
}

func TestEntryJSONLegacyNumericHours(t *testing.T) {
	// Blobs written before IDs existed store decimalHours as a bare number.
	raw := `{"rawDate":"2025-11-08","displayDate":"08 Nov 2025","day":"Saturday",
		"month":"November 2025","branch":"Orchard","timeIn":"09:00","timeOut":"17:30",
		"hours":"8hrs 30mins","decimalHours":8.5,"gross":"93.50","net":"74.80","cpf":"34.60"}`

	var e Entry
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	assert.Empty(t, e.ID)
	assert.Equal(t, "Saturday", e.Weekday)
	assert.True(t, e.DecimalHours.Equal(decimal.RequireFromString("8.5")))
	assert.Equal(t, Amount("34.60"), e.EmployerContribution)
}

func TestTotalsAdd(t *testing.T) {
	var tot Totals
	tot = tot.Add(decimal.NewFromInt(2), decimal.NewFromInt(22), decimal.RequireFromString("17.6"), decimal.RequireFromString("8.14"))
	tot = tot.Add(decimal.NewFromInt(-1), decimal.NewFromInt(-11), decimal.RequireFromString("-8.8"), decimal.RequireFromString("-4.07"))

	assert.Equal(t, 2, tot.Count)
	assert.Equal(t, "1", tot.Hours.String())
	assert.Equal(t, "11", tot.Gross.String())
	assert.Equal(t, "8.8", tot.Net.String())
	assert.Equal(t, "4.07", tot.EmployerContribution.String())
}
