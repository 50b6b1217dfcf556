package ingest_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmcampos/spendlane/internal/ingest"
)

func TestParseAmount(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    string
		wantErr bool
	}

	tests := []testCase{
		{name: "Plain", input: "1234.56", want: "1234.56"},
		{name: "ThousandsSeparators", input: "1,234.56", want: "1234.56"},
		{name: "DollarSign", input: "$1,234.56", want: "1234.56"},
		{name: "EuroSign", input: "€500", want: "500"},
		{name: "PoundSign", input: "£2,000.00", want: "2000"},
		{name: "SymbolThenSpace", input: "$ 99.99", want: "99.99"},
		{name: "Whitespace", input: "  42  ", want: "42"},
		{name: "Zero", input: "0", want: "0"},
		{name: "AtCeiling", input: "999999999999.99", want: "999999999999.99"},
		{name: "Negative", input: "-5", wantErr: true},
		{name: "NegativeWithSymbol", input: "$-5", wantErr: true},
		{name: "OverCeiling", input: "1000000000000", wantErr: true},
		{name: "NotANumber", input: "abc", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
		{name: "SymbolOnly", input: "$", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ingest.ParseAmount(tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestParseAmount_Exact(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3; float parsing would drift.
	a, err := ingest.ParseAmount("0.1")
	require.NoError(t, err)

	b, err := ingest.ParseAmount("0.2")
	require.NoError(t, err)

	assert.True(t, a.Add(b).Equal(decimal.RequireFromString("0.3")))
}
