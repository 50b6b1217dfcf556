package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmcampos/spendlane/internal/ingest"
)

func TestSanitize(t *testing.T) {
	type testCase struct {
		name  string
		input string
		want  string
	}

	tests := []testCase{
		{name: "PlainValue", input: "Acme Corp", want: "Acme Corp"},
		{name: "Formula", input: "=SUM(A1:A9)", want: "'=SUM(A1:A9)"},
		{name: "Plus", input: "+1+1", want: "'+1+1"},
		{name: "Minus", input: "-2+3", want: "'-2+3"},
		{name: "At", input: "@cmd", want: "'@cmd"},
		{name: "LeadingTabTrimmed", input: "\tvalue", want: "value"},
		{name: "TrimsWhitespace", input: "  Acme Corp  ", want: "Acme Corp"},
		{name: "Empty", input: "", want: ""},
		{name: "OnlyWhitespace", input: "   ", want: ""},
		{name: "QuoteOnly", input: "'quoted", want: "'quoted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ingest.Sanitize(tt.input))
		})
	}
}

func TestSanitize_TabInsideTrimmed(t *testing.T) {
	// TrimSpace removes a leading tab, so the trigger check applies to what
	// a spreadsheet would actually see as the first character.
	assert.Equal(t, "'=1", ingest.Sanitize(" \t =1"))
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{"=SUM(A1:A9)", "+1", "-x", "@cmd", "Acme Corp", ""}

	for _, input := range inputs {
		once := ingest.Sanitize(input)
		twice := ingest.Sanitize(once)
		assert.Equal(t, once, twice, "sanitize must be a no-op on its own output: %q", input)
	}
}
