package ingest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmcampos/spendlane/internal/ingest"
)

func TestSanitizeError(t *testing.T) {
	type testCase struct {
		name  string
		input string
		want  string
	}

	const redacted = "internal error while processing this row"

	tests := []testCase{
		{name: "PlainMessage", input: "amount must not be negative", want: "amount must not be negative"},
		{
			name:  "SQLState",
			input: `ERROR: duplicate key value violates unique constraint "transactions_uniq" (SQLSTATE 23505)`,
			want:  redacted,
		},
		{name: "DriverPrefix", input: "pq: connection refused", want: redacted},
		{name: "FilePath", input: "open /var/lib/data/upload.csv: no such file", want: redacted},
		{name: "PanicTrace", input: "goroutine 12 [running]: main.go:42", want: redacted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ingest.SanitizeError(tt.input))
		})
	}
}

func TestSanitizeError_Truncates(t *testing.T) {
	long := strings.Repeat("a", 600)
	got := ingest.SanitizeError(long)
	assert.Len(t, got, 500)
}

func TestErrorTypes(t *testing.T) {
	assert.Equal(t, "invalid file: too big", (&ingest.FileFormatError{Reason: "too big"}).Error())
	assert.Equal(t, "missing required columns: category, date",
		(&ingest.SchemaError{Missing: []string{"category", "date"}}).Error())
	assert.Equal(t, "file has 60000 rows, the maximum is 50000",
		(&ingest.RowCountLimitError{Count: 60000, Limit: 50000}).Error())
}
