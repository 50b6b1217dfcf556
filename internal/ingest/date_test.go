package ingest_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmcampos/spendlane/internal/ingest"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}

	tests := []testCase{
		{name: "ISO", input: "2024-03-15", want: day(2024, 3, 15)},
		{name: "ISOSlash", input: "2024/03/15", want: day(2024, 3, 15)},
		{name: "USSlash", input: "03/15/2024", want: day(2024, 3, 15)},
		{name: "USSlashShort", input: "3/5/2024", want: day(2024, 3, 5)},
		{name: "USDash", input: "03-15-2024", want: day(2024, 3, 15)},
		{name: "WithTime", input: "2024-03-15 10:30:00", want: day(2024, 3, 15)},
		{name: "TextualMonth", input: "Mar 15, 2024", want: day(2024, 3, 15)},
		{name: "LongMonth", input: "March 15, 2024", want: day(2024, 3, 15)},
		{name: "DayFirstTextual", input: "15 Mar 2024", want: day(2024, 3, 15)},
		{name: "Whitespace", input: "  2024-03-15  ", want: day(2024, 3, 15)},
		{name: "Empty", input: "", wantErr: true},
		{name: "Garbage", input: "not a date", wantErr: true},
		{name: "ImpossibleDay", input: "2024-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ingest.ParseDate(tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
