package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tmcampos/spendlane/internal/export"
	"github.com/tmcampos/spendlane/internal/transaction"
)

func TestService_WriteCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()

	records := []*transaction.Record{
		{
			SupplierName: "Acme Supplies",
			CategoryName: "Office",
			Amount:       decimal.RequireFromString("125.5"),
			Date:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Description:  "paper",
		},
		{
			// Hostile values stored before the ingest-side guard existed.
			SupplierName: "=HYPERLINK(\"http://evil\")",
			CategoryName: "Travel",
			Amount:       decimal.RequireFromString("1200"),
			Date:         time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			Description:  "@cmd",
		},
	}

	lister := export.NewMockTransactionLister(ctrl)
	lister.EXPECT().
		List(gomock.Any(), orgID, transaction.Filter{}).
		Return(records, nil)

	svc := export.NewService(lister)

	var buf bytes.Buffer

	require.NoError(t, svc.WriteCSV(context.Background(), &buf, orgID, transaction.Filter{}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Supplier", rows[0][0])

	assert.Equal(t, "Acme Supplies", rows[1][0])
	assert.Equal(t, "125.50", rows[1][2])
	assert.Equal(t, "2024-01-15", rows[1][3])

	// Formula triggers are guarded on the way out.
	assert.Equal(t, "'=HYPERLINK(\"http://evil\")", rows[2][0])
	assert.Equal(t, "'@cmd", rows[2][4])
}

func TestService_WriteCSV_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := export.NewMockTransactionLister(ctrl)
	lister.EXPECT().
		List(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db error"))

	svc := export.NewService(lister)

	err := svc.WriteCSV(context.Background(), &bytes.Buffer{}, uuid.New(), transaction.Filter{})
	assert.Error(t, err)
}
