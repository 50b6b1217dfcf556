package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/tmcampos/spendlane/internal/ingest"
	"github.com/tmcampos/spendlane/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=lister_mock.go -package=export
type TransactionLister interface {
	List(ctx context.Context, orgID uuid.UUID, filter transaction.Filter) ([]*transaction.Record, error)
}

// Service writes an organization's transactions as CSV. Every cell goes
// through the formula-injection sanitizer again on the way out, so data that
// predates the ingest-side guard is still safe to open in a spreadsheet.
type Service struct {
	transactions TransactionLister
}

func NewService(transactions TransactionLister) *Service {
	return &Service{transactions: transactions}
}

var header = []string{
	"Supplier", "Category", "Amount", "Date",
	"Description", "Subcategory", "Location", "Fiscal Year",
	"Spend Band", "Payment Method", "Invoice Number",
}

// WriteCSV streams matching records to w.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer, orgID uuid.UUID, filter transaction.Filter) error {
	records, err := s.transactions.List(ctx, orgID, filter)
	if err != nil {
		return fmt.Errorf("listing transactions: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.SupplierName,
			rec.CategoryName,
			rec.Amount.StringFixed(2),
			rec.Date.Format("2006-01-02"),
			rec.Description,
			rec.Subcategory,
			rec.Location,
			rec.FiscalYear,
			rec.SpendBand,
			rec.PaymentMethod,
			rec.InvoiceNumber,
		}

		for i, cell := range row {
			row[i] = ingest.Sanitize(cell)
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}
