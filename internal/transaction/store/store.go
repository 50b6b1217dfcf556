package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tmcampos/spendlane/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint hit.
const uniqueViolation = "23505"

// Insert writes one record inside the given transaction. A hit on the
// (organization, supplier, category, amount, date, invoice_number) unique
// constraint comes back as transaction.ErrDuplicate.
func Insert(ctx context.Context, tx *sql.Tx, rec *transaction.Record) error {
	query := `
		INSERT INTO transactions (
			organization_id, supplier_id, category_id, amount, date,
			description, subcategory, location, fiscal_year, spend_band,
			payment_method, invoice_number, upload_batch, uploaded_by, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		RETURNING id, created_at
	`

	err := tx.QueryRowContext(ctx, query,
		rec.OrganizationID,
		rec.SupplierID,
		rec.CategoryID,
		rec.Amount,
		rec.Date,
		rec.Description,
		rec.Subcategory,
		rec.Location,
		rec.FiscalYear,
		rec.SpendBand,
		rec.PaymentMethod,
		rec.InvoiceNumber,
		rec.BatchID,
		rec.UploadedBy,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return transaction.ErrDuplicate
		}

		return fmt.Errorf("inserting transaction: %w", err)
	}

	return nil
}

const selectRecordColumns = `
	t.id, t.organization_id, t.supplier_id, t.category_id, t.amount, t.date,
	t.description, t.subcategory, t.location, t.fiscal_year, t.spend_band,
	t.payment_method, t.invoice_number, t.upload_batch, t.uploaded_by, t.created_at,
	s.name AS supplier_name, c.name AS category_name
`

// List returns an organization's records matching the filter, joined with
// their supplier and category names, ordered by date.
func (s *Store) List(ctx context.Context, orgID uuid.UUID, filter transaction.Filter) ([]*transaction.Record, error) {
	query := `SELECT ` + selectRecordColumns + `
		FROM transactions t
		JOIN suppliers s ON t.supplier_id = s.id
		JOIN categories c ON t.category_id = c.id
		WHERE t.organization_id = $1`

	args := []any{orgID}
	argIdx := 2

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND t.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND t.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.SupplierID != nil {
		query += fmt.Sprintf(" AND t.supplier_id = $%d", argIdx)

		args = append(args, *filter.SupplierID)
		argIdx++
	}

	if filter.CategoryID != nil {
		query += fmt.Sprintf(" AND t.category_id = $%d", argIdx)

		args = append(args, *filter.CategoryID)
		argIdx++
	}

	if filter.BatchID != nil {
		query += fmt.Sprintf(" AND t.upload_batch = $%d", argIdx)

		args = append(args, *filter.BatchID)
		argIdx++
	}

	query += " ORDER BY t.date ASC, t.created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var records []*transaction.Record

	for rows.Next() {
		var rec transaction.Record
		if err := rows.Scan(
			&rec.ID, &rec.OrganizationID, &rec.SupplierID, &rec.CategoryID, &rec.Amount, &rec.Date,
			&rec.Description, &rec.Subcategory, &rec.Location, &rec.FiscalYear, &rec.SpendBand,
			&rec.PaymentMethod, &rec.InvoiceNumber, &rec.BatchID, &rec.UploadedBy, &rec.CreatedAt,
			&rec.SupplierName, &rec.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return records, nil
}
