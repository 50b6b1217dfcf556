package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/tmcampos/spendlane/internal/batch"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Create persists the batch at the start of a run, status processing.
func (s *Store) Create(ctx context.Context, up *batch.Upload) error {
	query := `
		INSERT INTO upload_batches (
			batch_id, organization_id, uploaded_by, file_name, file_size, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		up.BatchID,
		up.OrganizationID,
		up.UploadedBy,
		up.FileName,
		up.FileSize,
		up.Status,
	).Scan(&up.ID, &up.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating upload batch: %w", err)
	}

	return nil
}

// Finalize writes the counters, terminal status and sanitized error log once
// the run is over. The row is never touched again after this.
func (s *Store) Finalize(ctx context.Context, up *batch.Upload) error {
	errorLog, err := json.Marshal(up.ErrorLog)
	if err != nil {
		return fmt.Errorf("encoding error log: %w", err)
	}

	query := `
		UPDATE upload_batches
		SET total_rows = $1, successful_rows = $2, failed_rows = $3, duplicate_rows = $4,
			status = $5, error_log = $6, completed_at = NOW()
		WHERE id = $7
		RETURNING completed_at
	`

	err = s.db.QueryRowContext(ctx, query,
		up.TotalRows,
		up.SuccessfulRows,
		up.FailedRows,
		up.DuplicateRows,
		up.Status,
		errorLog,
		up.ID,
	).Scan(&up.CompletedAt)
	if err != nil {
		return fmt.Errorf("finalizing upload batch: %w", err)
	}

	return nil
}

const selectBatchColumns = `
	b.id, b.batch_id, b.organization_id, b.uploaded_by, b.file_name, b.file_size,
	b.total_rows, b.successful_rows, b.failed_rows, b.duplicate_rows,
	b.status, b.error_log, b.created_at, b.completed_at
`

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBatch(s scanner) (*batch.Upload, error) {
	var up batch.Upload

	var statusStr string

	var errorLog []byte

	if err := s.Scan(
		&up.ID, &up.BatchID, &up.OrganizationID, &up.UploadedBy, &up.FileName, &up.FileSize,
		&up.TotalRows, &up.SuccessfulRows, &up.FailedRows, &up.DuplicateRows,
		&statusStr, &errorLog, &up.CreatedAt, &up.CompletedAt,
	); err != nil {
		return nil, err
	}

	up.Status = batch.Status(statusStr)

	if len(errorLog) > 0 {
		if err := json.Unmarshal(errorLog, &up.ErrorLog); err != nil {
			return nil, fmt.Errorf("decoding error log: %w", err)
		}
	}

	return &up, nil
}

// Get fetches a batch by its opaque token, scoped to the organization.
func (s *Store) Get(ctx context.Context, orgID uuid.UUID, batchID string) (*batch.Upload, error) {
	query := `SELECT ` + selectBatchColumns + `
		FROM upload_batches b
		WHERE b.organization_id = $1 AND b.batch_id = $2`

	up, err := scanBatch(s.db.QueryRowContext(ctx, query, orgID, batchID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, batch.ErrNotFound
		}

		return nil, fmt.Errorf("getting upload batch: %w", err)
	}

	return up, nil
}

// ListByOrg returns an organization's batches, newest first.
func (s *Store) ListByOrg(ctx context.Context, orgID uuid.UUID, limit int) ([]*batch.Upload, error) {
	query := `SELECT ` + selectBatchColumns + `
		FROM upload_batches b
		WHERE b.organization_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, orgID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing upload batches: %w", err)
	}
	defer rows.Close()

	var ups []*batch.Upload

	for rows.Next() {
		up, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning upload batch: %w", err)
		}

		ups = append(ups, up)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating upload batches: %w", err)
	}

	return ups, nil
}
