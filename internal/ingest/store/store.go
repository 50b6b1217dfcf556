package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	dimstore "github.com/tmcampos/spendlane/internal/dimension/store"
	"github.com/tmcampos/spendlane/internal/ingest"
	"github.com/tmcampos/spendlane/internal/transaction"
	txstore "github.com/tmcampos/spendlane/internal/transaction/store"
)

// Store provides the per-row unit of work over PostgreSQL. Each row gets its
// own database transaction so dimension creates and the record insert commit
// or roll back together, while sibling rows stay independent.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) BeginRow(ctx context.Context) (ingest.RowTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning row tx: %w", err)
	}

	return &rowTx{tx: dbTx}, nil
}

type rowTx struct {
	tx *sql.Tx
}

func (r *rowTx) GetOrCreateSupplier(ctx context.Context, orgID uuid.UUID, name string) (uuid.UUID, bool, error) {
	return dimstore.GetOrCreateSupplier(ctx, r.tx, orgID, name)
}

func (r *rowTx) GetOrCreateCategory(ctx context.Context, orgID uuid.UUID, name string) (uuid.UUID, bool, error) {
	return dimstore.GetOrCreateCategory(ctx, r.tx, orgID, name)
}

func (r *rowTx) InsertTransaction(ctx context.Context, rec *transaction.Record) error {
	return txstore.Insert(ctx, r.tx, rec)
}

func (r *rowTx) Commit() error   { return r.tx.Commit() }
func (r *rowTx) Rollback() error { return r.tx.Rollback() }
