package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// GetOrCreateSupplier atomically fetches or creates a supplier row scoped to
// the organization. The insert relies on the (organization_id, name) unique
// constraint: ON CONFLICT DO NOTHING followed by a re-select, never a racy
// exists-check. Runs inside the caller's transaction so an aborted row leaves
// no orphan dimension rows behind.
func GetOrCreateSupplier(ctx context.Context, tx *sql.Tx, orgID uuid.UUID, name string) (uuid.UUID, bool, error) {
	return getOrCreate(ctx, tx, "suppliers", orgID, name)
}

// GetOrCreateCategory is the category counterpart of GetOrCreateSupplier.
func GetOrCreateCategory(ctx context.Context, tx *sql.Tx, orgID uuid.UUID, name string) (uuid.UUID, bool, error) {
	return getOrCreate(ctx, tx, "categories", orgID, name)
}

func getOrCreate(ctx context.Context, tx *sql.Tx, table string, orgID uuid.UUID, name string) (uuid.UUID, bool, error) {
	insert := fmt.Sprintf(`
		INSERT INTO %s (organization_id, name, is_active, created_at)
		VALUES ($1, $2, TRUE, NOW())
		ON CONFLICT (organization_id, name) DO NOTHING
		RETURNING id
	`, table)

	var id uuid.UUID

	err := tx.QueryRowContext(ctx, insert, orgID, name).Scan(&id)
	if err == nil {
		return id, true, nil
	}

	if err != sql.ErrNoRows {
		return uuid.Nil, false, fmt.Errorf("inserting into %s: %w", table, err)
	}

	// Conflict: the row already exists, fetch it.
	selectQ := fmt.Sprintf(`SELECT id FROM %s WHERE organization_id = $1 AND name = $2`, table)

	if err := tx.QueryRowContext(ctx, selectQ, orgID, name).Scan(&id); err != nil {
		return uuid.Nil, false, fmt.Errorf("selecting from %s after conflict: %w", table, err)
	}

	return id, false, nil
}
