package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tmcampos/spendlane/internal/organization"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectOrganizationColumns = `
	o.id, o.name, o.slug, o.is_active, o.created_at, o.updated_at
`

func scanOrganization(row *sql.Row) (*organization.Organization, error) {
	var org organization.Organization

	if err := row.Scan(
		&org.ID, &org.Name, &org.Slug, &org.Active, &org.CreatedAt, &org.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &org, nil
}

func (s *Store) FindByNameOrSlug(ctx context.Context, identifier string) (*organization.Organization, error) {
	query := `SELECT ` + selectOrganizationColumns + `
		FROM organizations o
		WHERE o.is_active AND (LOWER(o.name) = LOWER($1) OR LOWER(o.slug) = LOWER($1))`

	org, err := scanOrganization(s.db.QueryRowContext(ctx, query, identifier))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, organization.ErrNotFound
		}

		return nil, fmt.Errorf("finding organization: %w", err)
	}

	return org, nil
}

func (s *Store) ListActive(ctx context.Context, limit int) ([]*organization.Organization, error) {
	query := `SELECT ` + selectOrganizationColumns + `
		FROM organizations o
		WHERE o.is_active
		ORDER BY o.name ASC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	defer rows.Close()

	var orgs []*organization.Organization

	for rows.Next() {
		var org organization.Organization
		if err := rows.Scan(
			&org.ID, &org.Name, &org.Slug, &org.Active, &org.CreatedAt, &org.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning organization: %w", err)
		}

		orgs = append(orgs, &org)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating organizations: %w", err)
	}

	return orgs, nil
}
