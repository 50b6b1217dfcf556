package organization

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no active organization matches a lookup.
var ErrNotFound = errors.New("organization not found")

//go:generate mockgen -source=resolver.go -destination=repository_mock.go -package=organization
type Repository interface {
	// FindByNameOrSlug matches name or slug case-insensitively among active
	// organizations, returning ErrNotFound on a miss.
	FindByNameOrSlug(ctx context.Context, identifier string) (*Organization, error)
	ListActive(ctx context.Context, limit int) ([]*Organization, error)
}

// maxSuggestions bounds how many valid organization names a miss error lists.
const maxSuggestions = 10

// Resolver maps an organization hint from file content to a tenant record.
// Lookups are cached in the resolver, so a Resolver must live for exactly one
// ingestion run; sharing one across runs would let a stale or cross-tenant
// entry leak between uploads.
type Resolver struct {
	repo  Repository
	cache map[string]*Organization
}

func NewResolver(repo Repository) *Resolver {
	return &Resolver{
		repo:  repo,
		cache: make(map[string]*Organization),
	}
}

// NotFoundError reports an unresolvable organization hint, listing known
// active organizations so the uploader can correct the file.
type NotFoundError struct {
	Identifier string
	Known      []string
	Truncated  bool
}

func (e *NotFoundError) Error() string {
	known := strings.Join(e.Known, ", ")
	if e.Truncated {
		known += ", ..."
	}

	return fmt.Sprintf("organization %q not found; valid organizations: %s", e.Identifier, known)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Resolve returns the organization a row belongs to.
//
// When multi-org mode is off, or the row carries no hint, the caller's
// default organization wins unconditionally. A hint in the file can never
// redirect a row to another tenant unless multi-org mode was requested.
func (r *Resolver) Resolve(ctx context.Context, identifier string, defaultOrg *Organization, multiOrg bool) (*Organization, error) {
	identifier = strings.TrimSpace(identifier)
	if !multiOrg || identifier == "" {
		return defaultOrg, nil
	}

	key := strings.ToLower(identifier)
	if org, ok := r.cache[key]; ok {
		return org, nil
	}

	org, err := r.repo.FindByNameOrSlug(ctx, identifier)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, r.notFound(ctx, identifier)
		}

		return nil, fmt.Errorf("resolving organization %q: %w", identifier, err)
	}

	r.cache[key] = org

	return org, nil
}

func (r *Resolver) notFound(ctx context.Context, identifier string) error {
	nfErr := &NotFoundError{Identifier: identifier}

	// Fetch one extra row to learn whether the list was cut off.
	orgs, err := r.repo.ListActive(ctx, maxSuggestions+1)
	if err != nil {
		return nfErr
	}

	if len(orgs) > maxSuggestions {
		orgs = orgs[:maxSuggestions]
		nfErr.Truncated = true
	}

	for _, org := range orgs {
		nfErr.Known = append(nfErr.Known, org.Name)
	}

	return nfErr
}
