package organization

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the tenant boundary. Every supplier, category and
// transaction row belongs to exactly one organization.
type Organization struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
