package dimension

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is a lazily created reference row, unique per (organization, name).
type Supplier struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Active         bool
	CreatedAt      time.Time
}

// Category is a lazily created reference row, unique per (organization, name).
type Category struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Active         bool
	CreatedAt      time.Time
}
