package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrDuplicate signals that an insert hit the transaction uniqueness
// constraint. Duplicate detection happens at the storage layer, never via a
// prior existence check, so it stays correct under concurrent uploads.
var ErrDuplicate = errors.New("duplicate transaction")

// ErrNotFound signals a lookup miss.
var ErrNotFound = errors.New("transaction not found")

// Record is one procurement spend line item, owned by its organization.
// Records created by an ingestion run are never mutated afterwards.
type Record struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	SupplierID     uuid.UUID
	CategoryID     uuid.UUID
	Amount         decimal.Decimal
	Date           time.Time

	Description   string
	Subcategory   string
	Location      string
	FiscalYear    string
	SpendBand     string
	PaymentMethod string
	InvoiceNumber string

	BatchID    string
	UploadedBy string
	CreatedAt  time.Time

	// SupplierName and CategoryName are populated on reads that join the
	// dimension tables; they are not written through this type.
	SupplierName string
	CategoryName string
}

// Filter narrows export and listing queries.
type Filter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	SupplierID *uuid.UUID
	CategoryID *uuid.UUID
	BatchID    *string
}
