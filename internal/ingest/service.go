package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/tmcampos/spendlane/internal/batch"
	enc "github.com/tmcampos/spendlane/internal/encoding"
	"github.com/tmcampos/spendlane/internal/organization"
	"github.com/tmcampos/spendlane/internal/transaction"
)

const (
	// maxRows is the per-file row ceiling, checked before any row is ingested.
	maxRows = 50000

	// maxErrorEntries bounds the stored error log.
	maxErrorEntries = 100
)

var requiredColumns = []string{"supplier", "category", "amount", "date"}

var optionalColumns = []string{
	"description", "subcategory", "location", "fiscal_year",
	"spend_band", "payment_method", "invoice_number",
}

// organizationColumn is only honored when multi-org mode is on.
const organizationColumn = "organization"

//go:generate mockgen -source=service.go -destination=store_mock.go -package=ingest
type Datastore interface {
	// BeginRow opens the atomic unit for one row: the dimension creates and
	// the transaction insert all commit or roll back together.
	BeginRow(ctx context.Context) (RowTx, error)
}

type RowTx interface {
	GetOrCreateSupplier(ctx context.Context, orgID uuid.UUID, name string) (uuid.UUID, bool, error)
	GetOrCreateCategory(ctx context.Context, orgID uuid.UUID, name string) (uuid.UUID, bool, error)
	InsertTransaction(ctx context.Context, rec *transaction.Record) error
	Commit() error
	Rollback() error
}

type BatchStore interface {
	Create(ctx context.Context, up *batch.Upload) error
	Finalize(ctx context.Context, up *batch.Upload) error
}

// Options control one ingestion run.
type Options struct {
	// SkipDuplicates counts constraint conflicts as duplicates instead of
	// surfacing them as row errors.
	SkipDuplicates bool

	// AllowMultiOrg honors the organization column; off, every row lands in
	// the caller's organization no matter what the file says.
	AllowMultiOrg bool
}

// Input is everything one ingestion run consumes.
type Input struct {
	Organization *organization.Organization
	Actor        string
	FileName     string
	FileSize     int64
	File         io.ReadSeeker
	Options      Options
}

type Service struct {
	store   Datastore
	batches BatchStore
	orgs    organization.Repository
	token   func() string
}

type Option func(*Service)

// WithTokenFunc overrides the batch token source.
func WithTokenFunc(fn func() string) Option {
	return func(s *Service) { s.token = fn }
}

func NewService(store Datastore, batches BatchStore, orgs organization.Repository, opts ...Option) *Service {
	s := &Service{
		store:   store,
		batches: batches,
		orgs:    orgs,
		token:   batch.NewToken,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Ingest runs one batch: pre-flight validation, header check, then every row
// through its own transaction, and finalizes the audit record. Whole-batch
// failures (bad file, missing columns, row cap) abort with zero rows written;
// row-scoped failures are recorded and never stop the remaining rows.
func (s *Service) Ingest(ctx context.Context, in Input) (*batch.Upload, error) {
	up := &batch.Upload{
		BatchID:        s.token(),
		OrganizationID: in.Organization.ID,
		UploadedBy:     in.Actor,
		FileName:       in.FileName,
		FileSize:       in.FileSize,
		Status:         batch.StatusProcessing,
	}

	if err := s.batches.Create(ctx, up); err != nil {
		return nil, fmt.Errorf("creating batch record: %w", err)
	}

	log := slog.Default().With("batch_id", up.BatchID, "organization", in.Organization.Slug)

	if err := ValidateFile(in.FileName, in.FileSize, in.File); err != nil {
		return s.abort(ctx, up, log, err)
	}

	header, rows, err := readCSV(in.File)
	if err != nil {
		return s.abort(ctx, up, log, &FileFormatError{Reason: "file could not be parsed as CSV"})
	}

	cols, err := mapColumns(header, in.Options.AllowMultiOrg)
	if err != nil {
		return s.abort(ctx, up, log, err)
	}

	if len(rows) > maxRows {
		return s.abort(ctx, up, log, &RowCountLimitError{Count: len(rows), Limit: maxRows})
	}

	run := &runState{
		resolver: organization.NewResolver(s.orgs),
		cols:     cols,
		in:       in,
		batchID:  up.BatchID,
	}

	up.TotalRows = len(rows)

	for i, row := range rows {
		// 1-based file row; the header occupies row 1.
		rowNum := i + 2

		out := s.ingestRow(ctx, run, row, rowNum)

		// Each row yields exactly one outcome, and exactly one counter
		// moves; nothing is incremented speculatively.
		switch out.kind {
		case outcomeCreated:
			up.SuccessfulRows++
		case outcomeDuplicate:
			up.DuplicateRows++
		case outcomeError:
			up.FailedRows++

			if len(up.ErrorLog) < maxErrorEntries {
				up.ErrorLog = append(up.ErrorLog, batch.Entry{
					Row:     rowNum,
					Message: SanitizeError(out.err.Error()),
				})
			}
		}
	}

	switch {
	case up.FailedRows == 0:
		up.Status = batch.StatusCompleted
	case up.SuccessfulRows > 0:
		up.Status = batch.StatusPartial
	default:
		up.Status = batch.StatusFailed
	}

	if err := s.batches.Finalize(ctx, up); err != nil {
		return nil, fmt.Errorf("finalizing batch record: %w", err)
	}

	log.Info("batch finished",
		"status", up.Status,
		"total", up.TotalRows,
		"successful", up.SuccessfulRows,
		"failed", up.FailedRows,
		"duplicates", up.DuplicateRows,
	)

	return up, nil
}

// abort marks the batch failed with a single sanitized error entry and zero
// rows recorded.
func (s *Service) abort(ctx context.Context, up *batch.Upload, log *slog.Logger, cause error) (*batch.Upload, error) {
	up.Status = batch.StatusFailed
	up.TotalRows = 0
	up.ErrorLog = []batch.Entry{{Row: 0, Message: SanitizeError(cause.Error())}}

	if err := s.batches.Finalize(ctx, up); err != nil {
		return nil, fmt.Errorf("finalizing aborted batch: %w", err)
	}

	log.Warn("batch aborted", "reason", cause)

	return up, nil
}

// columnIndex maps normalized column names to their position in a row.
type columnIndex map[string]int

func readCSV(r io.Reader) ([]string, [][]string, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}

	if len(records) == 0 {
		return nil, nil, nil
	}

	return records[0], records[1:], nil
}

func mapColumns(header []string, multiOrg bool) (columnIndex, error) {
	cols := make(columnIndex)

	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name != "" {
			cols[name] = i
		}
	}

	var missing []string

	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	if !multiOrg {
		// An organization column in single-org mode is file content, not an
		// instruction; drop it so no row can target another tenant.
		delete(cols, organizationColumn)
	}

	return cols, nil
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, cols columnIndex, name string) string {
	idx, ok := cols[name]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

// runState carries the per-run pieces every row shares: the organization
// resolver (with its run-local cache), the column map and the options.
type runState struct {
	resolver *organization.Resolver
	cols     columnIndex
	in       Input
	batchID  string
}

type outcomeKind int

const (
	outcomeCreated outcomeKind = iota
	outcomeDuplicate
	outcomeError
)

type outcome struct {
	kind outcomeKind
	err  error
}

func rowErr(err error) outcome {
	return outcome{kind: outcomeError, err: err}
}

func rowErrf(format string, a ...any) outcome {
	return outcome{kind: outcomeError, err: fmt.Errorf(format, a...)}
}

// ingestRow pushes one row through the pipeline: resolve tenant, sanitize
// identifiers, get-or-create dimensions, parse date and amount, insert. The
// dimension creates and the insert share one transaction, so a failure at any
// step leaves no dimension row without its transaction.
func (s *Service) ingestRow(ctx context.Context, run *runState, row []string, rowNum int) outcome {
	org, err := run.resolver.Resolve(ctx,
		cellValue(row, run.cols, organizationColumn),
		run.in.Organization,
		run.in.Options.AllowMultiOrg,
	)
	if err != nil {
		return rowErr(err)
	}

	supplierName := Sanitize(cellValue(row, run.cols, "supplier"))
	if supplierName == "" {
		return rowErrf("supplier is required")
	}

	categoryName := Sanitize(cellValue(row, run.cols, "category"))
	if categoryName == "" {
		return rowErrf("category is required")
	}

	tx, err := s.store.BeginRow(ctx)
	if err != nil {
		return rowErrf("begin row: %w", err)
	}
	defer tx.Rollback()

	supplierID, _, err := tx.GetOrCreateSupplier(ctx, org.ID, supplierName)
	if err != nil {
		return rowErrf("resolving supplier: %w", err)
	}

	categoryID, _, err := tx.GetOrCreateCategory(ctx, org.ID, categoryName)
	if err != nil {
		return rowErrf("resolving category: %w", err)
	}

	date, err := ParseDate(cellValue(row, run.cols, "date"))
	if err != nil {
		return rowErr(err)
	}

	amount, err := ParseAmount(cellValue(row, run.cols, "amount"))
	if err != nil {
		return rowErr(err)
	}

	rec := &transaction.Record{
		OrganizationID: org.ID,
		SupplierID:     supplierID,
		CategoryID:     categoryID,
		Amount:         amount,
		Date:           date,
		BatchID:        run.batchID,
		UploadedBy:     run.in.Actor,
	}

	setOptionalFields(rec, row, run.cols)

	if err := tx.InsertTransaction(ctx, rec); err != nil {
		if errors.Is(err, transaction.ErrDuplicate) {
			if run.in.Options.SkipDuplicates {
				return outcome{kind: outcomeDuplicate}
			}

			return rowErrf("duplicate transaction")
		}

		return rowErrf("inserting transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return rowErrf("commit row: %w", err)
	}

	return outcome{kind: outcomeCreated}
}

func setOptionalFields(rec *transaction.Record, row []string, cols columnIndex) {
	for _, name := range optionalColumns {
		value := Sanitize(cellValue(row, cols, name))
		if value == "" {
			continue
		}

		switch name {
		case "description":
			rec.Description = value
		case "subcategory":
			rec.Subcategory = value
		case "location":
			rec.Location = value
		case "fiscal_year":
			rec.FiscalYear = value
		case "spend_band":
			rec.SpendBand = value
		case "payment_method":
			rec.PaymentMethod = value
		case "invoice_number":
			rec.InvoiceNumber = value
		}
	}
}
