package batch

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound signals a lookup miss.
var ErrNotFound = errors.New("upload batch not found")

// Status is the lifecycle state of an ingestion run. A batch starts in
// StatusProcessing and moves exactly once to one of the terminal states.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusPartial    Status = "partial"
	StatusFailed     Status = "failed"
)

// Entry is one sanitized error-log line: the row number and a message that
// went through the error sanitizer. Raw row contents are never stored.
type Entry struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Upload is the audit record of one ingestion run.
type Upload struct {
	ID             uuid.UUID
	BatchID        string
	OrganizationID uuid.UUID
	UploadedBy     string
	FileName       string
	FileSize       int64

	TotalRows      int
	SuccessfulRows int
	FailedRows     int
	DuplicateRows  int

	Status   Status
	ErrorLog []Entry

	CreatedAt   time.Time
	CompletedAt *time.Time
}

// NewToken produces a batch identifier. A v4 UUID is drawn from crypto/rand,
// so batch IDs are opaque and not enumerable.
func NewToken() string {
	return uuid.NewString()
}
