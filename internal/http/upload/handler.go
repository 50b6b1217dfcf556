package upload

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tmcampos/spendlane/internal/batch"
	"github.com/tmcampos/spendlane/internal/ingest"
	"github.com/tmcampos/spendlane/internal/organization"
)

// BatchReader serves the read side of the upload audit trail.
type BatchReader interface {
	Get(ctx context.Context, orgID uuid.UUID, batchID string) (*batch.Upload, error)
	ListByOrg(ctx context.Context, orgID uuid.UUID, limit int) ([]*batch.Upload, error)
}

type Handler struct {
	ingestSvc *ingest.Service
	orgs      organization.Repository
	batches   BatchReader
}

func NewHandler(ingestSvc *ingest.Service, orgs organization.Repository, batches BatchReader) *Handler {
	return &Handler{ingestSvc: ingestSvc, orgs: orgs, batches: batches}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.upload)
	r.Get("/", h.list)
	r.Get("/{batchID}", h.get)
}

type batchResponse struct {
	BatchID        string        `json:"batch_id"`
	Status         batch.Status  `json:"status"`
	FileName       string        `json:"file_name"`
	TotalRows      int           `json:"total_rows"`
	SuccessfulRows int           `json:"successful_rows"`
	FailedRows     int           `json:"failed_rows"`
	DuplicateRows  int           `json:"duplicate_rows"`
	ErrorLog       []batch.Entry `json:"error_log"`
	CreatedAt      time.Time     `json:"created_at"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty"`
}

// resolveOrg reads the tenant the fronting auth layer established. This
// service never authenticates; it trusts the forwarded identity headers.
func (h *Handler) resolveOrg(w http.ResponseWriter, r *http.Request) *organization.Organization {
	orgSlug := r.Header.Get("X-Organization")
	if orgSlug == "" {
		http.Error(w, "X-Organization header is required", http.StatusBadRequest)
		return nil
	}

	org, err := h.orgs.FindByNameOrSlug(r.Context(), orgSlug)
	if err != nil {
		if errors.Is(err, organization.ErrNotFound) {
			http.Error(w, "unknown organization", http.StatusNotFound)
			return nil
		}

		http.Error(w, "resolving organization failed", http.StatusInternalServerError)

		return nil
	}

	return org
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	org := h.resolveOrg(w, r)
	if org == nil {
		return
	}

	actor := r.Header.Get("X-Actor")
	if actor == "" {
		http.Error(w, "X-Actor header is required", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	opts := ingest.Options{
		SkipDuplicates: parseBool(r.FormValue("skip_duplicates"), true),
		AllowMultiOrg:  parseBool(r.FormValue("allow_multi_org"), false),
	}

	up, err := h.ingestSvc.Ingest(r.Context(), ingest.Input{
		Organization: org,
		Actor:        actor,
		FileName:     header.Filename,
		FileSize:     header.Size,
		File:         file,
		Options:      opts,
	})
	if err != nil {
		slog.Error("ingest failed", "error", err)
		http.Error(w, "ingestion failed", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toBatchResponse(up)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	org := h.resolveOrg(w, r)
	if org == nil {
		return
	}

	up, err := h.batches.Get(r.Context(), org.ID, chi.URLParam(r, "batchID"))
	if err != nil {
		if errors.Is(err, batch.ErrNotFound) {
			http.Error(w, "batch not found", http.StatusNotFound)
			return
		}

		http.Error(w, "fetching batch failed", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toBatchResponse(up)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

const defaultListLimit = 50

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	org := h.resolveOrg(w, r)
	if org == nil {
		return
	}

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 500 {
			limit = v
		}
	}

	ups, err := h.batches.ListByOrg(r.Context(), org.ID, limit)
	if err != nil {
		http.Error(w, "listing batches failed", http.StatusInternalServerError)
		return
	}

	responses := make([]batchResponse, 0, len(ups))
	for _, up := range ups {
		responses = append(responses, toBatchResponse(up))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(responses); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func parseBool(raw string, def bool) bool {
	if raw == "" {
		return def
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}

	return v
}

func toBatchResponse(up *batch.Upload) batchResponse {
	errorLog := up.ErrorLog
	if errorLog == nil {
		errorLog = []batch.Entry{}
	}

	return batchResponse{
		BatchID:        up.BatchID,
		Status:         up.Status,
		FileName:       up.FileName,
		TotalRows:      up.TotalRows,
		SuccessfulRows: up.SuccessfulRows,
		FailedRows:     up.FailedRows,
		DuplicateRows:  up.DuplicateRows,
		ErrorLog:       errorLog,
		CreatedAt:      up.CreatedAt,
		CompletedAt:    up.CompletedAt,
	}
}
