package exportcsv

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tmcampos/spendlane/internal/export"
	"github.com/tmcampos/spendlane/internal/organization"
	"github.com/tmcampos/spendlane/internal/transaction"
)

type Handler struct {
	exportSvc *export.Service
	orgs      organization.Repository
}

func NewHandler(exportSvc *export.Service, orgs organization.Repository) *Handler {
	return &Handler{exportSvc: exportSvc, orgs: orgs}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.exportCSV)
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	orgSlug := r.Header.Get("X-Organization")
	if orgSlug == "" {
		http.Error(w, "X-Organization header is required", http.StatusBadRequest)
		return
	}

	org, err := h.orgs.FindByNameOrSlug(r.Context(), orgSlug)
	if err != nil {
		if errors.Is(err, organization.ErrNotFound) {
			http.Error(w, "unknown organization", http.StatusNotFound)
			return
		}

		http.Error(w, "resolving organization failed", http.StatusInternalServerError)

		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)

	if err := h.exportSvc.WriteCSV(r.Context(), w, org.ID, filter); err != nil {
		// Headers are out; all we can do is log.
		slog.Error("export failed", "error", err, "organization", org.Slug)
	}
}

func parseFilter(r *http.Request) (transaction.Filter, error) {
	var filter transaction.Filter

	q := r.URL.Query()

	if raw := q.Get("start_date"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, errors.New("start_date must be YYYY-MM-DD")
		}

		filter.StartDate = &t
	}

	if raw := q.Get("end_date"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, errors.New("end_date must be YYYY-MM-DD")
		}

		filter.EndDate = &t
	}

	if raw := q.Get("supplier_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.New("supplier_id must be a uuid")
		}

		filter.SupplierID = &id
	}

	if raw := q.Get("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.New("category_id must be a uuid")
		}

		filter.CategoryID = &id
	}

	if raw := q.Get("batch_id"); raw != "" {
		filter.BatchID = &raw
	}

	return filter, nil
}
