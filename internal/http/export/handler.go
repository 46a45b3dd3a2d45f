package export

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bursarhq/bursar/internal/export"
	"github.com/bursarhq/bursar/internal/ledger"
)

type Handler struct {
	svc    *export.Service
	source export.StatementSource
}

func NewHandler(svc *export.Service, source export.StatementSource) *Handler {
	return &Handler{svc: svc, source: source}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/statements/{studentID}", h.metadata)
	r.Get("/statements/{studentID}/download", h.download)
}

type metadataResponse struct {
	Statement *ledger.Statement `json:"statement"`
	Summary   string            `json:"summary"`
}

// metadata returns the statement totals and a text summary without
// rendering a PDF.
func (h *Handler) metadata(w http.ResponseWriter, r *http.Request) {
	studentID, academicYearID, ok := parseStatementParams(w, r)
	if !ok {
		return
	}

	statement, err := h.source.GeneratePaymentStatement(r.Context(), studentID, academicYearID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	entries, err := h.source.GetPaymentHistory(r.Context(), studentID, academicYearID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(metadataResponse{
		Statement: statement,
		Summary:   h.svc.GenerateSummary(entries),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// download renders the statement to a PDF and streams it back.
func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	studentID, academicYearID, ok := parseStatementParams(w, r)
	if !ok {
		return
	}

	tmpDir, err := os.MkdirTemp("", "bursar-export-*")
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer os.RemoveAll(tmpDir)

	item, err := h.svc.ExportStatement(r.Context(), studentID, academicYearID, tmpDir)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	f, err := os.Open(item.FilePath)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		"attachment; filename=\"statement_"+item.Student.AdmissionNumber+".pdf\"")

	if _, err := io.Copy(w, f); err != nil {
		slog.Error("failed to stream statement", "error", err)
	}
}

func parseStatementParams(w http.ResponseWriter, r *http.Request) (uuid.UUID, *uuid.UUID, bool) {
	studentID, err := uuid.Parse(chi.URLParam(r, "studentID"))
	if err != nil {
		http.Error(w, "invalid student id", http.StatusBadRequest)
		return uuid.Nil, nil, false
	}

	var academicYearID *uuid.UUID

	if s := r.URL.Query().Get("academic_year_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid academic_year_id", http.StatusBadRequest)
			return uuid.Nil, nil, false
		}

		academicYearID = &id
	}

	return studentID, academicYearID, true
}
