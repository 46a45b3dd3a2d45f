package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bursarhq/bursar/internal/importer"
	"github.com/bursarhq/bursar/internal/ledger"
)

type Handler struct {
	importSvc *importer.Service
	ledgerSvc *ledger.Service
}

func NewHandler(importSvc *importer.Service, ledgerSvc *ledger.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		ledgerSvc: ledgerSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importStatement)
	r.Post("/confirm", h.confirmPayments)
}

type studentResponse struct {
	ID              uuid.UUID `json:"id"`
	AdmissionNumber string    `json:"admission_number"`
	FullName        string    `json:"full_name"`
	GradeID         uuid.UUID `json:"grade_id"`
}

type reviewRowResponse struct {
	Date      time.Time        `json:"date"`
	Narrative string           `json:"narrative"`
	Amount    int64            `json:"amount"`
	Reference string           `json:"reference,omitempty"`
	Student   *studentResponse `json:"student,omitempty"`
}

type reviewResponse struct {
	Rows      int                 `json:"rows"`
	Matched   int                 `json:"matched"`
	Unmatched int                 `json:"unmatched"`
	Credits   []reviewRowResponse `json:"credits"`
}

// importStatement parses an uploaded statement and returns the credits with
// student suggestions for review. Nothing is written yet.
func (h *Handler) importStatement(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := h.importSvc.Review(r.Context(), file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := reviewResponse{
		Rows:    len(rows),
		Credits: make([]reviewRowResponse, 0, len(rows)),
	}

	for _, row := range rows {
		rr := reviewRowResponse{
			Date:      row.Credit.Date,
			Narrative: row.Credit.Narrative,
			Amount:    row.Credit.Amount,
			Reference: row.Credit.Reference,
		}

		if row.Student != nil {
			resp.Matched++
			rr.Student = &studentResponse{
				ID:              row.Student.ID,
				AdmissionNumber: row.Student.AdmissionNumber,
				FullName:        row.Student.FullName,
				GradeID:         row.Student.GradeID,
			}
		} else {
			resp.Unmatched++
		}

		resp.Credits = append(resp.Credits, rr)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type confirmPaymentDTO struct {
	StudentFeeID      uuid.UUID `json:"student_fee_id"`
	Amount            int64     `json:"amount"`
	ExternalReference string    `json:"external_reference,omitempty"`
}

type confirmRequest struct {
	Payments []confirmPaymentDTO `json:"payments"`
}

type confirmResultDTO struct {
	StudentFeeID uuid.UUID `json:"student_fee_id"`
	Recorded     bool      `json:"recorded"`
	Error        string    `json:"error,omitempty"`
}

type confirmResponse struct {
	Recorded int                `json:"recorded"`
	Failed   int                `json:"failed"`
	Results  []confirmResultDTO `json:"results"`
}

// confirmPayments records reviewed statement credits as payments. One bad
// row does not abort the rest of the batch.
func (h *Handler) confirmPayments(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	resp := confirmResponse{
		Results: make([]confirmResultDTO, 0, len(req.Payments)),
	}

	for _, p := range req.Payments {
		result := confirmResultDTO{StudentFeeID: p.StudentFeeID}

		_, err := h.ledgerSvc.RecordPayment(r.Context(), ledger.RecordPaymentParams{
			StudentFeeID:      p.StudentFeeID,
			Amount:            p.Amount,
			Method:            "bank_import",
			ExternalReference: p.ExternalReference,
		})

		switch {
		case err == nil:
			result.Recorded = true
			resp.Recorded++
		case errors.Is(err, ledger.ErrNotFound):
			result.Error = "student fee not found"
			resp.Failed++
		default:
			result.Error = err.Error()
			resp.Failed++
		}

		resp.Results = append(resp.Results, result)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
