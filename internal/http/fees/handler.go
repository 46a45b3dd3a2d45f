package fees

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bursarhq/bursar/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/generate", h.generate)
	r.Get("/generate/preview", h.preview)
	r.Post("/students/{studentID}", h.createForStudent)
	r.Get("/students/{studentID}/history", h.history)
	r.Get("/students/{studentID}/statement", h.statement)
	r.Get("/{id}", h.get)
	r.Post("/{id}/payments", h.recordPayment)
	r.Post("/{id}/overpayment", h.processOverpayment)
}

type createFeeRequest struct {
	AcademicYearID uuid.UUID `json:"academic_year_id"`
	TermID         uuid.UUID `json:"term_id"`
}

type createFeeResponse struct {
	Fee     feeResponse `json:"fee"`
	Created bool        `json:"created"`
}

func (h *Handler) createForStudent(w http.ResponseWriter, r *http.Request) {
	studentID, err := uuid.Parse(chi.URLParam(r, "studentID"))
	if err != nil {
		http.Error(w, "invalid student id", http.StatusBadRequest)
		return
	}

	var req createFeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fee, created, err := h.svc.CreateFeeForStudent(r.Context(), studentID, req.AcademicYearID, req.TermID)
	if err != nil {
		if errors.Is(err, ledger.ErrNoFeeStructure) {
			http.Error(w, "no active fee structure for the student's grade and term", http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if created {
		w.WriteHeader(http.StatusCreated)
	}

	if err := json.NewEncoder(w).Encode(createFeeResponse{Fee: toFeeResponse(fee), Created: created}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type generateRequest struct {
	GradeID *uuid.UUID `json:"grade_id,omitempty"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.BulkCreateFeesForCurrentTerm(r.Context(), req.GradeID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	var gradeID *uuid.UUID

	if s := r.URL.Query().Get("grade_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid grade_id", http.StatusBadRequest)
			return
		}

		gradeID = &id
	}

	preview, err := h.svc.PreviewFeeCreation(r.Context(), gradeID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(preview); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	fee, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			http.Error(w, "student fee not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toFeeResponse(fee)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type recordPaymentRequest struct {
	Amount            int64  `json:"amount"`
	Method            string `json:"method,omitempty"`
	ExternalReference string `json:"external_reference,omitempty"`
	ReceiptNumber     string `json:"receipt_number,omitempty"`
}

type paymentResponse struct {
	Fee         feeResponse               `json:"fee"`
	Transaction transactionResponse       `json:"transaction"`
	Overpayment *ledger.OverpaymentResult `json:"overpayment,omitempty"`
	ForwardErr  string                    `json:"forward_error,omitempty"`
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req recordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.RecordPayment(r.Context(), ledger.RecordPaymentParams{
		StudentFeeID:      id,
		Amount:            req.Amount,
		Method:            req.Method,
		ExternalReference: req.ExternalReference,
		ReceiptNumber:     req.ReceiptNumber,
	})
	if err != nil {
		if result == nil {
			if errors.Is(err, ledger.ErrNotFound) {
				http.Error(w, "student fee not found", http.StatusNotFound)
				return
			}

			http.Error(w, err.Error(), http.StatusUnprocessableEntity)

			return
		}

		// The payment committed; only the carry-forward failed. Report both.
		resp := paymentResponse{
			Fee:         toFeeResponse(result.Fee),
			Transaction: toTransactionResponse(result.Transaction),
			ForwardErr:  err.Error(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	resp := paymentResponse{
		Fee:         toFeeResponse(result.Fee),
		Transaction: toTransactionResponse(result.Transaction),
		Overpayment: result.Overpayment,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) processOverpayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	result, err := h.svc.ProcessOverpayment(r.Context(), id)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			http.Error(w, "student fee not found", http.StatusNotFound)
			return
		}

		if errors.Is(err, ledger.ErrNoFeeStructure) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	studentID, err := uuid.Parse(chi.URLParam(r, "studentID"))
	if err != nil {
		http.Error(w, "invalid student id", http.StatusBadRequest)
		return
	}

	academicYearID, ok := optionalYear(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.GetPaymentHistory(r.Context(), studentID, academicYearID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toHistoryResponse(entries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) statement(w http.ResponseWriter, r *http.Request) {
	studentID, err := uuid.Parse(chi.URLParam(r, "studentID"))
	if err != nil {
		http.Error(w, "invalid student id", http.StatusBadRequest)
		return
	}

	academicYearID, ok := optionalYear(w, r)
	if !ok {
		return
	}

	statement, err := h.svc.GeneratePaymentStatement(r.Context(), studentID, academicYearID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(statement); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// optionalYear parses the academic_year_id query parameter. Writes the
// error response itself and returns ok=false when the value is malformed.
func optionalYear(w http.ResponseWriter, r *http.Request) (*uuid.UUID, bool) {
	s := r.URL.Query().Get("academic_year_id")
	if s == "" {
		return nil, true
	}

	id, err := uuid.Parse(s)
	if err != nil {
		http.Error(w, "invalid academic_year_id", http.StatusBadRequest)
		return nil, false
	}

	return &id, true
}
