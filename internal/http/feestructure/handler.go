package feestructure

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bursarhq/bursar/internal/feestructure"
)

type Handler struct {
	svc *feestructure.Service
}

func NewHandler(svc *feestructure.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
}

type structureResponse struct {
	ID                uuid.UUID             `json:"id"`
	GradeID           uuid.UUID             `json:"grade_id"`
	TermID            uuid.UUID             `json:"term_id"`
	AcademicYearID    uuid.UUID             `json:"academic_year_id"`
	BasicFee          int64                 `json:"basic_fee"`
	AdditionalCharges []feestructure.Charge `json:"additional_charges"`
	TotalFee          int64                 `json:"total_fee"`
	IsActive          bool                  `json:"is_active"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         *time.Time            `json:"updated_at,omitempty"`
}

func toResponse(fs *feestructure.FeeStructure) structureResponse {
	return structureResponse{
		ID:                fs.ID,
		GradeID:           fs.GradeID,
		TermID:            fs.TermID,
		AcademicYearID:    fs.AcademicYearID,
		BasicFee:          fs.BasicFee,
		AdditionalCharges: fs.AdditionalCharges,
		TotalFee:          fs.TotalFee,
		IsActive:          fs.IsActive,
		CreatedAt:         fs.CreatedAt,
		UpdatedAt:         fs.UpdatedAt,
	}
}

type createRequest struct {
	GradeID           uuid.UUID             `json:"grade_id"`
	TermID            uuid.UUID             `json:"term_id"`
	AcademicYearID    uuid.UUID             `json:"academic_year_id"`
	BasicFee          int64                 `json:"basic_fee"`
	AdditionalCharges []feestructure.Charge `json:"additional_charges,omitempty"`
	IsActive          bool                  `json:"is_active"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fs, err := h.svc.Create(r.Context(), feestructure.CreateParams{
		GradeID:           req.GradeID,
		TermID:            req.TermID,
		AcademicYearID:    req.AcademicYearID,
		BasicFee:          req.BasicFee,
		AdditionalCharges: req.AdditionalCharges,
		IsActive:          req.IsActive,
	})
	if err != nil {
		if errors.Is(err, feestructure.ErrDuplicate) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}

		http.Error(w, err.Error(), http.StatusUnprocessableEntity)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(fs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var filter feestructure.ListFilter

	q := r.URL.Query()

	if s := q.Get("grade_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid grade_id", http.StatusBadRequest)
			return
		}

		filter.GradeID = &id
	}

	if s := q.Get("term_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid term_id", http.StatusBadRequest)
			return
		}

		filter.TermID = &id
	}

	if s := q.Get("academic_year_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid academic_year_id", http.StatusBadRequest)
			return
		}

		filter.AcademicYearID = &id
	}

	filter.ActiveOnly = q.Get("active") == "true"

	structures, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]structureResponse, 0, len(structures))
	for _, fs := range structures {
		resp = append(resp, toResponse(fs))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	fs, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, feestructure.ErrNotFound) {
			http.Error(w, "fee structure not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(fs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateRequest struct {
	BasicFee          *int64                 `json:"basic_fee,omitempty"`
	AdditionalCharges *[]feestructure.Charge `json:"additional_charges,omitempty"`
	IsActive          *bool                  `json:"is_active,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fs, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, feestructure.ErrNotFound) {
			http.Error(w, "fee structure not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.BasicFee != nil {
		fs.BasicFee = *req.BasicFee
	}

	if req.AdditionalCharges != nil {
		fs.AdditionalCharges = *req.AdditionalCharges
	}

	if req.IsActive != nil {
		fs.IsActive = *req.IsActive
	}

	if err := h.svc.Update(r.Context(), fs); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(fs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
