package academics

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bursarhq/bursar/internal/academics"
)

type Handler struct {
	svc *academics.Service
}

func NewHandler(svc *academics.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/terms/current", h.current)
	r.Get("/terms/recommended", h.recommended)
	r.Get("/terms/{id}", h.get)
	r.Get("/terms/{id}/next", h.next)
	r.Get("/terms/{id}/previous", h.previous)
	r.Get("/terms/{id}/validation", h.validation)
	r.Post("/terms/cache/invalidate", h.invalidate)
}

type termResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	AcademicYearID uuid.UUID  `json:"academic_year_id"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        time.Time  `json:"end_date"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func toTermResponse(t *academics.Term) termResponse {
	return termResponse{
		ID:             t.ID,
		Name:           t.Name,
		AcademicYearID: t.AcademicYearID,
		StartDate:      t.StartDate,
		EndDate:        t.EndDate,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	term, err := h.svc.CurrentTerm(r.Context())
	if err != nil {
		if errors.Is(err, academics.ErrNotFound) {
			http.Error(w, "no term contains today's date", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, toTermResponse(term))
}

func (h *Handler) recommended(w http.ResponseWriter, r *http.Request) {
	term, err := h.svc.RecommendedTerm(r.Context())
	if err != nil {
		if errors.Is(err, academics.ErrNotFound) {
			http.Error(w, "no current or upcoming term", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, toTermResponse(term))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	term, ok := h.termFromPath(w, r)
	if !ok {
		return
	}

	writeJSON(w, toTermResponse(term))
}

func (h *Handler) next(w http.ResponseWriter, r *http.Request) {
	term, ok := h.termFromPath(w, r)
	if !ok {
		return
	}

	next, err := h.svc.NextTerm(r.Context(), term)
	if err != nil {
		if errors.Is(err, academics.ErrNotFound) {
			http.Error(w, "no term follows this one", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, toTermResponse(next))
}

func (h *Handler) previous(w http.ResponseWriter, r *http.Request) {
	term, ok := h.termFromPath(w, r)
	if !ok {
		return
	}

	prev, err := h.svc.PreviousTerm(r.Context(), term)
	if err != nil {
		if errors.Is(err, academics.ErrNotFound) {
			http.Error(w, "no term precedes this one", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, toTermResponse(prev))
}

func (h *Handler) validation(w http.ResponseWriter, r *http.Request) {
	term, ok := h.termFromPath(w, r)
	if !ok {
		return
	}

	writeJSON(w, h.svc.ValidateTermForFeeAssignment(term))
}

func (h *Handler) invalidate(w http.ResponseWriter, r *http.Request) {
	h.svc.InvalidateCurrentTerm()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) termFromPath(w http.ResponseWriter, r *http.Request) (*academics.Term, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return nil, false
	}

	term, err := h.svc.Term(r.Context(), id)
	if err != nil {
		if errors.Is(err, academics.ErrNotFound) {
			http.Error(w, "term not found", http.StatusNotFound)
			return nil, false
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return nil, false
	}

	return term, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
