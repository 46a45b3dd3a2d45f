package matching

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bursarhq/bursar/internal/matching"
)

type Handler struct {
	svc *matching.Service
}

func NewHandler(svc *matching.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/suggest", h.suggest)
	r.Post("/", h.learn)
}

type suggestResponse struct {
	Narrative       string     `json:"narrative"`
	StudentID       *uuid.UUID `json:"student_id,omitempty"`
	AdmissionNumber string     `json:"admission_number,omitempty"`
	FullName        string     `json:"full_name,omitempty"`
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	narrative := r.URL.Query().Get("narrative")
	if narrative == "" {
		http.Error(w, "narrative query parameter is required", http.StatusBadRequest)
		return
	}

	st, err := h.svc.Suggest(r.Context(), narrative)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := suggestResponse{Narrative: narrative}

	if st != nil {
		resp.StudentID = &st.ID
		resp.AdmissionNumber = st.AdmissionNumber
		resp.FullName = st.FullName
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type learnRequest struct {
	RawPattern      string `json:"raw_pattern"`
	AdmissionNumber string `json:"admission_number"`
}

func (h *Handler) learn(w http.ResponseWriter, r *http.Request) {
	var req learnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.RawPattern == "" || req.AdmissionNumber == "" {
		http.Error(w, "raw_pattern and admission_number are required", http.StatusBadRequest)
		return
	}

	if err := h.svc.Learn(r.Context(), req.RawPattern, req.AdmissionNumber); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
