package matter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/barrister/internal/auth"
	"github.com/MrJamesThe3rd/barrister/internal/matter"
)

type Handler struct {
	svc *matter.Service
}

func NewHandler(svc *matter.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Post("/{id}/open", h.open)
	r.Post("/{id}/refer", h.sendReferral)
	r.Post("/{id}/accept-referral", h.acceptReferral)
	r.Post("/{id}/ignore-referral", h.ignoreReferral)
	r.Post("/{id}/close", h.close)
	r.Post("/{id}/share", h.share)
}

type createMatterRequest struct {
	ClientID    uuid.UUID       `json:"client_id"`
	Code        string          `json:"code"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Rate        decimal.Decimal `json:"rate"`
	FeeKind     matter.FeeKind  `json:"fee_kind"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserID(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createMatterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.svc.Create(r.Context(), matter.CreateParams{
		ClientID:    req.ClientID,
		AttorneyID:  actor,
		Code:        req.Code,
		Title:       req.Title,
		Description: req.Description,
		Rate:        req.Rate,
		FeeKind:     req.FeeKind,
		StartDate:   req.StartDate,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(m)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := matter.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		status := matter.Status(s)
		filter.Status = &status
	}

	if s := r.URL.Query().Get("fee_kind"); s != "" {
		feeKind := matter.FeeKind(s)
		filter.FeeKind = &feeKind
	}

	if actor, err := auth.UserID(r.Context()); err == nil {
		filter.UserID = &actor
	}

	matters, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(matters)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, matter.ErrNotFound) {
			http.Error(w, "matter not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(m)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateMatterRequest struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
	FeeKind     *matter.FeeKind  `json:"fee_kind,omitempty"`
	StartDate   *time.Time       `json:"start_date,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserID(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateMatterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, matter.ErrNotFound) {
			http.Error(w, "matter not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Title != nil {
		m.Title = *req.Title
	}

	if req.Description != nil {
		m.Description = *req.Description
	}

	if req.Rate != nil {
		m.Rate = *req.Rate
	}

	if req.FeeKind != nil {
		m.FeeKind = *req.FeeKind
	}

	if req.StartDate != nil {
		m.StartDate = req.StartDate
	}

	if err := h.svc.Update(r.Context(), actor, m); err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(m)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) open(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Open)
}

func (h *Handler) acceptReferral(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.AcceptReferral)
}

func (h *Handler) ignoreReferral(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.IgnoreReferral)
}

func (h *Handler) close(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Close)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, actor, matterID uuid.UUID) (*matter.Matter, error)) {
	actor, err := auth.UserID(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	m, err := fn(r.Context(), actor, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(m)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type sendReferralRequest struct {
	AttorneyID uuid.UUID `json:"attorney_id"`
	Message    string    `json:"message"`
}

func (h *Handler) sendReferral(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserID(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req sendReferralRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.svc.SendReferral(r.Context(), actor, id, req.AttorneyID, req.Message)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(m)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type shareRequest struct {
	UserIDs []uuid.UUID `json:"user_ids"`
}

func (h *Handler) share(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserID(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req shareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.svc.Share(r.Context(), actor, id, req.UserIDs)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(m)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, matter.ErrNotFound):
		http.Error(w, "matter not found", http.StatusNotFound)
	case errors.Is(err, matter.ErrNotAllowed):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, matter.ErrInvalidTransition), errors.Is(err, matter.ErrNoReferral):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
