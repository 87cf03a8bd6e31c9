package invoice

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/barrister/internal/auth"
	"github.com/MrJamesThe3rd/barrister/internal/billing"
)

type Handler struct {
	svc *billing.Service
}

func NewHandler(svc *billing.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Post("/{id}/send", h.send)
	r.Post("/{id}/void", h.void)
	r.Post("/{id}/payment/start", h.startPayment)
	r.Post("/{id}/payment/fail", h.failPayment)
	r.Post("/{id}/payment/cancel", h.cancelPayment)
	r.Post("/{id}/payment/finalize", h.finalizePayment)
}

type invoiceRequest struct {
	MatterID    uuid.UUID  `json:"matter_id"`
	Title       string     `json:"title"`
	Note        string     `json:"note"`
	PeriodStart time.Time  `json:"period_start"`
	PeriodEnd   time.Time  `json:"period_end"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserID(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req invoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inv, err := h.svc.CreateInvoice(r.Context(), actor, billing.InvoiceCreateParams{
		MatterID:    req.MatterID,
		Title:       req.Title,
		Note:        req.Note,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		DueDate:     req.DueDate,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := billing.InvoiceFilter{}

	if s := r.URL.Query().Get("matter_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.MatterID = &id
		}
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := billing.InvoiceStatus(s)
		filter.Status = &status
	}

	if s := r.URL.Query().Get("payment_status"); s != "" {
		paymentStatus := billing.PaymentStatus(s)
		filter.PaymentStatus = &paymentStatus
	}

	invoices, err := h.svc.ListInvoices(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(invoices)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.GetInvoice(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateInvoiceRequest struct {
	Title       *string    `json:"title,omitempty"`
	Note        *string    `json:"note,omitempty"`
	PeriodStart *time.Time `json:"period_start,omitempty"`
	PeriodEnd   *time.Time `json:"period_end,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
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

	var req updateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	current, err := h.svc.GetInvoice(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	params := billing.InvoiceUpdateParams{
		Title:       current.Title,
		Note:        current.Note,
		PeriodStart: current.PeriodStart,
		PeriodEnd:   current.PeriodEnd,
		DueDate:     current.DueDate,
	}

	if req.Title != nil {
		params.Title = *req.Title
	}

	if req.Note != nil {
		params.Note = *req.Note
	}

	if req.PeriodStart != nil {
		params.PeriodStart = *req.PeriodStart
	}

	if req.PeriodEnd != nil {
		params.PeriodEnd = *req.PeriodEnd
	}

	if req.DueDate != nil {
		params.DueDate = req.DueDate
	}

	inv, err := h.svc.UpdateInvoice(r.Context(), actor, id, params)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	h.actorTransition(w, r, h.svc.Send)
}

func (h *Handler) void(w http.ResponseWriter, r *http.Request) {
	h.actorTransition(w, r, h.svc.Void)
}

func (h *Handler) startPayment(w http.ResponseWriter, r *http.Request) {
	h.actorTransition(w, r, h.svc.StartPaymentProcess)
}

func (h *Handler) failPayment(w http.ResponseWriter, r *http.Request) {
	h.externalTransition(w, r, h.svc.FailPayment)
}

func (h *Handler) cancelPayment(w http.ResponseWriter, r *http.Request) {
	h.externalTransition(w, r, h.svc.CancelPayment)
}

func (h *Handler) finalizePayment(w http.ResponseWriter, r *http.Request) {
	h.externalTransition(w, r, h.svc.FinalizePayment)
}

func (h *Handler) actorTransition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, actor, invoiceID uuid.UUID) (*billing.Invoice, error)) {
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

	inv, err := fn(r.Context(), actor, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) externalTransition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, invoiceID uuid.UUID) (*billing.Invoice, error)) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv, err := fn(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, billing.ErrInvoiceNotFound):
		http.Error(w, "invoice not found", http.StatusNotFound)
	case errors.Is(err, billing.ErrNotAllowed):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, billing.ErrInvalidInvoiceTransition),
		errors.Is(err, billing.ErrInvoiceNotEditable),
		errors.Is(err, billing.ErrNoBillableEntries):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, billing.ErrCannotSendInvoice), errors.Is(err, billing.ErrCannotPayInvoice):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
