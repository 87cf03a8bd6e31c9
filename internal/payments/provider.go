package payments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound means the provider no longer knows the referenced
// invoice, typically because it was deleted on the provider side. The
// caller is expected to drop the stale local reference and recreate.
var ErrNotFound = errors.New("provider invoice not found")

// Invoice is the provider-side representation of an invoice.
type Invoice struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Status string `json:"status"`
}

type CreateInvoiceParams struct {
	LocalID     uuid.UUID       `json:"external_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
}

type ItemParams struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Provider is the payment collaborator the invoice lifecycle calls out
// to. All calls are all-or-nothing from the engine's point of view: an
// error aborts the owning transition and nothing is persisted.
type Provider interface {
	CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*Invoice, error)
	CreateInvoiceItem(ctx context.Context, providerID string, item ItemParams) error
	GetInvoice(ctx context.Context, providerID string) (*Invoice, error)
	SendInvoice(ctx context.Context, providerID string) (*Invoice, error)
	PayInvoice(ctx context.Context, providerID string) (*Invoice, error)
}
