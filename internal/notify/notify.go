package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Kind identifies what happened; delivery templates hang off it.
type Kind string

const (
	KindPaymentFailed    Kind = "invoice_payment_failed"
	KindPaymentCanceled  Kind = "invoice_payment_canceled"
	KindPaymentSucceeded Kind = "invoice_payment_succeeded"
	KindInvoiceSent      Kind = "invoice_sent"
	KindMatterShared     Kind = "matter_shared"
)

// Notifier delivers a notification about the referenced entity to a
// recipient. Delivery is fire-and-forget: implementations must log
// failures and never surface them to the caller, so a broken mail
// gateway cannot block a lifecycle transition.
type Notifier interface {
	Notify(ctx context.Context, kind Kind, recipient uuid.UUID, ref uuid.UUID)
}

// Log is a Notifier that records notifications in the structured log.
// It stands in for the real delivery channels (email, push) which live
// outside this service.
type Log struct{}

func (Log) Notify(_ context.Context, kind Kind, recipient uuid.UUID, ref uuid.UUID) {
	slog.Info("notification", "kind", kind, "recipient", recipient, "ref", ref)
}
