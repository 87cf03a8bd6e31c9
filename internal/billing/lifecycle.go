package billing

import (
	"context"
	"errors"

	"github.com/MrJamesThe3rd/barrister/internal/matter"
	"github.com/MrJamesThe3rd/barrister/internal/notify"
)

var (
	// ErrNotAllowed means the actor may not drive this invoice.
	ErrNotAllowed = errors.New("actor is not allowed to change invoice status")
	// ErrInvalidInvoiceTransition means the invoice is not in a source
	// state of the requested transition.
	ErrInvalidInvoiceTransition = errors.New("invalid invoice transition")
	// ErrInvoiceNotEditable means payment progress has frozen the invoice.
	ErrInvoiceNotEditable = errors.New("invoice is being paid or is already paid")
	// ErrNoBillableEntries rejects sending an invoice with nothing on it.
	ErrNoBillableEntries = errors.New("invoice doesn't have any billable entries")

	// ErrCannotSendInvoice surfaces a provider failure during send; the
	// invoice status stays untouched.
	ErrCannotSendInvoice = errors.New("cannot send invoice")
	// ErrCannotPayInvoice surfaces a provider failure during pay.
	ErrCannotPayInvoice = errors.New("cannot pay invoice")
)

// InvoiceTransitionName identifies a row of the invoice status table.
type InvoiceTransitionName string

const (
	TransitionSend InvoiceTransitionName = "send"
	TransitionPay  InvoiceTransitionName = "pay"
	TransitionVoid InvoiceTransitionName = "void"
)

// invoiceTransition is one row of the invoice status machine. The guard
// runs before anything else; the effect runs before the status field is
// persisted, inside the same matter transaction, so an effect failure
// leaves the stored status at its pre-transition value. after hooks are
// fire-and-forget and run once the write has committed.
type invoiceTransition struct {
	sources []InvoiceStatus
	target  InvoiceStatus
	guard   func(s *Service, inv *Invoice, m *matter.Matter, actor *actorRef) error
	effect  func(s *Service, ctx context.Context, tx MatterTx, inv *Invoice) error
	after   func(s *Service, ctx context.Context, inv *Invoice, m *matter.Matter)
}

var invoiceTransitions = map[InvoiceTransitionName]invoiceTransition{
	TransitionSend: {
		sources: []InvoiceStatus{InvoiceStatusDraft},
		target:  InvoiceStatusOpen,
		guard:   (*Service).guardSend,
		effect:  (*Service).sendToProvider,
		after: func(s *Service, ctx context.Context, inv *Invoice, m *matter.Matter) {
			s.notifier.Notify(ctx, notify.KindInvoiceSent, m.ClientID, inv.ID)
		},
	},
	TransitionPay: {
		sources: []InvoiceStatus{InvoiceStatusOpen, InvoiceStatusOverdue},
		target:  InvoiceStatusPaid,
		effect:  (*Service).payAtProvider,
	},
	TransitionVoid: {
		sources: []InvoiceStatus{InvoiceStatusDraft, InvoiceStatusOpen},
		target:  InvoiceStatusVoided,
		guard:   (*Service).guardActorOnMatter,
	},
}

// PaymentTransitionName identifies a row of the payment sub-state table.
type PaymentTransitionName string

const (
	PaymentStart    PaymentTransitionName = "start_payment_process"
	PaymentFail     PaymentTransitionName = "fail_payment"
	PaymentCancel   PaymentTransitionName = "cancel_payment"
	PaymentFinalize PaymentTransitionName = "finalize_payment"
)

// paymentTransition mirrors invoiceTransition for the payment sub-state
// machine owned by the payment collaborator. The invoice only reacts
// through the effect and after hooks.
type paymentTransition struct {
	sources []PaymentStatus
	target  PaymentStatus
	guard   func(s *Service, inv *Invoice, m *matter.Matter, actor *actorRef) error
	effect  func(s *Service, ctx context.Context, tx MatterTx, inv *Invoice) error
	after   func(s *Service, ctx context.Context, inv *Invoice, m *matter.Matter)
}

var paymentTransitions = map[PaymentTransitionName]paymentTransition{
	PaymentStart: {
		sources: []PaymentStatus{PaymentStatusNotStarted, PaymentStatusInProgress, PaymentStatusFailed},
		target:  PaymentStatusInProgress,
		guard:   (*Service).guardStartPayment,
		effect:  (*Service).stripCompetingAttachments,
	},
	PaymentFail: {
		sources: []PaymentStatus{PaymentStatusInProgress},
		target:  PaymentStatusFailed,
		after: func(s *Service, ctx context.Context, inv *Invoice, m *matter.Matter) {
			s.notifier.Notify(ctx, notify.KindPaymentFailed, m.ClientID, inv.ID)
		},
	},
	PaymentCancel: {
		sources: []PaymentStatus{PaymentStatusInProgress, PaymentStatusFailed},
		target:  PaymentStatusCanceled,
		after: func(s *Service, ctx context.Context, inv *Invoice, m *matter.Matter) {
			s.notifier.Notify(ctx, notify.KindPaymentCanceled, m.ClientID, inv.ID)
		},
	},
	PaymentFinalize: {
		sources: []PaymentStatus{PaymentStatusInProgress, PaymentStatusFailed},
		target:  PaymentStatusPaid,
		effect:  (*Service).markInvoicePaid,
		after: func(s *Service, ctx context.Context, inv *Invoice, m *matter.Matter) {
			s.notifier.Notify(ctx, notify.KindPaymentSucceeded, m.ClientID, inv.ID)
			s.notifier.Notify(ctx, notify.KindPaymentSucceeded, m.AttorneyID, inv.ID)
		},
	},
}

func (t invoiceTransition) allowsSource(s InvoiceStatus) bool {
	for _, src := range t.sources {
		if src == s {
			return true
		}
	}

	return false
}

func (t paymentTransition) allowsSource(s PaymentStatus) bool {
	for _, src := range t.sources {
		if src == s {
			return true
		}
	}

	return false
}
