package billing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/barrister/internal/notify"
	"github.com/MrJamesThe3rd/barrister/internal/payments"
)

// actorRef wraps the acting user for transition guards. A nil *actorRef
// means the transition was triggered by an external collaborator and
// carries no user to authorize.
type actorRef struct {
	id uuid.UUID
}

type Service struct {
	repo     Repository
	engine   *Engine
	provider payments.Provider
	notifier notify.Notifier
	dueDays  int
	grace    time.Duration
	now      func() time.Time
}

func NewService(repo Repository, provider payments.Provider, notifier notify.Notifier, dueDays int, grace time.Duration) *Service {
	return &Service{
		repo:     repo,
		engine:   NewEngine(),
		provider: provider,
		notifier: notifier,
		dueDays:  dueDays,
		grace:    grace,
		now:      time.Now,
	}
}

// WithClock overrides the reference clock, mainly for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type EntryCreateParams struct {
	MatterID    uuid.UUID
	CreatedBy   uuid.UUID
	Description string
	Kind        Kind
	Date        time.Time
	TimeSpent   time.Duration
	HourlyRate  decimal.Decimal
	Rate        decimal.Decimal
	Quantity    int64
	TotalAmount decimal.Decimal
	IsBillable  bool
}

type EntryUpdateParams struct {
	Description string
	Date        time.Time
	TimeSpent   time.Duration
	HourlyRate  decimal.Decimal
	Rate        decimal.Decimal
	Quantity    int64
	TotalAmount decimal.Decimal
	IsBillable  bool
}

// CreateEntry persists a new billable entry and reconciles its invoice
// attachments inside the same transaction: the write is not considered
// successful until reconciliation has completed.
func (s *Service) CreateEntry(ctx context.Context, params EntryCreateParams) (*Entry, error) {
	e := &Entry{
		MatterID:    params.MatterID,
		CreatedBy:   params.CreatedBy,
		Description: params.Description,
		Kind:        params.Kind,
		Date:        DateOnly(params.Date),
		TimeSpent:   params.TimeSpent,
		HourlyRate:  params.HourlyRate,
		Rate:        params.Rate,
		Quantity:    params.Quantity,
		TotalAmount: params.TotalAmount,
		IsBillable:  params.IsBillable,
	}

	tx, err := s.repo.BeginMatterTx(ctx, params.MatterID)
	if err != nil {
		return nil, fmt.Errorf("beginning matter tx: %w", err)
	}
	defer tx.Rollback()

	m, err := tx.GetMatter(ctx, params.MatterID)
	if err != nil {
		return nil, err
	}

	if e.CreatedBy == uuid.Nil {
		e.CreatedBy = m.AttorneyID
	}

	if err := tx.CreateEntry(ctx, e); err != nil {
		return nil, err
	}

	if err := s.engine.OnEntrySaved(ctx, tx, m, e, true, false, s.now()); err != nil {
		return nil, fmt.Errorf("reconciling entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing entry: %w", err)
	}

	return e, nil
}

// UpdateEntry mutates an entry that is still available for editing and
// reconciles attachments when the date moved.
func (s *Service) UpdateEntry(ctx context.Context, id uuid.UUID, params EntryUpdateParams) (*Entry, error) {
	current, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginMatterTx(ctx, current.MatterID)
	if err != nil {
		return nil, fmt.Errorf("beginning matter tx: %w", err)
	}
	defer tx.Rollback()

	// Re-read under the matter lock so concurrent reconciliations
	// cannot interleave with this one.
	e, err := tx.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	editable, err := tx.EntryEditable(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("checking entry editability: %w", err)
	}

	if !editable {
		return nil, ErrEntryLocked
	}

	m, err := tx.GetMatter(ctx, e.MatterID)
	if err != nil {
		return nil, err
	}

	date := DateOnly(params.Date)
	dateChanged := !e.Date.Equal(date)

	e.Description = params.Description
	e.Date = date
	e.TimeSpent = params.TimeSpent
	e.HourlyRate = params.HourlyRate
	e.Rate = params.Rate
	e.Quantity = params.Quantity
	e.TotalAmount = params.TotalAmount
	e.IsBillable = params.IsBillable

	if err := tx.UpdateEntry(ctx, e); err != nil {
		return nil, err
	}

	if err := s.engine.OnEntrySaved(ctx, tx, m, e, false, dateChanged, s.now()); err != nil {
		return nil, fmt.Errorf("reconciling entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing entry: %w", err)
	}

	return e, nil
}

// DeleteEntry removes an entry that is still available for editing,
// dropping its attachment links with it.
func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	current, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		return err
	}

	tx, err := s.repo.BeginMatterTx(ctx, current.MatterID)
	if err != nil {
		return fmt.Errorf("beginning matter tx: %w", err)
	}
	defer tx.Rollback()

	editable, err := tx.EntryEditable(ctx, id)
	if err != nil {
		return fmt.Errorf("checking entry editability: %w", err)
	}

	if !editable {
		return ErrEntryLocked
	}

	if err := tx.DeleteAttachmentsByEntry(ctx, id, nil); err != nil {
		return fmt.Errorf("detaching entry: %w", err)
	}

	if err := tx.DeleteEntry(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing entry deletion: %w", err)
	}

	return nil
}

func (s *Service) GetEntry(ctx context.Context, id uuid.UUID) (*Entry, error) {
	return s.repo.GetEntry(ctx, id)
}

func (s *Service) ListEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, filter)
}

type InvoiceCreateParams struct {
	MatterID    uuid.UUID
	Title       string
	Note        string
	PeriodStart time.Time
	PeriodEnd   time.Time
	DueDate     *time.Time
}

type InvoiceUpdateParams struct {
	Title       string
	Note        string
	PeriodStart time.Time
	PeriodEnd   time.Time
	DueDate     *time.Time
}

// CreateInvoice persists a manually created draft invoice and attaches
// the matching entries inside the same transaction.
func (s *Service) CreateInvoice(ctx context.Context, actor uuid.UUID, params InvoiceCreateParams) (*Invoice, error) {
	tx, err := s.repo.BeginMatterTx(ctx, params.MatterID)
	if err != nil {
		return nil, fmt.Errorf("beginning matter tx: %w", err)
	}
	defer tx.Rollback()

	m, err := tx.GetMatter(ctx, params.MatterID)
	if err != nil {
		return nil, err
	}

	if !m.CanChangeStatus(actor) {
		return nil, ErrNotAllowed
	}

	inv := &Invoice{
		MatterID:      params.MatterID,
		CreatedBy:     actor,
		Title:         params.Title,
		Note:          params.Note,
		PeriodStart:   params.PeriodStart,
		PeriodEnd:     params.PeriodEnd,
		Status:        InvoiceStatusDraft,
		PaymentStatus: PaymentStatusNotStarted,
		DueDate:       params.DueDate,
	}

	if err := tx.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	if err := s.engine.OnInvoiceSaved(ctx, tx, m, inv, true, false, s.now()); err != nil {
		return nil, fmt.Errorf("reconciling invoice: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing invoice: %w", err)
	}

	return inv, nil
}

// UpdateInvoice mutates an editable invoice and reconciles attachments
// when the period bounds moved.
func (s *Service) UpdateInvoice(ctx context.Context, actor, id uuid.UUID, params InvoiceUpdateParams) (*Invoice, error) {
	current, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginMatterTx(ctx, current.MatterID)
	if err != nil {
		return nil, fmt.Errorf("beginning matter tx: %w", err)
	}
	defer tx.Rollback()

	inv, err := tx.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	m, err := tx.GetMatter(ctx, inv.MatterID)
	if err != nil {
		return nil, err
	}

	if !m.CanChangeStatus(actor) {
		return nil, ErrNotAllowed
	}

	if !inv.AvailableForEditing() {
		return nil, ErrInvoiceNotEditable
	}

	periodChanged := !inv.PeriodStart.Equal(params.PeriodStart) || !inv.PeriodEnd.Equal(params.PeriodEnd)

	inv.Title = params.Title
	inv.Note = params.Note
	inv.PeriodStart = params.PeriodStart
	inv.PeriodEnd = params.PeriodEnd
	inv.DueDate = params.DueDate

	if err := tx.UpdateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	if err := s.engine.OnInvoiceSaved(ctx, tx, m, inv, false, periodChanged, s.now()); err != nil {
		return nil, fmt.Errorf("reconciling invoice: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing invoice: %w", err)
	}

	return inv, nil
}

// GetInvoice loads an invoice for representation, correcting the
// derived overdue status first.
func (s *Service) GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.RefreshDerivedStatus(ctx, inv, s.now()); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) ListInvoices(ctx context.Context, filter InvoiceFilter) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx, filter)
}

// RefreshDerivedStatus corrects an open invoice past its due date to
// overdue and persists the correction. It is idempotent and safe to
// call from any read path; overdue is never reached through the
// transition table.
func (s *Service) RefreshDerivedStatus(ctx context.Context, inv *Invoice, asOf time.Time) error {
	if inv.Status != InvoiceStatusOpen || inv.DueDate == nil {
		return nil
	}

	if !inv.DueDate.Before(asOf) {
		return nil
	}

	if err := s.repo.MarkOverdue(ctx, inv.ID); err != nil {
		return fmt.Errorf("marking invoice overdue: %w", err)
	}

	inv.Status = InvoiceStatusOverdue

	return nil
}

// Send finalizes the invoice with the payment provider and opens it.
func (s *Service) Send(ctx context.Context, actor, invoiceID uuid.UUID) (*Invoice, error) {
	return s.statusTransition(ctx, invoiceID, TransitionSend, &actorRef{id: actor})
}

// Pay marks the invoice paid; it is triggered externally once the
// payment collaborator reports success.
func (s *Service) Pay(ctx context.Context, invoiceID uuid.UUID) (*Invoice, error) {
	return s.statusTransition(ctx, invoiceID, TransitionPay, nil)
}

// Void administratively voids a draft or open invoice.
func (s *Service) Void(ctx context.Context, actor, invoiceID uuid.UUID) (*Invoice, error) {
	return s.statusTransition(ctx, invoiceID, TransitionVoid, &actorRef{id: actor})
}

// StartPaymentProcess reacts to the client beginning payment: the
// invoice takes exclusive ownership of its entries by stripping their
// links to competing invoices.
func (s *Service) StartPaymentProcess(ctx context.Context, actor, invoiceID uuid.UUID) (*Invoice, error) {
	return s.paymentTransition(ctx, invoiceID, PaymentStart, &actorRef{id: actor})
}

// FailPayment reacts to the collaborator reporting a failed payment.
func (s *Service) FailPayment(ctx context.Context, invoiceID uuid.UUID) (*Invoice, error) {
	return s.paymentTransition(ctx, invoiceID, PaymentFail, nil)
}

// CancelPayment reacts to the payment being canceled.
func (s *Service) CancelPayment(ctx context.Context, invoiceID uuid.UUID) (*Invoice, error) {
	return s.paymentTransition(ctx, invoiceID, PaymentCancel, nil)
}

// FinalizePayment reacts to the collaborator reporting success: the
// payment sub-state and the invoice status both land on paid.
func (s *Service) FinalizePayment(ctx context.Context, invoiceID uuid.UUID) (*Invoice, error) {
	return s.paymentTransition(ctx, invoiceID, PaymentFinalize, nil)
}

// SweepStalePayments cancels payments stuck in failed since before the
// grace window. It is a recovery job, not a user-facing operation.
func (s *Service) SweepStalePayments(ctx context.Context, asOf time.Time) (int, error) {
	cutoff := asOf.Add(-s.grace)

	ids, err := s.repo.ListStaleFailedInvoiceIDs(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("listing stale failed invoices: %w", err)
	}

	swept := 0

	for _, id := range ids {
		if _, err := s.paymentTransition(ctx, id, PaymentCancel, nil); err != nil {
			slog.Error("failed to sweep stale payment", "invoice", id, "error", err)
			continue
		}

		swept++
	}

	return swept, nil
}

func (s *Service) statusTransition(ctx context.Context, invoiceID uuid.UUID, name InvoiceTransitionName, actor *actorRef) (*Invoice, error) {
	t, ok := invoiceTransitions[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown transition %q", ErrInvalidInvoiceTransition, name)
	}

	current, err := s.repo.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginMatterTx(ctx, current.MatterID)
	if err != nil {
		return nil, fmt.Errorf("beginning matter tx: %w", err)
	}
	defer tx.Rollback()

	inv, err := tx.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	m, err := tx.GetMatter(ctx, inv.MatterID)
	if err != nil {
		return nil, err
	}

	if t.guard != nil {
		if err := t.guard(s, inv, m, actor); err != nil {
			return nil, err
		}
	}

	if !t.allowsSource(inv.Status) {
		return nil, fmt.Errorf("%w: %s from %s", ErrInvalidInvoiceTransition, name, inv.Status)
	}

	if t.effect != nil {
		if err := t.effect(s, ctx, tx, inv); err != nil {
			return nil, err
		}
	}

	inv.Status = t.target

	if err := tx.UpdateInvoiceTransition(ctx, inv); err != nil {
		return nil, fmt.Errorf("persisting %s transition: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing %s transition: %w", name, err)
	}

	if t.after != nil {
		t.after(s, ctx, inv, m)
	}

	return inv, nil
}

func (s *Service) paymentTransition(ctx context.Context, invoiceID uuid.UUID, name PaymentTransitionName, actor *actorRef) (*Invoice, error) {
	t, ok := paymentTransitions[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown payment transition %q", ErrInvalidInvoiceTransition, name)
	}

	current, err := s.repo.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginMatterTx(ctx, current.MatterID)
	if err != nil {
		return nil, fmt.Errorf("beginning matter tx: %w", err)
	}
	defer tx.Rollback()

	inv, err := tx.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	m, err := tx.GetMatter(ctx, inv.MatterID)
	if err != nil {
		return nil, err
	}

	if t.guard != nil {
		if err := t.guard(s, inv, m, actor); err != nil {
			return nil, err
		}
	}

	if !t.allowsSource(inv.PaymentStatus) {
		return nil, fmt.Errorf("%w: %s from %s", ErrInvalidInvoiceTransition, name, inv.PaymentStatus)
	}

	if t.effect != nil {
		if err := t.effect(s, ctx, tx, inv); err != nil {
			return nil, err
		}
	}

	inv.PaymentStatus = t.target

	if err := tx.UpdateInvoiceTransition(ctx, inv); err != nil {
		return nil, fmt.Errorf("persisting %s transition: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing %s transition: %w", name, err)
	}

	if t.after != nil {
		t.after(s, ctx, inv, m)
	}

	return inv, nil
}
