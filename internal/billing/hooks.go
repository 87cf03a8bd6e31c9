package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/barrister/internal/matter"
	"github.com/MrJamesThe3rd/barrister/internal/payments"
)

// guardSend rejects sending an invoice that is frozen by payment
// progress, has nothing billable on it, or is driven by someone who is
// not on the matter.
func (s *Service) guardSend(inv *Invoice, m *matter.Matter, actor *actorRef) error {
	if !inv.AvailableForEditing() {
		return ErrInvoiceNotEditable
	}

	if !inv.hasBillableEntries() {
		return ErrNoBillableEntries
	}

	if actor == nil || !m.CanChangeStatus(actor.id) {
		return ErrNotAllowed
	}

	return nil
}

// guardActorOnMatter admits the matter's attorney and anyone the matter
// is shared with.
func (s *Service) guardActorOnMatter(inv *Invoice, m *matter.Matter, actor *actorRef) error {
	if actor == nil || !m.CanChangeStatus(actor.id) {
		return ErrNotAllowed
	}

	return nil
}

// guardStartPayment admits only the matter's client, and only for an
// invoice that has been sent and bills a positive amount.
func (s *Service) guardStartPayment(inv *Invoice, m *matter.Matter, actor *actorRef) error {
	if actor == nil || actor.id != m.ClientID {
		return ErrNotAllowed
	}

	if inv.Status != InvoiceStatusOpen && inv.Status != InvoiceStatusOverdue {
		return fmt.Errorf("%w: invoice has not been sent", ErrCannotPayInvoice)
	}

	if !inv.TotalAmount().IsPositive() {
		return ErrNoBillableEntries
	}

	return nil
}

// sendToProvider finalizes the invoice with the payment provider. The
// provider mirror is created lazily and recreated when the provider no
// longer knows the reference. Any provider failure aborts the send and
// leaves the stored invoice untouched.
func (s *Service) sendToProvider(ctx context.Context, tx MatterTx, inv *Invoice) error {
	if inv.ProviderID != "" {
		_, err := s.provider.GetInvoice(ctx, inv.ProviderID)
		switch {
		case errors.Is(err, payments.ErrNotFound):
			// Deleted on the provider side; recreate below.
			inv.ProviderID = ""
		case err != nil:
			return fmt.Errorf("%w: %w", ErrCannotSendInvoice, err)
		}
	}

	now := s.now()

	if inv.DueDate == nil {
		due := now.AddDate(0, 0, s.dueDays)
		inv.DueDate = &due
	}

	if inv.ProviderID == "" {
		created, err := s.provider.CreateInvoice(ctx, payments.CreateInvoiceParams{
			LocalID:     inv.ID,
			Description: inv.Title,
			Amount:      inv.TotalAmount(),
			DueDate:     inv.DueDate,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCannotSendInvoice, err)
		}

		inv.ProviderID = created.ID
		inv.Number = created.Number

		for _, e := range inv.Entries {
			if !e.IsBillable {
				continue
			}

			item := payments.ItemParams{Description: e.Description, Amount: e.Fee()}
			if err := s.provider.CreateInvoiceItem(ctx, inv.ProviderID, item); err != nil {
				return fmt.Errorf("%w: %w", ErrCannotSendInvoice, err)
			}
		}
	}

	if _, err := s.provider.SendInvoice(ctx, inv.ProviderID); err != nil {
		return fmt.Errorf("%w: %w", ErrCannotSendInvoice, err)
	}

	inv.FinalizedAt = &now

	return nil
}

// payAtProvider settles the invoice with the provider and stamps the
// payment sub-state, keeping both machines on paid together.
func (s *Service) payAtProvider(ctx context.Context, tx MatterTx, inv *Invoice) error {
	if inv.ProviderID != "" {
		if _, err := s.provider.PayInvoice(ctx, inv.ProviderID); err != nil {
			return fmt.Errorf("%w: %w", ErrCannotPayInvoice, err)
		}
	}

	inv.PaymentStatus = PaymentStatusPaid

	return nil
}

// stripCompetingAttachments gives the invoice exclusive ownership of
// its entries: every link those entries have to other invoices is
// dropped, so the client cannot be billed twice for the same work.
func (s *Service) stripCompetingAttachments(ctx context.Context, tx MatterTx, inv *Invoice) error {
	entryIDs, err := tx.InvoiceEntryIDs(ctx, inv.ID)
	if err != nil {
		return fmt.Errorf("loading invoice entries: %w", err)
	}

	if len(entryIDs) == 0 {
		return nil
	}

	if err := tx.DeleteCompetingAttachments(ctx, inv.ID, entryIDs); err != nil {
		return fmt.Errorf("stripping competing attachments: %w", err)
	}

	return nil
}

// markInvoicePaid advances the invoice status alongside a finalized
// payment, when the status machine permits it from the current state.
func (s *Service) markInvoicePaid(ctx context.Context, tx MatterTx, inv *Invoice) error {
	if invoiceTransitions[TransitionPay].allowsSource(inv.Status) {
		inv.Status = InvoiceStatusPaid
	}

	return nil
}

func (i *Invoice) hasBillableEntries() bool {
	for _, e := range i.Entries {
		if e.IsBillable {
			return true
		}
	}

	return false
}
