package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/barrister/internal/matter"
)

// Engine keeps the attachment-link set consistent with the current
// entries and invoices of a matter. It is invoked synchronously by the
// write path of entries and invoices, inside the same MatterTx as the
// triggering write, and owns attachment links exclusively: no other
// component creates or deletes them.
//
// Reconciliation recomputes the full matched set on every trigger and
// applies the minimal diff, so running a trigger twice with no data
// change in between is a no-op the second time.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// OnEntrySaved reattaches a just-persisted entry to the invoices whose
// period covers its date.
//
// Nothing happens when the matter is not hourly rated, when the entry
// is frozen by a non-editable invoice, or when an update did not touch
// the date. When no editable invoice matches, the entry's links are
// dropped; a past-period date additionally get-or-creates the invoice
// for the entry's calendar month, whose creation recursively attaches
// the entry via OnInvoiceSaved. The now parameter is the reference
// clock deciding whether the entry's month is still the current billing
// period (left for the periodic generator) or an elapsed one.
func (e *Engine) OnEntrySaved(ctx context.Context, tx MatterTx, m *matter.Matter, entry *Entry, created, dateChanged bool, now time.Time) error {
	if !m.IsHourlyRated() {
		return nil
	}

	editable, err := tx.EntryEditable(ctx, entry.ID)
	if err != nil {
		return fmt.Errorf("checking entry editability: %w", err)
	}

	if !editable {
		return nil
	}

	if !created && !dateChanged {
		return nil
	}

	matched, err := tx.MatchInvoices(ctx, entry.MatterID, entry.Date)
	if err != nil {
		return fmt.Errorf("matching invoices: %w", err)
	}

	if len(matched) == 0 {
		if err := tx.DeleteAttachmentsByEntry(ctx, entry.ID, nil); err != nil {
			return fmt.Errorf("detaching entry: %w", err)
		}

		// Current-period entries wait for the generator to
		// materialize their invoice at the period rollover.
		if SameMonth(entry.Date, now) {
			return nil
		}

		periodStart, periodEnd := MonthPeriod(entry.Date)
		inv := &Invoice{
			MatterID:      entry.MatterID,
			CreatedBy:     m.AttorneyID,
			Title:         m.Title + " Invoice",
			PeriodStart:   periodStart,
			PeriodEnd:     periodEnd,
			Status:        InvoiceStatusDraft,
			PaymentStatus: PaymentStatusNotStarted,
		}

		wasCreated, err := tx.GetOrCreateInvoice(ctx, inv)
		if err != nil {
			return fmt.Errorf("generating invoice for past period: %w", err)
		}

		// Creation attaches the entry through the invoice-side
		// trigger. An existing invoice was either matched above
		// (editable) or is frozen, in which case nothing reconciles.
		if wasCreated {
			return e.OnInvoiceSaved(ctx, tx, m, inv, true, false, now)
		}

		return nil
	}

	existing, err := tx.EntryInvoiceIDs(ctx, entry.ID)
	if err != nil {
		return fmt.Errorf("loading entry attachments: %w", err)
	}

	toCreate, toDelete := diffIDs(matched, existing)

	links := make([]AttachmentLink, 0, len(toCreate))
	for _, invoiceID := range toCreate {
		links = append(links, AttachmentLink{EntryID: entry.ID, InvoiceID: invoiceID})
	}

	if err := tx.CreateAttachments(ctx, links); err != nil {
		return fmt.Errorf("attaching entry: %w", err)
	}

	if len(toDelete) > 0 {
		if err := tx.DeleteAttachmentsByEntry(ctx, entry.ID, toDelete); err != nil {
			return fmt.Errorf("detaching entry: %w", err)
		}
	}

	return nil
}

// OnInvoiceSaved reattaches a just-persisted invoice to the matter's
// entries dated inside its period. Nothing happens when the matter is
// not hourly rated, when payment progress has frozen the invoice, or
// when an update did not touch the period bounds.
func (e *Engine) OnInvoiceSaved(ctx context.Context, tx MatterTx, m *matter.Matter, inv *Invoice, created, periodChanged bool, _ time.Time) error {
	if !m.IsHourlyRated() {
		return nil
	}

	if !inv.AvailableForEditing() {
		return nil
	}

	if !created && !periodChanged {
		return nil
	}

	matched, err := tx.MatchEntries(ctx, inv.MatterID, inv.PeriodStart, inv.PeriodEnd)
	if err != nil {
		return fmt.Errorf("matching entries: %w", err)
	}

	existing, err := tx.InvoiceEntryIDs(ctx, inv.ID)
	if err != nil {
		return fmt.Errorf("loading invoice attachments: %w", err)
	}

	toCreate, toDelete := diffIDs(matched, existing)

	links := make([]AttachmentLink, 0, len(toCreate))
	for _, entryID := range toCreate {
		links = append(links, AttachmentLink{EntryID: entryID, InvoiceID: inv.ID})
	}

	if err := tx.CreateAttachments(ctx, links); err != nil {
		return fmt.Errorf("attaching entries: %w", err)
	}

	if len(toDelete) > 0 {
		if err := tx.DeleteAttachmentsByInvoice(ctx, inv.ID, toDelete); err != nil {
			return fmt.Errorf("detaching entries: %w", err)
		}
	}

	return nil
}

// diffIDs computes the minimal set difference between the ids that
// should be linked and the ids that currently are.
func diffIDs(matched, existing []uuid.UUID) (toCreate, toDelete []uuid.UUID) {
	matchedSet := make(map[uuid.UUID]struct{}, len(matched))
	for _, id := range matched {
		matchedSet[id] = struct{}{}
	}

	existingSet := make(map[uuid.UUID]struct{}, len(existing))
	for _, id := range existing {
		existingSet[id] = struct{}{}
	}

	for _, id := range matched {
		if _, found := existingSet[id]; !found {
			toCreate = append(toCreate, id)
		}
	}

	for _, id := range existing {
		if _, found := matchedSet[id]; !found {
			toDelete = append(toDelete, id)
		}
	}

	return toCreate, toDelete
}
