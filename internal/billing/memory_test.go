package billing_test

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/barrister/internal/billing"
	"github.com/MrJamesThe3rd/barrister/internal/matter"
)

// memStore is an in-memory Repository and MatterTx in one, backing the
// reconciliation and lifecycle tests with real attachment-set
// semantics instead of per-call expectations.
type memStore struct {
	matters  map[uuid.UUID]*matter.Matter
	entries  map[uuid.UUID]*billing.Entry
	invoices map[uuid.UUID]*billing.Invoice
	links    map[uuid.UUID]map[uuid.UUID]bool // entry -> invoices
	updated  map[uuid.UUID]time.Time          // invoice payment-state change times
}

func newMemStore() *memStore {
	return &memStore{
		matters:  make(map[uuid.UUID]*matter.Matter),
		entries:  make(map[uuid.UUID]*billing.Entry),
		invoices: make(map[uuid.UUID]*billing.Invoice),
		links:    make(map[uuid.UUID]map[uuid.UUID]bool),
		updated:  make(map[uuid.UUID]time.Time),
	}
}

func (s *memStore) addMatter(m *matter.Matter) *matter.Matter {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	s.matters[m.ID] = m

	return m
}

func (s *memStore) addEntry(e *billing.Entry) *billing.Entry {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	s.entries[e.ID] = e

	return e
}

func (s *memStore) addInvoice(inv *billing.Invoice) *billing.Invoice {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}

	s.invoices[inv.ID] = inv

	return inv
}

func (s *memStore) link(entryID, invoiceID uuid.UUID) {
	if s.links[entryID] == nil {
		s.links[entryID] = make(map[uuid.UUID]bool)
	}

	s.links[entryID][invoiceID] = true
}

func (s *memStore) linked(entryID, invoiceID uuid.UUID) bool {
	return s.links[entryID][invoiceID]
}

// Repository surface.

func (s *memStore) BeginMatterTx(ctx context.Context, matterID uuid.UUID) (billing.MatterTx, error) {
	return s, nil
}

func (s *memStore) GetMatter(ctx context.Context, id uuid.UUID) (*matter.Matter, error) {
	m, ok := s.matters[id]
	if !ok {
		return nil, matter.ErrNotFound
	}

	copied := *m

	return &copied, nil
}

func (s *memStore) GetEntry(ctx context.Context, id uuid.UUID) (*billing.Entry, error) {
	e, ok := s.entries[id]
	if !ok {
		return nil, billing.ErrEntryNotFound
	}

	copied := *e

	return &copied, nil
}

func (s *memStore) ListEntries(ctx context.Context, filter billing.EntryFilter) ([]*billing.Entry, error) {
	var entries []*billing.Entry

	for _, e := range s.entries {
		if filter.MatterID != nil && e.MatterID != *filter.MatterID {
			continue
		}

		copied := *e
		entries = append(entries, &copied)
	}

	return entries, nil
}

func (s *memStore) GetInvoice(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	inv, ok := s.invoices[id]
	if !ok {
		return nil, billing.ErrInvoiceNotFound
	}

	copied := *inv
	copied.Entries = nil

	entryIDs, _ := s.InvoiceEntryIDs(ctx, id)
	for _, entryID := range entryIDs {
		e := *s.entries[entryID]
		copied.Entries = append(copied.Entries, &e)
	}

	return &copied, nil
}

func (s *memStore) ListInvoices(ctx context.Context, filter billing.InvoiceFilter) ([]*billing.Invoice, error) {
	var invoices []*billing.Invoice

	for id, inv := range s.invoices {
		if filter.MatterID != nil && inv.MatterID != *filter.MatterID {
			continue
		}

		copied, _ := s.GetInvoice(ctx, id)
		invoices = append(invoices, copied)
	}

	return invoices, nil
}

func (s *memStore) MarkOverdue(ctx context.Context, invoiceID uuid.UUID) error {
	inv, ok := s.invoices[invoiceID]
	if !ok {
		return billing.ErrInvoiceNotFound
	}

	if inv.Status == billing.InvoiceStatusOpen {
		inv.Status = billing.InvoiceStatusOverdue
	}

	return nil
}

func (s *memStore) ListBillableMatterIDs(ctx context.Context, periodStart, periodEnd time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	for id, m := range s.matters {
		if m.Status != matter.StatusOpen || !m.IsHourlyRated() {
			continue
		}

		for _, e := range s.entries {
			if e.MatterID == id && e.IsBillable && !e.Date.Before(periodStart) && !e.Date.After(periodEnd) {
				ids = append(ids, id)
				break
			}
		}
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	return ids, nil
}

func (s *memStore) ListStaleFailedInvoiceIDs(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	for id, inv := range s.invoices {
		if inv.PaymentStatus == billing.PaymentStatusFailed && s.updated[id].Before(cutoff) {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// MatterTx surface.

func (s *memStore) Commit() error   { return nil }
func (s *memStore) Rollback() error { return nil }

func (s *memStore) CreateEntry(ctx context.Context, e *billing.Entry) error {
	e.ID = uuid.New()
	copied := *e
	s.entries[e.ID] = &copied

	return nil
}

func (s *memStore) UpdateEntry(ctx context.Context, e *billing.Entry) error {
	copied := *e
	s.entries[e.ID] = &copied

	return nil
}

func (s *memStore) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	delete(s.entries, id)
	delete(s.links, id)

	return nil
}

func (s *memStore) CreateInvoice(ctx context.Context, inv *billing.Invoice) error {
	inv.ID = uuid.New()
	copied := *inv
	s.invoices[inv.ID] = &copied

	return nil
}

func (s *memStore) UpdateInvoice(ctx context.Context, inv *billing.Invoice) error {
	copied := *inv
	copied.Entries = nil
	s.invoices[inv.ID] = &copied

	return nil
}

func (s *memStore) GetOrCreateInvoice(ctx context.Context, inv *billing.Invoice) (bool, error) {
	for _, existing := range s.invoices {
		if existing.MatterID == inv.MatterID &&
			existing.PeriodStart.Equal(inv.PeriodStart) &&
			existing.PeriodEnd.Equal(inv.PeriodEnd) {
			*inv = *existing
			return false, nil
		}
	}

	inv.ID = uuid.New()
	copied := *inv
	s.invoices[inv.ID] = &copied

	return true, nil
}

func (s *memStore) UpdateInvoiceTransition(ctx context.Context, inv *billing.Invoice) error {
	stored, ok := s.invoices[inv.ID]
	if !ok {
		return billing.ErrInvoiceNotFound
	}

	stored.Status = inv.Status
	stored.PaymentStatus = inv.PaymentStatus
	stored.Number = inv.Number
	stored.DueDate = inv.DueDate
	stored.FinalizedAt = inv.FinalizedAt
	stored.ProviderID = inv.ProviderID
	s.updated[inv.ID] = time.Now()

	return nil
}

func (s *memStore) MatchInvoices(ctx context.Context, matterID uuid.UUID, date time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	for id, inv := range s.invoices {
		if inv.MatterID == matterID && inv.AvailableForEditing() && inv.CoversDate(date) {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

func (s *memStore) MatchEntries(ctx context.Context, matterID uuid.UUID, periodStart, periodEnd time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	for id, e := range s.entries {
		if e.MatterID != matterID || e.Date.Before(periodStart) || e.Date.After(periodEnd) {
			continue
		}

		editable, _ := s.EntryEditable(ctx, id)
		if !editable {
			continue
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func (s *memStore) EntryEditable(ctx context.Context, entryID uuid.UUID) (bool, error) {
	for invoiceID := range s.links[entryID] {
		if s.invoices[invoiceID].PaymentStatus != billing.PaymentStatusNotStarted {
			return false, nil
		}
	}

	return true, nil
}

func (s *memStore) EntryInvoiceIDs(ctx context.Context, entryID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	for invoiceID := range s.links[entryID] {
		ids = append(ids, invoiceID)
	}

	return ids, nil
}

func (s *memStore) InvoiceEntryIDs(ctx context.Context, invoiceID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	for entryID, invoices := range s.links {
		if invoices[invoiceID] {
			ids = append(ids, entryID)
		}
	}

	return ids, nil
}

func (s *memStore) CreateAttachments(ctx context.Context, links []billing.AttachmentLink) error {
	for _, link := range links {
		s.link(link.EntryID, link.InvoiceID)
	}

	return nil
}

func (s *memStore) DeleteAttachmentsByEntry(ctx context.Context, entryID uuid.UUID, invoiceIDs []uuid.UUID) error {
	if invoiceIDs == nil {
		delete(s.links, entryID)
		return nil
	}

	for _, invoiceID := range invoiceIDs {
		delete(s.links[entryID], invoiceID)
	}

	return nil
}

func (s *memStore) DeleteAttachmentsByInvoice(ctx context.Context, invoiceID uuid.UUID, entryIDs []uuid.UUID) error {
	for _, entryID := range entryIDs {
		delete(s.links[entryID], invoiceID)
	}

	return nil
}

func (s *memStore) DeleteCompetingAttachments(ctx context.Context, invoiceID uuid.UUID, entryIDs []uuid.UUID) error {
	for _, entryID := range entryIDs {
		for other := range s.links[entryID] {
			if other != invoiceID {
				delete(s.links[entryID], other)
			}
		}
	}

	return nil
}
