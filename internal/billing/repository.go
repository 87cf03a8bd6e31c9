package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/barrister/internal/matter"
)

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=billing

// Repository is the persistence surface for billing data. Writes that
// must run together with reconciliation go through a MatterTx.
type Repository interface {
	// BeginMatterTx opens a transaction serialized per matter (writers
	// to the same matter's entries and invoices queue up behind an
	// advisory lock), so concurrent reconciliations never compute stale
	// link sets against each other.
	BeginMatterTx(ctx context.Context, matterID uuid.UUID) (MatterTx, error)

	GetMatter(ctx context.Context, id uuid.UUID) (*matter.Matter, error)

	GetEntry(ctx context.Context, id uuid.UUID) (*Entry, error)
	ListEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error)

	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	ListInvoices(ctx context.Context, filter InvoiceFilter) ([]*Invoice, error)

	// MarkOverdue flips an open invoice past its due date to overdue.
	// The update is conditional on the current status so the read-path
	// correction stays idempotent under races.
	MarkOverdue(ctx context.Context, invoiceID uuid.UUID) error

	// ListBillableMatterIDs returns the ids of open, hourly-rated
	// matters with at least one billable entry dated in the period.
	ListBillableMatterIDs(ctx context.Context, periodStart, periodEnd time.Time) ([]uuid.UUID, error)

	// ListStaleFailedInvoiceIDs returns invoices whose payment has been
	// stuck in failed since before the cutoff.
	ListStaleFailedInvoiceIDs(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error)
}

// MatterTx is the transactional surface the reconciliation engine and
// the lifecycle transitions operate on. Everything called on it lands
// or rolls back together with the triggering write.
type MatterTx interface {
	GetMatter(ctx context.Context, id uuid.UUID) (*matter.Matter, error)

	CreateEntry(ctx context.Context, e *Entry) error
	UpdateEntry(ctx context.Context, e *Entry) error
	GetEntry(ctx context.Context, id uuid.UUID) (*Entry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error

	CreateInvoice(ctx context.Context, inv *Invoice) error
	UpdateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// GetOrCreateInvoice creates the invoice unless one already exists
	// for its (matter, periodStart, periodEnd), in which case the
	// existing row is loaded into inv. Returns whether it was created.
	GetOrCreateInvoice(ctx context.Context, inv *Invoice) (bool, error)

	// UpdateInvoiceTransition persists the status fields stamped by a
	// lifecycle transition: status, payment status, due date,
	// finalized timestamp and provider reference.
	UpdateInvoiceTransition(ctx context.Context, inv *Invoice) error

	// MatchInvoices returns the matter's invoices that are available
	// for editing and whose period covers the date.
	MatchInvoices(ctx context.Context, matterID uuid.UUID, date time.Time) ([]uuid.UUID, error)

	// MatchEntries returns the matter's entries dated inside the period
	// that are still available for editing.
	MatchEntries(ctx context.Context, matterID uuid.UUID, periodStart, periodEnd time.Time) ([]uuid.UUID, error)

	// EntryEditable reports whether every invoice the entry is attached
	// to still has payment status not_started.
	EntryEditable(ctx context.Context, entryID uuid.UUID) (bool, error)

	EntryInvoiceIDs(ctx context.Context, entryID uuid.UUID) ([]uuid.UUID, error)
	InvoiceEntryIDs(ctx context.Context, invoiceID uuid.UUID) ([]uuid.UUID, error)

	CreateAttachments(ctx context.Context, links []AttachmentLink) error

	// DeleteAttachmentsByEntry deletes the entry's links to the given
	// invoices, or all of its links when invoiceIDs is nil.
	DeleteAttachmentsByEntry(ctx context.Context, entryID uuid.UUID, invoiceIDs []uuid.UUID) error

	// DeleteAttachmentsByInvoice deletes the invoice's links to the
	// given entries.
	DeleteAttachmentsByInvoice(ctx context.Context, invoiceID uuid.UUID, entryIDs []uuid.UUID) error

	// DeleteCompetingAttachments deletes the entries' links to every
	// invoice except the given one, leaving it sole owner of them.
	DeleteCompetingAttachments(ctx context.Context, invoiceID uuid.UUID, entryIDs []uuid.UUID) error

	Commit() error
	Rollback() error
}

type EntryFilter struct {
	MatterID  *uuid.UUID
	CreatedBy *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Billable  *bool
}

type InvoiceFilter struct {
	MatterID      *uuid.UUID
	Status        *InvoiceStatus
	PaymentStatus *PaymentStatus
}
