package billing

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEntryNotFound   = errors.New("billable entry not found")
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrEntryLocked means the entry is attached to an invoice with
	// payment progress and may no longer be edited.
	ErrEntryLocked = errors.New("entry is locked by a non-editable invoice")
)

// Kind represents the kind of billable work recorded by an entry.
type Kind string

const (
	KindTime    Kind = "time"
	KindExpense Kind = "expense"
	KindFlatFee Kind = "flat_fee"
)

// Entry is a logged unit of billable time or expense against a matter.
// Entries are attached to invoices exclusively through reconciliation;
// user actions only ever change the entry's own fields.
type Entry struct {
	ID          uuid.UUID
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
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Fee returns the amount the entry bills for: hourly rate times hours
// for time entries, the recorded total for expenses and flat fees.
func (e *Entry) Fee() decimal.Decimal {
	if e.Kind == KindTime {
		hours := decimal.NewFromFloat(e.TimeSpent.Hours())
		return e.HourlyRate.Mul(hours)
	}

	return e.TotalAmount
}

// AttachmentLink records that an entry is billed on an invoice. Links
// are created and deleted only by the reconciliation engine.
type AttachmentLink struct {
	EntryID   uuid.UUID
	InvoiceID uuid.UUID
	CreatedAt time.Time
}
