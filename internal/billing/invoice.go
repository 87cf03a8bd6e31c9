package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusOpen    InvoiceStatus = "open"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusVoided  InvoiceStatus = "voided"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// PaymentStatus is the independently evolving payment sub-state driven
// by the payment collaborator.
type PaymentStatus string

const (
	PaymentStatusNotStarted PaymentStatus = "not_started"
	PaymentStatusInProgress PaymentStatus = "payment_in_progress"
	PaymentStatusFailed     PaymentStatus = "payment_failed"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusCanceled   PaymentStatus = "canceled"
)

// Invoice aggregates the billable entries of one matter over a period.
// At most one invoice exists per (matter, periodStart, periodEnd).
type Invoice struct {
	ID            uuid.UUID
	MatterID      uuid.UUID
	CreatedBy     uuid.UUID
	Number        string
	Title         string
	Note          string
	PeriodStart   time.Time
	PeriodEnd     time.Time
	Status        InvoiceStatus
	PaymentStatus PaymentStatus
	DueDate       *time.Time
	FinalizedAt   *time.Time
	ProviderID    string
	Entries       []*Entry // Loaded via JOIN
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// AvailableForEditing reports whether the invoice, and transitively its
// attached entries, may still change. Once payment progress has been
// made the invoice and its attachments are frozen.
func (i *Invoice) AvailableForEditing() bool {
	return i.PaymentStatus == PaymentStatusNotStarted
}

// CoversDate reports whether the date falls inside the invoice period.
func (i *Invoice) CoversDate(date time.Time) bool {
	return !date.Before(i.PeriodStart) && !date.After(i.PeriodEnd)
}

// TotalAmount sums the fees of the loaded billable entries.
func (i *Invoice) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, e := range i.Entries {
		if e.IsBillable {
			total = total.Add(e.Fee())
		}
	}

	return total
}

// TimeBilled sums the logged time of the loaded entries.
func (i *Invoice) TimeBilled() time.Duration {
	var total time.Duration
	for _, e := range i.Entries {
		total += e.TimeSpent
	}

	return total
}
