package invoice

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/barrister/internal/billing"
)

type invoiceResponse struct {
	ID            uuid.UUID             `json:"id"`
	MatterID      uuid.UUID             `json:"matter_id"`
	CreatedBy     uuid.UUID             `json:"created_by"`
	Number        string                `json:"number,omitempty"`
	Title         string                `json:"title"`
	Note          string                `json:"note,omitempty"`
	PeriodStart   time.Time             `json:"period_start"`
	PeriodEnd     time.Time             `json:"period_end"`
	Status        billing.InvoiceStatus `json:"status"`
	PaymentStatus billing.PaymentStatus `json:"payment_status"`
	DueDate       *time.Time            `json:"due_date,omitempty"`
	FinalizedAt   *time.Time            `json:"finalized_at,omitempty"`
	TotalAmount   decimal.Decimal       `json:"total_amount"`
	TimeBilled    int64                 `json:"time_billed_seconds"`
	Entries       []uuid.UUID           `json:"entries,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     *time.Time            `json:"updated_at,omitempty"`
}

func toResponse(inv *billing.Invoice) invoiceResponse {
	resp := invoiceResponse{
		ID:            inv.ID,
		MatterID:      inv.MatterID,
		CreatedBy:     inv.CreatedBy,
		Number:        inv.Number,
		Title:         inv.Title,
		Note:          inv.Note,
		PeriodStart:   inv.PeriodStart,
		PeriodEnd:     inv.PeriodEnd,
		Status:        inv.Status,
		PaymentStatus: inv.PaymentStatus,
		DueDate:       inv.DueDate,
		FinalizedAt:   inv.FinalizedAt,
		TotalAmount:   inv.TotalAmount(),
		TimeBilled:    int64(inv.TimeBilled() / time.Second),
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}

	for _, e := range inv.Entries {
		resp.Entries = append(resp.Entries, e.ID)
	}

	return resp
}

func toResponseList(invoices []*billing.Invoice) []invoiceResponse {
	resp := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = toResponse(inv)
	}

	return resp
}
