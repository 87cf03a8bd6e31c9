package entry

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/barrister/internal/billing"
)

type entryResponse struct {
	ID          uuid.UUID       `json:"id"`
	MatterID    uuid.UUID       `json:"matter_id"`
	CreatedBy   uuid.UUID       `json:"created_by"`
	Description string          `json:"description"`
	Kind        billing.Kind    `json:"kind"`
	Date        time.Time       `json:"date"`
	TimeSpent   int64           `json:"time_spent_seconds"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	Rate        decimal.Decimal `json:"rate"`
	Quantity    int64           `json:"quantity"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Fee         decimal.Decimal `json:"fee"`
	IsBillable  bool            `json:"is_billable"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(e *billing.Entry) entryResponse {
	return entryResponse{
		ID:          e.ID,
		MatterID:    e.MatterID,
		CreatedBy:   e.CreatedBy,
		Description: e.Description,
		Kind:        e.Kind,
		Date:        e.Date,
		TimeSpent:   int64(e.TimeSpent / time.Second),
		HourlyRate:  e.HourlyRate,
		Rate:        e.Rate,
		Quantity:    e.Quantity,
		TotalAmount: e.TotalAmount,
		Fee:         e.Fee(),
		IsBillable:  e.IsBillable,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toResponseList(entries []*billing.Entry) []entryResponse {
	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toResponse(e)
	}

	return resp
}
