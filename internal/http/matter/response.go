package matter

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/barrister/internal/matter"
)

type matterResponse struct {
	ID          uuid.UUID         `json:"id"`
	ClientID    uuid.UUID         `json:"client_id"`
	AttorneyID  uuid.UUID         `json:"attorney_id"`
	Code        string            `json:"code"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Rate        decimal.Decimal   `json:"rate"`
	FeeKind     matter.FeeKind    `json:"fee_kind"`
	Status      matter.Status     `json:"status"`
	Referral    *referralResponse `json:"referral,omitempty"`
	SharedWith  []uuid.UUID       `json:"shared_with,omitempty"`
	StartDate   *time.Time        `json:"start_date,omitempty"`
	CloseDate   *time.Time        `json:"close_date,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   *time.Time        `json:"updated_at,omitempty"`
}

type referralResponse struct {
	ID         uuid.UUID `json:"id"`
	AttorneyID uuid.UUID `json:"attorney_id"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toResponse(m *matter.Matter) matterResponse {
	resp := matterResponse{
		ID:          m.ID,
		ClientID:    m.ClientID,
		AttorneyID:  m.AttorneyID,
		Code:        m.Code,
		Title:       m.Title,
		Description: m.Description,
		Rate:        m.Rate,
		FeeKind:     m.FeeKind,
		Status:      m.Status,
		SharedWith:  m.SharedWith,
		StartDate:   m.StartDate,
		CloseDate:   m.CloseDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if m.Referral != nil {
		resp.Referral = &referralResponse{
			ID:         m.Referral.ID,
			AttorneyID: m.Referral.AttorneyID,
			Message:    m.Referral.Message,
			CreatedAt:  m.Referral.CreatedAt,
		}
	}

	return resp
}

func toResponseList(matters []*matter.Matter) []matterResponse {
	resp := make([]matterResponse, len(matters))
	for i, m := range matters {
		resp[i] = toResponse(m)
	}

	return resp
}
