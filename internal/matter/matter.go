package matter

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("matter not found")

// Status represents the lifecycle state of a matter.
type Status string

const (
	StatusOpen     Status = "open"
	StatusReferral Status = "referral"
	StatusClose    Status = "close"
)

// FeeKind represents the billing arrangement agreed for a matter. Only
// hourly matters take part in periodic invoicing; the other kinds still
// log time to track conflicts but never produce invoices.
type FeeKind string

const (
	FeeKindHourly      FeeKind = "hourly"
	FeeKindFixed       FeeKind = "fixed"
	FeeKindContingency FeeKind = "contingency"
	FeeKindAlternative FeeKind = "alternative"
)

// Matter represents a work engagement between an attorney and a client.
type Matter struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	AttorneyID  uuid.UUID
	Code        string
	Title       string
	Description string
	Rate        decimal.Decimal
	FeeKind     FeeKind
	Status      Status
	ReferralID  *uuid.UUID
	Referral    *Referral // Loaded via JOIN
	SharedWith  []uuid.UUID
	StartDate   *time.Time
	CloseDate   *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Referral is a request to hand a matter over to another attorney.
type Referral struct {
	ID         uuid.UUID
	AttorneyID uuid.UUID
	Message    string
	CreatedAt  time.Time
}

// IsHourlyRated reports whether the matter bills by the hour and is
// therefore subject to invoice generation and reconciliation.
func (m *Matter) IsHourlyRated() bool {
	return m.FeeKind == FeeKindHourly
}

// IsSharedWith reports whether the matter was shared with the user,
// granting them attorney-equivalent permissions.
func (m *Matter) IsSharedWith(userID uuid.UUID) bool {
	for _, id := range m.SharedWith {
		if id == userID {
			return true
		}
	}

	return false
}

// CanChangeStatus reports whether the actor may drive the matter's
// status transitions: the original attorney or anyone on the share list.
func (m *Matter) CanChangeStatus(actor uuid.UUID) bool {
	return actor == m.AttorneyID || m.IsSharedWith(actor)
}

// NormalizeCode trims and upper-cases the matter code before
// persisting.
func (m *Matter) NormalizeCode() {
	m.Code = strings.ToUpper(strings.TrimSpace(m.Code))
}
