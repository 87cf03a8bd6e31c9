package matter

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/barrister/internal/stats"
)

var (
	// ErrNotAllowed means the actor may not drive this matter's status.
	ErrNotAllowed = errors.New("actor is not allowed to change matter status")
	// ErrInvalidTransition means the matter is not in a source state of
	// the requested transition.
	ErrInvalidTransition = errors.New("invalid matter status transition")
	// ErrNoReferral means a referral transition was requested on a
	// matter without a referral attached.
	ErrNoReferral = errors.New("matter has no referral")
)

// TransitionName identifies one row of the matter transition table.
type TransitionName string

const (
	TransitionOpen           TransitionName = "open"
	TransitionSendReferral   TransitionName = "send_referral"
	TransitionAcceptReferral TransitionName = "accept_referral"
	TransitionIgnoreReferral TransitionName = "ignore_referral"
	TransitionClose          TransitionName = "close"
)

// StatusChange describes the persistence work that must land in the
// same database transaction as the status field update.
type StatusChange struct {
	DeleteReferralID *uuid.UUID
	CreateReferral   *Referral
}

type transitionParams struct {
	asOf     time.Time
	referral *Referral
}

// transition is one row of the matter state machine: allowed source
// states, the target state, the effect applied to the matter, and the
// statistic recorded once the write commits. An empty source list means
// the transition is allowed from any state.
type transition struct {
	sources []Status
	target  Status
	effect  func(m *Matter, p transitionParams) (*StatusChange, error)
	stat    stats.Tag
}

var transitions = map[TransitionName]transition{
	TransitionOpen: {
		target: StatusOpen,
		effect: func(m *Matter, _ transitionParams) (*StatusChange, error) {
			change := &StatusChange{DeleteReferralID: m.ReferralID}
			m.ReferralID = nil
			m.Referral = nil

			return change, nil
		},
		stat: stats.TagOpenedMatter,
	},
	TransitionSendReferral: {
		sources: []Status{StatusOpen},
		target:  StatusReferral,
		effect: func(m *Matter, p transitionParams) (*StatusChange, error) {
			if p.referral == nil {
				return nil, ErrNoReferral
			}

			m.ReferralID = &p.referral.ID
			m.Referral = p.referral

			return &StatusChange{CreateReferral: p.referral}, nil
		},
		stat: stats.TagReferredMatter,
	},
	TransitionAcceptReferral: {
		sources: []Status{StatusReferral},
		target:  StatusOpen,
		effect: func(m *Matter, _ transitionParams) (*StatusChange, error) {
			if m.Referral == nil {
				return nil, ErrNoReferral
			}

			// The accepting attorney takes the matter over. The referral
			// record itself is kept for the audit trail; only the
			// matter's reference to it is cleared.
			m.AttorneyID = m.Referral.AttorneyID
			m.ReferralID = nil
			m.Referral = nil

			return &StatusChange{}, nil
		},
		stat: stats.TagOpenedMatter,
	},
	TransitionIgnoreReferral: {
		sources: []Status{StatusReferral},
		target:  StatusOpen,
		effect: func(m *Matter, _ transitionParams) (*StatusChange, error) {
			if m.ReferralID == nil {
				return nil, ErrNoReferral
			}

			change := &StatusChange{DeleteReferralID: m.ReferralID}
			m.ReferralID = nil
			m.Referral = nil

			return change, nil
		},
		stat: stats.TagOpenedMatter,
	},
	TransitionClose: {
		sources: []Status{StatusOpen},
		target:  StatusClose,
		effect: func(m *Matter, p transitionParams) (*StatusChange, error) {
			change := &StatusChange{DeleteReferralID: m.ReferralID}
			m.ReferralID = nil
			m.Referral = nil

			closeDate := p.asOf
			m.CloseDate = &closeDate

			return change, nil
		},
		stat: stats.TagClosedMatter,
	},
}

func (t transition) allowsSource(s Status) bool {
	if len(t.sources) == 0 {
		return true
	}

	for _, src := range t.sources {
		if src == s {
			return true
		}
	}

	return false
}

// apply runs the transition against the matter in memory. The caller is
// responsible for persisting the matter together with the returned
// StatusChange atomically.
func (t transition) apply(m *Matter, p transitionParams) (*StatusChange, error) {
	if !t.allowsSource(m.Status) {
		return nil, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, t.target, m.Status)
	}

	change, err := t.effect(m, p)
	if err != nil {
		return nil, err
	}

	m.Status = t.target

	return change, nil
}
