package matter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/barrister/internal/notify"
	"github.com/MrJamesThe3rd/barrister/internal/stats"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=matter
type Repository interface {
	CreateMatter(ctx context.Context, m *Matter) error
	GetMatter(ctx context.Context, id uuid.UUID) (*Matter, error)
	ListMatters(ctx context.Context, filter ListFilter) ([]*Matter, error)
	UpdateMatter(ctx context.Context, m *Matter) error

	// SaveStatusChange persists the matter's mutated status fields and
	// the referral bookkeeping from the change in a single database
	// transaction.
	SaveStatusChange(ctx context.Context, m *Matter, change *StatusChange) error

	ShareWith(ctx context.Context, matterID uuid.UUID, userIDs []uuid.UUID) error
}

type Service struct {
	repo     Repository
	recorder stats.Recorder
	notifier notify.Notifier
	now      func() time.Time
}

func NewService(repo Repository, recorder stats.Recorder, notifier notify.Notifier) *Service {
	return &Service{
		repo:     repo,
		recorder: recorder,
		notifier: notifier,
		now:      time.Now,
	}
}

// WithClock overrides the reference clock, mainly for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type CreateParams struct {
	ClientID    uuid.UUID
	AttorneyID  uuid.UUID
	Code        string
	Title       string
	Description string
	Rate        decimal.Decimal
	FeeKind     FeeKind
	StartDate   *time.Time
}

type ListFilter struct {
	Status  *Status
	FeeKind *FeeKind
	UserID  *uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Matter, error) {
	m := &Matter{
		ClientID:    params.ClientID,
		AttorneyID:  params.AttorneyID,
		Code:        params.Code,
		Title:       params.Title,
		Description: params.Description,
		Rate:        params.Rate,
		FeeKind:     params.FeeKind,
		Status:      StatusOpen,
		StartDate:   params.StartDate,
	}
	m.NormalizeCode()

	if err := s.repo.CreateMatter(ctx, m); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, m.AttorneyID, stats.TagOpenedMatter)

	return m, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Matter, error) {
	return s.repo.GetMatter(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Matter, error) {
	return s.repo.ListMatters(ctx, filter)
}

// Update persists edits to the matter's descriptive fields. Status is
// only ever changed through transitions.
func (s *Service) Update(ctx context.Context, actor uuid.UUID, m *Matter) error {
	if !m.CanChangeStatus(actor) {
		return ErrNotAllowed
	}

	return s.repo.UpdateMatter(ctx, m)
}

// Open moves the matter back to `open` from any state, discarding a
// pending referral if one exists.
func (s *Service) Open(ctx context.Context, actor, matterID uuid.UUID) (*Matter, error) {
	return s.transition(ctx, actor, matterID, TransitionOpen, transitionParams{asOf: s.now()})
}

// SendReferral hands the matter over to another attorney for review.
func (s *Service) SendReferral(ctx context.Context, actor, matterID, attorneyID uuid.UUID, message string) (*Matter, error) {
	referral := &Referral{
		ID:         uuid.New(),
		AttorneyID: attorneyID,
		Message:    message,
		CreatedAt:  s.now(),
	}

	return s.transition(ctx, actor, matterID, TransitionSendReferral, transitionParams{
		asOf:     s.now(),
		referral: referral,
	})
}

// AcceptReferral reopens the matter under the referred attorney. The
// referral record is preserved; only the matter's reference is cleared.
func (s *Service) AcceptReferral(ctx context.Context, actor, matterID uuid.UUID) (*Matter, error) {
	return s.transition(ctx, actor, matterID, TransitionAcceptReferral, transitionParams{asOf: s.now()})
}

// IgnoreReferral reopens the matter and deletes the referral record.
func (s *Service) IgnoreReferral(ctx context.Context, actor, matterID uuid.UUID) (*Matter, error) {
	return s.transition(ctx, actor, matterID, TransitionIgnoreReferral, transitionParams{asOf: s.now()})
}

// Close ends the engagement, stamping the close date.
func (s *Service) Close(ctx context.Context, actor, matterID uuid.UUID) (*Matter, error) {
	return s.transition(ctx, actor, matterID, TransitionClose, transitionParams{asOf: s.now()})
}

func (s *Service) transition(ctx context.Context, actor, matterID uuid.UUID, name TransitionName, params transitionParams) (*Matter, error) {
	m, err := s.repo.GetMatter(ctx, matterID)
	if err != nil {
		return nil, err
	}

	if !m.CanChangeStatus(actor) {
		return nil, ErrNotAllowed
	}

	t, ok := transitions[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown transition %q", ErrInvalidTransition, name)
	}

	change, err := t.apply(m, params)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveStatusChange(ctx, m, change); err != nil {
		return nil, fmt.Errorf("persisting %s transition: %w", name, err)
	}

	s.recorder.Record(ctx, m.AttorneyID, t.stat)

	return m, nil
}

// Share grants the users attorney-equivalent permissions on the matter
// and notifies them. Only someone already allowed to drive the matter
// may share it.
func (s *Service) Share(ctx context.Context, actor, matterID uuid.UUID, userIDs []uuid.UUID) (*Matter, error) {
	m, err := s.repo.GetMatter(ctx, matterID)
	if err != nil {
		return nil, err
	}

	if !m.CanChangeStatus(actor) {
		return nil, ErrNotAllowed
	}

	var toAdd []uuid.UUID

	for _, id := range userIDs {
		if id == m.AttorneyID || m.IsSharedWith(id) {
			continue
		}

		toAdd = append(toAdd, id)
	}

	if len(toAdd) == 0 {
		return m, nil
	}

	if err := s.repo.ShareWith(ctx, matterID, toAdd); err != nil {
		return nil, fmt.Errorf("sharing matter: %w", err)
	}

	m.SharedWith = append(m.SharedWith, toAdd...)

	for _, id := range toAdd {
		s.notifier.Notify(ctx, notify.KindMatterShared, id, matterID)
	}

	return m, nil
}
