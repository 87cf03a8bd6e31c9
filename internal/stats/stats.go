package stats

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Tag labels a single counted event on a user's dashboard.
type Tag string

const (
	TagOpenedMatter   Tag = "opened_matter"
	TagReferredMatter Tag = "referred_matter"
	TagClosedMatter   Tag = "closed_matter"
)

//go:generate mockgen -source=stats.go -destination=repository_mock.go -package=stats
type Repository interface {
	CreateStat(ctx context.Context, userID uuid.UUID, tag Tag) error
}

// Recorder is the collaborator surface consumed by lifecycle hooks.
// Recording is fire-and-forget: implementations log failures and never
// propagate them into a transition.
type Recorder interface {
	Record(ctx context.Context, userID uuid.UUID, tag Tag)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Record(ctx context.Context, userID uuid.UUID, tag Tag) {
	if err := s.repo.CreateStat(ctx, userID, tag); err != nil {
		slog.Error("failed to record stat", "user", userID, "tag", tag, "error", err)
	}
}
