package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/barrister/internal/stats"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateStat(ctx context.Context, userID uuid.UUID, tag stats.Tag) error {
	query := `
		INSERT INTO user_statistics (user_id, tag, created_at)
		VALUES ($1, $2, NOW())
	`

	if _, err := s.db.ExecContext(ctx, query, userID, tag); err != nil {
		return fmt.Errorf("creating stat: %w", err)
	}

	return nil
}
