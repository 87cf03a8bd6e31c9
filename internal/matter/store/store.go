package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/barrister/internal/matter"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectMatterColumns = `
	m.id, m.client_id, m.attorney_id, m.code, m.title, m.description,
	m.rate, m.fee_kind, m.status, m.referral_id,
	r.attorney_id, r.message, r.created_at,
	m.start_date, m.close_date, m.created_at, m.updated_at
`

// scanMatter reads a matter row joined against its referral.
func scanMatter(s scanner) (*matter.Matter, error) {
	var m matter.Matter

	var feeKind, status string

	var refAttorney *uuid.UUID

	var refMessage sql.NullString

	var refCreated sql.NullTime

	if err := s.Scan(
		&m.ID, &m.ClientID, &m.AttorneyID, &m.Code, &m.Title, &m.Description,
		&m.Rate, &feeKind, &status, &m.ReferralID,
		&refAttorney, &refMessage, &refCreated,
		&m.StartDate, &m.CloseDate, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}

	m.FeeKind = matter.FeeKind(feeKind)
	m.Status = matter.Status(status)

	if m.ReferralID != nil && refAttorney != nil {
		m.Referral = &matter.Referral{
			ID:         *m.ReferralID,
			AttorneyID: *refAttorney,
			Message:    refMessage.String,
			CreatedAt:  refCreated.Time,
		}
	}

	return &m, nil
}

func (s *Store) CreateMatter(ctx context.Context, m *matter.Matter) error {
	query := `
		INSERT INTO matters (client_id, attorney_id, code, title, description, rate, fee_kind, status, start_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		m.ClientID,
		m.AttorneyID,
		m.Code,
		m.Title,
		m.Description,
		m.Rate,
		m.FeeKind,
		m.Status,
		m.StartDate,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating matter: %w", err)
	}

	return nil
}

func (s *Store) GetMatter(ctx context.Context, id uuid.UUID) (*matter.Matter, error) {
	query := `SELECT ` + selectMatterColumns + `
		FROM matters m
		LEFT JOIN referrals r ON m.referral_id = r.id
		WHERE m.id = $1`

	m, err := scanMatter(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, matter.ErrNotFound
		}

		return nil, fmt.Errorf("getting matter: %w", err)
	}

	if err := s.loadSharedWith(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *Store) ListMatters(ctx context.Context, filter matter.ListFilter) ([]*matter.Matter, error) {
	query := `SELECT ` + selectMatterColumns + `
		FROM matters m
		LEFT JOIN referrals r ON m.referral_id = r.id
		WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND m.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.FeeKind != nil {
		query += fmt.Sprintf(" AND m.fee_kind = $%d", argIdx)

		args = append(args, *filter.FeeKind)
		argIdx++
	}

	if filter.UserID != nil {
		query += fmt.Sprintf(` AND (m.attorney_id = $%d OR m.client_id = $%d OR EXISTS (
			SELECT 1 FROM matter_shared_with sw WHERE sw.matter_id = m.id AND sw.user_id = $%d
		))`, argIdx, argIdx, argIdx)

		args = append(args, *filter.UserID)
		argIdx++
	}

	query += " ORDER BY m.created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing matters: %w", err)
	}
	defer rows.Close()

	var matters []*matter.Matter

	for rows.Next() {
		m, err := scanMatter(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning matter: %w", err)
		}

		matters = append(matters, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating matter rows: %w", err)
	}

	for _, m := range matters {
		if err := s.loadSharedWith(ctx, m); err != nil {
			return nil, err
		}
	}

	return matters, nil
}

func (s *Store) UpdateMatter(ctx context.Context, m *matter.Matter) error {
	query := `
		UPDATE matters
		SET title = $1, description = $2, rate = $3, fee_kind = $4, start_date = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err := s.db.ExecContext(ctx, query,
		m.Title,
		m.Description,
		m.Rate,
		m.FeeKind,
		m.StartDate,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating matter: %w", err)
	}

	return nil
}

// SaveStatusChange persists the status transition and its referral
// bookkeeping atomically. The status field never changes without its
// accompanying effects landing in the same transaction.
func (s *Store) SaveStatusChange(ctx context.Context, m *matter.Matter, change *matter.StatusChange) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if change != nil && change.CreateReferral != nil {
		referralQuery := `
			INSERT INTO referrals (id, attorney_id, message, created_at)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := dbTx.ExecContext(ctx, referralQuery,
			change.CreateReferral.ID,
			change.CreateReferral.AttorneyID,
			change.CreateReferral.Message,
			change.CreateReferral.CreatedAt,
		); err != nil {
			return fmt.Errorf("creating referral: %w", err)
		}
	}

	matterQuery := `
		UPDATE matters
		SET status = $1, referral_id = $2, attorney_id = $3, close_date = $4, updated_at = NOW()
		WHERE id = $5
	`
	if _, err := dbTx.ExecContext(ctx, matterQuery,
		m.Status,
		m.ReferralID,
		m.AttorneyID,
		m.CloseDate,
		m.ID,
	); err != nil {
		return fmt.Errorf("updating matter status: %w", err)
	}

	if change != nil && change.DeleteReferralID != nil {
		if _, err := dbTx.ExecContext(ctx,
			"DELETE FROM referrals WHERE id = $1", *change.DeleteReferralID,
		); err != nil {
			return fmt.Errorf("deleting referral: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing status change: %w", err)
	}

	return nil
}

func (s *Store) ShareWith(ctx context.Context, matterID uuid.UUID, userIDs []uuid.UUID) error {
	query := `
		INSERT INTO matter_shared_with (matter_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (matter_id, user_id) DO NOTHING
	`

	for _, userID := range userIDs {
		if _, err := s.db.ExecContext(ctx, query, matterID, userID); err != nil {
			return fmt.Errorf("sharing matter: %w", err)
		}
	}

	return nil
}

func (s *Store) loadSharedWith(ctx context.Context, m *matter.Matter) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id FROM matter_shared_with WHERE matter_id = $1", m.ID,
	)
	if err != nil {
		return fmt.Errorf("loading share list: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID uuid.UUID
		if err := rows.Scan(&userID); err != nil {
			return fmt.Errorf("scanning share list: %w", err)
		}

		m.SharedWith = append(m.SharedWith, userID)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating share list: %w", err)
	}

	return nil
}
