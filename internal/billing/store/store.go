package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/barrister/internal/billing"
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

// querier is satisfied by both *sql.DB and *sql.Tx, so the read helpers
// work inside and outside a matter transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const selectEntryColumns = `
	e.id, e.matter_id, e.created_by, e.description, e.kind, e.date,
	e.time_spent_seconds, e.hourly_rate, e.rate, e.quantity, e.total_amount,
	e.is_billable, e.created_at, e.updated_at
`

// scanEntry reads a billing entry row. Logged time is stored as whole
// seconds.
func scanEntry(s scanner) (*billing.Entry, error) {
	var e billing.Entry

	var kind string

	var seconds int64

	if err := s.Scan(
		&e.ID, &e.MatterID, &e.CreatedBy, &e.Description, &kind, &e.Date,
		&seconds, &e.HourlyRate, &e.Rate, &e.Quantity, &e.TotalAmount,
		&e.IsBillable, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.Kind = billing.Kind(kind)
	e.TimeSpent = time.Duration(seconds) * time.Second

	return &e, nil
}

const selectInvoiceColumns = `
	i.id, i.matter_id, i.created_by, i.number, i.title, i.note,
	i.period_start, i.period_end, i.status, i.payment_status,
	i.due_date, i.finalized_at, i.provider_id, i.created_at, i.updated_at
`

func scanInvoice(s scanner) (*billing.Invoice, error) {
	var inv billing.Invoice

	var status, paymentStatus string

	var number, providerID sql.NullString

	if err := s.Scan(
		&inv.ID, &inv.MatterID, &inv.CreatedBy, &number, &inv.Title, &inv.Note,
		&inv.PeriodStart, &inv.PeriodEnd, &status, &paymentStatus,
		&inv.DueDate, &inv.FinalizedAt, &providerID, &inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	inv.Status = billing.InvoiceStatus(status)
	inv.PaymentStatus = billing.PaymentStatus(paymentStatus)
	inv.Number = number.String
	inv.ProviderID = providerID.String

	return &inv, nil
}

func (s *Store) GetMatter(ctx context.Context, id uuid.UUID) (*matter.Matter, error) {
	return getMatter(ctx, s.db, id)
}

func (s *Store) GetEntry(ctx context.Context, id uuid.UUID) (*billing.Entry, error) {
	return getEntry(ctx, s.db, id)
}

func (s *Store) ListEntries(ctx context.Context, filter billing.EntryFilter) ([]*billing.Entry, error) {
	query := `SELECT ` + selectEntryColumns + `
		FROM billing_entries e
		WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.MatterID != nil {
		query += fmt.Sprintf(" AND e.matter_id = $%d", argIdx)

		args = append(args, *filter.MatterID)
		argIdx++
	}

	if filter.CreatedBy != nil {
		query += fmt.Sprintf(" AND e.created_by = $%d", argIdx)

		args = append(args, *filter.CreatedBy)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND e.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND e.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.Billable != nil {
		query += fmt.Sprintf(" AND e.is_billable = $%d", argIdx)

		args = append(args, *filter.Billable)
		argIdx++
	}

	query += " ORDER BY e.date ASC, e.created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []*billing.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entry rows: %w", err)
	}

	return entries, nil
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	return getInvoice(ctx, s.db, id)
}

func (s *Store) ListInvoices(ctx context.Context, filter billing.InvoiceFilter) ([]*billing.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices i
		WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.MatterID != nil {
		query += fmt.Sprintf(" AND i.matter_id = $%d", argIdx)

		args = append(args, *filter.MatterID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND i.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.PaymentStatus != nil {
		query += fmt.Sprintf(" AND i.payment_status = $%d", argIdx)

		args = append(args, *filter.PaymentStatus)
		argIdx++
	}

	query += " ORDER BY i.period_start ASC, i.created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*billing.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	for _, inv := range invoices {
		if err := loadInvoiceEntries(ctx, s.db, inv); err != nil {
			return nil, err
		}
	}

	return invoices, nil
}

func (s *Store) MarkOverdue(ctx context.Context, invoiceID uuid.UUID) error {
	query := `
		UPDATE invoices
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	_, err := s.db.ExecContext(ctx, query,
		billing.InvoiceStatusOverdue,
		invoiceID,
		billing.InvoiceStatusOpen,
	)
	if err != nil {
		return fmt.Errorf("marking invoice overdue: %w", err)
	}

	return nil
}

func (s *Store) ListBillableMatterIDs(ctx context.Context, periodStart, periodEnd time.Time) ([]uuid.UUID, error) {
	query := `
		SELECT m.id FROM matters m
		WHERE m.status = $1 AND m.fee_kind = $2 AND EXISTS (
			SELECT 1 FROM billing_entries e
			WHERE e.matter_id = m.id AND e.is_billable
				AND e.date >= $3 AND e.date <= $4
		)
		ORDER BY m.created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query,
		matter.StatusOpen, matter.FeeKindHourly, periodStart, periodEnd,
	)
	if err != nil {
		return nil, fmt.Errorf("listing billable matters: %w", err)
	}
	defer rows.Close()

	return collectIDs(rows)
}

func (s *Store) ListStaleFailedInvoiceIDs(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	query := `
		SELECT i.id FROM invoices i
		WHERE i.payment_status = $1 AND i.updated_at < $2
	`

	rows, err := s.db.QueryContext(ctx, query, billing.PaymentStatusFailed, cutoff)
	if err != nil {
		return nil, fmt.Errorf("listing stale failed invoices: %w", err)
	}
	defer rows.Close()

	return collectIDs(rows)
}

// matterLockKey hashes the matter id into the advisory lock keyspace.
func matterLockKey(matterID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte(matterID.String()))

	return int64(h.Sum64())
}

type matterTx struct {
	tx *sql.Tx
}

// BeginMatterTx opens a transaction holding the matter's advisory lock,
// so reconciliations against the same matter run one at a time. The
// lock is released with the transaction.
func (s *Store) BeginMatterTx(ctx context.Context, matterID uuid.UUID) (billing.MatterTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning matter tx: %w", err)
	}

	lockKey := matterLockKey(matterID)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring matter lock: %w", err)
	}

	return &matterTx{tx: dbTx}, nil
}

func (mtx *matterTx) Commit() error   { return mtx.tx.Commit() }
func (mtx *matterTx) Rollback() error { return mtx.tx.Rollback() }

func (mtx *matterTx) GetMatter(ctx context.Context, id uuid.UUID) (*matter.Matter, error) {
	return getMatter(ctx, mtx.tx, id)
}

func (mtx *matterTx) CreateEntry(ctx context.Context, e *billing.Entry) error {
	query := `
		INSERT INTO billing_entries (matter_id, created_by, description, kind, date, time_spent_seconds, hourly_rate, rate, quantity, total_amount, is_billable, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := mtx.tx.QueryRowContext(ctx, query,
		e.MatterID,
		e.CreatedBy,
		e.Description,
		e.Kind,
		e.Date,
		int64(e.TimeSpent/time.Second),
		e.HourlyRate,
		e.Rate,
		e.Quantity,
		e.TotalAmount,
		e.IsBillable,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating entry: %w", err)
	}

	return nil
}

func (mtx *matterTx) UpdateEntry(ctx context.Context, e *billing.Entry) error {
	query := `
		UPDATE billing_entries
		SET description = $1, date = $2, time_spent_seconds = $3, hourly_rate = $4, rate = $5, quantity = $6, total_amount = $7, is_billable = $8, updated_at = NOW()
		WHERE id = $9
	`

	_, err := mtx.tx.ExecContext(ctx, query,
		e.Description,
		e.Date,
		int64(e.TimeSpent/time.Second),
		e.HourlyRate,
		e.Rate,
		e.Quantity,
		e.TotalAmount,
		e.IsBillable,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}

	return nil
}

func (mtx *matterTx) GetEntry(ctx context.Context, id uuid.UUID) (*billing.Entry, error) {
	return getEntry(ctx, mtx.tx, id)
}

func (mtx *matterTx) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if _, err := mtx.tx.ExecContext(ctx,
		"DELETE FROM billing_entries WHERE id = $1", id,
	); err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}

	return nil
}

func (mtx *matterTx) CreateInvoice(ctx context.Context, inv *billing.Invoice) error {
	query := `
		INSERT INTO invoices (matter_id, created_by, title, note, period_start, period_end, status, payment_status, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := mtx.tx.QueryRowContext(ctx, query,
		inv.MatterID,
		inv.CreatedBy,
		inv.Title,
		inv.Note,
		inv.PeriodStart,
		inv.PeriodEnd,
		inv.Status,
		inv.PaymentStatus,
		inv.DueDate,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	return nil
}

func (mtx *matterTx) UpdateInvoice(ctx context.Context, inv *billing.Invoice) error {
	query := `
		UPDATE invoices
		SET title = $1, note = $2, period_start = $3, period_end = $4, due_date = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err := mtx.tx.ExecContext(ctx, query,
		inv.Title,
		inv.Note,
		inv.PeriodStart,
		inv.PeriodEnd,
		inv.DueDate,
		inv.ID,
	)
	if err != nil {
		return fmt.Errorf("updating invoice: %w", err)
	}

	return nil
}

func (mtx *matterTx) GetInvoice(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	return getInvoice(ctx, mtx.tx, id)
}

// GetOrCreateInvoice relies on the unique index over (matter_id,
// period_start, period_end): the conflicting insert returns no row, in
// which case the existing invoice is loaded into inv instead.
func (mtx *matterTx) GetOrCreateInvoice(ctx context.Context, inv *billing.Invoice) (bool, error) {
	query := `
		INSERT INTO invoices (matter_id, created_by, title, note, period_start, period_end, status, payment_status, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (matter_id, period_start, period_end) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := mtx.tx.QueryRowContext(ctx, query,
		inv.MatterID,
		inv.CreatedBy,
		inv.Title,
		inv.Note,
		inv.PeriodStart,
		inv.PeriodEnd,
		inv.Status,
		inv.PaymentStatus,
		inv.DueDate,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err == nil {
		return true, nil
	}

	if err != sql.ErrNoRows {
		return false, fmt.Errorf("creating invoice: %w", err)
	}

	existingQuery := `SELECT ` + selectInvoiceColumns + `
		FROM invoices i
		WHERE i.matter_id = $1 AND i.period_start = $2 AND i.period_end = $3`

	existing, err := scanInvoice(mtx.tx.QueryRowContext(ctx, existingQuery,
		inv.MatterID, inv.PeriodStart, inv.PeriodEnd,
	))
	if err != nil {
		return false, fmt.Errorf("loading existing invoice: %w", err)
	}

	*inv = *existing

	return false, nil
}

func (mtx *matterTx) UpdateInvoiceTransition(ctx context.Context, inv *billing.Invoice) error {
	query := `
		UPDATE invoices
		SET status = $1, payment_status = $2, number = $3, due_date = $4, finalized_at = $5, provider_id = $6, updated_at = NOW()
		WHERE id = $7
	`

	_, err := mtx.tx.ExecContext(ctx, query,
		inv.Status,
		inv.PaymentStatus,
		nullString(inv.Number),
		inv.DueDate,
		inv.FinalizedAt,
		nullString(inv.ProviderID),
		inv.ID,
	)
	if err != nil {
		return fmt.Errorf("updating invoice transition: %w", err)
	}

	return nil
}

func (mtx *matterTx) MatchInvoices(ctx context.Context, matterID uuid.UUID, date time.Time) ([]uuid.UUID, error) {
	query := `
		SELECT i.id FROM invoices i
		WHERE i.matter_id = $1 AND i.payment_status = $2
			AND i.period_start <= $3 AND i.period_end >= $3
	`

	rows, err := mtx.tx.QueryContext(ctx, query,
		matterID, billing.PaymentStatusNotStarted, date,
	)
	if err != nil {
		return nil, fmt.Errorf("matching invoices: %w", err)
	}
	defer rows.Close()

	return collectIDs(rows)
}

func (mtx *matterTx) MatchEntries(ctx context.Context, matterID uuid.UUID, periodStart, periodEnd time.Time) ([]uuid.UUID, error) {
	query := `
		SELECT e.id FROM billing_entries e
		WHERE e.matter_id = $1 AND e.date >= $2 AND e.date <= $3
			AND NOT EXISTS (
				SELECT 1 FROM billing_item_attachments a
				JOIN invoices i ON a.invoice_id = i.id
				WHERE a.entry_id = e.id AND i.payment_status <> $4
			)
	`

	rows, err := mtx.tx.QueryContext(ctx, query,
		matterID, periodStart, periodEnd, billing.PaymentStatusNotStarted,
	)
	if err != nil {
		return nil, fmt.Errorf("matching entries: %w", err)
	}
	defer rows.Close()

	return collectIDs(rows)
}

func (mtx *matterTx) EntryEditable(ctx context.Context, entryID uuid.UUID) (bool, error) {
	query := `
		SELECT NOT EXISTS (
			SELECT 1 FROM billing_item_attachments a
			JOIN invoices i ON a.invoice_id = i.id
			WHERE a.entry_id = $1 AND i.payment_status <> $2
		)
	`

	var editable bool
	if err := mtx.tx.QueryRowContext(ctx, query,
		entryID, billing.PaymentStatusNotStarted,
	).Scan(&editable); err != nil {
		return false, fmt.Errorf("checking entry editability: %w", err)
	}

	return editable, nil
}

func (mtx *matterTx) EntryInvoiceIDs(ctx context.Context, entryID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := mtx.tx.QueryContext(ctx,
		"SELECT invoice_id FROM billing_item_attachments WHERE entry_id = $1", entryID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading entry attachments: %w", err)
	}
	defer rows.Close()

	return collectIDs(rows)
}

func (mtx *matterTx) InvoiceEntryIDs(ctx context.Context, invoiceID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := mtx.tx.QueryContext(ctx,
		"SELECT entry_id FROM billing_item_attachments WHERE invoice_id = $1", invoiceID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading invoice attachments: %w", err)
	}
	defer rows.Close()

	return collectIDs(rows)
}

func (mtx *matterTx) CreateAttachments(ctx context.Context, links []billing.AttachmentLink) error {
	query := `
		INSERT INTO billing_item_attachments (entry_id, invoice_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (entry_id, invoice_id) DO NOTHING
	`

	for _, link := range links {
		if _, err := mtx.tx.ExecContext(ctx, query, link.EntryID, link.InvoiceID); err != nil {
			return fmt.Errorf("creating attachment: %w", err)
		}
	}

	return nil
}

func (mtx *matterTx) DeleteAttachmentsByEntry(ctx context.Context, entryID uuid.UUID, invoiceIDs []uuid.UUID) error {
	if invoiceIDs == nil {
		if _, err := mtx.tx.ExecContext(ctx,
			"DELETE FROM billing_item_attachments WHERE entry_id = $1", entryID,
		); err != nil {
			return fmt.Errorf("deleting entry attachments: %w", err)
		}

		return nil
	}

	query := "DELETE FROM billing_item_attachments WHERE entry_id = $1 AND invoice_id = $2"

	for _, invoiceID := range invoiceIDs {
		if _, err := mtx.tx.ExecContext(ctx, query, entryID, invoiceID); err != nil {
			return fmt.Errorf("deleting entry attachment: %w", err)
		}
	}

	return nil
}

func (mtx *matterTx) DeleteAttachmentsByInvoice(ctx context.Context, invoiceID uuid.UUID, entryIDs []uuid.UUID) error {
	query := "DELETE FROM billing_item_attachments WHERE invoice_id = $1 AND entry_id = $2"

	for _, entryID := range entryIDs {
		if _, err := mtx.tx.ExecContext(ctx, query, invoiceID, entryID); err != nil {
			return fmt.Errorf("deleting invoice attachment: %w", err)
		}
	}

	return nil
}

func (mtx *matterTx) DeleteCompetingAttachments(ctx context.Context, invoiceID uuid.UUID, entryIDs []uuid.UUID) error {
	query := "DELETE FROM billing_item_attachments WHERE entry_id = $1 AND invoice_id <> $2"

	for _, entryID := range entryIDs {
		if _, err := mtx.tx.ExecContext(ctx, query, entryID, invoiceID); err != nil {
			return fmt.Errorf("deleting competing attachment: %w", err)
		}
	}

	return nil
}

func getMatter(ctx context.Context, q querier, id uuid.UUID) (*matter.Matter, error) {
	query := `
		SELECT m.id, m.client_id, m.attorney_id, m.code, m.title, m.description,
			m.rate, m.fee_kind, m.status, m.referral_id,
			m.start_date, m.close_date, m.created_at, m.updated_at
		FROM matters m
		WHERE m.id = $1
	`

	var m matter.Matter

	var feeKind, status string

	err := q.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.ClientID, &m.AttorneyID, &m.Code, &m.Title, &m.Description,
		&m.Rate, &feeKind, &status, &m.ReferralID,
		&m.StartDate, &m.CloseDate, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, matter.ErrNotFound
		}

		return nil, fmt.Errorf("getting matter: %w", err)
	}

	m.FeeKind = matter.FeeKind(feeKind)
	m.Status = matter.Status(status)

	rows, err := q.QueryContext(ctx,
		"SELECT user_id FROM matter_shared_with WHERE matter_id = $1", m.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading share list: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID uuid.UUID
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("scanning share list: %w", err)
		}

		m.SharedWith = append(m.SharedWith, userID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating share list: %w", err)
	}

	return &m, nil
}

func getEntry(ctx context.Context, q querier, id uuid.UUID) (*billing.Entry, error) {
	query := `SELECT ` + selectEntryColumns + `
		FROM billing_entries e
		WHERE e.id = $1`

	e, err := scanEntry(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, billing.ErrEntryNotFound
		}

		return nil, fmt.Errorf("getting entry: %w", err)
	}

	return e, nil
}

func getInvoice(ctx context.Context, q querier, id uuid.UUID) (*billing.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices i
		WHERE i.id = $1`

	inv, err := scanInvoice(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, billing.ErrInvoiceNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	if err := loadInvoiceEntries(ctx, q, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func loadInvoiceEntries(ctx context.Context, q querier, inv *billing.Invoice) error {
	query := `SELECT ` + selectEntryColumns + `
		FROM billing_entries e
		JOIN billing_item_attachments a ON a.entry_id = e.id
		WHERE a.invoice_id = $1
		ORDER BY e.date ASC, e.created_at ASC`

	rows, err := q.QueryContext(ctx, query, inv.ID)
	if err != nil {
		return fmt.Errorf("loading invoice entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return fmt.Errorf("scanning invoice entry: %w", err)
		}

		inv.Entries = append(inv.Entries, e)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating invoice entries: %w", err)
	}

	return nil
}

func collectIDs(rows *sql.Rows) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning id: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating id rows: %w", err)
	}

	return ids, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
