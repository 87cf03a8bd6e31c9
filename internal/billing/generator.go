package billing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Generator creates the previous month's invoice for every open,
// hourly-rated matter with billable work in that month. Creating the
// same period twice is a no-op, so overlapping runs are harmless.
type Generator struct {
	repo   Repository
	engine *Engine
}

func NewGenerator(repo Repository) *Generator {
	return &Generator{repo: repo, engine: NewEngine()}
}

// Run generates invoices for the month preceding asOf and returns how
// many were created. A failure on one matter is logged and does not
// stop the run.
func (g *Generator) Run(ctx context.Context, asOf time.Time) (int, error) {
	periodStart, periodEnd := PreviousMonthPeriod(asOf)

	matterIDs, err := g.repo.ListBillableMatterIDs(ctx, periodStart, periodEnd)
	if err != nil {
		return 0, fmt.Errorf("listing billable matters: %w", err)
	}

	created := 0

	for _, id := range matterIDs {
		wasCreated, err := g.generateForMatter(ctx, id, periodStart, periodEnd, asOf)
		if err != nil {
			slog.Error("failed to generate invoice", "matter", id, "error", err)
			continue
		}

		if wasCreated {
			created++
		}
	}

	return created, nil
}

func (g *Generator) generateForMatter(ctx context.Context, matterID uuid.UUID, periodStart, periodEnd, asOf time.Time) (bool, error) {
	tx, err := g.repo.BeginMatterTx(ctx, matterID)
	if err != nil {
		return false, fmt.Errorf("beginning matter tx: %w", err)
	}
	defer tx.Rollback()

	m, err := tx.GetMatter(ctx, matterID)
	if err != nil {
		return false, err
	}

	inv := &Invoice{
		MatterID:      matterID,
		CreatedBy:     m.AttorneyID,
		Title:         m.Title + " Invoice",
		PeriodStart:   periodStart,
		PeriodEnd:     periodEnd,
		Status:        InvoiceStatusDraft,
		PaymentStatus: PaymentStatusNotStarted,
	}

	created, err := tx.GetOrCreateInvoice(ctx, inv)
	if err != nil {
		return false, fmt.Errorf("creating invoice: %w", err)
	}

	if created {
		if err := g.engine.OnInvoiceSaved(ctx, tx, m, inv, true, false, asOf); err != nil {
			return false, fmt.Errorf("reconciling invoice: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing invoice generation: %w", err)
	}

	return created, nil
}
