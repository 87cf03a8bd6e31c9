package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/barrister/internal/billing"
	"github.com/MrJamesThe3rd/barrister/internal/matter"
)

func TestGenerator_Run(t *testing.T) {
	store := newMemStore()

	billable := hourlyMatter(store)
	timeEntry(store, billable, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))

	// Hourly but nothing logged last month.
	idle := hourlyMatter(store)
	timeEntry(store, idle, time.Date(2023, 11, 10, 0, 0, 0, 0, time.UTC))

	// Fixed-fee matters never generate invoices.
	fixed := store.addMatter(&matter.Matter{
		FeeKind: matter.FeeKindFixed,
		Status:  matter.StatusOpen,
	})
	timeEntry(store, fixed, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))

	generator := billing.NewGenerator(store)

	asOf := time.Date(2024, 3, 1, 4, 0, 0, 0, time.UTC)

	created, err := generator.Run(context.Background(), asOf)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	require.Len(t, store.invoices, 1)

	for _, inv := range store.invoices {
		assert.Equal(t, billable.ID, inv.MatterID)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), inv.PeriodStart)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), inv.PeriodEnd)
		assert.Equal(t, billing.InvoiceStatusDraft, inv.Status)
	}
}

func TestGenerator_Run_SecondRunCreatesNothing(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	e := timeEntry(store, m, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))

	generator := billing.NewGenerator(store)

	asOf := time.Date(2024, 3, 1, 4, 0, 0, 0, time.UTC)

	created, err := generator.Run(context.Background(), asOf)
	require.NoError(t, err)
	require.Equal(t, 1, created)

	created, err = generator.Run(context.Background(), asOf)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	assert.Len(t, store.invoices, 1)
	assert.Len(t, store.links[e.ID], 1)
}
