package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/barrister/internal/billing"
	"github.com/MrJamesThe3rd/barrister/internal/matter"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func hourlyMatter(store *memStore) *matter.Matter {
	return store.addMatter(&matter.Matter{
		ClientID:   uuid.New(),
		AttorneyID: uuid.New(),
		Title:      "Smith v. Jones",
		Rate:       decimal.NewFromInt(250),
		FeeKind:    matter.FeeKindHourly,
		Status:     matter.StatusOpen,
	})
}

func timeEntry(store *memStore, m *matter.Matter, date time.Time) *billing.Entry {
	return store.addEntry(&billing.Entry{
		MatterID:   m.ID,
		CreatedBy:  m.AttorneyID,
		Kind:       billing.KindTime,
		Date:       date,
		TimeSpent:  2 * time.Hour,
		HourlyRate: m.Rate,
		IsBillable: true,
	})
}

func monthInvoice(store *memStore, m *matter.Matter, anchor time.Time) *billing.Invoice {
	start, end := billing.MonthPeriod(anchor)

	return store.addInvoice(&billing.Invoice{
		MatterID:      m.ID,
		CreatedBy:     m.AttorneyID,
		Title:         m.Title + " Invoice",
		PeriodStart:   start,
		PeriodEnd:     end,
		Status:        billing.InvoiceStatusDraft,
		PaymentStatus: billing.PaymentStatusNotStarted,
	})
}

func TestEngine_OnEntrySaved_AttachesToCoveringInvoice(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	inv := monthInvoice(store, m, testNow)
	e := timeEntry(store, m, testNow)

	engine := billing.NewEngine()

	err := engine.OnEntrySaved(context.Background(), store, m, e, true, false, testNow)
	require.NoError(t, err)

	assert.True(t, store.linked(e.ID, inv.ID))
}

func TestEngine_OnEntrySaved_CurrentMonthWithoutInvoice(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	e := timeEntry(store, m, testNow)

	engine := billing.NewEngine()

	err := engine.OnEntrySaved(context.Background(), store, m, e, true, false, testNow)
	require.NoError(t, err)

	// The running month is left for the periodic generator.
	assert.Empty(t, store.invoices)
	assert.Empty(t, store.links[e.ID])
}

func TestEngine_OnEntrySaved_PastMonthCreatesInvoice(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	entryDate := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	e := timeEntry(store, m, entryDate)

	engine := billing.NewEngine()

	err := engine.OnEntrySaved(context.Background(), store, m, e, true, false, testNow)
	require.NoError(t, err)

	require.Len(t, store.invoices, 1)

	for id, inv := range store.invoices {
		assert.Equal(t, billing.InvoiceStatusDraft, inv.Status)
		assert.Equal(t, billing.PaymentStatusNotStarted, inv.PaymentStatus)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), inv.PeriodStart)
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), inv.PeriodEnd)
		assert.True(t, store.linked(e.ID, id))
	}
}

func TestEngine_OnEntrySaved_PastMonthExistingInvoiceNotDuplicated(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	entryDate := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	inv := monthInvoice(store, m, entryDate)
	e := timeEntry(store, m, entryDate)

	engine := billing.NewEngine()

	err := engine.OnEntrySaved(context.Background(), store, m, e, true, false, testNow)
	require.NoError(t, err)

	assert.Len(t, store.invoices, 1)
	assert.True(t, store.linked(e.ID, inv.ID))
}

func TestEngine_OnEntrySaved_DateMoveReattaches(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	january := monthInvoice(store, m, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	february := monthInvoice(store, m, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	e := timeEntry(store, m, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))
	store.link(e.ID, january.ID)

	e.Date = time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)

	engine := billing.NewEngine()

	err := engine.OnEntrySaved(context.Background(), store, m, e, false, true, testNow)
	require.NoError(t, err)

	assert.False(t, store.linked(e.ID, january.ID))
	assert.True(t, store.linked(e.ID, february.ID))
}

func TestEngine_OnEntrySaved_SkipsNonHourlyMatter(t *testing.T) {
	store := newMemStore()
	m := store.addMatter(&matter.Matter{
		ClientID:   uuid.New(),
		AttorneyID: uuid.New(),
		FeeKind:    matter.FeeKindFixed,
		Status:     matter.StatusOpen,
	})
	monthInvoice(store, m, testNow)
	e := timeEntry(store, m, testNow)

	engine := billing.NewEngine()

	err := engine.OnEntrySaved(context.Background(), store, m, e, true, false, testNow)
	require.NoError(t, err)

	assert.Empty(t, store.links[e.ID])
}

func TestEngine_OnEntrySaved_SkipsFrozenEntry(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	frozen := monthInvoice(store, m, testNow)
	frozen.PaymentStatus = billing.PaymentStatusInProgress
	other := monthInvoice(store, m, testNow.AddDate(0, -1, 0))
	e := timeEntry(store, m, testNow)
	store.link(e.ID, frozen.ID)

	engine := billing.NewEngine()

	err := engine.OnEntrySaved(context.Background(), store, m, e, false, true, testNow)
	require.NoError(t, err)

	// Attachments of an entry held by a paying invoice never move.
	assert.True(t, store.linked(e.ID, frozen.ID))
	assert.False(t, store.linked(e.ID, other.ID))
}

func TestEngine_OnEntrySaved_UpdateWithoutDateChangeIsNoop(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	inv := monthInvoice(store, m, testNow)
	e := timeEntry(store, m, testNow)

	engine := billing.NewEngine()

	err := engine.OnEntrySaved(context.Background(), store, m, e, false, false, testNow)
	require.NoError(t, err)

	assert.False(t, store.linked(e.ID, inv.ID))
}

func TestEngine_OnInvoiceSaved_AttachesPeriodEntries(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	inside := timeEntry(store, m, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	outside := timeEntry(store, m, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC))
	inv := monthInvoice(store, m, testNow)

	engine := billing.NewEngine()

	err := engine.OnInvoiceSaved(context.Background(), store, m, inv, true, false, testNow)
	require.NoError(t, err)

	assert.True(t, store.linked(inside.ID, inv.ID))
	assert.False(t, store.linked(outside.ID, inv.ID))
}

func TestEngine_OnInvoiceSaved_PeriodChangeReattaches(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	january := timeEntry(store, m, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	february := timeEntry(store, m, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	inv := monthInvoice(store, m, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	store.link(january.ID, inv.ID)

	inv.PeriodStart, inv.PeriodEnd = billing.MonthPeriod(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	engine := billing.NewEngine()

	err := engine.OnInvoiceSaved(context.Background(), store, m, inv, false, true, testNow)
	require.NoError(t, err)

	assert.False(t, store.linked(january.ID, inv.ID))
	assert.True(t, store.linked(february.ID, inv.ID))
}

func TestEngine_OnInvoiceSaved_LeavesFrozenEntriesAlone(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	paying := monthInvoice(store, m, testNow)
	paying.PaymentStatus = billing.PaymentStatusInProgress
	e := timeEntry(store, m, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	store.link(e.ID, paying.ID)

	inv := monthInvoice(store, m, testNow)

	engine := billing.NewEngine()

	err := engine.OnInvoiceSaved(context.Background(), store, m, inv, true, false, testNow)
	require.NoError(t, err)

	assert.False(t, store.linked(e.ID, inv.ID))
	assert.True(t, store.linked(e.ID, paying.ID))
}

func TestEngine_OnInvoiceSaved_Idempotent(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	e := timeEntry(store, m, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	inv := monthInvoice(store, m, testNow)

	engine := billing.NewEngine()

	require.NoError(t, engine.OnInvoiceSaved(context.Background(), store, m, inv, true, false, testNow))
	require.NoError(t, engine.OnInvoiceSaved(context.Background(), store, m, inv, true, false, testNow))

	assert.True(t, store.linked(e.ID, inv.ID))
	assert.Len(t, store.links[e.ID], 1)
}
