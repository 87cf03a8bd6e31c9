package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/barrister/internal/billing"
	"github.com/MrJamesThe3rd/barrister/internal/matter"
	"github.com/MrJamesThe3rd/barrister/internal/notify"
	"github.com/MrJamesThe3rd/barrister/internal/payments"
)

type fakeProvider struct {
	createErr error
	sendErr   error
	payErr    error

	created []string
	sent    []string
	paid    []string
	items   int
}

func (p *fakeProvider) CreateInvoice(_ context.Context, params payments.CreateInvoiceParams) (*payments.Invoice, error) {
	if p.createErr != nil {
		return nil, p.createErr
	}

	id := "prov_" + params.LocalID.String()
	p.created = append(p.created, id)

	return &payments.Invoice{ID: id, Number: "INV-001"}, nil
}

func (p *fakeProvider) CreateInvoiceItem(_ context.Context, providerID string, _ payments.ItemParams) error {
	p.items++
	return nil
}

func (p *fakeProvider) GetInvoice(_ context.Context, providerID string) (*payments.Invoice, error) {
	for _, id := range p.created {
		if id == providerID {
			return &payments.Invoice{ID: id}, nil
		}
	}

	return nil, payments.ErrNotFound
}

func (p *fakeProvider) SendInvoice(_ context.Context, providerID string) (*payments.Invoice, error) {
	if p.sendErr != nil {
		return nil, p.sendErr
	}

	p.sent = append(p.sent, providerID)

	return &payments.Invoice{ID: providerID}, nil
}

func (p *fakeProvider) PayInvoice(_ context.Context, providerID string) (*payments.Invoice, error) {
	if p.payErr != nil {
		return nil, p.payErr
	}

	p.paid = append(p.paid, providerID)

	return &payments.Invoice{ID: providerID}, nil
}

type notification struct {
	kind      notify.Kind
	recipient uuid.UUID
}

type fakeNotifier struct {
	sent []notification
}

func (n *fakeNotifier) Notify(_ context.Context, kind notify.Kind, recipient uuid.UUID, _ uuid.UUID) {
	n.sent = append(n.sent, notification{kind: kind, recipient: recipient})
}

func newTestService(store *memStore, provider payments.Provider, notifier notify.Notifier) *billing.Service {
	return billing.NewService(store, provider, notifier, 30, 24*time.Hour).
		WithClock(func() time.Time { return testNow })
}

func TestService_CreateEntry_PastMonthGeneratesInvoice(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	provider := &fakeProvider{}
	notifier := &fakeNotifier{}
	svc := newTestService(store, provider, notifier)

	e, err := svc.CreateEntry(context.Background(), billing.EntryCreateParams{
		MatterID:   m.ID,
		Kind:       billing.KindTime,
		Date:       time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		TimeSpent:  3 * time.Hour,
		HourlyRate: m.Rate,
		IsBillable: true,
	})
	require.NoError(t, err)

	// No creator given, the matter's attorney owns the entry.
	assert.Equal(t, m.AttorneyID, e.CreatedBy)

	require.Len(t, store.invoices, 1)

	for id := range store.invoices {
		assert.True(t, store.linked(e.ID, id))
	}
}

func TestService_CreateEntry_LastDayOfMonthTimestamp(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	provider := &fakeProvider{}
	notifier := &fakeNotifier{}
	svc := newTestService(store, provider, notifier)

	// Clients may send a full timestamp; only the calendar day counts.
	e, err := svc.CreateEntry(context.Background(), billing.EntryCreateParams{
		MatterID:   m.ID,
		Kind:       billing.KindTime,
		Date:       time.Date(2024, 1, 31, 12, 30, 0, 0, time.UTC),
		TimeSpent:  2 * time.Hour,
		HourlyRate: m.Rate,
		IsBillable: true,
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), e.Date)

	require.Len(t, store.invoices, 1)

	for id, inv := range store.invoices {
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), inv.PeriodStart)
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), inv.PeriodEnd)
		assert.True(t, store.linked(e.ID, id))
	}
}

func TestService_UpdateEntry_LockedByPayingInvoice(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	inv := monthInvoice(store, m, testNow)
	inv.PaymentStatus = billing.PaymentStatusInProgress
	e := timeEntry(store, m, testNow)
	store.link(e.ID, inv.ID)

	svc := newTestService(store, &fakeProvider{}, &fakeNotifier{})

	_, err := svc.UpdateEntry(context.Background(), e.ID, billing.EntryUpdateParams{
		Date:       e.Date,
		TimeSpent:  5 * time.Hour,
		HourlyRate: e.HourlyRate,
		IsBillable: true,
	})
	assert.ErrorIs(t, err, billing.ErrEntryLocked)
}

func TestService_DeleteEntry(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	inv := monthInvoice(store, m, testNow)
	e := timeEntry(store, m, testNow)
	store.link(e.ID, inv.ID)

	svc := newTestService(store, &fakeProvider{}, &fakeNotifier{})

	require.NoError(t, svc.DeleteEntry(context.Background(), e.ID))

	assert.NotContains(t, store.entries, e.ID)
	assert.Empty(t, store.links[e.ID])
}

func TestService_DeleteEntry_RollsBackOnStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := billing.NewMockRepository(ctrl)
	tx := billing.NewMockMatterTx(ctrl)

	entryID := uuid.New()
	matterID := uuid.New()
	storeErr := errors.New("connection reset")

	repo.EXPECT().
		GetEntry(gomock.Any(), entryID).
		Return(&billing.Entry{ID: entryID, MatterID: matterID}, nil)
	repo.EXPECT().
		BeginMatterTx(gomock.Any(), matterID).
		Return(tx, nil)
	tx.EXPECT().EntryEditable(gomock.Any(), entryID).Return(true, nil)
	tx.EXPECT().DeleteAttachmentsByEntry(gomock.Any(), entryID, gomock.Nil()).Return(nil)
	tx.EXPECT().DeleteEntry(gomock.Any(), entryID).Return(storeErr)
	tx.EXPECT().Rollback().Return(nil)

	svc := billing.NewService(repo, &fakeProvider{}, &fakeNotifier{}, 30, 24*time.Hour)

	err := svc.DeleteEntry(context.Background(), entryID)
	assert.ErrorIs(t, err, storeErr)
}

func TestService_Send(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	inv := monthInvoice(store, m, testNow)
	e := timeEntry(store, m, testNow)
	store.link(e.ID, inv.ID)

	provider := &fakeProvider{}
	notifier := &fakeNotifier{}
	svc := newTestService(store, provider, notifier)

	got, err := svc.Send(context.Background(), m.AttorneyID, inv.ID)
	require.NoError(t, err)

	assert.Equal(t, billing.InvoiceStatusOpen, got.Status)
	assert.NotEmpty(t, got.ProviderID)
	assert.Equal(t, "INV-001", got.Number)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, testNow.AddDate(0, 0, 30), *got.DueDate)
	require.NotNil(t, got.FinalizedAt)

	assert.Len(t, provider.sent, 1)
	assert.Equal(t, 1, provider.items)

	assert.Equal(t, billing.InvoiceStatusOpen, store.invoices[inv.ID].Status)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, notify.KindInvoiceSent, notifier.sent[0].kind)
	assert.Equal(t, m.ClientID, notifier.sent[0].recipient)
}

func TestService_Send_Rejections(t *testing.T) {
	type testCase struct {
		name    string
		prepare func(store *memStore, m *matterFixture)
		actor   func(m *matterFixture) uuid.UUID
		wantErr error
	}

	tests := []testCase{
		{
			name: "NoBillableEntries",
			prepare: func(store *memStore, m *matterFixture) {
			},
			actor:   func(m *matterFixture) uuid.UUID { return m.attorney },
			wantErr: billing.ErrNoBillableEntries,
		},
		{
			name: "ActorNotOnMatter",
			prepare: func(store *memStore, m *matterFixture) {
				e := timeEntry(store, m.m, testNow)
				store.link(e.ID, m.invoice.ID)
			},
			actor:   func(m *matterFixture) uuid.UUID { return uuid.New() },
			wantErr: billing.ErrNotAllowed,
		},
		{
			name: "PaymentInProgress",
			prepare: func(store *memStore, m *matterFixture) {
				e := timeEntry(store, m.m, testNow)
				store.link(e.ID, m.invoice.ID)
				m.invoice.PaymentStatus = billing.PaymentStatusInProgress
			},
			actor:   func(m *matterFixture) uuid.UUID { return m.attorney },
			wantErr: billing.ErrInvoiceNotEditable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			fixture := newMatterFixture(store)
			tt.prepare(store, fixture)

			svc := newTestService(store, &fakeProvider{}, &fakeNotifier{})

			_, err := svc.Send(context.Background(), tt.actor(fixture), fixture.invoice.ID)
			assert.ErrorIs(t, err, tt.wantErr)

			assert.Equal(t, billing.InvoiceStatusDraft, store.invoices[fixture.invoice.ID].Status)
		})
	}
}

func TestService_Send_ProviderFailureLeavesDraft(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	inv := monthInvoice(store, m, testNow)
	e := timeEntry(store, m, testNow)
	store.link(e.ID, inv.ID)

	provider := &fakeProvider{createErr: errors.New("provider down")}
	notifier := &fakeNotifier{}
	svc := newTestService(store, provider, notifier)

	_, err := svc.Send(context.Background(), m.AttorneyID, inv.ID)
	assert.ErrorIs(t, err, billing.ErrCannotSendInvoice)

	assert.Equal(t, billing.InvoiceStatusDraft, store.invoices[inv.ID].Status)
	assert.Empty(t, notifier.sent)
}

func TestService_StartPaymentProcess(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	inv := monthInvoice(store, m, testNow)
	inv.Status = billing.InvoiceStatusOpen
	competing := monthInvoice(store, m, testNow)
	e := timeEntry(store, m, testNow)
	store.link(e.ID, inv.ID)
	store.link(e.ID, competing.ID)

	svc := newTestService(store, &fakeProvider{}, &fakeNotifier{})

	got, err := svc.StartPaymentProcess(context.Background(), m.ClientID, inv.ID)
	require.NoError(t, err)

	assert.Equal(t, billing.PaymentStatusInProgress, got.PaymentStatus)

	// The paying invoice now owns the entry exclusively.
	assert.True(t, store.linked(e.ID, inv.ID))
	assert.False(t, store.linked(e.ID, competing.ID))
}

func TestService_StartPaymentProcess_OnlyClient(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	inv := monthInvoice(store, m, testNow)
	inv.Status = billing.InvoiceStatusOpen
	e := timeEntry(store, m, testNow)
	store.link(e.ID, inv.ID)

	svc := newTestService(store, &fakeProvider{}, &fakeNotifier{})

	_, err := svc.StartPaymentProcess(context.Background(), m.AttorneyID, inv.ID)
	assert.ErrorIs(t, err, billing.ErrNotAllowed)
}

func TestService_FinalizePayment(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	inv := monthInvoice(store, m, testNow)
	inv.Status = billing.InvoiceStatusOpen
	inv.PaymentStatus = billing.PaymentStatusInProgress

	notifier := &fakeNotifier{}
	svc := newTestService(store, &fakeProvider{}, notifier)

	got, err := svc.FinalizePayment(context.Background(), inv.ID)
	require.NoError(t, err)

	assert.Equal(t, billing.PaymentStatusPaid, got.PaymentStatus)
	assert.Equal(t, billing.InvoiceStatusPaid, got.Status)

	require.Len(t, notifier.sent, 2)
	assert.Equal(t, notify.KindPaymentSucceeded, notifier.sent[0].kind)
	assert.Equal(t, m.ClientID, notifier.sent[0].recipient)
	assert.Equal(t, m.AttorneyID, notifier.sent[1].recipient)
}

func TestService_FailThenCancelPayment(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	inv := monthInvoice(store, m, testNow)
	inv.Status = billing.InvoiceStatusOpen
	inv.PaymentStatus = billing.PaymentStatusInProgress

	notifier := &fakeNotifier{}
	svc := newTestService(store, &fakeProvider{}, notifier)

	got, err := svc.FailPayment(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.PaymentStatusFailed, got.PaymentStatus)

	got, err = svc.CancelPayment(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.PaymentStatusCanceled, got.PaymentStatus)

	// The invoice itself never left open.
	assert.Equal(t, billing.InvoiceStatusOpen, store.invoices[inv.ID].Status)

	require.Len(t, notifier.sent, 2)
	assert.Equal(t, notify.KindPaymentFailed, notifier.sent[0].kind)
	assert.Equal(t, notify.KindPaymentCanceled, notifier.sent[1].kind)
}

func TestService_CancelPayment_NotStartedRejected(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	inv := monthInvoice(store, m, testNow)
	inv.Status = billing.InvoiceStatusOpen

	svc := newTestService(store, &fakeProvider{}, &fakeNotifier{})

	_, err := svc.CancelPayment(context.Background(), inv.ID)
	assert.ErrorIs(t, err, billing.ErrInvalidInvoiceTransition)
}

func TestService_GetInvoice_CorrectsOverdue(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	inv := monthInvoice(store, m, testNow)
	inv.Status = billing.InvoiceStatusOpen
	due := testNow.AddDate(0, 0, -1)
	inv.DueDate = &due

	svc := newTestService(store, &fakeProvider{}, &fakeNotifier{})

	got, err := svc.GetInvoice(context.Background(), inv.ID)
	require.NoError(t, err)

	assert.Equal(t, billing.InvoiceStatusOverdue, got.Status)
	assert.Equal(t, billing.InvoiceStatusOverdue, store.invoices[inv.ID].Status)
}

func TestService_GetInvoice_NotYetDue(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	inv := monthInvoice(store, m, testNow)
	inv.Status = billing.InvoiceStatusOpen
	due := testNow.AddDate(0, 0, 10)
	inv.DueDate = &due

	svc := newTestService(store, &fakeProvider{}, &fakeNotifier{})

	got, err := svc.GetInvoice(context.Background(), inv.ID)
	require.NoError(t, err)

	assert.Equal(t, billing.InvoiceStatusOpen, got.Status)
}

func TestService_Pay_OverdueInvoice(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	inv := monthInvoice(store, m, testNow)
	inv.Status = billing.InvoiceStatusOverdue

	provider := &fakeProvider{}
	svc := newTestService(store, provider, &fakeNotifier{})

	got, err := svc.Pay(context.Background(), inv.ID)
	require.NoError(t, err)

	assert.Equal(t, billing.InvoiceStatusPaid, got.Status)
	assert.Equal(t, billing.PaymentStatusPaid, got.PaymentStatus)
}

func TestService_Void(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)
	inv := monthInvoice(store, m, testNow)

	svc := newTestService(store, &fakeProvider{}, &fakeNotifier{})

	got, err := svc.Void(context.Background(), m.AttorneyID, inv.ID)
	require.NoError(t, err)

	assert.Equal(t, billing.InvoiceStatusVoided, got.Status)
}

func TestService_SweepStalePayments(t *testing.T) {
	store := newMemStore()
	m := hourlyMatter(store)

	stale := monthInvoice(store, m, testNow.AddDate(0, -2, 0))
	stale.Status = billing.InvoiceStatusOpen
	stale.PaymentStatus = billing.PaymentStatusFailed
	store.updated[stale.ID] = testNow.Add(-48 * time.Hour)

	recent := monthInvoice(store, m, testNow.AddDate(0, -1, 0))
	recent.Status = billing.InvoiceStatusOpen
	recent.PaymentStatus = billing.PaymentStatusFailed
	store.updated[recent.ID] = testNow.Add(-1 * time.Hour)

	svc := newTestService(store, &fakeProvider{}, &fakeNotifier{})

	swept, err := svc.SweepStalePayments(context.Background(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 1, swept)
	assert.Equal(t, billing.PaymentStatusCanceled, store.invoices[stale.ID].PaymentStatus)
	assert.Equal(t, billing.PaymentStatusFailed, store.invoices[recent.ID].PaymentStatus)
}

type matterFixture struct {
	m        *matter.Matter
	attorney uuid.UUID
	client   uuid.UUID
	invoice  *billing.Invoice
}

func newMatterFixture(store *memStore) *matterFixture {
	m := hourlyMatter(store)

	return &matterFixture{
		m:        m,
		attorney: m.AttorneyID,
		client:   m.ClientID,
		invoice:  monthInvoice(store, m, testNow),
	}
}
