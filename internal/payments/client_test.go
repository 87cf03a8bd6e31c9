package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateInvoice(t *testing.T) {
	localID := uuid.New()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/invoices", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var params CreateInvoiceParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, localID, params.LocalID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Invoice{ID: "in_123", Number: "INV-001", Status: "draft"})
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-token", 5*time.Second)

	inv, err := client.CreateInvoice(context.Background(), CreateInvoiceParams{
		LocalID:     localID,
		Description: "Smith v. Jones Invoice",
		Amount:      decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	assert.Equal(t, "in_123", inv.ID)
	assert.Equal(t, "INV-001", inv.Number)
}

func TestClient_GetInvoice_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-token", 5*time.Second)

	_, err := client.GetInvoice(context.Background(), "in_gone")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_SendInvoice_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-token", 5*time.Second)

	_, err := client.SendInvoice(context.Background(), "in_123")
	assert.Error(t, err)
}

func TestClient_PayInvoice(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/invoices/in_123/pay", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Invoice{ID: "in_123", Status: "paid"})
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-token", 5*time.Second)

	inv, err := client.PayInvoice(context.Background(), "in_123")
	require.NoError(t, err)
	assert.Equal(t, "paid", inv.Status)
}
