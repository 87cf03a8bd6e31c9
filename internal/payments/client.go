package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the payment provider's REST API.
type Client struct {
	baseURL  string
	apiToken string
	client   *http.Client
}

func NewClient(baseURL, apiToken string, timeout time.Duration) *Client {
	return &Client{
		baseURL:  baseURL,
		apiToken: apiToken,
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*Invoice, error) {
	var inv Invoice
	if err := c.do(ctx, http.MethodPost, "/v1/invoices", params, &inv); err != nil {
		return nil, fmt.Errorf("creating provider invoice: %w", err)
	}

	return &inv, nil
}

func (c *Client) CreateInvoiceItem(ctx context.Context, providerID string, item ItemParams) error {
	path := fmt.Sprintf("/v1/invoices/%s/items", providerID)
	if err := c.do(ctx, http.MethodPost, path, item, nil); err != nil {
		return fmt.Errorf("creating provider invoice item: %w", err)
	}

	return nil
}

func (c *Client) GetInvoice(ctx context.Context, providerID string) (*Invoice, error) {
	var inv Invoice
	if err := c.do(ctx, http.MethodGet, "/v1/invoices/"+providerID, nil, &inv); err != nil {
		return nil, fmt.Errorf("getting provider invoice: %w", err)
	}

	return &inv, nil
}

func (c *Client) SendInvoice(ctx context.Context, providerID string) (*Invoice, error) {
	var inv Invoice
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/v1/invoices/%s/send", providerID), nil, &inv); err != nil {
		return nil, fmt.Errorf("sending provider invoice: %w", err)
	}

	return &inv, nil
}

func (c *Client) PayInvoice(ctx context.Context, providerID string) (*Invoice, error) {
	var inv Invoice
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/v1/invoices/%s/pay", providerID), nil, &inv); err != nil {
		return nil, fmt.Errorf("paying provider invoice: %w", err)
	}

	return &inv, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Buffer

	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d for %s %s", resp.StatusCode, method, path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
