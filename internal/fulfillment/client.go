package fulfillment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "posterworks/internal/errors"
)

// Client wraps the print partner's order API. The reference field and the
// Idempotency-Key header both carry the local order id, so a resubmitted
// request maps onto the same partner order.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type Recipient struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address Address `json:"address"`
}

type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"townOrCity"`
	State      string `json:"stateOrCounty,omitempty"`
	PostalCode string `json:"postalOrZipCode"`
	Country    string `json:"countryCode"`
}

type Item struct {
	SKU      string            `json:"sku"`
	Copies   int               `json:"copies"`
	Options  map[string]string `json:"options,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type OrderRequest struct {
	Reference      string    `json:"reference"`
	ShippingMethod string    `json:"shippingMethod,omitempty"`
	Recipient      Recipient `json:"recipient"`
	Items          []Item    `json:"items"`
}

type OrderResponse struct {
	Outcome string `json:"outcome"`
	Order   struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"order"`
}

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding partner order: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v4/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building partner order request: %w", err)
	}
	httpReq.Header.Set("X-API-Key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotency-Key", req.Reference)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling fulfillment partner: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading partner response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, apperrors.NewProviderError(resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var orderResp OrderResponse
	if err := json.Unmarshal(respBody, &orderResp); err != nil {
		return nil, fmt.Errorf("decoding partner response: %w", err)
	}

	return &orderResp, nil
}
