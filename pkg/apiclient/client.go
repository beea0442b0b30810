package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

// Client is a resty-backed wrapper around the inventory HTTP API. It performs
// no retries and no caching; every call is a fresh round trip.
type Client struct {
	httpClient *resty.Client
}

// Option customizes client construction.
type Option func(*Client)

// WithTimeout overrides the default per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.SetTimeout(d)
	}
}

// WithTransport swaps the underlying RoundTripper, mainly for tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.SetTransport(rt)
	}
}

// New builds a client for the given API base URL.
func New(baseURL string, opts ...Option) *Client {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(defaultTimeout)

	c := &Client{httpClient: restyClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch issues a GET request and decodes the JSON body into out.
func (c *Client) Fetch(ctx context.Context, path string, out any) error {
	resp, err := c.httpClient.R().SetContext(ctx).Get(path)
	if err != nil {
		return &TransportError{Path: path, Err: err}
	}
	return c.decode(path, resp, out)
}

// Post serializes payload, issues a POST request, and decodes the response
// into out when out is non-nil.
func (c *Client) Post(ctx context.Context, path string, payload, out any) error {
	resp, err := c.httpClient.R().SetContext(ctx).SetBody(payload).Post(path)
	if err != nil {
		return &TransportError{Path: path, Err: err}
	}
	return c.decode(path, resp, out)
}

func (c *Client) decode(path string, resp *resty.Response, out any) error {
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return &StatusError{
			Path:   path,
			Status: resp.StatusCode(),
			Body:   errorText(resp),
		}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	return nil
}

// errorText prefers the server-supplied error message over the status phrase.
func errorText(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))
	if body != "" {
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Error != "" {
			return payload.Error
		}
		return body
	}
	return http.StatusText(resp.StatusCode())
}

// Inventory returns the full product list.
func (c *Client) Inventory(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.Fetch(ctx, "/api/inventory", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Advice returns reorder recommendations.
func (c *Client) Advice(ctx context.Context) ([]AdviceEntry, error) {
	var advice []AdviceEntry
	if err := c.Fetch(ctx, "/api/advise", &advice); err != nil {
		return nil, err
	}
	return advice, nil
}

// FastMoving returns the fastest selling items.
func (c *Client) FastMoving(ctx context.Context) ([]MovementItem, error) {
	var items []MovementItem
	if err := c.Fetch(ctx, "/api/fast-moving", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SlowMoving returns the slowest selling items.
func (c *Client) SlowMoving(ctx context.Context) ([]MovementItem, error) {
	var items []MovementItem
	if err := c.Fetch(ctx, "/api/slow-moving", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ExpiryAlerts returns products approaching expiry.
func (c *Client) ExpiryAlerts(ctx context.Context) ([]ExpiryAlert, error) {
	var alerts []ExpiryAlert
	if err := c.Fetch(ctx, "/api/expiry-alerts", &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// PurchaseOrder returns the draft purchase order lines.
func (c *Client) PurchaseOrder(ctx context.Context) ([]OrderLine, error) {
	var lines []OrderLine
	if err := c.Fetch(ctx, "/api/purchase-order", &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// SalesSummary returns the monthly sales summary series.
func (c *Client) SalesSummary(ctx context.Context) (SalesSummary, error) {
	var summary SalesSummary
	if err := c.Fetch(ctx, "/api/sales-summary/monthly", &summary); err != nil {
		return SalesSummary{}, err
	}
	return summary, nil
}

// SalesHistory returns the flat transaction log, newest first.
func (c *Client) SalesHistory(ctx context.Context) ([]HistoryEntry, error) {
	var history []HistoryEntry
	if err := c.Fetch(ctx, "/api/sales-history", &history); err != nil {
		return nil, err
	}
	return history, nil
}

// RecordSale posts a sale and returns the server-computed receipt.
func (c *Client) RecordSale(ctx context.Context, input SaleInput) (SaleReceipt, error) {
	var receipt SaleReceipt
	if err := c.Post(ctx, "/api/record-sale", input, &receipt); err != nil {
		return SaleReceipt{}, err
	}
	return receipt, nil
}

// UpdateStock posts a signed stock adjustment.
func (c *Client) UpdateStock(ctx context.Context, input StockInput) error {
	return c.Post(ctx, "/api/update-stock", input, nil)
}

// AddProduct creates a new product record.
func (c *Client) AddProduct(ctx context.Context, product NewProduct) error {
	return c.Post(ctx, "/api/add-product", product, nil)
}

// DeleteProduct removes a product permanently.
func (c *Client) DeleteProduct(ctx context.Context, productID int) error {
	return c.Post(ctx, "/api/delete-product", map[string]int{"product_id": productID}, nil)
}

// Logout terminates the backend session.
func (c *Client) Logout(ctx context.Context) error {
	return c.Fetch(ctx, "/logout", nil)
}
