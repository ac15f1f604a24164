package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client is the HTTP wrapper for the account and item store REST APIs.
type Client struct {
	accountURL string
	itemURL    string
	httpClient *http.Client
}

// NewClient creates a new catalog HTTP client. timeout bounds every single
// request; a request that exceeds it is reported as a transport error.
func NewClient(accountURL, itemURL string, timeout time.Duration) *Client {
	return &Client{
		accountURL: accountURL,
		itemURL:    itemURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetAccount fetches an account via GET /api/v1/accounts/{id}.
func (c *Client) GetAccount(ctx context.Context, id int64) (*Account, error) {
	url := fmt.Sprintf("%s/api/v1/accounts/%d", c.accountURL, id)

	var data struct {
		Account *Account `json:"account"`
	}
	if err := c.do(ctx, http.MethodGet, url, nil, &data); err != nil {
		return nil, err
	}
	if data.Account == nil || data.Account.ID == 0 {
		return nil, fmt.Errorf("%w: account payload missing", ErrMalformedResponse)
	}
	return data.Account, nil
}

// GetItem fetches an item via GET /api/v1/items/{id}.
func (c *Client) GetItem(ctx context.Context, id int64) (*Item, error) {
	url := fmt.Sprintf("%s/api/v1/items/%d", c.itemURL, id)

	var data struct {
		Item *Item `json:"item"`
	}
	if err := c.do(ctx, http.MethodGet, url, nil, &data); err != nil {
		return nil, err
	}
	if data.Item == nil || data.Item.ID == 0 {
		return nil, fmt.Errorf("%w: item payload missing", ErrMalformedResponse)
	}
	return data.Item, nil
}

// UpdateItem applies a partial update via PUT /api/v1/items/{id}.
func (c *Client) UpdateItem(ctx context.Context, id int64, req UpdateItemRequest) error {
	url := fmt.Sprintf("%s/api/v1/items/%d", c.itemURL, id)
	return c.do(ctx, http.MethodPut, url, req, nil)
}

// do sends one request and decodes the "data" member of the response
// envelope into out (when out is non-nil).
func (c *Client) do(ctx context.Context, method, url string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("%w: empty data", ErrMalformedResponse)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
