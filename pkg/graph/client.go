package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

//go:generate mockery --name IGraph
type IGraph interface {
	// Get issues one authenticated GET and returns the decoded JSON object.
	Get(ctx context.Context, endpoint string, token string) (map[string]any, error)
}

// Client is a minimal read-only Microsoft Graph client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Graph client.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{baseURL: cfg.BaseURL, httpClient: cfg.HTTPClient}, nil
}

// Get calls baseURL+endpoint with the bearer token. It never retries.
// A 2xx answer with an empty body yields an empty map.
func (c *Client) Get(ctx context.Context, endpoint string, token string) (map[string]any, error) {
	if token == "" {
		return nil, &FetchError{Endpoint: endpoint, Kind: ErrProtocol, Err: ErrMissingToken}
	}

	url := c.baseURL + strings.TrimPrefix(endpoint, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Endpoint: endpoint, Kind: ErrProtocol, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Endpoint: endpoint, Kind: ErrTransport, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Endpoint: endpoint, Kind: ErrTransport, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			Endpoint:   endpoint,
			Kind:       ErrProtocol,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
			Err:        fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &FetchError{Endpoint: endpoint, Kind: ErrProtocol, StatusCode: resp.StatusCode, Body: string(raw), Err: err}
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// Values returns the "value" array of a Graph collection response.
// Anything that is not a list of objects is dropped.
func Values(doc map[string]any) []map[string]any {
	list, ok := doc["value"].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
