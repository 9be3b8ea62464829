package azopenai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

func newAzureImpl(cfg Config) *azureImpl {
	return &azureImpl{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		deployment: cfg.Deployment,
		apiVersion: cfg.APIVersion,
		httpClient: cfg.HTTPClient,
	}
}

// ChatCompletion sends a chat completion request to the deployment. No retries.
func (a *azureImpl) ChatCompletion(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, fmt.Errorf("azopenai: request has no messages")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("azopenai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.completionsURL(), bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("azopenai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", a.apiKey)

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("azopenai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("azopenai: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("azopenai: failed to decode response: %w", err)
	}

	if len(out.Choices) == 0 {
		return nil, ErrNoChoices
	}

	return &out, nil
}

// Deployment returns the deployment name being called
func (a *azureImpl) Deployment() string {
	return a.deployment
}

func (a *azureImpl) completionsURL() string {
	return fmt.Sprintf("%sopenai/deployments/%s/chat/completions?api-version=%s",
		a.endpoint, url.PathEscape(a.deployment), url.QueryEscape(a.apiVersion))
}
