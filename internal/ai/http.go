package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 60 * time.Second

// HTTPClient calls a JSON-over-HTTP analysis service.
type HTTPClient struct {
	URL    string
	Client *http.Client
}

// NewHTTPClient constructs an HTTPClient with the given timeout. A
// non-positive timeout falls back to the default.
func NewHTTPClient(url string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

type analyzeRequest struct {
	Text           string `json:"text"`
	TargetRole     string `json:"targetRole"`
	JobDescription string `json:"jobDescription,omitempty"`
}

type analyzeResponse struct {
	Result json.RawMessage `json:"result"`
}

// Analyze posts the resume text to the analysis service and returns the
// raw result field from its response envelope.
func (c *HTTPClient) Analyze(ctx context.Context, in Input) (json.RawMessage, error) {
	if c.URL == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(analyzeRequest{
		Text:           in.Text,
		TargetRole:     in.TargetRole,
		JobDescription: in.JobDescription,
	})
	if err != nil {
		return nil, fmt.Errorf("ai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ai: call analysis service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body for the log line, then discard.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("ai: analysis service returned %d: %s", resp.StatusCode, snippet)
	}

	var envelope analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("ai: decode response: %w", err)
	}
	if len(envelope.Result) == 0 {
		return nil, fmt.Errorf("ai: analysis service returned empty result")
	}
	return envelope.Result, nil
}

var _ Client = (*HTTPClient)(nil)
