// Package restmailer provides a mailer.Client implementation backed by a
// REST mail delivery API (Mailgun-style JSON endpoint with rate-limit
// headers).
package restmailer

import (
	"carmate/pkg/mailer"
	"carmate/pkg/serrors"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Options configure the REST mail client.
type Options struct {
	// BaseURL is the provider API root, e.g. "https://api.mailprovider.example/v1".
	BaseURL string
	// APIKey authenticates requests against the provider.
	APIKey string
	// From is the sender address stamped on every message.
	From string
	// Timeout bounds a single delivery call. Zero means no client timeout.
	Timeout time.Duration
}

// Client talks to the provider's REST API and fulfills the mailer.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the provider
	baseURL    string       // baseURL is the provider API root without trailing slash
	apiKey     string       // apiKey is the provider API key
	from       string       // from is the sender address
}

// New creates a REST mail client from the given options.
func New(options Options) *Client {
	return NewWithClient(&http.Client{Timeout: options.Timeout}, options)
}

// NewWithClient creates a REST mail client using the provided http.Client.
// Used by tests to inject a stub transport.
func NewWithClient(httpClient *http.Client, options Options) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(options.BaseURL, "/"),
		apiKey:     options.APIKey,
		from:       options.From,
	}
}

// ParseRateLimit extracts provider rate-limit information from the HTTP
// response headers and converts it into a mailer.RateLimitStatus.
func ParseRateLimit(h http.Header) (mailer.RateLimitStatus, error) {
	atoi := func(s string) int {
		if s == "" {
			return 0
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}

		return 0
	}
	limit := atoi(h.Get("X-Rate-Limit-Limit"))
	remaining := atoi(h.Get("X-Rate-Limit-Remaining"))

	resetStr := h.Get("X-Rate-Limit-Reset")
	resetAt, err := time.Parse(time.RFC3339Nano, resetStr)
	if err != nil {
		return mailer.RateLimitStatus{}, fmt.Errorf("could not parse reset at: %w", err)
	}

	return mailer.RateLimitStatus{Limit: limit, Remaining: remaining, ResetAt: resetAt}, nil
}

// Send posts the message to the provider's messages endpoint. It returns the
// provider delivery identifier, the parsed rate-limit status from the
// response headers, and an error if delivery failed. A 429 is mapped to
// serrors.ErrRateLimited and a 4xx addressing failure to serrors.ErrBadRequest
// so workers can decide between snoozing and cancelling.
func (c *Client) Send(ctx context.Context, msg mailer.Message) (mailer.SendRes, mailer.RateLimitStatus, error) {
	type sendReq struct {
		From    string   `json:"from"`
		To      []string `json:"to"`
		Subject string   `json:"subject"`
		Text    string   `json:"text"`
	}
	bodyBytes, err := json.Marshal(sendReq{From: c.from, To: msg.To, Subject: msg.Subject, Text: msg.Body})
	if err != nil {
		return mailer.SendRes{}, mailer.RateLimitStatus{}, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/messages",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return mailer.SendRes{}, mailer.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return mailer.SendRes{}, mailer.RateLimitStatus{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl, err := ParseRateLimit(resp.Header)
	if err != nil {
		return mailer.SendRes{}, rl, fmt.Errorf("could not parse rate limit: %w", err)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return mailer.SendRes{}, rl, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return mailer.SendRes{},
			rl,
			serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		// bad addressing never succeeds on retry
		return mailer.SendRes{},
			rl,
			serrors.With(serrors.ErrBadRequest, "rejected: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return mailer.SendRes{}, rl, fmt.Errorf("send failed: %s", strings.TrimSpace(string(b)))
	}

	// successful
	var sendResp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(b, &sendResp); err != nil {
		return mailer.SendRes{}, rl, fmt.Errorf("could not decode response: %w", err)
	}

	return mailer.SendRes{ID: sendResp.ID}, rl, nil
}
