package restmailer_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"carmate/pkg/mailer"
	"carmate/pkg/mailer/restmailer"
	"carmate/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *restmailer.Client {
	return restmailer.NewWithClient(&http.Client{Transport: fn}, restmailer.Options{
		BaseURL: "https://mail.test/v1",
		APIKey:  "test-key",
		From:    "no-reply@carmate.test",
	})
}

func testMessage() mailer.Message {
	return mailer.Message{
		To:      []string{"shop@example.com"},
		Subject: "New service request",
		Body:    "A new request is waiting for quotes.",
	}
}

func Test_parseRateLimit_success(t *testing.T) {
	h := http.Header{}
	resetAt := time.Date(2025, 1, 2, 3, 4, 5, 678900000, time.UTC)
	h.Set("X-Rate-Limit-Limit", "120")
	h.Set("X-Rate-Limit-Remaining", "80")
	h.Set("X-Rate-Limit-Reset", resetAt.Format(time.RFC3339Nano))

	rl, err := restmailer.ParseRateLimit(h)
	require.NoError(t, err)
	require.Equal(t, 120, rl.Limit)
	require.Equal(t, 80, rl.Remaining)
	require.True(t, rl.ResetAt.Equal(resetAt))
}

func Test_parseRateLimit_badTime(t *testing.T) {
	h := http.Header{}
	h.Set("X-Rate-Limit-Limit", "120")
	h.Set("X-Rate-Limit-Remaining", "80")
	h.Set("X-Rate-Limit-Reset", "not-a-time")

	_, err := restmailer.ParseRateLimit(h)
	require.Error(t, err)
}

func TestClient_Send_success(t *testing.T) {
	resetAt := time.Now().Add(1 * time.Hour).UTC()
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "mail.test", r.URL.Host)
		require.Equal(t, "/v1/messages", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "test-key", r.Header.Get("Api-Key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var payload struct {
			From    string   `json:"from"`
			To      []string `json:"to"`
			Subject string   `json:"subject"`
			Text    string   `json:"text"`
		}
		require.NoError(t, json.Unmarshal(body, &payload))
		require.Equal(t, "no-reply@carmate.test", payload.From)
		require.Equal(t, []string{"shop@example.com"}, payload.To)

		h := http.Header{}
		h.Set("X-Rate-Limit-Limit", "100")
		h.Set("X-Rate-Limit-Remaining", "99")
		h.Set("X-Rate-Limit-Reset", resetAt.Format(time.RFC3339Nano))

		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     h,
			Body:       io.NopCloser(strings.NewReader(`{"id":"msg-123"}`)),
		}, nil
	})

	res, rl, err := c.Send(context.Background(), testMessage())
	require.NoError(t, err)
	require.Equal(t, "msg-123", res.ID)
	require.Equal(t, 100, rl.Limit)
	require.Equal(t, 99, rl.Remaining)
	require.True(t, rl.ResetAt.Equal(resetAt))
}

func TestClient_Send_rateLimited429(t *testing.T) {
	resetAt := time.Now().Add(5 * time.Minute).UTC()
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		h := http.Header{}
		h.Set("X-Rate-Limit-Limit", "100")
		h.Set("X-Rate-Limit-Remaining", "0")
		h.Set("X-Rate-Limit-Reset", resetAt.Format(time.RFC3339Nano))

		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Header:     h,
			Body:       io.NopCloser(strings.NewReader("slow down")),
		}, nil
	})

	_, rl, err := c.Send(context.Background(), testMessage())
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrRateLimited, "expected ErrRateLimited kind: %v", err)
	require.Equal(t, 0, rl.Remaining)
	require.True(t, rl.ResetAt.Equal(resetAt))
}

func TestClient_Send_rejected4xx(t *testing.T) {
	resetAt := time.Now().Add(5 * time.Minute).UTC()
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		h := http.Header{}
		h.Set("X-Rate-Limit-Limit", "100")
		h.Set("X-Rate-Limit-Remaining", "98")
		h.Set("X-Rate-Limit-Reset", resetAt.Format(time.RFC3339Nano))

		return &http.Response{
			StatusCode: http.StatusUnprocessableEntity,
			Header:     h,
			Body:       io.NopCloser(strings.NewReader("bad recipient")),
		}, nil
	})

	_, _, err := c.Send(context.Background(), testMessage())
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Contains(t, err.Error(), "bad recipient")
}

func TestClient_Send_non2xx(t *testing.T) {
	resetAt := time.Now().Add(5 * time.Minute).UTC()
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		h := http.Header{}
		h.Set("X-Rate-Limit-Limit", "100")
		h.Set("X-Rate-Limit-Remaining", "98")
		h.Set("X-Rate-Limit-Reset", resetAt.Format(time.RFC3339Nano))

		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Header:     h,
			Body:       io.NopCloser(strings.NewReader("upstream bad")),
		}, nil
	})

	_, _, err := c.Send(context.Background(), testMessage())
	require.Error(t, err)
	require.Contains(t, err.Error(), "upstream bad")
}
