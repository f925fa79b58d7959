// Package mailer defines the interface and data types used to deliver
// transactional mail (new-request notices, quote decisions, password resets)
// through a backing provider.
package mailer

import (
	"context"
	"time"
)

// RateLimitStatus describes the current API rate-limit status returned by the
// underlying mail provider.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the rate-limit window resets.
}

// Message is a single piece of outbound mail.
type Message struct {
	// To lists the recipient addresses.
	To []string
	// Subject is the mail subject line.
	Subject string
	// Body is the plain-text body.
	Body string
}

// SendRes represents the response of a successful delivery call.
type SendRes struct {
	ID string // ID is the delivery identifier returned by the provider.
}

// Client is the abstraction for mail providers. Implementations deliver
// messages and report the provider's rate-limit state alongside.
//
//go:generate mockgen -package mockmailer -source=interface.go -destination=mock/mockmailer.go *
type Client interface {
	// Send delivers the message and returns a provider delivery ID plus the
	// current rate-limit status.
	Send(ctx context.Context, msg Message) (SendRes, RateLimitStatus, error)
}
