package domain

import (
	"time"

	"github.com/google/uuid"
)

// QuoteID uniquely identifies a quote.
type QuoteID uuid.UUID

// QuoteStatus represents the lifecycle state of a quote.
type QuoteStatus string

const (
	// QuoteStatusPending indicates the quote awaits the customer's decision.
	QuoteStatusPending QuoteStatus = "PENDING"
	// QuoteStatusAccepted indicates the customer chose this quote.
	QuoteStatusAccepted QuoteStatus = "ACCEPTED"
	// QuoteStatusDeclined indicates the customer chose another quote or the
	// request was cancelled.
	QuoteStatusDeclined QuoteStatus = "DECLINED"
	// QuoteStatusWithdrawn indicates the provider pulled the quote back.
	QuoteStatusWithdrawn QuoteStatus = "WITHDRAWN"
)

// Quote is a provider's priced answer to a service request.
type Quote struct {
	// ID is the unique identifier of the quote.
	ID QuoteID `json:"id"`
	// RequestID is the service request this quote answers.
	RequestID RequestID `json:"requestId"`
	// ProviderID identifies the provider who submitted the quote.
	ProviderID UserID `json:"providerId"`

	// AmountCents is the quoted price in the smallest currency unit.
	AmountCents int64 `json:"amountCents"`
	// Currency is the ISO 4217 code of AmountCents.
	Currency string `json:"currency"`
	// Note is the provider's free-text explanation of the quote.
	Note string `json:"note,omitempty"`
	// EstDays is the estimated turnaround in days.
	EstDays int `json:"estDays"`

	// Status is the current lifecycle state.
	Status QuoteStatus `json:"status"`

	// CreatedAt is when the quote was submitted.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the quote last changed state.
	UpdatedAt time.Time `json:"updatedAt"`
}
