package storage

import (
	"carmate/pkg/domain"
	"context"
)

// QuoteStorage defines persistence operations for quotes.
type QuoteStorage interface {
	// StoreQuote inserts a new quote and returns the stored row. A conflict
	// error is returned when the provider already has a live quote for the
	// request.
	StoreQuote(ctx context.Context, quote domain.Quote) (*domain.Quote, error)
	// QuoteByID fetches a quote by ID. Returns nil when not found.
	QuoteByID(ctx context.Context, id domain.QuoteID) (*domain.Quote, error)
	// RequestQuotes returns all quotes for a request, newest first.
	RequestQuotes(ctx context.Context, requestID domain.RequestID) ([]domain.Quote, error)
	// UpdateQuoteStatus moves a single quote from one of the expected states
	// to the given state and returns the updated row, or nil when the quote
	// does not exist or is not in an expected state.
	UpdateQuoteStatus(ctx context.Context,
		id domain.QuoteID,
		to domain.QuoteStatus,
		expect ...domain.QuoteStatus) (*domain.Quote, error)
	// DeclineSiblingQuotes marks all PENDING quotes of the request other than
	// keep as DECLINED and returns the number of quotes declined.
	DeclineSiblingQuotes(ctx context.Context, requestID domain.RequestID, keep domain.QuoteID) (int64, error)
}
