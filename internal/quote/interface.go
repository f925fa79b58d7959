package quote

import (
	"context"

	"carmate/pkg/domain"
)

// SubmitInput carries the fields of the quote form.
type SubmitInput struct {
	AmountCents int64
	Currency    string
	Note        string
	EstDays     int
}

//go:generate mockgen -package mockquote -source=interface.go -destination=mock/mockquote.go *
type Quotes interface {
	// Submit files a provider's quote on an open or quoted request and moves
	// the request to QUOTED.
	Submit(ctx context.Context,
		providerID domain.UserID,
		requestID domain.RequestID,
		in SubmitInput) (*domain.Quote, error)
	// ListByRequest returns the quotes on a request the viewer may see: the
	// request owner and admins see all, providers only their own.
	ListByRequest(ctx context.Context, viewer *domain.User, requestID domain.RequestID) ([]domain.Quote, error)
	// Accept lets the request owner pick a pending quote. Sibling pending
	// quotes are declined and the request moves to ACCEPTED in the same
	// transaction; the winning provider is notified by mail.
	Accept(ctx context.Context, customerID domain.UserID, quoteID domain.QuoteID) (*domain.Quote, error)
	// Withdraw lets a provider pull back their own pending quote.
	Withdraw(ctx context.Context, providerID domain.UserID, quoteID domain.QuoteID) (*domain.Quote, error)
	// Complete lets the accepted quote's provider mark the work as done,
	// moving the request to COMPLETED.
	Complete(ctx context.Context, providerID domain.UserID, quoteID domain.QuoteID) (*domain.ServiceRequest, error)
}
