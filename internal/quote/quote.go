package quote

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"carmate/internal/config"
	"carmate/pkg/domain"
	"carmate/pkg/serrors"
	"carmate/pkg/storage"

	"github.com/google/uuid"
)

var currencyRe = regexp.MustCompile(`^[A-Z]{3}$`)

const maxEstDays = 365

// Options configure how acceptance mail jobs are enqueued. These settings are
// typically derived from application configuration.
type Options struct {
	// MailMaxAttempts is the maximum number of attempts the background worker
	// should make when delivering the acceptance mail.
	MailMaxAttempts int
	// DedupePeriod is the lookback window for job uniqueness.
	DedupePeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MailMaxAttempts: cfg.Notify.MaxAttempts,
		DedupePeriod:    cfg.Notify.DedupePeriod,
	}
}

// quotes is the concrete implementation of the Quotes interface. It
// coordinates persistence with the storage layer and job enqueueing.
type quotes struct {
	options Options
	storage storage.Storage
}

// New creates a new Quotes instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Quotes {
	return &quotes{
		options: options,
		storage: storage,
	}
}

// validateSubmitInput checks the quote form rules.
func validateSubmitInput(in SubmitInput) error {
	if in.AmountCents <= 0 {
		return serrors.With(serrors.ErrBadRequest, "amount must be positive")
	}
	if !currencyRe.MatchString(in.Currency) {
		return serrors.With(serrors.ErrBadRequest, "invalid currency code")
	}
	if in.EstDays < 0 || in.EstDays > maxEstDays {
		return serrors.With(serrors.ErrBadRequest, "estimated days out of range")
	}

	return nil
}

// Submit files a quote on a request that is still taking quotes. The quote
// insert and the request's move to QUOTED share one transaction. The partial
// unique index on (request_id, provider_id) enforces one live quote per
// provider.
func (q quotes) Submit(ctx context.Context,
	providerID domain.UserID,
	requestID domain.RequestID,
	in SubmitInput) (*domain.Quote, error) {
	if err := validateSubmitInput(in); err != nil {
		return nil, err
	}

	var quote *domain.Quote
	if err := q.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		req, err := tx.RequestByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("could not get request: %w", err)
		}
		if req == nil {
			return serrors.With(serrors.ErrNotFound, "request not found")
		}
		if req.Status != domain.RequestStatusOpen && req.Status != domain.RequestStatusQuoted {
			return serrors.With(serrors.ErrConflict, "request is no longer taking quotes")
		}

		res, err := tx.StoreQuote(ctx, domain.Quote{
			RequestID:   requestID,
			ProviderID:  providerID,
			AmountCents: in.AmountCents,
			Currency:    in.Currency,
			Note:        in.Note,
			EstDays:     in.EstDays,
			Status:      domain.QuoteStatusPending,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.With(serrors.ErrConflict, "you already have a quote on this request")
			}

			return fmt.Errorf("could not store quote: %w", err)
		}
		quote = res

		if req.Status == domain.RequestStatusOpen {
			if _, err := tx.UpdateRequestByID(ctx, requestID,
				storage.RequestUpdates{Status: domain.RequestStatusQuoted},
				domain.RequestStatusOpen); err != nil {
				return fmt.Errorf("could not move request to quoted: %w", err)
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not submit quote: %w", err)
	}

	return quote, nil
}

// ListByRequest returns the quotes a viewer is allowed to see on a request.
func (q quotes) ListByRequest(ctx context.Context,
	viewer *domain.User,
	requestID domain.RequestID) ([]domain.Quote, error) {
	req, err := q.storage.RequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("could not get request: %w", err)
	}
	if req == nil {
		return nil, serrors.With(serrors.ErrNotFound, "request not found")
	}

	all, err := q.storage.RequestQuotes(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("could not get quotes: %w", err)
	}

	switch {
	case viewer.Role == domain.RoleAdmin,
		viewer.Role == domain.RoleCustomer && req.CustomerID == viewer.ID:
		return all, nil
	case viewer.Role == domain.RoleProvider:
		own := make([]domain.Quote, 0, 1)
		for _, quote := range all {
			if quote.ProviderID == viewer.ID {
				own = append(own, quote)
			}
		}

		return own, nil
	default:
		return nil, serrors.With(serrors.ErrNotFound, "request not found")
	}
}

// Accept picks a pending quote on the caller's own request. The winning quote
// moves to ACCEPTED, sibling pending quotes are declined and the request is
// locked to the winner, all in one transaction. The acceptance mail job is
// enqueued in the same transaction.
func (q quotes) Accept(ctx context.Context,
	customerID domain.UserID,
	quoteID domain.QuoteID) (*domain.Quote, error) {
	var accepted *domain.Quote
	if err := q.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		quote, err := tx.QuoteByID(ctx, quoteID)
		if err != nil {
			return fmt.Errorf("could not get quote: %w", err)
		}
		if quote == nil {
			return serrors.With(serrors.ErrNotFound, "quote not found")
		}

		req, err := tx.RequestByID(ctx, quote.RequestID)
		if err != nil {
			return fmt.Errorf("could not get request: %w", err)
		}
		if req == nil || req.CustomerID != customerID {
			return serrors.With(serrors.ErrNotFound, "quote not found")
		}

		updated, err := tx.UpdateQuoteStatus(ctx, quoteID,
			domain.QuoteStatusAccepted, domain.QuoteStatusPending)
		if err != nil {
			return fmt.Errorf("could not accept quote: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrConflict, "quote is no longer pending")
		}
		accepted = updated

		if _, err := tx.DeclineSiblingQuotes(ctx, quote.RequestID, quoteID); err != nil {
			return fmt.Errorf("could not decline sibling quotes: %w", err)
		}

		reqUpdated, err := tx.UpdateRequestByID(ctx, quote.RequestID,
			storage.RequestUpdates{
				Status:          domain.RequestStatusAccepted,
				AcceptedQuoteID: &quoteID,
			},
			domain.RequestStatusOpen, domain.RequestStatusQuoted)
		if err != nil {
			return fmt.Errorf("could not move request to accepted: %w", err)
		}
		if reqUpdated == nil {
			return serrors.With(serrors.ErrConflict, "request is no longer taking quotes")
		}

		if _, err := tx.AddJob(ctx, QuoteAcceptedArgs{
			QuoteID:         uuid.UUID(quoteID).String(),
			maxAttempts:     q.options.MailMaxAttempts,
			uniqueJobPeriod: q.options.DedupePeriod,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not accept quote: %w", err)
	}

	return accepted, nil
}

// Withdraw pulls back the caller's own pending quote.
func (q quotes) Withdraw(ctx context.Context,
	providerID domain.UserID,
	quoteID domain.QuoteID) (*domain.Quote, error) {
	quote, err := q.storage.QuoteByID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("could not get quote: %w", err)
	}
	if quote == nil || quote.ProviderID != providerID {
		return nil, serrors.With(serrors.ErrNotFound, "quote not found")
	}

	updated, err := q.storage.UpdateQuoteStatus(ctx, quoteID,
		domain.QuoteStatusWithdrawn, domain.QuoteStatusPending)
	if err != nil {
		return nil, fmt.Errorf("could not withdraw quote: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrConflict, "quote is no longer pending")
	}

	return updated, nil
}

// Complete marks the work behind an accepted quote as done, moving the
// request to COMPLETED. Only the provider who won the request may complete it.
func (q quotes) Complete(ctx context.Context,
	providerID domain.UserID,
	quoteID domain.QuoteID) (*domain.ServiceRequest, error) {
	quote, err := q.storage.QuoteByID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("could not get quote: %w", err)
	}
	if quote == nil || quote.ProviderID != providerID {
		return nil, serrors.With(serrors.ErrNotFound, "quote not found")
	}
	if quote.Status != domain.QuoteStatusAccepted {
		return nil, serrors.With(serrors.ErrConflict, "quote was not accepted")
	}

	updated, err := q.storage.UpdateRequestByID(ctx, quote.RequestID,
		storage.RequestUpdates{Status: domain.RequestStatusCompleted},
		domain.RequestStatusAccepted)
	if err != nil {
		return nil, fmt.Errorf("could not complete request: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrConflict, "request is not in an accepted state")
	}

	return updated, nil
}
