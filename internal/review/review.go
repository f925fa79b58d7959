package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"carmate/pkg/domain"
	"carmate/pkg/serrors"
	"carmate/pkg/storage"
)

const maxCommentLen = 2000

// CreateInput carries the fields of the review form.
type CreateInput struct {
	Rating  int
	Comment string
}

//go:generate mockgen -package mockreview -source=review.go -destination=mock/mockreview.go *
type Reviews interface {
	// Create posts the customer's review of a completed request. A request can
	// be reviewed once, by its owner.
	Create(ctx context.Context,
		customerID domain.UserID,
		requestID domain.RequestID,
		in CreateInput) (*domain.Review, error)
	// ProviderReviews returns a page of a provider's reviews, newest first.
	ProviderReviews(ctx context.Context,
		providerID domain.UserID,
		cursor string,
		limit uint) ([]domain.Review, string, error)
	// Rating returns a provider's review count and average score.
	Rating(ctx context.Context, providerID domain.UserID) (domain.ProviderRating, error)
}

// reviews is the concrete implementation of the Reviews interface.
type reviews struct {
	storage storage.Storage
}

// New creates a new Reviews instance backed by the provided storage.
func New(storage storage.Storage) Reviews {
	return &reviews{storage: storage}
}

// Create posts a review on a completed request. The rated provider is the one
// whose quote the customer accepted.
func (r reviews) Create(ctx context.Context,
	customerID domain.UserID,
	requestID domain.RequestID,
	in CreateInput) (*domain.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, serrors.With(serrors.ErrBadRequest, "rating must be between 1 and 5")
	}
	in.Comment = strings.TrimSpace(in.Comment)
	if len(in.Comment) > maxCommentLen {
		return nil, serrors.With(serrors.ErrBadRequest, "comment is too long")
	}

	req, err := r.storage.RequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("could not get request: %w", err)
	}
	if req == nil || req.CustomerID != customerID {
		return nil, serrors.With(serrors.ErrNotFound, "request not found")
	}
	if req.Status != domain.RequestStatusCompleted {
		return nil, serrors.With(serrors.ErrConflict, "request is not completed")
	}
	if req.AcceptedQuoteID == nil {
		return nil, serrors.With(serrors.ErrConflict, "request has no accepted quote")
	}

	quote, err := r.storage.QuoteByID(ctx, *req.AcceptedQuoteID)
	if err != nil {
		return nil, fmt.Errorf("could not get accepted quote: %w", err)
	}
	if quote == nil {
		return nil, serrors.With(serrors.ErrConflict, "request has no accepted quote")
	}

	review, err := r.storage.StoreReview(ctx, domain.Review{
		RequestID:  requestID,
		ProviderID: quote.ProviderID,
		CustomerID: customerID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.With(serrors.ErrConflict, "request already reviewed")
		}

		return nil, fmt.Errorf("could not store review: %w", err)
	}

	return review, nil
}

// ProviderReviews returns a page of reviews for a provider. It supports
// cursor-based pagination using an RFC3339 timestamp string and returns the
// next cursor when more results are available.
func (r reviews) ProviderReviews(ctx context.Context,
	providerID domain.UserID,
	cursor string,
	limit uint) ([]domain.Review, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := r.storage.ProviderReviews(ctx, providerID, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get provider reviews: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Reviews, next, nil
}

// Rating returns the aggregate rating of a provider.
func (r reviews) Rating(ctx context.Context, providerID domain.UserID) (domain.ProviderRating, error) {
	rating, err := r.storage.ProviderRating(ctx, providerID)
	if err != nil {
		return domain.ProviderRating{}, fmt.Errorf("could not get provider rating: %w", err)
	}

	return rating, nil
}
