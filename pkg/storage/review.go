package storage

import (
	"carmate/pkg/domain"
	"context"
	"time"
)

// ReviewPage groups a page of reviews with an optional NextCursor used for
// pagination.
type ReviewPage struct {
	// Reviews contains the current page of review records.
	Reviews []domain.Review
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// ReviewStorage defines persistence operations for reviews and provider
// rating aggregates.
type ReviewStorage interface {
	// StoreReview inserts a new review and returns the stored row. A conflict
	// error is returned when the request already has a review.
	StoreReview(ctx context.Context, review domain.Review) (*domain.Review, error)
	// ReviewByRequestID fetches the review of a request, or nil when the
	// request has not been reviewed.
	ReviewByRequestID(ctx context.Context, requestID domain.RequestID) (*domain.Review, error)
	// ProviderReviews returns a page of reviews for a provider created before
	// the optional cursor time, newest first.
	ProviderReviews(ctx context.Context,
		providerID domain.UserID,
		cursor time.Time,
		limit uint) (ReviewPage, error)
	// ProviderRating returns the review count and average rating of a
	// provider. Average is zero when the provider has no reviews.
	ProviderRating(ctx context.Context, providerID domain.UserID) (domain.ProviderRating, error)
}
