package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewID uniquely identifies a review.
type ReviewID uuid.UUID

// Review is the customer's rating of a provider after a completed request.
// At most one review exists per service request.
type Review struct {
	// ID is the unique identifier of the review.
	ID ReviewID `json:"id"`
	// RequestID is the completed service request being reviewed.
	RequestID RequestID `json:"requestId"`
	// ProviderID is the provider being rated.
	ProviderID UserID `json:"providerId"`
	// CustomerID is the author of the review.
	CustomerID UserID `json:"customerId"`

	// Rating is the 1..5 star score.
	Rating int `json:"rating"`
	// Comment is the optional free-text feedback.
	Comment string `json:"comment,omitempty"`

	// CreatedAt is when the review was posted.
	CreatedAt time.Time `json:"createdAt"`
}

// ProviderRating aggregates the reviews of a single provider.
type ProviderRating struct {
	// ProviderID is the rated provider.
	ProviderID UserID `json:"providerId"`
	// Average is the mean rating, zero when Count is zero.
	Average float64 `json:"average"`
	// Count is the number of reviews.
	Count int64 `json:"count"`
}
