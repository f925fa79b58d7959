package storage

import (
	"carmate/pkg/domain"
	"context"
	"time"
)

// RequestUpdates describes the optional fields that can change on an existing
// service request. Only non-nil fields will be updated; updated_at is always
// refreshed.
type RequestUpdates struct {
	// Status, when non-empty, is the new lifecycle state to set.
	Status domain.RequestStatus
	// AcceptedQuoteID, when provided, records the quote the customer accepted.
	AcceptedQuoteID *domain.QuoteID
}

// RequestPage groups a page of service requests with an optional NextCursor
// used for pagination.
type RequestPage struct {
	// Requests contains the current page of request records.
	Requests []domain.ServiceRequest
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// RequestStorage defines CRUD and query operations for service requests and
// their photos. Implementations handle soft deletes on requests; photos are
// immutable once stored.
type RequestStorage interface {
	// StoreRequest inserts a new service request and returns the stored row as
	// it exists in the database (including generated fields).
	StoreRequest(ctx context.Context, req domain.ServiceRequest) (*domain.ServiceRequest, error)
	// RequestByID fetches a request by ID, excluding soft-deleted rows.
	// Returns nil when not found. Photos are not loaded.
	RequestByID(ctx context.Context, id domain.RequestID) (*domain.ServiceRequest, error)
	// UpdateRequestByID applies the provided field set to a single request and
	// returns the updated row, or nil when the request does not exist. When
	// expectStatus is non-empty the update only applies if the request is
	// currently in one of those states; nil is returned otherwise.
	UpdateRequestByID(ctx context.Context,
		id domain.RequestID,
		updates RequestUpdates,
		expectStatus ...domain.RequestStatus) (*domain.ServiceRequest, error)
	// CustomerRequests returns a page of requests for a customer created before
	// the optional cursor time, newest first. If status is non-empty, results
	// are filtered to records with the given status.
	CustomerRequests(ctx context.Context,
		customerID domain.UserID,
		status domain.RequestStatus,
		cursor time.Time,
		limit uint) (RequestPage, error)

	// StorePhotos inserts photo metadata rows for a request and returns them
	// as stored.
	StorePhotos(ctx context.Context, photos ...domain.RequestPhoto) ([]domain.RequestPhoto, error)
	// RequestPhotos returns all photos attached to a request, oldest first.
	RequestPhotos(ctx context.Context, requestID domain.RequestID) ([]domain.RequestPhoto, error)
}
