package request

import (
	"context"
	"io"
	"time"

	"carmate/pkg/domain"
)

// CreateInput carries the fields of the service request intake form.
type CreateInput struct {
	Vehicle             domain.Vehicle
	ServiceType         string
	Symptoms            string
	PreferredDate       time.Time
	PreferredTimeWindow domain.TimeWindow
	Location            string
	Urgency             domain.Urgency
}

// Upload is a single photo file streamed from a multipart form.
type Upload struct {
	FileName    string
	ContentType string
	Content     io.Reader
}

//go:generate mockgen -package mockrequest -source=interface.go -destination=mock/mockrequest.go *
type Requests interface {
	// Create files a new service request for the customer and enqueues the
	// provider notification job in the same transaction.
	Create(ctx context.Context, customerID domain.UserID, in CreateInput) (*domain.ServiceRequest, error)
	// CustomerRequests returns a page of the customer's own requests,
	// optionally filtered by status.
	CustomerRequests(ctx context.Context,
		customerID domain.UserID,
		status domain.RequestStatus,
		cursor string,
		limit uint) ([]domain.ServiceRequest, string, error)
	// ByID fetches a single request with its photos. Customers only see their
	// own requests; providers and admins see any.
	ByID(ctx context.Context, viewer *domain.User, id domain.RequestID) (*domain.ServiceRequest, error)
	// Cancel withdraws an open or quoted request. Only the owner may cancel.
	Cancel(ctx context.Context, customerID domain.UserID, id domain.RequestID) (*domain.ServiceRequest, error)
	// AttachPhotos stores uploaded photos on disk and records their metadata.
	// Only the owner may attach photos.
	AttachPhotos(ctx context.Context,
		customerID domain.UserID,
		id domain.RequestID,
		uploads []Upload) ([]domain.RequestPhoto, error)
}
