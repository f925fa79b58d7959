package request

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"carmate/internal/config"
	"carmate/pkg/domain"
	"carmate/pkg/serrors"
	"carmate/pkg/storage"

	"github.com/google/uuid"
)

// Options configure photo uploads and how notification jobs are enqueued.
// These settings are typically derived from application configuration.
type Options struct {
	// UploadsDir is the directory request photos are written under.
	UploadsDir string
	// MaxFileBytes caps the size of a single uploaded photo.
	MaxFileBytes int64
	// MaxFiles caps the number of photos per upload call.
	MaxFiles int
	// MailMaxAttempts is the maximum number of attempts the background worker
	// should make when delivering notification mail.
	MailMaxAttempts int
	// DedupePeriod is the lookback window for notification job uniqueness.
	DedupePeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		UploadsDir:      cfg.Uploads.Dir,
		MaxFileBytes:    cfg.Uploads.MaxFileBytes,
		MaxFiles:        cfg.Uploads.MaxFiles,
		MailMaxAttempts: cfg.Notify.MaxAttempts,
		DedupePeriod:    cfg.Notify.DedupePeriod,
	}
}

// allowedPhotoTypes are the content types accepted for request photos.
var allowedPhotoTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// requests is the concrete implementation of the Requests interface. It
// coordinates persistence with the storage layer, photo files on disk and job
// enqueueing.
type requests struct {
	options Options
	storage storage.Storage
}

// New creates a new Requests instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Requests {
	return &requests{
		options: options,
		storage: storage,
	}
}

// Create files a new service request and enqueues the provider notification
// job. Both happen in one transaction so a stored request always has its job
// and a failed insert leaves no orphan job behind.
func (r requests) Create(ctx context.Context,
	customerID domain.UserID,
	in CreateInput) (*domain.ServiceRequest, error) {
	in, err := ValidateCreateInput(in)
	if err != nil {
		return nil, err
	}

	var req *domain.ServiceRequest
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreRequest(ctx, domain.ServiceRequest{
			CustomerID:          customerID,
			Vehicle:             in.Vehicle,
			ServiceType:         in.ServiceType,
			Symptoms:            in.Symptoms,
			PreferredDate:       in.PreferredDate,
			PreferredTimeWindow: in.PreferredTimeWindow,
			Location:            in.Location,
			Urgency:             in.Urgency,
			Status:              domain.RequestStatusOpen,
		})
		if err != nil {
			return fmt.Errorf("could not store request: %w", err)
		}
		req = res

		if _, err := tx.AddJob(ctx, RequestCreatedArgs{
			RequestID:       uuid.UUID(req.ID).String(),
			maxAttempts:     r.options.MailMaxAttempts,
			uniqueJobPeriod: r.options.DedupePeriod,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	return req, nil
}

// CustomerRequests returns a page of the customer's requests filtered by
// status. It supports cursor-based pagination using an RFC3339 timestamp
// string and returns the next cursor when more results are available.
func (r requests) CustomerRequests(ctx context.Context,
	customerID domain.UserID,
	status domain.RequestStatus,
	cursor string,
	limit uint) ([]domain.ServiceRequest, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := r.storage.CustomerRequests(ctx, customerID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get customer requests: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Requests, next, nil
}

// ByID fetches a single request with its photos. Customers only see their own
// requests; provider and admin accounts see any request so they can quote and
// moderate.
func (r requests) ByID(ctx context.Context,
	viewer *domain.User,
	id domain.RequestID) (*domain.ServiceRequest, error) {
	req, err := r.storage.RequestByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get request: %w", err)
	}
	if req == nil {
		return nil, serrors.With(serrors.ErrNotFound, "request not found")
	}
	if viewer.Role == domain.RoleCustomer && req.CustomerID != viewer.ID {
		return nil, serrors.With(serrors.ErrNotFound, "request not found")
	}

	photos, err := r.storage.RequestPhotos(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get request photos: %w", err)
	}
	req.Photos = photos

	return req, nil
}

// Cancel withdraws a request that is still waiting for a decision. Requests
// that are already accepted, completed or cancelled cannot be cancelled.
func (r requests) Cancel(ctx context.Context,
	customerID domain.UserID,
	id domain.RequestID) (*domain.ServiceRequest, error) {
	req, err := r.storage.RequestByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get request: %w", err)
	}
	if req == nil || req.CustomerID != customerID {
		return nil, serrors.With(serrors.ErrNotFound, "request not found")
	}

	updated, err := r.storage.UpdateRequestByID(ctx, id,
		storage.RequestUpdates{Status: domain.RequestStatusCancelled},
		domain.RequestStatusOpen, domain.RequestStatusQuoted)
	if err != nil {
		return nil, fmt.Errorf("could not cancel request: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrConflict, "request can no longer be cancelled")
	}

	return updated, nil
}

// AttachPhotos streams uploaded photos to disk and records their metadata.
// Files land under UploadsDir/<requestID>/ with generated names so uploads
// cannot collide or escape the directory.
func (r requests) AttachPhotos(ctx context.Context,
	customerID domain.UserID,
	id domain.RequestID,
	uploads []Upload) ([]domain.RequestPhoto, error) {
	if len(uploads) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "no photos provided")
	}
	if len(uploads) > r.options.MaxFiles {
		return nil, serrors.With(serrors.ErrBadRequest, "too many photos, at most %d allowed", r.options.MaxFiles)
	}

	req, err := r.storage.RequestByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get request: %w", err)
	}
	if req == nil || req.CustomerID != customerID {
		return nil, serrors.With(serrors.ErrNotFound, "request not found")
	}

	dir := filepath.Join(r.options.UploadsDir, uuid.UUID(id).String())
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("could not create upload directory: %w", err)
	}

	photos := make([]domain.RequestPhoto, 0, len(uploads))
	stored := make([]string, 0, len(uploads))
	cleanup := func() {
		for _, path := range stored {
			_ = os.Remove(path)
		}
	}

	for _, up := range uploads {
		ext, ok := allowedPhotoTypes[up.ContentType]
		if !ok {
			cleanup()

			return nil, serrors.With(serrors.ErrBadRequest, "unsupported photo type %q", up.ContentType)
		}

		path := filepath.Join(dir, uuid.NewString()+ext)
		size, err := writeLimited(path, up.Content, r.options.MaxFileBytes)
		if err != nil {
			cleanup()

			return nil, err
		}
		stored = append(stored, path)

		photos = append(photos, domain.RequestPhoto{
			RequestID:   id,
			FileName:    filepath.Base(up.FileName),
			ContentType: up.ContentType,
			SizeBytes:   size,
			StoredPath:  path,
		})
	}

	rows, err := r.storage.StorePhotos(ctx, photos...)
	if err != nil {
		cleanup()

		return nil, fmt.Errorf("could not store photos: %w", err)
	}

	return rows, nil
}

// writeLimited copies src to a new file at path, rejecting inputs larger than
// maxBytes. It returns the number of bytes written.
func writeLimited(path string, src io.Reader, maxBytes int64) (int64, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return 0, fmt.Errorf("could not create photo file: %w", err)
	}
	defer func() { _ = f.Close() }()

	size, err := io.Copy(f, io.LimitReader(src, maxBytes+1))
	if err != nil {
		_ = os.Remove(path)

		return 0, fmt.Errorf("could not write photo file: %w", err)
	}
	if size > maxBytes {
		_ = os.Remove(path)

		return 0, serrors.With(serrors.ErrBadRequest, "photo exceeds the %d byte limit", maxBytes)
	}

	return size, nil
}
