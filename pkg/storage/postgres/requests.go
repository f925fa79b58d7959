package postgres

import (
	"carmate/pkg/domain"
	"carmate/pkg/storage"
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	requestsTable = "service_requests"
	photosTable   = "request_photos"
)

func (p *PgSQL) StoreRequest(ctx context.Context, req domain.ServiceRequest) (*domain.ServiceRequest, error) {
	var pgReq PgRequest
	pgReq.FromDomain(req)

	var row PgRequest
	found, err := p.Builder.Insert(requestsTable).
		Rows(pgReq).
		Returning(&PgRequest{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store request into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store request into pg: no row returned")
	}

	return row.ToDomain(), nil
}

// RequestByID returns a request by its ID, excluding soft-deleted rows.
func (p *PgSQL) RequestByID(ctx context.Context, id domain.RequestID) (*domain.ServiceRequest, error) {
	var row PgRequest
	found, err := p.Builder.From(requestsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch request by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateRequestByID updates a single request and returns the updated row. The
// update ignores soft-deleted rows and sets updated_at automatically. When
// expectStatus is provided, the update only applies while the request is in
// one of those states; nil is returned otherwise, letting callers treat a
// raced state change as not found.
func (p *PgSQL) UpdateRequestByID(ctx context.Context,
	id domain.RequestID,
	updates storage.RequestUpdates,
	expectStatus ...domain.RequestStatus) (*domain.ServiceRequest, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.AcceptedQuoteID != nil {
		rec["accepted_quote_id"] = uuid.UUID(*updates.AcceptedQuoteID)
	}

	w := []goqu.Expression{
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	}
	if len(expectStatus) > 0 {
		statuses := make([]string, 0, len(expectStatus))
		for _, s := range expectStatus {
			statuses = append(statuses, string(s))
		}
		w = append(w, goqu.I("status").In(statuses))
	}

	var row PgRequest
	found, err := p.Builder.Update(requestsTable).
		Set(rec).Where(w...).
		Returning(&PgRequest{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update request in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// CustomerRequests returns a page of requests for a customer filtered by an
// optional status and cursor, newest first. Fetches one extra row to
// determine whether a next page exists.
func (p *PgSQL) CustomerRequests(ctx context.Context,
	customerID domain.UserID,
	status domain.RequestStatus,
	cursor time.Time,
	limit uint) (storage.RequestPage, error) {
	w := []goqu.Expression{
		goqu.I("customer_id").Eq(uuid.UUID(customerID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	fetch := limit + 1
	ds := p.Builder.From(requestsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgRequest
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.RequestPage{}, fmt.Errorf("could not fetch customer requests from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.RequestPage{
		Requests:   pgRequestsToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) StorePhotos(ctx context.Context, photos ...domain.RequestPhoto) ([]domain.RequestPhoto, error) {
	if len(photos) == 0 {
		return nil, nil
	}

	pgPhotos := make([]PgPhoto, len(photos))
	for i := range photos {
		pgPhotos[i].FromDomain(photos[i])
	}

	var rows []PgPhoto
	if err := p.Builder.Insert(photosTable).
		Rows(pgPhotos).
		Returning(&PgPhoto{}).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not store photos into pg: %w", err)
	}

	out := make([]domain.RequestPhoto, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// RequestPhotos returns the photos of a request, oldest first.
func (p *PgSQL) RequestPhotos(ctx context.Context, requestID domain.RequestID) ([]domain.RequestPhoto, error) {
	var rows []PgPhoto
	if err := p.Builder.From(photosTable).
		Where(goqu.I("request_id").Eq(uuid.UUID(requestID))).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch request photos from pg: %w", err)
	}

	out := make([]domain.RequestPhoto, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}
