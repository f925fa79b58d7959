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
	reviewsTable = "reviews"
)

func (p *PgSQL) StoreReview(ctx context.Context, review domain.Review) (*domain.Review, error) {
	var pgReview PgReview
	pgReview.FromDomain(review)

	var row PgReview
	found, err := p.Builder.Insert(reviewsTable).
		Rows(pgReview).
		Returning(&PgReview{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("could not store review: %w", storage.ErrDuplicate)
		}

		return nil, fmt.Errorf("could not store review into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store review into pg: no row returned")
	}

	return row.ToDomain(), nil
}

// ReviewByRequestID returns the review of a request, or nil when unreviewed.
func (p *PgSQL) ReviewByRequestID(ctx context.Context, requestID domain.RequestID) (*domain.Review, error) {
	var row PgReview
	found, err := p.Builder.From(reviewsTable).
		Where(goqu.I("request_id").Eq(uuid.UUID(requestID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch review by request id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ProviderReviews returns a page of a provider's reviews, newest first.
// Fetches one extra row to determine whether a next page exists.
func (p *PgSQL) ProviderReviews(ctx context.Context,
	providerID domain.UserID,
	cursor time.Time,
	limit uint) (storage.ReviewPage, error) {
	w := []goqu.Expression{
		goqu.I("provider_id").Eq(uuid.UUID(providerID)),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	fetch := limit + 1
	ds := p.Builder.From(reviewsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgReview
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.ReviewPage{}, fmt.Errorf("could not fetch provider reviews from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.ReviewPage{
		Reviews:    pgReviewsToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// ProviderRating aggregates review count and average rating in SQL.
func (p *PgSQL) ProviderRating(ctx context.Context, providerID domain.UserID) (domain.ProviderRating, error) {
	var row struct {
		Average float64 `db:"average"`
		Count   int64   `db:"count"`
	}
	found, err := p.Builder.From(reviewsTable).
		Select(
			goqu.L("COALESCE(AVG(rating), 0)").As("average"),
			goqu.COUNT(goqu.Star()).As("count"),
		).
		Where(goqu.I("provider_id").Eq(uuid.UUID(providerID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return domain.ProviderRating{}, fmt.Errorf("could not aggregate provider rating in pg: %w", err)
	}
	if !found {
		return domain.ProviderRating{ProviderID: providerID}, nil
	}

	return domain.ProviderRating{
		ProviderID: providerID,
		Average:    row.Average,
		Count:      row.Count,
	}, nil
}
