package postgres

import (
	"carmate/pkg/domain"
	"carmate/pkg/storage"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	quotesTable = "quotes"
)

func (p *PgSQL) StoreQuote(ctx context.Context, quote domain.Quote) (*domain.Quote, error) {
	var pgQuote PgQuote
	pgQuote.FromDomain(quote)

	var row PgQuote
	found, err := p.Builder.Insert(quotesTable).
		Rows(pgQuote).
		Returning(&PgQuote{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("could not store quote: %w", storage.ErrDuplicate)
		}

		return nil, fmt.Errorf("could not store quote into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store quote into pg: no row returned")
	}

	return row.ToDomain(), nil
}

// QuoteByID returns a quote by its ID.
func (p *PgSQL) QuoteByID(ctx context.Context, id domain.QuoteID) (*domain.Quote, error) {
	var row PgQuote
	found, err := p.Builder.From(quotesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch quote by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// RequestQuotes returns all quotes of a request, newest first.
func (p *PgSQL) RequestQuotes(ctx context.Context, requestID domain.RequestID) ([]domain.Quote, error) {
	var rows []PgQuote
	if err := p.Builder.From(quotesTable).
		Where(goqu.I("request_id").Eq(uuid.UUID(requestID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch request quotes from pg: %w", err)
	}

	return pgQuotesToDomain(rows), nil
}

// UpdateQuoteStatus moves a quote from one of the expected states to the
// given state. The state guard is part of the WHERE clause so concurrent
// transitions cannot both succeed; nil is returned when the quote is missing
// or not in an expected state.
func (p *PgSQL) UpdateQuoteStatus(ctx context.Context,
	id domain.QuoteID,
	to domain.QuoteStatus,
	expect ...domain.QuoteStatus) (*domain.Quote, error) {
	w := []goqu.Expression{
		goqu.I("id").Eq(uuid.UUID(id)),
	}
	if len(expect) > 0 {
		statuses := make([]string, 0, len(expect))
		for _, s := range expect {
			statuses = append(statuses, string(s))
		}
		w = append(w, goqu.I("status").In(statuses))
	}

	var row PgQuote
	found, err := p.Builder.Update(quotesTable).
		Set(goqu.Record{
			"status":     string(to),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(w...).
		Returning(&PgQuote{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update quote status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeclineSiblingQuotes declines every PENDING quote of the request except keep.
func (p *PgSQL) DeclineSiblingQuotes(ctx context.Context,
	requestID domain.RequestID,
	keep domain.QuoteID) (int64, error) {
	res, err := p.Builder.Update(quotesTable).
		Set(goqu.Record{
			"status":     string(domain.QuoteStatusDeclined),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("request_id").Eq(uuid.UUID(requestID)),
		goqu.I("id").Neq(uuid.UUID(keep)),
		goqu.I("status").Eq(string(domain.QuoteStatusPending)),
	).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not decline sibling quotes in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n, nil
}
