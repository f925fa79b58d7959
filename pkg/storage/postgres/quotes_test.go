package postgres_test

import (
	"context"
	"testing"

	"carmate/pkg/domain"
	"carmate/pkg/storage"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreQuote(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	customer := storeUser(t, pgSQL, domain.RoleCustomer)
	provider := storeUser(t, pgSQL, domain.RoleProvider)
	req := storeRequest(t, pgSQL, customer.ID)

	q := storeQuote(t, pgSQL, req.ID, provider.ID)
	require.NotEqual(t, domain.QuoteID{}, q.ID)
	require.Equal(t, domain.QuoteStatusPending, q.Status)

	t.Run("second live quote from same provider conflicts", func(t *testing.T) {
		_, err := pgSQL.StoreQuote(ctx, domain.Quote{
			RequestID:   req.ID,
			ProviderID:  provider.ID,
			AmountCents: 30000,
			Currency:    "USD",
			Status:      domain.QuoteStatusPending,
		})
		require.Error(t, err)
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("withdrawn quote frees the slot", func(t *testing.T) {
		withdrawn, err := pgSQL.UpdateQuoteStatus(ctx, q.ID,
			domain.QuoteStatusWithdrawn, domain.QuoteStatusPending)
		require.NoError(t, err)
		require.Equal(t, domain.QuoteStatusWithdrawn, withdrawn.Status)

		again := storeQuote(t, pgSQL, req.ID, provider.ID)
		require.NotEqual(t, q.ID, again.ID)
	})
}

func TestPgSQL_UpdateQuoteStatus_Guard(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	customer := storeUser(t, pgSQL, domain.RoleCustomer)
	provider := storeUser(t, pgSQL, domain.RoleProvider)
	req := storeRequest(t, pgSQL, customer.ID)
	q := storeQuote(t, pgSQL, req.ID, provider.ID)

	// guard matches
	accepted, err := pgSQL.UpdateQuoteStatus(ctx, q.ID,
		domain.QuoteStatusAccepted, domain.QuoteStatusPending)
	require.NoError(t, err)
	require.NotNil(t, accepted)
	require.Equal(t, domain.QuoteStatusAccepted, accepted.Status)
	require.False(t, accepted.UpdatedAt.IsZero())

	// guard mismatch: the quote is no longer pending
	res, err := pgSQL.UpdateQuoteStatus(ctx, q.ID,
		domain.QuoteStatusWithdrawn, domain.QuoteStatusPending)
	require.NoError(t, err)
	require.Nil(t, res)

	got, err := pgSQL.QuoteByID(ctx, q.ID)
	require.NoError(t, err)
	require.Equal(t, domain.QuoteStatusAccepted, got.Status)
}

func TestPgSQL_DeclineSiblingQuotes(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	customer := storeUser(t, pgSQL, domain.RoleCustomer)
	req := storeRequest(t, pgSQL, customer.ID)

	winner := storeQuote(t, pgSQL, req.ID, storeUser(t, pgSQL, domain.RoleProvider).ID)
	storeQuote(t, pgSQL, req.ID, storeUser(t, pgSQL, domain.RoleProvider).ID)
	storeQuote(t, pgSQL, req.ID, storeUser(t, pgSQL, domain.RoleProvider).ID)

	n, err := pgSQL.DeclineSiblingQuotes(ctx, req.ID, winner.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	quotes, err := pgSQL.RequestQuotes(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, quotes, 3)
	for _, q := range quotes {
		if q.ID == winner.ID {
			require.Equal(t, domain.QuoteStatusPending, q.Status)
		} else {
			require.Equal(t, domain.QuoteStatusDeclined, q.Status)
		}
	}
}
