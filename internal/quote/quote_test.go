package quote_test

import (
	"context"
	"testing"
	"time"

	"carmate/internal/quote"
	"carmate/pkg/domain"
	"carmate/pkg/serrors"
	"carmate/pkg/storage"
	mockstorage "carmate/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestQuotes(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, quote.Quotes) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	q := quote.New(st, quote.Options{
		MailMaxAttempts: 3,
		DedupePeriod:    24 * time.Hour,
	})

	return ctrl, st, q
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func validSubmitInput() quote.SubmitInput {
	return quote.SubmitInput{
		AmountCents: 45000,
		Currency:    "USD",
		Note:        "Includes pads and rotors",
		EstDays:     2,
	}
}

func TestQuotes_Submit_movesRequestToQuoted(t *testing.T) {
	ctrl, st, q := newTestQuotes(t)

	providerID := domain.UserID(uuid.New())
	reqID := domain.RequestID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RequestByID(gomock.Any(), reqID).Return(&domain.ServiceRequest{
			ID:     reqID,
			Status: domain.RequestStatusOpen,
		}, nil)
		tx.EXPECT().StoreQuote(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in domain.Quote) (*domain.Quote, error) {
				require.Equal(t, providerID, in.ProviderID)
				require.Equal(t, domain.QuoteStatusPending, in.Status)
				in.ID = domain.QuoteID(uuid.New())

				return &in, nil
			},
		)
		tx.EXPECT().UpdateRequestByID(gomock.Any(), reqID, gomock.Any(),
			domain.RequestStatusOpen).Return(&domain.ServiceRequest{
			ID:     reqID,
			Status: domain.RequestStatusQuoted,
		}, nil)
	})

	got, err := q.Submit(context.Background(), providerID, reqID, validSubmitInput())
	require.NoError(t, err)
	require.Equal(t, domain.QuoteStatusPending, got.Status)
}

func TestQuotes_Submit_alreadyQuotedRequestKeepsStatus(t *testing.T) {
	ctrl, st, q := newTestQuotes(t)

	reqID := domain.RequestID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RequestByID(gomock.Any(), reqID).Return(&domain.ServiceRequest{
			ID:     reqID,
			Status: domain.RequestStatusQuoted,
		}, nil)
		tx.EXPECT().StoreQuote(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in domain.Quote) (*domain.Quote, error) {
				return &in, nil
			},
		)
		// no UpdateRequestByID expected, the request is already QUOTED
	})

	_, err := q.Submit(context.Background(), domain.UserID(uuid.New()), reqID, validSubmitInput())
	require.NoError(t, err)
}

func TestQuotes_Submit_duplicateLiveQuote(t *testing.T) {
	ctrl, st, q := newTestQuotes(t)

	reqID := domain.RequestID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RequestByID(gomock.Any(), reqID).Return(&domain.ServiceRequest{
			ID:     reqID,
			Status: domain.RequestStatusQuoted,
		}, nil)
		tx.EXPECT().StoreQuote(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)
	})

	_, err := q.Submit(context.Background(), domain.UserID(uuid.New()), reqID, validSubmitInput())
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestQuotes_Submit_closedRequest(t *testing.T) {
	ctrl, st, q := newTestQuotes(t)

	reqID := domain.RequestID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RequestByID(gomock.Any(), reqID).Return(&domain.ServiceRequest{
			ID:     reqID,
			Status: domain.RequestStatusAccepted,
		}, nil)
	})

	_, err := q.Submit(context.Background(), domain.UserID(uuid.New()), reqID, validSubmitInput())
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestQuotes_Submit_invalidInput(t *testing.T) {
	_, _, q := newTestQuotes(t)

	cases := map[string]func(*quote.SubmitInput){
		"zero amount":        func(in *quote.SubmitInput) { in.AmountCents = 0 },
		"negative amount":    func(in *quote.SubmitInput) { in.AmountCents = -100 },
		"lowercase currency": func(in *quote.SubmitInput) { in.Currency = "usd" },
		"long currency":      func(in *quote.SubmitInput) { in.Currency = "USDT" },
		"negative est":       func(in *quote.SubmitInput) { in.EstDays = -1 },
		"huge est":           func(in *quote.SubmitInput) { in.EstDays = 366 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validSubmitInput()
			mutate(&in)

			_, err := q.Submit(context.Background(), domain.UserID(uuid.New()), domain.RequestID(uuid.New()), in)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestQuotes_Accept_declinesSiblingsAndEnqueues(t *testing.T) {
	ctrl, st, q := newTestQuotes(t)

	customerID := domain.UserID(uuid.New())
	reqID := domain.RequestID(uuid.New())
	quoteID := domain.QuoteID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().QuoteByID(gomock.Any(), quoteID).Return(&domain.Quote{
			ID:        quoteID,
			RequestID: reqID,
			Status:    domain.QuoteStatusPending,
		}, nil)
		tx.EXPECT().RequestByID(gomock.Any(), reqID).Return(&domain.ServiceRequest{
			ID:         reqID,
			CustomerID: customerID,
			Status:     domain.RequestStatusQuoted,
		}, nil)
		tx.EXPECT().UpdateQuoteStatus(gomock.Any(), quoteID,
			domain.QuoteStatusAccepted, domain.QuoteStatusPending).Return(&domain.Quote{
			ID:     quoteID,
			Status: domain.QuoteStatusAccepted,
		}, nil)
		tx.EXPECT().DeclineSiblingQuotes(gomock.Any(), reqID, quoteID).Return(int64(2), nil)
		tx.EXPECT().UpdateRequestByID(gomock.Any(), reqID, gomock.Any(),
			domain.RequestStatusOpen, domain.RequestStatusQuoted).DoAndReturn(
			func(_ context.Context,
				id domain.RequestID,
				updates storage.RequestUpdates,
				_ ...domain.RequestStatus) (*domain.ServiceRequest, error) {
				require.Equal(t, domain.RequestStatusAccepted, updates.Status)
				require.NotNil(t, updates.AcceptedQuoteID)
				require.Equal(t, quoteID, *updates.AcceptedQuoteID)

				return &domain.ServiceRequest{ID: id, Status: updates.Status}, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				accepted, ok := args.(quote.QuoteAcceptedArgs)
				require.True(t, ok, "unexpected job args type %T", args)
				require.Equal(t, uuid.UUID(quoteID).String(), accepted.QuoteID)

				return true, nil
			},
		)
	})

	got, err := q.Accept(context.Background(), customerID, quoteID)
	require.NoError(t, err)
	require.Equal(t, domain.QuoteStatusAccepted, got.Status)
}

func TestQuotes_Accept_notOwner(t *testing.T) {
	ctrl, st, q := newTestQuotes(t)

	quoteID := domain.QuoteID(uuid.New())
	reqID := domain.RequestID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().QuoteByID(gomock.Any(), quoteID).Return(&domain.Quote{
			ID:        quoteID,
			RequestID: reqID,
		}, nil)
		tx.EXPECT().RequestByID(gomock.Any(), reqID).Return(&domain.ServiceRequest{
			ID:         reqID,
			CustomerID: domain.UserID(uuid.New()),
		}, nil)
	})

	_, err := q.Accept(context.Background(), domain.UserID(uuid.New()), quoteID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestQuotes_Accept_secondAcceptConflicts(t *testing.T) {
	ctrl, st, q := newTestQuotes(t)

	customerID := domain.UserID(uuid.New())
	reqID := domain.RequestID(uuid.New())
	quoteID := domain.QuoteID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().QuoteByID(gomock.Any(), quoteID).Return(&domain.Quote{
			ID:        quoteID,
			RequestID: reqID,
			Status:    domain.QuoteStatusAccepted,
		}, nil)
		tx.EXPECT().RequestByID(gomock.Any(), reqID).Return(&domain.ServiceRequest{
			ID:         reqID,
			CustomerID: customerID,
			Status:     domain.RequestStatusAccepted,
		}, nil)
		// guard rejects: the quote is no longer PENDING
		tx.EXPECT().UpdateQuoteStatus(gomock.Any(), quoteID,
			domain.QuoteStatusAccepted, domain.QuoteStatusPending).Return(nil, nil)
	})

	_, err := q.Accept(context.Background(), customerID, quoteID)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestQuotes_ListByRequest_providerSeesOwnOnly(t *testing.T) {
	_, st, q := newTestQuotes(t)

	providerID := domain.UserID(uuid.New())
	reqID := domain.RequestID(uuid.New())
	st.EXPECT().RequestByID(gomock.Any(), reqID).Return(&domain.ServiceRequest{ID: reqID}, nil)
	st.EXPECT().RequestQuotes(gomock.Any(), reqID).Return([]domain.Quote{
		{ProviderID: providerID},
		{ProviderID: domain.UserID(uuid.New())},
	}, nil)

	viewer := &domain.User{ID: providerID, Role: domain.RoleProvider}
	got, err := q.ListByRequest(context.Background(), viewer, reqID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, providerID, got[0].ProviderID)
}

func TestQuotes_ListByRequest_ownerSeesAll(t *testing.T) {
	_, st, q := newTestQuotes(t)

	customerID := domain.UserID(uuid.New())
	reqID := domain.RequestID(uuid.New())
	st.EXPECT().RequestByID(gomock.Any(), reqID).Return(&domain.ServiceRequest{
		ID:         reqID,
		CustomerID: customerID,
	}, nil)
	st.EXPECT().RequestQuotes(gomock.Any(), reqID).Return([]domain.Quote{{}, {}}, nil)

	viewer := &domain.User{ID: customerID, Role: domain.RoleCustomer}
	got, err := q.ListByRequest(context.Background(), viewer, reqID)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestQuotes_Withdraw_notPending(t *testing.T) {
	_, st, q := newTestQuotes(t)

	providerID := domain.UserID(uuid.New())
	quoteID := domain.QuoteID(uuid.New())
	st.EXPECT().QuoteByID(gomock.Any(), quoteID).Return(&domain.Quote{
		ID:         quoteID,
		ProviderID: providerID,
		Status:     domain.QuoteStatusAccepted,
	}, nil)
	st.EXPECT().UpdateQuoteStatus(gomock.Any(), quoteID,
		domain.QuoteStatusWithdrawn, domain.QuoteStatusPending).Return(nil, nil)

	_, err := q.Withdraw(context.Background(), providerID, quoteID)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestQuotes_Complete_success(t *testing.T) {
	_, st, q := newTestQuotes(t)

	providerID := domain.UserID(uuid.New())
	reqID := domain.RequestID(uuid.New())
	quoteID := domain.QuoteID(uuid.New())
	st.EXPECT().QuoteByID(gomock.Any(), quoteID).Return(&domain.Quote{
		ID:         quoteID,
		RequestID:  reqID,
		ProviderID: providerID,
		Status:     domain.QuoteStatusAccepted,
	}, nil)
	st.EXPECT().UpdateRequestByID(gomock.Any(), reqID, gomock.Any(),
		domain.RequestStatusAccepted).Return(&domain.ServiceRequest{
		ID:     reqID,
		Status: domain.RequestStatusCompleted,
	}, nil)

	req, err := q.Complete(context.Background(), providerID, quoteID)
	require.NoError(t, err)
	require.Equal(t, domain.RequestStatusCompleted, req.Status)
}

func TestQuotes_Complete_wrongProvider(t *testing.T) {
	_, st, q := newTestQuotes(t)

	quoteID := domain.QuoteID(uuid.New())
	st.EXPECT().QuoteByID(gomock.Any(), quoteID).Return(&domain.Quote{
		ID:         quoteID,
		ProviderID: domain.UserID(uuid.New()),
		Status:     domain.QuoteStatusAccepted,
	}, nil)

	_, err := q.Complete(context.Background(), domain.UserID(uuid.New()), quoteID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
