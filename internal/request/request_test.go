package request_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"carmate/internal/request"
	"carmate/pkg/domain"
	"carmate/pkg/serrors"
	"carmate/pkg/storage"
	mockstorage "carmate/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRequests(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, request.Requests) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	r := request.New(st, request.Options{
		UploadsDir:      t.TempDir(),
		MaxFileBytes:    64,
		MaxFiles:        2,
		MailMaxAttempts: 3,
		DedupePeriod:    24 * time.Hour,
	})

	return ctrl, st, r
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

func TestRequests_Create_enqueuesJob(t *testing.T) {
	ctrl, st, r := newTestRequests(t)

	customerID := domain.UserID(uuid.New())
	reqID := domain.RequestID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req domain.ServiceRequest) (*domain.ServiceRequest, error) {
				require.Equal(t, customerID, req.CustomerID)
				require.Equal(t, domain.RequestStatusOpen, req.Status)
				req.ID = reqID

				return &req, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				created, ok := args.(request.RequestCreatedArgs)
				require.True(t, ok, "unexpected job args type %T", args)
				require.Equal(t, uuid.UUID(reqID).String(), created.RequestID)

				return true, nil
			},
		)
	})

	req, err := r.Create(context.Background(), customerID, validCreateInput())
	require.NoError(t, err)
	require.Equal(t, reqID, req.ID)
}

func TestRequests_Create_storeFails_noJob(t *testing.T) {
	ctrl, st, r := newTestRequests(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreRequest(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert failed"))
		// no AddJob expected
	})

	_, err := r.Create(context.Background(), domain.UserID(uuid.New()), validCreateInput())
	require.Error(t, err)
}

func TestRequests_Create_invalidInput(t *testing.T) {
	_, _, r := newTestRequests(t)

	in := validCreateInput()
	in.Symptoms = "too short"

	_, err := r.Create(context.Background(), domain.UserID(uuid.New()), in)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestRequests_ByID_customerOwnership(t *testing.T) {
	_, st, r := newTestRequests(t)

	owner := domain.UserID(uuid.New())
	reqID := domain.RequestID(uuid.New())
	st.EXPECT().RequestByID(gomock.Any(), reqID).Return(&domain.ServiceRequest{
		ID:         reqID,
		CustomerID: owner,
	}, nil)

	// a different customer must not see the request
	stranger := &domain.User{ID: domain.UserID(uuid.New()), Role: domain.RoleCustomer}
	_, err := r.ByID(context.Background(), stranger, reqID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestRequests_ByID_providerSeesAny(t *testing.T) {
	_, st, r := newTestRequests(t)

	reqID := domain.RequestID(uuid.New())
	st.EXPECT().RequestByID(gomock.Any(), reqID).Return(&domain.ServiceRequest{
		ID:         reqID,
		CustomerID: domain.UserID(uuid.New()),
	}, nil)
	st.EXPECT().RequestPhotos(gomock.Any(), reqID).Return([]domain.RequestPhoto{{FileName: "a.jpg"}}, nil)

	provider := &domain.User{ID: domain.UserID(uuid.New()), Role: domain.RoleProvider}
	req, err := r.ByID(context.Background(), provider, reqID)
	require.NoError(t, err)
	require.Len(t, req.Photos, 1)
}

func TestRequests_Cancel_wrongState(t *testing.T) {
	_, st, r := newTestRequests(t)

	customerID := domain.UserID(uuid.New())
	reqID := domain.RequestID(uuid.New())
	st.EXPECT().RequestByID(gomock.Any(), reqID).Return(&domain.ServiceRequest{
		ID:         reqID,
		CustomerID: customerID,
		Status:     domain.RequestStatusAccepted,
	}, nil)
	st.EXPECT().UpdateRequestByID(gomock.Any(), reqID, gomock.Any(),
		domain.RequestStatusOpen, domain.RequestStatusQuoted).Return(nil, nil)

	_, err := r.Cancel(context.Background(), customerID, reqID)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestRequests_Cancel_success(t *testing.T) {
	_, st, r := newTestRequests(t)

	customerID := domain.UserID(uuid.New())
	reqID := domain.RequestID(uuid.New())
	st.EXPECT().RequestByID(gomock.Any(), reqID).Return(&domain.ServiceRequest{
		ID:         reqID,
		CustomerID: customerID,
		Status:     domain.RequestStatusOpen,
	}, nil)
	st.EXPECT().UpdateRequestByID(gomock.Any(), reqID, gomock.Any(),
		domain.RequestStatusOpen, domain.RequestStatusQuoted).Return(&domain.ServiceRequest{
		ID:     reqID,
		Status: domain.RequestStatusCancelled,
	}, nil)

	req, err := r.Cancel(context.Background(), customerID, reqID)
	require.NoError(t, err)
	require.Equal(t, domain.RequestStatusCancelled, req.Status)
}

func TestRequests_CustomerRequests_invalidCursor(t *testing.T) {
	_, _, r := newTestRequests(t)

	_, _, err := r.CustomerRequests(context.Background(), domain.UserID(uuid.New()), "", "garbage", 10)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestRequests_AttachPhotos_storesFiles(t *testing.T) {
	_, st, r := newTestRequests(t)

	customerID := domain.UserID(uuid.New())
	reqID := domain.RequestID(uuid.New())
	st.EXPECT().RequestByID(gomock.Any(), reqID).Return(&domain.ServiceRequest{
		ID:         reqID,
		CustomerID: customerID,
	}, nil)
	st.EXPECT().StorePhotos(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, photos ...domain.RequestPhoto) ([]domain.RequestPhoto, error) {
			require.Len(t, photos, 1)
			require.Equal(t, "dash.jpg", photos[0].FileName)
			require.Equal(t, int64(9), photos[0].SizeBytes)

			data, err := os.ReadFile(photos[0].StoredPath)
			require.NoError(t, err)
			require.Equal(t, "jpeg-data", string(data))

			return photos, nil
		},
	)

	photos, err := r.AttachPhotos(context.Background(), customerID, reqID, []request.Upload{{
		FileName:    filepath.Join("ignored", "dash.jpg"),
		ContentType: "image/jpeg",
		Content:     strings.NewReader("jpeg-data"),
	}})
	require.NoError(t, err)
	require.Len(t, photos, 1)
}

func TestRequests_AttachPhotos_tooLarge(t *testing.T) {
	_, st, r := newTestRequests(t)

	customerID := domain.UserID(uuid.New())
	reqID := domain.RequestID(uuid.New())
	st.EXPECT().RequestByID(gomock.Any(), reqID).Return(&domain.ServiceRequest{
		ID:         reqID,
		CustomerID: customerID,
	}, nil)

	_, err := r.AttachPhotos(context.Background(), customerID, reqID, []request.Upload{{
		FileName:    "big.png",
		ContentType: "image/png",
		Content:     strings.NewReader(strings.Repeat("x", 65)),
	}})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestRequests_AttachPhotos_badType(t *testing.T) {
	_, st, r := newTestRequests(t)

	customerID := domain.UserID(uuid.New())
	reqID := domain.RequestID(uuid.New())
	st.EXPECT().RequestByID(gomock.Any(), reqID).Return(&domain.ServiceRequest{
		ID:         reqID,
		CustomerID: customerID,
	}, nil)

	_, err := r.AttachPhotos(context.Background(), customerID, reqID, []request.Upload{{
		FileName:    "malware.exe",
		ContentType: "application/octet-stream",
		Content:     strings.NewReader("nope"),
	}})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestRequests_AttachPhotos_tooMany(t *testing.T) {
	_, _, r := newTestRequests(t)

	uploads := make([]request.Upload, 3)
	for i := range uploads {
		uploads[i] = request.Upload{FileName: "a.jpg", ContentType: "image/jpeg", Content: strings.NewReader("x")}
	}

	_, err := r.AttachPhotos(context.Background(), domain.UserID(uuid.New()), domain.RequestID(uuid.New()), uploads)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
