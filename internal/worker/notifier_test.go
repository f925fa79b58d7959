package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"carmate/internal/account"
	"carmate/internal/request"
	"carmate/pkg/domain"
	"carmate/pkg/mailer"
	"carmate/pkg/serrors"
	mockstorage "carmate/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeMailer records sent messages and returns scripted results.
type fakeMailer struct {
	sent []mailer.Message
	rl   mailer.RateLimitStatus
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) (mailer.SendRes, mailer.RateLimitStatus, error) {
	f.sent = append(f.sent, msg)

	return mailer.SendRes{ID: "msg-1"}, f.rl, f.err
}

func okRL() mailer.RateLimitStatus {
	return mailer.RateLimitStatus{Limit: 100, Remaining: 99, ResetAt: time.Now().Add(time.Hour)}
}

func TestPasswordResetWorker_sendsToken(t *testing.T) {
	mail := &fakeMailer{rl: okRL()}
	w := NewPasswordResetWorker(mail, NewMailGate())

	job := &river.Job[account.PasswordResetArgs]{
		JobRow: &rivertype.JobRow{ID: 1},
		Args: account.PasswordResetArgs{
			UserID: uuid.NewString(),
			Email:  "dana@example.com",
			Token:  "tok-abc",
		},
	}

	require.NoError(t, w.Work(context.Background(), job))
	require.Len(t, mail.sent, 1)
	require.Equal(t, []string{"dana@example.com"}, mail.sent[0].To)
	require.Contains(t, mail.sent[0].Body, "tok-abc")
}

func TestPasswordResetWorker_badAddressCancels(t *testing.T) {
	mail := &fakeMailer{rl: okRL(), err: serrors.With(serrors.ErrBadRequest, "bad recipient")}
	w := NewPasswordResetWorker(mail, NewMailGate())

	job := &river.Job[account.PasswordResetArgs]{
		JobRow: &rivertype.JobRow{ID: 1},
		Args:   account.PasswordResetArgs{Email: "broken@", Token: "tok"},
	}

	err := w.Work(context.Background(), job)
	require.Error(t, err)

	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr, "addressing errors should cancel the job")
}

func TestPasswordResetWorker_rateLimitedSnoozes(t *testing.T) {
	mail := &fakeMailer{
		rl:  mailer.RateLimitStatus{Limit: 10, Remaining: 0, ResetAt: time.Now().Add(time.Minute)},
		err: serrors.KindOnly(serrors.ErrRateLimited),
	}
	w := NewPasswordResetWorker(mail, NewMailGate())

	job := &river.Job[account.PasswordResetArgs]{
		JobRow: &rivertype.JobRow{ID: 2},
		Args:   account.PasswordResetArgs{Email: "dana@example.com", Token: "tok"},
	}

	err := w.Work(context.Background(), job)
	require.Error(t, err)

	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr, "rate limiting should snooze the job")
}

func TestRequestCreatedWorker_notifiesProviders(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	mail := &fakeMailer{rl: okRL()}
	w := NewRequestCreatedWorker(st, mail, NewMailGate())

	reqID := uuid.New()
	st.EXPECT().RequestByID(gomock.Any(), domain.RequestID(reqID)).Return(&domain.ServiceRequest{
		ID:          domain.RequestID(reqID),
		Status:      domain.RequestStatusOpen,
		ServiceType: "Brake Service",
		Location:    "Oakland, CA",
		Urgency:     domain.UrgencyHigh,
		Symptoms:    "Grinding noise when braking",
		Vehicle:     domain.Vehicle{Make: "Toyota", Model: "Corolla", Year: 2019},
	}, nil)
	st.EXPECT().ActiveProviderEmails(gomock.Any()).Return([]string{"shop1@example.com", "shop2@example.com"}, nil)

	job := &river.Job[request.RequestCreatedArgs]{
		JobRow: &rivertype.JobRow{ID: 7},
		Args:   request.RequestCreatedArgs{RequestID: reqID.String()},
	}

	require.NoError(t, w.Work(context.Background(), job))
	require.Len(t, mail.sent, 1)
	require.Len(t, mail.sent[0].To, 2)
	require.Contains(t, mail.sent[0].Subject, "Brake Service")
}

func TestRequestCreatedWorker_skipsCancelledRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	mail := &fakeMailer{rl: okRL()}
	w := NewRequestCreatedWorker(st, mail, NewMailGate())

	reqID := uuid.New()
	st.EXPECT().RequestByID(gomock.Any(), domain.RequestID(reqID)).Return(&domain.ServiceRequest{
		ID:     domain.RequestID(reqID),
		Status: domain.RequestStatusCancelled,
	}, nil)

	job := &river.Job[request.RequestCreatedArgs]{
		JobRow: &rivertype.JobRow{ID: 8},
		Args:   request.RequestCreatedArgs{RequestID: reqID.String()},
	}

	require.NoError(t, w.Work(context.Background(), job))
	require.Empty(t, mail.sent, "no mail for a cancelled request")
}

func TestRequestCreatedWorker_transientErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	mail := &fakeMailer{rl: okRL(), err: errors.New("upstream down")}
	w := NewRequestCreatedWorker(st, mail, NewMailGate())

	reqID := uuid.New()
	st.EXPECT().RequestByID(gomock.Any(), gomock.Any()).Return(&domain.ServiceRequest{
		ID:     domain.RequestID(reqID),
		Status: domain.RequestStatusOpen,
	}, nil)
	st.EXPECT().ActiveProviderEmails(gomock.Any()).Return([]string{"shop@example.com"}, nil)

	job := &river.Job[request.RequestCreatedArgs]{
		JobRow: &rivertype.JobRow{ID: 9},
		Args:   request.RequestCreatedArgs{RequestID: reqID.String()},
	}

	err := w.Work(context.Background(), job)
	require.Error(t, err)

	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "transient errors must not cancel the job")
}
