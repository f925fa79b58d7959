package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carmate/internal/account"
	"carmate/internal/quote"
	"carmate/internal/request"
	"carmate/pkg/domain"
	"carmate/pkg/logger"
	"carmate/pkg/mailer"
	"carmate/pkg/serrors"
	"carmate/pkg/storage"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// deliver runs one mail delivery through the shared gate and maps provider
// errors to River actions: permanent addressing errors cancel the job,
// provider rate limiting snoozes it until the reported reset time.
func deliver(ctx context.Context, gate *MailGate, client mailer.Client, msg mailer.Message) error {
	if err := gate.Reserve(ctx); err != nil {
		logger.Error(ctx, "error reserving rate limit", zap.Error(err))

		return fmt.Errorf("could not reserve rate limit: %w", err)
	}

	_, rlStatus, err := client.Send(ctx, msg)
	gate.Finished(ctx, rlStatus)
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error sending mail", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			dur := time.Until(rlStatus.ResetAt)
			if dur < 0 {
				dur = 0
			}

			return river.JobSnooze(dur) //nolint: wrapcheck
		}

		return fmt.Errorf("could not send mail: %w", err)
	}

	return nil
}

// RequestCreatedWorker mails active providers when a new service request is
// filed so they can come quote it.
type RequestCreatedWorker struct {
	river.WorkerDefaults[request.RequestCreatedArgs]

	storage storage.Storage
	mail    mailer.Client
	gate    *MailGate
}

// NewRequestCreatedWorker constructs a RequestCreatedWorker sharing the given
// mail gate.
func NewRequestCreatedWorker(st storage.Storage, mail mailer.Client, gate *MailGate) *RequestCreatedWorker {
	return &RequestCreatedWorker{storage: st, mail: mail, gate: gate}
}

func (w *RequestCreatedWorker) Work(ctx context.Context, job *river.Job[request.RequestCreatedArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("requestID", job.Args.RequestID))

	id, err := uuid.Parse(job.Args.RequestID)
	if err != nil {
		return river.JobCancel(fmt.Errorf("invalid request id: %w", err)) //nolint: wrapcheck
	}

	req, err := w.storage.RequestByID(ctx, domain.RequestID(id))
	if err != nil {
		return fmt.Errorf("could not get request: %w", err)
	}
	// The request may have been cancelled or deleted before the job ran;
	// nothing to announce then.
	if req == nil || (req.Status != domain.RequestStatusOpen && req.Status != domain.RequestStatusQuoted) {
		logger.Info(ctx, "request no longer open, skipping notification")

		return nil
	}

	emails, err := w.storage.ActiveProviderEmails(ctx)
	if err != nil {
		return fmt.Errorf("could not get provider emails: %w", err)
	}
	if len(emails) == 0 {
		logger.Info(ctx, "no active providers to notify")

		return nil
	}

	msg := mailer.Message{
		To:      emails,
		Subject: fmt.Sprintf("New service request: %s", req.ServiceType),
		Body: fmt.Sprintf("A customer in %s needs %s for a %d %s %s (urgency: %s).\n\n%s",
			req.Location, req.ServiceType,
			req.Vehicle.Year, req.Vehicle.Make, req.Vehicle.Model,
			req.Urgency, req.Symptoms),
	}
	if err := deliver(ctx, w.gate, w.mail, msg); err != nil {
		return err
	}

	logger.Info(ctx, "provider notification sent", zap.Int("recipients", len(emails)))

	return nil
}

// QuoteAcceptedWorker mails the provider whose quote the customer accepted.
type QuoteAcceptedWorker struct {
	river.WorkerDefaults[quote.QuoteAcceptedArgs]

	storage storage.Storage
	mail    mailer.Client
	gate    *MailGate
}

// NewQuoteAcceptedWorker constructs a QuoteAcceptedWorker sharing the given
// mail gate.
func NewQuoteAcceptedWorker(st storage.Storage, mail mailer.Client, gate *MailGate) *QuoteAcceptedWorker {
	return &QuoteAcceptedWorker{storage: st, mail: mail, gate: gate}
}

func (w *QuoteAcceptedWorker) Work(ctx context.Context, job *river.Job[quote.QuoteAcceptedArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("quoteID", job.Args.QuoteID))

	id, err := uuid.Parse(job.Args.QuoteID)
	if err != nil {
		return river.JobCancel(fmt.Errorf("invalid quote id: %w", err)) //nolint: wrapcheck
	}

	q, err := w.storage.QuoteByID(ctx, domain.QuoteID(id))
	if err != nil {
		return fmt.Errorf("could not get quote: %w", err)
	}
	if q == nil || q.Status != domain.QuoteStatusAccepted {
		logger.Info(ctx, "quote no longer accepted, skipping notification")

		return nil
	}

	provider, err := w.storage.UserByID(ctx, q.ProviderID)
	if err != nil {
		return fmt.Errorf("could not get provider: %w", err)
	}
	if provider == nil {
		return river.JobCancel(errors.New("provider no longer exists")) //nolint: wrapcheck
	}

	msg := mailer.Message{
		To:      []string{provider.Email},
		Subject: "Your quote was accepted",
		Body: fmt.Sprintf("%s, your quote of %d.%02d %s was accepted. The customer is waiting to schedule.",
			provider.FullName, q.AmountCents/100, q.AmountCents%100, q.Currency),
	}
	if err := deliver(ctx, w.gate, w.mail, msg); err != nil {
		return err
	}

	logger.Info(ctx, "acceptance mail sent")

	return nil
}

// PasswordResetWorker mails a password reset token to the requesting account.
type PasswordResetWorker struct {
	river.WorkerDefaults[account.PasswordResetArgs]

	mail mailer.Client
	gate *MailGate
}

// NewPasswordResetWorker constructs a PasswordResetWorker sharing the given
// mail gate.
func NewPasswordResetWorker(mail mailer.Client, gate *MailGate) *PasswordResetWorker {
	return &PasswordResetWorker{mail: mail, gate: gate}
}

func (w *PasswordResetWorker) Work(ctx context.Context, job *river.Job[account.PasswordResetArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("userID", job.Args.UserID))

	msg := mailer.Message{
		To:      []string{job.Args.Email},
		Subject: "Reset your password",
		Body: fmt.Sprintf("Use this token to reset your password: %s\n\nIf you didn't request a reset, ignore this mail.",
			job.Args.Token),
	}
	if err := deliver(ctx, w.gate, w.mail, msg); err != nil {
		return err
	}

	logger.Info(ctx, "password reset mail sent")

	return nil
}
