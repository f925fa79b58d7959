package worker

import (
	"context"
	"fmt"
	"log/slog"

	"carmate/pkg/logger"
	"carmate/pkg/mailer"
	"carmate/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Start registers the notification workers and starts the River client. All
// workers share one MailGate so their combined throughput respects the mail
// provider's rate limits.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	st storage.Storage,
	mail mailer.Client,
	maxWorkers int) (*river.Client[pgx.Tx], error) {
	gate := NewMailGate()

	workers := river.NewWorkers()
	river.AddWorker(workers, NewRequestCreatedWorker(st, mail, gate))
	river.AddWorker(workers, NewQuoteAcceptedWorker(st, mail, gate))
	river.AddWorker(workers, NewPasswordResetWorker(mail, gate))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
