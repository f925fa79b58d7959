package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"carmate/internal/account"
	"carmate/internal/api"
	"carmate/internal/api/handler/apihandler"
	"carmate/internal/config"
	"carmate/internal/quote"
	"carmate/internal/request"
	"carmate/internal/review"
	"carmate/internal/worker"
	"carmate/pkg/logger"
	"carmate/pkg/mailer/restmailer"
	"carmate/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) func(ctx context.Context) {
	tokens, err := account.NewTokenIssuer(cfg)
	if err != nil {
		logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
	}

	accounts := account.New(strg, tokens, account.NewOptions(cfg))

	server, err := api.NewServer(api.Deps{
		Deps: apihandler.Deps{
			Account:  accounts,
			Requests: request.New(strg, request.NewOptions(cfg)),
			Quotes:   quote.New(strg, quote.NewOptions(cfg)),
			Reviews:  review.New(strg),
		},
		Sec: apihandler.NewSecHandler(tokens, accounts),
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorkers(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) func(ctx context.Context) {
	mail := restmailer.New(restmailer.Options{
		BaseURL: cfg.Mailer.BaseURL,
		APIKey:  cfg.Mailer.APIKey,
		From:    cfg.Mailer.From,
		Timeout: cfg.Mailer.Timeout,
	})

	riverClient, err := worker.Start(ctx, strg.Pool, strg, mail, cfg.Notify.MaxWorkers)
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			stopWorkers := setupWorkers(ctx, cfg, strg)
			stopWebserver := setupServer(ctx, cfg, strg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
		},
	}

	return cmd
}
