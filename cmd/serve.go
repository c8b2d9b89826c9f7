package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"auditor/internal/api"
	"auditor/internal/api/handler/v1handler"
	"auditor/internal/auditor"
	"auditor/internal/config"
	"auditor/internal/dashboard"
	"auditor/internal/worker"
	"auditor/pkg/auth/localauth"
	"auditor/pkg/engine/axemock"
	"auditor/pkg/logger"
	"auditor/pkg/storage/postgres"

	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"riverqueue.com/riverui"

	"github.com/jackc/pgx/v5"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
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

func setupWorkers(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) *river.Client[pgx.Tx] {
	eng := axemock.New(axemock.Options{Latency: cfg.Audit.EngineLatency})
	auditWorker := worker.NewAuditWorker(eng, strg, worker.AuditWorkerOptions{
		Timeout:     cfg.Audit.Timeout,
		MaxAttempts: cfg.Audit.MaxAttempts,
	})

	riverClient, err := worker.Start(ctx, strg.Pool, auditWorker)
	if err != nil {
		logger.Fatal(ctx, "could not start background workers", zap.Error(err))
	}

	return riverClient
}

func setupJobUI(ctx context.Context, strg *postgres.PgSQL, riverClient *river.Client[pgx.Tx]) http.Handler {
	jobUI, err := riverui.NewServer(&riverui.ServerOpts{
		Client: riverClient,
		DB:     strg.Pool,
		Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
		Prefix: "/riverui",
	})
	if err != nil {
		logger.Warn(ctx, "could not create river UI, continuing without it", zap.Error(err))

		return nil
	}
	if err := jobUI.Start(ctx); err != nil {
		logger.Warn(ctx, "could not start river UI, continuing without it", zap.Error(err))

		return nil
	}

	return jobUI
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			riverClient := setupWorkers(ctx, cfg, strg)

			authProvider, err := localauth.New(strg, localauth.Options{
				PrivateKey: cfg.JWT.PrivateKey,
				PublicKey:  cfg.JWT.PublicKey,
				TokenTTL:   cfg.JWT.TTL,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create auth provider", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Auditor:   auditor.New(strg, auditor.NewOptions(cfg)),
					Auth:      authProvider,
					Dashboard: dashboard.New(strg),
				},
				JobUI: setupJobUI(ctx, strg, riverClient),
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop background workers", zap.Error(err))
			}
		},
	}

	return cmd
}
