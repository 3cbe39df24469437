package main

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"go.uber.org/zap"

	"go-chi-calculator/internal/config"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/server"
)

func run(ctx context.Context, cfg config.Config) error {
	// Logger
	if err := observability.InitLogger(observability.LoggerOptions{
		Level: cfg.Log.Level,
		Dir:   cfg.Log.Dir,
	}); err != nil {
		return err
	}
	defer observability.SyncLogger()

	ops := map[string]gfshutdown.Operation{}

	// Tracing, metrics, OTLP logs
	if err := initTelemetry(ctx, cfg.Telemetry, ops); err != nil {
		observability.Logger.Error("telemetry init failed", zap.Error(err))
		return errors.CombineErrors(err, shutdownAll(ops, cfg.Shutdown))
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      server.NewRouter(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}
	ops["http-server"] = func(ctx context.Context) error {
		observability.Logger.Info("server shutting down")
		return srv.Shutdown(ctx)
	}

	serveErr := make(chan error, 1)
	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", cfg.HTTP.Addr),
			zap.Bool("telemetry", cfg.Telemetry.Enabled),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	wait := gfshutdown.GracefulShutdown(ctx, cfg.Shutdown, ops)

	select {
	case err := <-serveErr:
		observability.Logger.Error("server failed", zap.Error(err))
		return errors.CombineErrors(errors.Wrap(err, "serving http"), shutdownAll(ops, cfg.Shutdown))
	case code := <-wait:
		if code != 0 {
			return errors.Newf("shutdown finished with exit code %d", code)
		}
		observability.Logger.Info("server stopped")
		return nil
	}
}
