package main

import (
	"context"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/config"
	"go-chi-calculator/internal/observability"
)

// initTelemetry starts the OTLP providers when enabled and registers the
// calculator instruments. Shutdown hooks are added to ops.
func initTelemetry(ctx context.Context, cfg config.Telemetry, ops map[string]gfshutdown.Operation) error {
	if cfg.Enabled {
		traceShutdown, err := observability.InitTracing(ctx)
		if err != nil {
			return err
		}
		ops["tracing"] = traceShutdown

		metricShutdown, err := observability.InitMetrics(ctx)
		if err != nil {
			return err
		}
		ops["metrics"] = metricShutdown

		if cfg.LogsEnabled {
			logShutdown, err := observability.InitLogging(ctx)
			if err != nil {
				return err
			}
			ops["otlp-logs"] = logShutdown
		}
	}

	return calculator.InitMetrics()
}
