package observability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RecordFailure records err on the span, increments counter and logs it:
// client errors (4xx) at warn, everything else at error with the full cause.
func RecordFailure(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, opName, msg string, err error, status int) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	span.SetAttributes(attribute.Int("http.response.status_code", status))

	counter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", opName)))

	fields := []zap.Field{
		zap.String("operation", opName),
		zap.Int("status", status),
		zap.Error(err),
		zap.String("request_id", RequestIDFromContext(ctx)),
	}
	if status < http.StatusInternalServerError {
		logger.Warn(msg, fields...)
		return
	}
	logger.Error(msg, append(fields, zap.String("error_verbose", verboseError(err)))...)
}

// RecordError is RecordFailure followed by a {"detail": msg} response. msg is
// all the client sees; err stays server-side.
func RecordError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, opName, msg string, err error, status int, w http.ResponseWriter) {
	RecordFailure(ctx, span, logger, counter, opName, msg, err, status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"detail": msg,
	})
}

// verboseError renders err with any stack traces and wrapping details
// captured by cockroachdb/errors.
func verboseError(err error) string {
	return fmt.Sprintf("%+v", err)
}
