package calculator

import (
	"net/http"
	"strings"
	"time"

	"go-chi-calculator/internal/handlers"
	"go-chi-calculator/internal/observability"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

const internalErrorDetail = "Internal server error"

// HandleCalculate handles POST /calculate.
func HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.calculate",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req CalculationRequest
	if err := handlers.Bind(r, &req); err != nil {
		var verr *handlers.ValidationError
		if !errors.As(err, &verr) {
			observability.RecordError(ctx, span, logger, errorCounter, "unknown", internalErrorDetail, err, http.StatusInternalServerError, w)
			return
		}
		observability.RecordFailure(ctx, span, logger, errorCounter, "unknown", "request validation failed", err, http.StatusUnprocessableEntity)
		handlers.WriteValidationError(w, verr)
		return
	}

	num1, num2, opName := *req.Num1, *req.Num2, *req.Operation
	opLabel := strings.ToLower(opName)

	span.SetAttributes(
		attribute.String("calculator.operation", opName),
		attribute.Float64("calculator.operand.num1", num1),
		attribute.Float64("calculator.operand.num2", num2),
	)

	logger.Info("calculate called",
		zap.Float64("num1", num1),
		zap.Float64("num2", num2),
		zap.String("operation", opName),
		zap.String("request_id", requestID),
	)

	start := time.Now()
	result, err := Calculate(num1, num2, opName)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		if detail, ok := detailMessage(err); ok {
			// Unknown names must not become metric label values.
			label := opLabel
			var invalid *InvalidOperationError
			if errors.As(err, &invalid) {
				label = "invalid"
			}
			observability.RecordError(ctx, span, logger, errorCounter, label, detail, err, http.StatusBadRequest, w)
			return
		}
		observability.RecordError(ctx, span, logger, errorCounter, opLabel, internalErrorDetail, err, http.StatusInternalServerError, w)
		return
	}

	resp := CalculationResult{
		Result:    result,
		Operation: opLabel,
		Num1:      num1,
		Num2:      num2,
	}
	body, err := handlers.EncodeJSON(resp)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opLabel, internalErrorDetail,
			errors.Wrapf(err, "encoding result of %s", opLabel), http.StatusInternalServerError, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", opLabel))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculation successful",
		zap.String("operation", opLabel),
		zap.Float64("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteRawJSON(w, http.StatusOK, body)
}
