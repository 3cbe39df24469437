package calculator

import (
	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "calculator"

// Metric instruments, initialized once via InitMetrics.
var (
	opsCounter   metric.Int64Counter
	opsHistogram metric.Float64Histogram
	errorCounter metric.Int64Counter
	resultGauge  metric.Float64Gauge
)

// InitMetrics registers the calculator instruments on the global meter
// provider. Call it once at startup, after observability.InitMetrics when
// telemetry export is enabled.
func InitMetrics() error {
	return initInstruments(otel.Meter(meterName))
}

func initInstruments(meter metric.Meter) error {
	var err error

	opsCounter, err = meter.Int64Counter("calculator.operations.total",
		metric.WithDescription("Successful calculations by operation"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return errors.Wrap(err, "creating ops counter")
	}

	opsHistogram, err = meter.Float64Histogram("calculator.operation.duration",
		metric.WithDescription("Time spent dispatching a calculation"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.05, 0.1, 0.5, 1),
	)
	if err != nil {
		return errors.Wrap(err, "creating ops histogram")
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Rejected or failed calculations by operation"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return errors.Wrap(err, "creating error counter")
	}

	resultGauge, err = meter.Float64Gauge("calculator.last_result",
		metric.WithDescription("Result of the most recent calculation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return errors.Wrap(err, "creating result gauge")
	}

	return nil
}
