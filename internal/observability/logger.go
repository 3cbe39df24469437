package observability

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide structured logger. It is a no-op until
// InitLogger runs.
var Logger = zap.NewNop()

// logFiles holds the rotating sinks opened by InitLogger.
var logFiles []io.Closer

// LoggerOptions controls where and at which level logs are written.
type LoggerOptions struct {
	// Level is the minimum level written to stdout.
	Level string
	// Dir enables app.log (all levels) and error.log (error and above)
	// inside Dir when non-empty.
	Dir string
	// MaxSizeMB and MaxBackups bound each rotated file.
	MaxSizeMB  int
	MaxBackups int
}

func InitLogger(opts LoggerOptions) error {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return errors.Wrapf(err, "parsing log level %q", opts.Level)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating log directory %s", opts.Dir)
		}

		appLog := rotatingFile(filepath.Join(opts.Dir, "app.log"), opts)
		errorLog := rotatingFile(filepath.Join(opts.Dir, "error.log"), opts)
		logFiles = append(logFiles, appLog, errorLog)

		cores = append(cores,
			zapcore.NewCore(encoder, zapcore.AddSync(appLog), zapcore.DebugLevel),
			zapcore.NewCore(encoder, zapcore.AddSync(errorLog), zapcore.ErrorLevel),
		)
	}

	Logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller())

	Logger.Info("logger initialized",
		zap.String("level", level.String()),
		zap.String("dir", opts.Dir),
	)

	return nil
}

func rotatingFile(name string, opts LoggerOptions) *lumberjack.Logger {
	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}
	backups := opts.MaxBackups
	if backups <= 0 {
		backups = 5
	}
	return &lumberjack.Logger{
		Filename:   name,
		MaxSize:    maxSize,
		MaxBackups: backups,
	}
}

// SyncLogger flushes buffered entries and closes the rotating log files.
func SyncLogger() {
	_ = Logger.Sync()
	for _, f := range logFiles {
		_ = f.Close()
	}
	logFiles = nil
}

// LoggerWithTrace returns a child logger enriched with trace_id and span_id
// fields from the active OTel span in ctx.
//
// ctx itself is attached as zap.Any("context", ctx): the otelzap bridge uses
// any context-valued field as the context for log.Logger.Emit, which fills
// the native TraceID/SpanID on exported OTLP records. The string fields keep
// stdout JSON greppable.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
