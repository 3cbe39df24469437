package observability

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/felixge/httpsnoop"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// ProcessTimeHeader reports the handler duration in seconds.
const ProcessTimeHeader = "X-Process-Time"

var untracedPaths = map[string]struct{}{
	"/metrics": {},
	"/health":  {},
}

// sensitiveHeaders are logged by name only.
var sensitiveHeaders = map[string]struct{}{
	"Authorization":       {},
	"Proxy-Authorization": {},
	"Cookie":              {},
	"Set-Cookie":          {},
	"X-Api-Key":           {},
}

const redacted = "[REDACTED]"

func redactHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		if _, ok := sensitiveHeaders[http.CanonicalHeaderKey(name)]; ok {
			out[name] = redacted
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}

func shouldTraceRequest(r *http.Request) bool {
	_, skip := untracedPaths[r.URL.Path]
	return !skip
}

func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		requestID := RequestIDFromHeader(r.Header.Get(RequestIDHeader))
		ctx := ContextWithRequestID(r.Context(), requestID)

		w.Header().Set(RequestIDHeader, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()
		logger := LoggerWithTrace(ctx)

		logger.Debug("incoming request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Any("headers", redactHeaders(r.Header)),
		)

		m := httpsnoop.CaptureMetrics(next, w, r)

		logger.Info("request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", m.Code),
			zap.Int64("bytes", m.Written),
			zap.String("request_id", RequestIDFromContext(ctx)),
			zap.Duration("duration", m.Duration),
		)
	})
}

// MetricsMiddleware feeds the Prometheus HTTP request metrics.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		observeRequest(r, m.Code, m.Duration.Seconds())
	})
}

// ProcessTimeMiddleware stamps X-Process-Time on the response just before
// the status line is sent.
func ProcessTimeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		var once sync.Once
		stamp := func() {
			once.Do(func() {
				w.Header().Set(ProcessTimeHeader, strconv.FormatFloat(time.Since(start).Seconds(), 'f', 6, 64))
			})
		}

		wrapped := httpsnoop.Wrap(w, httpsnoop.Hooks{
			WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
				return func(code int) {
					stamp()
					next(code)
				}
			},
			Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
				return func(b []byte) (int, error) {
					stamp()
					return next(b)
				}
			},
		})

		next.ServeHTTP(wrapped, r)
	})
}

// RecoverMiddleware turns a handler panic into a 500 detail response. The
// panic value and stack are logged, never sent to the client.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			ctx := r.Context()
			LoggerWithTrace(ctx).Error("unexpected error while handling request",
				zap.Any("panic", rec),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("request_id", RequestIDFromContext(ctx)),
				zap.Stack("stack"),
			)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"detail":"Internal server error"}` + "\n"))
		}()

		next.ServeHTTP(w, r)
	})
}

func TracingMiddleware(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "http_request", otelhttp.WithFilter(shouldTraceRequest))
}
