package handlers

import (
	"net/http"

	"go-chi-calculator/internal/observability"

	"go.uber.org/zap"
)

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSONLogged(w, r, http.StatusOK, map[string]string{"status": "healthy"})
}

// APIInfo handles GET /api with a static description of the endpoints.
func APIInfo(w http.ResponseWriter, r *http.Request) {
	writeJSONLogged(w, r, http.StatusOK, apiInfo)
}

var apiInfo = map[string]any{
	"message": "Welcome to the Go Chi Calculator API!",
	"endpoints": map[string]string{
		"/":             "Calculator web interface",
		"/api":          "API information",
		"/calculate":    "Perform calculations (POST num1, num2, operation)",
		"/health":       "Health check",
		"/metrics":      "Prometheus metrics",
		"/openapi.yaml": "API documentation",
	},
}

// writeJSONLogged is WriteJSON for handlers with nothing else to do on
// failure: the encode error is logged and the client gets the 500 detail.
func writeJSONLogged(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := WriteJSON(w, status, v); err != nil {
		ctx := r.Context()
		observability.LoggerWithTrace(ctx).Error("encoding response failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", observability.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
	}
}
