package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/testutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	oldLogger := observability.Logger
	observability.Logger = zap.NewNop()
	t.Cleanup(func() { observability.Logger = oldLogger })

	if err := calculator.InitMetrics(); err != nil {
		t.Fatalf("initializing calculator metrics: %v", err)
	}
	return NewRouter()
}

func TestNewRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := testutil.ExecuteRequest(req, router)

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var body map[string]string
	testutil.DecodeJSONBody(t, w.Body, &body)
	if body["status"] != "healthy" {
		t.Fatalf("expected status %q, got %q", "healthy", body["status"])
	}
}

func TestNewRouterCalculateSetsHeadersAndOmitsRequestIDInBody(t *testing.T) {
	router := newTestRouter(t)

	w := testutil.PostJSON(router, "/calculate", `{"num1": 10, "num2": 5, "operation": "add"}`)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	requestID := w.Result().Header.Get("X-Request-ID")
	if requestID == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}
	if _, err := uuid.Parse(requestID); err != nil {
		t.Fatalf("expected valid UUID in X-Request-ID, got %q: %v", requestID, err)
	}

	if w.Result().Header.Get("X-Process-Time") == "" {
		t.Fatal("expected X-Process-Time header to be set")
	}

	var payload map[string]any
	testutil.DecodeJSONBody(t, w.Body, &payload)

	if _, ok := payload["request_id"]; ok {
		t.Fatal("did not expect request_id field in success JSON body")
	}

	want := map[string]any{"result": 15.0, "operation": "add", "num1": 10.0, "num2": 5.0}
	for key, value := range want {
		if payload[key] != value {
			t.Fatalf("expected %s=%v, got %#v", key, value, payload[key])
		}
	}
	if len(payload) != len(want) {
		t.Fatalf("unexpected fields in %v", payload)
	}
}

func TestNewRouterCalculateErrors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		body   string
		status int
		detail string
	}{
		{"division by zero", `{"num1": 10, "num2": 0, "operation": "divide"}`, http.StatusBadRequest, "Cannot divide by zero"},
		{"invalid operation", `{"num1": 10, "num2": 5, "operation": "power"}`, http.StatusBadRequest, "power"},
		{"missing fields", `{}`, http.StatusUnprocessableEntity, "missing"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := testutil.PostJSON(router, "/calculate", tc.body)
			testutil.CheckResponseCode(t, tc.status, w.Code)

			if !strings.Contains(w.Body.String(), tc.detail) {
				t.Fatalf("expected body to contain %q, got %s", tc.detail, w.Body.String())
			}
		})
	}
}

func TestNewRouterCalculateRejectsOtherMethods(t *testing.T) {
	router := newTestRouter(t)

	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/calculate", nil), router)
	testutil.CheckResponseCode(t, http.StatusMethodNotAllowed, w.Code)
}

func TestNewRouterAuxiliaryEndpoints(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{"/", "text/html", "Calculator"},
		{"/api", "application/json", "/calculate"},
		{"/static/app.js", "javascript", "fetch"},
		{"/openapi.yaml", "application/yaml", "/calculate"},
		{"/metrics", "text/plain", "http_requests_total"},
	}

	// Prime the request counter so /metrics has a sample to expose.
	_ = testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/health", nil), router)

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, tc.path, nil), router)
			testutil.CheckResponseCode(t, http.StatusOK, w.Code)

			if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, tc.contentType) {
				t.Fatalf("expected Content-Type containing %q, got %q", tc.contentType, ct)
			}
			if !strings.Contains(w.Body.String(), tc.contains) {
				t.Fatalf("expected body to contain %q", tc.contains)
			}
		})
	}
}

func TestNewRouterUnknownPath(t *testing.T) {
	router := newTestRouter(t)

	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/nope", nil), router)
	testutil.CheckResponseCode(t, http.StatusNotFound, w.Code)
}
