package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/handlers"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/web"
)

func NewRouter() http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.MetricsMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(observability.ProcessTimeMiddleware)
	r.Use(observability.RecoverMiddleware)

	r.Get("/", web.Index)
	r.Handle("/static/*", http.StripPrefix("/static/", web.Static()))
	r.Get("/openapi.yaml", web.OpenAPI)

	r.Get("/api", handlers.APIInfo)
	r.Get("/health", handlers.Health)

	calculator.RegisterRoutes(r)

	r.Handle("/metrics", observability.PrometheusHandler())

	return r
}
