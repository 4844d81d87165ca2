package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rogerio-castellano/inventory-insights/internal/http/handlers"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)

		r.Get("/dataset/items", handlers.GetItemsHandler)
		r.Get("/dataset/records", handlers.GetRecordsHandler)

		r.Get("/metrics/msl-trends", handlers.GetMSLTrendsHandler)
		r.Get("/metrics/consumption-trends", handlers.GetConsumptionTrendsHandler)
		r.Get("/metrics/categories", handlers.GetCategoriesHandler)
		r.Get("/metrics/itr", handlers.GetITRHandler)
		r.Get("/metrics/summary", handlers.GetSummaryHandler)

		r.Get("/reports/itr.xlsx", handlers.ExportITRHandler)

		r.With(AuthMiddleware).Post("/dataset/reload", handlers.ReloadDatasetHandler)
	})
	return r
}
