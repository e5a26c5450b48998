package server

import (
  "net/http"
  "time"

  "github.com/go-chi/chi/v5"
  "github.com/go-chi/chi/v5/middleware"
  "github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) setupRouter() http.Handler {
  r := chi.NewRouter()

  r.Use(middleware.RequestID)
  r.Use(middleware.RealIP)
  r.Use(middleware.Recoverer)
  r.Use(middleware.Timeout(60 * time.Second))

  r.Handle("/metrics", promhttp.Handler())
  r.Get("/api/health", s.handleHealth)

  r.Route("/api", func(r chi.Router) {
    r.Post("/scrape", s.handleScrape)
    r.Post("/category", s.handleCategory)
    r.Post("/category/export", s.handleCategoryExport)

    r.Get("/trackings", s.handleTrackingsList)
    r.Post("/trackings", s.handleTrackingAdd)
    r.Delete("/trackings/{id}", s.handleTrackingDelete)

    r.Get("/preferences", s.handlePreferencesGet)
    r.Put("/preferences", s.handlePreferencesPut)

    r.Get("/alerts", s.handleAlertsList)
    r.Post("/alerts", s.handleAlertAdd)
    r.Delete("/alerts", s.handleAlertDelete)
  })

  return r
}
