package monitoring

import (
  "github.com/prometheus/client_golang/prometheus"
  "github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service.
// A nil *Metrics is a no-op, so components can run without registration.
type Metrics struct {
  ScrapesTotal       prometheus.Counter
  ScrapeErrorsTotal  *prometheus.CounterVec
  RefreshCyclesTotal prometheus.Counter
  TrackedAuctions    prometheus.Gauge
}

func NewMetrics() *Metrics {
  return &Metrics{
    ScrapesTotal: promauto.NewCounter(prometheus.CounterOpts{
      Name: "zentrack_scrapes_total",
      Help: "The total number of listing pages scraped",
    }),
    ScrapeErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
      Name: "zentrack_scrape_errors_total",
      Help: "The total number of scrape failures",
    }, []string{"type"}),
    RefreshCyclesTotal: promauto.NewCounter(prometheus.CounterOpts{
      Name: "zentrack_refresh_cycles_total",
      Help: "The total number of completed refresh cycles",
    }),
    TrackedAuctions: promauto.NewGauge(prometheus.GaugeOpts{
      Name: "zentrack_tracked_auctions",
      Help: "The number of auctions currently tracked",
    }),
  }
}

func (m *Metrics) IncScrapes() {
  if m == nil {
    return
  }
  m.ScrapesTotal.Inc()
}

func (m *Metrics) IncScrapeErrors(errorType string) {
  if m == nil {
    return
  }
  m.ScrapeErrorsTotal.WithLabelValues(errorType).Inc()
}

func (m *Metrics) IncRefreshCycles() {
  if m == nil {
    return
  }
  m.RefreshCyclesTotal.Inc()
}

func (m *Metrics) SetTrackedAuctions(count int) {
  if m == nil {
    return
  }
  m.TrackedAuctions.Set(float64(count))
}
