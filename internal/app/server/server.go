package server

import (
  "context"
  "errors"
  "fmt"
  "net/http"
  "time"

  "github.com/go-playground/validator/v10"
  log "github.com/sirupsen/logrus"
  rediscache "github.com/zentrack/zentrack/internal/deps/cache/redis"
  "github.com/zentrack/zentrack/internal/deps/storage/mongodb"
  "github.com/zentrack/zentrack/internal/models"
  "github.com/zentrack/zentrack/internal/monitoring"
  "github.com/zentrack/zentrack/internal/scheduler"
  "github.com/zentrack/zentrack/internal/settings"
  "github.com/zentrack/zentrack/internal/tracker"
)

type Server struct {
  config Config
  deps   Dependencies
}

type Config struct {
  Port string `validate:"required"`
}

func (c *Config) Validate() error {
  return validator.New().Struct(c)
}

type Dependencies struct {
  Mongodb   *mongodb.Client
  Redis     *rediscache.Client
  Parser    models.Parser
  Category  models.CategoryParser
  Tracker   *tracker.Tracker
  Scheduler *scheduler.Scheduler
  Settings  *settings.Store
  Metrics   *monitoring.Metrics
}

func NewServer(config Config, deps Dependencies) (*Server, error) {
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("invalid config: %w", err)
  }

  return &Server{
    config: config,
    deps:   deps,
  }, nil
}

// Start serves the API until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
  srv := &http.Server{
    Addr:    ":" + s.config.Port,
    Handler: s.setupRouter(),
  }

  go func() {
    <-ctx.Done()

    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()

    if err := srv.Shutdown(shutdownCtx); err != nil {
      log.Errorf("server: srv.Shutdown: %v", err)
    }
  }()

  log.
    WithField("port", s.config.Port).
    Info("server: listening")

  if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
    return fmt.Errorf("srv.ListenAndServe: %w", err)
  }

  return nil
}
