package main

import (
  "context"
  "net/http"
  "os/signal"
  "syscall"
  "time"

  "github.com/go-resty/resty/v2"
  log "github.com/sirupsen/logrus"
  "github.com/zentrack/zentrack/internal/app/server"
  "github.com/zentrack/zentrack/internal/config"
  rediscache "github.com/zentrack/zentrack/internal/deps/cache/redis"
  "github.com/zentrack/zentrack/internal/deps/storage/mongodb"
  "github.com/zentrack/zentrack/internal/monitoring"
  "github.com/zentrack/zentrack/internal/parser/zenmarket"
  "github.com/zentrack/zentrack/internal/scheduler"
  "github.com/zentrack/zentrack/internal/settings"
  "github.com/zentrack/zentrack/internal/tracker"
  "github.com/zentrack/zentrack/internal/translate"
  "github.com/zentrack/zentrack/pkg/logger"
  "github.com/zentrack/zentrack/pkg/parser/xpath"
)

func main() {
  logger.Init()

  ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
  defer cancel()

  cfg, err := config.Load()
  if err != nil {
    log.Fatalf("config.Load: %v", err)
  }

  var auth *mongodb.Authentication
  if cfg.MongoUser != "" {
    auth = &mongodb.Authentication{
      User:     cfg.MongoUser,
      Password: cfg.MongoPassword,
    }
  }

  mongoClient, err := mongodb.NewClient(ctx,
    mongodb.Config{
      Host:           cfg.MongoHost,
      Port:           cfg.MongoPort,
      Authentication: auth,
    },
    mongodb.Dependencies{
      Client: http.DefaultClient,
    })
  if err != nil {
    log.Fatalf("mongodb.NewClient: %v", err)
  }

  xpathParser := xpath.NewParser(xpath.Dependencies{
    Client: resty.NewWithClient(http.DefaultClient),
  })

  zenParser := zenmarket.NewParser(zenmarket.Dependencies{
    Xpath: xpathParser,
  })

  categoryParser, err := zenmarket.NewCategoryParser(
    zenmarket.CategoryConfig{
      Endpoint: cfg.CategoryEndpoint,
    },
    zenmarket.CategoryDependencies{
      Client: resty.New(),
    })
  if err != nil {
    log.Fatalf("zenmarket.NewCategoryParser: %v", err)
  }

  translator, err := translate.NewTranslator(
    translate.Config{
      Endpoint: cfg.TranslateEndpoint,
    },
    translate.Dependencies{
      Client: resty.New(),
    })
  if err != nil {
    log.Fatalf("translate.NewTranslator: %v", err)
  }

  settingsStore := settings.NewStore(settings.Config{}, settings.Dependencies{
    Mongodb: mongoClient,
  })

  metrics := monitoring.NewMetrics()

  trackerClient := tracker.NewTracker(
    tracker.Config{
      Workers: cfg.RefreshWorkers,
    },
    tracker.Dependencies{
      Mongodb:     mongoClient,
      Parser:      zenParser,
      Translator:  translator,
      Preferences: settingsStore,
      Metrics:     metrics,
    })

  if err = trackerClient.Load(ctx); err != nil {
    log.Fatalf("trackerClient.Load: %v", err)
  }

  schedulerClient := scheduler.NewScheduler(time.Minute, scheduler.Dependencies{
    Refresher: trackerClient,
  })

  var redisClient *rediscache.Client
  if cfg.RedisAddr != "" {
    redisClient = rediscache.NewClient(rediscache.Config{
      Addr: cfg.RedisAddr,
      TTL:  time.Duration(cfg.ScrapeCacheTTLSeconds) * time.Second,
    })
  }

  srv, err := server.NewServer(
    server.Config{
      Port: cfg.ServerPort,
    },
    server.Dependencies{
      Mongodb:   mongoClient,
      Redis:     redisClient,
      Parser:    zenParser,
      Category:  categoryParser,
      Tracker:   trackerClient,
      Scheduler: schedulerClient,
      Settings:  settingsStore,
      Metrics:   metrics,
    })
  if err != nil {
    log.Fatalf("server.NewServer: %v", err)
  }

  if err = srv.Start(ctx); err != nil {
    log.Fatalf("srv.Start: %v", err)
  }

  schedulerClient.Stop()
}
