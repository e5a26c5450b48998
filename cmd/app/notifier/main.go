package main

import (
  "context"
  "net/http"
  "os/signal"
  "syscall"

  "github.com/go-resty/resty/v2"
  telegram "github.com/go-telegram/bot"
  log "github.com/sirupsen/logrus"
  "github.com/zentrack/zentrack/internal/app/notifier"
  "github.com/zentrack/zentrack/internal/config"
  "github.com/zentrack/zentrack/internal/deps/storage/mongodb"
  "github.com/zentrack/zentrack/internal/parser/zenmarket"
  "github.com/zentrack/zentrack/internal/settings"
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

  if cfg.TelegramToken == "" {
    log.Fatal("TELEGRAM_TOKEN is required for the notifier")
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

  settingsStore := settings.NewStore(settings.Config{}, settings.Dependencies{
    Mongodb: mongoClient,
  })

  telegramClient, err := telegram.New(cfg.TelegramToken)
  if err != nil {
    log.Fatalf("telegram.New: %v", err)
  }

  cron := notifier.NewNotifierCron(
    notifier.Config{
      Workers: cfg.RefreshWorkers,
    },
    notifier.Dependencies{
      Telegram: telegramClient,
      Mongodb:  mongoClient,
      Parser:   zenParser,
      Settings: settingsStore,
    })

  if err = cron.Start(ctx); err != nil {
    log.Fatalf("cron.Start: %v", err)
  }
}
