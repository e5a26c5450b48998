package settings

import (
  "context"
  "errors"
  "fmt"
  "time"

  log "github.com/sirupsen/logrus"
  "github.com/zentrack/zentrack/internal/deps/storage/mongodb"
  "github.com/zentrack/zentrack/internal/models"
  "github.com/zentrack/zentrack/pkg/money"
)

const (
  defaultDatabase       = "zentrack"
  preferencesCollection = "preferences"
  alertsCollection      = "alerts"
)

// Store persists per-user preferences and alert subscriptions.
type Store struct {
  config Config
  deps   Dependencies
}

type Config struct {
  Database string
}

type Dependencies struct {
  Mongodb *mongodb.Client
}

func NewStore(config Config, deps Dependencies) *Store {
  if config.Database == "" {
    config.Database = defaultDatabase
  }

  return &Store{
    config: config,
    deps:   deps,
  }
}

// Preferences returns the stored preferences, or the defaults when
// nothing is stored yet or the lookup fails.
func (s *Store) Preferences(ctx context.Context, userId string) models.Preferences {
  value, err := s.deps.Mongodb.Get(ctx, mongodb.GetParams{
    CommonParams: mongodb.CommonParams{
      Database:   s.config.Database,
      Collection: preferencesCollection,
      StructType: models.Preferences{},
    },
    Filters: map[string]any{
      "user_id": userId,
    },
  })
  if err != nil {
    if !errors.Is(err, mongodb.ErrNotFound) {
      log.
        WithField("user_id", userId).
        Errorf("settings: s.deps.Mongodb.Get: %v", err)
    }

    return models.DefaultPreferences(userId)
  }

  prefs, ok := value.(*models.Preferences)
  if !ok {
    log.
      WithField("user_id", userId).
      Errorf("settings: cast %v with type: %[1]T to: %T failed", value, new(models.Preferences))

    return models.DefaultPreferences(userId)
  }

  return sanitizePrefs(*prefs)
}

// sanitizePrefs protects the display pipeline from stored documents that
// predate the current currency table or were edited by hand: formatting
// panics on an unknown currency, so such documents fall back to defaults.
func sanitizePrefs(prefs models.Preferences) models.Preferences {
  if !money.IsSupported(prefs.Currency) {
    log.
      WithFields(log.Fields{
        "user_id":  prefs.UserId,
        "currency": prefs.Currency,
      }).
      Warn("settings: unsupported stored currency, using defaults")

    return models.DefaultPreferences(prefs.UserId)
  }

  return prefs
}

func (s *Store) SavePreferences(ctx context.Context, prefs models.Preferences) error {
  prefs.UpdatedAt = time.Now()

  _, err := s.deps.Mongodb.Upsert(ctx, mongodb.UpdateParams{
    GetParams: mongodb.GetParams{
      CommonParams: mongodb.CommonParams{
        Database:   s.config.Database,
        Collection: preferencesCollection,
        StructType: models.Preferences{},
      },
      Filters: map[string]any{
        "user_id": prefs.UserId,
      },
    },
    Document: prefs,
  })
  if err != nil {
    return fmt.Errorf("s.deps.Mongodb.Upsert: %w", err)
  }

  return nil
}

func (s *Store) Alerts(ctx context.Context, userId string) ([]models.Alert, error) {
  values, err := s.deps.Mongodb.Find(ctx, mongodb.FindParams{
    CommonParams: mongodb.CommonParams{
      Database:   s.config.Database,
      Collection: alertsCollection,
      StructType: models.Alert{},
    },
    Filters: map[string]any{
      "user_id": userId,
    },
  })
  if err != nil {
    return nil, fmt.Errorf("s.deps.Mongodb.Find: %w", err)
  }

  alerts := make([]models.Alert, 0, len(values))

  for _, value := range values {
    alert, ok := value.(*models.Alert)
    if !ok {
      return nil, fmt.Errorf("cast %v with type: %[1]T to: %T failed", value, new(models.Alert))
    }
    alerts = append(alerts, *alert)
  }

  return alerts, nil
}

func (s *Store) AddAlert(ctx context.Context, alert models.Alert) error {
  alert.CreatedAt = time.Now()

  _, err := s.deps.Mongodb.Upsert(ctx, mongodb.UpdateParams{
    GetParams: mongodb.GetParams{
      CommonParams: mongodb.CommonParams{
        Database:   s.config.Database,
        Collection: alertsCollection,
        StructType: models.Alert{},
      },
      Filters: map[string]any{
        "user_id":    alert.UserId,
        "auction_id": alert.AuctionId,
      },
    },
    Document: alert,
  })
  if err != nil {
    return fmt.Errorf("s.deps.Mongodb.Upsert: %w", err)
  }

  return nil
}

func (s *Store) RemoveAlert(ctx context.Context, userId, auctionId string) error {
  _, err := s.deps.Mongodb.Delete(ctx, mongodb.DeleteParams{
    CommonParams: mongodb.CommonParams{
      Database:   s.config.Database,
      Collection: alertsCollection,
    },
    Filters: map[string]any{
      "user_id":    userId,
      "auction_id": auctionId,
    },
  })
  if err != nil {
    return fmt.Errorf("s.deps.Mongodb.Delete: %w", err)
  }

  return nil
}

// ScanAlerts walks every alert subscription, for the notifier cron.
func (s *Store) ScanAlerts(ctx context.Context, callback func(ctx context.Context, alert *models.Alert) error) error {
  err := s.deps.Mongodb.Scan(ctx, mongodb.ScanParams{
    CommonParams: mongodb.CommonParams{
      Database:   s.config.Database,
      Collection: alertsCollection,
      StructType: models.Alert{},
    },
    Callback: func(ctx context.Context, value any) error {
      alert, ok := value.(*models.Alert)
      if !ok {
        return fmt.Errorf("cast %v with type: %[1]T to: %T failed", value, new(models.Alert))
      }
      return callback(ctx, alert)
    },
  })
  if err != nil {
    return fmt.Errorf("s.deps.Mongodb.Scan: %w", err)
  }

  return nil
}
