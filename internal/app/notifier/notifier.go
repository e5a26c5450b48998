package notifier

import (
  "context"
  "fmt"
  "time"

  telegram "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"
  log "github.com/sirupsen/logrus"
  "github.com/zentrack/zentrack/internal/deps/storage/mongodb"
  "github.com/zentrack/zentrack/internal/models"
  "github.com/zentrack/zentrack/internal/settings"
  "github.com/zentrack/zentrack/pkg/money"
  "github.com/zentrack/zentrack/pkg/worker"
)

const (
  defaultDatabase    = "zentrack"
  trackingCollection = "trackings"
)

// Notifier is a cron-style pass over alert subscriptions: re-fetch each
// alerted auction and message the subscriber when price or remaining
// time moved since the stored snapshot.
type Notifier struct {
  config Config
  deps   Dependencies
}

type Config struct {
  Database string
  Workers  int
}

type Dependencies struct {
  Telegram *telegram.Bot
  Mongodb  *mongodb.Client
  Parser   models.Parser
  Settings *settings.Store
}

func NewNotifierCron(config Config, deps Dependencies) *Notifier {
  if config.Database == "" {
    config.Database = defaultDatabase
  }

  return &Notifier{
    config: config,
    deps:   deps,
  }
}

func (c *Notifier) Start(ctx context.Context) error {
  log.Info("notifier cron starting")

  pool := worker.NewPool(ctx, c.config.Workers)

  err := c.deps.Settings.ScanAlerts(ctx, func(ctx context.Context, alert *models.Alert) error {
    pool.Push(func(ctx context.Context) error {
      if err := c.handleAlert(ctx, alert); err != nil {
        log.
          WithFields(log.Fields{
            "alert.user_id":    alert.UserId,
            "alert.auction_id": alert.AuctionId,
          }).
          Errorf("alert handle failed: %v", err)
      }

      return nil
    })

    return nil
  })
  if err != nil {
    return fmt.Errorf("c.deps.Settings.ScanAlerts: %w", err)
  }

  pool.StopWait()

  log.Info("notifier cron completed successfully")

  return nil
}

func (c *Notifier) handleAlert(ctx context.Context, alert *models.Alert) error {
  auction, err := c.getAuction(ctx, alert)
  if err != nil {
    return fmt.Errorf("c.getAuction: %w", err)
  }

  parsed, err := c.deps.Parser.Parse(ctx, auction.URL)
  if err != nil {
    return fmt.Errorf("c.deps.Parser.Parse: %w", err)
  }

  if parsed.PriceJPY == auction.PriceJPY && parsed.TimeRemaining == auction.TimeRemaining {
    return nil
  }

  prefs := c.deps.Settings.Preferences(ctx, alert.UserId)

  _, err = c.deps.Telegram.SendMessage(ctx, &telegram.SendMessageParams{
    ChatID:    alert.ChatId,
    Text:      makeAlertText(auction, parsed, prefs.Currency),
    ParseMode: tgmodels.ParseModeHTML,
  })
  if err != nil {
    return fmt.Errorf("c.deps.Telegram.SendMessage: %w", err)
  }

  log.
    WithFields(log.Fields{
      "alert.chat_id":    alert.ChatId,
      "alert.auction_id": alert.AuctionId,
    }).
    Info("alert message sent to telegram chat")

  if err = c.updateAuction(ctx, auction, parsed); err != nil {
    return fmt.Errorf("c.updateAuction: %w", err)
  }

  return nil
}

func makeAlertText(auction *models.Auction, parsed *models.ParsedAuction, currency money.Currency) string {
  text := fmt.Sprintf("<b>%s</b>\n", auction.ProductName)

  if parsed.PriceJPY != auction.PriceJPY {
    text += fmt.Sprintf("Price: %s → %s\n",
      money.Format(auction.PriceJPY, currency),
      money.Format(parsed.PriceJPY, currency))
  }

  text += fmt.Sprintf("Bids: %s\n", parsed.NumberOfBids)
  text += fmt.Sprintf("Time remaining: %s\n", parsed.TimeRemaining)
  text += fmt.Sprintf(`<a href="%s">Open listing</a>`, auction.URL)

  return text
}

func (c *Notifier) getAuction(ctx context.Context, alert *models.Alert) (*models.Auction, error) {
  value, err := c.deps.Mongodb.Get(ctx, mongodb.GetParams{
    CommonParams: mongodb.CommonParams{
      Database:   c.config.Database,
      Collection: trackingCollection,
      StructType: models.Auction{},
    },
    Filters: map[string]any{
      "id":      alert.AuctionId,
      "user_id": alert.UserId,
    },
  })
  if err != nil {
    return nil, fmt.Errorf("c.deps.Mongodb.Get: %w", err)
  }

  auction, ok := value.(*models.Auction)
  if !ok {
    return nil, fmt.Errorf("cast %v with type: %[1]T to: %T failed", value, new(models.Auction))
  }

  return auction, nil
}

func (c *Notifier) updateAuction(ctx context.Context, auction *models.Auction, parsed *models.ParsedAuction) error {
  auction.PriceJPY = parsed.PriceJPY
  auction.NumberOfBids = parsed.NumberOfBids
  auction.TimeRemaining = parsed.TimeRemaining
  auction.LastUpdated = time.Now()

  _, err := c.deps.Mongodb.Upsert(ctx, mongodb.UpdateParams{
    GetParams: mongodb.GetParams{
      CommonParams: mongodb.CommonParams{
        Database:   c.config.Database,
        Collection: trackingCollection,
        StructType: models.Auction{},
      },
      Filters: map[string]any{
        "id":      auction.Id,
        "user_id": auction.UserId,
      },
    },
    Document: auction,
  })
  if err != nil {
    return fmt.Errorf("c.deps.Mongodb.Upsert: %w", err)
  }

  return nil
}
