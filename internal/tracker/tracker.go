package tracker

import (
  "context"
  "fmt"
  "time"

  set "github.com/deckarep/golang-set/v2"
  "github.com/samber/lo"
  log "github.com/sirupsen/logrus"
  "github.com/zentrack/zentrack/internal/deps/storage/mongodb"
  "github.com/zentrack/zentrack/internal/models"
  "github.com/zentrack/zentrack/internal/monitoring"
  "github.com/zentrack/zentrack/pkg/hasher"
  "github.com/zentrack/zentrack/pkg/money"
  "github.com/zentrack/zentrack/pkg/worker"
)

const (
  defaultDatabase    = "zentrack"
  trackingCollection = "trackings"
)

// PreferencesSource resolves per-user preferences for refresh cycles.
type PreferencesSource interface {
  Preferences(ctx context.Context, userId string) models.Preferences
}

type Tracker struct {
  config Config
  deps   Dependencies

  collection *Collection
  inflight   set.Set[string]
}

type Config struct {
  Database string
  Workers  int
}

type Dependencies struct {
  Mongodb     *mongodb.Client
  Parser      models.Parser
  Translator  models.Translator
  Preferences PreferencesSource
  Metrics     *monitoring.Metrics
}

func NewTracker(config Config, deps Dependencies) *Tracker {
  if config.Database == "" {
    config.Database = defaultDatabase
  }
  if config.Workers <= 0 {
    config.Workers = worker.DefaultCount
  }

  return &Tracker{
    config:     config,
    deps:       deps,
    collection: NewCollection(),
    inflight:   set.NewSet[string](),
  }
}

// Load fills the collection from storage. Persisted records are never
// pending, so a restart drops half-created placeholders by design of
// the persistence path, not here.
func (t *Tracker) Load(ctx context.Context) error {
  if t.deps.Mongodb == nil {
    return nil
  }

  items := make([]models.Auction, 0)

  err := t.deps.Mongodb.Scan(ctx, mongodb.ScanParams{
    CommonParams: mongodb.CommonParams{
      Database:   t.config.Database,
      Collection: trackingCollection,
      StructType: models.Auction{},
    },
    Callback: func(ctx context.Context, value any) error {
      auction, ok := value.(*models.Auction)
      if !ok {
        return fmt.Errorf("cast %v with type: %[1]T to: %T failed", value, new(models.Auction))
      }

      items = append(items, *auction)

      return nil
    },
  })
  if err != nil {
    return fmt.Errorf("t.deps.Mongodb.Scan: %w", err)
  }

  t.collection.Load(items)
  t.deps.Metrics.SetTrackedAuctions(t.collection.Len())

  log.
    WithField("count", len(items)).
    Info("tracker: collection loaded from storage")

  return nil
}

func (t *Tracker) Auctions(userId string) []models.Auction {
  return t.collection.SnapshotUser(userId)
}

// Add creates a pending placeholder, fetches the listing once and merges
// the result. On fetch failure the placeholder is removed and the error
// surfaces to the caller. Returns nil when the record was deleted while
// the fetch was in flight.
func (t *Tracker) Add(ctx context.Context, prefs models.Preferences, url string) (*models.Auction, error) {
  placeholder := models.Auction{
    Id:      makeAuctionId(prefs.UserId, url),
    UserId:  prefs.UserId,
    URL:     url,
    Pending: true,
  }

  if !t.collection.Insert(placeholder) {
    return nil, fmt.Errorf("auction already tracked: %s", url)
  }
  t.deps.Metrics.SetTrackedAuctions(t.collection.Len())

  parsed, err := t.deps.Parser.Parse(ctx, url)
  if err != nil {
    t.collection.Remove(placeholder.Id)
    t.deps.Metrics.SetTrackedAuctions(t.collection.Len())
    t.deps.Metrics.IncScrapeErrors("submit")

    return nil, fmt.Errorf("t.deps.Parser.Parse: %w", err)
  }
  t.deps.Metrics.IncScrapes()

  merged := t.mergeAuction(ctx, placeholder, parsed, prefs)

  if !t.collection.Apply(merged) {
    log.
      WithField("auction.id", merged.Id).
      Info("tracker: auction removed during submission fetch: result discarded")

    return nil, nil
  }

  t.upsertAuction(ctx, merged)

  return &merged, nil
}

func (t *Tracker) Delete(ctx context.Context, userId, id string) error {
  auction, ok := t.collection.Get(id)
  if !ok || auction.UserId != userId {
    return fmt.Errorf("auction not found: %s", id)
  }

  t.collection.Remove(id)
  t.deps.Metrics.SetTrackedAuctions(t.collection.Len())

  if t.deps.Mongodb != nil {
    _, err := t.deps.Mongodb.Delete(ctx, mongodb.DeleteParams{
      CommonParams: mongodb.CommonParams{
        Database:   t.config.Database,
        Collection: trackingCollection,
      },
      Filters: map[string]any{
        "id":      id,
        "user_id": userId,
      },
    })
    if err != nil {
      return fmt.Errorf("t.deps.Mongodb.Delete: %w", err)
    }
  }

  return nil
}

// Refresh re-fetches every tracked, non-pending record, one cycle across
// all users. Per-record failures are logged and retried next cycle.
func (t *Tracker) Refresh(ctx context.Context) {
  snapshot := t.collection.Snapshot()

  userIds := lo.Uniq(lo.Map(snapshot, func(a models.Auction, _ int) string {
    return a.UserId
  }))

  for _, userId := range userIds {
    t.RefreshUser(ctx, t.preferences(ctx, userId))
  }

  t.deps.Metrics.IncRefreshCycles()
}

// RefreshUser fans out one fetch task per eligible record. Records that
// are pending or already mid-fetch are skipped.
func (t *Tracker) RefreshUser(ctx context.Context, prefs models.Preferences) {
  snapshot := t.collection.SnapshotUser(prefs.UserId)

  pool := worker.NewPool(ctx, t.config.Workers)

  for _, auction := range snapshot {
    if auction.Pending {
      continue
    }

    auction := auction

    pool.Push(func(ctx context.Context) error {
      t.refreshAuction(ctx, auction, prefs)
      return nil
    })
  }

  pool.StopWait()
}

func (t *Tracker) refreshAuction(ctx context.Context, auction models.Auction, prefs models.Preferences) {
  if !t.inflight.Add(auction.Id) {
    log.
      WithField("auction.id", auction.Id).
      Debug("tracker: auction fetch already in flight: skipped")

    return
  }
  defer t.inflight.Remove(auction.Id)

  parsed, err := t.deps.Parser.Parse(ctx, auction.URL)
  if err != nil {
    t.deps.Metrics.IncScrapeErrors("refresh")

    log.
      WithFields(log.Fields{
        "auction.id":  auction.Id,
        "auction.url": auction.URL,
      }).
      Warnf("tracker: refresh fetch failed, stale record retained: %v", err)

    return
  }
  t.deps.Metrics.IncScrapes()

  merged := t.mergeAuction(ctx, auction, parsed, prefs)

  if !t.collection.Apply(merged) {
    log.
      WithField("auction.id", merged.Id).
      Info("tracker: auction removed during refresh fetch: result discarded")

    return
  }

  t.upsertAuction(ctx, merged)
}

// ApplyPreferences recomputes the derived display fields of every
// non-pending record after a currency or language change. PriceJPY and
// Id are never touched.
func (t *Tracker) ApplyPreferences(ctx context.Context, prefs models.Preferences) {
  for _, auction := range t.collection.SnapshotUser(prefs.UserId) {
    if auction.Pending {
      continue
    }

    auction.CurrentPrice = money.Format(auction.PriceJPY, prefs.Currency)

    if auction.ProductNameSource != "" {
      auction.ProductName = t.localizeName(ctx, auction.ProductNameSource, prefs.Language)
    }

    if t.collection.Apply(auction) {
      t.upsertAuction(ctx, auction)
    }
  }
}

func (t *Tracker) preferences(ctx context.Context, userId string) models.Preferences {
  if t.deps.Preferences == nil {
    return models.DefaultPreferences(userId)
  }
  return t.deps.Preferences.Preferences(ctx, userId)
}

func (t *Tracker) upsertAuction(ctx context.Context, auction models.Auction) {
  if t.deps.Mongodb == nil {
    return
  }

  _, err := t.deps.Mongodb.Upsert(ctx, mongodb.UpdateParams{
    GetParams: mongodb.GetParams{
      CommonParams: mongodb.CommonParams{
        Database:   t.config.Database,
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
    log.
      WithFields(log.Fields{
        "auction.id":  auction.Id,
        "auction.url": auction.URL,
      }).
      Errorf("tracker: t.deps.Mongodb.Upsert: %v", err)
  }
}

func makeAuctionId(userId, url string) string {
  return hasher.Short(fmt.Sprintf("%s:%s:%d", userId, url, time.Now().UnixNano()))
}
