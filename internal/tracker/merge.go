package tracker

import (
  "context"
  "time"

  log "github.com/sirupsen/logrus"
  "github.com/zentrack/zentrack/internal/models"
  "github.com/zentrack/zentrack/pkg/money"
)

// mergeAuction reconciles a fresh fetch result into an existing record.
// Id, UserId and URL are carried over from the existing record; volatile
// fields come from the fetch. Localization failure falls back to the
// untranslated title, never into an error.
func (t *Tracker) mergeAuction(ctx context.Context, existing models.Auction, parsed *models.ParsedAuction, prefs models.Preferences) models.Auction {
  merged := existing

  merged.ProductNameSource = parsed.ProductName
  merged.ProductName = t.localizeName(ctx, parsed.ProductName, prefs.Language)
  merged.PriceJPY = parsed.PriceJPY
  merged.CurrentPrice = money.Format(parsed.PriceJPY, prefs.Currency)
  merged.NumberOfBids = parsed.NumberOfBids
  merged.TimeRemaining = parsed.TimeRemaining
  merged.ImageURL = parsed.ImageURL
  merged.Pending = false
  merged.LastUpdated = time.Now()

  return merged
}

func (t *Tracker) localizeName(ctx context.Context, name string, language models.Language) string {
  translated, err := t.deps.Translator.Translate(ctx, name, language)
  if err != nil {
    log.
      WithFields(log.Fields{
        "name":     name,
        "language": language,
      }).
      Warnf("tracker: translation failed, keeping source name: %v", err)

    return name
  }

  return translated
}
