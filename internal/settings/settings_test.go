package settings

import (
  "testing"

  "github.com/zentrack/zentrack/internal/models"
  "github.com/zentrack/zentrack/pkg/money"
)

func TestSanitizePrefsUnsupportedCurrency(t *testing.T) {
  prefs := models.Preferences{
    UserId:      "u1",
    Currency:    "BTC",
    Language:    models.LanguageFr,
    AutoRefresh: true,
  }

  got := sanitizePrefs(prefs)

  if got.UserId != "u1" {
    t.Errorf("UserId = %q; want %q", got.UserId, "u1")
  }
  if got.Currency != money.CurrencyJPY {
    t.Errorf("Currency = %q; want default %q", got.Currency, money.CurrencyJPY)
  }
  if got.AutoRefresh {
    t.Error("AutoRefresh = true; want defaults for a document with an unknown currency")
  }
}

func TestSanitizePrefsValid(t *testing.T) {
  prefs := models.Preferences{
    UserId:                 "u1",
    Currency:               money.CurrencyEUR,
    Language:               models.LanguageDe,
    AutoRefresh:            true,
    RefreshIntervalMinutes: 5,
  }

  if got := sanitizePrefs(prefs); got != prefs {
    t.Errorf("sanitizePrefs changed a valid document: %+v", got)
  }
}
