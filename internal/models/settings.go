package models

import (
  "time"

  "github.com/zentrack/zentrack/pkg/money"
)

const (
  LanguageEn Language = "en"
  LanguageFr Language = "fr"
  LanguageJa Language = "ja"
  LanguageDe Language = "de"
  LanguageEs Language = "es"
)

type Language = string

const (
  MinRefreshIntervalMinutes = 1
  MaxRefreshIntervalMinutes = 60
)

// Preferences are per-user settings persisted between sessions.
type Preferences struct {
  UserId                 string         `bson:"user_id" json:"userId"`
  Currency               money.Currency `bson:"currency" json:"currency"`
  Language               Language       `bson:"language" json:"language"`
  AutoRefresh            bool           `bson:"auto_refresh" json:"autoRefresh"`
  RefreshIntervalMinutes int64          `bson:"refresh_interval_minutes" json:"refreshIntervalMinutes"`
  UpdatedAt              time.Time      `bson:"updated_at" json:"updatedAt"`
}

func DefaultPreferences(userId string) Preferences {
  return Preferences{
    UserId:                 userId,
    Currency:               money.CurrencyJPY,
    Language:               LanguageEn,
    AutoRefresh:            false,
    RefreshIntervalMinutes: MinRefreshIntervalMinutes,
  }
}

// Alert subscribes a user to notifications for one tracked auction.
type Alert struct {
  UserId    string    `bson:"user_id" json:"userId"`
  ChatId    int64     `bson:"chat_id" json:"chatId"`
  AuctionId string    `bson:"auction_id" json:"auctionId"`
  CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
