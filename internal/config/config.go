package config

import (
  "fmt"

  "github.com/go-playground/validator/v10"
  "github.com/spf13/viper"
)

// Config stores all configuration for the service binaries.
type Config struct {
  ServerPort string `mapstructure:"SERVER_PORT" validate:"required"`

  MongoHost     string `mapstructure:"MONGO_HOST" validate:"required"`
  MongoPort     string `mapstructure:"MONGO_PORT" validate:"required"`
  MongoUser     string `mapstructure:"MONGO_USER"`
  MongoPassword string `mapstructure:"MONGO_PASSWORD"`

  RedisAddr             string `mapstructure:"REDIS_ADDR"`
  ScrapeCacheTTLSeconds int    `mapstructure:"SCRAPE_CACHE_TTL_SECONDS"`

  TranslateEndpoint string `mapstructure:"TRANSLATE_ENDPOINT" validate:"required,url"`
  CategoryEndpoint  string `mapstructure:"CATEGORY_ENDPOINT" validate:"required,url"`

  TelegramToken string `mapstructure:"TELEGRAM_TOKEN"`

  RefreshWorkers int `mapstructure:"REFRESH_WORKERS"`
}

// Load reads configuration from a .env file or environment variables.
func Load() (*Config, error) {
  viper.SetConfigFile(".env")
  viper.SetConfigType("env")
  viper.AutomaticEnv()

  // The .env file is optional: production configures through the
  // environment only.
  _ = viper.ReadInConfig()

  viper.SetDefault("SERVER_PORT", "8080")
  viper.SetDefault("MONGO_HOST", "localhost")
  viper.SetDefault("MONGO_PORT", "27017")
  viper.SetDefault("SCRAPE_CACHE_TTL_SECONDS", 60)
  viper.SetDefault("TRANSLATE_ENDPOINT", "http://localhost:5000/translate")
  viper.SetDefault("CATEGORY_ENDPOINT", "http://localhost:5001/scrape-zen-category")
  viper.SetDefault("REFRESH_WORKERS", 5)

  cfg := new(Config)

  if err := viper.Unmarshal(cfg); err != nil {
    return nil, fmt.Errorf("viper.Unmarshal: %w", err)
  }

  if err := validator.New().Struct(cfg); err != nil {
    return nil, fmt.Errorf("invalid config: %w", err)
  }

  return cfg, nil
}
