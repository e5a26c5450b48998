package redis

import (
  "context"
  "errors"
  "fmt"
  "time"

  "github.com/redis/go-redis/v9"
)

const scrapeKeyPrefix = "scrape:"

// Client is a short-TTL cache for scrape responses, so bursts of
// identical listing submissions hit the source page once.
type Client struct {
  config Config
  client *redis.Client
}

type Config struct {
  Addr string
  TTL  time.Duration
}

func NewClient(config Config) *Client {
  return &Client{
    config: config,
    client: redis.NewClient(&redis.Options{Addr: config.Addr}),
  }
}

func (c *Client) Ping(ctx context.Context) error {
  return c.client.Ping(ctx).Err()
}

func (c *Client) GetScrape(ctx context.Context, url string) ([]byte, bool, error) {
  payload, err := c.client.Get(ctx, scrapeKeyPrefix+url).Bytes()
  if err != nil {
    if errors.Is(err, redis.Nil) {
      return nil, false, nil
    }
    return nil, false, fmt.Errorf("c.client.Get: %w", err)
  }

  return payload, true, nil
}

func (c *Client) SetScrape(ctx context.Context, url string, payload []byte) error {
  if err := c.client.Set(ctx, scrapeKeyPrefix+url, payload, c.config.TTL).Err(); err != nil {
    return fmt.Errorf("c.client.Set: %w", err)
  }

  return nil
}
