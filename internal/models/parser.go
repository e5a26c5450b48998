package models

import "context"

// ParsedAuction holds the fields extracted from one listing page.
// Every field is best-effort: missing selector targets fall back to
// documented defaults instead of failing the extraction.
type ParsedAuction struct {
  URL           string `json:"url"`
  ProductName   string `json:"productName"`
  PriceJPY      int64  `json:"priceInJPY"`
  NumberOfBids  string `json:"numberOfBids"`
  TimeRemaining string `json:"timeRemaining"`
  ImageURL      string `json:"imageUrl"`
}

type Parser interface {
  Parse(ctx context.Context, url string) (*ParsedAuction, error)
}

type Translator interface {
  Translate(ctx context.Context, text string, target Language) (string, error)
}

// ProgressFunc reports batch extraction progress as a fraction in [0, 1].
type ProgressFunc func(fraction float64)

type CategoryParser interface {
  ParseCategory(ctx context.Context, url string, onProgress ProgressFunc) ([]CategoryItem, error)
}
