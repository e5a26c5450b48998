package zenmarket

import (
  "context"
  "errors"
  "fmt"

  "github.com/go-playground/validator/v10"
  "github.com/go-resty/resty/v2"
  log "github.com/sirupsen/logrus"
  "github.com/zentrack/zentrack/internal/models"
)

var ErrBatchFailed = errors.New("category batch extraction failed")

// CategoryParser delegates category page extraction to the remote
// extraction service and yields every row of the page in one pass.
type CategoryParser struct {
  config CategoryConfig
  deps   CategoryDependencies
}

type CategoryConfig struct {
  Endpoint string `validate:"required,url"`
}

func (c *CategoryConfig) Validate() error {
  return validator.New().Struct(c)
}

type CategoryDependencies struct {
  Client *resty.Client
}

func NewCategoryParser(config CategoryConfig, deps CategoryDependencies) (*CategoryParser, error) {
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("invalid config: %w", err)
  }

  return &CategoryParser{
    config: config,
    deps:   deps,
  }, nil
}

// ParseCategory reports progress once, on completion. The remote service
// has no intermediate granularity; no partial results on failure.
func (p *CategoryParser) ParseCategory(ctx context.Context, url string, onProgress models.ProgressFunc) ([]models.CategoryItem, error) {
  if err := ValidateURL(url); err != nil {
    return nil, err
  }

  out := new(categoryResponse)

  resp, err := p.deps.Client.R().
    SetContext(ctx).
    SetBody(categoryRequest{URL: url}).
    SetResult(out).
    Post(p.config.Endpoint)

  if err != nil {
    return nil, fmt.Errorf("%w: p.deps.Client.R().Post: %v", ErrBatchFailed, err)
  }
  if resp.IsError() {
    return nil, fmt.Errorf("%w: status: %s: %s", ErrBatchFailed, resp.Status(), out.Error)
  }

  log.
    WithFields(log.Fields{
      "url":   url,
      "items": len(out.Items),
    }).
    Info("zenmarket category parsed")

  if onProgress != nil {
    onProgress(1)
  }

  return out.Items, nil
}
