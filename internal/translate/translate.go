package translate

import (
  "context"
  "errors"
  "fmt"

  "github.com/go-playground/validator/v10"
  "github.com/go-resty/resty/v2"
  log "github.com/sirupsen/logrus"
  "github.com/zentrack/zentrack/internal/models"
  "github.com/zentrack/zentrack/pkg/cache"
)

var ErrTranslateFailed = errors.New("translation provider failed")

type translateRequest struct {
  Text   string `json:"q"`
  Source string `json:"source"`
  Target string `json:"target"`
  Format string `json:"format"`
}

type translateResponse struct {
  TranslatedText string `json:"translatedText"`
  Error          string `json:"error"`
}

// Translator localizes display names through a remote provider.
// Results are memoized per language so re-localizing a collection does
// not re-pay provider calls for unchanged titles.
type Translator struct {
  config Config
  deps   Dependencies
  memo   *cache.Cache[models.Language, string, string]
}

type Config struct {
  Endpoint string `validate:"required,url"`
}

func (c *Config) Validate() error {
  return validator.New().Struct(c)
}

type Dependencies struct {
  Client *resty.Client
}

func NewTranslator(config Config, deps Dependencies) (*Translator, error) {
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("invalid config: %w", err)
  }

  return &Translator{
    config: config,
    deps:   deps,
    memo:   cache.NewCache[models.Language, string, string](),
  }, nil
}

// Translate rewrites text into the target language. Pass-through with no
// network call when the target is English or empty.
func (t *Translator) Translate(ctx context.Context, text string, target models.Language) (string, error) {
  if target == "" || target == models.LanguageEn {
    return text, nil
  }

  key := cache.Key[models.Language, string]{P: target, S: text}

  if cached, ok := t.memo.Get(key); ok {
    return cached, nil
  }

  out := new(translateResponse)

  resp, err := t.deps.Client.R().
    SetContext(ctx).
    SetBody(translateRequest{
      Text:   text,
      Source: models.LanguageEn,
      Target: target,
      Format: "text",
    }).
    SetResult(out).
    Post(t.config.Endpoint)

  if err != nil {
    return "", fmt.Errorf("%w: t.deps.Client.R().Post: %v", ErrTranslateFailed, err)
  }
  if resp.IsError() {
    return "", fmt.Errorf("%w: status: %s: %s", ErrTranslateFailed, resp.Status(), out.Error)
  }

  log.
    WithFields(log.Fields{
      "target": target,
      "text":   text,
    }).
    Debug("display name translated")

  t.memo.Set(key, out.TranslatedText)

  return out.TranslatedText, nil
}
