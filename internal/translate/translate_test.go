package translate

import (
  "context"
  "testing"

  "github.com/go-resty/resty/v2"
  "github.com/zentrack/zentrack/internal/models"
  "github.com/zentrack/zentrack/pkg/cache"
)

func newTestTranslator(t *testing.T) *Translator {
  t.Helper()

  translator, err := NewTranslator(
    Config{Endpoint: "http://localhost:5000/translate"},
    Dependencies{Client: resty.New()},
  )
  if err != nil {
    t.Fatalf("NewTranslator: %v", err)
  }

  return translator
}

func TestTranslatePassThrough(t *testing.T) {
  translator := newTestTranslator(t)

  for _, target := range []models.Language{models.LanguageEn, ""} {
    got, err := translator.Translate(context.Background(), "Vintage Camera", target)
    if err != nil {
      t.Fatalf("Translate(%q): %v", target, err)
    }
    if got != "Vintage Camera" {
      t.Errorf("Translate(%q) = %q; want pass-through", target, got)
    }
  }
}

func TestTranslateMemoized(t *testing.T) {
  translator := newTestTranslator(t)

  // A memo hit must answer without touching the endpoint: the client
  // points at a closed port, so a network call would fail the test.
  key := cache.Key[models.Language, string]{P: models.LanguageFr, S: "Vintage Camera"}
  translator.memo.Set(key, "Appareil photo vintage")

  got, err := translator.Translate(context.Background(), "Vintage Camera", models.LanguageFr)
  if err != nil {
    t.Fatalf("Translate: %v", err)
  }
  if got != "Appareil photo vintage" {
    t.Errorf("Translate = %q; want memoized value", got)
  }
}

func TestNewTranslatorInvalidEndpoint(t *testing.T) {
  _, err := NewTranslator(Config{Endpoint: "not a url"}, Dependencies{Client: resty.New()})
  if err == nil {
    t.Fatal("NewTranslator with invalid endpoint returned nil error")
  }
}
