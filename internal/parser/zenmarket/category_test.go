package zenmarket

import (
  "context"
  "errors"
  "net/http"
  "net/http/httptest"
  "testing"

  "github.com/go-resty/resty/v2"
)

const categoryURL = "https://zenmarket.jp/en/yahoo.aspx?c=2084229064"

func newCategoryTestParser(t *testing.T, handler http.HandlerFunc) *CategoryParser {
  t.Helper()

  srv := httptest.NewServer(handler)
  t.Cleanup(srv.Close)

  parser, err := NewCategoryParser(
    CategoryConfig{Endpoint: srv.URL},
    CategoryDependencies{Client: resty.New()},
  )
  if err != nil {
    t.Fatalf("NewCategoryParser: %v", err)
  }

  return parser
}

func TestParseCategory(t *testing.T) {
  parser := newCategoryTestParser(t, func(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    _, _ = w.Write([]byte(`{
      "items": [
        {"title": "Vintage Camera", "url": "https://zenmarket.jp/x1", "bids": 3, "currentPrice": "¥1,000"},
        {"title": "Pocket Watch", "url": "https://zenmarket.jp/x2", "bids": 0, "currentPrice": "¥800"}
      ]
    }`))
  })

  var progress []float64

  items, err := parser.ParseCategory(context.Background(), categoryURL, func(fraction float64) {
    progress = append(progress, fraction)
  })
  if err != nil {
    t.Fatalf("ParseCategory: %v", err)
  }

  if len(items) != 2 {
    t.Fatalf("items = %d; want 2", len(items))
  }
  if items[0].Title != "Vintage Camera" {
    t.Errorf("items[0].Title = %q", items[0].Title)
  }
  if items[1].Bids != 0 {
    t.Errorf("items[1].Bids = %d; want 0", items[1].Bids)
  }

  // Progress reports completion exactly once.
  if len(progress) != 1 || progress[0] != 1 {
    t.Errorf("progress = %v; want [1]", progress)
  }
}

func TestParseCategoryNilProgress(t *testing.T) {
  parser := newCategoryTestParser(t, func(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    _, _ = w.Write([]byte(`{"items": []}`))
  })

  items, err := parser.ParseCategory(context.Background(), categoryURL, nil)
  if err != nil {
    t.Fatalf("ParseCategory: %v", err)
  }
  if len(items) != 0 {
    t.Errorf("items = %d; want 0", len(items))
  }
}

func TestParseCategoryServiceError(t *testing.T) {
  parser := newCategoryTestParser(t, func(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusBadGateway)
    _, _ = w.Write([]byte(`{"error": "upstream scrape failed"}`))
  })

  called := false

  _, err := parser.ParseCategory(context.Background(), categoryURL, func(float64) {
    called = true
  })
  if !errors.Is(err, ErrBatchFailed) {
    t.Fatalf("error = %v; want ErrBatchFailed", err)
  }
  if called {
    t.Error("progress reported on failure")
  }
}

func TestParseCategoryInvalidURL(t *testing.T) {
  parser := newCategoryTestParser(t, func(w http.ResponseWriter, r *http.Request) {
    t.Error("extraction service called for an invalid url")
  })

  _, err := parser.ParseCategory(context.Background(), "https://example.com/category", nil)
  if !errors.Is(err, ErrInvalidURL) {
    t.Fatalf("error = %v; want ErrInvalidURL", err)
  }
}

func TestNewCategoryParserInvalidEndpoint(t *testing.T) {
  _, err := NewCategoryParser(CategoryConfig{Endpoint: ""}, CategoryDependencies{Client: resty.New()})
  if err == nil {
    t.Fatal("NewCategoryParser with empty endpoint returned nil error")
  }
}
