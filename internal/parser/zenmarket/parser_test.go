package zenmarket

import (
  "errors"
  "testing"
)

const listingMarkup = `
<html>
<body>
  <h1 id="itemTitle">ヴィンテージ セイコー 腕時計</h1>
  <span id="lblPriceY">12,500 yen</span>
  <span id="bidNum">3</span>
  <span id="lblTimeLeft">2 days</span>
  <img id="imgPreview" src="https://zenmarket.jp/images/item.jpg" />
</body>
</html>`

const sparseMarkup = `
<html>
<body>
  <div>unrelated content</div>
</body>
</html>`

func TestParseMarkup(t *testing.T) {
  parsed, err := ParseMarkup(listingMarkup)
  if err != nil {
    t.Fatalf("ParseMarkup: %v", err)
  }

  if parsed.ProductName != "ヴィンテージ セイコー 腕時計" {
    t.Errorf("ProductName = %q", parsed.ProductName)
  }
  if parsed.PriceJPY != 12500 {
    t.Errorf("PriceJPY = %d; want 12500", parsed.PriceJPY)
  }
  if parsed.NumberOfBids != "3" {
    t.Errorf("NumberOfBids = %q; want %q", parsed.NumberOfBids, "3")
  }
  if parsed.TimeRemaining != "2 days" {
    t.Errorf("TimeRemaining = %q; want %q", parsed.TimeRemaining, "2 days")
  }
  if parsed.ImageURL != "https://zenmarket.jp/images/item.jpg" {
    t.Errorf("ImageURL = %q", parsed.ImageURL)
  }
}

func TestParseMarkupMissingFieldsUseDefaults(t *testing.T) {
  parsed, err := ParseMarkup(sparseMarkup)
  if err != nil {
    t.Fatalf("ParseMarkup: %v", err)
  }

  if parsed.ProductName != "N/A" {
    t.Errorf("ProductName = %q; want %q", parsed.ProductName, "N/A")
  }
  if parsed.PriceJPY != 0 {
    t.Errorf("PriceJPY = %d; want 0", parsed.PriceJPY)
  }
  if parsed.NumberOfBids != "0" {
    t.Errorf("NumberOfBids = %q; want %q", parsed.NumberOfBids, "0")
  }
  if parsed.TimeRemaining != "N/A" {
    t.Errorf("TimeRemaining = %q; want %q", parsed.TimeRemaining, "N/A")
  }
  if parsed.ImageURL != "" {
    t.Errorf("ImageURL = %q; want empty", parsed.ImageURL)
  }
}

func TestParseMarkupNonImageSrcDropped(t *testing.T) {
  markup := `<html><body><img id="imgPreview" src="https://zenmarket.jp/loading.js" /></body></html>`

  parsed, err := ParseMarkup(markup)
  if err != nil {
    t.Fatalf("ParseMarkup: %v", err)
  }

  if parsed.ImageURL != "" {
    t.Errorf("ImageURL = %q; want empty for non-image src", parsed.ImageURL)
  }
}

func TestParseMarkupEmpty(t *testing.T) {
  _, err := ParseMarkup("   ")
  if !errors.Is(err, ErrUnparsableMarkup) {
    t.Fatalf("ParseMarkup(empty) error = %v; want ErrUnparsableMarkup", err)
  }
}

func TestValidateURL(t *testing.T) {
  tests := []struct {
    url     string
    wantErr bool
  }{
    {"https://zenmarket.jp/en/auction.aspx?itemCode=x123", false},
    {"http://www.zenmarket.jp/ja/auction.aspx?itemCode=y456", false},
    {"https://example.com/auction", true},
    {"not-a-url", true},
    {"", true},
  }

  for _, tt := range tests {
    err := ValidateURL(tt.url)
    if (err != nil) != tt.wantErr {
      t.Errorf("ValidateURL(%q) error = %v; wantErr %v", tt.url, err, tt.wantErr)
    }
    if err != nil && !errors.Is(err, ErrInvalidURL) {
      t.Errorf("ValidateURL(%q) error = %v; want ErrInvalidURL", tt.url, err)
    }
  }
}
