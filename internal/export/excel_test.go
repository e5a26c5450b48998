package export

import (
  "testing"
  "time"

  "github.com/samber/lo"
  "github.com/zentrack/zentrack/internal/models"
)

func TestFilename(t *testing.T) {
  now := time.Date(2026, time.August, 30, 15, 4, 5, 0, time.UTC)

  if got := Filename(now); got != "zen-market-export-2026-08-30.xlsx" {
    t.Errorf("Filename = %q", got)
  }
}

func TestCategoryItems(t *testing.T) {
  items := []models.CategoryItem{
    {
      Title:         "Vintage Camera",
      URL:           "https://zenmarket.jp/en/auction.aspx?itemCode=x1",
      Bids:          3,
      TimeRemaining: "2 days",
      Categories:    []string{"Cameras", "Vintage"},
      CurrentPrice:  "¥1,000",
      BuyoutPrice:   lo.ToPtr("¥5,000"),
    },
    {
      Title:        "Pocket Watch",
      URL:          "https://zenmarket.jp/en/auction.aspx?itemCode=x2",
      Categories:   []string{"pocket watches"},
      CurrentPrice: "¥800",
    },
  }

  f, err := CategoryItems(items)
  if err != nil {
    t.Fatalf("CategoryItems: %v", err)
  }

  rows, err := f.GetRows(sheetName)
  if err != nil {
    t.Fatalf("f.GetRows: %v", err)
  }

  if len(rows) != 3 {
    t.Fatalf("rows = %d; want header + 2 items", len(rows))
  }

  if rows[0][0] != "Title" || rows[0][6] != "Categories" {
    t.Errorf("header row = %v", rows[0])
  }

  if rows[1][0] != "Vintage Camera" {
    t.Errorf("row 1 title = %q", rows[1][0])
  }
  if rows[1][5] != "¥5,000" {
    t.Errorf("row 1 buyout = %q; want %q", rows[1][5], "¥5,000")
  }
  if rows[1][6] != "Cameras, Vintage" {
    t.Errorf("row 1 categories = %q", rows[1][6])
  }

  // Buyout price defaults to N/A when the listing has none.
  if rows[2][5] != "N/A" {
    t.Errorf("row 2 buyout = %q; want %q", rows[2][5], "N/A")
  }

  // Category labels are title-cased regardless of source page casing.
  if rows[2][6] != "Pocket Watches" {
    t.Errorf("row 2 categories = %q; want %q", rows[2][6], "Pocket Watches")
  }
}
