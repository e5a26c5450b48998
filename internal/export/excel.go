package export

import (
  "fmt"
  "strings"
  "time"

  "github.com/samber/lo"
  "github.com/xuri/excelize/v2"
  "github.com/zentrack/zentrack/internal/models"
  "github.com/zentrack/zentrack/pkg/stringer"
  "golang.org/x/text/language"
)

const sheetName = "Zen Market Items"

var header = []string{"Title", "URL", "Bids", "Time Remaining", "Current Price", "Buyout Price", "Categories"}

// Filename includes the export date, e.g. zen-market-export-2026-08-30.xlsx.
func Filename(now time.Time) string {
  return fmt.Sprintf("zen-market-export-%s.xlsx", now.Format("2006-01-02"))
}

// CategoryItems builds a workbook with one row per extracted item.
func CategoryItems(items []models.CategoryItem) (*excelize.File, error) {
  f := excelize.NewFile()

  if err := f.SetSheetName("Sheet1", sheetName); err != nil {
    return nil, fmt.Errorf("f.SetSheetName: %w", err)
  }

  if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
    return nil, fmt.Errorf("f.SetSheetRow: header: %w", err)
  }

  for i, item := range items {
    cell, err := excelize.CoordinatesToCellName(1, i+2)
    if err != nil {
      return nil, fmt.Errorf("excelize.CoordinatesToCellName: %w", err)
    }

    // Category labels arrive from the extraction service in whatever
    // case the source page used.
    categories := lo.Map(item.Categories, func(category string, _ int) string {
      return stringer.ToTitle(category, language.English)
    })

    row := []any{
      item.Title,
      item.URL,
      item.Bids,
      item.TimeRemaining,
      item.CurrentPrice,
      lo.FromPtrOr(item.BuyoutPrice, "N/A"),
      strings.Join(categories, ", "),
    }

    if err = f.SetSheetRow(sheetName, cell, &row); err != nil {
      return nil, fmt.Errorf("f.SetSheetRow: row %d: %w", i, err)
    }
  }

  return f, nil
}
