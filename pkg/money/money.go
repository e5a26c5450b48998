package money

import (
  "fmt"

  "github.com/leekchan/accounting"
)

const (
  CurrencyJPY Currency = "JPY"
  CurrencyEUR Currency = "EUR"
  CurrencyUSD Currency = "USD"
  CurrencyGBP Currency = "GBP"
)

type Currency = string

// locale binds a static conversion rate against the JPY base to the
// display conventions of the target currency.
type locale struct {
  rate float64
  acc  accounting.Accounting
}

var locales = map[Currency]locale{
  CurrencyJPY: {
    rate: 1,
    acc:  accounting.Accounting{Symbol: "¥", Precision: 0, Thousand: ",", Decimal: "."},
  },
  CurrencyUSD: {
    rate: 0.0067,
    acc:  accounting.Accounting{Symbol: "$", Precision: 2, Thousand: ",", Decimal: "."},
  },
  CurrencyEUR: {
    rate: 0.0062,
    acc:  accounting.Accounting{Symbol: "€", Precision: 2, Thousand: ".", Decimal: ","},
  },
  CurrencyGBP: {
    rate: 0.0053,
    acc:  accounting.Accounting{Symbol: "£", Precision: 2, Thousand: ",", Decimal: "."},
  },
}

// Format converts a JPY minor-unit price to a display string in the
// target currency. Unknown currencies are a caller contract violation.
func Format(priceJPY int64, currency Currency) string {
  loc, ok := locales[currency]
  if !ok {
    panic(fmt.Sprintf("money: unsupported currency: %s", currency))
  }

  return loc.acc.FormatMoney(float64(priceJPY) * loc.rate)
}

func IsSupported(currency Currency) bool {
  _, ok := locales[currency]
  return ok
}
