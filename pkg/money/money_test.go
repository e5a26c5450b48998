package money

import "testing"

func TestFormat(t *testing.T) {
  tests := []struct {
    priceJPY int64
    currency Currency
    want     string
  }{
    {1000, CurrencyJPY, "¥1,000"},
    {0, CurrencyJPY, "¥0"},
    {1234567, CurrencyJPY, "¥1,234,567"},
    {1000, CurrencyUSD, "$6.70"},
    {1000, CurrencyEUR, "€6,20"},
    {1000, CurrencyGBP, "£5.30"},
    {0, CurrencyUSD, "$0.00"},
  }

  for _, tt := range tests {
    got := Format(tt.priceJPY, tt.currency)
    if got != tt.want {
      t.Errorf("Format(%d, %q) = %q; want %q", tt.priceJPY, tt.currency, got, tt.want)
    }
  }
}

func TestFormatIsPure(t *testing.T) {
  first := Format(2500, CurrencyUSD)

  for index := 0; index < 10; index++ {
    if got := Format(2500, CurrencyUSD); got != first {
      t.Fatalf("Format(2500, USD) = %q on call %d; want %q every time", got, index+2, first)
    }
  }
}

func TestFormatUnknownCurrencyPanics(t *testing.T) {
  defer func() {
    if recover() == nil {
      t.Fatal("Format with unknown currency did not panic")
    }
  }()

  Format(100, Currency("XXX"))
}

func TestIsSupported(t *testing.T) {
  for _, currency := range []Currency{CurrencyJPY, CurrencyUSD, CurrencyEUR, CurrencyGBP} {
    if !IsSupported(currency) {
      t.Errorf("IsSupported(%q) = false; want true", currency)
    }
  }

  if IsSupported(Currency("BTC")) {
    t.Error(`IsSupported("BTC") = true; want false`)
  }
}
