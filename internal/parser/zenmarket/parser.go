package zenmarket

import (
  "context"
  "errors"
  "fmt"
  "regexp"

  log "github.com/sirupsen/logrus"
  "github.com/zentrack/zentrack/internal/models"
  "github.com/zentrack/zentrack/pkg/extension"
  "github.com/zentrack/zentrack/pkg/parser/xpath"
  "github.com/zentrack/zentrack/pkg/stringer"
  "github.com/zentrack/zentrack/pkg/validator"
)

const baseURL = "https://zenmarket.jp"

var regexBaseURL = regexp.MustCompile(`https?://(www\.)?zenmarket\.jp/.+`)

var (
  ErrInvalidURL       = errors.New("invalid listing url")
  ErrFetchFailed      = errors.New("listing fetch failed")
  ErrUnparsableMarkup = errors.New("listing markup unparsable")
)

const (
  fieldTitle    = "title"
  fieldPrice    = "price"
  fieldBids     = "bids"
  fieldTimeLeft = "time_left"
  fieldImage    = "image"
)

type fieldRule struct {
  path string
  attr string
  def  string
}

// One rule per extracted field. A missing target yields the rule default,
// so adding a field never adds control flow.
var fieldRules = map[string]fieldRule{
  fieldTitle:    {path: `//*[@id="itemTitle"]`, def: "N/A"},
  fieldPrice:    {path: `//*[@id="lblPriceY"]`, def: "0"},
  fieldBids:     {path: `//*[@id="bidNum"]`, def: "0"},
  fieldTimeLeft: {path: `//*[@id="lblTimeLeft"]`, def: "N/A"},
  fieldImage:    {path: `//*[@id="imgPreview"]`, attr: "src", def: ""},
}

type Parser struct {
  deps Dependencies
}

type Dependencies struct {
  Xpath *xpath.Parser
}

func NewParser(deps Dependencies) *Parser {
  return &Parser{deps: deps}
}

func ValidateURL(url string) error {
  if err := validator.URL(url); err != nil {
    return fmt.Errorf("%w: %s: %v", ErrInvalidURL, url, err)
  }
  if !regexBaseURL.MatchString(url) {
    return fmt.Errorf("%w: %s: expected: %s", ErrInvalidURL, url, baseURL)
  }
  return nil
}

func (p *Parser) Parse(ctx context.Context, url string) (*models.ParsedAuction, error) {
  if err := ValidateURL(url); err != nil {
    return nil, err
  }

  log.
    WithField("url", url).
    Debug("zenmarket listing parsing started")

  doc, err := p.deps.Xpath.GetHtmlDoc(ctx, url)
  if err != nil {
    return nil, fmt.Errorf("%w: %s: p.deps.Xpath.GetHtmlDoc: %v", ErrFetchFailed, url, err)
  }

  parsed := extractFields(doc)
  parsed.URL = url

  log.
    WithFields(log.Fields{
      "url":       url,
      "price_jpy": parsed.PriceJPY,
    }).
    Debug("zenmarket listing parsed successfully")

  return parsed, nil
}

// ParseMarkup extracts listing fields from already-fetched markup.
// Pure: the only failure mode is markup that cannot be parsed at all.
func ParseMarkup(markup string) (*models.ParsedAuction, error) {
  doc, err := xpath.ParseHtmlDoc(markup)
  if err != nil {
    return nil, fmt.Errorf("%w: xpath.ParseHtmlDoc: %v", ErrUnparsableMarkup, err)
  }

  return extractFields(doc), nil
}

func extractFields(doc *xpath.HtmlDocument) *models.ParsedAuction {
  return &models.ParsedAuction{
    ProductName:   lookupField(doc, fieldRules[fieldTitle]),
    PriceJPY:      stringer.ParseDigits(lookupField(doc, fieldRules[fieldPrice])),
    NumberOfBids:  lookupField(doc, fieldRules[fieldBids]),
    TimeRemaining: lookupField(doc, fieldRules[fieldTimeLeft]),
    ImageURL:      makeImageURL(lookupField(doc, fieldRules[fieldImage])),
  }
}

func lookupField(doc *xpath.HtmlDocument, rule fieldRule) string {
  node := xpath.GetFirstElement(doc, rule.path)

  if rule.attr != "" {
    if value, ok := xpath.GetAttribute(node, rule.attr); ok {
      return value
    }
    return rule.def
  }

  if value, ok := xpath.ElementText(node); ok {
    return value
  }
  return rule.def
}

func makeImageURL(src string) string {
  if src == "" || !extension.IsImage(src) {
    return ""
  }
  return src
}
