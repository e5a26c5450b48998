package xpath

import (
  "bytes"
  "context"
  "fmt"
  "strings"

  "github.com/antchfx/htmlquery"
  "github.com/go-resty/resty/v2"
  "github.com/zentrack/zentrack/pkg/stringer"
  "golang.org/x/net/html"
)

type HtmlDocument struct {
  Node *html.Node
  Url  string
}

type Dependencies struct {
  Client *resty.Client
}

type Parser struct {
  deps Dependencies
}

func NewParser(deps Dependencies) *Parser {
  return &Parser{
    deps: deps,
  }
}

// GetHtmlDoc fetches the page and parses it into a document.
// A non-2xx response is a fetch failure, not a parse failure.
func (p *Parser) GetHtmlDoc(ctx context.Context, url string) (*HtmlDocument, error) {
  resp, err := p.deps.Client.R().SetContext(ctx).Get(url)
  if err != nil {
    return nil, fmt.Errorf("p.deps.Client.R().Get: %w", err)
  }
  if resp.IsError() {
    return nil, fmt.Errorf("unexpected response status: %s", resp.Status())
  }

  doc, err := ParseHtmlDoc(string(resp.Body()))
  if err != nil {
    return nil, fmt.Errorf("ParseHtmlDoc: %w", err)
  }
  doc.Url = url

  return doc, nil
}

// ParseHtmlDoc parses already-fetched markup into a document.
func ParseHtmlDoc(markup string) (*HtmlDocument, error) {
  if stringer.IsEmptyStr(markup) {
    return nil, fmt.Errorf("empty markup")
  }

  node, err := html.Parse(bytes.NewReader([]byte(markup)))
  if err != nil {
    return nil, fmt.Errorf("html.Parse: %w", err)
  }

  return &HtmlDocument{Node: node}, nil
}

func CollectElements(doc *HtmlDocument, xpath string) []*html.Node {
  var nodes []*html.Node

  for _, node := range htmlquery.Find(doc.Node, xpath) {
    if node == nil {
      continue
    }
    nodes = append(nodes, node)
  }

  return nodes
}

func GetFirstElement(doc *HtmlDocument, xpath string) *html.Node {
  nodes := CollectElements(doc, xpath)

  if len(nodes) == 0 {
    return nil
  }
  return nodes[0]
}

// ElementText returns the sanitized inner text of the node subtree.
func ElementText(node *html.Node) (string, bool) {
  if node == nil {
    return "", false
  }

  content := htmlquery.InnerText(node)
  content = stringer.SanitizeString(content)

  return content, !stringer.IsEmptyStr(content)
}

func GetAttribute(node *html.Node, attrKey string) (string, bool) {
  if node == nil {
    return "", false
  }

  for _, attr := range node.Attr {
    if attr.Key != attrKey {
      continue
    }
    return strings.TrimSpace(stringer.StripTags(attr.Val)), true
  }

  return "", false
}
