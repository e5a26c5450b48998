package stringer

import (
  "html"
  "regexp"
  "strings"

  "github.com/microcosm-cc/bluemonday"
  "github.com/spf13/cast"
  "golang.org/x/text/cases"
  "golang.org/x/text/language"
)

var (
  policy         = bluemonday.StrictPolicy()
  RegexNonDigit  = regexp.MustCompile(`[^0-9]`)
  RegexRepeatSep = regexp.MustCompile(`\s{2,}`)
)

func StripTags(s string) string {
  return strings.TrimSpace(policy.Sanitize(s))
}

func Strip(s string) string {
  return strings.TrimSpace(s)
}

func IsEmptyStr(s string) bool {
  return Strip(s) == ""
}

func SanitizeString(s string) string {
  s = RegexRepeatSep.ReplaceAllLiteralString(s, " ")
  s = html.UnescapeString(s)
  s = strings.TrimSpace(s)
  return s
}

func NormalizeIntStr(s string) string {
  return RegexNonDigit.ReplaceAllLiteralString(s, "")
}

// ParseDigits strips every non-digit character and parses the rest.
// Returns 0 when nothing parseable remains.
func ParseDigits(s string) int64 {
  s = NormalizeIntStr(s)

  v, err := cast.ToInt64E(s)
  if err != nil {
    return 0
  }
  return v
}

func ToTitle(s string, lang ...language.Tag) string {
  lTag := language.Und
  for _, l := range lang {
    lTag = l
    break
  }
  return cases.Title(lTag, cases.NoLower).String(s)
}
