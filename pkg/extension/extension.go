package extension

import (
  "strings"

  set "github.com/deckarep/golang-set/v2"
)

var extImage = set.NewSet("jpg", "jpeg", "png", "svg", "webp", "gif")

func IsImage(filename string) bool {
  filename, _, _ = strings.Cut(filename, "?")

  parts := strings.Split(filename, ".")
  if len(parts) < 2 {
    return false
  }
  ext := strings.ToLower(parts[len(parts)-1])

  return extImage.ContainsOne(ext)
}
