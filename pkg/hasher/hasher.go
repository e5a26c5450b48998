package hasher

import (
  "crypto/sha256"
  "fmt"
)

const shortLen = 16

func SHA256(value string) string {
  hash := sha256.New()
  hash.Write([]byte(value))

  return fmt.Sprintf("%x", hash.Sum(nil))
}

// Short returns the first 16 hex characters of the SHA-256 digest.
func Short(value string) string {
  return SHA256(value)[:shortLen]
}
