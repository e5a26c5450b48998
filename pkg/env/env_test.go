package env

import "testing"

func TestAppEnvDefaultsToDev(t *testing.T) {
  t.Setenv("ENV", "")

  if got := AppEnv(); got != DEV {
    t.Errorf("AppEnv = %q; want %q", got, DEV)
  }
  if IsProduction() {
    t.Error("IsProduction = true without ENV set")
  }
}

func TestIsProduction(t *testing.T) {
  t.Setenv("ENV", PROD)

  if !IsProduction() {
    t.Error("IsProduction = false with ENV=PROD")
  }
}
