package cache

import "testing"

func TestCacheSetGet(t *testing.T) {
  c := NewCache[string, string, int]()

  key := Key[string, string]{P: "fr", S: "hello"}

  if _, ok := c.Get(key); ok {
    t.Fatal("Get on empty cache reported a hit")
  }

  c.Set(key, 42)

  value, ok := c.Get(key)
  if !ok {
    t.Fatal("Get after Set reported a miss")
  }
  if value != 42 {
    t.Fatalf("Get = %d; want 42", value)
  }
}

func TestCacheDelete(t *testing.T) {
  c := NewCache[string, string, int]()

  key := Key[string, string]{P: "ja", S: "watch"}

  c.Set(key, 1)
  c.Delete(key)

  if _, ok := c.Get(key); ok {
    t.Fatal("Get after Delete reported a hit")
  }

  // Deleting from a missing primary level must not panic.
  c.Delete(Key[string, string]{P: "de", S: "watch"})
}

func TestCachePurge(t *testing.T) {
  c := NewCache[string, string, int]()

  c.Set(Key[string, string]{P: "es", S: "a"}, 1)
  c.Set(Key[string, string]{P: "es", S: "b"}, 2)
  c.Set(Key[string, string]{P: "fr", S: "a"}, 3)

  c.Purge("es")

  if _, ok := c.Get(Key[string, string]{P: "es", S: "a"}); ok {
    t.Fatal("Get after Purge reported a hit on purged level")
  }
  if _, ok := c.Get(Key[string, string]{P: "fr", S: "a"}); !ok {
    t.Fatal("Purge removed entries of another primary key")
  }
}
