package tracker

import (
  "sync"

  "github.com/zentrack/zentrack/internal/models"
)

// Collection holds tracked auctions as an immutable snapshot: writers
// build a new slice under the lock, readers copy the current one. A
// merge result for an id no longer present is discarded by Apply.
type Collection struct {
  mu    sync.RWMutex
  items []models.Auction
}

func NewCollection() *Collection {
  return &Collection{}
}

func (c *Collection) Snapshot() []models.Auction {
  c.mu.RLock()
  defer c.mu.RUnlock()

  out := make([]models.Auction, len(c.items))
  copy(out, c.items)

  return out
}

func (c *Collection) SnapshotUser(userId string) []models.Auction {
  c.mu.RLock()
  defer c.mu.RUnlock()

  out := make([]models.Auction, 0, len(c.items))

  for _, item := range c.items {
    if item.UserId == userId {
      out = append(out, item)
    }
  }

  return out
}

func (c *Collection) Get(id string) (models.Auction, bool) {
  c.mu.RLock()
  defer c.mu.RUnlock()

  for _, item := range c.items {
    if item.Id == id {
      return item, true
    }
  }

  return models.Auction{}, false
}

func (c *Collection) Len() int {
  c.mu.RLock()
  defer c.mu.RUnlock()

  return len(c.items)
}

// Insert adds a new auction. Exactly one record per id.
func (c *Collection) Insert(auction models.Auction) bool {
  c.mu.Lock()
  defer c.mu.Unlock()

  for _, item := range c.items {
    if item.Id == auction.Id {
      return false
    }
  }

  next := make([]models.Auction, 0, len(c.items)+1)
  next = append(next, c.items...)
  next = append(next, auction)

  c.items = next

  return true
}

func (c *Collection) Remove(id string) bool {
  c.mu.Lock()
  defer c.mu.Unlock()

  next := make([]models.Auction, 0, len(c.items))
  removed := false

  for _, item := range c.items {
    if item.Id == id {
      removed = true
      continue
    }
    next = append(next, item)
  }

  c.items = next

  return removed
}

// Apply replaces the record with the same id. Returns false when the
// record was removed while the update was in flight; the caller must
// then discard the result.
func (c *Collection) Apply(auction models.Auction) bool {
  c.mu.Lock()
  defer c.mu.Unlock()

  next := make([]models.Auction, len(c.items))
  copy(next, c.items)

  for i, item := range next {
    if item.Id == auction.Id {
      next[i] = auction
      c.items = next

      return true
    }
  }

  return false
}

// Load replaces the whole collection, e.g. from persistent storage.
func (c *Collection) Load(items []models.Auction) {
  next := make([]models.Auction, len(items))
  copy(next, items)

  c.mu.Lock()
  defer c.mu.Unlock()

  c.items = next
}
