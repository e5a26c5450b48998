package models

// CategoryItem is one row extracted from a category/search page.
type CategoryItem struct {
  Title         string   `bson:"title" json:"title"`
  URL           string   `bson:"url" json:"url"`
  Bids          int64    `bson:"bids" json:"bids"`
  TimeRemaining string   `bson:"time_remaining" json:"timeRemaining"`
  Categories    []string `bson:"categories" json:"categories"`
  CurrentPrice  string   `bson:"current_price" json:"currentPrice"`
  BuyoutPrice   *string  `bson:"buyout_price" json:"buyoutPrice"`
}

// BatchResult is ephemeral: consumed once by the caller, never persisted.
type BatchResult struct {
  Items    []CategoryItem `json:"items"`
  Progress float64        `json:"progress"`
}
