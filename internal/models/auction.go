package models

import "time"

// Auction is one tracked listing. Id is assigned once at submission and
// survives every refresh; the parsed result never carries its own id.
type Auction struct {
  Id                string    `bson:"id" json:"id"`
  UserId            string    `bson:"user_id" json:"userId"`
  URL               string    `bson:"url" json:"url"`
  ProductName       string    `bson:"product_name" json:"productName"`
  ProductNameSource string    `bson:"product_name_source" json:"-"`
  PriceJPY          int64     `bson:"price_jpy" json:"priceInJPY"`
  CurrentPrice      string    `bson:"current_price" json:"currentPrice"`
  NumberOfBids      string    `bson:"number_of_bids" json:"numberOfBids"`
  TimeRemaining     string    `bson:"time_remaining" json:"timeRemaining"`
  ImageURL          string    `bson:"image_url" json:"imageUrl,omitempty"`
  Pending           bool      `bson:"pending" json:"pending"`
  LastUpdated       time.Time `bson:"last_updated" json:"lastUpdated"`
}
