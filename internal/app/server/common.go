package server

import (
  "encoding/json"
  "errors"
  "net/http"
  "time"

  "github.com/zentrack/zentrack/internal/models"
  "github.com/zentrack/zentrack/internal/parser/zenmarket"
  "github.com/zentrack/zentrack/pkg/money"
)

type scrapeRequest struct {
  URL string `json:"url"`
}

type scrapeResponse struct {
  URL           string    `json:"url"`
  ProductName   string    `json:"productName"`
  PriceInJPY    int64     `json:"priceInJPY"`
  CurrentPrice  string    `json:"currentPrice"`
  NumberOfBids  string    `json:"numberOfBids"`
  TimeRemaining string    `json:"timeRemaining"`
  ImageURL      *string   `json:"imageUrl"`
  LastUpdated   time.Time `json:"lastUpdated"`
}

type trackingRequest struct {
  UserId string `json:"userId"`
  URL    string `json:"url"`
}

func makeScrapeResponse(parsed *models.ParsedAuction) scrapeResponse {
  var imageURL *string
  if parsed.ImageURL != "" {
    imageURL = &parsed.ImageURL
  }

  return scrapeResponse{
    URL:           parsed.URL,
    ProductName:   parsed.ProductName,
    PriceInJPY:    parsed.PriceJPY,
    CurrentPrice:  money.Format(parsed.PriceJPY, money.CurrencyJPY),
    NumberOfBids:  parsed.NumberOfBids,
    TimeRemaining: parsed.TimeRemaining,
    ImageURL:      imageURL,
    LastUpdated:   time.Now().UTC(),
  }
}

func statusForError(err error) int {
  switch {
  case errors.Is(err, zenmarket.ErrInvalidURL):
    return http.StatusBadRequest
  case errors.Is(err, zenmarket.ErrUnparsableMarkup):
    return http.StatusUnprocessableEntity
  case errors.Is(err, zenmarket.ErrFetchFailed), errors.Is(err, zenmarket.ErrBatchFailed):
    return http.StatusBadGateway
  default:
    return http.StatusInternalServerError
  }
}

func (s *Server) respondWithError(w http.ResponseWriter, code int, message string) {
  s.respondWithJSON(w, code, map[string]string{"error": message})
}

func (s *Server) respondWithJSON(w http.ResponseWriter, code int, payload any) {
  response, _ := json.Marshal(payload)

  w.Header().Set("Content-Type", "application/json")
  w.WriteHeader(code)
  _, _ = w.Write(response)
}
