package zenmarket

import "github.com/zentrack/zentrack/internal/models"

type categoryRequest struct {
  URL string `json:"url"`
}

type categoryResponse struct {
  Items []models.CategoryItem `json:"items"`
  Error string                `json:"error"`
}
