package server

import (
  "encoding/json"
  "net/http"
  "time"

  "github.com/go-chi/chi/v5"
  log "github.com/sirupsen/logrus"
  "github.com/zentrack/zentrack/internal/export"
  "github.com/zentrack/zentrack/internal/models"
  "github.com/zentrack/zentrack/internal/scheduler"
  "github.com/zentrack/zentrack/pkg/money"
)

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
  var req scrapeRequest

  if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
    s.respondWithError(w, http.StatusBadRequest, "invalid request body")
    return
  }

  if s.deps.Redis != nil {
    payload, ok, err := s.deps.Redis.GetScrape(r.Context(), req.URL)
    if err != nil {
      log.Errorf("server: s.deps.Redis.GetScrape: %v", err)
    }
    if ok {
      w.Header().Set("Content-Type", "application/json")
      _, _ = w.Write(payload)
      return
    }
  }

  parsed, err := s.deps.Parser.Parse(r.Context(), req.URL)
  if err != nil {
    s.deps.Metrics.IncScrapeErrors("api")
    s.respondWithError(w, statusForError(err), err.Error())
    return
  }
  s.deps.Metrics.IncScrapes()

  resp := makeScrapeResponse(parsed)

  if s.deps.Redis != nil {
    if payload, err := json.Marshal(resp); err == nil {
      if err = s.deps.Redis.SetScrape(r.Context(), req.URL, payload); err != nil {
        log.Errorf("server: s.deps.Redis.SetScrape: %v", err)
      }
    }
  }

  s.respondWithJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
  var req scrapeRequest

  if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
    s.respondWithError(w, http.StatusBadRequest, "invalid request body")
    return
  }

  var result models.BatchResult

  items, err := s.deps.Category.ParseCategory(r.Context(), req.URL, func(fraction float64) {
    result.Progress = fraction
  })
  if err != nil {
    s.respondWithError(w, statusForError(err), err.Error())
    return
  }
  result.Items = items

  s.respondWithJSON(w, http.StatusOK, result)
}

func (s *Server) handleCategoryExport(w http.ResponseWriter, r *http.Request) {
  var req scrapeRequest

  if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
    s.respondWithError(w, http.StatusBadRequest, "invalid request body")
    return
  }

  items, err := s.deps.Category.ParseCategory(r.Context(), req.URL, nil)
  if err != nil {
    s.respondWithError(w, statusForError(err), err.Error())
    return
  }

  file, err := export.CategoryItems(items)
  if err != nil {
    s.respondWithError(w, http.StatusInternalServerError, err.Error())
    return
  }

  w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
  w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(time.Now())+`"`)

  if err = file.Write(w); err != nil {
    log.Errorf("server: file.Write: %v", err)
  }
}

func (s *Server) handleTrackingsList(w http.ResponseWriter, r *http.Request) {
  userId := r.URL.Query().Get("user_id")
  if userId == "" {
    s.respondWithError(w, http.StatusBadRequest, "user_id query parameter is required")
    return
  }

  s.respondWithJSON(w, http.StatusOK, s.deps.Tracker.Auctions(userId))
}

func (s *Server) handleTrackingAdd(w http.ResponseWriter, r *http.Request) {
  var req trackingRequest

  if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
    s.respondWithError(w, http.StatusBadRequest, "invalid request body")
    return
  }
  if req.UserId == "" || req.URL == "" {
    s.respondWithError(w, http.StatusBadRequest, "userId and url are required")
    return
  }

  prefs := s.deps.Settings.Preferences(r.Context(), req.UserId)

  auction, err := s.deps.Tracker.Add(r.Context(), prefs, req.URL)
  if err != nil {
    s.respondWithError(w, statusForError(err), err.Error())
    return
  }
  if auction == nil {
    s.respondWithError(w, http.StatusGone, "auction was deleted during fetch")
    return
  }

  s.respondWithJSON(w, http.StatusCreated, auction)
}

func (s *Server) handleTrackingDelete(w http.ResponseWriter, r *http.Request) {
  id := chi.URLParam(r, "id")
  userId := r.URL.Query().Get("user_id")

  if id == "" || userId == "" {
    s.respondWithError(w, http.StatusBadRequest, "id and user_id are required")
    return
  }

  if err := s.deps.Tracker.Delete(r.Context(), userId, id); err != nil {
    s.respondWithError(w, http.StatusNotFound, err.Error())
    return
  }

  s.respondWithJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

func (s *Server) handlePreferencesGet(w http.ResponseWriter, r *http.Request) {
  userId := r.URL.Query().Get("user_id")
  if userId == "" {
    s.respondWithError(w, http.StatusBadRequest, "user_id query parameter is required")
    return
  }

  s.respondWithJSON(w, http.StatusOK, s.deps.Settings.Preferences(r.Context(), userId))
}

func (s *Server) handlePreferencesPut(w http.ResponseWriter, r *http.Request) {
  var prefs models.Preferences

  if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
    s.respondWithError(w, http.StatusBadRequest, "invalid request body")
    return
  }
  if prefs.UserId == "" {
    s.respondWithError(w, http.StatusBadRequest, "userId is required")
    return
  }
  if !money.IsSupported(prefs.Currency) {
    s.respondWithError(w, http.StatusBadRequest, "unsupported currency: "+prefs.Currency)
    return
  }

  if prefs.RefreshIntervalMinutes < models.MinRefreshIntervalMinutes {
    prefs.RefreshIntervalMinutes = models.MinRefreshIntervalMinutes
  }
  if prefs.RefreshIntervalMinutes > models.MaxRefreshIntervalMinutes {
    prefs.RefreshIntervalMinutes = models.MaxRefreshIntervalMinutes
  }

  if err := s.deps.Settings.SavePreferences(r.Context(), prefs); err != nil {
    s.respondWithError(w, http.StatusInternalServerError, err.Error())
    return
  }

  // Recompute derived fields on the live collection: display price and
  // localized names change, price and ids do not.
  s.deps.Tracker.ApplyPreferences(r.Context(), prefs)

  if s.deps.Scheduler != nil {
    if prefs.AutoRefresh {
      s.deps.Scheduler.SetInterval(r.Context(), scheduler.ClampInterval(
        time.Duration(prefs.RefreshIntervalMinutes)*time.Minute))
      s.deps.Scheduler.Start(r.Context())
    } else {
      s.deps.Scheduler.Stop()
    }
  }

  s.respondWithJSON(w, http.StatusOK, prefs)
}

func (s *Server) handleAlertsList(w http.ResponseWriter, r *http.Request) {
  userId := r.URL.Query().Get("user_id")
  if userId == "" {
    s.respondWithError(w, http.StatusBadRequest, "user_id query parameter is required")
    return
  }

  alerts, err := s.deps.Settings.Alerts(r.Context(), userId)
  if err != nil {
    s.respondWithError(w, http.StatusInternalServerError, err.Error())
    return
  }

  s.respondWithJSON(w, http.StatusOK, alerts)
}

func (s *Server) handleAlertAdd(w http.ResponseWriter, r *http.Request) {
  var alert models.Alert

  if err := json.NewDecoder(r.Body).Decode(&alert); err != nil {
    s.respondWithError(w, http.StatusBadRequest, "invalid request body")
    return
  }
  if alert.UserId == "" || alert.AuctionId == "" {
    s.respondWithError(w, http.StatusBadRequest, "userId and auctionId are required")
    return
  }

  if err := s.deps.Settings.AddAlert(r.Context(), alert); err != nil {
    s.respondWithError(w, http.StatusInternalServerError, err.Error())
    return
  }

  s.respondWithJSON(w, http.StatusCreated, alert)
}

func (s *Server) handleAlertDelete(w http.ResponseWriter, r *http.Request) {
  userId := r.URL.Query().Get("user_id")
  auctionId := r.URL.Query().Get("auction_id")

  if userId == "" || auctionId == "" {
    s.respondWithError(w, http.StatusBadRequest, "user_id and auction_id are required")
    return
  }

  if err := s.deps.Settings.RemoveAlert(r.Context(), userId, auctionId); err != nil {
    s.respondWithError(w, http.StatusInternalServerError, err.Error())
    return
  }

  s.respondWithJSON(w, http.StatusOK, map[string]string{"deleted": auctionId})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
  status := make(map[string]string)

  if err := s.deps.Mongodb.Ping(r.Context()); err != nil {
    status["mongodb"] = "unhealthy"
  } else {
    status["mongodb"] = "healthy"
  }

  if s.deps.Redis != nil {
    if err := s.deps.Redis.Ping(r.Context()); err != nil {
      status["redis"] = "unhealthy"
    } else {
      status["redis"] = "healthy"
    }
  }

  for _, value := range status {
    if value != "healthy" {
      s.respondWithJSON(w, http.StatusServiceUnavailable, status)
      return
    }
  }

  s.respondWithJSON(w, http.StatusOK, status)
}
