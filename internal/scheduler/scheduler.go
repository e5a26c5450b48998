package scheduler

import (
  "context"
  "sync"
  "time"

  log "github.com/sirupsen/logrus"
  "github.com/zentrack/zentrack/internal/models"
)

type Refresher interface {
  Refresh(ctx context.Context)
}

// Scheduler drives periodic refresh cycles while auto-refresh is
// enabled. Stopping or re-configuring clears the timer; fetches already
// issued by a running cycle complete and still merge.
type Scheduler struct {
  deps Dependencies

  mu       sync.Mutex
  interval time.Duration
  stop     chan struct{}
}

type Dependencies struct {
  Refresher Refresher
}

func NewScheduler(interval time.Duration, deps Dependencies) *Scheduler {
  return &Scheduler{
    deps:     deps,
    interval: ClampInterval(interval),
  }
}

// Start launches the timer loop and triggers one eager refresh.
// Calling Start on a running scheduler is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
  s.mu.Lock()
  defer s.mu.Unlock()

  if s.stop != nil {
    return
  }
  s.stop = make(chan struct{})

  log.
    WithField("interval", s.interval).
    Info("scheduler: auto-refresh started")

  go s.run(ctx, s.interval, s.stop, true)
}

func (s *Scheduler) run(ctx context.Context, interval time.Duration, stop chan struct{}, eager bool) {
  if eager {
    s.deps.Refresher.Refresh(ctx)
  }

  ticker := time.NewTicker(interval)
  defer ticker.Stop()

  for {
    select {
    case <-ctx.Done():
      log.Warn("scheduler: context cancelled: auto-refresh stopped")
      return

    case <-stop:
      return

    case <-ticker.C:
      s.deps.Refresher.Refresh(ctx)
    }
  }
}

func (s *Scheduler) Stop() {
  s.mu.Lock()
  defer s.mu.Unlock()

  if s.stop == nil {
    return
  }

  close(s.stop)
  s.stop = nil

  log.Info("scheduler: auto-refresh stopped")
}

// SetInterval re-arms the timer with the clamped interval. A running
// scheduler restarts its loop; a stopped one just records the value.
func (s *Scheduler) SetInterval(ctx context.Context, interval time.Duration) {
  interval = ClampInterval(interval)

  s.mu.Lock()
  defer s.mu.Unlock()

  s.interval = interval

  if s.stop == nil {
    return
  }

  close(s.stop)
  s.stop = make(chan struct{})

  go s.run(ctx, s.interval, s.stop, false)
}

func (s *Scheduler) Running() bool {
  s.mu.Lock()
  defer s.mu.Unlock()

  return s.stop != nil
}

func (s *Scheduler) Interval() time.Duration {
  s.mu.Lock()
  defer s.mu.Unlock()

  return s.interval
}

func ClampInterval(interval time.Duration) time.Duration {
  min := models.MinRefreshIntervalMinutes * time.Minute
  max := models.MaxRefreshIntervalMinutes * time.Minute

  if interval < min {
    return min
  }
  if interval > max {
    return max
  }
  return interval
}
