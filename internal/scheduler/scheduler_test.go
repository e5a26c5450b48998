package scheduler

import (
  "context"
  "sync/atomic"
  "testing"
  "time"
)

type countingRefresher struct {
  count atomic.Int64
}

func (r *countingRefresher) Refresh(_ context.Context) {
  r.count.Add(1)
}

func waitForRefreshes(t *testing.T, r *countingRefresher, want int64) {
  t.Helper()

  deadline := time.Now().Add(2 * time.Second)
  for time.Now().Before(deadline) {
    if r.count.Load() >= want {
      return
    }
    time.Sleep(10 * time.Millisecond)
  }

  t.Fatalf("refresh count = %d after deadline; want at least %d", r.count.Load(), want)
}

func TestClampInterval(t *testing.T) {
  tests := []struct {
    interval time.Duration
    want     time.Duration
  }{
    {0, time.Minute},
    {30 * time.Second, time.Minute},
    {5 * time.Minute, 5 * time.Minute},
    {60 * time.Minute, 60 * time.Minute},
    {90 * time.Minute, 60 * time.Minute},
  }

  for _, tt := range tests {
    if got := ClampInterval(tt.interval); got != tt.want {
      t.Errorf("ClampInterval(%v) = %v; want %v", tt.interval, got, tt.want)
    }
  }
}

func TestSchedulerStartTriggersEagerRefresh(t *testing.T) {
  refresher := new(countingRefresher)

  s := NewScheduler(time.Minute, Dependencies{Refresher: refresher})

  ctx, cancel := context.WithCancel(context.Background())
  defer cancel()

  s.Start(ctx)
  defer s.Stop()

  if !s.Running() {
    t.Fatal("Running = false after Start")
  }

  waitForRefreshes(t, refresher, 1)
}

func TestSchedulerStartTwiceIsNoop(t *testing.T) {
  refresher := new(countingRefresher)

  s := NewScheduler(time.Minute, Dependencies{Refresher: refresher})

  ctx, cancel := context.WithCancel(context.Background())
  defer cancel()

  s.Start(ctx)
  defer s.Stop()

  waitForRefreshes(t, refresher, 1)

  s.Start(ctx)

  // A second loop would run a second eager refresh.
  time.Sleep(50 * time.Millisecond)
  if got := refresher.count.Load(); got != 1 {
    t.Fatalf("refresh count = %d after double Start; want 1", got)
  }
}

func TestSchedulerStopIsIdempotent(t *testing.T) {
  refresher := new(countingRefresher)

  s := NewScheduler(time.Minute, Dependencies{Refresher: refresher})

  ctx, cancel := context.WithCancel(context.Background())
  defer cancel()

  s.Start(ctx)
  s.Stop()
  s.Stop()

  if s.Running() {
    t.Fatal("Running = true after Stop")
  }
}

func TestSchedulerSetIntervalClampsAndKeepsValueWhenStopped(t *testing.T) {
  s := NewScheduler(5*time.Minute, Dependencies{Refresher: new(countingRefresher)})

  s.SetInterval(context.Background(), 90*time.Minute)

  if got := s.Interval(); got != 60*time.Minute {
    t.Fatalf("Interval = %v; want 60m", got)
  }
  if s.Running() {
    t.Fatal("SetInterval on a stopped scheduler started it")
  }
}

func TestSchedulerSetIntervalDoesNotEagerRefresh(t *testing.T) {
  refresher := new(countingRefresher)

  s := NewScheduler(time.Minute, Dependencies{Refresher: refresher})

  ctx, cancel := context.WithCancel(context.Background())
  defer cancel()

  s.Start(ctx)
  defer s.Stop()

  waitForRefreshes(t, refresher, 1)

  s.SetInterval(ctx, 2*time.Minute)

  time.Sleep(50 * time.Millisecond)
  if got := refresher.count.Load(); got != 1 {
    t.Fatalf("refresh count = %d after SetInterval; want 1: re-arming must not refresh", got)
  }
}
