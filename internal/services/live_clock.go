package services

import (
	"context"
	"sync"
	"time"
)

// ClockInterval is the refresh period of the live timestamp field
const ClockInterval = time.Second

// LiveClock delivers ticks until stopped. Ticks are coalesced: a slow reader
// only ever sees the most recent one. The channel is closed once the clock stops.
type LiveClock struct {
	cancel context.CancelFunc
	done   chan struct{}
	ticks  chan time.Time
}

// StartLiveClock starts a clock that ticks every interval until ctx is done or Stop is called
func StartLiveClock(ctx context.Context, interval time.Duration) *LiveClock {
	ctx, cancel := context.WithCancel(ctx)
	c := &LiveClock{
		cancel: cancel,
		done:   make(chan struct{}),
		ticks:  make(chan time.Time, 1),
	}

	go c.run(ctx, interval)
	return c
}

func (c *LiveClock) run(ctx context.Context, interval time.Duration) {
	defer close(c.done)
	defer close(c.ticks)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			// Drop an unread tick so the newest one wins
			select {
			case <-c.ticks:
			default:
			}
			select {
			case c.ticks <- t:
			default:
			}
		}
	}
}

// Ticks returns the tick channel
func (c *LiveClock) Ticks() <-chan time.Time {
	return c.ticks
}

// Stop cancels the clock and waits for its goroutine to exit. Safe to call repeatedly.
func (c *LiveClock) Stop() {
	c.cancel()
	<-c.done
}

// LiveClockSlot holds at most one running clock
type LiveClockSlot struct {
	clock    *LiveClock
	interval time.Duration
	mu       sync.Mutex
}

// NewLiveClockSlot creates an empty slot. A zero interval uses ClockInterval.
func NewLiveClockSlot(interval time.Duration) *LiveClockSlot {
	if interval <= 0 {
		interval = ClockInterval
	}
	return &LiveClockSlot{interval: interval}
}

// Start stops the current clock, if any, and starts a new one
func (s *LiveClockSlot) Start(ctx context.Context) *LiveClock {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clock != nil {
		s.clock.Stop()
	}
	s.clock = StartLiveClock(ctx, s.interval)
	return s.clock
}

// Current returns the running clock or nil
func (s *LiveClockSlot) Current() *LiveClock {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock
}

// Stop releases the running clock
func (s *LiveClockSlot) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clock != nil {
		s.clock.Stop()
		s.clock = nil
	}
}
