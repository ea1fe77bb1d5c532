// Package schedule debounces layout recomputation.
//
// Containers resize in bursts; recomputing on every intermediate frame wastes
// a full layout pass per frame. A Scheduler holds exactly one pending request
// and fires it once the burst goes quiet: each Schedule call replaces whatever
// was pending and restarts the delay.
package schedule

import (
	"sync"
	"time"

	"github.com/kulturkompass/wortwolke/pkg/cloud"
)

// DefaultDelay is the debounce window applied when New receives zero.
const DefaultDelay = 150 * time.Millisecond

// Request is one pending layout computation.
type Request struct {
	Items     []cloud.Item
	Container cloud.Container
	Config    cloud.Config
}

// Scheduler coalesces bursts of layout requests into a single fire.
// All methods are safe for concurrent use.
type Scheduler struct {
	mu     sync.Mutex
	delay  time.Duration
	fn     func(Request)
	timer  *time.Timer
	closed bool
}

// New creates a Scheduler that invokes fn with the surviving request after
// the debounce delay elapses without a replacement. fn runs on the timer's
// goroutine.
func New(delay time.Duration, fn func(Request)) *Scheduler {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Scheduler{delay: delay, fn: fn}
}

// Schedule queues req, replacing any pending request and restarting the
// debounce window. Calls after Close are ignored.
func (s *Scheduler) Schedule(req Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() { s.fn(req) })
}

// CancelPending drops the pending request, if any, without firing it.
func (s *Scheduler) CancelPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Close cancels any pending request and rejects future ones.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
