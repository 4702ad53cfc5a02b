// Package rotation cycles the focus over the ordered groups on a wall-clock
// period.
//
// The Scheduler owns no timer. Hosts call Tick from their own periodic
// callback, so the focus index is the only state and it has one writer.
package rotation

import "time"

// DefaultPeriod is how long each group stays in focus.
const DefaultPeriod = 2 * time.Second

type Scheduler struct {
	count   int
	index   int
	stopped bool
	gen     int
}

// New starts focused on the first of count groups.
func New(count int) *Scheduler {
	if count < 0 {
		count = 0
	}
	return &Scheduler{count: count}
}

func (s *Scheduler) Index() int { return s.index }

func (s *Scheduler) Count() int { return s.count }

// Tick moves the focus to the next group, wrapping after the last one. It
// reports false and leaves the index alone once stopped or when there is
// nothing to rotate over.
func (s *Scheduler) Tick() (int, bool) {
	if s.stopped || s.count == 0 {
		return s.index, false
	}
	s.index = (s.index + 1) % s.count
	return s.index, true
}

// Stop ends advancement. Calling it again is a no-op.
func (s *Scheduler) Stop() { s.stopped = true }

func (s *Scheduler) Stopped() bool { return s.stopped }

// Resume re-arms a stopped scheduler and starts a new generation. Timer
// callbacks scheduled under an older generation must be dropped by the host.
func (s *Scheduler) Resume() int {
	if s.stopped {
		s.stopped = false
		s.gen++
	}
	return s.gen
}

// Generation identifies the current arming of the scheduler.
func (s *Scheduler) Generation() int { return s.gen }

// Current reports whether a timer scheduled under gen may still advance the
// focus.
func (s *Scheduler) Current(gen int) bool {
	return !s.stopped && gen == s.gen
}
