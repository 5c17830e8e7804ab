package flipdeck

import "time"

// Timer is a callback scheduled on a Scheduler.
type Timer struct {
	due     time.Duration
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// Stop prevents the timer from firing. It reports whether the call stopped
// the timer, false if it had already fired or been stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Active reports whether the timer is still waiting to fire.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped && !t.fired
}

// Scheduler runs callbacks on a virtual timeline advanced by the game loop.
// Callbacks run on the caller's goroutine inside Advance, in due order, with
// ties broken by scheduling order.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	tasks []*Timer
}

// NewScheduler creates a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration { return s.now }

// After schedules fn to run once d has elapsed on the virtual timeline.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	s.seq++
	t := &Timer{due: s.now + max(d, 0), seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Pending returns the number of timers that have neither fired nor stopped.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.Active() {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by dt, firing every timer that falls due.
// Timers scheduled by a firing callback are measured from that callback's due
// time and fire within the same Advance when they fall inside it.
func (s *Scheduler) Advance(dt time.Duration) {
	end := s.now + max(dt, 0)
	for {
		t := s.popDue(end)
		if t == nil {
			break
		}
		s.now = max(s.now, t.due)
		t.fired = true
		t.fn()
	}
	s.now = end
}

// popDue removes and returns the earliest active timer due at or before end.
func (s *Scheduler) popDue(end time.Duration) *Timer {
	best := -1
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.Active() {
			continue
		}
		live = append(live, t)
		if t.due > end {
			continue
		}
		if best < 0 || t.due < live[best].due || (t.due == live[best].due && t.seq < live[best].seq) {
			best = len(live) - 1
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
	if best < 0 {
		return nil
	}
	t := s.tasks[best]
	copy(s.tasks[best:], s.tasks[best+1:])
	s.tasks[len(s.tasks)-1] = nil
	s.tasks = s.tasks[:len(s.tasks)-1]
	return t
}
