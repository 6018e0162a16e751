// Package scheduler implements the single-threaded, cooperative,
// virtual-time discrete-event core the simulator runs on. Every Router,
// and the latency of every link between them, is driven by one Scheduler.
package scheduler

import (
	"container/heap"
	"log"
	"sync"
)

// Time is virtual simulation time, in the same units as link latency.
type Time float64

// Action is a unit of work the scheduler delivers at a scheduled Time.
type Action func(now Time)

// event is one entry in the scheduler's priority queue.
type event struct {
	at       Time
	sequence uint64
	action   Action
}

// eventQueue implements heap.Interface ordered by (at, sequence), giving
// the deterministic tiebreak spec.md requires for events sharing a time.
type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }
func (q eventQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].sequence < q[j].sequence
}
func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *eventQueue) Push(x any)   { *q = append(*q, x.(*event)) }
func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}

// Scheduler is the virtual-time discrete-event loop. Its queue and clock
// are guarded by an internal mutex, but actions run outside that lock, one
// at a time, on the goroutine that calls Run; the simulation model is
// single-threaded cooperative execution (spec.md §5).
type Scheduler struct {
	mu    sync.Mutex
	now   Time
	seq   uint64
	queue eventQueue
}

// New creates an empty Scheduler at time zero.
func New() *Scheduler {
	s := &Scheduler{}
	heap.Init(&s.queue)
	return s
}

// Now returns the scheduler's current virtual time.
func (s *Scheduler) Now() Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// After schedules action to run at Now()+delta. delta must be >= 0.
func (s *Scheduler) After(delta Time, action Action) {
	if delta < 0 {
		log.Panicf("time:%.4f scheduler: negative delay %v", s.Now(), delta)
	}
	s.mu.Lock()
	e := &event{at: s.now + delta, sequence: s.seq, action: action}
	s.seq++
	heap.Push(&s.queue, e)
	s.mu.Unlock()
}

// Run drains events with at <= limit, advancing Now() as it goes. Actions
// scheduled by other actions while Run executes are themselves drained if
// their time falls within the same limit, so Run converges a bounded
// simulation to quiescence (or to limit, whichever comes first).
func (s *Scheduler) Run(limit Time) {
	for {
		s.mu.Lock()
		if s.queue.Len() == 0 {
			s.mu.Unlock()
			return
		}
		next := s.queue[0]
		if next.at > limit {
			s.mu.Unlock()
			return
		}
		e := heap.Pop(&s.queue).(*event)
		s.now = e.at
		s.mu.Unlock()

		e.action(e.at)
	}
}

// Pending reports whether any event remains in the queue.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Len() > 0
}

// Logf logs a message in the "time:{t:.4f} ..." format spec.md §6 mandates.
func Logf(now Time, format string, args ...any) {
	log.Printf("time:%.4f "+format, append([]any{float64(now)}, args...)...)
}
