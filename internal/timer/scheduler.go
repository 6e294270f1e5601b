// Package timer schedules callbacks against the battle clock.
//
// Callbacks are keyed by an absolute game time and fire from Advance in
// (time, scheduling order). Owners cancel their own callbacks explicitly;
// nothing is collected implicitly.
package timer

import "container/heap"

// Handle identifies a scheduled callback.
type Handle uint64

// Group tags callbacks that are cancelled together, e.g. one wave's spawns.
type Group string

type entry struct {
	at     float64
	seq    uint64
	handle Handle
	group  Group
	fn     func(now float64)
	index  int
}

type queue []*entry

func (q queue) Len() int { return len(q) }
func (q queue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}
func (q queue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}
func (q *queue) Push(x any) {
	e := x.(*entry)
	e.index = len(*q)
	*q = append(*q, e)
}
func (q *queue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}

// Scheduler owns the game clock and the pending callbacks.
type Scheduler struct {
	now     float64
	seq     uint64
	pending queue
	byID    map[Handle]*entry
}

func NewScheduler() *Scheduler {
	return &Scheduler{byID: make(map[Handle]*entry)}
}

// Now is the current game time in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// At schedules fn at absolute time at. Times in the past fire on the next Advance.
func (s *Scheduler) At(at float64, group Group, fn func(now float64)) Handle {
	s.seq++
	e := &entry{at: at, seq: s.seq, handle: Handle(s.seq), group: group, fn: fn}
	heap.Push(&s.pending, e)
	s.byID[e.handle] = e
	return e.handle
}

// After schedules fn delay seconds from now.
func (s *Scheduler) After(delay float64, group Group, fn func(now float64)) Handle {
	if delay < 0 {
		delay = 0
	}
	return s.At(s.now+delay, group, fn)
}

// Cancel removes a pending callback. Returns false if it already fired.
func (s *Scheduler) Cancel(h Handle) bool {
	e, ok := s.byID[h]
	if !ok {
		return false
	}
	heap.Remove(&s.pending, e.index)
	delete(s.byID, h)
	return true
}

// CancelGroup removes every pending callback of group and returns how many.
func (s *Scheduler) CancelGroup(group Group) int {
	n := 0
	for h, e := range s.byID {
		if e.group == group {
			heap.Remove(&s.pending, e.index)
			delete(s.byID, h)
			n++
		}
	}
	return n
}

// Pending counts callbacks of group still waiting to fire.
func (s *Scheduler) Pending(group Group) int {
	n := 0
	for _, e := range s.byID {
		if e.group == group {
			n++
		}
	}
	return n
}

// Len is the total number of pending callbacks.
func (s *Scheduler) Len() int {
	return len(s.pending)
}

// Advance moves the clock by dt and fires every callback due by the new time.
func (s *Scheduler) Advance(dt float64) {
	if dt > 0 {
		s.AdvanceTo(s.now + dt)
		return
	}
	s.AdvanceTo(s.now)
}

// AdvanceTo moves the clock to t (never backwards) and fires every callback
// due by then. Callbacks may schedule or cancel others; newly due ones fire
// in the same call.
func (s *Scheduler) AdvanceTo(t float64) {
	if t > s.now {
		s.now = t
	}
	for len(s.pending) > 0 && s.pending[0].at <= s.now {
		e := heap.Pop(&s.pending).(*entry)
		delete(s.byID, e.handle)
		e.fn(s.now)
	}
}
