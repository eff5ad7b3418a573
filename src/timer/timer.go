package timer

import (
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Scheduler runs a callback once after a delay. There is no handle to cancel it.
// fn must never run inside Schedule, even for a zero delay: callers schedule while
// holding state that fn needs, so a synchronous call would deadlock them.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

// Real schedules on the wall clock.
type Real struct{}

func (Real) Schedule(delay time.Duration, fn func()) {
	time.AfterFunc(delay, func() {
		slog.Debug("Timer timed out", "delay", delay)
		fn()
	})
}

type task struct {
	due time.Duration
	seq int
	fn  func()
}

// Manual is a virtual clock. Callbacks only fire from Advance, on the caller's goroutine.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []task
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Schedule(delay time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append(m.tasks, task{due: m.now + delay, seq: m.seq, fn: fn})
	m.seq++
}

// Advance moves the clock forward by d and runs every callback that became due,
// earliest first. Callbacks scheduled while advancing are run too if they fall
// inside the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next, ok := m.popDue(target)
		if !ok {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.due
		m.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of callbacks that have not fired yet.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

func (m *Manual) popDue(target time.Duration) (task, bool) {
	if len(m.tasks) == 0 {
		return task{}, false
	}
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].due != m.tasks[j].due {
			return m.tasks[i].due < m.tasks[j].due
		}
		return m.tasks[i].seq < m.tasks[j].seq
	})
	if m.tasks[0].due > target {
		return task{}, false
	}
	next := m.tasks[0]
	m.tasks = m.tasks[1:]
	return next, true
}
