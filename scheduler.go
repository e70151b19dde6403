package swiper

import "time"

// TaskKind names a deferred action. Each kind has a single slot: scheduling
// a task cancels the pending task of the same kind.
type TaskKind uint8

const (
	TaskAutoplay    TaskKind = iota // Advance to the next item
	TaskSnapBack                    // Jump from a settled clone to its real item
	TaskContentSync                 // Apply the offset required after a rebuild
	taskKindCount
)

var taskKindNames = [taskKindCount]string{
	TaskAutoplay:    "autoplay",
	TaskSnapBack:    "snapBack",
	TaskContentSync: "contentSync",
}

// String returns the task kind name.
func (k TaskKind) String() string {
	if k < taskKindCount {
		return taskKindNames[k]
	}
	return "unknown"
}

type task struct {
	due    time.Duration
	seq    uint64
	fn     func()
	active bool
}

// Scheduler runs deferred actions on the host's event loop. It has no
// goroutines: the host advances it with the frame delta, like toast and
// smooth-scroll timers, and due tasks run inside Advance.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	slots [taskKindCount]task
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's elapsed time.
func (s *Scheduler) Now() time.Duration { return s.now }

// Schedule runs fn after delay, replacing any pending task of the same kind.
func (s *Scheduler) Schedule(kind TaskKind, delay time.Duration, fn func()) {
	if kind >= taskKindCount || fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.slots[kind] = task{due: s.now + delay, seq: s.seq, fn: fn, active: true}
}

// Cancel drops the pending task of a kind.
func (s *Scheduler) Cancel(kind TaskKind) {
	if kind < taskKindCount {
		s.slots[kind] = task{}
	}
}

// CancelAll drops every pending task.
func (s *Scheduler) CancelAll() {
	for k := range s.slots {
		s.slots[k] = task{}
	}
}

// Pending reports whether a task of the kind is waiting.
func (s *Scheduler) Pending(kind TaskKind) bool {
	return kind < taskKindCount && s.slots[kind].active
}

// Remaining returns the time until the task of the kind is due.
func (s *Scheduler) Remaining(kind TaskKind) (time.Duration, bool) {
	if !s.Pending(kind) {
		return 0, false
	}
	return s.slots[kind].due - s.now, true
}

// Advance moves time forward by dt and runs every task that falls due, in
// due order. Tasks scheduled by a running task fire in the same call when
// they fall due before the new time.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	for {
		next := -1
		for k := range s.slots {
			t := &s.slots[k]
			if !t.active || t.due > target {
				continue
			}
			if next < 0 || t.due < s.slots[next].due ||
				(t.due == s.slots[next].due && t.seq < s.slots[next].seq) {
				next = k
			}
		}
		if next < 0 {
			break
		}
		t := s.slots[next]
		s.slots[next] = task{}
		if t.due > s.now {
			s.now = t.due
		}
		t.fn()
	}
	s.now = target
}
