package testutil

import (
	"sort"
	"sync"
	"time"

	"github.com/mcarrasqub/itimer/internal/ports"
)

// ManualClock is a ports.Clock whose time only moves on Advance. Timer
// callbacks run synchronously on the goroutine calling Advance.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*manualTimer
}

var _ ports.Clock = (*ManualClock)(nil)

type manualTimer struct {
	clock *ManualClock
	when  time.Time
	seq   int
	f     func()
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) AfterFunc(d time.Duration, f func()) ports.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &manualTimer{clock: c, when: c.now.Add(d), seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Pending reports how many timers are armed.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Advance moves time forward by d, firing every timer that comes due in
// deadline order, including timers armed by callbacks during the advance.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.popDueLocked(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.when
		c.mu.Unlock()

		next.f()
	}
}

func (c *ManualClock) popDueLocked(target time.Time) *manualTimer {
	if len(c.timers) == 0 {
		return nil
	}

	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].when.Equal(c.timers[j].when) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].when.Before(c.timers[j].when)
	})

	first := c.timers[0]
	if first.when.After(target) {
		return nil
	}
	c.timers = c.timers[1:]
	return first
}

func (t *manualTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, pending := range c.timers {
		if pending == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}
