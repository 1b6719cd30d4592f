package application

import "time"

const (
	DefaultDedupeWindow    = 30 * time.Second
	DefaultDedupeHighWater = 100
)

// DedupeCache suppresses re-display of a message inside a time window.
// Entries older than twice the window are pruned once the cache grows past
// its high-water mark. Not safe for concurrent use.
type DedupeCache struct {
	window    time.Duration
	highWater int
	shown     map[string]time.Time
}

func NewDedupeCache(window time.Duration, highWater int) *DedupeCache {
	if window <= 0 {
		window = DefaultDedupeWindow
	}
	if highWater <= 0 {
		highWater = DefaultDedupeHighWater
	}

	return &DedupeCache{
		window:    window,
		highWater: highWater,
		shown:     map[string]time.Time{},
	}
}

func (c *DedupeCache) ShouldShow(message string, now time.Time) bool {
	last, ok := c.shown[message]
	if !ok {
		return true
	}

	return now.Sub(last) > c.window
}

func (c *DedupeCache) Record(message string, now time.Time) {
	c.shown[message] = now
	if len(c.shown) > c.highWater {
		c.Prune(now)
	}
}

// Prune drops entries older than twice the window and returns how many were
// removed.
func (c *DedupeCache) Prune(now time.Time) int {
	maxAge := 2 * c.window
	removed := 0
	for message, last := range c.shown {
		if now.Sub(last) > maxAge {
			delete(c.shown, message)
			removed++
		}
	}

	return removed
}

func (c *DedupeCache) Len() int {
	return len(c.shown)
}
