// Package stats aggregates per-process counters over checked points.
package stats

import (
	"fmt"
	"sync"
	"time"

	"github.com/ani/point-check-backend/internal/domain"
	"github.com/ani/point-check-backend/internal/geometry"
)

// Display bounds of the plot; points outside are counted as invalid.
const (
	displayMin = -5
	displayMax = 5
)

// Counter tracks how many points were checked, how many fell outside the
// display bounds, and how many missed the target region. All state is
// guarded by a single mutex so each Record is one atomic unit.
type Counter struct {
	mu              sync.Mutex
	totalPoints     int
	invalidPoints   int
	notInAreaPoints int
	sequence        int64

	notifier Notifier
}

func NewCounter(notifier Notifier) *Counter {
	return &Counter{notifier: notifier, sequence: 1}
}

// Record updates the counters for one checked point. A point outside the
// display bounds counts as invalid and emits a notification; otherwise a
// point that missed the target region counts as not-in-area. The two cases
// are mutually exclusive.
func (c *Counter) Record(p *domain.Point) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.totalPoints++

	if outOfDisplayArea(p) {
		c.invalidPoints++
		c.notify(Notification{
			Kind:      NotificationPointOutOfBounds,
			Sequence:  c.sequence,
			Timestamp: time.Now(),
			Message:   fmt.Sprintf("Point (%v, %v) is out of bounds", p.X, p.Y),
		})
	} else if !geometry.InArea(p.X, p.Y, p.R) {
		c.notInAreaPoints++
	}
}

// SendTestNotification emits a synthetic notification without touching the
// counters. Meant for operability checks.
func (c *Counter) SendTestNotification() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notify(Notification{
		Kind:      NotificationPointOutOfBounds,
		Sequence:  c.sequence,
		Timestamp: time.Now(),
		Message:   "Test notification",
	})
}

func (c *Counter) TotalPoints() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPoints
}

func (c *Counter) InvalidPoints() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invalidPoints
}

func (c *Counter) NotInAreaPoints() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notInAreaPoints
}

// notify must be called with the lock held.
func (c *Counter) notify(n Notification) {
	c.sequence++
	if c.notifier != nil {
		c.notifier.Notify(n)
	}
}

func outOfDisplayArea(p *domain.Point) bool {
	return p.X < displayMin || p.X > displayMax || p.Y < displayMin || p.Y > displayMax
}
