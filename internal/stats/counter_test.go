package stats_test

import (
	"sync"
	"testing"

	"github.com/ani/point-check-backend/internal/domain"
	"github.com/ani/point-check-backend/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier collects emitted notifications for inspection.
type recordingNotifier struct {
	mu            sync.Mutex
	notifications []stats.Notification
}

func (n *recordingNotifier) Notify(notification stats.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, notification)
}

func (n *recordingNotifier) all() []stats.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]stats.Notification(nil), n.notifications...)
}

func point(x, y, r float64) *domain.Point {
	return &domain.Point{X: x, Y: y, R: r}
}

func TestCounter_Record(t *testing.T) {
	tests := []struct {
		name          string
		point         *domain.Point
		wantInvalid   int
		wantNotInArea int
		wantNotified  bool
	}{
		{
			name:         "x beyond display bounds is invalid regardless of r",
			point:        point(6, 0, 100),
			wantInvalid:  1,
			wantNotified: true,
		},
		{
			name:         "y beyond display bounds is invalid",
			point:        point(0, -5.5, 2),
			wantInvalid:  1,
			wantNotified: true,
		},
		{
			name:          "in bounds but outside region",
			point:         point(4, 4, 2),
			wantNotInArea: 1,
		},
		{
			name:  "in bounds and inside region",
			point: point(1, 1, 2),
		},
		{
			name:  "display boundary is still valid",
			point: point(5, 5, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &recordingNotifier{}
			counter := stats.NewCounter(notifier)

			counter.Record(tt.point)

			assert.Equal(t, 1, counter.TotalPoints())
			assert.Equal(t, tt.wantInvalid, counter.InvalidPoints())
			assert.Equal(t, tt.wantNotInArea, counter.NotInAreaPoints())

			if tt.wantNotified {
				require.Len(t, notifier.all(), 1)
				n := notifier.all()[0]
				assert.Equal(t, stats.NotificationPointOutOfBounds, n.Kind)
				assert.Equal(t, int64(1), n.Sequence)
				assert.NotEmpty(t, n.Message)
				assert.False(t, n.Timestamp.IsZero())
			} else {
				assert.Empty(t, notifier.all())
			}
		})
	}
}

func TestCounter_InvalidAndNotInAreaAreExclusive(t *testing.T) {
	counter := stats.NewCounter(nil)

	// Out of bounds and outside the region: only invalid may increment.
	counter.Record(point(6, 6, 1))

	assert.Equal(t, 1, counter.TotalPoints())
	assert.Equal(t, 1, counter.InvalidPoints())
	assert.Equal(t, 0, counter.NotInAreaPoints())
}

func TestCounter_SequenceIncrements(t *testing.T) {
	notifier := &recordingNotifier{}
	counter := stats.NewCounter(notifier)

	counter.Record(point(6, 0, 1))
	counter.Record(point(-6, 0, 1))

	notifications := notifier.all()
	require.Len(t, notifications, 2)
	assert.Equal(t, int64(1), notifications[0].Sequence)
	assert.Equal(t, int64(2), notifications[1].Sequence)
}

func TestCounter_SendTestNotification(t *testing.T) {
	notifier := &recordingNotifier{}
	counter := stats.NewCounter(notifier)

	counter.SendTestNotification()

	require.Len(t, notifier.all(), 1)
	assert.Equal(t, 0, counter.TotalPoints())
	assert.Equal(t, 0, counter.InvalidPoints())
	assert.Equal(t, 0, counter.NotInAreaPoints())

	// The synthetic event consumes a sequence number.
	counter.Record(point(6, 0, 1))
	assert.Equal(t, int64(2), notifier.all()[1].Sequence)
}

func TestCounter_ConcurrentRecord(t *testing.T) {
	counter := stats.NewCounter(&recordingNotifier{})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				counter.Record(point(6, 0, 1)) // invalid
			} else {
				counter.Record(point(4, 4, 1)) // not in area
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, counter.TotalPoints())
	assert.Equal(t, 50, counter.InvalidPoints())
	assert.Equal(t, 50, counter.NotInAreaPoints())
}

func TestBroadcaster_FanOut(t *testing.T) {
	b := stats.NewBroadcaster()
	sub1 := b.Subscribe()
	sub2 := b.Subscribe()

	b.Notify(stats.Notification{Kind: stats.NotificationPointOutOfBounds, Sequence: 1})

	assert.Equal(t, int64(1), (<-sub1).Sequence)
	assert.Equal(t, int64(1), (<-sub2).Sequence)

	b.Unsubscribe(sub1)
	_, open := <-sub1
	assert.False(t, open, "unsubscribed channel must be closed")

	// Remaining subscriber still receives.
	b.Notify(stats.Notification{Sequence: 2})
	assert.Equal(t, int64(2), (<-sub2).Sequence)
}
