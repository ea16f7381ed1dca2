package geometry

import (
	"math"
	"sort"
	"sync"
)

type vertex struct {
	x, y float64
}

// PolygonTracker accumulates checked point coordinates and reports the area
// of the polygon they span. Safe for concurrent use.
type PolygonTracker struct {
	mu     sync.Mutex
	points []vertex
}

func NewPolygonTracker() *PolygonTracker {
	return &PolygonTracker{}
}

// Add appends a point to the polygon.
func (p *PolygonTracker) Add(x, y float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.points = append(p.points, vertex{x: x, y: y})
}

// Area returns the area of the polygon formed by the added points, ordered
// by angle around their centroid and evaluated with the shoelace formula.
// Fewer than three points span no area.
func (p *PolygonTracker) Area() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := len(p.points)
	if n < 3 {
		return 0
	}

	var cx, cy float64
	for _, pt := range p.points {
		cx += pt.x
		cy += pt.y
	}
	cx /= float64(n)
	cy /= float64(n)

	sort.Slice(p.points, func(i, j int) bool {
		ai := math.Atan2(p.points[i].y-cy, p.points[i].x-cx)
		aj := math.Atan2(p.points[j].y-cy, p.points[j].x-cx)
		if ai != aj {
			return ai < aj
		}
		return math.Hypot(p.points[i].x-cx, p.points[i].y-cy) < math.Hypot(p.points[j].x-cx, p.points[j].y-cy)
	})

	var acc float64
	for i := 0; i < n; i++ {
		p1 := p.points[i]
		p2 := p.points[(i+1)%n]
		acc += p1.x*p2.y - p2.x*p1.y
	}
	return math.Abs(acc / 2)
}

// Count returns the number of added points.
func (p *PolygonTracker) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.points)
}

// Clear removes all points.
func (p *PolygonTracker) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.points = nil
}
