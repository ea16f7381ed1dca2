// Package geometry implements the target-region membership check and the
// polygon area tracker fed by checked points.
package geometry

// InArea reports whether the point (x, y) lies within the target region
// defined by parameter r. The region is the union of three shapes, all with
// inclusive boundaries:
//
//   - the square quadrant 0 <= x <= r, 0 <= y <= r
//   - the quarter disk x >= 0, y <= 0, x^2+y^2 <= r^2
//   - the triangle x <= 0, x >= -r, 0 <= y <= r/2, y <= x/2 + r/2
//
// r is not validated; r <= 0 degenerates to an empty region.
func InArea(x, y, r float64) bool {
	if x >= 0 && x <= r && y >= 0 && y <= r {
		return true
	}

	if x >= 0 && y <= 0 && x*x+y*y <= r*r {
		return true
	}

	if x <= 0 && x >= -r && y >= 0 && y <= r/2 && y <= x/2+r/2 {
		return true
	}

	return false
}
