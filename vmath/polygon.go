package vmath

import (
	"math"
)

// SegmentDistance returns the distance from p to the closed segment ab
func SegmentDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Dist(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = Clamp(t, 0, 1)
	return Dist(p, Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

// PolylineDistance returns the minimum distance from p to the open polyline through pts
// Returns +Inf for an empty polyline
func PolylineDistance(p Point, pts []Point) float64 {
	switch len(pts) {
	case 0:
		return math.Inf(1)
	case 1:
		return Dist(p, pts[0])
	}
	best := math.Inf(1)
	for i := 1; i < len(pts); i++ {
		if d := SegmentDistance(p, pts[i-1], pts[i]); d < best {
			best = d
		}
	}
	return best
}

// PolygonContains checks if p is inside the closed polygon using the even-odd rule
// Polygons with fewer than three vertices have no interior
func PolygonContains(p Point, poly []Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// PolygonSignedDistance measures p against the closed polygon formed by poly,
// including the closing edge from the last vertex back to the first.
// The result is positive inside, negative outside and zero on an edge.
// ok is false when poly has no vertices.
func PolygonSignedDistance(p Point, poly []Point) (d float64, ok bool) {
	n := len(poly)
	if n == 0 {
		return 0, false
	}

	d = Dist(p, poly[0])
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		if e := SegmentDistance(p, poly[j], poly[i]); e < d {
			d = e
		}
	}
	if d == 0 {
		return 0, true
	}
	if PolygonContains(p, poly) {
		return d, true
	}
	return -d, true
}
