package main

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	// collinearEps bounds the cross product below which three points are
	// treated as collinear. Coordinates are integer-rounded before any
	// collinearity test, so the cross products are exact in practice.
	collinearEps = 1e-9

	// sliverArea is the smallest loop area still considered a real polygon
	// during self-intersection repair.
	sliverArea = 1e-7
)

// closeRing returns a copy of the ring with the first point repeated at the
// end, the convention the orb planar operations expect.
func closeRing(ring orb.Ring) orb.Ring {
	out := make(orb.Ring, len(ring), len(ring)+1)
	copy(out, ring)
	if len(out) > 0 && out[0] != out[len(out)-1] {
		out = append(out, out[0])
	}
	return out
}

// openRing strips a repeated closing point, the representation used
// everywhere outside the orb calls.
func openRing(ring orb.Ring) orb.Ring {
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		return ring[:len(ring)-1]
	}
	return ring
}

// dedupeRing drops consecutive duplicate vertices, including duplicates
// across the implicit closing edge.
func dedupeRing(ring orb.Ring) orb.Ring {
	if len(ring) == 0 {
		return ring
	}
	out := make(orb.Ring, 0, len(ring))
	for _, p := range ring {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

func roundPoint(p orb.Point) orb.Point {
	return orb.Point{math.Round(p[0]), math.Round(p[1])}
}

func roundRing(ring orb.Ring) orb.Ring {
	out := make(orb.Ring, len(ring))
	for i, p := range ring {
		out[i] = roundPoint(p)
	}
	return out
}

// ringArea returns the absolute enclosed area of the implicitly closed ring.
func ringArea(ring orb.Ring) float64 {
	if len(ring) < 3 {
		return 0
	}
	return math.Abs(planar.Area(closeRing(ring)))
}

// direction calculates the cross product to determine orientation
func direction(p1, p2, p3 orb.Point) float64 {
	return (p3[0]-p1[0])*(p2[1]-p1[1]) - (p2[0]-p1[0])*(p3[1]-p1[1])
}

// onSegment checks if point q lies on segment pr
func onSegment(p, r, q orb.Point) bool {
	return q[0] <= math.Max(p[0], r[0]) && q[0] >= math.Min(p[0], r[0]) &&
		q[1] <= math.Max(p[1], r[1]) && q[1] >= math.Min(p[1], r[1])
}

// segmentsIntersect checks if segments p1-p2 and p3-p4 intersect. Segments
// that share an endpoint are not considered intersecting; neighboring ring
// edges always share a vertex.
func segmentsIntersect(p1, p2, p3, p4 orb.Point) bool {
	if (p1 == p3 && p2 == p4) || (p1 == p4 && p2 == p3) {
		return false
	}
	if p1 == p3 || p1 == p4 || p2 == p3 || p2 == p4 {
		return false
	}

	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Check for collinear cases
	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}

	return false
}

// segmentIntersectionPoint returns the crossing point of two properly
// intersecting segments. Parallel or collinear segments have no single
// crossing point and report false.
func segmentIntersectionPoint(p1, p2, p3, p4 orb.Point) (orb.Point, bool) {
	d := (p2[0]-p1[0])*(p4[1]-p3[1]) - (p2[1]-p1[1])*(p4[0]-p3[0])
	if math.Abs(d) < collinearEps {
		return orb.Point{}, false
	}
	t := ((p3[0]-p1[0])*(p4[1]-p3[1]) - (p3[1]-p1[1])*(p4[0]-p3[0])) / d
	return orb.Point{p1[0] + t*(p2[0]-p1[0]), p1[1] + t*(p2[1]-p1[1])}, true
}

// ringSelfIntersects tests every non-adjacent edge pair of the implicitly
// closed ring. O(n²) over edges, fine for simplified province outlines.
func ringSelfIntersects(ring orb.Ring) bool {
	n := len(ring)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a1, a2 := ring[i], ring[(i+1)%n]
		for j := i + 1; j < n; j++ {
			b1, b2 := ring[j], ring[(j+1)%n]
			if segmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

// segmentCrossing returns the parameters of the crossing of a1-a2 with
// b1-b2 along each segment. ok is false for parallel or collinear segments
// and for crossings outside either segment's span.
func segmentCrossing(a1, a2, b1, b2 orb.Point) (t, u float64, ok bool) {
	d := (a2[0]-a1[0])*(b2[1]-b1[1]) - (a2[1]-a1[1])*(b2[0]-b1[0])
	if math.Abs(d) < collinearEps {
		return 0, 0, false
	}
	t = ((b1[0]-a1[0])*(b2[1]-b1[1]) - (b1[1]-a1[1])*(b2[0]-b1[0])) / d
	u = ((b1[0]-a1[0])*(a2[1]-a1[1]) - (b1[1]-a1[1])*(a2[0]-a1[0])) / d
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, 0, false
	}
	return t, u, true
}

// pointOnBoundary reports whether p lies on an edge of any loop.
func pointOnBoundary(p orb.Point, loops []orb.Ring) bool {
	for _, loop := range loops {
		n := len(loop)
		for i := 0; i < n; i++ {
			a, b := loop[i], loop[(i+1)%n]
			if math.Abs(direction(a, b, p)) <= collinearEps && onSegment(a, b, p) {
				return true
			}
		}
	}
	return false
}

// pointStrictlyInside reports whether p lies in the interior of the region
// the loops enclose under the even-odd rule. Boundary points do not count.
func pointStrictlyInside(p orb.Point, loops []orb.Ring) bool {
	if pointOnBoundary(p, loops) {
		return false
	}
	in := false
	for _, loop := range loops {
		if planar.RingContains(loop, p) {
			in = !in
		}
	}
	return in
}

// collinearOverlapLength returns the length of the collinear overlap between
// segments a1-a2 and b1-b2, or 0 when they do not lie on the same line.
func collinearOverlapLength(a1, a2, b1, b2 orb.Point) float64 {
	if math.Abs(direction(a1, a2, b1)) > collinearEps ||
		math.Abs(direction(a1, a2, b2)) > collinearEps {
		return 0
	}

	dx := a2[0] - a1[0]
	dy := a2[1] - a1[1]
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0
	}
	ux, uy := dx/length, dy/length

	// Arc-length coordinates of b's endpoints along a.
	t1 := (b1[0]-a1[0])*ux + (b1[1]-a1[1])*uy
	t2 := (b2[0]-a1[0])*ux + (b2[1]-a1[1])*uy
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	lo := math.Max(0, t1)
	hi := math.Min(length, t2)
	if hi <= lo {
		return 0
	}
	return hi - lo
}
