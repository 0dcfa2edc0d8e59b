package main

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

const (
	// minSimplifiedVertices is the quality floor: below this the
	// simplification is re-run once at half the requested tolerance.
	minSimplifiedVertices = 6

	// maxToleranceBackoffs caps the halving retries used to restore
	// topological validity.
	maxToleranceBackoffs = 8
)

// SimplifyRing reduces the vertex count of a ring using Douglas-Peucker
// while preserving topology, and rounds the result to integer coordinates.
//
// If decimation at the requested tolerance would produce a self-intersecting
// or collapsed ring, the tolerance is halved and the pass re-run until the
// result is valid. If the result falls below the quality floor, one retry at
// half the requested tolerance is accepted regardless of count. If no valid
// simplification exists at all, the original ring is returned rounded.
// Rounding happens only at this boundary, never inside the simplification.
func SimplifyRing(ring orb.Ring, tolerance float64) orb.Ring {
	if len(ring) < 4 {
		return roundRing(ring)
	}

	simplified, ok := simplifyPreservingTopology(ring, tolerance)
	if !ok {
		return roundRing(ring)
	}

	if len(simplified) < minSimplifiedVertices {
		if retry, ok := simplifyPreservingTopology(ring, tolerance/2); ok {
			simplified = retry
		}
	}

	if out, ok := roundValid(simplified); ok {
		return out
	}

	// Rounding shifts vertices by up to half a unit, which can pinch an
	// otherwise valid ring into a self-intersection. A denser pass keeps
	// the vertices whose removal caused the pinch.
	eps := tolerance / 2
	for attempt := 0; attempt < maxToleranceBackoffs; attempt++ {
		if retry, ok := simplifyPreservingTopology(ring, eps); ok {
			if out, ok := roundValid(retry); ok {
				return out
			}
		}
		eps /= 2
	}
	return roundRing(ring)
}

// roundValid rounds the ring to integer coordinates and reports whether the
// result is still a usable simple ring.
func roundValid(ring orb.Ring) (orb.Ring, bool) {
	out := dedupeRing(roundRing(ring))
	if len(out) < 3 || ringSelfIntersects(out) {
		return nil, false
	}
	return out, true
}

// simplifyPreservingTopology runs Douglas-Peucker on the closed ring and
// backs the tolerance off by halving whenever the decimated ring would
// self-intersect or drop below a triangle.
func simplifyPreservingTopology(ring orb.Ring, tolerance float64) (orb.Ring, bool) {
	eps := tolerance
	for attempt := 0; attempt < maxToleranceBackoffs; attempt++ {
		// closeRing copies, so the in-place orb simplifier never touches
		// the caller's ring.
		result := simplify.DouglasPeucker(eps).Ring(closeRing(ring))
		result = dedupeRing(openRing(result))

		if len(result) >= 3 && !ringSelfIntersects(result) {
			return result, true
		}
		if eps == 0 {
			break
		}
		eps /= 2
	}
	return nil, false
}
