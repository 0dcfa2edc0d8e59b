package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// DefaultMinSharedBorder is the minimum shared boundary length (in
// coordinate units) two provinces must have to count as neighbors. The
// value matches the scale of integer-rounded SVG user-space maps; callers
// working at other scales should override it.
const DefaultMinSharedBorder = 1.0

// maxRepairDepth caps the recursive splitting during self-intersection
// repair.
const maxRepairDepth = 16

// AdjacencyOptions configures the detection pass.
type AdjacencyOptions struct {
	// MinSharedBorder filters out polygons that merely touch at a point
	// or share a negligible sliver. Zero or negative selects the default.
	MinSharedBorder float64
}

// AdjacencyReport carries the structured counts of a detection pass for the
// caller to render.
type AdjacencyReport struct {
	Excluded    int // provinces whose boundary could not be constructed
	Repaired    int // provinces whose ring needed self-intersection repair
	PairsTested int
	Registered  int // unordered pairs registered as neighbors
}

// DetectNeighbors builds the symmetric adjacency graph over the provinces'
// simplified rings. Two provinces are neighbors iff their boundaries share
// a collinear overlap longer than the configured minimum, or their polygons
// overlap in area with an overlap region of at least that perimeter.
// Single-point contact never qualifies. Provinces whose polygon cannot be
// constructed even after repair are excluded and simply get no neighbors.
func DetectNeighbors(provinces []*Province, opts AdjacencyOptions) (map[string][]string, AdjacencyReport) {
	if opts.MinSharedBorder <= 0 {
		opts.MinSharedBorder = DefaultMinSharedBorder
	}

	var report AdjacencyReport
	neighbors := make(map[string][]string, len(provinces))
	for _, p := range provinces {
		neighbors[p.ID] = []string{}
	}

	entries := make([]*boundaryEntry, 0, len(provinces))
	for i, p := range provinces {
		loops, repaired, err := buildBoundary(p.Coordinates)
		if err != nil {
			report.Excluded++
			continue
		}
		if repaired {
			report.Repaired++
		}
		entries = append(entries, &boundaryEntry{index: i, loops: loops})
	}

	// The R-tree query is a pure bounding-box pre-filter; every candidate
	// pair still goes through the exact shared-border measurement.
	index := newBoundaryIndex(entries)
	for _, entry := range entries {
		for _, other := range index.Candidates(entry) {
			if other.index <= entry.index {
				continue
			}
			report.PairsTested++

			shared := sharedBorderLength(entry.loops, other.loops)
			if shared <= opts.MinSharedBorder {
				// Traced outlines sometimes overlap in area instead of
				// meeting along a shared edge. The perimeter of the
				// overlap region is the measure then.
				shared = math.Max(shared, overlapPerimeter(entry.loops, other.loops))
			}
			if shared > opts.MinSharedBorder {
				a := provinces[entry.index].ID
				b := provinces[other.index].ID
				// Always register both directions together.
				neighbors[a] = append(neighbors[a], b)
				neighbors[b] = append(neighbors[b], a)
				report.Registered++
			}
		}
	}

	for id := range neighbors {
		neighbors[id] = sortedUnique(neighbors[id])
	}
	return neighbors, report
}

// buildBoundary turns a ring into one or more simple loops. Self-crossing
// rings are repaired by splitting at the crossing points, resolving the
// even-odd fill into separate loops and discarding near-zero-area slivers.
// The repaired flag reports whether splitting was necessary.
func buildBoundary(ring orb.Ring) ([]orb.Ring, bool, error) {
	ring = dedupeRing(ring)
	if len(ring) < 3 {
		return nil, false, fmt.Errorf("fewer than 3 distinct vertices")
	}

	if !ringSelfIntersects(ring) {
		if ringArea(ring) < sliverArea {
			return nil, false, fmt.Errorf("degenerate zero-area ring")
		}
		return []orb.Ring{ring}, false, nil
	}

	// The signed area of a self-crossing ring can cancel to zero (a
	// symmetric bow-tie does), so the degeneracy decision is made per
	// repaired loop instead.
	// Splitting can run out of depth or hit a crossing with no single
	// crossing point; loops that still self-intersect are discarded rather
	// than fed into the pair measurements.
	var loops []orb.Ring
	for _, loop := range resolveSelfIntersections(ring, maxRepairDepth) {
		if len(loop) >= 3 && !ringSelfIntersects(loop) && ringArea(loop) >= sliverArea {
			loops = append(loops, loop)
		}
	}
	if len(loops) == 0 {
		return nil, true, fmt.Errorf("ring unrepairable, no valid loop survives")
	}
	return loops, true, nil
}

// resolveSelfIntersections splits the ring at its first crossing into two
// loops and recurses on any part that still crosses itself. A bow-tie
// resolves into its two lobes.
func resolveSelfIntersections(ring orb.Ring, depth int) []orb.Ring {
	if depth <= 0 {
		return []orb.Ring{ring}
	}

	n := len(ring)
	for i := 0; i < n; i++ {
		a1, a2 := ring[i], ring[(i+1)%n]
		for j := i + 1; j < n; j++ {
			b1, b2 := ring[j], ring[(j+1)%n]
			if !segmentsIntersect(a1, a2, b1, b2) {
				continue
			}
			x, ok := segmentIntersectionPoint(a1, a2, b1, b2)
			if !ok {
				continue
			}

			loop1 := orb.Ring{x}
			loop1 = append(loop1, ring[i+1:j+1]...)

			loop2 := orb.Ring{x}
			loop2 = append(loop2, ring[j+1:]...)
			loop2 = append(loop2, ring[:i+1]...)

			var out []orb.Ring
			for _, loop := range []orb.Ring{loop1, loop2} {
				loop = dedupeRing(loop)
				if len(loop) < 3 {
					continue
				}
				if ringSelfIntersects(loop) {
					out = append(out, resolveSelfIntersections(loop, depth-1)...)
				} else {
					out = append(out, loop)
				}
			}
			return out
		}
	}
	return []orb.Ring{ring}
}

// sharedBorderLength measures the total collinear overlap between the edges
// of two boundaries. Crossing contact contributes single points of zero
// length, so only true shared borders accumulate.
func sharedBorderLength(a, b []orb.Ring) float64 {
	total := 0.0
	for _, ra := range a {
		na := len(ra)
		for i := 0; i < na; i++ {
			a1, a2 := ra[i], ra[(i+1)%na]
			for _, rb := range b {
				nb := len(rb)
				for j := 0; j < nb; j++ {
					total += collinearOverlapLength(a1, a2, rb[j], rb[(j+1)%nb])
				}
			}
		}
	}
	return total
}

// overlapPerimeter measures the boundary length of the region where two
// polygons overlap: the portions of each boundary lying strictly inside the
// other. Disjoint or merely touching polygons measure zero, and a province
// fully contained in another contributes its whole perimeter.
func overlapPerimeter(a, b []orb.Ring) float64 {
	return boundaryLengthInside(a, b) + boundaryLengthInside(b, a)
}

func boundaryLengthInside(a, b []orb.Ring) float64 {
	total := 0.0
	for _, ra := range a {
		n := len(ra)
		for i := 0; i < n; i++ {
			total += edgePortionInside(ra[i], ra[(i+1)%n], b)
		}
	}
	return total
}

// edgePortionInside cuts the edge at every crossing with the loops and sums
// the pieces whose midpoint lies strictly inside them.
func edgePortionInside(p1, p2 orb.Point, loops []orb.Ring) float64 {
	cuts := []float64{0, 1}
	for _, loop := range loops {
		n := len(loop)
		for j := 0; j < n; j++ {
			if t, _, ok := segmentCrossing(p1, p2, loop[j], loop[(j+1)%n]); ok && t > 0 && t < 1 {
				cuts = append(cuts, t)
			}
		}
	}
	sort.Float64s(cuts)

	length := math.Hypot(p2[0]-p1[0], p2[1]-p1[1])
	total := 0.0
	for i := 0; i+1 < len(cuts); i++ {
		lo, hi := cuts[i], cuts[i+1]
		if hi-lo < collinearEps {
			continue
		}
		m := (lo + hi) / 2
		mid := orb.Point{p1[0] + m*(p2[0]-p1[0]), p1[1] + m*(p2[1]-p1[1])}
		if pointStrictlyInside(mid, loops) {
			total += (hi - lo) * length
		}
	}
	return total
}

func sortedUnique(ids []string) []string {
	if len(ids) < 2 {
		sort.Strings(ids)
		return ids
	}
	sort.Strings(ids)
	out := ids[:1]
	for _, id := range ids[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}
