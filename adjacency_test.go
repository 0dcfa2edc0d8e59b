package main

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProvince(id string, ring orb.Ring) *Province {
	return &Province{ID: id, Title: id, Coordinates: ring, Neighbors: []string{}}
}

func square(x, y, size float64) orb.Ring {
	return orb.Ring{{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}}
}

func TestDetectNeighborsSharedEdge(t *testing.T) {
	provinces := []*Province{
		testProvince("A", square(0, 0, 10)),
		testProvince("B", square(10, 0, 10)),
	}
	graph, report := DetectNeighbors(provinces, AdjacencyOptions{})
	assert.Equal(t, []string{"B"}, graph["A"])
	assert.Equal(t, []string{"A"}, graph["B"])
	assert.Equal(t, 1, report.Registered)
	assert.Zero(t, report.Excluded)
}

func TestDetectNeighborsCornerTouchOnly(t *testing.T) {
	provinces := []*Province{
		testProvince("A", square(0, 0, 10)),
		testProvince("B", square(10, 10, 10)),
	}
	graph, report := DetectNeighbors(provinces, AdjacencyOptions{})
	assert.Empty(t, graph["A"])
	assert.Empty(t, graph["B"])
	assert.Zero(t, report.Registered)
}

func TestDetectNeighborsPartialEdgeOverlap(t *testing.T) {
	// B's left wall covers only y=3..7 of A's right wall; the shared
	// border is 4 units, well over the default minimum.
	provinces := []*Province{
		testProvince("A", square(0, 0, 10)),
		testProvince("B", orb.Ring{{10, 3}, {20, 3}, {20, 7}, {10, 7}}),
	}
	graph, _ := DetectNeighbors(provinces, AdjacencyOptions{})
	assert.Equal(t, []string{"B"}, graph["A"])
	assert.Equal(t, []string{"A"}, graph["B"])
}

func TestDetectNeighborsRowIsSortedAndSymmetric(t *testing.T) {
	provinces := []*Province{
		testProvince("A", square(0, 0, 10)),
		testProvince("B", square(10, 0, 10)),
		testProvince("C", square(20, 0, 10)),
	}
	graph, _ := DetectNeighbors(provinces, AdjacencyOptions{})
	assert.Equal(t, []string{"B"}, graph["A"])
	assert.Equal(t, []string{"A", "C"}, graph["B"])
	assert.Equal(t, []string{"B"}, graph["C"])
	assertSymmetricNoSelf(t, graph)
}

func TestDetectNeighborsThresholdConfigurable(t *testing.T) {
	// Unit squares share exactly 1.0 units of border, which does not
	// exceed the default minimum of 1.0.
	provinces := []*Province{
		testProvince("A", square(0, 0, 1)),
		testProvince("B", square(1, 0, 1)),
	}
	graph, _ := DetectNeighbors(provinces, AdjacencyOptions{})
	assert.Empty(t, graph["A"])

	graph, _ = DetectNeighbors(provinces, AdjacencyOptions{MinSharedBorder: 0.5})
	assert.Equal(t, []string{"B"}, graph["A"])
	assert.Equal(t, []string{"A"}, graph["B"])
}

func TestDetectNeighborsOverlappingPolygons(t *testing.T) {
	// Traced outlines often overlap slightly instead of meeting along a
	// shared edge. The 1x8 overlap region here has perimeter 18, so the
	// pair registers even though no edges are collinear.
	provinces := []*Province{
		testProvince("A", square(0, 0, 10)),
		testProvince("B", square(9, 2, 10)),
	}
	assert.InDelta(t, 18,
		overlapPerimeter([]orb.Ring{square(0, 0, 10)}, []orb.Ring{square(9, 2, 10)}), 1e-9)

	graph, report := DetectNeighbors(provinces, AdjacencyOptions{})
	assert.Equal(t, []string{"B"}, graph["A"])
	assert.Equal(t, []string{"A"}, graph["B"])
	assert.Equal(t, 1, report.Registered)
}

func TestDetectNeighborsContainedPolygon(t *testing.T) {
	// An enclave contributes its whole perimeter to the overlap measure.
	provinces := []*Province{
		testProvince("A", square(0, 0, 10)),
		testProvince("B", square(2, 2, 4)),
	}
	graph, _ := DetectNeighbors(provinces, AdjacencyOptions{})
	assert.Equal(t, []string{"B"}, graph["A"])
	assert.Equal(t, []string{"A"}, graph["B"])
}

func TestDetectNeighborsRepairsSelfIntersectingRing(t *testing.T) {
	// B is a bow-tie whose left lobe leans its full wall against A.
	// Repair splits it into two lobes and adjacency still registers.
	bowtie := orb.Ring{{10, 0}, {10, 10}, {20, 0}, {20, 10}}
	require.True(t, ringSelfIntersects(bowtie))

	provinces := []*Province{
		testProvince("A", square(0, 0, 10)),
		testProvince("B", bowtie),
	}
	graph, report := DetectNeighbors(provinces, AdjacencyOptions{})
	assert.Equal(t, []string{"B"}, graph["A"])
	assert.Equal(t, []string{"A"}, graph["B"])
	assert.Equal(t, 1, report.Repaired)
	assert.Zero(t, report.Excluded)
}

func TestDetectNeighborsExcludesDegeneratePolygon(t *testing.T) {
	provinces := []*Province{
		testProvince("A", square(0, 0, 10)),
		testProvince("B", square(10, 0, 10)),
		testProvince("C", orb.Ring{{0, 0}, {5, 0}, {10, 0}}), // zero area
	}
	graph, report := DetectNeighbors(provinces, AdjacencyOptions{})
	assert.Equal(t, 1, report.Excluded)
	assert.Empty(t, graph["C"])
	assert.Equal(t, []string{"B"}, graph["A"])
	assert.Equal(t, []string{"A"}, graph["B"])
}

func TestBuildBoundaryBowtieLobes(t *testing.T) {
	loops, repaired, err := buildBoundary(orb.Ring{{0, 0}, {0, 10}, {10, 0}, {10, 10}})
	require.NoError(t, err)
	assert.True(t, repaired)
	require.Len(t, loops, 2)
	for _, loop := range loops {
		assert.False(t, ringSelfIntersects(loop))
		assert.GreaterOrEqual(t, len(loop), 3)
	}
}

func TestBuildBoundaryExcludesUnresolvableRing(t *testing.T) {
	// The top edge doubles back over itself, a collinear crossing with no
	// single crossing point to split at. No simple loop can be recovered,
	// so the boundary is rejected instead of measured while still invalid.
	ring := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {2, 10}, {8, 10}, {0, 10}}
	require.True(t, ringSelfIntersects(ring))

	_, _, err := buildBoundary(ring)
	assert.Error(t, err)
}

func TestBuildBoundaryRejectsTooFewVertices(t *testing.T) {
	_, _, err := buildBoundary(orb.Ring{{0, 0}, {1, 1}})
	assert.Error(t, err)

	_, _, err = buildBoundary(orb.Ring{{0, 0}, {0, 0}, {1, 1}, {1, 1}})
	assert.Error(t, err)
}

func assertSymmetricNoSelf(t *testing.T, graph map[string][]string) {
	t.Helper()
	for id, neighbors := range graph {
		for _, other := range neighbors {
			assert.NotEqual(t, id, other, "%s is its own neighbor", id)
			assert.Contains(t, graph[other], id, "asymmetric edge %s→%s", id, other)
		}
	}
}
