package main

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestCentroidSquare(t *testing.T) {
	ring := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	assert.Equal(t, orb.Point{5, 5}, Centroid(ring))
}

func TestCentroidRectangle(t *testing.T) {
	ring := orb.Ring{{0, 0}, {4, 0}, {4, 2}, {0, 2}}
	assert.Equal(t, orb.Point{2, 1}, Centroid(ring))
}

func TestCentroidLShapeWeightedTowardMass(t *testing.T) {
	// Two rectangles of area 40 and 24; the exact weighted centroid is
	// (3.875, 3.875). A plain vertex average would give (4.67, 4.67).
	ring := orb.Ring{{0, 0}, {10, 0}, {10, 4}, {4, 4}, {4, 10}, {0, 10}}
	assert.Equal(t, orb.Point{4, 4}, Centroid(ring))
}

func TestCentroidInsideBoundOfConvexRing(t *testing.T) {
	rings := []orb.Ring{
		regularPolygon(7, 33),
		{{2, 1}, {9, 2}, {11, 8}, {5, 12}, {1, 6}},
	}
	for _, ring := range rings {
		c := Centroid(ring)
		assert.True(t, ring.Bound().Contains(c), "centroid %v outside bound", c)
	}
}

func TestCentroidDegenerateFallsBackToMean(t *testing.T) {
	ring := orb.Ring{{0, 0}, {10, 0}, {20, 0}}
	assert.Equal(t, orb.Point{10, 0}, Centroid(ring))
}

func TestCentroidNeverFailsOnTinyRings(t *testing.T) {
	assert.Equal(t, orb.Point{}, Centroid(orb.Ring{}))
	assert.Equal(t, orb.Point{3, 4}, Centroid(orb.Ring{{3, 4}}))
	assert.Equal(t, orb.Point{2, 2}, Centroid(orb.Ring{{0, 0}, {4, 4}}))
}
