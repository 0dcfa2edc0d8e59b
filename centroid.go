package main

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// degenerateArea is the absolute polygon area below which the area-weighted
// centroid is numerically meaningless.
const degenerateArea = 1e-7

// Centroid returns a representative interior point for the ring, rounded to
// integer coordinates. The primary method is the area-weighted polygon
// centroid; rings with zero or near-zero area fall back to the arithmetic
// mean of the vertices, which never fails on a non-empty ring.
func Centroid(ring orb.Ring) orb.Point {
	if len(ring) == 0 {
		return orb.Point{}
	}

	c, area := planar.CentroidArea(closeRing(ring))
	if math.Abs(area) < degenerateArea {
		return roundPoint(vertexMean(ring))
	}
	return roundPoint(c)
}

func vertexMean(ring orb.Ring) orb.Point {
	var sx, sy float64
	for _, p := range ring {
		sx += p[0]
		sy += p[1]
	}
	n := float64(len(ring))
	return orb.Point{sx / n, sy / n}
}
