package main

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// bboxMargin pads each boundary's rectangle so that exactly touching
// borders still intersect in the index and degenerate extents stay valid.
const bboxMargin = 0.5

// boundaryEntry wraps a province boundary for R-tree storage
type boundaryEntry struct {
	index int
	loops []orb.Ring
	bbox  rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *boundaryEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// boundaryIndex answers bounding-box candidate queries for the adjacency
// pair loop. Purely an optimization: it never changes which pairs qualify,
// only which pairs get measured.
type boundaryIndex struct {
	tree *rtreego.Rtree
}

// newBoundaryIndex builds the index over all constructible boundaries.
func newBoundaryIndex(entries []*boundaryEntry) *boundaryIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for _, entry := range entries {
		bbox, err := boundaryRect(entry.loops)
		if err != nil {
			continue
		}
		entry.bbox = bbox
		tree.Insert(entry)
	}

	return &boundaryIndex{tree: tree}
}

// Candidates returns the other boundaries whose padded bounding boxes
// intersect the given entry's.
func (bi *boundaryIndex) Candidates(entry *boundaryEntry) []*boundaryEntry {
	results := bi.tree.SearchIntersect(entry.bbox)

	candidates := make([]*boundaryEntry, 0, len(results))
	for _, item := range results {
		other := item.(*boundaryEntry)
		if other != entry {
			candidates = append(candidates, other)
		}
	}
	return candidates
}

// boundaryRect computes the padded axis-aligned bounding box over all loops
// of a boundary.
func boundaryRect(loops []orb.Ring) (rtreego.Rect, error) {
	bound := loops[0].Bound()
	for _, loop := range loops[1:] {
		bound = bound.Union(loop.Bound())
	}

	return rtreego.NewRect(
		rtreego.Point{bound.Min[0] - bboxMargin, bound.Min[1] - bboxMargin},
		[]float64{
			bound.Max[0] - bound.Min[0] + 2*bboxMargin,
			bound.Max[1] - bound.Min[1] + 2*bboxMargin,
		},
	)
}
