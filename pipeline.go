package main

import (
	"runtime"
	"strings"
	"sync"

	"github.com/paulmach/orb"
)

// DefaultTolerance is the simplification tolerance in SVG user-space units.
const DefaultTolerance = 5.0

// RawProvince is one traced path as supplied by the SVG reader: a display
// title, the source document's id attribute and the raw path command string.
type RawProvince struct {
	Title    string
	IDHint   string
	PathData string
}

// Province is one finished map region.
type Province struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Coordinates orb.Ring  `json:"coordinates"`
	Centroid    orb.Point `json:"centroid"`
	IsCoastal   bool      `json:"isCoastal"`
	Neighbors   []string  `json:"neighbors"`

	// OriginalID and RawVertexCount feed the console report only.
	OriginalID     string `json:"-"`
	RawVertexCount int    `json:"-"`
}

// SkippedProvince records a path element dropped before extraction.
type SkippedProvince struct {
	Title  string
	Reason string
}

// Stats aggregates a pipeline run for the external reporter.
type Stats struct {
	Extracted    int
	Skipped      []SkippedProvince
	AvgVertices  float64
	AvgNeighbors float64
	Adjacency    AdjacencyReport
}

// Pipeline orchestrates per-province extraction (parse, simplify, centroid)
// and the graph-wide adjacency pass. It owns no geometry logic itself.
type Pipeline struct {
	Tolerance       float64
	MinSharedBorder float64
	Workers         int
}

func NewPipeline() *Pipeline {
	return &Pipeline{
		Tolerance:       DefaultTolerance,
		MinSharedBorder: DefaultMinSharedBorder,
		Workers:         runtime.NumCPU(),
	}
}

type extraction struct {
	province *Province
	skip     string
}

// Process runs the full pipeline. Provinces with missing path data or fewer
// than 3 extracted points are skipped and reported in the stats, never as an
// error. Output order follows input order regardless of worker scheduling.
func (p *Pipeline) Process(raw []RawProvince) ([]*Province, Stats) {
	workers := p.Workers
	if workers < 1 {
		workers = 1
	}

	// Each province's derived data depends only on its own input, so the
	// extraction stage fans out freely; results are index-addressed to
	// keep the output deterministic.
	results := make([]extraction, len(raw))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = p.extract(raw[i])
			}
		}()
	}
	for i := range raw {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var stats Stats
	provinces := make([]*Province, 0, len(raw))
	for i, r := range results {
		if r.skip != "" {
			stats.Skipped = append(stats.Skipped, SkippedProvince{Title: raw[i].Title, Reason: r.skip})
			continue
		}
		provinces = append(provinces, r.province)
	}
	assignIdentifiers(provinces)

	graph, report := DetectNeighbors(provinces, AdjacencyOptions{MinSharedBorder: p.MinSharedBorder})
	for _, prov := range provinces {
		prov.Neighbors = graph[prov.ID]
	}

	stats.Extracted = len(provinces)
	stats.Adjacency = report
	if len(provinces) > 0 {
		vertices, edges := 0, 0
		for _, prov := range provinces {
			vertices += len(prov.Coordinates)
			edges += len(prov.Neighbors)
		}
		stats.AvgVertices = float64(vertices) / float64(len(provinces))
		stats.AvgNeighbors = float64(edges) / float64(len(provinces))
	}
	return provinces, stats
}

func (p *Pipeline) extract(raw RawProvince) extraction {
	if strings.TrimSpace(raw.PathData) == "" {
		return extraction{skip: "no path data"}
	}

	points := ParsePathData(raw.PathData)
	if len(points) < 3 {
		return extraction{skip: "too few coordinates"}
	}

	ring := SimplifyRing(points, p.Tolerance)
	return extraction{province: &Province{
		Title:          raw.Title,
		OriginalID:     raw.IDHint,
		Coordinates:    ring,
		Centroid:       Centroid(ring),
		Neighbors:      []string{},
		RawVertexCount: len(points),
	}}
}

// assignIdentifiers gives provinces stable positional codes: A..Z, then
// AA, AB and so on.
func assignIdentifiers(provinces []*Province) {
	for i, prov := range provinces {
		prov.ID = identifierForIndex(i)
	}
}

func identifierForIndex(i int) string {
	var id []byte
	for {
		id = append([]byte{byte('A' + i%26)}, id...)
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	return string(id)
}

// MarkCoastalProvinces flags provinces whose title contains any of the
// given names, case-insensitively, and returns how many were marked. The
// coastal flag is external metadata, never derived from geometry.
func MarkCoastalProvinces(provinces []*Province, names []string) int {
	lowered := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			lowered = append(lowered, name)
		}
	}

	marked := 0
	for _, prov := range provinces {
		title := strings.ToLower(prov.Title)
		for _, name := range lowered {
			if strings.Contains(title, name) {
				prov.IsCoastal = true
				marked++
				break
			}
		}
	}
	return marked
}
