package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func main() {
	coastal := flag.String("coastal", "", "comma-separated list of coastal province names")
	tolerance := flag.Float64("tolerance", DefaultTolerance, "simplification tolerance in coordinate units")
	minBorder := flag.Float64("min-border", DefaultMinSharedBorder, "minimum shared border length for adjacency")
	noInteractive := flag.Bool("no-interactive", false, "skip interactive coastal selection")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: svg-map-converter [flags] input.svg [output.json]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".json"
	}

	log.Println("========================================")
	log.Println("🗺️  SVG Province Map Converter")
	log.Println("========================================")
	log.Printf("Parsing SVG: %s\n", filepath.Base(inputPath))

	svgMap, err := LoadSVGMap(inputPath)
	if err != nil {
		log.Fatalf("❌ Failed to read SVG: %v", err)
	}
	log.Printf("   ViewBox: %s\n", svgMap.ViewBox)
	log.Printf("   Found %d path elements\n", len(svgMap.Provinces))

	pipeline := NewPipeline()
	pipeline.Tolerance = *tolerance
	pipeline.MinSharedBorder = *minBorder

	provinces, stats := pipeline.Process(svgMap.Provinces)

	for _, skipped := range stats.Skipped {
		log.Printf("   ⚠️  Skipping %s: %s\n", skipped.Title, skipped.Reason)
	}
	for _, prov := range provinces {
		log.Printf("   %s: %d → %d coords\n", prov.Title, prov.RawVertexCount, len(prov.Coordinates))
	}

	if len(provinces) == 0 {
		log.Fatal("❌ No provinces extracted from SVG")
	}

	log.Printf("🔗 Adjacency: %d pairs tested, %d borders registered (repaired %d, excluded %d)\n",
		stats.Adjacency.PairsTested, stats.Adjacency.Registered,
		stats.Adjacency.Repaired, stats.Adjacency.Excluded)

	coastalNames := splitNames(*coastal)
	if len(coastalNames) == 0 && !*noInteractive {
		coastalNames = interactiveCoastalSelection(provinces)
	}
	coastalCount := MarkCoastalProvinces(provinces, coastalNames)
	if coastalCount == 0 {
		log.Println("⚠️  No coastal provinces marked. At least one recommended for game mechanics.")
	}

	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	template := NewTemplate(stem, svgMap.ViewBox, provinces)
	if err := SaveTemplate(template, outputPath); err != nil {
		log.Fatalf("❌ Failed to save template: %v", err)
	}

	log.Println("========================================")
	log.Println("✅ CONVERSION COMPLETE")
	log.Println("========================================")
	log.Printf("   Input:  %s\n", inputPath)
	log.Printf("   Output: %s\n", outputPath)
	log.Printf("   Provinces: %d (skipped %d)\n", stats.Extracted, len(stats.Skipped))
	log.Printf("   Coastal: %d\n", coastalCount)
	log.Printf("   Avg coordinates/province: %.0f\n", stats.AvgVertices)
	log.Printf("   Avg neighbors/province: %.1f\n", stats.AvgNeighbors)
	log.Println("")
	log.Println("Province ID Mapping:")
	log.Println("----------------------------------------")
	for _, prov := range provinces {
		marker := ""
		if prov.IsCoastal {
			marker = " [COASTAL]"
		}
		log.Printf("   %-2s → %s%s\n", prov.ID, prov.Title, marker)
	}
}

func splitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

// interactiveCoastalSelection lists the provinces and lets the user pick
// the coastal ones by number or by name.
func interactiveCoastalSelection(provinces []*Province) []string {
	fmt.Println()
	fmt.Println("COASTAL PROVINCE SELECTION")
	fmt.Println("Available provinces:")
	for i, prov := range provinces {
		fmt.Printf("  %2d. %s\n", i+1, prov.Title)
	}
	fmt.Println()
	fmt.Println("Enter coastal provinces as comma-separated numbers (e.g. 1,5,12)")
	fmt.Println("or names (e.g. Al-Basrah, Maysan). Empty for none.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nCoastal provinces: ")
		if !scanner.Scan() {
			return nil
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			fmt.Println("No coastal provinces specified. Continuing...")
			return nil
		}

		names := splitNames(input)
		if !allNumeric(names) {
			return names
		}
		if titles, ok := titlesForIndices(names, provinces); ok {
			return titles
		}
		fmt.Printf("Invalid selection, use numbers between 1 and %d. Please try again.\n", len(provinces))
	}
}

// titlesForIndices resolves 1-based index strings to province titles. Any
// out-of-range entry rejects the whole selection.
func titlesForIndices(names []string, provinces []*Province) ([]string, bool) {
	titles := make([]string, 0, len(names))
	for _, name := range names {
		idx, err := strconv.Atoi(name)
		if err != nil || idx < 1 || idx > len(provinces) {
			return nil, false
		}
		titles = append(titles, provinces[idx-1].Title)
	}
	return titles, true
}

func allNumeric(names []string) bool {
	for _, name := range names {
		if _, err := strconv.Atoi(name); err != nil {
			return false
		}
	}
	return len(names) > 0
}
