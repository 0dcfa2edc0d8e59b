package main

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Fallback document dimensions when the SVG carries neither viewBox nor
// width/height.
const (
	defaultSVGWidth  = 800.0
	defaultSVGHeight = 600.0
)

// SVGMap is the raw material extracted from an SVG document: the viewBox
// string and every path element in document order.
type SVGMap struct {
	ViewBox   string
	Provinces []RawProvince
}

// LoadSVGMap reads and parses an SVG file.
func LoadSVGMap(filename string) (*SVGMap, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseSVGMap(data)
}

// ParseSVGMap extracts the viewBox and all path elements from an SVG
// document. Paths anywhere in the tree count, whatever their namespace.
// Missing titles default to Province_<n>, missing ids to p<n-1>, matching
// the positional fallbacks the template format expects.
func ParseSVGMap(data []byte) (*SVGMap, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	viewBox := ""
	width, height := defaultSVGWidth, defaultSVGHeight
	var provinces []RawProvince

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed svg: %w", err)
		}
		element, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		switch element.Name.Local {
		case "svg":
			for _, attr := range element.Attr {
				switch attr.Name.Local {
				case "viewBox":
					viewBox = attr.Value
				case "width":
					if v, err := parseDimension(attr.Value); err == nil {
						width = v
					}
				case "height":
					if v, err := parseDimension(attr.Value); err == nil {
						height = v
					}
				}
			}
		case "path":
			var title, id, d string
			for _, attr := range element.Attr {
				switch attr.Name.Local {
				case "title":
					title = attr.Value
				case "id":
					id = attr.Value
				case "d":
					d = attr.Value
				}
			}
			n := len(provinces) + 1
			if title == "" {
				title = fmt.Sprintf("Province_%d", n)
			}
			if id == "" {
				id = fmt.Sprintf("p%d", n-1)
			}
			provinces = append(provinces, RawProvince{Title: title, IDHint: id, PathData: d})
		}
	}

	if viewBox == "" {
		viewBox = fmt.Sprintf("0 0 %d %d", int(width), int(height))
	}
	return &SVGMap{ViewBox: viewBox, Provinces: provinces}, nil
}

func parseDimension(value string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(value), "px"), 64)
}
