package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
)

// Template is the on-disk map template. The field names are part of the
// format consumed by the game and must not change.
type Template struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	ProvinceCount int         `json:"provinceCount"`
	ViewBox       string      `json:"viewBox"`
	Provinces     []*Province `json:"provinces"`
}

// NewTemplate assembles the output model from a finished province list.
// The stem is the input file name without extension; a trailing "map" word
// in the stem folds into the fixed " Map" suffix of the display name.
func NewTemplate(stem, viewBox string, provinces []*Province) *Template {
	name := strings.TrimSuffix(titleCase(stem), " Map")
	return &Template{
		ID:            "template-" + stem,
		Name:          fmt.Sprintf("%s Map (%d Provinces)", name, len(provinces)),
		ProvinceCount: len(provinces),
		ViewBox:       viewBox,
		Provinces:     provinces,
	}
}

// SaveTemplate serializes and saves the template to a JSON file
func SaveTemplate(template *Template, filename string) error {
	log.Printf("💾 Saving template to %s...\n", filename)

	data, err := json.MarshalIndent(template, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal template: %w", err)
	}

	err = os.WriteFile(filename, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	log.Printf("   ✅ Template saved (%d bytes)\n", len(data))
	return nil
}

// LoadTemplate deserializes a template from a JSON file
func LoadTemplate(filename string) (*Template, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var template Template
	if err := json.Unmarshal(data, &template); err != nil {
		return nil, fmt.Errorf("failed to unmarshal template: %w", err)
	}
	return &template, nil
}

func titleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(strings.ReplaceAll(s, "_", " "), "-", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
