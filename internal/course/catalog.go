// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package course

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/course-engine/internal/lecture"
)

// CatalogEntry summarizes one lecture for listing and export.
type CatalogEntry struct {
	Group     string   `json:"group" yaml:"group"`
	Stub      string   `json:"stub" yaml:"stub"`
	Kind      string   `json:"kind" yaml:"kind"`
	Lecture   string   `json:"lecture" yaml:"lecture"`
	Week      int      `json:"week" yaml:"week"`
	URL       string   `json:"url,omitempty" yaml:"url,omitempty"`
	YouTubeID string   `json:"youtube_id,omitempty" yaml:"youtube_id,omitempty"`
	Resources []string `json:"resources,omitempty" yaml:"resources,omitempty"`
}

// Catalog lists the lectures of groups in order. A positive week keeps
// only lectures covered that week. URLs are built from siteURL when it is
// set.
func Catalog(groups []*lecture.Group, siteURL string, week int) []CatalogEntry {
	var entries []CatalogEntry
	for _, g := range groups {
		lectures := g.Lectures
		if week > 0 {
			lectures = g.LecturesForWeek(week)
		}
		for _, l := range lectures {
			e := CatalogEntry{
				Group:     g.Title,
				Stub:      g.Stub(),
				Kind:      string(g.Kind),
				Lecture:   l.Title,
				Week:      l.WeekCovered,
				YouTubeID: l.YouTubeID,
			}
			if siteURL != "" {
				e.URL = g.URL(siteURL)
			}
			for _, r := range l.Resources {
				e.Resources = append(e.Resources, r.Name)
			}
			entries = append(entries, e)
		}
	}
	return entries
}

// ExportYAML writes catalog entries as a YAML sequence.
func ExportYAML(w io.Writer, entries []CatalogEntry) error {
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportJSON writes catalog entries as an indented JSON array.
func ExportJSON(w io.Writer, entries []CatalogEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
