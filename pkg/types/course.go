// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"time"

	"go.yaml.in/yaml/v3"
)

// GroupKind classifies a lecture group for selection.
type GroupKind string

const (
	KindLectures GroupKind = "lectures"
	KindProjects GroupKind = "projects"
	KindLabs     GroupKind = "labs"
)

// Order is a group's position in the course. It may be written as an
// integer ("1") or a free-form label ("A").
type Order string

// UnmarshalYAML accepts any scalar.
func (o *Order) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return &yaml.TypeError{Errors: []string{"order must be a scalar"}}
	}
	*o = Order(n.Value)
	return nil
}

// CourseFile is the on-disk representation of one YAML course file.
type CourseFile struct {
	// Resources are shared resources keyed by reference name. Lectures
	// point at them with {ref: name}.
	Resources map[string]ResourceDef `yaml:"resources,omitempty"`

	// Groups are the lecture groups defined in the file.
	Groups []GroupDef `yaml:"groups"`
}

// GroupDef describes a lecture group.
type GroupDef struct {
	Title           string        `yaml:"title"`
	Description     string        `yaml:"description"`
	Order           Order         `yaml:"order"`
	Kind            GroupKind     `yaml:"kind,omitempty"`
	GlobalResources []ResourceDef `yaml:"global_resources,omitempty"`
	Lectures        []LectureDef  `yaml:"lectures,omitempty"`
	Labs            []LabDef      `yaml:"labs,omitempty"`
}

// LectureDef describes a single lecture.
type LectureDef struct {
	Title       string        `yaml:"title"`
	WeekCovered int           `yaml:"week"`
	YouTubeID   string        `yaml:"youtube_id,omitempty"`
	Notes       *NotesDef     `yaml:"notes,omitempty"`
	Resources   []ResourceDef `yaml:"resources,omitempty"`
}

// NotesDef is a titled list of note items. Items are kept as raw YAML
// nodes because each may be a string, a sequence, nested notes, or a
// serializable value such as an equation or a link.
type NotesDef struct {
	Title string      `yaml:"title"`
	Items []yaml.Node `yaml:"items"`
}

// LabDef describes a lab exercise lecture. Bullets and Answers hold one
// inner sequence per exercise.
type LabDef struct {
	Title      string        `yaml:"title"`
	ShortTitle string        `yaml:"short_title,omitempty"`
	YouTubeID  string        `yaml:"youtube_id,omitempty"`
	DueWeek    int           `yaml:"due_week"`
	Bullets    [][]yaml.Node `yaml:"bullets"`
	Answers    [][]yaml.Node `yaml:"answers,omitempty"`
	Resources  []ResourceDef `yaml:"resources,omitempty"`
}

// ResourceDef describes a resource link, a reference to a shared
// resource, or generated content described by metadata.
type ResourceDef struct {
	Ref            string           `yaml:"ref,omitempty"`
	Name           string           `yaml:"name,omitempty"`
	StaticURL      string           `yaml:"static_url,omitempty"`
	ExternalURL    string           `yaml:"external_url,omitempty"`
	Updated        *time.Time       `yaml:"updated,omitempty"`
	Index          *int             `yaml:"index,omitempty"`
	DateTimeFormat string           `yaml:"datetime_fmt,omitempty"`
	Metadata       *ContentMetadata `yaml:"metadata,omitempty"`
}

// ContentMetadata describes a content file produced by the course build
// (slides, handouts, notebooks).
type ContentMetadata struct {
	// Name is the content title, e.g. "Dictionaries, List Comprehensions, and Imports".
	Name string `json:"name" yaml:"name"`

	// ContentTypeCode prefixes generated file names, e.g. "S" for slides.
	ContentTypeCode string `json:"content_type_code" yaml:"type_code"`

	// ContentIndex is the sequence number within the content type.
	ContentIndex *int `json:"content_index,omitempty" yaml:"index,omitempty"`

	// OutputExtension is the generated file extension without dot, e.g. "pdf".
	OutputExtension string `json:"output_extension" yaml:"extension"`

	// LastModified is when the content was last changed.
	LastModified *time.Time `json:"last_modified,omitempty" yaml:"last_modified,omitempty"`

	// Generated marks content produced by the build. Only generated
	// content has an automatic URL.
	Generated bool `json:"generated" yaml:"generated"`

	// URL overrides the automatic static URL.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}
