// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package course loads YAML course files into lecture groups.
//
// A content directory holds any number of *.yaml / *.yml files read in
// lexical order. Shared resources from every file are merged before groups
// are built, so a lecture may reference a resource defined in another file.
package course

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/course-engine/internal/lecture"
	"github.com/pdiddy/course-engine/pkg/types"
)

var (
	// ErrUnknownRef is returned for {ref: name} resources with no shared
	// definition.
	ErrUnknownRef = errors.New("unknown resource reference")

	// ErrDuplicateRef is returned when two files define the same shared
	// resource.
	ErrDuplicateRef = errors.New("duplicate shared resource")

	// ErrUnknownVar is returned for ${name} references with no value.
	ErrUnknownVar = errors.New("unknown variable")

	// ErrInvalidItem is returned for note items that are not a string,
	// sequence, notes, equation, or link.
	ErrInvalidItem = errors.New("invalid note item")

	// ErrInvalidKind is returned for unknown group kinds.
	ErrInvalidKind = errors.New("invalid group kind")
)

// varPattern matches ${name} references.
var varPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Options controls how course files are turned into groups.
type Options struct {
	// Vars are substituted for ${name} in text, names and URLs.
	Vars map[string]string
}

// CourseFiles returns the ordered list of YAML course files in dir.
func CourseFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// LoadFile reads and parses one course file.
func LoadFile(path string) (*types.CourseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading course file: %w", err)
	}
	var cf types.CourseFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return &cf, nil
}

// Load reads every course file in dir and builds the lecture groups in
// file order.
func Load(dir string, opts Options) ([]*lecture.Group, error) {
	files, err := CourseFiles(dir)
	if err != nil {
		return nil, err
	}

	parsed := make([]*types.CourseFile, len(files))
	for i, f := range files {
		cf, err := LoadFile(f)
		if err != nil {
			return nil, err
		}
		parsed[i] = cf
	}

	b := newBuilder(opts)
	for i, cf := range parsed {
		if err := b.addShared(cf.Resources); err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(files[i]), err)
		}
	}

	var groups []*lecture.Group
	for i, cf := range parsed {
		gs, err := b.groups(cf.Groups)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(files[i]), err)
		}
		groups = append(groups, gs...)
	}
	return groups, nil
}

// Select returns lecture groups first, then projects, then labs. Projects
// are included when requested or whenever labs are.
func Select(groups []*lecture.Group, includeLabs, includeProjects bool) []*lecture.Group {
	var lectures, projects, labs []*lecture.Group
	for _, g := range groups {
		switch g.Kind {
		case types.KindProjects:
			projects = append(projects, g)
		case types.KindLabs:
			labs = append(labs, g)
		default:
			lectures = append(lectures, g)
		}
	}

	if !includeLabs && !includeProjects {
		return lectures
	}
	out := append(lectures, projects...)
	if !includeLabs {
		return out
	}
	return append(out, labs...)
}

type builder struct {
	vars   map[string]string
	shared map[string]types.ResourceDef
}

func newBuilder(opts Options) *builder {
	return &builder{
		vars:   opts.Vars,
		shared: make(map[string]types.ResourceDef),
	}
}

func (b *builder) addShared(defs map[string]types.ResourceDef) error {
	for key, def := range defs {
		if _, ok := b.shared[key]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateRef, key)
		}
		if def.Ref != "" {
			return fmt.Errorf("shared resource %q: nested references are not supported", key)
		}
		b.shared[key] = def
	}
	return nil
}

func (b *builder) groups(defs []types.GroupDef) ([]*lecture.Group, error) {
	groups := make([]*lecture.Group, 0, len(defs))
	for i, def := range defs {
		g, err := b.group(def, fmt.Sprintf("groups[%d]", i))
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func (b *builder) group(def types.GroupDef, path string) (*lecture.Group, error) {
	kind := def.Kind
	switch kind {
	case "":
		kind = types.KindLectures
	case types.KindLectures, types.KindProjects, types.KindLabs:
	default:
		return nil, fmt.Errorf("%s: %w: %q", path, ErrInvalidKind, def.Kind)
	}

	title, err := b.expand(def.Title, path+".title")
	if err != nil {
		return nil, err
	}
	desc, err := b.expand(def.Description, path+".description")
	if err != nil {
		return nil, err
	}
	global, err := b.resources(def.GlobalResources, path+".global_resources")
	if err != nil {
		return nil, err
	}

	g := &lecture.Group{
		Title:           title,
		Description:     desc,
		Order:           string(def.Order),
		GlobalResources: global,
		Kind:            kind,
	}

	for i, ld := range def.Lectures {
		l, err := b.lecture(ld, fmt.Sprintf("%s.lectures[%d]", path, i))
		if err != nil {
			return nil, err
		}
		g.Lectures = append(g.Lectures, l)
	}
	for i, lab := range def.Labs {
		l, err := b.lab(lab, fmt.Sprintf("%s.labs[%d]", path, i))
		if err != nil {
			return nil, err
		}
		g.AddLab(l)
	}
	return g, nil
}

func (b *builder) lecture(def types.LectureDef, path string) (*lecture.Lecture, error) {
	title, err := b.expand(def.Title, path+".title")
	if err != nil {
		return nil, err
	}
	resources, err := b.resources(def.Resources, path+".resources")
	if err != nil {
		return nil, err
	}
	l := &lecture.Lecture{
		Title:       title,
		WeekCovered: def.WeekCovered,
		YouTubeID:   def.YouTubeID,
		Resources:   resources,
	}
	if def.Notes != nil {
		notes, err := b.notes(def.Notes.Title, def.Notes.Items, path+".notes")
		if err != nil {
			return nil, err
		}
		l.Notes = notes
	}
	return l, nil
}

func (b *builder) lab(def types.LabDef, path string) (*lecture.LabExerciseLecture, error) {
	title, err := b.expand(def.Title, path+".title")
	if err != nil {
		return nil, err
	}
	bullets, err := b.itemSeqs(def.Bullets, path+".bullets")
	if err != nil {
		return nil, err
	}
	answers, err := b.itemSeqs(def.Answers, path+".answers")
	if err != nil {
		return nil, err
	}
	resources, err := b.resources(def.Resources, path+".resources")
	if err != nil {
		return nil, err
	}
	return lecture.FromSeqOfSeq(title, bullets, answers, lecture.LabOptions{
		ShortTitle: def.ShortTitle,
		YouTubeID:  def.YouTubeID,
		Resources:  resources,
		DueWeek:    def.DueWeek,
	}), nil
}

func (b *builder) itemSeqs(seqs [][]yaml.Node, path string) ([][]lecture.Item, error) {
	out := make([][]lecture.Item, len(seqs))
	for i, seq := range seqs {
		items, err := b.items(seq, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out[i] = items
	}
	return out, nil
}

func (b *builder) notes(title string, nodes []yaml.Node, path string) (*lecture.Notes, error) {
	t, err := b.expand(title, path+".title")
	if err != nil {
		return nil, err
	}
	items, err := b.items(nodes, path+".items")
	if err != nil {
		return nil, err
	}
	return lecture.NewNotes(t, items...), nil
}

func (b *builder) items(nodes []yaml.Node, path string) ([]lecture.Item, error) {
	items := make([]lecture.Item, 0, len(nodes))
	for i := range nodes {
		item, err := b.item(&nodes[i], fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		if item != nil {
			items = append(items, item)
		}
	}
	return items, nil
}

// item converts one YAML node: scalars are text, sequences are inline
// lists, and mappings are notes ({title, items}), equations ({equation})
// or links ({link, text}). Null entries are skipped.
func (b *builder) item(n *yaml.Node, path string) (lecture.Item, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil, nil
		}
		return b.expand(n.Value, path)
	case yaml.SequenceNode:
		list := make(lecture.List, 0, len(n.Content))
		for i, c := range n.Content {
			item, err := b.item(c, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			if item != nil {
				list = append(list, item)
			}
		}
		return list, nil
	case yaml.MappingNode:
		return b.mappingItem(n, path)
	case yaml.AliasNode:
		return b.item(n.Alias, path)
	}
	return nil, fmt.Errorf("%s: %w", path, ErrInvalidItem)
}

// mappingFields are the keys a mapping item may use.
type mappingFields struct {
	Title    *string     `yaml:"title"`
	Items    []yaml.Node `yaml:"items"`
	Equation string      `yaml:"equation"`
	Link     string      `yaml:"link"`
	Text     string      `yaml:"text"`
}

func (b *builder) mappingItem(n *yaml.Node, path string) (lecture.Item, error) {
	var f mappingFields
	if err := n.Decode(&f); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrInvalidItem, err)
	}

	switch {
	case f.Equation != "":
		return lecture.Equation{LaTeX: f.Equation}, nil
	case f.Link != "":
		href, err := b.expand(f.Link, path+".link")
		if err != nil {
			return nil, err
		}
		text, err := b.expand(f.Text, path+".text")
		if err != nil {
			return nil, err
		}
		link, err := lecture.NewLink(href, text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return link, nil
	case f.Title != nil || f.Items != nil:
		title := ""
		if f.Title != nil {
			title = *f.Title
		}
		return b.notes(title, f.Items, path)
	}
	return nil, fmt.Errorf("%s: %w: mapping needs title/items, equation, or link", path, ErrInvalidItem)
}

func (b *builder) resources(defs []types.ResourceDef, path string) ([]lecture.Resource, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	out := make([]lecture.Resource, len(defs))
	for i, def := range defs {
		r, err := b.resource(def, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

func (b *builder) resource(def types.ResourceDef, path string) (lecture.Resource, error) {
	if def.Ref != "" {
		shared, ok := b.shared[def.Ref]
		if !ok {
			return lecture.Resource{}, fmt.Errorf("%s: %w: %q", path, ErrUnknownRef, def.Ref)
		}
		def = shared
	}

	name, err := b.expand(def.Name, path+".name")
	if err != nil {
		return lecture.Resource{}, err
	}
	static, err := b.expand(def.StaticURL, path+".static_url")
	if err != nil {
		return lecture.Resource{}, err
	}
	external, err := b.expand(def.ExternalURL, path+".external_url")
	if err != nil {
		return lecture.Resource{}, err
	}

	if def.Metadata != nil {
		md := *def.Metadata
		if md.Name, err = b.expand(md.Name, path+".metadata.name"); err != nil {
			return lecture.Resource{}, err
		}
		if md.URL, err = b.expand(md.URL, path+".metadata.url"); err != nil {
			return lecture.Resource{}, err
		}
		r, err := lecture.FromMetadata(md, static)
		if err != nil {
			return lecture.Resource{}, fmt.Errorf("%s: %w", path, err)
		}
		if name != "" {
			r.Name = name
		}
		r.DateTimeFormat = def.DateTimeFormat
		return r, nil
	}

	return lecture.Resource{
		Name:           name,
		StaticURL:      static,
		ExternalURL:    external,
		Updated:        def.Updated,
		Index:          def.Index,
		DateTimeFormat: def.DateTimeFormat,
	}, nil
}

// expand replaces ${name} references with configured variables.
func (b *builder) expand(s, path string) (string, error) {
	if !strings.Contains(s, "${") {
		return s, nil
	}
	var missing []string
	out := varPattern.ReplaceAllStringFunc(s, func(ref string) string {
		name := varPattern.FindStringSubmatch(ref)[1]
		if v, ok := b.vars[name]; ok {
			return v
		}
		missing = append(missing, name)
		return ref
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%s: %w: %s", path, ErrUnknownVar, strings.Join(missing, ", "))
	}
	return out, nil
}
