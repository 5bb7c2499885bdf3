// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package site renders lecture groups to files, one page per group and
// output format.
//
// Output is laid out as <output>/<format>/<stub>.<ext>. RST output also gets
// an index.rst toctree, and lab answers are written to <stub>-answers.<ext>
// when enabled.
package site

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/course-engine/internal/docmodel"
	"github.com/pdiddy/course-engine/internal/lecture"
	"github.com/pdiddy/course-engine/internal/logfields"
	"github.com/pdiddy/course-engine/internal/rst"
	"github.com/pdiddy/course-engine/pkg/types"
)

// ErrUnknownFormat is returned for output formats the builder cannot write.
var ErrUnknownFormat = errors.New("unknown output format")

const (
	indexName     = "index"
	answersSuffix = "-answers"
	tocDepth      = 2
)

// Result holds the outcome of a build.
type Result struct {
	Written int
	Failed  int
	Paths   []string
}

// Total returns the number of pages attempted.
func (r Result) Total() int {
	return r.Written + r.Failed
}

// HasFailures reports whether any page failed to render.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Builder writes rendered pages for a set of lecture groups.
type Builder struct {
	Config types.RenderConfig
	Logger *slog.Logger

	// Out receives one progress line per page. Nil discards progress.
	Out io.Writer
}

// New returns a Builder for cfg. A nil logger uses slog.Default.
func New(cfg types.RenderConfig, logger *slog.Logger, out io.Writer) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	if out == nil {
		out = io.Discard
	}
	return &Builder{Config: cfg, Logger: logger, Out: out}
}

// Build renders every group in every configured format. A page that fails
// to render is counted and skipped; errors creating directories or writing
// files stop the build.
func (b *Builder) Build(groups []*lecture.Group) (Result, error) {
	var result Result
	formats := b.Config.Formats
	if len(formats) == 0 {
		formats = []types.OutputFormat{types.FormatRST}
	}

	for _, f := range formats {
		if !f.Valid() {
			return result, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
		}
		start := time.Now()
		if err := b.buildFormat(f, groups, &result); err != nil {
			return result, err
		}
		b.Logger.Info("format rendered",
			logfields.Format(string(f)),
			logfields.Count(len(groups)),
			logfields.DurationMS(float64(time.Since(start).Microseconds())/1000),
		)
	}

	fmt.Fprintf(b.Out, "\nBuild summary: %d written, %d failed (total: %d)\n",
		result.Written, result.Failed, result.Total())
	return result, nil
}

func (b *Builder) buildFormat(f types.OutputFormat, groups []*lecture.Group, result *Result) error {
	dir := filepath.Join(b.Config.OutputDir, string(f))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var written []string
	for _, g := range groups {
		stub := g.Stub()
		body, err := RenderGroup(f, g)
		if err != nil {
			result.Failed++
			fmt.Fprintf(b.Out, "failed:  %s/%s (%v)\n", f, stub, err)
			b.Logger.Warn("group render failed",
				logfields.Group(g.Title), logfields.Stub(stub), logfields.Format(string(f)), logfields.Error(err))
			continue
		}
		if err := b.write(f, dir, stub, body, result); err != nil {
			return err
		}
		written = append(written, stub)

		if !b.Config.Answers {
			continue
		}
		answers, err := RenderAnswers(f, g)
		if err != nil {
			result.Failed++
			fmt.Fprintf(b.Out, "failed:  %s/%s%s (%v)\n", f, stub, answersSuffix, err)
			b.Logger.Warn("answers render failed",
				logfields.Group(g.Title), logfields.Stub(stub), logfields.Format(string(f)), logfields.Error(err))
			continue
		}
		if answers == "" {
			continue
		}
		if err := b.write(f, dir, stub+answersSuffix, answers, result); err != nil {
			return err
		}
	}

	if f == types.FormatRST {
		return b.write(f, dir, indexName, Index(written), result)
	}
	return nil
}

func (b *Builder) write(f types.OutputFormat, dir, name, body string, result *Result) error {
	path := filepath.Join(dir, name+"."+f.Extension())
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	result.Written++
	result.Paths = append(result.Paths, path)
	fmt.Fprintf(b.Out, "wrote:   %s\n", path)
	b.Logger.Debug("page written", logfields.Path(path))
	return nil
}

// RenderGroup renders one group page in format f.
func RenderGroup(f types.OutputFormat, g *lecture.Group) (string, error) {
	if f == types.FormatRST {
		return g.ToRST()
	}
	model, err := GroupModel(g)
	if err != nil {
		return "", err
	}
	return renderModel(f, model)
}

// RenderAnswers renders the lab answers page for g, or "" when the group
// has no answers.
func RenderAnswers(f types.OutputFormat, g *lecture.Group) (string, error) {
	if f == types.FormatRST {
		return g.AnswersRST()
	}
	model := AnswersModel(g)
	if model == nil {
		return "", nil
	}
	return renderModel(f, model)
}

func renderModel(f types.OutputFormat, n docmodel.Node) (string, error) {
	switch f {
	case types.FormatLaTeX:
		return docmodel.LaTeX(n), nil
	case types.FormatMarkdown:
		return docmodel.Markdown(n), nil
	case types.FormatHTML:
		return docmodel.ToHTML(n)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// GroupModel builds the document tree for a group page: the description,
// the resources, then one section per lecture with notes.
func GroupModel(g *lecture.Group) (docmodel.Node, error) {
	var items []docmodel.Node
	if g.Description != "" {
		items = append(items, &docmodel.Paragraph{Items: []docmodel.Node{docmodel.Text(g.Description)}})
	}
	if rs := g.Resources(); len(rs) > 0 {
		res, err := resourcesModel(rs)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Title, err)
		}
		items = append(items, res)
	}
	items = append(items, g.ToModels(nil, nil)...)
	return &docmodel.Section{Title: g.Title, Items: items}, nil
}

// AnswersModel builds the answers page for a group, or nil when no lab in
// the group has answers.
func AnswersModel(g *lecture.Group) docmodel.Node {
	var items []docmodel.Node
	for _, lab := range g.Labs {
		if notes := lab.AnswersNotes(); notes != nil {
			items = append(items, notes.ToModel(nil, nil))
		}
	}
	if len(items) == 0 {
		return nil
	}
	return &docmodel.Section{Title: g.Title + " Answers", Items: items}
}

func resourcesModel(rs []lecture.Resource) (docmodel.Node, error) {
	items := make([]docmodel.Node, 0, len(rs))
	for _, r := range rs {
		url := r.URL()
		if url == "" {
			continue
		}
		name, err := r.DisplayName()
		if err != nil {
			return nil, err
		}
		items = append(items, docmodel.Hyperlink{URL: url, Text: name})
	}
	return &docmodel.UnorderedList{Title: "Resources", Items: items}, nil
}

// Index returns the RST index page listing stubs in a toctree.
func Index(stubs []string) string {
	var b strings.Builder
	b.WriteString(rst.Header("Lectures", 1))
	b.WriteString(rst.Toctree(tocDepth, stubs))
	return b.String()
}
