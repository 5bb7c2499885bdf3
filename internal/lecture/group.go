// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lecture

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/pdiddy/course-engine/internal/docmodel"
	"github.com/pdiddy/course-engine/internal/rst"
	"github.com/pdiddy/course-engine/pkg/types"
)

// Group is an ordered set of lectures published as one page.
type Group struct {
	Title           string
	Description     string
	Lectures        []*Lecture
	Order           string
	GlobalResources []Resource
	Kind            types.GroupKind

	// Labs holds the lab exercises whose lectures are in Lectures.
	Labs []*LabExerciseLecture
}

// Len returns the number of lectures.
func (g *Group) Len() int {
	return len(g.Lectures)
}

// At returns the lecture at index i.
func (g *Group) At(i int) *Lecture {
	return g.Lectures[i]
}

// Stub returns the page name: the order followed by the case-folded
// words of the title, joined with hyphens.
func (g *Group) Stub() string {
	folded := cases.Fold().String(g.Title)
	parts := append([]string{g.Order}, strings.Fields(folded)...)
	return strings.Join(parts, "-")
}

// URL returns the group's page URL under siteURL, which should end in a
// slash.
func (g *Group) URL(siteURL string) string {
	return siteURL + "lectures/" + g.Stub()
}

// Resources returns the global resources followed by each lecture's
// resources that are not already present, in lecture order.
func (g *Group) Resources() []Resource {
	resources := append([]Resource(nil), g.GlobalResources...)
	for _, l := range g.Lectures {
		for _, r := range l.Resources {
			if !containsResource(resources, r) {
				resources = append(resources, r)
			}
		}
	}
	return resources
}

// ToModels folds each lecture's notes with the given builders. Lectures
// without notes are skipped.
func (g *Group) ToModels(top, sub docmodel.Builder) []docmodel.Node {
	var models []docmodel.Node
	for _, l := range g.Lectures {
		if l.Notes == nil {
			continue
		}
		models = append(models, l.Notes.ToModel(top, sub))
	}
	return models
}

// ToRST renders the group page: title, description, the combined
// resources, then every lecture.
func (g *Group) ToRST() (string, error) {
	var b strings.Builder
	b.WriteString(rst.Header(g.Title, 2))
	fmt.Fprintf(&b, "\n%s\n", g.Description)

	if resources := g.Resources(); len(resources) > 0 {
		res, err := resourcesRST(resources, 3)
		if err != nil {
			return "", fmt.Errorf("group %q: %w", g.Title, err)
		}
		b.WriteString(res)
	}

	for _, l := range g.Lectures {
		s, err := l.ToRST()
		if err != nil {
			return "", fmt.Errorf("group %q: %w", g.Title, err)
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// LecturesForWeek returns the lectures covered in week.
func (g *Group) LecturesForWeek(week int) []*Lecture {
	var out []*Lecture
	for _, l := range g.Lectures {
		if l.WeekCovered == week {
			out = append(out, l)
		}
	}
	return out
}
