// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package course

import (
	"fmt"

	"github.com/pdiddy/course-engine/internal/lecture"
)

// Problem is one issue found by Validate.
type Problem struct {
	Group   string
	Lecture string
	Message string
}

func (p Problem) String() string {
	if p.Lecture == "" {
		return fmt.Sprintf("%s: %s", p.Group, p.Message)
	}
	return fmt.Sprintf("%s / %s: %s", p.Group, p.Lecture, p.Message)
}

// Validate checks that every group renders and that group stubs are
// unique. It returns the problems found; an empty result means the course
// is ready to render.
func Validate(groups []*lecture.Group) []Problem {
	var problems []Problem
	stubs := make(map[string]string)

	for _, g := range groups {
		if g.Title == "" {
			problems = append(problems, Problem{Group: g.Stub(), Message: "group has no title"})
		}
		stub := g.Stub()
		if prev, ok := stubs[stub]; ok {
			problems = append(problems, Problem{
				Group:   g.Title,
				Message: fmt.Sprintf("stub %q already used by %q", stub, prev),
			})
		} else {
			stubs[stub] = g.Title
		}

		for _, r := range g.GlobalResources {
			if msg := resourceProblem(r); msg != "" {
				problems = append(problems, Problem{Group: g.Title, Message: msg})
			}
		}
		for _, l := range g.Lectures {
			problems = append(problems, validateLecture(g, l)...)
		}
		if _, err := g.AnswersRST(); err != nil {
			problems = append(problems, Problem{Group: g.Title, Message: err.Error()})
		}
	}
	return problems
}

func validateLecture(g *lecture.Group, l *lecture.Lecture) []Problem {
	var problems []Problem
	add := func(msg string) {
		problems = append(problems, Problem{Group: g.Title, Lecture: l.Title, Message: msg})
	}

	if l.Title == "" {
		add("lecture has no title")
	}
	for _, r := range l.Resources {
		if msg := resourceProblem(r); msg != "" {
			add(msg)
		}
	}
	if l.Notes != nil {
		if _, err := l.Notes.ToRST(); err != nil {
			add(err.Error())
		}
	}
	return problems
}

// resourceProblem describes what keeps r from rendering, or returns "".
func resourceProblem(r lecture.Resource) string {
	if r.URL() == "" {
		return fmt.Sprintf("resource %q has no link", r.Name)
	}
	if _, err := r.DisplayName(); err != nil {
		return err.Error()
	}
	return ""
}
