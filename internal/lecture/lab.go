// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lecture

import (
	"fmt"
	"strings"

	"github.com/pdiddy/course-engine/internal/rst"
)

// LabExercise is one exercise of a lab: its instruction bullets and the
// matching answers.
type LabExercise struct {
	Bullets []Item
	Answers []Item
}

// LabExerciseLecture is a lecture made of lab exercises, due in a given
// week.
type LabExerciseLecture struct {
	Lecture
	ShortTitle string
	DueWeek    int
	Exercises  []LabExercise
}

// LabOptions carries the optional fields of a lab exercise lecture.
type LabOptions struct {
	ShortTitle string
	YouTubeID  string
	Resources  []Resource
	DueWeek    int
}

// FromSeqOfSeq builds a lab from one bullet sequence per exercise.
// Answers are matched to exercises by position. A single exercise puts its
// bullets directly in the notes; several become nested notes titled
// "Level N". The lab is covered in the week it is due.
func FromSeqOfSeq(title string, bullets, answers [][]Item, opts LabOptions) *LabExerciseLecture {
	exercises := make([]LabExercise, len(bullets))
	for i, b := range bullets {
		exercises[i].Bullets = b
		if i < len(answers) {
			exercises[i].Answers = answers[i]
		}
	}

	lab := &LabExerciseLecture{
		Lecture: Lecture{
			Title:       title,
			WeekCovered: opts.DueWeek,
			YouTubeID:   opts.YouTubeID,
			Resources:   opts.Resources,
		},
		ShortTitle: opts.ShortTitle,
		DueWeek:    opts.DueWeek,
		Exercises:  exercises,
	}
	lab.Notes = exerciseNotes(title, exercises, func(e LabExercise) []Item { return e.Bullets })
	return lab
}

// AnswersNotes returns the answers as notes, or nil when no exercise has
// answers.
func (l *LabExerciseLecture) AnswersNotes() *Notes {
	return exerciseNotes(l.Title+" Answers", l.Exercises, func(e LabExercise) []Item { return e.Answers })
}

// AnswersRST renders the answers block for the lab, or "" when there are
// none.
func (l *LabExerciseLecture) AnswersRST() (string, error) {
	notes := l.AnswersNotes()
	if notes == nil {
		return "", nil
	}
	body, err := notes.ToRST()
	if err != nil {
		return "", fmt.Errorf("lab %q answers: %w", l.Title, err)
	}
	return rst.Header(l.Title, 3) + rst.Header("Answers", 4) + body, nil
}

// exerciseNotes builds notes from the part of each exercise selected by
// pick. Exercises with nothing selected are skipped; nil is returned when
// none remain.
func exerciseNotes(title string, exercises []LabExercise, pick func(LabExercise) []Item) *Notes {
	if len(exercises) == 1 {
		items := pick(exercises[0])
		if len(items) == 0 {
			return nil
		}
		return NewNotes(title, items...)
	}

	var levels []Item
	for i, e := range exercises {
		items := pick(e)
		if len(items) == 0 {
			continue
		}
		levels = append(levels, NewNotes(fmt.Sprintf("Level %d", i+1), items...))
	}
	if len(levels) == 0 {
		return nil
	}
	return NewNotes(title, levels...)
}

// AddLab appends a lab to the group; its lecture joins the group's
// lectures.
func (g *Group) AddLab(lab *LabExerciseLecture) {
	g.Labs = append(g.Labs, lab)
	g.Lectures = append(g.Lectures, &lab.Lecture)
}

// AnswersRST renders the answers page for the group's labs, or "" when no
// lab has answers.
func (g *Group) AnswersRST() (string, error) {
	var b strings.Builder
	for _, lab := range g.Labs {
		s, err := lab.AnswersRST()
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	if b.Len() == 0 {
		return "", nil
	}
	return rst.Header(g.Title+" Answers", 2) + b.String(), nil
}
