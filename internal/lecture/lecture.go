// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lecture

import (
	"fmt"
	"strings"

	"github.com/pdiddy/course-engine/internal/rst"
)

// Lecture is a single lecture: notes, an optional video and resources,
// scheduled in the week it is covered.
type Lecture struct {
	Title       string
	WeekCovered int
	Notes       *Notes
	YouTubeID   string
	Resources   []Resource
}

// ToRST renders the lecture as a level-3 section with optional video,
// notes, and resources subsections.
func (l *Lecture) ToRST() (string, error) {
	var b strings.Builder
	b.WriteString(rst.Header(l.Title, 3))

	if l.YouTubeID != "" {
		b.WriteString(rst.YouTube(l.YouTubeID))
	}

	if l.Notes != nil {
		notes, err := l.Notes.ToRST()
		if err != nil {
			return "", fmt.Errorf("lecture %q: %w", l.Title, err)
		}
		b.WriteString(rst.Header("Notes", 4))
		b.WriteString(notes)
	}

	if len(l.Resources) > 0 {
		res, err := resourcesRST(l.Resources, 4)
		if err != nil {
			return "", fmt.Errorf("lecture %q: %w", l.Title, err)
		}
		b.WriteString(res)
	}

	return b.String(), nil
}
