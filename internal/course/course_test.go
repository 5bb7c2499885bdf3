// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package course

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/course-engine/internal/lecture"
	"github.com/pdiddy/course-engine/pkg/types"
)

// writeFile is a test helper that creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func testVars() map[string]string {
	return map[string]string{
		"site_url":   "https://example.edu/fin-model/",
		"lab_folder": "Lab Exercises",
	}
}

func loadTestCourse(t *testing.T) []*lecture.Group {
	t.Helper()
	groups, err := Load(filepath.Join("testdata", "course"), Options{Vars: testVars()})
	require.NoError(t, err)
	return groups
}

func TestCourseFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yml", "groups: []\n")
	writeFile(t, dir, "a.yaml", "groups: []\n")
	writeFile(t, dir, "notes.md", "# ignored\n")
	writeFile(t, dir, ".hidden.yaml", "groups: []\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.yaml"), 0o755))

	files, err := CourseFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yml")}, files)
}

func TestCourseFilesMissingDir(t *testing.T) {
	_, err := CourseFiles(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	groups := loadTestCourse(t)
	require.Len(t, groups, 3)

	basics := groups[0]
	assert.Equal(t, "Python Basics", basics.Title)
	assert.Equal(t, "2", basics.Order)
	assert.Equal(t, types.KindLectures, basics.Kind)
	assert.Equal(t, "2-python-basics", basics.Stub())
	require.Len(t, basics.GlobalResources, 1)
	assert.Equal(t, "https://example.edu/fin-model/", basics.GlobalResources[0].ExternalURL)

	require.Equal(t, 2, basics.Len())
	vars := basics.At(0)
	assert.Equal(t, 1, vars.WeekCovered)
	assert.Equal(t, "abc123", vars.YouTubeID)
	require.NotNil(t, vars.Notes)
	require.Equal(t, 3, vars.Notes.Len())
	assert.Equal(t, "Everything in Python is an object", vars.Notes.At(0))

	numbers, ok := vars.Notes.At(1).(*lecture.Notes)
	require.True(t, ok)
	assert.Equal(t, "Numbers", numbers.Title)
	assert.Equal(t, lecture.List{"Growth is", lecture.Equation{LaTeX: "(1 + r)^n"}}, numbers.At(1))

	assert.Equal(t, lecture.Link{Href: "https://docs.python.org/3/", DisplayText: "Python docs"}, vars.Notes.At(2))

	require.Len(t, vars.Resources, 2)
	slides := vars.Resources[0]
	assert.Equal(t, "Python Basics Slides", slides.Name)
	assert.Equal(t, "generated/pdfs/S2 Python Basics.pdf", slides.StaticURL)
	assert.Equal(t, "/_static/Examples/cheat_sheet.pdf", vars.Resources[1].URL())

	assert.Nil(t, basics.At(1).Notes)

	labs := groups[1]
	assert.Equal(t, types.KindLabs, labs.Kind)
	require.Len(t, labs.Labs, 1)
	lab := labs.Labs[0]
	assert.Equal(t, "Vary Savings Rate Lab", lab.ShortTitle)
	assert.Equal(t, 2, lab.WeekCovered)
	assert.Equal(t, "Lab Exercises/Retirement.ipynb", lab.Resources[0].StaticURL)
	require.NotNil(t, lab.AnswersNotes())
	assert.Same(t, &lab.Lecture, labs.At(0))

	assert.Equal(t, types.KindProjects, groups[2].Kind)
}

func TestLoadRendersRST(t *testing.T) {
	groups := loadTestCourse(t)
	out, err := groups[0].ToRST()
	require.NoError(t, err)
	assert.Contains(t, out, "- Growth is :math:`(1 + r)^n`")
	assert.Contains(t, out, "- `Python docs <https://docs.python.org/3/>`_")
	assert.Contains(t, out, ":download:`2 Python Basics Slides </_static/generated/pdfs/S2 Python Basics.pdf>`")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "unknown ref",
			yaml:    "groups:\n  - title: G\n    global_resources:\n      - ref: nope\n",
			wantErr: ErrUnknownRef,
		},
		{
			name:    "unknown variable",
			yaml:    "groups:\n  - title: ${missing}\n",
			wantErr: ErrUnknownVar,
		},
		{
			name:    "invalid kind",
			yaml:    "groups:\n  - title: G\n    kind: seminars\n",
			wantErr: ErrInvalidKind,
		},
		{
			name: "mapping item without known keys",
			yaml: `groups:
  - title: G
    lectures:
      - title: L
        notes:
          title: N
          items:
            - color: red
`,
			wantErr: ErrInvalidItem,
		},
		{
			name: "relative link",
			yaml: `groups:
  - title: G
    lectures:
      - title: L
        notes:
          title: N
          items:
            - link: /docs
`,
			wantErr: lecture.ErrInvalidURL,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "course.yaml", tt.yaml)
			_, err := Load(dir, Options{})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "course.yaml")
		})
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.yaml", ":::bad\n")
	_, err := Load(dir, Options{})
	assert.Error(t, err)
}

func TestLoadDuplicateSharedResource(t *testing.T) {
	dir := t.TempDir()
	res := "resources:\n  site:\n    name: Site\n    external_url: https://example.com\n"
	writeFile(t, dir, "a.yaml", res)
	writeFile(t, dir, "b.yaml", res)
	_, err := Load(dir, Options{})
	assert.ErrorIs(t, err, ErrDuplicateRef)
}

func TestLoadCrossFileRef(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "groups:\n  - title: G\n    global_resources:\n      - ref: site\n")
	writeFile(t, dir, "b.yaml", "resources:\n  site:\n    name: Site\n    external_url: https://example.com\n")

	groups, err := Load(dir, Options{})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Site", groups[0].GlobalResources[0].Name)
}

func TestLoadSkipsNullItems(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "c.yaml", `groups:
  - title: G
    lectures:
      - title: L
        notes:
          title: N
          items:
            - a
            -
            - b
`)
	groups, err := Load(dir, Options{})
	require.NoError(t, err)
	assert.Equal(t, []lecture.Item{"a", "b"}, groups[0].At(0).Notes.Items)
}

func TestSelect(t *testing.T) {
	lectures := &lecture.Group{Title: "L", Kind: types.KindLectures}
	labs := &lecture.Group{Title: "Labs", Kind: types.KindLabs}
	projects := &lecture.Group{Title: "P", Kind: types.KindProjects}
	untyped := &lecture.Group{Title: "U"}
	all := []*lecture.Group{labs, lectures, projects, untyped}

	titles := func(gs []*lecture.Group) []string {
		out := make([]string, len(gs))
		for i, g := range gs {
			out[i] = g.Title
		}
		return out
	}

	tests := []struct {
		name            string
		includeLabs     bool
		includeProjects bool
		want            []string
	}{
		{"lectures only", false, false, []string{"L", "U"}},
		{"with projects", false, true, []string{"L", "U", "P"}},
		{"labs imply projects", true, false, []string{"L", "U", "P", "Labs"}},
		{"everything", true, true, []string{"L", "U", "P", "Labs"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(Select(all, tt.includeLabs, tt.includeProjects)))
		})
	}
}
