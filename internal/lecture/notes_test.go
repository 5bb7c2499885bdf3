// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lecture

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/course-engine/internal/docmodel"
)

func TestNotesIndexing(t *testing.T) {
	n := NewNotes("N", "a", "b")
	assert.Equal(t, 2, n.Len())
	assert.Equal(t, "b", n.At(1))
}

func TestNotesToRST(t *testing.T) {
	tests := []struct {
		name  string
		notes *Notes
		want  string
	}{
		{
			name:  "plain strings",
			notes: NewNotes("N", "first", "second"),
			want:  "\n- first\n- second\n",
		},
		{
			name:  "list joins into one bullet",
			notes: NewNotes("N", List{"see", Equation{LaTeX: "x^2"}, "here"}),
			want:  "\n- see :math:`x^2` here\n",
		},
		{
			name:  "untyped slice joins like a list",
			notes: NewNotes("N", List{"a", []any{"b", "c"}}),
			want:  "\n- a b c\n",
		},
		{
			name:  "serializable items",
			notes: NewNotes("N", Link{Href: "https://example.com", DisplayText: "my_link"}, Link{Href: "https://example.com"}),
			want:  "\n- `my\\_link <https://example.com>`_\n- `<https://example.com>`_\n",
		},
		{
			name:  "nested notes render flat as one bullet",
			notes: NewNotes("Top", "a", NewNotes("Sub", "b", "c")),
			want:  "\n- a\n- \n- b\n- c\n\n",
		},
		{
			name:  "empty",
			notes: NewNotes("Empty"),
			want:  "\n\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.notes.ToRST()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotesToRSTUnserializable(t *testing.T) {
	_, err := NewNotes("Bad", "ok", 42).ToRST()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnserializable))
	assert.Contains(t, err.Error(), "42 of type int")
	assert.Contains(t, err.Error(), `notes "Bad"`)
}

func TestNotesToRSTNestedUnserializable(t *testing.T) {
	_, err := NewNotes("Top", NewNotes("Sub", List{"a", struct{}{}})).ToRST()
	assert.ErrorIs(t, err, ErrUnserializable)
}

func TestRSTBulletContentNilNotes(t *testing.T) {
	var nilNotes *Notes
	_, err := RSTBulletContent(nilNotes)
	assert.ErrorIs(t, err, ErrUnserializable)
}

func TestNotesToModel(t *testing.T) {
	notes := NewNotes("Top",
		"a",
		Equation{LaTeX: "x"},
		NewNotes("Sub", "b"),
		"c",
		List{"d", Link{Href: "https://example.com"}},
		"f",
	)

	want := &docmodel.Section{
		Title: "Top",
		Items: []docmodel.Node{
			&docmodel.UnorderedList{Items: []docmodel.Node{docmodel.Text("a"), docmodel.Equation{LaTeX: "x"}}},
			&docmodel.UnorderedList{Title: "Sub", Items: []docmodel.Node{
				&docmodel.UnorderedList{Items: []docmodel.Node{docmodel.Text("b")}},
			}},
			&docmodel.UnorderedList{Items: []docmodel.Node{docmodel.Text("c")}},
			&docmodel.Paragraph{Items: []docmodel.Node{docmodel.Text("d"), docmodel.Hyperlink{URL: "https://example.com"}}},
			&docmodel.UnorderedList{Items: []docmodel.Node{docmodel.Text("f")}},
		},
	}

	assert.Equal(t, want, notes.ToModel(nil, nil))
}

func TestNotesModelItemsWithoutTop(t *testing.T) {
	items := NewNotes("Top", "a", "b").ModelItems(nil)
	require.Len(t, items, 1)
	assert.Equal(t, &docmodel.UnorderedList{Items: []docmodel.Node{docmodel.Text("a"), docmodel.Text("b")}}, items[0])
}

func TestNotesToModelCustomBuilders(t *testing.T) {
	var titles []string
	record := func(kind string) docmodel.Builder {
		return func(items []docmodel.Node, title string) docmodel.Node {
			titles = append(titles, kind+":"+title)
			return &docmodel.Section{Title: title, Items: items}
		}
	}

	NewNotes("Top", "a", NewNotes("Sub", "b")).ToModel(record("top"), record("sub"))

	// Nested notes fold first (their own run, then their titled sub),
	// then the outer run, then the top wraps everything.
	assert.Equal(t, []string{"sub:", "sub:Sub", "sub:", "top:Top"}, titles)
}

func TestNotesToModelNotesInsideList(t *testing.T) {
	notes := NewNotes("Top", List{"see", NewNotes("Sub", "b"), "then"})

	want := []docmodel.Node{
		&docmodel.Paragraph{Items: []docmodel.Node{docmodel.Text("see")}},
		&docmodel.UnorderedList{Title: "Sub", Items: []docmodel.Node{
			&docmodel.UnorderedList{Items: []docmodel.Node{docmodel.Text("b")}},
		}},
		&docmodel.Paragraph{Items: []docmodel.Node{docmodel.Text("then")}},
	}
	assert.Equal(t, want, notes.ModelItems(nil))

	model := notes.ToModel(nil, nil)
	assert.NotContains(t, docmodel.LaTeX(model), "&{")
	assert.NotContains(t, docmodel.Markdown(model), "&{")
	assert.Equal(t, "# Top\n\nsee\n\n**Sub**\n\n-\n  - b\n\nthen\n\n", docmodel.Markdown(model))
}

func TestNotesToModelUnknownItemStandsAlone(t *testing.T) {
	got := NewNotes("Top", "a", 7, "b").ModelItems(nil)
	require.Len(t, got, 3)
	assert.Equal(t, &docmodel.Paragraph{Items: []docmodel.Node{docmodel.Text("7")}}, got[1])
}

func TestNotesToModelKeepsDocNodes(t *testing.T) {
	table := &docmodel.Paragraph{Items: []docmodel.Node{docmodel.Text("raw")}}
	got := NewNotes("Top", table).ModelItems(nil)
	require.Len(t, got, 1)
	assert.Same(t, table, got[0])
}

func TestNotesModelContent(t *testing.T) {
	got := NewNotes("N", "a", List{"b", Equation{LaTeX: "x"}}, 7).ModelContent()
	want := []any{
		"a",
		[]any{"b", docmodel.Equation{LaTeX: "x"}},
		7,
	}
	assert.Equal(t, want, got)
}

func TestNewLink(t *testing.T) {
	tests := []struct {
		name    string
		href    string
		wantErr bool
	}{
		{"https", "https://example.com/path", false},
		{"http", "http://example.com", false},
		{"relative", "/docs/page", true},
		{"other scheme", "ftp://example.com", true},
		{"no host", "https://", true},
		{"unparseable", "http://[::1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLink(tt.href, "text")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.href, l.Href)
			assert.Equal(t, "text", l.DisplayText)
		})
	}
}

func TestSerializableModels(t *testing.T) {
	var _ Serializable = Equation{}
	var _ Serializable = Link{}

	assert.Equal(t, docmodel.Equation{LaTeX: "a+b"}, Equation{LaTeX: "a+b"}.ToModel())
	assert.Equal(t, docmodel.Hyperlink{URL: "https://example.com", Text: "Ex"},
		Link{Href: "https://example.com", DisplayText: "Ex"}.ToModel())
}
