// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lecture models course lectures: recursive lecture notes,
// resource links, lectures, lecture groups, and lab exercises. Notes fold
// into a docmodel tree for LaTeX, Markdown and HTML output, or into flat
// bullet text for the reStructuredText site.
package lecture

import (
	"fmt"
	"strings"

	"github.com/pdiddy/course-engine/internal/docmodel"
	"github.com/pdiddy/course-engine/internal/rst"
)

// Item is one entry of a Notes tree. Recognised kinds are string, List,
// *Notes, and values implementing ModelSerializer and/or RSTSerializer.
type Item = any

// List is an inline sequence of items. It renders as a single bullet whose
// parts are joined with spaces.
type List []Item

// ModelSerializer is implemented by items that convert to a document node.
type ModelSerializer interface {
	ToModel() docmodel.Node
}

// RSTSerializer is implemented by items that render as reStructuredText.
type RSTSerializer interface {
	ToRST() string
}

// Serializable items render in every output format.
type Serializable interface {
	ModelSerializer
	RSTSerializer
}

// Notes is a titled, ordered collection of items. Items may themselves be
// Notes, forming a tree.
type Notes struct {
	Title string
	Items []Item
}

// NewNotes returns notes holding items.
func NewNotes(title string, items ...Item) *Notes {
	return &Notes{Title: title, Items: items}
}

// Len returns the number of items.
func (n *Notes) Len() int {
	return len(n.Items)
}

// At returns the item at index i.
func (n *Notes) At(i int) Item {
	return n.Items[i]
}

// ToModel folds the notes into top(ModelItems(sub), Title). Nil builders
// default to docmodel.NewSection and docmodel.NewUnorderedList.
func (n *Notes) ToModel(top, sub docmodel.Builder) docmodel.Node {
	if top == nil {
		top = docmodel.NewSection
	}
	return top(n.ModelItems(sub), n.Title)
}

// ModelItems converts the items without wrapping them in a top container.
//
// Nested notes are folded first, with sub as both their top and sub
// builder. Runs of consecutive strings and model-serializable items are
// then collected into sub(run, ""). Any other item ends the current run
// and is kept on its own, so item order is preserved.
func (n *Notes) ModelItems(sub docmodel.Builder) []docmodel.Node {
	if sub == nil {
		sub = docmodel.NewUnorderedList
	}

	folded := make([]Item, len(n.Items))
	for i, item := range n.Items {
		if v, ok := item.(*Notes); ok {
			if v != nil {
				folded[i] = v.ToModel(sub, sub)
			}
			continue
		}
		folded[i] = item
	}

	var (
		final []docmodel.Node
		run   []docmodel.Node
	)
	flush := func() {
		if len(run) > 0 {
			final = append(final, sub(run, ""))
			run = nil
		}
	}

	for _, item := range folded {
		switch v := item.(type) {
		case nil:
		case string:
			run = append(run, docmodel.Text(v))
		case ModelSerializer:
			run = append(run, v.ToModel())
		default:
			flush()
			final = append(final, standaloneModels(item, sub)...)
		}
	}
	flush()

	return final
}

// ModelContent returns each item converted for a document model:
// strings pass through, lists recurse, model-serializable items are
// converted, and anything else is returned unchanged.
func (n *Notes) ModelContent() []any {
	out := make([]any, len(n.Items))
	for i, item := range n.Items {
		out[i] = ModelContent(item)
	}
	return out
}

// ModelContent converts a single item the way Notes.ModelContent does.
func ModelContent(item Item) any {
	switch v := item.(type) {
	case string:
		return v
	case List:
		return modelContentSlice(v)
	case []any:
		return modelContentSlice(v)
	case ModelSerializer:
		return v.ToModel()
	}
	return item
}

func modelContentSlice(items []Item) []any {
	out := make([]any, len(items))
	for i, sub := range items {
		out[i] = ModelContent(sub)
	}
	return out
}

// standaloneModels converts an item that does not join a bullet run.
func standaloneModels(item Item, sub docmodel.Builder) []docmodel.Node {
	switch v := item.(type) {
	case docmodel.Node:
		return []docmodel.Node{v}
	case List:
		return listModels(v, sub)
	case []any:
		return listModels(v, sub)
	}
	return []docmodel.Node{&docmodel.Paragraph{Items: []docmodel.Node{docmodel.Text(fmt.Sprint(item))}}}
}

// listModels renders an inline list as a paragraph. Nested notes inside
// the list end the paragraph and fold with sub as blocks of their own.
func listModels(items []Item, sub docmodel.Builder) []docmodel.Node {
	var out, inline []docmodel.Node
	flush := func() {
		if len(inline) > 0 {
			out = append(out, &docmodel.Paragraph{Items: inline})
			inline = nil
		}
	}

	var walk func([]Item)
	walk = func(items []Item) {
		for _, item := range items {
			switch v := item.(type) {
			case string:
				inline = append(inline, docmodel.Text(v))
			case List:
				walk(v)
			case []any:
				walk(v)
			case *Notes:
				if v == nil {
					continue
				}
				flush()
				out = append(out, v.ToModel(sub, sub))
			case ModelSerializer:
				inline = append(inline, v.ToModel())
			case docmodel.Node:
				inline = append(inline, v)
			default:
				inline = append(inline, docmodel.Text(fmt.Sprint(item)))
			}
		}
	}
	walk(items)
	flush()

	return out
}

// ToRST renders the notes as a flat bullet list, one bullet per line
// produced by RSTBulletContent.
func (n *Notes) ToRST() (string, error) {
	var lines []string
	for _, item := range n.Items {
		l, err := RSTBulletContent(item)
		if err != nil {
			return "", fmt.Errorf("notes %q: %w", n.Title, err)
		}
		lines = append(lines, l...)
	}
	return rst.Bullets(lines), nil
}

// RSTBulletContent returns the bullet lines for one item. Strings are a
// single line; lists are flattened and joined with spaces into one line;
// nested notes and RST serializers contribute their rendered text as one
// line. Other values return ErrUnserializable.
func RSTBulletContent(item Item) ([]string, error) {
	switch v := item.(type) {
	case string:
		return []string{v}, nil
	case List:
		return joinedBullet(v)
	case []any:
		return joinedBullet(v)
	case *Notes:
		if v == nil {
			break
		}
		s, err := v.ToRST()
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	case RSTSerializer:
		return []string{v.ToRST()}, nil
	}
	return nil, fmt.Errorf("%w: %v of type %T", ErrUnserializable, item, item)
}

func joinedBullet(items []Item) ([]string, error) {
	var parts []string
	for _, sub := range items {
		l, err := RSTBulletContent(sub)
		if err != nil {
			return nil, err
		}
		parts = append(parts, l...)
	}
	return []string{strings.Join(parts, " ")}, nil
}
