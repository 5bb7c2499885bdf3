// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docmodel is a format-neutral document tree. Lecture notes are
// folded into it and it is written out as LaTeX, Markdown, or HTML.
package docmodel

// Node is an element of a document tree.
type Node interface {
	node()
}

// Section is a titled block of child nodes. Nested sections render one
// heading level deeper.
type Section struct {
	Title string
	Items []Node
}

// UnorderedList is a bullet list. A non-empty Title is rendered as the
// list's lead-in.
type UnorderedList struct {
	Title string
	Items []Node
}

// Paragraph holds inline nodes rendered on one line, separated by spaces.
type Paragraph struct {
	Items []Node
}

// Text is a run of literal text. It is written as-is; course content is
// authored already escaped for its target formats.
type Text string

// Equation is inline math in LaTeX syntax.
type Equation struct {
	LaTeX string
}

// Hyperlink is a link with optional display text.
type Hyperlink struct {
	URL  string
	Text string
}

func (*Section) node()       {}
func (*UnorderedList) node() {}
func (*Paragraph) node()     {}
func (Text) node()           {}
func (Equation) node()       {}
func (Hyperlink) node()      {}

// Builder constructs a container node from items and a title. Builders
// are how callers choose which containers notes fold into.
type Builder func(items []Node, title string) Node

// NewSection is a Builder producing a *Section.
func NewSection(items []Node, title string) Node {
	return &Section{Title: title, Items: items}
}

// NewUnorderedList is a Builder producing an *UnorderedList.
func NewUnorderedList(items []Node, title string) Node {
	return &UnorderedList{Title: title, Items: items}
}
