// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docmodel

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const maxMarkdownHeading = 6

// WriteMarkdown writes nodes as CommonMark. Top-level sections start at
// heading level 1.
func WriteMarkdown(w io.Writer, nodes ...Node) error {
	var b strings.Builder
	for _, n := range nodes {
		markdownBlock(&b, n, 1)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Markdown returns nodes as CommonMark.
func Markdown(nodes ...Node) string {
	var b strings.Builder
	_ = WriteMarkdown(&b, nodes...)
	return b.String()
}

// markdownRenderer converts the Markdown rendering to HTML.
var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// ToHTML renders nodes to an HTML fragment by way of Markdown.
func ToHTML(nodes ...Node) (string, error) {
	var out bytes.Buffer
	if err := markdownRenderer.Convert([]byte(Markdown(nodes...)), &out); err != nil {
		return "", fmt.Errorf("converting markdown to html: %w", err)
	}
	return out.String(), nil
}

func markdownBlock(b *strings.Builder, n Node, level int) {
	switch v := n.(type) {
	case *Section:
		if v.Title != "" {
			fmt.Fprintf(b, "%s %s\n\n", strings.Repeat("#", min(level, maxMarkdownHeading)), v.Title)
		}
		for _, child := range v.Items {
			markdownBlock(b, child, level+1)
		}
	case *UnorderedList:
		if v.Title != "" {
			fmt.Fprintf(b, "**%s**\n\n", v.Title)
		}
		if len(v.Items) > 0 {
			markdownList(b, v.Items, "")
			b.WriteString("\n")
		}
	default:
		if s := markdownInline(n); s != "" {
			b.WriteString(s)
			b.WriteString("\n\n")
		}
	}
}

func markdownList(b *strings.Builder, items []Node, indent string) {
	for _, item := range items {
		switch v := item.(type) {
		case *UnorderedList:
			markdownNestedItem(b, v.Title, v.Items, indent)
		case *Section:
			markdownNestedItem(b, v.Title, v.Items, indent)
		default:
			fmt.Fprintf(b, "%s- %s\n", indent, markdownInline(item))
		}
	}
}

func markdownNestedItem(b *strings.Builder, title string, items []Node, indent string) {
	if title != "" {
		fmt.Fprintf(b, "%s- **%s**\n", indent, title)
	} else {
		fmt.Fprintf(b, "%s-\n", indent)
	}
	markdownList(b, items, indent+"  ")
}

func markdownInline(n Node) string {
	switch v := n.(type) {
	case Text:
		return string(v)
	case Equation:
		return "$" + v.LaTeX + "$"
	case Hyperlink:
		if v.Text == "" {
			return "<" + v.URL + ">"
		}
		return fmt.Sprintf("[%s](%s)", v.Text, v.URL)
	case *Paragraph:
		parts := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			if s := markdownInline(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case *Section:
		return v.Title
	case *UnorderedList:
		return v.Title
	}
	return ""
}
