// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docmodel

import (
	"fmt"
	"io"
	"strings"
)

// latexSections are the sectioning commands by depth.
var latexSections = []string{"section", "subsection", "subsubsection", "paragraph", "subparagraph"}

// WriteLaTeX writes nodes as a LaTeX body fragment.
func WriteLaTeX(w io.Writer, nodes ...Node) error {
	var b strings.Builder
	for _, n := range nodes {
		latexBlock(&b, n, 0)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// LaTeX returns nodes as a LaTeX body fragment.
func LaTeX(nodes ...Node) string {
	var b strings.Builder
	_ = WriteLaTeX(&b, nodes...)
	return b.String()
}

func latexBlock(b *strings.Builder, n Node, depth int) {
	switch v := n.(type) {
	case *Section:
		if v.Title != "" {
			cmd := latexSections[min(depth, len(latexSections)-1)]
			fmt.Fprintf(b, "\\%s{%s}\n\n", cmd, v.Title)
		}
		for _, child := range v.Items {
			latexBlock(b, child, depth+1)
		}
	case *UnorderedList:
		if v.Title != "" {
			fmt.Fprintf(b, "\\textbf{%s}\n\n", v.Title)
		}
		latexItemize(b, v.Items, "")
		b.WriteString("\n")
	default:
		if s := latexInline(n); s != "" {
			b.WriteString(s)
			b.WriteString("\n\n")
		}
	}
}

func latexItemize(b *strings.Builder, items []Node, indent string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s\\begin{itemize}\n", indent)
	for _, item := range items {
		switch v := item.(type) {
		case *UnorderedList:
			latexNestedItem(b, v.Title, v.Items, indent+"  ")
		case *Section:
			latexNestedItem(b, v.Title, v.Items, indent+"  ")
		default:
			fmt.Fprintf(b, "%s  \\item %s\n", indent, latexInline(item))
		}
	}
	fmt.Fprintf(b, "%s\\end{itemize}\n", indent)
}

func latexNestedItem(b *strings.Builder, title string, items []Node, indent string) {
	if title != "" {
		fmt.Fprintf(b, "%s\\item %s\n", indent, title)
	} else {
		fmt.Fprintf(b, "%s\\item\n", indent)
	}
	latexItemize(b, items, indent)
}

func latexInline(n Node) string {
	switch v := n.(type) {
	case Text:
		return string(v)
	case Equation:
		return "$" + v.LaTeX + "$"
	case Hyperlink:
		if v.Text == "" {
			return fmt.Sprintf("\\url{%s}", v.URL)
		}
		return fmt.Sprintf("\\href{%s}{%s}", v.URL, v.Text)
	case *Paragraph:
		parts := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			if s := latexInline(item); s != "" {
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
