// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lecture

import (
	"fmt"
	"net/url"

	"github.com/pdiddy/course-engine/internal/docmodel"
	"github.com/pdiddy/course-engine/internal/rst"
)

// Equation is inline math written in LaTeX.
type Equation struct {
	LaTeX string
}

// ToModel returns the equation as a document node.
func (e Equation) ToModel() docmodel.Node {
	return docmodel.Equation{LaTeX: e.LaTeX}
}

// ToRST returns the equation as a math role.
func (e Equation) ToRST() string {
	return rst.Math(e.LaTeX)
}

// Link is a hyperlink with optional display text.
type Link struct {
	Href        string
	DisplayText string
}

// NewLink validates href as an absolute http or https URL.
func NewLink(href, displayText string) (Link, error) {
	u, err := url.Parse(href)
	if err != nil {
		return Link{}, fmt.Errorf("%w: %q: %v", ErrInvalidURL, href, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Link{}, fmt.Errorf("%w: %q", ErrInvalidURL, href)
	}
	return Link{Href: href, DisplayText: displayText}, nil
}

// ToModel returns the link as a document node.
func (l Link) ToModel() docmodel.Node {
	return docmodel.Hyperlink{URL: l.Href, Text: l.DisplayText}
}

// ToRST returns the link as an anonymous hyperlink. Underscores in the
// display text are escaped.
func (l Link) ToRST() string {
	if l.DisplayText != "" {
		return rst.Link(rst.EscapeUnderscores(l.DisplayText), l.Href)
	}
	return rst.Link("", l.Href)
}
