// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rst writes the reStructuredText fragments used by the course
// website: section headers, bullet lists, roles, and the directives the
// Sphinx build understands.
package rst

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// headerChars follows the Sphinx convention: # with overline for parts,
// * with overline for chapters, then = - ^ " for sections and below.
var headerChars = []struct {
	char     string
	overline bool
}{
	{"#", true},
	{"*", true},
	{"=", false},
	{"-", false},
	{"^", false},
	{`"`, false},
}

// MaxHeaderLevel is the deepest supported header level.
const MaxHeaderLevel = 6

// Header returns title formatted as a section header at level (1-based).
// Levels outside 1..MaxHeaderLevel are clamped.
func Header(title string, level int) string {
	if level < 1 {
		level = 1
	}
	if level > MaxHeaderLevel {
		level = MaxHeaderLevel
	}
	hc := headerChars[level-1]
	line := strings.Repeat(hc.char, max(utf8.RuneCountInString(title), 1))

	var b strings.Builder
	b.WriteString("\n")
	if hc.overline {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(line)
	b.WriteString("\n")
	return b.String()
}

// Bullets renders lines as a flat bullet list surrounded by newlines.
func Bullets(lines []string) string {
	prefixed := make([]string, len(lines))
	for i, l := range lines {
		prefixed[i] = "- " + l
	}
	return "\n" + strings.Join(prefixed, "\n") + "\n"
}

// EscapeUnderscores escapes underscores so they are not read as link
// references.
func EscapeUnderscores(s string) string {
	return strings.ReplaceAll(s, "_", `\_`)
}

// Math returns an inline math role.
func Math(latex string) string {
	return fmt.Sprintf(":math:`%s`", latex)
}

// Link returns an anonymous-target hyperlink. An empty text produces a
// bare link.
func Link(text, href string) string {
	if text == "" {
		return fmt.Sprintf("`<%s>`_", href)
	}
	return fmt.Sprintf("`%s <%s>`_", text, href)
}

// Download returns a download role for a static file.
func Download(text, href string) string {
	return fmt.Sprintf(":download:`%s <%s>`", text, href)
}

// YouTube returns the embed directive for a YouTube video followed by a
// blank line block.
func YouTube(id string) string {
	return fmt.Sprintf(`
.. youtube:: %s
    :height: 315
    :width: 560
    :align: center

|
`, id)
}

// Toctree returns a toctree directive listing entries.
func Toctree(maxDepth int, entries []string) string {
	var b strings.Builder
	b.WriteString("\n.. toctree::\n")
	fmt.Fprintf(&b, "    :maxdepth: %d\n\n", maxDepth)
	for _, e := range entries {
		fmt.Fprintf(&b, "    %s\n", e)
	}
	return b.String()
}
