// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lecture

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/pdiddy/course-engine/internal/rst"
	"github.com/pdiddy/course-engine/pkg/types"
)

const (
	// StaticPrefix is prepended to static URLs; Sphinx serves _static/ at
	// the site root.
	StaticPrefix = "/_static/"

	// DefaultDateTimeFormat is the strftime pattern for update times.
	DefaultDateTimeFormat = "%B%e, %l:%M %p"
)

// Resource is a downloadable file or external link attached to a lecture.
// An empty StaticURL or ExternalURL means the link is absent.
type Resource struct {
	Name        string
	StaticURL   string
	ExternalURL string
	Updated     *time.Time
	Index       *int

	// DateTimeFormat is the strftime pattern for Updated. Empty uses
	// DefaultDateTimeFormat.
	DateTimeFormat string
}

// Equal reports whether two resources point at the same thing. Only the
// name and the two URLs take part; index and update time do not.
func (r Resource) Equal(other Resource) bool {
	return r.Name == other.Name &&
		r.StaticURL == other.StaticURL &&
		r.ExternalURL == other.ExternalURL
}

// URL returns the link target: the static URL under StaticPrefix when
// set, else the external URL, else "".
func (r Resource) URL() string {
	if r.StaticURL != "" {
		return StaticPrefix + r.StaticURL
	}
	return r.ExternalURL
}

// DisplayName returns the link text: an optional index prefix, the name,
// and an optional update time. An invalid DateTimeFormat is an error.
func (r Resource) DisplayName() (string, error) {
	var b strings.Builder
	if r.Index != nil {
		b.WriteString(strconv.Itoa(*r.Index))
		b.WriteString(" ")
	}
	b.WriteString(r.Name)
	if r.Updated != nil {
		format := r.DateTimeFormat
		if format == "" {
			format = DefaultDateTimeFormat
		}
		updated, err := strftime.Format(format, *r.Updated)
		if err != nil {
			return "", fmt.Errorf("formatting update time of %q: %w", r.Name, err)
		}
		fmt.Fprintf(&b, " (updated %s)", updated)
	}
	return b.String(), nil
}

// ToRST returns the resource as a bullet: a download role for static
// files, an external hyperlink otherwise.
func (r Resource) ToRST() (string, error) {
	if r.StaticURL == "" && r.ExternalURL == "" {
		return "", fmt.Errorf("%w: cannot form rst for %q", ErrNoLink, r.Name)
	}
	name, err := r.DisplayName()
	if err != nil {
		return "", err
	}
	if r.StaticURL != "" {
		return "\n- " + rst.Download(name, r.URL()) + "\n", nil
	}
	return "\n- " + rst.Link(name, r.URL()) + "\n", nil
}

// FromMetadata builds a resource for a content file. When url is empty,
// generated content gets generated/<ext>s/<code><index> <name>.<ext>.
func FromMetadata(md types.ContentMetadata, url string) (Resource, error) {
	if url == "" {
		url = md.URL
	}
	if url == "" {
		if !md.Generated {
			return Resource{}, fmt.Errorf("%w: %q", ErrNotImplemented, md.Name)
		}
		index := ""
		if md.ContentIndex != nil {
			index = strconv.Itoa(*md.ContentIndex)
		}
		url = fmt.Sprintf("generated/%ss/%s%s %s.%s",
			md.OutputExtension, md.ContentTypeCode, index, md.Name, md.OutputExtension)
	}
	return Resource{
		Name:      md.Name,
		StaticURL: url,
		Index:     md.ContentIndex,
		Updated:   md.LastModified,
	}, nil
}

// containsResource reports whether rs holds a resource Equal to r.
func containsResource(rs []Resource, r Resource) bool {
	for _, existing := range rs {
		if existing.Equal(r) {
			return true
		}
	}
	return false
}

// resourcesRST renders a Resources header at level followed by each
// resource bullet.
func resourcesRST(rs []Resource, level int) (string, error) {
	parts := make([]string, len(rs))
	for i, r := range rs {
		s, err := r.ToRST()
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return rst.Header("Resources", level) + "\n" + strings.Join(parts, "\n") + "\n", nil
}
