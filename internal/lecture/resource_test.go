// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lecture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/course-engine/pkg/types"
)

func intPtr(i int) *int { return &i }

func TestResourceURL(t *testing.T) {
	tests := []struct {
		name string
		r    Resource
		want string
	}{
		{"static", Resource{Name: "a", StaticURL: "files/a.pdf"}, "/_static/files/a.pdf"},
		{"external", Resource{Name: "a", ExternalURL: "https://example.com"}, "https://example.com"},
		{"static wins", Resource{Name: "a", StaticURL: "a.pdf", ExternalURL: "https://example.com"}, "/_static/a.pdf"},
		{"none", Resource{Name: "a"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.URL())
		})
	}
}

func TestResourceDisplayName(t *testing.T) {
	updated := time.Date(2020, time.January, 5, 9, 7, 0, 0, time.UTC)

	tests := []struct {
		name string
		r    Resource
		want string
	}{
		{"name only", Resource{Name: "Slides"}, "Slides"},
		{"with index", Resource{Name: "Slides", Index: intPtr(3)}, "3 Slides"},
		{"zero index kept", Resource{Name: "Slides", Index: intPtr(0)}, "0 Slides"},
		{"with update", Resource{Name: "Slides", Updated: &updated}, "Slides (updated January 5,  9:07 AM)"},
		{
			"custom format",
			Resource{Name: "Slides", Index: intPtr(1), Updated: &updated, DateTimeFormat: "%Y-%m-%d"},
			"1 Slides (updated 2020-01-05)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.r.DisplayName()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResourceDisplayNameFormats(t *testing.T) {
	morning := time.Date(2020, time.January, 5, 9, 7, 3, 0, time.UTC)
	afternoon := time.Date(2021, time.September, 15, 15, 4, 0, 0, time.UTC)
	midnight := time.Date(2021, time.March, 1, 0, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		t      time.Time
		format string
		want   string
	}{
		{"default single digit day", morning, DefaultDateTimeFormat, "January 5,  9:07 AM"},
		{"default two digit day", afternoon, DefaultDateTimeFormat, "September15,  3:04 PM"},
		{"midnight is twelve", midnight, "%I:%M %p", "12:30 AM"},
		{"iso date", afternoon, "%Y-%m-%d", "2021-09-15"},
		{"F and T", morning, "%F %T", "2020-01-05 09:07:03"},
		{"short names", afternoon, "%a %b %d %y", "Wed Sep 15 21"},
		{"full weekday", morning, "%A", "Sunday"},
		{"day of year", afternoon, "%j", "258"},
		{"space padded 24h", morning, "%k", " 9"},
		{"literal percent", morning, "100%%", "100%"},
		{"no directives", morning, "updated", "updated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resource{Name: "R", Updated: &tt.t, DateTimeFormat: tt.format}
			got, err := r.DisplayName()
			require.NoError(t, err)
			assert.Equal(t, "R (updated "+tt.want+")", got)
		})
	}
}

func TestResourceDisplayNameBadFormat(t *testing.T) {
	updated := time.Date(2020, time.January, 5, 9, 7, 0, 0, time.UTC)
	r := Resource{Name: "Slides", StaticURL: "s.pdf", Updated: &updated, DateTimeFormat: "%Q"}

	_, err := r.DisplayName()
	assert.ErrorContains(t, err, `"Slides"`)

	_, err = r.ToRST()
	assert.Error(t, err)
}

func TestResourceToRST(t *testing.T) {
	got, err := Resource{Name: "Slides", StaticURL: "generated/pdfs/S1 Intro.pdf"}.ToRST()
	require.NoError(t, err)
	assert.Equal(t, "\n- :download:`Slides </_static/generated/pdfs/S1 Intro.pdf>`\n", got)

	got, err = Resource{Name: "Site", ExternalURL: "https://example.com"}.ToRST()
	require.NoError(t, err)
	assert.Equal(t, "\n- `Site <https://example.com>`_\n", got)

	_, err = Resource{Name: "Nowhere"}.ToRST()
	assert.ErrorIs(t, err, ErrNoLink)
}

func TestResourceEqual(t *testing.T) {
	updated := time.Now()
	a := Resource{Name: "Slides", StaticURL: "s.pdf", Index: intPtr(1)}
	b := Resource{Name: "Slides", StaticURL: "s.pdf", Index: intPtr(2), Updated: &updated}

	assert.True(t, a.Equal(b), "index and update time do not take part")
	assert.False(t, a.Equal(Resource{Name: "Other", StaticURL: "s.pdf"}))
	assert.False(t, a.Equal(Resource{Name: "Slides", StaticURL: "s.pdf", ExternalURL: "https://example.com"}))
}

func TestFromMetadata(t *testing.T) {
	modified := time.Date(2021, time.February, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		md      types.ContentMetadata
		url     string
		want    Resource
		wantErr error
	}{
		{
			name: "generated content gets automatic url",
			md: types.ContentMetadata{
				Name: "Intro", ContentTypeCode: "S", ContentIndex: intPtr(1),
				OutputExtension: "pdf", LastModified: &modified, Generated: true,
			},
			want: Resource{Name: "Intro", StaticURL: "generated/pdfs/S1 Intro.pdf", Index: intPtr(1), Updated: &modified},
		},
		{
			name: "explicit url wins",
			md:   types.ContentMetadata{Name: "Lab", OutputExtension: "ipynb", Generated: true},
			url:  "Lab Exercises/Lab.ipynb",
			want: Resource{Name: "Lab", StaticURL: "Lab Exercises/Lab.ipynb"},
		},
		{
			name: "metadata url used when no argument",
			md:   types.ContentMetadata{Name: "Notebook", URL: "Examples/n.ipynb"},
			want: Resource{Name: "Notebook", StaticURL: "Examples/n.ipynb"},
		},
		{
			name:    "non-generated without url",
			md:      types.ContentMetadata{Name: "Handout", OutputExtension: "pdf"},
			wantErr: ErrNotImplemented,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromMetadata(tt.md, tt.url)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
