// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects a rendered output format.
type OutputFormat string

const (
	FormatRST      OutputFormat = "rst"
	FormatLaTeX    OutputFormat = "latex"
	FormatMarkdown OutputFormat = "markdown"
	FormatHTML     OutputFormat = "html"
)

// Extension returns the file extension (without dot) used for the format.
func (f OutputFormat) Extension() string {
	switch f {
	case FormatRST:
		return "rst"
	case FormatLaTeX:
		return "tex"
	case FormatMarkdown:
		return "md"
	case FormatHTML:
		return "html"
	}
	return ""
}

// Valid reports whether f is a known output format.
func (f OutputFormat) Valid() bool {
	return f.Extension() != ""
}

// SiteConfig holds the site-level constants used when building URLs.
type SiteConfig struct {
	// SiteURL is the base URL of the course website, with a trailing slash
	// (e.g. "https://example.edu/fin-model-course/").
	SiteURL string `json:"site_url" yaml:"site_url" mapstructure:"site_url"`

	// LabFolderName is the folder holding lab notebooks under _static/.
	// Course files reference it as ${lab_folder}.
	LabFolderName string `json:"lab_folder_name" yaml:"lab_folder_name" mapstructure:"lab_folder_name"`
}

// ContentConfig holds settings for loading course files.
type ContentConfig struct {
	// ContentDir is the directory holding the YAML course files.
	ContentDir string `json:"content_dir" yaml:"content_dir" mapstructure:"content_dir"`

	// IncludeLabs selects lab exercise groups.
	IncludeLabs bool `json:"include_labs" yaml:"include_labs" mapstructure:"include_labs"`

	// IncludeProjects selects project groups.
	IncludeProjects bool `json:"include_projects" yaml:"include_projects" mapstructure:"include_projects"`

	// Vars are substituted for ${name} references in course text and URLs.
	Vars map[string]string `json:"vars,omitempty" yaml:"vars,omitempty" mapstructure:"vars"`
}

// RenderConfig holds settings for the render stage.
type RenderConfig struct {
	SiteConfig    `yaml:",inline" mapstructure:",squash"`
	ContentConfig `yaml:",inline" mapstructure:",squash"`

	// OutputDir is the directory rendered pages are written under.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Formats lists the output formats to produce.
	Formats []OutputFormat `json:"formats" yaml:"formats" mapstructure:"formats"`

	// Answers controls whether lab answer pages are written.
	Answers bool `json:"answers" yaml:"answers" mapstructure:"answers"`
}

// Variables returns the substitution variables for course files. The site
// URL and lab folder are exposed as site_url and lab_folder unless Vars
// overrides them.
func (c RenderConfig) Variables() map[string]string {
	vars := make(map[string]string, len(c.Vars)+2)
	if c.SiteURL != "" {
		vars["site_url"] = c.SiteURL
	}
	if c.LabFolderName != "" {
		vars["lab_folder"] = c.LabFolderName
	}
	for k, v := range c.Vars {
		vars[k] = v
	}
	return vars
}
