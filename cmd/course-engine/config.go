// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/course-engine/internal/course"
	"github.com/pdiddy/course-engine/internal/lecture"
	"github.com/pdiddy/course-engine/internal/logfields"
	"github.com/pdiddy/course-engine/pkg/types"
)

// addContentFlags registers the flags shared by every command that loads
// course files.
func addContentFlags(cmd *cobra.Command) {
	cmd.Flags().String("content-dir", "content", "directory holding YAML course files")
	cmd.Flags().String("site-url", "", "base URL of the course website, with trailing slash")
	cmd.Flags().String("lab-folder-name", "Lab Exercises", "folder holding lab notebooks under _static/")
	cmd.Flags().Bool("include-labs", false, "include lab exercise groups (implies --include-projects)")
	cmd.Flags().Bool("include-projects", false, "include project groups")
	cmd.Flags().StringToString("vars", nil, "extra ${name} substitutions, as name=value")
}

// renderConfig resolves the configuration for cmd from flags, environment
// and config file, in that order of precedence.
func renderConfig(cmd *cobra.Command) (types.RenderConfig, error) {
	var cfg types.RenderConfig
	if err := bindFlags(cmd); err != nil {
		return cfg, fmt.Errorf("binding flags: %w", err)
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	for _, f := range cfg.Formats {
		if !f.Valid() {
			return cfg, fmt.Errorf("unsupported format %q: use rst, latex, markdown, or html", f)
		}
	}
	return cfg, nil
}

// loadGroups loads the course and selects groups per cfg.
func loadGroups(cfg types.RenderConfig) ([]*lecture.Group, error) {
	groups, err := course.Load(cfg.ContentDir, course.Options{Vars: cfg.Variables()})
	if err != nil {
		return nil, err
	}
	selected := course.Select(groups, cfg.IncludeLabs, cfg.IncludeProjects)
	slog.Debug("course loaded",
		logfields.Dir(cfg.ContentDir),
		logfields.Count(len(groups)),
		slog.Int("selected", len(selected)),
	)
	return selected, nil
}
