// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/course-engine/internal/site"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render lecture groups to reStructuredText, LaTeX, Markdown, or HTML",
	Long: `Render loads every course file in the content directory and writes one
page per lecture group and format to <output-dir>/<format>/<stub>.<ext>.
Groups are ordered lectures, then projects, then labs.

RST output also gets an index.rst toctree. With --answers, lab answers are
written to <stub>-answers.<ext>.`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := renderConfig(cmd)
	if err != nil {
		return err
	}
	groups, err := loadGroups(cfg)
	if err != nil {
		return err
	}

	result, err := site.New(cfg, slog.Default(), os.Stdout).Build(groups)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d page(s) failed to render", result.Failed)
	}
	return nil
}

func init() {
	addContentFlags(renderCmd)
	renderCmd.Flags().String("output-dir", "output", "directory rendered pages are written under")
	renderCmd.Flags().StringSlice("formats", []string{"rst"}, "output formats: rst, latex, markdown, html")
	renderCmd.Flags().Bool("answers", false, "write lab answer pages")

	rootCmd.AddCommand(renderCmd)
}
