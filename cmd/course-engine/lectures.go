// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/course-engine/internal/course"
	"github.com/pdiddy/course-engine/internal/logfields"
)

var lecturesCmd = &cobra.Command{
	Use:   "lectures",
	Short: "List lectures by group and week",
	Long: `Lectures prints the lectures of the selected groups with the week each
is covered. Use --week to show a single week, and --json or --export to
produce machine-readable output.`,
	RunE: runLectures,
}

func runLectures(cmd *cobra.Command, args []string) error {
	week, _ := cmd.Flags().GetInt("week")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	export, _ := cmd.Flags().GetString("export")

	cfg, err := renderConfig(cmd)
	if err != nil {
		return err
	}
	groups, err := loadGroups(cfg)
	if err != nil {
		return err
	}
	entries := course.Catalog(groups, cfg.SiteURL, week)
	if week > 0 {
		slog.Debug("lectures filtered by week", logfields.Week(week), logfields.Count(len(entries)))
	}

	switch {
	case jsonOutput || export == "json":
		return course.ExportJSON(os.Stdout, entries)
	case export == "yaml":
		return course.ExportYAML(os.Stdout, entries)
	case export != "":
		return fmt.Errorf("unsupported export format %q: use yaml or json", export)
	}
	return formatLectures(os.Stdout, entries)
}

func formatLectures(w io.Writer, entries []course.CatalogEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No lectures found.")
		return nil
	}

	fmt.Fprintf(w, "%-4s  %-30s  %-40s  %s\n", "Week", "Group", "Lecture", "Resources")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, e := range entries {
		fmt.Fprintf(w, "%-4d  %-30s  %-40s  %d\n",
			e.Week, truncate(e.Group, 30), truncate(e.Lecture, 40), len(e.Resources))
	}

	fmt.Fprintf(w, "\n%d lectures\n", len(entries))
	return nil
}

// truncate shortens s to at most width runes, ending in "..." when cut.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

func init() {
	addContentFlags(lecturesCmd)
	lecturesCmd.Flags().Int("week", 0, "only list lectures covered in this week (0 = all)")
	lecturesCmd.Flags().Bool("json", false, "output lectures as JSON")
	lecturesCmd.Flags().String("export", "", "export format: yaml or json")

	rootCmd.AddCommand(lecturesCmd)
}
