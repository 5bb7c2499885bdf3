// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pdiddy/course-engine/internal/course"
	"github.com/pdiddy/course-engine/internal/logfields"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check course files for problems before rendering",
	Long: `Validate loads the course and reports resources without links, note
items that cannot be rendered, and groups whose stubs collide. Lab and
project groups are always checked.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := renderConfig(cmd)
	if err != nil {
		return err
	}
	cfg.IncludeLabs = true
	cfg.IncludeProjects = true

	groups, err := loadGroups(cfg)
	if err != nil {
		return err
	}

	problems := course.Validate(groups)
	for _, p := range problems {
		fmt.Println(p)
		slog.Debug("validation problem",
			logfields.Group(p.Group), logfields.Lecture(p.Lecture), slog.String("problem", p.Message))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%d problem(s) found", len(problems))
	}
	fmt.Printf("%d group(s) OK\n", len(groups))
	return nil
}

func init() {
	addContentFlags(validateCmd)

	rootCmd.AddCommand(validateCmd)
}
