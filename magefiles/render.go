//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Course groups the targets that run the CLI against content/.
type Course mg.Namespace

// Render writes every format, with labs, projects, and answers, to output/.
func (Course) Render() error {
	return sh.RunV(binPath(), "render",
		"--content-dir", "content",
		"--output-dir", "output",
		"--formats", "rst,latex,markdown,html",
		"--include-labs",
		"--answers",
	)
}

// Validate checks the course files in content/.
func (Course) Validate() error {
	return sh.RunV(binPath(), "validate", "--content-dir", "content")
}

// Week lists the lectures covered in the week given by the WEEK environment variable.
func (Course) Week() error {
	week := os.Getenv("WEEK")
	if week == "" {
		return fmt.Errorf("set WEEK to the week number")
	}
	return sh.RunV(binPath(), "lectures", "--content-dir", "content", "--include-labs", "--week", week)
}
