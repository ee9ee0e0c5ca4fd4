package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/bookgen/internal/config"
	"github.com/jorge-barreto/bookgen/internal/ux"
)

var configTemplate = `title: My Book
source: src
build-dir: book
introduction: README.md
renderer: mdbook build $BUILD_DIR
`

var introTemplate = `# My Book

This document becomes the book's landing page. Describe what the book covers
and how it is organized.
`

var overviewTemplate = `# Overview

A standalone topic: one markdown file directly under the source root.
`

var chapterReadmeTemplate = `# Getting Started

A chaptered topic: a directory with this README.md as its landing page and
numbered chapter files alongside it.
`

var chapterOneTemplate = `# First Steps

Chapter files are named <ordinal>-<title>.md and appear in the outline in
filename order.
`

// Init creates a new book skeleton: book.yaml, an introduction document, and
// an example source tree with one leaf topic and one chaptered topic.
func Init(targetDir string) error {
	configPath := filepath.Join(targetDir, config.Filename)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.Filename, targetDir)
	}

	chapterDir := filepath.Join(targetDir, "src", "getting-started")
	if err := os.MkdirAll(chapterDir, 0755); err != nil {
		return fmt.Errorf("creating src/getting-started: %w", err)
	}

	files := []struct {
		path    string
		content string
	}{
		{configPath, configTemplate},
		{filepath.Join(targetDir, "README.md"), introTemplate},
		{filepath.Join(targetDir, "src", "overview.md"), overviewTemplate},
		{filepath.Join(chapterDir, "README.md"), chapterReadmeTemplate},
		{filepath.Join(chapterDir, "01-first-steps.md"), chapterOneTemplate},
	}
	for _, f := range files {
		if err := os.WriteFile(f.path, []byte(f.content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", f.path, err)
		}
	}

	fmt.Printf("\n%s%s✓ Initialized book skeleton%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Printf("  Created:\n")
	fmt.Printf("    %sbook.yaml%s                       — book configuration\n", ux.Cyan, ux.Reset)
	fmt.Printf("    %sREADME.md%s                       — introduction document\n", ux.Cyan, ux.Reset)
	fmt.Printf("    %ssrc/overview.md%s                 — example leaf topic\n", ux.Cyan, ux.Reset)
	fmt.Printf("    %ssrc/getting-started/%s            — example chaptered topic\n\n", ux.Cyan, ux.Reset)
	fmt.Printf("  Next steps:\n")
	fmt.Printf("    1. Add topics under %ssrc/%s\n", ux.Cyan, ux.Reset)
	fmt.Printf("    2. Run %sbookgen outline%s to preview the navigation\n", ux.Cyan, ux.Reset)
	fmt.Printf("    3. Run %sbookgen build%s to assemble the book\n\n", ux.Cyan, ux.Reset)

	return nil
}
