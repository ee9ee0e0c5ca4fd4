package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// Validate checks the config for errors and sets defaults.
// Failures are surfaced as validation-category errors.
func Validate(cfg *Config, bookRoot string) error {
	if err := validate(cfg, bookRoot); err != nil {
		if goerrors.IsWrapped(err) {
			return err
		}
		return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid book.yaml").
			WithTextCode("CONFIG_INVALID")
	}
	return nil
}

func validate(cfg *Config, bookRoot string) error {
	if cfg.Title == "" {
		return fmt.Errorf("config: 'title' is required")
	}

	if cfg.Source == "" {
		cfg.Source = "src"
	}
	if cfg.BuildDir == "" {
		cfg.BuildDir = "book"
	}
	if cfg.Introduction == "" {
		cfg.Introduction = "README.md"
	}
	if cfg.RendererTimeout == 0 {
		cfg.RendererTimeout = 10
	}
	if cfg.RendererTimeout < 0 {
		return fmt.Errorf("config: renderer-timeout must be >= 0")
	}

	for field, value := range map[string]string{
		"source":       cfg.Source,
		"build-dir":    cfg.BuildDir,
		"introduction": cfg.Introduction,
	} {
		if filepath.IsAbs(value) {
			return fmt.Errorf("config: %q must be relative to the book root, got %q", field, value)
		}
		clean := filepath.Clean(value)
		if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return fmt.Errorf("config: %q must not escape the book root, got %q", field, value)
		}
	}

	src := filepath.Clean(cfg.Source)
	build := filepath.Clean(cfg.BuildDir)
	if src == build {
		return fmt.Errorf("config: 'build-dir' must differ from 'source'")
	}
	if isWithin(src, build) || isWithin(build, src) {
		return fmt.Errorf("config: 'source' (%q) and 'build-dir' (%q) must not nest", cfg.Source, cfg.BuildDir)
	}

	srcDir := filepath.Join(bookRoot, src)
	info, err := os.Stat(srcDir)
	if err != nil {
		return fmt.Errorf("config: source directory %q not found", srcDir)
	}
	if !info.IsDir() {
		return fmt.Errorf("config: source %q is not a directory", srcDir)
	}

	introPath := filepath.Join(bookRoot, cfg.Introduction)
	if _, err := os.Stat(introPath); err != nil {
		return fmt.Errorf("config: introduction document %q not found", introPath)
	}

	return nil
}

// isWithin reports whether child is inside parent (both cleaned, relative).
func isWithin(parent, child string) bool {
	return strings.HasPrefix(child, parent+string(filepath.Separator))
}
