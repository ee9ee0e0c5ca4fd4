// Package render invokes the external book-rendering tool.
package render

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"time"

	"github.com/jorge-barreto/bookgen/internal/config"
	"github.com/jorge-barreto/bookgen/internal/state"
)

// Result holds the outcome of a renderer invocation.
type Result struct {
	ExitCode int
	Output   string
}

// Vars returns the substitution map for renderer command expansion.
func Vars(bookRoot string, cfg *config.Config) map[string]string {
	return map[string]string{
		"BOOK_ROOT":  bookRoot,
		"SOURCE_DIR": cfg.SourceDir(bookRoot),
		"BUILD_DIR":  cfg.BuildPath(bookRoot),
		"TITLE":      cfg.Title,
	}
}

// ExpandVars substitutes $VAR references in template using the vars map,
// falling back to environment variables.
func ExpandVars(template string, vars map[string]string) string {
	return os.Expand(template, func(key string) string {
		if v, ok := vars[key]; ok {
			return v
		}
		return os.Getenv(key)
	})
}

// LogPath returns the renderer log location inside the build directory.
func LogPath(destRoot string) string {
	return filepath.Join(destRoot, state.MetaDirName, "render.log")
}

// Run executes the configured renderer command via bash, with the book root
// as working directory. Output is streamed to the terminal, the render log,
// and a capture buffer. The renderer is treated as atomic: no retry, no
// partial-output cleanup.
func Run(ctx context.Context, cfg *config.Config, bookRoot string) (*Result, error) {
	if cfg.RendererTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.RendererTimeout)*time.Minute)
		defer cancel()
	}

	expanded := ExpandVars(cfg.Renderer, Vars(bookRoot, cfg))

	cmd := exec.CommandContext(ctx, "bash", "-c", expanded)
	cmd.Dir = bookRoot
	cmd.Env = buildEnv(bookRoot, cfg)

	logFile, err := os.Create(LogPath(cfg.BuildPath(bookRoot)))
	if err != nil {
		return nil, err
	}
	defer logFile.Close()

	var captured bytes.Buffer
	cmd.Stdout = io.MultiWriter(os.Stdout, logFile, &captured)
	cmd.Stderr = io.MultiWriter(os.Stderr, logFile, &captured)

	code, err := exitCode(cmd.Run())
	if err != nil {
		return nil, err
	}

	return &Result{ExitCode: code, Output: captured.String()}, nil
}

// buildEnv returns the child process environment: the current environment
// plus BOOKGEN_-prefixed copies of the expansion vars, in stable order.
func buildEnv(bookRoot string, cfg *config.Config) []string {
	vars := Vars(bookRoot, cfg)
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := os.Environ()
	for _, k := range keys {
		env = append(env, "BOOKGEN_"+k+"="+vars[k])
	}
	return env
}

// exitCode extracts an exit code from a command error.
// Returns (code, nil) for ExitError, (0, err) for other errors, (0, nil) for nil.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}
