// Package stage copies book content into the build directory.
package stage

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/bookgen/internal/manifest"
	"github.com/jorge-barreto/bookgen/internal/state"
)

// EnsureDir creates the build directory structure.
func EnsureDir(destRoot string) error {
	dirs := []string{
		destRoot,
		filepath.Join(destRoot, state.MetaDirName),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("creating build dir %s: %w", d, err)
		}
	}
	return nil
}

// CopyTree recursively copies src into dst, preserving relative paths and
// file contents byte for byte. Non-regular files are skipped. Returns the
// number of files copied.
func CopyTree(src, dst string) (int, error) {
	count := 0
	err := filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := copyFile(p, target); err != nil {
			return fmt.Errorf("copying %s: %w", rel, err)
		}
		count++
		return nil
	})
	return count, err
}

// CopyIntroduction stages the introduction document under the fixed landing
// page filename.
func CopyIntroduction(introPath, destRoot string) error {
	if err := copyFile(introPath, filepath.Join(destRoot, manifest.LandingPage)); err != nil {
		return fmt.Errorf("copying introduction: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
