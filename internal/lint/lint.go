// Package lint checks classified book content for problems the renderer
// would silently propagate, chiefly relative links to missing targets.
package lint

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/jorge-barreto/bookgen/internal/topic"
)

// Problem describes one issue found in the source tree.
type Problem struct {
	File   string // path relative to the source root; empty for entry-level problems
	Link   string // offending link destination, if any
	Reason string
}

func (p Problem) String() string {
	if p.Link != "" {
		return fmt.Sprintf("%s: link %q: %s", p.File, p.Link, p.Reason)
	}
	if p.File != "" {
		return fmt.Sprintf("%s: %s", p.File, p.Reason)
	}
	return p.Reason
}

// Check parses every classified markdown document with goldmark and reports
// relative links whose targets do not exist under the source root, plus
// entries the outline omits. External URLs, mailto links, fragments, and
// site-absolute paths are the renderer's concern and are ignored.
func Check(sourceRoot string, topics []topic.Topic) ([]Problem, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var problems []Problem
	for _, t := range topics {
		switch t.Kind {
		case topic.KindSkipped:
			problems = append(problems, Problem{File: t.Name, Reason: "omitted from outline: " + t.SkipReason})
		case topic.KindLeaf:
			ps, err := checkFile(md, sourceRoot, t.Path)
			if err != nil {
				return nil, err
			}
			problems = append(problems, ps...)
		case topic.KindChaptered:
			files := []string{t.Path}
			for _, sc := range t.SubChapters {
				files = append(files, path.Join(t.Name, sc.File))
			}
			for _, f := range files {
				ps, err := checkFile(md, sourceRoot, f)
				if err != nil {
					return nil, err
				}
				problems = append(problems, ps...)
			}
		}
	}
	return problems, nil
}

func checkFile(md goldmark.Markdown, sourceRoot, rel string) ([]Problem, error) {
	if !strings.HasSuffix(rel, ".md") {
		return nil, nil
	}
	data, err := os.ReadFile(filepath.Join(sourceRoot, filepath.FromSlash(rel)))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rel, err)
	}

	doc := md.Parser().Parse(text.NewReader(data))

	var problems []Problem
	walkErr := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		var dest string
		switch v := n.(type) {
		case *ast.Link:
			dest = string(v.Destination)
		case *ast.Image:
			dest = string(v.Destination)
		default:
			return ast.WalkContinue, nil
		}
		target, ok := localTarget(dest)
		if !ok {
			return ast.WalkContinue, nil
		}
		abs := filepath.Join(sourceRoot, filepath.Dir(filepath.FromSlash(rel)), filepath.FromSlash(target))
		if _, err := os.Stat(abs); err != nil {
			problems = append(problems, Problem{File: rel, Link: dest, Reason: "target not found"})
		}
		return ast.WalkContinue, nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking %s: %w", rel, walkErr)
	}
	return problems, nil
}

// localTarget strips fragments and reports whether dest points into the
// local filesystem.
func localTarget(dest string) (string, bool) {
	if dest == "" || strings.HasPrefix(dest, "#") || strings.HasPrefix(dest, "/") {
		return "", false
	}
	if strings.Contains(dest, "://") || strings.HasPrefix(dest, "mailto:") {
		return "", false
	}
	if i := strings.IndexByte(dest, '#'); i >= 0 {
		dest = dest[:i]
	}
	if dest == "" {
		return "", false
	}
	return dest, true
}
