// Package manifest builds and writes the ordered navigation outline the
// external renderer consumes.
package manifest

import (
	"fmt"
	"path"
	"strings"

	"github.com/jorge-barreto/bookgen/internal/topic"
)

const (
	// Filename is the outline file written into the build directory.
	Filename = "SUMMARY.md"
	// LandingPage is the fixed filename the introduction document is staged under.
	LandingPage = "introduction.md"

	prologueTitle = "Introduction"
)

// Entry is one line of the outline.
type Entry struct {
	Title  string
	Path   string // link target relative to the build directory, slash-separated
	Indent int    // 0 for topics, 1 for sub-chapters
}

// Build produces outline entries for the classified topics, preserving their
// order. Skipped topics contribute nothing, silently.
func Build(topics []topic.Topic) []Entry {
	var entries []Entry
	for _, t := range topics {
		switch t.Kind {
		case topic.KindLeaf:
			entries = append(entries, Entry{Title: t.Title, Path: t.Path})
		case topic.KindChaptered:
			entries = append(entries, Entry{Title: t.Title, Path: t.Path})
			for _, sc := range t.SubChapters {
				entries = append(entries, Entry{
					Title:  sc.Title,
					Path:   path.Join(t.Name, sc.File),
					Indent: 1,
				})
			}
		}
	}
	return entries
}

// Render formats the outline in the syntax the renderer expects: a header,
// the prologue link, then one bullet per entry with sub-chapters indented
// four spaces. Output depends only on the entries, byte for byte.
func Render(entries []Entry) []byte {
	var buf strings.Builder
	buf.WriteString("# Summary\n\n")
	fmt.Fprintf(&buf, "[%s](%s)\n", prologueTitle, LandingPage)
	if len(entries) > 0 {
		buf.WriteByte('\n')
	}
	for _, e := range entries {
		fmt.Fprintf(&buf, "%s- [%s](%s)\n", strings.Repeat("    ", e.Indent), e.Title, e.Path)
	}
	return []byte(buf.String())
}
