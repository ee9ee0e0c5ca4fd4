package topic

import (
	"bytes"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/goliatone/go-slug"
)

// documentMeta is the subset of front matter bookgen reads.
type documentMeta struct {
	Title string `yaml:"title"`
}

// titleFromFile returns the document's front matter title when present,
// falling back to the filename-derived title otherwise. Markdown files
// without front matter keep their filename-derived titles, so source trees
// that never use front matter produce the same outline they always have.
// Read or parse failures fall back silently; staging surfaces real IO errors.
func titleFromFile(path, fallback string) string {
	if !strings.HasSuffix(path, ".md") {
		return fallback
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}
	var meta documentMeta
	if _, err := frontmatter.Parse(bytes.NewReader(data), &meta); err != nil {
		return fallback
	}
	if meta.Title != "" {
		return meta.Title
	}
	return fallback
}

// normalizeSlug derives a stable identifier from an entry name.
// Names the normalizer rejects keep their raw form; the slug is metadata
// and never appears in outline links.
func normalizeSlug(name string) string {
	s, err := slug.Normalize(name)
	if err != nil {
		return name
	}
	return s
}
