package topic

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

const landingPage = "README.md"

// Sub-chapters are files named <prefix>-<rest>.md; the display title is <rest>.
var subChapterRe = regexp.MustCompile(`^([^-]+)-(.+)\.md$`)

// Scan classifies the immediate children of sourceRoot into topics.
// Entries are returned in byte-wise lexicographic name order; this ordering is
// an observable contract of the generated outline, so no locale collation is
// ever applied.
func Scan(sourceRoot string) ([]Topic, error) {
	// os.ReadDir sorts by filename, which is byte order for Go strings.
	entries, err := os.ReadDir(sourceRoot)
	if err != nil {
		return nil, fmt.Errorf("reading source root: %w", err)
	}

	topics := make([]Topic, 0, len(entries))
	for _, e := range entries {
		t, err := classify(sourceRoot, e)
		if err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, nil
}

// classify produces the tagged topic for a single directory entry.
func classify(sourceRoot string, e os.DirEntry) (Topic, error) {
	name := e.Name()

	if e.IsDir() {
		return classifyDir(sourceRoot, name)
	}
	if !e.Type().IsRegular() {
		return Topic{Name: name, Kind: KindSkipped, SkipReason: "not a regular file"}, nil
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	return Topic{
		Name:  name,
		Slug:  normalizeSlug(base),
		Kind:  KindLeaf,
		Title: titleFromFile(filepath.Join(sourceRoot, name), base),
		Path:  name,
	}, nil
}

func classifyDir(sourceRoot, name string) (Topic, error) {
	readme := filepath.Join(sourceRoot, name, landingPage)
	if _, err := os.Stat(readme); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Topic{
				Name:       name,
				Slug:       normalizeSlug(name),
				Kind:       KindSkipped,
				SkipReason: "directory has no " + landingPage,
			}, nil
		}
		return Topic{}, fmt.Errorf("probing %s: %w", readme, err)
	}

	subs, err := scanSubChapters(filepath.Join(sourceRoot, name))
	if err != nil {
		return Topic{}, err
	}

	return Topic{
		Name:        name,
		Slug:        normalizeSlug(name),
		Kind:        KindChaptered,
		Title:       titleFromFile(readme, name),
		Path:        path.Join(name, landingPage),
		SubChapters: subs,
	}, nil
}

// scanSubChapters returns the ordinal-prefixed chapter files of a topic
// directory in byte-wise filename order. Files that do not match the
// sub-chapter pattern (including README.md) are not chapters.
func scanSubChapters(dir string) ([]SubChapter, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading topic directory: %w", err)
	}

	var subs []SubChapter
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := subChapterRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		subs = append(subs, SubChapter{
			File:  e.Name(),
			Title: titleFromFile(filepath.Join(dir, e.Name()), m[2]),
		})
	}
	return subs, nil
}
