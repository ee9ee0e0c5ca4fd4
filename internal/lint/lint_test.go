package lint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jorge-barreto/bookgen/internal/topic"
)

func write(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func scan(t *testing.T, root string) []topic.Topic {
	t.Helper()
	topics, err := topic.Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	return topics
}

func TestCheck_CleanTree(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a.md", "See [b](b/README.md).\n")
	write(t, root, "b/README.md", "See [intro](01-intro.md).\n")
	write(t, root, "b/01-intro.md", "Back to [a](../a.md).\n")

	problems, err := Check(root, scan(t, root))
	if err != nil {
		t.Fatal(err)
	}
	if len(problems) != 0 {
		t.Fatalf("problems = %v, want none", problems)
	}
}

func TestCheck_BrokenLink(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a.md", "See [missing](missing.md).\n")

	problems, err := Check(root, scan(t, root))
	if err != nil {
		t.Fatal(err)
	}
	if len(problems) != 1 {
		t.Fatalf("got %d problems, want 1: %v", len(problems), problems)
	}
	if problems[0].File != "a.md" || problems[0].Link != "missing.md" {
		t.Errorf("problem = %+v", problems[0])
	}
}

func TestCheck_BrokenLinkInSubChapter(t *testing.T) {
	root := t.TempDir()
	write(t, root, "b/README.md", "fine\n")
	write(t, root, "b/01-intro.md", "![diagram](images/arch.png)\n")

	problems, err := Check(root, scan(t, root))
	if err != nil {
		t.Fatal(err)
	}
	if len(problems) != 1 {
		t.Fatalf("got %d problems, want 1: %v", len(problems), problems)
	}
	if problems[0].File != "b/01-intro.md" {
		t.Errorf("problem = %+v", problems[0])
	}
}

func TestCheck_IgnoresExternalAndFragmentLinks(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a.md",
		"[web](https://example.com/page)\n"+
			"[mail](mailto:dev@example.com)\n"+
			"[anchor](#section)\n"+
			"[site](/absolute/path)\n")

	problems, err := Check(root, scan(t, root))
	if err != nil {
		t.Fatal(err)
	}
	if len(problems) != 0 {
		t.Fatalf("problems = %v, want none", problems)
	}
}

func TestCheck_FragmentOnExistingTarget(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a.md", "[sect](other.md#heading)\n")
	write(t, root, "other.md", "# heading\n")

	problems, err := Check(root, scan(t, root))
	if err != nil {
		t.Fatal(err)
	}
	if len(problems) != 0 {
		t.Fatalf("problems = %v, want none", problems)
	}
}

func TestCheck_ReportsOmittedDirectories(t *testing.T) {
	root := t.TempDir()
	write(t, root, "drafts/notes.md", "wip\n")

	problems, err := Check(root, scan(t, root))
	if err != nil {
		t.Fatal(err)
	}
	if len(problems) != 1 {
		t.Fatalf("got %d problems, want 1: %v", len(problems), problems)
	}
	if problems[0].File != "drafts" {
		t.Errorf("problem = %+v", problems[0])
	}
}

func TestLocalTarget(t *testing.T) {
	tests := []struct {
		dest string
		want string
		ok   bool
	}{
		{"other.md", "other.md", true},
		{"dir/file.md", "dir/file.md", true},
		{"other.md#frag", "other.md", true},
		{"#frag", "", false},
		{"https://example.com", "", false},
		{"mailto:x@y.z", "", false},
		{"/abs", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		got, ok := localTarget(tc.dest)
		if got != tc.want || ok != tc.ok {
			t.Errorf("localTarget(%q) = (%q, %v), want (%q, %v)", tc.dest, got, ok, tc.want, tc.ok)
		}
	}
}
