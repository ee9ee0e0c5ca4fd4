package assemble

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/jorge-barreto/bookgen/internal/config"
	"github.com/jorge-barreto/bookgen/internal/manifest"
	"github.com/jorge-barreto/bookgen/internal/state"
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

// exampleBook creates a book root with an introduction, a leaf topic, and a
// chaptered topic.
func exampleBook(t *testing.T, renderer string) *Assembler {
	t.Helper()
	root := t.TempDir()
	write(t, root, "README.md", "# Welcome\n")
	write(t, root, "src/a.md", "# a\n")
	write(t, root, "src/b/README.md", "# b\n")
	write(t, root, "src/b/01-intro.md", "intro body\n")
	write(t, root, "src/b/02-details.md", "details body\n")

	cfg := &config.Config{
		Title:           "Test Book",
		Source:          "src",
		BuildDir:        "book",
		Introduction:    "README.md",
		Renderer:        renderer,
		RendererTimeout: 1,
	}
	return &Assembler{Config: cfg, BookRoot: root}
}

func TestRun_AssemblesBook(t *testing.T) {
	a := exampleBook(t, "")
	if err := a.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	destRoot := a.Config.BuildPath(a.BookRoot)

	// Staged content is byte-identical to the source.
	for _, rel := range []string{"a.md", "b/README.md", "b/01-intro.md", "b/02-details.md"} {
		src, err := os.ReadFile(filepath.Join(a.Config.SourceDir(a.BookRoot), rel))
		if err != nil {
			t.Fatal(err)
		}
		staged, err := os.ReadFile(filepath.Join(destRoot, rel))
		if err != nil {
			t.Fatalf("%s not staged: %v", rel, err)
		}
		if !bytes.Equal(src, staged) {
			t.Errorf("%s differs after staging", rel)
		}
	}

	// Landing page is a copy of the introduction document.
	landing, err := os.ReadFile(filepath.Join(destRoot, manifest.LandingPage))
	if err != nil {
		t.Fatal(err)
	}
	if string(landing) != "# Welcome\n" {
		t.Errorf("landing page = %q", landing)
	}

	// Manifest matches the canonical outline.
	got, err := os.ReadFile(filepath.Join(destRoot, manifest.Filename))
	if err != nil {
		t.Fatal(err)
	}
	want := "# Summary\n" +
		"\n" +
		"[Introduction](introduction.md)\n" +
		"\n" +
		"- [a](a.md)\n" +
		"- [b](b/README.md)\n" +
		"    - [intro](b/01-intro.md)\n" +
		"    - [details](b/02-details.md)\n"
	if string(got) != want {
		t.Errorf("manifest:\n%s\nwant:\n%s", got, want)
	}

	// Build record shows success with content counts.
	build, err := state.Load(destRoot)
	if err != nil || build == nil {
		t.Fatalf("build record: %v", err)
	}
	if build.Status != state.StatusCompleted {
		t.Errorf("Status = %q", build.Status)
	}
	if build.Topics != 2 || build.SubChapters != 2 || build.FilesStaged != 4 {
		t.Errorf("counts = %d topics, %d chapters, %d files", build.Topics, build.SubChapters, build.FilesStaged)
	}
}

func TestRun_Idempotent(t *testing.T) {
	a := exampleBook(t, "")
	if err := a.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	destRoot := a.Config.BuildPath(a.BookRoot)
	first, err := os.ReadFile(filepath.Join(destRoot, manifest.Filename))
	if err != nil {
		t.Fatal(err)
	}

	if err := a.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(filepath.Join(destRoot, manifest.Filename))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("manifest differs between identical runs")
	}
}

func TestRun_SkippedDirectoryOmitted(t *testing.T) {
	a := exampleBook(t, "")
	write(t, a.BookRoot, "src/drafts/wip.md", "unfinished\n")

	if err := a.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	destRoot := a.Config.BuildPath(a.BookRoot)

	got, err := os.ReadFile(filepath.Join(destRoot, manifest.Filename))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(got, []byte("drafts")) {
		t.Errorf("manifest mentions skipped directory:\n%s", got)
	}
	// Content is still staged even though it is not listed.
	if _, err := os.Stat(filepath.Join(destRoot, "drafts", "wip.md")); err != nil {
		t.Errorf("skipped directory content not staged: %v", err)
	}
}

func TestRun_RendererSuccess(t *testing.T) {
	a := exampleBook(t, "test -f $BUILD_DIR/SUMMARY.md")
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("renderer should see the manifest: %v", err)
	}
}

func TestRun_RendererFailureLeavesStagedTree(t *testing.T) {
	a := exampleBook(t, "exit 1")
	err := a.Run(context.Background())
	if err == nil {
		t.Fatal("expected error from failing renderer")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Errorf("error category: %v", err)
	}

	destRoot := a.Config.BuildPath(a.BookRoot)
	for _, rel := range []string{"a.md", "b/README.md", manifest.Filename, manifest.LandingPage} {
		if _, statErr := os.Stat(filepath.Join(destRoot, rel)); statErr != nil {
			t.Errorf("%s missing after render failure: %v", rel, statErr)
		}
	}

	build, loadErr := state.Load(destRoot)
	if loadErr != nil || build == nil {
		t.Fatalf("build record: %v", loadErr)
	}
	if build.Status != state.StatusFailed || build.Step != "render" {
		t.Errorf("build = %+v", build)
	}
}

func TestRun_NoRenderSkipsRenderer(t *testing.T) {
	a := exampleBook(t, "exit 1")
	a.Options.NoRender = true
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("--no-render should skip the failing renderer: %v", err)
	}
}

func TestRun_CheckAbortsOnBrokenLinks(t *testing.T) {
	a := exampleBook(t, "")
	a.Options.CheckLinks = true
	write(t, a.BookRoot, "src/a.md", "[gone](missing.md)\n")

	err := a.Run(context.Background())
	if err == nil {
		t.Fatal("expected error from broken link")
	}

	// The check runs before staging, so nothing was copied.
	destRoot := a.Config.BuildPath(a.BookRoot)
	if _, statErr := os.Stat(filepath.Join(destRoot, "a.md")); !os.IsNotExist(statErr) {
		t.Error("content staged despite failed check")
	}
}

func TestRun_MissingSourceRoot(t *testing.T) {
	a := exampleBook(t, "")
	if err := os.RemoveAll(a.Config.SourceDir(a.BookRoot)); err != nil {
		t.Fatal(err)
	}

	err := a.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for missing source root")
	}

	build, loadErr := state.Load(a.Config.BuildPath(a.BookRoot))
	if loadErr != nil || build == nil {
		t.Fatalf("build record: %v", loadErr)
	}
	if build.Status != state.StatusFailed || build.Step != "classify" {
		t.Errorf("build = %+v", build)
	}
}

func TestRun_ReleasesLock(t *testing.T) {
	a := exampleBook(t, "")
	if err := a.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	// A second run must be able to take the lock again.
	if err := a.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(a.Config.BuildPath(a.BookRoot), ".bookgen.lock")); !os.IsNotExist(err) {
		t.Error("lock file left behind after run")
	}
}

func TestDryRunPrint_TouchesNothing(t *testing.T) {
	a := exampleBook(t, "")
	if err := a.DryRunPrint(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(a.Config.BuildPath(a.BookRoot)); !os.IsNotExist(err) {
		t.Error("dry run created the build directory")
	}
}
