// Package assemble drives the build pipeline: classify, stage, manifest,
// render. The pipeline is a single linear pass, fail-fast, with no partial
// recovery; a failure leaves the build directory as-is.
package assemble

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jorge-barreto/bookgen/internal/config"
	"github.com/jorge-barreto/bookgen/internal/lint"
	"github.com/jorge-barreto/bookgen/internal/manifest"
	"github.com/jorge-barreto/bookgen/internal/render"
	"github.com/jorge-barreto/bookgen/internal/stage"
	"github.com/jorge-barreto/bookgen/internal/state"
	"github.com/jorge-barreto/bookgen/internal/topic"
	"github.com/jorge-barreto/bookgen/internal/ux"
)

// Options control optional parts of the pipeline.
type Options struct {
	NoRender   bool // stop after writing the manifest
	CheckLinks bool // run the content checker before staging
}

// Assembler runs the book build for one book root.
type Assembler struct {
	Config   *config.Config
	BookRoot string
	Options  Options
}

// Run executes the pipeline and records a build state file in the build
// directory. The destination is locked for the duration of the run.
func (a *Assembler) Run(ctx context.Context) error {
	srcDir := a.Config.SourceDir(a.BookRoot)
	destRoot := a.Config.BuildPath(a.BookRoot)

	if err := stage.EnsureDir(destRoot); err != nil {
		return wrapIOError(err, "preparing build directory")
	}
	lock, err := stage.Acquire(destRoot)
	if err != nil {
		return wrapIOError(err, "locking build directory")
	}
	defer lock.Release()

	build := state.NewBuild()
	if err := build.Save(destRoot); err != nil {
		return wrapIOError(err, "saving build record")
	}

	fail := func(step string, err error) error {
		build.Finish(state.StatusFailed, step)
		if saveErr := build.Save(destRoot); saveErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save build record: %v\n", saveErr)
		}
		ux.StepFail(step, err.Error())
		return err
	}

	ux.StepHeader("classify", "reading "+srcDir)
	topics, err := topic.Scan(srcDir)
	if err != nil {
		return fail("classify", wrapClassifyError(err))
	}
	if ctx.Err() != nil {
		return fail("classify", ctx.Err())
	}
	entries := manifest.Build(topics)
	for _, t := range topics {
		switch t.Kind {
		case topic.KindLeaf, topic.KindChaptered:
			build.Topics++
			build.SubChapters += len(t.SubChapters)
		case topic.KindSkipped:
			ux.SkippedEntry(t.Name, t.SkipReason)
		}
	}

	if a.Options.CheckLinks {
		ux.StepHeader("check", "verifying content links")
		problems, err := lint.Check(srcDir, topics)
		if err != nil {
			return fail("check", wrapIOError(err, "checking content"))
		}
		if len(problems) > 0 {
			for _, p := range problems {
				ux.Problem(p.String())
			}
			return fail("check", wrapCheckError(len(problems)))
		}
	}

	ux.StepHeader("stage", "copying content into "+destRoot)
	n, err := stage.CopyTree(srcDir, destRoot)
	if err != nil {
		return fail("stage", wrapIOError(err, "staging content"))
	}
	build.FilesStaged = n
	if err := stage.CopyIntroduction(a.Config.IntroPath(a.BookRoot), destRoot); err != nil {
		return fail("stage", wrapIOError(err, "staging introduction"))
	}

	ux.StepHeader("manifest", "writing "+manifest.Filename)
	if err := manifest.Write(destRoot, entries); err != nil {
		return fail("manifest", wrapIOError(err, "writing manifest"))
	}

	if a.shouldRender() {
		ux.StepHeader("render", a.Config.Renderer)
		res, err := render.Run(ctx, a.Config, a.BookRoot)
		if err != nil {
			return fail("render", wrapIOError(err, "invoking renderer"))
		}
		if res.ExitCode != 0 {
			ux.RenderHint(render.LogPath(destRoot))
			return fail("render", wrapRenderError(res.ExitCode))
		}
	}

	build.Finish(state.StatusCompleted, "")
	if err := build.Save(destRoot); err != nil {
		return wrapIOError(err, "saving build record")
	}
	ux.BuildComplete(build.Topics, build.SubChapters, build.FilesStaged, time.Since(build.StartedAt))
	return nil
}

func (a *Assembler) shouldRender() bool {
	return !a.Options.NoRender && a.Config.Renderer != ""
}

// DryRunPrint prints the pipeline plan and the outline without touching the
// build directory.
func (a *Assembler) DryRunPrint() error {
	srcDir := a.Config.SourceDir(a.BookRoot)
	topics, err := topic.Scan(srcDir)
	if err != nil {
		return wrapClassifyError(err)
	}

	fmt.Printf("%sPlan:%s classify → stage → manifest", ux.Bold, ux.Reset)
	if a.shouldRender() {
		fmt.Printf(" → render (%s)", a.Config.Renderer)
	}
	fmt.Printf("\n\n%sOutline:%s\n", ux.Bold, ux.Reset)
	os.Stdout.Write(manifest.Render(manifest.Build(topics)))
	for _, t := range topics {
		if t.Kind == topic.KindSkipped {
			ux.SkippedEntry(t.Name, t.SkipReason)
		}
	}
	return nil
}
