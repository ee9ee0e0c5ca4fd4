package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jorge-barreto/bookgen/internal/assemble"
	"github.com/jorge-barreto/bookgen/internal/config"
	"github.com/jorge-barreto/bookgen/internal/docs"
	"github.com/jorge-barreto/bookgen/internal/lint"
	"github.com/jorge-barreto/bookgen/internal/manifest"
	"github.com/jorge-barreto/bookgen/internal/scaffold"
	"github.com/jorge-barreto/bookgen/internal/state"
	"github.com/jorge-barreto/bookgen/internal/topic"
	"github.com/jorge-barreto/bookgen/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:        "bookgen",
		Usage:       "Deterministic book assembler",
		Description: "Run 'bookgen docs' for documentation on source layout, the outline format, and the renderer contract.",
		Commands: []*cli.Command{
			initCmd(),
			buildCmd(),
			outlineCmd(),
			checkCmd(),
			statusCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Stage content, write the outline, and invoke the renderer",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-render", Usage: "Stop after writing the outline"},
			&cli.BoolFlag{Name: "check", Usage: "Verify content links before staging"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Print the plan and outline without writing"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			bookRoot, cfg, err := loadBook()
			if err != nil {
				return err
			}

			a := &assemble.Assembler{
				Config:   cfg,
				BookRoot: bookRoot,
				Options: assemble.Options{
					NoRender:   cmd.Bool("no-render"),
					CheckLinks: cmd.Bool("check"),
				},
			}

			if cmd.Bool("dry-run") {
				return a.DryRunPrint()
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			return a.Run(ctx)
		},
	}
}

func outlineCmd() *cli.Command {
	return &cli.Command{
		Name:  "outline",
		Usage: "Print the navigation outline without staging or rendering",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Usage: "Also list entries omitted from the outline"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			bookRoot, cfg, err := loadBook()
			if err != nil {
				return err
			}

			topics, err := topic.Scan(cfg.SourceDir(bookRoot))
			if err != nil {
				return err
			}
			os.Stdout.Write(manifest.Render(manifest.Build(topics)))

			if cmd.Bool("verbose") {
				for _, t := range topics {
					if t.Kind == topic.KindSkipped {
						ux.SkippedEntry(t.Name, t.SkipReason)
					}
				}
			}
			return nil
		},
	}
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Report broken content links and entries omitted from the outline",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			bookRoot, cfg, err := loadBook()
			if err != nil {
				return err
			}

			srcDir := cfg.SourceDir(bookRoot)
			topics, err := topic.Scan(srcDir)
			if err != nil {
				return err
			}
			problems, err := lint.Check(srcDir, topics)
			if err != nil {
				return err
			}
			if len(problems) == 0 {
				fmt.Printf("%s✓ No problems found%s\n", ux.Green, ux.Reset)
				return nil
			}
			for _, p := range problems {
				ux.Problem(p.String())
			}
			return fmt.Errorf("%d problem(s) found", len(problems))
		},
	}
}

func statusCmd() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the last build record",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			bookRoot, cfg, err := loadBook()
			if err != nil {
				return err
			}

			destRoot := cfg.BuildPath(bookRoot)
			build, err := state.Load(destRoot)
			if err != nil {
				return fmt.Errorf("loading build record: %w", err)
			}
			ux.RenderStatus(build, destRoot)
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize a new book skeleton with example config and topics",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'bookgen docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}

// loadBook locates the book root and loads its config.
func loadBook() (string, *config.Config, error) {
	bookRoot, err := findBookRoot()
	if err != nil {
		return "", nil, err
	}
	cfg, err := config.Load(filepath.Join(bookRoot, config.Filename), bookRoot)
	if err != nil {
		return "", nil, fmt.Errorf("loading config: %w", err)
	}
	return bookRoot, cfg, nil
}

// findBookRoot walks up from cwd looking for book.yaml.
func findBookRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		configPath := filepath.Join(dir, config.Filename)
		if _, err := os.Stat(configPath); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found (searched from cwd to root)", config.Filename)
		}
		dir = parent
	}
}
