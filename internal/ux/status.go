package ux

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/bookgen/internal/state"
)

// RenderStatus prints the last build record and a listing of the build
// directory contents.
func RenderStatus(build *state.Build, destRoot string) {
	if build == nil {
		fmt.Printf("%sNo build recorded%s — run %sbookgen build%s first.\n", Dim, Reset, Cyan, Reset)
		return
	}

	fmt.Printf("%sRun:%s      %s\n", Bold, Reset, build.RunID)
	switch build.Status {
	case state.StatusCompleted:
		fmt.Printf("%sStatus:%s   %s%scompleted%s", Bold, Reset, Green, Bold, Reset)
	case state.StatusFailed:
		fmt.Printf("%sStatus:%s   %s%sfailed%s at step %q", Bold, Reset, Red, Bold, Reset, build.Step)
	default:
		fmt.Printf("%sStatus:%s   %s", Bold, Reset, build.Status)
	}
	if build.Duration != "" {
		fmt.Printf("  %s(%s)%s", Dim, build.Duration, Reset)
	}
	fmt.Println()

	fmt.Printf("%sStarted:%s  %s\n", Bold, Reset, build.StartedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("%sContent:%s  %d topics, %d chapters, %d files staged\n",
		Bold, Reset, build.Topics, build.SubChapters, build.FilesStaged)

	fmt.Printf("\n%sBuild dir:%s\n", Bold, Reset)
	entries, err := os.ReadDir(destRoot)
	if err != nil {
		fmt.Printf("  %s(none)%s\n", Dim, Reset)
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			subEntries, _ := os.ReadDir(filepath.Join(destRoot, e.Name()))
			fmt.Printf("  %s/ %s(%d entries)%s\n", e.Name(), Dim, len(subEntries), Reset)
		} else {
			fmt.Printf("  %s\n", e.Name())
		}
	}
	fmt.Println()
}
