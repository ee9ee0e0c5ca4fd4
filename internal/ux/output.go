package ux

import (
	"fmt"
	"time"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// StepHeader prints a timestamped pipeline step header.
func StepHeader(name, description string) {
	fmt.Printf("%s[%s]%s %s▸ %s%s %s%s%s\n",
		Dim, timestamp(), Reset, Cyan, name, Reset, Dim, description, Reset)
}

// StepDone prints a step completion message with a short detail.
func StepDone(name, detail string) {
	fmt.Printf("%s[%s]%s  %s✓ %s%s  %s\n",
		Dim, timestamp(), Reset, Green, name, Reset, detail)
}

// StepFail prints a step failure message.
func StepFail(name, errMsg string) {
	fmt.Printf("%s[%s]%s  %s✗ %s failed: %s%s\n",
		Dim, timestamp(), Reset, Red, name, errMsg, Reset)
}

// SkippedEntry prints a source entry that produced no outline entry.
func SkippedEntry(name, reason string) {
	fmt.Printf("  %s– %s (%s)%s\n", Dim, name, reason, Reset)
}

// Problem prints one lint finding.
func Problem(msg string) {
	fmt.Printf("  %s⚠ %s%s\n", Yellow, msg, Reset)
}

// BuildComplete prints the final success summary.
func BuildComplete(topics, chapters, files int, duration time.Duration) {
	m := int(duration.Minutes())
	s := int(duration.Seconds()) % 60
	fmt.Printf("\n%s[%s]%s  %s%s══ Book assembled: %d topics, %d chapters, %d files staged (%dm %02ds) ══%s\n\n",
		Dim, timestamp(), Reset, Bold, Green, topics, chapters, files, m, s, Reset)
}

// RenderHint prints where the rendered output and log live.
func RenderHint(logPath string) {
	fmt.Printf("%sRenderer log:%s %s\n", Yellow, Reset, logPath)
}
