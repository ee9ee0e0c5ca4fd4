package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// MetaDirName is the build-metadata directory inside the build dir.
const MetaDirName = ".bookgen"

// Build is the record of a single assembler run. It is fully rewritten on
// every invocation, never incrementally updated.
type Build struct {
	RunID       string    `json:"run_id"`
	Status      string    `json:"status"`
	Step        string    `json:"step,omitempty"` // failing step when status is failed
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Topics      int       `json:"topics"`
	SubChapters int       `json:"sub_chapters"`
	FilesStaged int       `json:"files_staged"`
}

// NewBuild returns a fresh running record with a unique run id.
func NewBuild() *Build {
	return &Build{
		RunID:     uuid.NewString(),
		Status:    StatusRunning,
		StartedAt: time.Now().UTC(),
	}
}

func buildPath(destRoot string) string {
	return filepath.Join(destRoot, MetaDirName, "build.json")
}

// Load reads the last build record from the build directory.
// Returns nil (no error) when no build has been recorded.
func Load(destRoot string) (*Build, error) {
	data, err := os.ReadFile(buildPath(destRoot))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var b Build
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Save writes the build record atomically.
func (b *Build) Save(destRoot string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return WriteFileAtomic(buildPath(destRoot), data, 0644)
}

// Finish stamps the final status, the failing step (empty on success), the
// finish time, and the run duration.
func (b *Build) Finish(status, step string) {
	b.Status = status
	b.Step = step
	b.FinishedAt = time.Now().UTC()
	b.Duration = formatDuration(b.FinishedAt.Sub(b.StartedAt))
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %02ds", m, s)
}
