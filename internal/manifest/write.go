package manifest

import (
	"path/filepath"

	"github.com/jorge-barreto/bookgen/internal/state"
)

// Write renders the outline and writes it atomically into destRoot.
func Write(destRoot string, entries []Entry) error {
	return state.WriteFileAtomic(filepath.Join(destRoot, Filename), Render(entries), 0644)
}
