package stage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const lockName = ".bookgen.lock"

// Lock guards a build directory against concurrent assembler runs.
// The destination is exclusively owned by one run at a time.
type Lock struct {
	path string
}

// Acquire creates the lock file, failing if another run already holds it.
// The build directory must exist.
func Acquire(destRoot string) (*Lock, error) {
	path := filepath.Join(destRoot, lockName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("build directory is locked by another bookgen run (remove %s if stale)", path)
		}
		return nil, err
	}
	fmt.Fprintf(f, "%d\n", os.Getpid())
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, err
	}
	return &Lock{path: path}, nil
}

// Release removes the lock file.
func (l *Lock) Release() error {
	return os.Remove(l.path)
}
