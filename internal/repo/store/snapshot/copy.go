package snapshot

import (
	"fmt"
	"path/filepath"

	"github.com/col3name/kotlin-git/internal/fsio"
)

// copyPath copies a file or directory tree from src to dst. Existing
// directories are merged, existing files overwritten.
func copyPath(src, dst string) error {
	fi, err := fsio.StatFile(src)
	if err != nil {
		return err
	}

	if fi.IsDir() {
		if err := fsio.MkdirAll(dst, 0o755); err != nil {
			return err
		}
		entries, err := fsio.ReadDir(src)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if err := copyPath(filepath.Join(src, e.Name()), filepath.Join(dst, e.Name())); err != nil {
				return err
			}
		}
		return nil
	}

	if err := fsio.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	data, err := fsio.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", src, err)
	}
	return fsio.WriteFile(dst, data, fi.Mode().Perm())
}
