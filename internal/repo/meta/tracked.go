package meta

import (
	"errors"
	"fmt"
	"strings"

	"github.com/col3name/kotlin-git/internal/fsio"
)

// ErrAlreadyTracked is returned when a path is tracked a second time.
var ErrAlreadyTracked = errors.New("path is already tracked")

// TrackedPaths returns the tracked paths in insertion order. The
// backing file is created lazily on first access.
func (mc *Context) TrackedPaths() ([]string, error) {
	data, err := fsio.ReadFile(mc.Config.TrackedFile())
	if err != nil {
		if !fsio.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read tracked registry: %w", err)
		}
		if err := mc.Config.EnsureStore(); err != nil {
			return nil, err
		}
		if err := fsio.WriteFile(mc.Config.TrackedFile(), nil, 0o644); err != nil {
			return nil, fmt.Errorf("failed to create tracked registry: %w", err)
		}
		return nil, nil
	}

	var paths []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}

// Track appends a path to the registry, preserving prior entries and
// their order. Duplicates are rejected with ErrAlreadyTracked.
// The registry is rewritten whole; entries are never auto-removed.
func (mc *Context) Track(path string) error {
	paths, err := mc.TrackedPaths()
	if err != nil {
		return err
	}
	for _, p := range paths {
		if p == path {
			return fmt.Errorf("%w: %s", ErrAlreadyTracked, path)
		}
	}

	paths = append(paths, path)
	content := strings.Join(paths, "\n") + "\n"
	if err := fsio.WriteFile(mc.Config.TrackedFile(), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write tracked registry: %w", err)
	}
	return nil
}
