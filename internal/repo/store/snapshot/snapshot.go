package snapshot

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/col3name/kotlin-git/internal/config"
	"github.com/col3name/kotlin-git/internal/fsio"
	"github.com/col3name/kotlin-git/internal/progress"
)

// Context manages the commit store: one immutable directory per commit
// id, holding byte-identical copies of every tracked path.
type Context struct {
	Config *config.RepoConfig
}

// NewContext constructs a commit-store context over the given storage root.
func NewContext(cfg *config.RepoConfig) *Context {
	return &Context{Config: cfg}
}

// Dir returns the snapshot directory for a commit id.
func (sc *Context) Dir(id string) string {
	return sc.Config.CommitDir(id)
}

// ValidID reports whether id can name a snapshot directory. Ids that
// would resolve to the commits dir itself or outside it ("", ".",
// "..", anything with a path separator) never name a snapshot.
func ValidID(id string) bool {
	switch id {
	case "", ".", "..":
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}

// Exists reports whether a snapshot directory exists for id.
func (sc *Context) Exists(id string) bool {
	if !ValidID(id) {
		return false
	}
	return fsio.IsDir(sc.Dir(id))
}

// Create copies every tracked path from the working tree into a fresh
// snapshot directory for id, preserving relative structure. On a copy
// failure the half-written directory is removed so it is never
// observable once the commit log references the id. Tracked paths
// missing from the working tree are skipped with a warning.
func (sc *Context) Create(id string, paths []string) error {
	dir := sc.Dir(id)
	if err := fsio.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot dir %q: %w", dir, err)
	}

	bar := progress.New(len(paths), fmt.Sprintf("Snapshotting %s", id))
	defer bar.Finish()

	for _, p := range paths {
		src := filepath.Join(sc.Config.WorkTree, p)
		if !fsio.Exists(src) {
			fmt.Printf("\nWarning: tracked path %q is missing, skipped\n", p)
			bar.Increment()
			continue
		}
		if err := copyPath(src, filepath.Join(dir, p)); err != nil {
			_ = fsio.RemoveAll(dir)
			return fmt.Errorf("failed to snapshot %q: %w", p, err)
		}
		bar.Increment()
	}
	return nil
}

// Restore repopulates the working tree from the snapshot for id.
// Every currently tracked path is removed first; then the snapshot
// contents are copied over the working tree root, merging directories
// and overwriting files. Untracked files are left untouched, and the
// registry itself is not rolled back.
func (sc *Context) Restore(id string, trackedPaths []string) error {
	snapDir := sc.Dir(id)

	entries, err := fsio.ReadDir(snapDir)
	if err != nil {
		return fmt.Errorf("failed to read snapshot %q: %w", id, err)
	}

	for _, p := range trackedPaths {
		target := filepath.Join(sc.Config.WorkTree, p)
		if err := fsio.RemoveAll(target); err != nil {
			return fmt.Errorf("failed to remove %q: %w", p, err)
		}
	}

	bar := progress.New(len(entries), fmt.Sprintf("Restoring %s", id))
	defer bar.Finish()

	for _, e := range entries {
		src := filepath.Join(snapDir, e.Name())
		dst := filepath.Join(sc.Config.WorkTree, e.Name())
		if err := copyPath(src, dst); err != nil {
			return fmt.Errorf("failed to restore %q: %w", e.Name(), err)
		}
		bar.Increment()
	}
	return nil
}
