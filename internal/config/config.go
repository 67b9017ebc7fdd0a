package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/col3name/kotlin-git/internal/fsio"
)

const (
	// RepoDir is the storage root directory, relative to the working tree.
	RepoDir = ".kgit"

	commitsDirName  = "commits"
	logFileName     = "log"
	trackedFileName = "tracked"
	configFileName  = "config"
)

// RepoConfig is the storage-root handle passed into every component.
// All persisted state lives under Root; the tracked files live under
// WorkTree.
type RepoConfig struct {
	WorkTree string // working-tree root
	Root     string // storage root, <WorkTree>/.kgit
}

// NewRepoConfig constructs a RepoConfig for the given working-tree root.
func NewRepoConfig(workTree string) *RepoConfig {
	return &RepoConfig{
		WorkTree: workTree,
		Root:     filepath.Join(workTree, RepoDir),
	}
}

// CommitsDir returns the directory holding one snapshot per commit.
func (c *RepoConfig) CommitsDir() string { return filepath.Join(c.Root, commitsDirName) }

// CommitDir returns the snapshot directory for a single commit id.
func (c *RepoConfig) CommitDir(id string) string { return filepath.Join(c.CommitsDir(), id) }

// LogFile returns the path of the append-only commit log.
func (c *RepoConfig) LogFile() string { return filepath.Join(c.Root, logFileName) }

// TrackedFile returns the path of the tracked-path registry.
func (c *RepoConfig) TrackedFile() string { return filepath.Join(c.Root, trackedFileName) }

// ConfigFile returns the path of the user config file.
func (c *RepoConfig) ConfigFile() string { return filepath.Join(c.Root, configFileName) }

// EnsureStore creates the storage layout if absent. Idempotent.
func (c *RepoConfig) EnsureStore() error {
	for _, d := range []string{c.Root, c.CommitsDir()} {
		if err := fsio.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("failed to create dir %q: %w", d, err)
		}
	}
	return nil
}

// ResolveWorkingTreeRoot determines the working tree root by walking up.
// It traverses up the directory tree until it finds a .kgit directory;
// if none is found the current directory is the working tree.
func ResolveWorkingTreeRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	dir := cwd
	for {
		if fsio.IsDir(filepath.Join(dir, RepoDir)) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return cwd
}
