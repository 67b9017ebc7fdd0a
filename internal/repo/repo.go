package repo

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/col3name/kotlin-git/internal/config"
	"github.com/col3name/kotlin-git/internal/fsio"
	"github.com/col3name/kotlin-git/internal/repo/meta"
	"github.com/col3name/kotlin-git/internal/repo/store/snapshot"
)

// Repository ties the metadata and the commit store together over one
// storage root.
type Repository struct {
	Config *config.RepoConfig
	Meta   *meta.Context
	Store  *snapshot.Context
}

// OpenAt opens the repository rooted at workTree, creating the storage
// layout idempotently if absent.
func OpenAt(workTree string) (*Repository, error) {
	cfg := config.NewRepoConfig(workTree)
	if err := cfg.EnsureStore(); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return &Repository{
		Config: cfg,
		Meta:   meta.NewContext(cfg),
		Store:  snapshot.NewContext(cfg),
	}, nil
}

// Track adds a working-tree path to the tracked registry. The path
// must exist on disk, inside the working tree; duplicates are rejected
// by the registry.
func (r *Repository) Track(path string) error {
	rel := filepath.ToSlash(filepath.Clean(path))
	if filepath.IsAbs(path) || rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return fmt.Errorf("cannot track %q: outside the working tree", path)
	}
	if rel == config.RepoDir || strings.HasPrefix(rel, config.RepoDir+"/") {
		return fmt.Errorf("cannot track repository storage %q", path)
	}
	if !fsio.Exists(filepath.Join(r.Config.WorkTree, rel)) {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	return r.Meta.Track(rel)
}
