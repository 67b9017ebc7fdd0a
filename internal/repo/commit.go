package repo

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/col3name/kotlin-git/internal/repo/meta"
	"github.com/col3name/kotlin-git/internal/repo/store/file"
)

// Commit captures a full-content snapshot of every tracked path and
// appends a new commit to the log. The snapshot is written completely
// before the log is touched, so a copy failure can at worst leave an
// orphaned, never-referenced snapshot directory.
func (r *Repository) Commit(message string) (*meta.Commit, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	paths, err := r.Meta.TrackedPaths()
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, ErrNothingTracked
	}

	last, err := r.Meta.LatestCommit()
	if err != nil {
		return nil, err
	}
	if last != nil && !r.hasChanges(paths, last.ID) {
		return nil, fmt.Errorf("%w: tracked files are unchanged since %s", ErrNoChanges, last.ID)
	}

	user, err := r.Config.LoadUser()
	if err != nil {
		return nil, err
	}

	c := &meta.Commit{
		ID:        meta.NewCommitID(),
		Author:    user.Username,
		Timestamp: time.Now(),
		Message:   message,
	}

	if err := r.Store.Create(c.ID, paths); err != nil {
		return nil, err
	}
	if err := r.Meta.AppendCommit(c); err != nil {
		return nil, err
	}
	return c, nil
}

// hasChanges reports whether any tracked path differs from its
// counterpart in the previous commit's snapshot. A path with no
// counterpart (tracked since the last commit) counts as changed.
func (r *Repository) hasChanges(paths []string, lastID string) bool {
	snapDir := r.Store.Dir(lastID)
	for _, p := range paths {
		if !file.Equal(filepath.Join(r.Config.WorkTree, p), filepath.Join(snapDir, p)) {
			return true
		}
	}
	return false
}
