package repo

import (
	"fmt"
)

// Checkout restores the working tree to the snapshot of commitID.
// Currently tracked paths are wiped first, then the snapshot contents
// are copied back in. The tracked registry is deliberately not rolled
// back to its commit-time state: tracking is forward-only.
func (r *Repository) Checkout(commitID string) error {
	if !r.Store.Exists(commitID) {
		return fmt.Errorf("%w: %s", ErrCommitNotFound, commitID)
	}

	paths, err := r.Meta.TrackedPaths()
	if err != nil {
		return err
	}

	if err := r.Store.Restore(commitID, paths); err != nil {
		return fmt.Errorf("failed to check out %s: %w", commitID, err)
	}
	return nil
}
