package repo

import "errors"

// State errors. Operations rejected with one of these leave no partial
// writes visible in the log or registry; commands report them as
// one-line messages and exit cleanly.
var (
	ErrEmptyMessage   = errors.New("commit message is empty")
	ErrNothingTracked = errors.New("no files are tracked")
	ErrNoChanges      = errors.New("nothing to commit")
	ErrCommitNotFound = errors.New("commit does not exist")
	ErrPathNotFound   = errors.New("path does not exist")
)
