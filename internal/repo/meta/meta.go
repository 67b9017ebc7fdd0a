package meta

import (
	"github.com/col3name/kotlin-git/internal/config"
)

// Context gives access to the repository metadata: the append-only
// commit log and the tracked-path registry. All state is read from
// disk on every call; nothing is cached across invocations.
type Context struct {
	Config *config.RepoConfig
}

// NewContext constructs a metadata context over the given storage root.
func NewContext(cfg *config.RepoConfig) *Context {
	return &Context{Config: cfg}
}
