package log

import (
	"fmt"
	"io"
	"os"

	"github.com/col3name/kotlin-git/internal/cli"
	"github.com/col3name/kotlin-git/internal/config"
	"github.com/col3name/kotlin-git/internal/middleware"
	"github.com/col3name/kotlin-git/internal/repo"
	"github.com/col3name/kotlin-git/internal/repo/meta"
)

type Command struct{}

func (c *Command) Name() string      { return "log" }
func (c *Command) Aliases() []string { return []string{"commits"} }
func (c *Command) Usage() string     { return "log" }
func (c *Command) Brief() string     { return "Show commit history, newest first" }
func (c *Command) Help() string {
	return `Show commit logs, newest first by timestamp.

Usage:
  log`
}

func (c *Command) Run(ctx *cli.Context) error {
	r, err := repo.OpenAt(config.ResolveWorkingTreeRoot())
	if err != nil {
		return err
	}

	commits, err := r.Meta.AllCommits()
	if err != nil {
		return err
	}
	render(os.Stdout, commits)
	return nil
}

// render prints the history newest-first. File order and timestamp
// order may diverge after clock adjustments, hence the explicit sort.
func render(w io.Writer, commits []*meta.Commit) {
	if len(commits) == 0 {
		fmt.Fprintln(w, "No commits yet.")
		return
	}

	meta.SortByTimestampDesc(commits)
	for _, cmt := range commits {
		fmt.Fprintf(w, "Commit: %s\n", cmt.ID)
		if cmt.Author != "" {
			fmt.Fprintf(w, "Author: %s\n", cmt.Author)
		}
		fmt.Fprintf(w, "Date:   %s\n", cmt.Timestamp.Format("Mon Jan 2 15:04:05 2006"))
		fmt.Fprintf(w, "\n    %s\n\n", cmt.Message)
	}
}

func init() {
	cli.RegisterCommand(
		cli.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
