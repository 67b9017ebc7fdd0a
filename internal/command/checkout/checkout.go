package checkout

import (
	"errors"
	"fmt"

	"github.com/col3name/kotlin-git/internal/cli"
	"github.com/col3name/kotlin-git/internal/config"
	"github.com/col3name/kotlin-git/internal/middleware"
	"github.com/col3name/kotlin-git/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "checkout" }
func (c *Command) Aliases() []string { return []string{"co"} }
func (c *Command) Usage() string     { return "checkout <commit-id>" }
func (c *Command) Brief() string     { return "Restore tracked files from a commit" }
func (c *Command) Help() string {
	return `Restore the working tree to the snapshot of a commit.
Tracked files are replaced; untracked files are left untouched.

Usage:
  checkout <commit-id>`
}

func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) == 0 || ctx.Args[0] == "" {
		fmt.Println("Commit id was not passed.")
		return nil
	}
	commitID := ctx.Args[0]

	r, err := repo.OpenAt(config.ResolveWorkingTreeRoot())
	if err != nil {
		return err
	}

	switch err := r.Checkout(commitID); {
	case err == nil:
		fmt.Printf("Switched to commit %s.\n", commitID)
	case errors.Is(err, repo.ErrCommitNotFound):
		fmt.Printf("Commit does not exist.\n")
	default:
		return err
	}
	return nil
}

func init() {
	cli.RegisterCommand(
		cli.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
