package commit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/col3name/kotlin-git/internal/cli"
	"github.com/col3name/kotlin-git/internal/config"
	"github.com/col3name/kotlin-git/internal/middleware"
	"github.com/col3name/kotlin-git/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "commit" }
func (c *Command) Aliases() []string { return []string{"ci"} }
func (c *Command) Usage() string     { return "commit <message>" }
func (c *Command) Brief() string     { return "Snapshot all tracked files as a new commit" }
func (c *Command) Help() string {
	return `Create a new commit from the current content of every tracked file.
The commit is rejected when nothing changed since the last one.

Usage:
  commit <message>`
}

func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) == 0 {
		fmt.Println("Message was not passed.")
		return nil
	}
	message := strings.Join(ctx.Args, " ")

	r, err := repo.OpenAt(config.ResolveWorkingTreeRoot())
	if err != nil {
		return err
	}

	cmt, err := r.Commit(message)
	switch {
	case err == nil:
		fmt.Printf("Changes are committed as %s.\n", cmt.ID)
	case errors.Is(err, repo.ErrEmptyMessage):
		fmt.Println("Message was not passed.")
	case errors.Is(err, repo.ErrNothingTracked):
		fmt.Println("Nothing to commit: no files are tracked.")
	case errors.Is(err, repo.ErrNoChanges):
		fmt.Println("Nothing to commit.")
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
