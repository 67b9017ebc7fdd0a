package add

import (
	"errors"
	"fmt"

	"github.com/col3name/kotlin-git/internal/cli"
	"github.com/col3name/kotlin-git/internal/config"
	"github.com/col3name/kotlin-git/internal/middleware"
	"github.com/col3name/kotlin-git/internal/repo"
	"github.com/col3name/kotlin-git/internal/repo/meta"
)

type Command struct{}

func (c *Command) Name() string      { return "add" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "add [path]" }
func (c *Command) Brief() string     { return "Track a file, or list tracked files" }
func (c *Command) Help() string {
	return `Track a working-tree path for the next commits.

Usage:
  add        - list currently tracked files
  add <path> - start tracking a file or directory`
}

func (c *Command) Run(ctx *cli.Context) error {
	r, err := repo.OpenAt(config.ResolveWorkingTreeRoot())
	if err != nil {
		return err
	}

	if len(ctx.Args) == 0 {
		paths, err := r.Meta.TrackedPaths()
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Println("Add a file to the index.")
			return nil
		}
		fmt.Println("Tracked files:")
		for _, p := range paths {
			fmt.Println(p)
		}
		return nil
	}

	path := ctx.Args[0]
	switch err := r.Track(path); {
	case err == nil:
		fmt.Printf("The file '%s' is tracked.\n", path)
	case errors.Is(err, repo.ErrPathNotFound):
		fmt.Printf("Can't find '%s'.\n", path)
	case errors.Is(err, meta.ErrAlreadyTracked):
		fmt.Printf("The file '%s' is already tracked.\n", path)
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
