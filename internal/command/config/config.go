package config

import (
	"errors"
	"fmt"

	"github.com/col3name/kotlin-git/internal/cli"
	"github.com/col3name/kotlin-git/internal/config"
	"github.com/col3name/kotlin-git/internal/middleware"
	"github.com/col3name/kotlin-git/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "config" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "config [username]" }
func (c *Command) Brief() string     { return "Show or set the commit author name" }
func (c *Command) Help() string {
	return `Show or set the username stamped as commit author.

Usage:
  config            - show the current username
  config <username> - set and persist the username`
}

func (c *Command) Run(ctx *cli.Context) error {
	r, err := repo.OpenAt(config.ResolveWorkingTreeRoot())
	if err != nil {
		return err
	}

	if len(ctx.Args) == 0 {
		user, err := r.Config.LoadUser()
		if err != nil {
			return err
		}
		if user.Username == "" {
			fmt.Println("Please, tell me who you are.")
			fmt.Println("Run 'kgit config <username>' to set a username.")
			return nil
		}
		fmt.Printf("The username is %s.\n", user.Username)
		return nil
	}

	name := ctx.Args[0]
	if err := r.Config.SaveUser(config.UserConfig{Username: name}); err != nil {
		if errors.Is(err, config.ErrInvalidUsername) {
			fmt.Printf("Username %q cannot be stored, pick one without tabs, colons or newlines.\n", name)
			return nil
		}
		return err
	}
	fmt.Printf("The username is %s.\n", name)
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
