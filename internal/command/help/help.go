package help

import (
	"fmt"

	"github.com/col3name/kotlin-git/internal/cli"
)

type Command struct{}

func (c *Command) Name() string      { return "help" }
func (c *Command) Aliases() []string { return []string{"--help", "-h"} }
func (c *Command) Usage() string     { return "help [command]" }
func (c *Command) Brief() string     { return "Show help for a command" }
func (c *Command) Help() string {
	return `Show the command list, or detailed help for one command.

Usage:
  help
  help <command>`
}

func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) == 0 {
		cli.PrintUsage()
		return nil
	}

	name := ctx.Args[0]
	cmd, ok := cli.GetCommand(name)
	if !ok {
		fmt.Printf("Unknown command: %s\n", name)
		return nil
	}

	fmt.Printf("Usage: kgit %s\n\n%s\n", cmd.Usage(), cmd.Help())
	return nil
}

func init() {
	cli.RegisterCommand(&Command{})
}
