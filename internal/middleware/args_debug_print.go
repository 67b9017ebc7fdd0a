package middleware

import (
	"log/slog"

	"github.com/col3name/kotlin-git/internal/cli"
)

// WithDebugArgsPrint logs the resolved command and its arguments
// at debug level before running it.
func WithDebugArgsPrint() cli.Middleware {
	return func(cmd cli.Command) cli.Command {
		return &cli.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *cli.Context) error {
				slog.Debug("running command", "command", cmd.Name(), "args", ctx.Args)
				return cmd.Run(ctx)
			},
		}
	}
}
