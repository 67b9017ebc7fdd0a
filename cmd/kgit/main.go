package main

import (
	"log/slog"
	"os"

	"github.com/col3name/kotlin-git/internal/cli"

	_ "github.com/col3name/kotlin-git/internal/command/add"
	_ "github.com/col3name/kotlin-git/internal/command/checkout"
	_ "github.com/col3name/kotlin-git/internal/command/commit"
	_ "github.com/col3name/kotlin-git/internal/command/config"
	_ "github.com/col3name/kotlin-git/internal/command/help"
	_ "github.com/col3name/kotlin-git/internal/command/log"
)

func main() {
	args, level := splitGlobalFlags(os.Args[1:])

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	os.Exit(cli.RunCLI(args))
}

// splitGlobalFlags strips flags handled before dispatch. Only --debug
// is recognized; it raises the slog level. Flags are only consumed
// before the command name so command arguments pass through verbatim.
func splitGlobalFlags(args []string) ([]string, slog.Level) {
	level := slog.LevelInfo
	rest := make([]string, 0, len(args))
	for i, a := range args {
		if a == "--debug" {
			level = slog.LevelDebug
			continue
		}
		rest = append(rest, a)
		rest = append(rest, args[i+1:]...)
		break
	}
	return rest, level
}
