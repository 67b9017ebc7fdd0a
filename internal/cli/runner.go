package cli

import (
	"fmt"
	"os"
)

// RunCLI resolves a command from args and executes it.
// Returns the process exit code: 0 for success and for rejections the
// command reported itself, 1 for unknown commands and unexpected errors.
func RunCLI(args []string) int {
	if len(args) == 0 {
		PrintUsage()
		return 0
	}

	cmdName := args[0]
	cmd, ok := GetCommand(cmdName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmdName)
		return 1
	}

	ctx := &Context{Args: args[1:]}
	if err := cmd.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// PrintUsage lists every registered command with its brief description.
func PrintUsage() {
	fmt.Println("Usage: kgit <command> [args...]")
	fmt.Println("Available commands:")
	for _, cmd := range AllCommands() {
		fmt.Printf("  %-10s %s\n", cmd.Name(), cmd.Brief())
	}
}
