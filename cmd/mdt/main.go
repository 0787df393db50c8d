package main

import (
	"fmt"
	"os"

	"mdt/internal/cli"
	"mdt/internal/cli/commands"
	"mdt/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "mdt",
		Short:   "Markdown doc-test runner",
		Long:    `Keeps documentation honest: extracts the rust code snippets embedded in markdown files and compiles and runs each one as an isolated, named test against the current codebase.`,
		Version: version,
	}

	// Create config from defaults, .env and environment
	cfg := config.Load(config.Flags{})

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
