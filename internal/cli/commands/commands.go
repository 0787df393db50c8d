package commands

import (
	"mdt/internal/cli"
	"mdt/internal/config"
	"mdt/internal/discovery"
	"mdt/internal/execution"
	"mdt/internal/extract"
	"mdt/internal/parser"
	"mdt/internal/storage"
	"mdt/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run   *RunCommand
	List  *ListCommand
	Fails *FailsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	extractor := extract.NewExtractor()
	toolchain := execution.NewCargoToolchain(cfg.CargoBin)
	engine := execution.NewEngine(cfg, toolchain)
	cargoParser := parser.NewCargoParser()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, extractor)
	failureViewer := ui.NewFailureViewer(cfg, jsonStorage)

	return &Commands{
		Run:   NewRunCommand(cfg, scanner, filter, extractor, engine, cargoParser, jsonStorage, formatter),
		List:  NewListCommand(cfg, scanner, filter, formatter),
		Fails: NewFailsCommand(cfg, jsonStorage, failureViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run doc tests extracted from markdown",
		Long:  "Discover markdown documents, extract their rust code snippets and execute each as an isolated test",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.DocsPath, "docs", "d", "", "Path to the folder where document discovery should start")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter documents by name pattern (supports wildcards, e.g. '*README.md' or '*guide*')")
	runCmd.Flags().StringVar(&flags.ScratchDir, "scratch-dir", "", "Directory for the disposable scratch project")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered documents",
		Long:  "Scan and list markdown documents without executing their snippets",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter documents by name pattern (supports wildcards, e.g. '*README.md' or '*guide*')")
	listCmd.Flags().StringVarP(&flags.DocsPath, "docs", "d", "", "Path to the folder where document discovery should start")
	listCmd.Flags().BoolVarP(&flags.Cases, "cases", "c", false, "List derived test names instead of just documents")
	rootCmd.AddCommand(listCmd)

	// Fails command
	failsCmd := &cobra.Command{
		Use:   "fails",
		Short: "View doc-test failures interactively",
		Long:  "Display failures from the last run in an interactive viewer",
		RunE:  c.Fails.Execute,
	}
	rootCmd.AddCommand(failsCmd)
}
