package commands

import (
	"fmt"
	"time"

	"mdt/internal/config"
	"mdt/internal/discovery"
	"mdt/internal/domain"
	"mdt/internal/execution"
	"mdt/internal/extract"
	"mdt/internal/parser"
	"mdt/internal/storage"
	"mdt/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	extractor *extract.Extractor
	engine    *execution.Engine
	parser    *parser.CargoParser
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	extractor *extract.Extractor,
	engine *execution.Engine,
	cargoParser *parser.CargoParser,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		extractor: extractor,
		engine:    engine,
		parser:    cargoParser,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// Discover documents
	docsPath := rc.config.GetDocsPath()
	docs, err := rc.scanner.Scan(docsPath)
	if err != nil {
		return err
	}
	docs = rc.filter.FilterByName(docs, rc.config.Flags.NameFilter)

	// Extract tests. An unreadable document skips that document only;
	// the rest of the run continues.
	var tests []domain.Test
	for _, doc := range docs {
		extracted, err := rc.extractor.ExtractFile(doc)
		if err != nil {
			color.Yellow("Warning: skipping %s: %v", doc, err)
			continue
		}
		tests = append(tests, extracted...)
	}

	if len(tests) == 0 {
		color.Yellow("No doc tests found")
	}

	// Execute tests sequentially
	var results []domain.Result
	var elapsed time.Duration
	if len(tests) > 0 {
		progressBar := ui.NewProgressBar(len(tests))
		rc.engine.SetProgress(progressBar)
		rc.engine.SetReporter(rc.formatter.PrintResult)

		results, elapsed, err = rc.engine.Execute(tests)
		if err != nil {
			return fmt.Errorf("doc test execution failed: %w", err)
		}
	}

	// Collect failure details
	var failures []domain.TestFailure
	for _, result := range results {
		if result.Outcome == domain.OutcomeFailed {
			failures = append(failures, rc.parser.ParseFailure(result))
		}
	}

	// Save results
	if err := rc.storage.Save(results, failures, elapsed); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	// Print stats (counts are reported even when nothing ran)
	return rc.formatter.PrintMetaStats()
}
