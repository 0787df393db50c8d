package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mdt/internal/config"
	"mdt/internal/discovery"
	"mdt/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	docsPath := lc.config.GetDocsPath()
	docs, err := lc.scanner.Scan(docsPath)
	if err != nil {
		return err
	}

	docs = lc.filter.FilterByName(docs, lc.config.Flags.NameFilter)

	if len(docs) == 0 {
		color.Yellow("No documents found")
		return nil
	}

	return lc.formatter.PrintDocList(docs, lc.config.Flags.Cases)
}
