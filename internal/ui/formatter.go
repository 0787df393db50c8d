package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"

	"mdt/internal/config"
	"mdt/internal/domain"
	"mdt/internal/extract"
)

// Formatter formats and displays output
type Formatter struct {
	config    *config.Config
	extractor *extract.Extractor
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, extractor *extract.Extractor) *Formatter {
	return &Formatter{
		config:    cfg,
		extractor: extractor,
	}
}

// PrintResult prints one test's report line as it completes, with
// diagnostics directly below when the test failed.
func (f *Formatter) PrintResult(result domain.Result) {
	switch result.Outcome {
	case domain.OutcomePassed:
		fmt.Printf("%s %s\n", result.Test.Name, color.GreenString("passed"))
	case domain.OutcomeIgnored:
		fmt.Printf("%s %s\n", result.Test.Name, color.YellowString("ignored"))
	case domain.OutcomeFailed:
		fmt.Printf("%s %s\n", result.Test.Name, color.RedString("failed"))
		if result.Stage == domain.StagePanicExpectation {
			color.Red("  expected a panic, but the program exited successfully")
		}
		if result.Output != "" {
			for _, line := range strings.Split(strings.TrimRight(result.Output, "\n"), "\n") {
				fmt.Printf("  %s\n", line)
			}
		}
	}
}

// PrintMetaStats reads and displays meta statistics from the JSON results file
func (f *Formatter) PrintMetaStats() error {
	outputPath := f.config.GetOutputPath()

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    Doc Test Run Statistics                    ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Tests")
	color.White("%-27d │\n", meta.TotalTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed")
	color.Green("%-27d │\n", meta.PassedTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed")
	color.Red("%-27d │\n", meta.FailedTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Ignored")
	color.Yellow("%-27d │\n", meta.IgnoredTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedTests == 0 {
		color.Green("✓ All doc tests passed!")
	} else {
		color.Red("✗ %d doc test(s) failed", meta.FailedTests)
		fmt.Println()
		f.printFailedDocsTree(output.Details)
	}

	return nil
}

// printFailedDocsTree groups failing snippets under their documents.
func (f *Formatter) printFailedDocsTree(failures []domain.TestFailure) {
	if len(failures) == 0 {
		return
	}

	docMap := make(map[string][]domain.TestFailure)
	for _, failure := range failures {
		docMap[failure.DocPath] = append(docMap[failure.DocPath], failure)
	}

	var docs []string
	for doc := range docMap {
		docs = append(docs, doc)
	}
	sort.Strings(docs)

	for i, doc := range docs {
		isLastDoc := i == len(docs)-1
		if isLastDoc {
			color.Cyan("└── %s", doc)
		} else {
			color.Cyan("├── %s", doc)
		}

		for j, failure := range docMap[doc] {
			isLastCase := j == len(docMap[doc])-1

			var prefix string
			if isLastDoc {
				if isLastCase {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastCase {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}

			line := color.RedString(failure.TestName)
			if failure.Message != "" {
				line += " " + color.YellowString("(%s)", failure.Message)
			}
			fmt.Printf("%s%s\n", prefix, line)
		}
	}
}

// PrintDocList prints discovered documents, optionally with the test
// names that would be derived from each.
func (f *Formatter) PrintDocList(docs []string, showCases bool) error {
	if !showCases {
		color.Green("Found %d document(s):\n", len(docs))

		for i, doc := range docs {
			relPath, err := filepath.Rel(f.config.ProjectPath, doc)
			if err != nil {
				relPath = doc
			}

			if i == len(docs)-1 {
				color.Cyan("└── %s", relPath)
			} else {
				color.Cyan("├── %s", relPath)
			}
		}
		return nil
	}

	color.Green("Found %d document(s) with doc tests:\n", len(docs))

	for i, doc := range docs {
		tests, err := f.extractor.ExtractFile(doc)
		if err != nil {
			color.Red("Error reading document %s: %v", doc, err)
			continue
		}

		relPath, err := filepath.Rel(f.config.ProjectPath, doc)
		if err != nil {
			relPath = doc
		}

		isLastDoc := i == len(docs)-1
		if isLastDoc {
			color.Cyan("└── %s", relPath)
		} else {
			color.Cyan("├── %s", relPath)
		}

		if len(tests) == 0 {
			var prefix string
			if isLastDoc {
				prefix = "    └── "
			} else {
				prefix = "│   └── "
			}
			fmt.Printf("%s%s\n", prefix, color.RedString("(no doc tests found)"))
		} else {
			for j, test := range tests {
				isLastCase := j == len(tests)-1

				var prefix string
				if isLastDoc {
					if isLastCase {
						prefix = "    └── "
					} else {
						prefix = "    ├── "
					}
				} else {
					if isLastCase {
						prefix = "│   └── "
					} else {
						prefix = "│   ├── "
					}
				}

				name := color.YellowString(test.Name)
				if test.Ignore {
					name += " " + color.YellowString("[ignore]")
				} else if test.NoRun {
					name += " [no_run]"
				} else if test.ShouldPanic {
					name += " [should_panic]"
				}
				fmt.Printf("%s%s\n", prefix, name)
			}
		}

		if i < len(docs)-1 {
			fmt.Println()
		}
	}

	return nil
}
