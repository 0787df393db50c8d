package execution

import (
	"time"

	"mdt/internal/config"
	"mdt/internal/domain"
	"mdt/internal/ui"

	"github.com/fatih/color"
)

// Engine executes tests strictly sequentially. Every test reuses the
// same scratch program slot, so two tests must never run concurrently.
type Engine struct {
	config    *config.Config
	toolchain Toolchain
	progress  *ui.ProgressBar
	reporter  func(domain.Result)
}

// NewEngine creates a new Engine
func NewEngine(cfg *config.Config, toolchain Toolchain) *Engine {
	return &Engine{config: cfg, toolchain: toolchain}
}

// SetProgress sets the progress bar updated as tests complete.
func (e *Engine) SetProgress(progress *ui.ProgressBar) {
	e.progress = progress
}

// SetReporter sets a callback invoked with each result as it is produced,
// so failures are reported next to the test that caused them.
func (e *Engine) SetReporter(reporter func(domain.Result)) {
	e.reporter = reporter
}

// Execute runs every test in order and returns the outcomes in the same
// order. A returned error means the toolchain itself is unusable; per-test
// compile and runtime failures are recorded as Failed outcomes instead.
func (e *Engine) Execute(tests []domain.Test) ([]domain.Result, time.Duration, error) {
	if len(tests) == 0 {
		if e.progress != nil {
			e.progress.Finish()
		}
		return nil, 0, nil
	}

	scratch, err := initScratch(e.config.GetScratchPath(), e.config.GetManifestPath())
	if err != nil {
		return nil, 0, err
	}

	startTime := time.Now()
	results := make([]domain.Result, 0, len(tests))
	var tally domain.Tally

	for _, test := range tests {
		result, err := e.runOne(scratch, test)
		if err != nil {
			e.cleanup(scratch)
			return results, time.Since(startTime), err
		}

		tally.Add(result.Outcome)
		results = append(results, result)

		if e.reporter != nil {
			e.reporter(result)
		}
		if e.progress != nil {
			e.progress.Update(len(results), tally.Passed, tally.Failed)
		}
	}

	if e.progress != nil {
		e.progress.Finish()
	}
	e.cleanup(scratch)

	return results, time.Since(startTime), nil
}

// cleanup removes the scratch project. Failure to remove it is a warning,
// never a pipeline failure.
func (e *Engine) cleanup(scratch *scratchProject) {
	if err := scratch.remove(); err != nil {
		color.Yellow("Warning: failed to remove scratch project %s: %v", scratch.root, err)
	}
}

func (e *Engine) runOne(scratch *scratchProject, test domain.Test) (domain.Result, error) {
	result := domain.Result{Test: test}

	if test.Ignore {
		result.Outcome = domain.OutcomeIgnored
		return result, nil
	}

	if err := scratch.write(test.Text); err != nil {
		return result, err
	}

	if test.NoRun {
		info, err := e.toolchain.Check(scratch.root)
		if err != nil {
			return result, err
		}
		if info.Success {
			result.Outcome = domain.OutcomePassed
		} else {
			result.Outcome = domain.OutcomeFailed
			result.Stage = domain.StageCompile
			result.Output = info.Combined()
		}
		return result, nil
	}

	info, err := e.toolchain.Run(scratch.root)
	if err != nil {
		return result, err
	}

	if test.ShouldPanic {
		// The sample is supposed to fail at runtime.
		if info.Success {
			result.Outcome = domain.OutcomeFailed
			result.Stage = domain.StagePanicExpectation
			result.Output = info.Combined()
		} else {
			result.Outcome = domain.OutcomePassed
		}
		return result, nil
	}

	if info.Success {
		result.Outcome = domain.OutcomePassed
	} else {
		result.Outcome = domain.OutcomeFailed
		result.Stage = domain.StageRun
		result.Output = info.Combined()
	}
	return result, nil
}
