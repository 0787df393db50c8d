package domain

import "time"

// Stages at which a test can fail.
const (
	StageCompile          = "compile"
	StageRun              = "run"
	StagePanicExpectation = "panic-expectation"
)

// Result represents the outcome of executing one extracted test.
type Result struct {
	Test    Test
	Outcome Outcome
	Stage   string // "compile", "run" or "panic-expectation" for failures
	Output  string // Captured build/run output, diagnostics only
}

// RunMeta contains metadata about one doc-test run.
type RunMeta struct {
	TotalTests      int     `json:"total_tests"`
	PassedTests     int     `json:"passed_tests"`
	FailedTests     int     `json:"failed_tests"`
	IgnoredTests    int     `json:"ignored_tests"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted structure for one run.
type RunOutput struct {
	Meta    RunMeta       `json:"meta"`
	Details []TestFailure `json:"details"`
}

// NewRunMeta builds run metadata from a tally and elapsed time.
func NewRunMeta(tally Tally, duration time.Duration) RunMeta {
	return RunMeta{
		TotalTests:      tally.Total(),
		PassedTests:     tally.Passed,
		FailedTests:     tally.Failed,
		IgnoredTests:    tally.Ignored,
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}
}
