package domain

// Outcome classifies a completed or skipped test.
type Outcome int

const (
	OutcomePassed Outcome = iota
	OutcomeFailed
	OutcomeIgnored
)

// String returns the lowercase display form used in report lines.
func (o Outcome) String() string {
	switch o {
	case OutcomePassed:
		return "passed"
	case OutcomeFailed:
		return "failed"
	case OutcomeIgnored:
		return "ignored"
	}
	return "unknown"
}

// Tally accumulates outcome counts over one run.
type Tally struct {
	Passed  int
	Failed  int
	Ignored int
}

// Add records one outcome.
func (t *Tally) Add(o Outcome) {
	switch o {
	case OutcomePassed:
		t.Passed++
	case OutcomeFailed:
		t.Failed++
	case OutcomeIgnored:
		t.Ignored++
	}
}

// Total returns the number of recorded outcomes.
func (t *Tally) Total() int {
	return t.Passed + t.Failed + t.Ignored
}
