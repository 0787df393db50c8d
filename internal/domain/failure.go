package domain

// TestFailure represents one failed doc test, as persisted for the
// fails viewer.
type TestFailure struct {
	TestName    string `json:"test_name"`
	DocPath     string `json:"doc_path"`
	Section     string `json:"section,omitempty"`
	Line        int    `json:"line"`
	Stage       string `json:"stage"`
	Message     string `json:"message,omitempty"`      // First compiler error or panic line
	ProgramLine int    `json:"program_line,omitempty"` // Line inside the generated program
	Output      string `json:"output"`
	Resolved    bool   `json:"resolved,omitempty"` // Track if failure is marked as resolved
}
