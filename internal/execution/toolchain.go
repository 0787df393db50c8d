package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ExitInfo reports the terminal state of one toolchain invocation.
// Success mirrors the process exit status; the captured streams are
// diagnostics only and never influence pass/fail classification.
type ExitInfo struct {
	Success bool
	Stdout  string
	Stderr  string
}

// Combined returns the captured output as one diagnostic blob.
func (e ExitInfo) Combined() string {
	switch {
	case e.Stdout == "":
		return e.Stderr
	case e.Stderr == "":
		return e.Stdout
	}
	return e.Stdout + "\n" + e.Stderr
}

// Toolchain abstracts the external build/run tool so the engine can be
// exercised against a fake without spawning real processes. A non-nil
// error means the tool itself could not be invoked, which is fatal; a
// failed build or run is reported through ExitInfo.Success instead.
type Toolchain interface {
	// Check verifies the project compiles without running it.
	Check(projectDir string) (ExitInfo, error)
	// Run builds and runs the project.
	Run(projectDir string) (ExitInfo, error)
}

// CargoToolchain shells out to the cargo binary.
type CargoToolchain struct {
	bin string
}

// NewCargoToolchain creates a Toolchain around the given cargo binary.
func NewCargoToolchain(bin string) *CargoToolchain {
	if bin == "" {
		bin = "cargo"
	}
	return &CargoToolchain{bin: bin}
}

// Check runs "cargo check" in the project directory.
func (c *CargoToolchain) Check(projectDir string) (ExitInfo, error) {
	return c.invoke(projectDir, "check")
}

// Run runs "cargo run" in the project directory.
func (c *CargoToolchain) Run(projectDir string) (ExitInfo, error) {
	return c.invoke(projectDir, "run")
}

func (c *CargoToolchain) invoke(projectDir string, args ...string) (ExitInfo, error) {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, c.bin, args...)
	cmd.Dir = projectDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	info := ExitInfo{
		Success: err == nil,
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return info, fmt.Errorf("failed to invoke %s %s: %w", c.bin, strings.Join(args, " "), err)
		}
	}
	return info, nil
}
