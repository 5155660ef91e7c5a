// Package xacro provides the external-process runner adapter.
package xacro

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/tiago/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner using os/exec. Standard output is captured
// and returned as the artifact; standard error is streamed line by line to
// the logger.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the program and returns its captured standard output. The
// executable is looked up on PATH; a missing executable, a non-zero exit, or
// context cancellation fail the call. There is no retry.
func (r *Runner) Run(ctx context.Context, executable string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // invocation is rendered from declared arguments

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &logWriter{logger: r.logger}

	if err := cmd.Run(); err != nil {
		exitCode := -1 // unknown or signal
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return "", zerr.With(zerr.With(
			zerr.Wrap(err, "templating command failed"),
			"executable", executable),
			"exit_code", exitCode)
	}

	return stdout.String(), nil
}

// logWriter forwards process stderr to the logger as warnings, one line per
// message. xacro prints its deprecation and include diagnostics there.
type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	for _, line := range strings.Split(msg, "\n") {
		if line != "" {
			w.logger.Warn(line)
		}
	}
	return len(p), nil
}
