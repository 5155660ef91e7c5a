// Package ports defines the core interfaces for the application.
package ports

import "context"

// Runner executes an external process and captures its standard output,
// which is the artifact (the rendered robot description). Standard error is
// an implementation concern, typically streamed to the logger.
//
// Run blocks until the process exits or the context is cancelled. A missing
// executable or a non-zero exit is an error; no retry is performed.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	Run(ctx context.Context, executable string, args []string) (string, error)
}
