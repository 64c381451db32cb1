package cli

import (
	"errors"
	"fmt"

	"seedriot/internal/glyph"
	"seedriot/internal/phrase"
	"seedriot/internal/plan"
	"seedriot/internal/ui"
)

// Exit codes.
const (
	ExitFailure = 1 // wordlist, config and I/O problems
	ExitUsage   = 2 // the request itself was wrong
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// classify attaches an exit code to err.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	switch {
	case errors.Is(err, plan.ErrUsage),
		errors.Is(err, phrase.ErrInvalidCount),
		errors.Is(err, glyph.ErrCapacity),
		errors.Is(err, glyph.ErrWeakKey),
		errors.Is(err, ui.ErrNoTerminal):
		return &ExitError{Code: ExitUsage, Err: err}
	default:
		return &ExitError{Code: ExitFailure, Err: err}
	}
}

func usageErrorf(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}
