package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns the stderr logger. Debug output is enabled by
// --verbose or the config file; otherwise only warnings and errors show.
// Phrases and keys are never logged.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "seedriot",
		Level:  log.WarnLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
