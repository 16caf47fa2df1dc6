// Package logging builds the diagnostic logger used by the renderer and the CLI.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix labels every diagnostic line.
const Prefix = "podkit"

// New returns a logger writing to w at warn level, or debug level when verbose.
func New(w io.Writer, verbose bool) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  level,
	})
}
