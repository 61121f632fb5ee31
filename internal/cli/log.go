// Package cli implements the buycraft command-line interface.
//
// The commands read from the Buycraft v3 API through
// [github.com/shininet/buycraft/pkg/integrations/buycraft]. The CLI is built
// using cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - info, packages, payments, commands, checker: show one data category
//   - raw: print a category as JSON
//   - refresh: fetch every category and report item counts
//   - link: build a checkout link, with an interactive package picker
//   - completion: generate shell completions
//
// # Configuration
//
// The secret key and connection settings are read from
// $XDG_CONFIG_HOME/buycraft/config.toml, then BUYCRAFT_* environment
// variables, then flags.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes one line per API request.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Refreshed 5 categories (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
