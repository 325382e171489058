package console

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps the spinner functionality with TTY detection
type Spinner struct {
	spinner *spinner.Spinner
	enabled bool
}

// NewSpinner creates a new spinner writing to w with the given message.
// The spinner is disabled when enabled is false or w is not a terminal.
func NewSpinner(w io.Writer, message string, enabled bool) *Spinner {
	s := &Spinner{
		enabled: enabled && IsTerminalWriter(w),
	}

	if s.enabled {
		s.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
		s.spinner.Suffix = " " + message
		_ = s.spinner.Color("cyan") // Ignore error as fallback is fine
	}

	return s
}

// Start begins the spinner animation
func (s *Spinner) Start() {
	if s.enabled {
		s.spinner.Start()
	}
}

// Stop stops the spinner animation
func (s *Spinner) Stop() {
	if s.enabled {
		s.spinner.Stop()
	}
}

// UpdateMessage updates the spinner message
func (s *Spinner) UpdateMessage(message string) {
	if s.enabled {
		s.spinner.Lock()
		s.spinner.Suffix = " " + message
		s.spinner.Unlock()
	}
}

// IsEnabled returns whether the spinner is enabled (i.e., running in a TTY)
func (s *Spinner) IsEnabled() bool {
	return s.enabled
}
