package tui

import (
	"github.com/khangai-labs/khuvaari-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
type Ports struct {
	// Timetable provides snapshot lookups.
	Timetable driving.TimetableService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Timetable == nil {
		return ErrMissingTimetableService
	}
	return nil
}
