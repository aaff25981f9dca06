package mcp

import (
	"github.com/khangai-labs/khuvaari-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Timetable provides snapshot lookups.
	Timetable driving.TimetableService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Timetable == nil {
		return ErrMissingTimetableService
	}
	return nil
}
