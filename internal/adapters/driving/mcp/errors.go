// Package mcp provides an MCP (Model Context Protocol) server adapter
// for the timetable. It lets AI assistants look up class and teacher
// schedules from the loaded snapshot.
package mcp

import "errors"

// ErrMissingTimetableService is returned when the timetable service is not provided.
var ErrMissingTimetableService = errors.New("mcp: timetable service is required")
