// Package tui provides an interactive terminal browser over the loaded
// timetable: pick a class or teacher from a list and page through the
// odd and even week grids.
package tui

import "errors"

// ErrMissingTimetableService is returned when the timetable service is not provided.
var ErrMissingTimetableService = errors.New("tui: timetable service is required")
