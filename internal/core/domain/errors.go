package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested class or teacher does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDocumentMissing indicates an expected timetable export file is
	// absent on disk. This is fatal at startup: no data may be served
	// from a document that failed to load.
	ErrDocumentMissing = errors.New("timetable document missing")

	// ErrNotLoaded indicates the timetable snapshot has not been built yet.
	ErrNotLoaded = errors.New("timetable not loaded")

	// ErrUnsupportedKind indicates an unknown document kind.
	ErrUnsupportedKind = errors.New("unsupported document kind")
)
