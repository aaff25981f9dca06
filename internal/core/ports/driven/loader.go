package driven

import (
	"context"

	"github.com/khangai-labs/khuvaari-cli/internal/core/domain"
)

// DocumentLoader builds normalised timetables from the static export
// documents. A missing document is a fatal error, never a partial
// result; every in-document irregularity is resolved by the loader's
// fallbacks instead of being reported.
type DocumentLoader interface {
	// LoadClasses parses the per-class export.
	LoadClasses(ctx context.Context) (*domain.Timetable, error)

	// LoadTeachers parses the per-teacher export.
	LoadTeachers(ctx context.Context) (*domain.Timetable, error)

	// Paths returns the export file paths the loader reads, for
	// change watching.
	Paths() []string
}
