package driven

import (
	"context"

	"github.com/khangai-labs/khuvaari-cli/internal/core/domain"
)

// SnapshotStore persists normalised timetables so they can be queried
// outside the process. Saving a document replaces any previously
// stored snapshot of the same kind.
type SnapshotStore interface {
	// SaveTimetable stores one normalised document wholesale.
	SaveTimetable(ctx context.Context, t *domain.Timetable) error

	// SectionNames lists the stored section names of one document kind.
	SectionNames(ctx context.Context, kind domain.DocumentKind) ([]string, error)

	// Close releases the underlying resources.
	Close() error
}
