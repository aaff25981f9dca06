package driving

import (
	"context"

	"github.com/khangai-labs/khuvaari-cli/internal/core/domain"
)

// TimetableService is the read API over the loaded timetable snapshot.
// All getters are safe for concurrent use: the snapshot is immutable
// and Reload swaps it atomically.
type TimetableService interface {
	// Reload parses both export documents and replaces the snapshot
	// wholesale. Called once at startup and again on file changes.
	Reload(ctx context.Context) error

	// Class returns one class grid fitted to the shared axes.
	// Unknown names yield domain.ErrNotFound.
	Class(name string) (domain.SectionGrid, error)

	// Teacher returns one teacher grid fitted to the shared axes.
	// Unknown names yield domain.ErrNotFound.
	Teacher(name string) (domain.SectionGrid, error)

	// ClassNames lists all class names in sorted order.
	ClassNames() []string

	// TeacherNames lists all teacher names in sorted order.
	TeacherNames() []string

	// Schools lists the school prefixes derived from class names.
	Schools() []string

	// SchoolClasses lists the classes of one school, sorted.
	SchoolClasses(school string) []string

	// Days returns the shared day axis.
	Days() []string

	// Periods returns the shared period axis.
	Periods() []string

	// Timetable returns the full normalised document of one kind,
	// for bulk consumers such as the snapshot store.
	Timetable(kind domain.DocumentKind) (*domain.Timetable, error)
}
