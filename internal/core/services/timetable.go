package services

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/khangai-labs/khuvaari-cli/internal/core/domain"
	"github.com/khangai-labs/khuvaari-cli/internal/core/ports/driven"
	"github.com/khangai-labs/khuvaari-cli/internal/core/ports/driving"
	"github.com/khangai-labs/khuvaari-cli/internal/logger"
)

// Ensure TimetableService implements the interface.
var _ driving.TimetableService = (*TimetableService)(nil)

// snapshot is one immutable parse of both export documents. The
// shared axes are the first non-empty ones across the two documents,
// classes first.
type snapshot struct {
	classes  *domain.Timetable
	teachers *domain.Timetable
	days     []string
	periods  []string
}

// TimetableService serves the normalised timetables. Reload builds a
// fresh snapshot and swaps it atomically, so readers never observe a
// partially loaded state.
type TimetableService struct {
	loader driven.DocumentLoader
	snap   atomic.Pointer[snapshot]
}

// NewTimetableService creates the service. Call Reload before serving.
func NewTimetableService(loader driven.DocumentLoader) *TimetableService {
	return &TimetableService{loader: loader}
}

// Reload parses both documents and replaces the snapshot wholesale.
// A failure leaves the previous snapshot (if any) in place and serves
// nothing new.
func (s *TimetableService) Reload(ctx context.Context) error {
	classes, err := s.loader.LoadClasses(ctx)
	if err != nil {
		return fmt.Errorf("loading classes: %w", err)
	}
	teachers, err := s.loader.LoadTeachers(ctx)
	if err != nil {
		return fmt.Errorf("loading teachers: %w", err)
	}

	next := &snapshot{classes: classes, teachers: teachers}
	next.days = firstNonEmpty(classes.Days, teachers.Days)
	next.periods = firstNonEmpty(classes.Periods, teachers.Periods)

	s.snap.Store(next)
	logger.Info("timetable snapshot ready: %d classes, %d teachers",
		len(classes.SectionNames), len(teachers.SectionNames))
	return nil
}

func firstNonEmpty(a, b []string) []string {
	if len(a) > 0 {
		return a
	}
	return b
}

func (s *TimetableService) current() (*snapshot, error) {
	snap := s.snap.Load()
	if snap == nil {
		return nil, domain.ErrNotLoaded
	}
	return snap, nil
}

// Class returns one class grid fitted to the shared axes.
func (s *TimetableService) Class(name string) (domain.SectionGrid, error) {
	snap, err := s.current()
	if err != nil {
		return domain.SectionGrid{}, err
	}
	return sectionGrid(snap, snap.classes, name)
}

// Teacher returns one teacher grid fitted to the shared axes.
func (s *TimetableService) Teacher(name string) (domain.SectionGrid, error) {
	snap, err := s.current()
	if err != nil {
		return domain.SectionGrid{}, err
	}
	return sectionGrid(snap, snap.teachers, name)
}

// sectionGrid builds the view of one section over the snapshot-wide
// axes rather than the per-document ones, so class and teacher pages
// always line up.
func sectionGrid(snap *snapshot, t *domain.Timetable, name string) (domain.SectionGrid, error) {
	if !t.HasSection(name) {
		return domain.SectionGrid{}, fmt.Errorf("%w: %s %q", domain.ErrNotFound, t.Kind, name)
	}
	rows, cols := len(snap.periods), len(snap.days)
	return domain.SectionGrid{
		Name:    name,
		Days:    snap.days,
		Periods: snap.periods,
		Odd:     domain.FitMatrix(t.Odd[name], rows, cols),
		Even:    domain.FitMatrix(t.Even[name], rows, cols),
	}, nil
}

// ClassNames lists all class names in sorted order.
func (s *TimetableService) ClassNames() []string {
	if snap := s.snap.Load(); snap != nil {
		return snap.classes.SectionNames
	}
	return nil
}

// TeacherNames lists all teacher names in sorted order.
func (s *TimetableService) TeacherNames() []string {
	if snap := s.snap.Load(); snap != nil {
		return snap.teachers.SectionNames
	}
	return nil
}

// Schools lists the school prefixes derived from class names.
func (s *TimetableService) Schools() []string {
	if snap := s.snap.Load(); snap != nil {
		return snap.classes.Schools
	}
	return nil
}

// SchoolClasses lists the classes of one school.
func (s *TimetableService) SchoolClasses(school string) []string {
	if snap := s.snap.Load(); snap != nil {
		return snap.classes.SchoolClasses[school]
	}
	return nil
}

// Days returns the shared day axis.
func (s *TimetableService) Days() []string {
	if snap := s.snap.Load(); snap != nil {
		return snap.days
	}
	return nil
}

// Periods returns the shared period axis.
func (s *TimetableService) Periods() []string {
	if snap := s.snap.Load(); snap != nil {
		return snap.periods
	}
	return nil
}

// Timetable returns the full normalised document of one kind.
func (s *TimetableService) Timetable(kind domain.DocumentKind) (*domain.Timetable, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	switch kind {
	case domain.KindClasses:
		return snap.classes, nil
	case domain.KindTeachers:
		return snap.teachers, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedKind, kind)
	}
}
