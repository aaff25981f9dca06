package mcp

import (
	"context"

	"github.com/khangai-labs/khuvaari-cli/internal/core/domain"
)

// mockTimetableService is a configurable fake for tool and resource tests.
type mockTimetableService struct {
	classes  map[string]domain.SectionGrid
	teachers map[string]domain.SectionGrid
	schools  []string
	bySchool   map[string][]string
	err      error
}

func (m *mockTimetableService) Reload(context.Context) error { return nil }

func (m *mockTimetableService) Class(name string) (domain.SectionGrid, error) {
	if m.err != nil {
		return domain.SectionGrid{}, m.err
	}
	if grid, ok := m.classes[name]; ok {
		return grid, nil
	}
	return domain.SectionGrid{}, domain.ErrNotFound
}

func (m *mockTimetableService) Teacher(name string) (domain.SectionGrid, error) {
	if m.err != nil {
		return domain.SectionGrid{}, m.err
	}
	if grid, ok := m.teachers[name]; ok {
		return grid, nil
	}
	return domain.SectionGrid{}, domain.ErrNotFound
}

func (m *mockTimetableService) ClassNames() []string {
	names := make([]string, 0, len(m.classes))
	for name := range m.classes {
		names = append(names, name)
	}
	return names
}

func (m *mockTimetableService) TeacherNames() []string {
	names := make([]string, 0, len(m.teachers))
	for name := range m.teachers {
		names = append(names, name)
	}
	return names
}

func (m *mockTimetableService) Schools() []string { return m.schools }

func (m *mockTimetableService) SchoolClasses(school string) []string {
	return m.bySchool[school]
}

func (m *mockTimetableService) Days() []string    { return nil }
func (m *mockTimetableService) Periods() []string { return nil }

func (m *mockTimetableService) Timetable(domain.DocumentKind) (*domain.Timetable, error) {
	return nil, domain.ErrNotLoaded
}
