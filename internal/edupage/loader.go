package edupage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/PuerkitoBio/goquery"

	"github.com/khangai-labs/khuvaari-cli/internal/core/domain"
	"github.com/khangai-labs/khuvaari-cli/internal/core/ports/driven"
	"github.com/khangai-labs/khuvaari-cli/internal/logger"
)

// Default export file names, as EduPage publishes them.
const (
	DefaultClassesFile  = "Classes.html"
	DefaultTeachersFile = "Teachers.html"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Loader reads the static export documents from a data directory and
// normalises them into timetables.
type Loader struct {
	classesPath  string
	teachersPath string
}

// NewLoader creates a loader over dataDir. Empty file names fall back
// to the standard export names.
func NewLoader(dataDir, classesFile, teachersFile string) *Loader {
	if classesFile == "" {
		classesFile = DefaultClassesFile
	}
	if teachersFile == "" {
		teachersFile = DefaultTeachersFile
	}
	return &Loader{
		classesPath:  filepath.Join(dataDir, classesFile),
		teachersPath: filepath.Join(dataDir, teachersFile),
	}
}

// Paths returns the export file paths, classes first.
func (l *Loader) Paths() []string {
	return []string{l.classesPath, l.teachersPath}
}

// LoadClasses parses the per-class export. The resulting timetable
// additionally groups class names by school prefix.
func (l *Loader) LoadClasses(_ context.Context) (*domain.Timetable, error) {
	doc, err := l.parseFile(l.classesPath)
	if err != nil {
		return nil, err
	}

	t := buildTimetable(doc, domain.KindClasses)

	t.SchoolClasses = make(map[string][]string)
	for _, name := range t.SectionNames {
		school := domain.SchoolPrefix(name)
		t.SchoolClasses[school] = append(t.SchoolClasses[school], name)
	}
	t.Schools = make([]string, 0, len(t.SchoolClasses))
	for school := range t.SchoolClasses {
		t.Schools = append(t.Schools, school)
		sort.Strings(t.SchoolClasses[school])
	}
	sort.Strings(t.Schools)

	return t, nil
}

// LoadTeachers parses the per-teacher export.
func (l *Loader) LoadTeachers(_ context.Context) (*domain.Timetable, error) {
	doc, err := l.parseFile(l.teachersPath)
	if err != nil {
		return nil, err
	}
	return buildTimetable(doc, domain.KindTeachers), nil
}

// parseFile reads and parses one export document. A missing file is
// the fatal load error; nothing is served from a document that failed
// to load.
func (l *Loader) parseFile(path string) (*goquery.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: expected export at %s", domain.ErrDocumentMissing, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// buildTimetable runs the full pipeline over one parsed document.
// Sections are processed in sorted name order; the first non-empty
// day and period axes become the document axes.
func buildTimetable(doc *goquery.Document, kind domain.DocumentKind) *domain.Timetable {
	sections := CollectSections(doc)

	tablesByName := make(map[string][]*goquery.Selection, len(sections))
	names := make([]string, 0, len(sections))
	for _, section := range sections {
		tablesByName[section.Name] = section.Tables
		names = append(names, section.Name)
	}
	sort.Strings(names)

	t := &domain.Timetable{
		Kind:         kind,
		Odd:          make(map[string][][]domain.Entry, len(names)),
		Even:         make(map[string][][]domain.Entry, len(names)),
		SectionNames: names,
	}

	var axis AxisState
	for _, name := range names {
		days, periods, odd, even := BuildWeekMatrices(tablesByName[name], axis.Days())
		axis.AdoptIfEmpty(days)
		if len(t.Periods) == 0 && len(periods) > 0 {
			t.Periods = periods
		}
		t.Odd[name] = odd
		t.Even[name] = even
	}
	t.Days = axis.Days()

	logger.Debug("normalised %d %s sections (%d days, %d periods)",
		len(names), kind, len(t.Days), len(t.Periods))

	return t
}
