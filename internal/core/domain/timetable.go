package domain

import "strings"

// Week selects one of the two alternating weekly schedule variants.
type Week string

const (
	// WeekOdd is the first (A) week variant.
	WeekOdd Week = "odd"
	// WeekEven is the second (B) week variant.
	WeekEven Week = "even"
)

// ParseWeek maps user input to a Week, defaulting to WeekOdd.
func ParseWeek(s string) (Week, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "odd", "1", "a":
		return WeekOdd, true
	case "even", "2", "b":
		return WeekEven, true
	default:
		return WeekOdd, false
	}
}

// DocumentKind identifies which timetable export a Timetable was
// built from.
type DocumentKind string

const (
	// KindClasses is the per-class export (Classes.html).
	KindClasses DocumentKind = "classes"
	// KindTeachers is the per-teacher export (Teachers.html).
	KindTeachers DocumentKind = "teachers"
)

// Timetable is the fully normalised result of parsing one export
// document. It is constructed once and never mutated afterwards;
// concurrent readers need no locking.
type Timetable struct {
	// Kind identifies the source document.
	Kind DocumentKind

	// Days is the shared day axis: canonical days in week order,
	// unrecognised labels retained after them.
	Days []string

	// Periods is the shared period axis, one label per grid row.
	Periods []string

	// Odd and Even map a section name to its matrix of entries,
	// indexed [period][day]. The two matrices of a section always
	// have identical dimensions.
	Odd  map[string][][]Entry
	Even map[string][][]Entry

	// SectionNames lists all sections in sorted order. Lookup keys
	// from the presentation layer are validated against this.
	SectionNames []string

	// Schools and SchoolClasses group class names by the prefix
	// before the first "-" separator. Populated for KindClasses only.
	Schools       []string
	SchoolClasses map[string][]string
}

// HasSection reports whether name is a known section of this document.
func (t *Timetable) HasSection(name string) bool {
	for _, n := range t.SectionNames {
		if n == name {
			return true
		}
	}
	return false
}

// SectionGrid is the per-section view of a Timetable, fitted to the
// document-level axes so that both matrices are exactly
// len(Periods) x len(Days).
type SectionGrid struct {
	Name    string     `json:"name"`
	Days    []string   `json:"days"`
	Periods []string   `json:"periods"`
	Odd     [][]Entry  `json:"odd"`
	Even    [][]Entry  `json:"even"`
}

// Section returns the grid view for one section, or ok=false when the
// name is unknown. The matrices are padded or truncated to the
// document axes; sections whose source produced fewer rows simply show
// empty entries there.
func (t *Timetable) Section(name string) (SectionGrid, bool) {
	if !t.HasSection(name) {
		return SectionGrid{}, false
	}
	rows, cols := len(t.Periods), len(t.Days)
	return SectionGrid{
		Name:    name,
		Days:    t.Days,
		Periods: t.Periods,
		Odd:     FitMatrix(t.Odd[name], rows, cols),
		Even:    FitMatrix(t.Even[name], rows, cols),
	}, true
}

// FitMatrix pads or truncates a matrix of entries to exactly
// rows x cols, filling new positions with empty entries. The source
// export does not guarantee that paired odd/even tables agree on
// their axes, so every matrix is fitted defensively before display.
func FitMatrix(m [][]Entry, rows, cols int) [][]Entry {
	out := make([][]Entry, rows)
	for r := 0; r < rows; r++ {
		row := make([]Entry, cols)
		if r < len(m) {
			copy(row, m[r])
		}
		out[r] = row
	}
	return out
}

// SchoolPrefix returns the school code of a class name: the substring
// before the first "-" separator, or the whole name when there is none.
func SchoolPrefix(className string) string {
	if i := strings.Index(className, "-"); i >= 0 {
		return className[:i]
	}
	return className
}
