package edupage

import (
	"slices"

	"github.com/PuerkitoBio/goquery"

	"github.com/khangai-labs/khuvaari-cli/internal/core/domain"
)

// AxisState accumulates the shared day axis across the sections of a
// document. The first non-empty axis observed wins and is reused for
// every later section.
type AxisState struct {
	days []string
}

// Days returns the adopted axis, or nil when none has been seen yet.
func (a *AxisState) Days() []string {
	return a.days
}

// AdoptIfEmpty stores the given axis only when no axis has been
// adopted yet and the candidate is non-empty.
func (a *AxisState) AdoptIfEmpty(days []string) {
	if len(a.days) == 0 && len(days) > 0 {
		a.days = slices.Clone(days)
	}
}

// BuildWeekMatrices turns the tables of one section into odd-week and
// even-week entry matrices plus the section's axes.
//
// Two or more tables mean the section publishes one table per week:
// the first is odd, the second even, and any further tables are
// ignored. An already established globalDays axis takes precedence
// over the freshly parsed one. When the two tables disagree on an
// axis, an empty value is backfilled from the second table but a
// non-empty one is never merged.
//
// Exactly one table means both weeks share it, with the week
// distinction embedded per cell (see Cell.SplitByWeek). No table
// yields an empty grid on the inherited axis.
//
// Both matrices are fitted to len(periods) x len(days) before being
// returned, so paired tables that desynchronised their axes cannot
// produce ragged results.
func BuildWeekMatrices(tables []*goquery.Selection, globalDays []string) (days, periods []string, odd, even [][]domain.Entry) {
	switch {
	case len(tables) >= 2:
		firstDays, firstPeriods, firstCells := ParseTableStructure(tables[0])
		secondDays, secondPeriods, secondCells := ParseTableStructure(tables[1])

		days = firstDays
		if len(globalDays) > 0 {
			days = globalDays
		}
		periods = firstPeriods
		odd = entriesMatrix(firstCells)
		even = entriesMatrix(secondCells)

		if !slices.Equal(days, secondDays) || !slices.Equal(periods, secondPeriods) {
			if len(days) == 0 {
				days = secondDays
			}
			if len(periods) == 0 {
				periods = secondPeriods
			}
		}

	case len(tables) == 1:
		var cells [][]*Cell
		days, periods, cells = ParseTableStructure(tables[0])
		for _, row := range cells {
			oddRow := make([]domain.Entry, 0, len(row))
			evenRow := make([]domain.Entry, 0, len(row))
			for _, cell := range row {
				oddEntry, evenEntry := cell.SplitByWeek()
				oddRow = append(oddRow, oddEntry)
				evenRow = append(evenRow, evenEntry)
			}
			odd = append(odd, oddRow)
			even = append(even, evenRow)
		}

	default:
		days = globalDays
	}

	odd = domain.FitMatrix(odd, len(periods), len(days))
	even = domain.FitMatrix(even, len(periods), len(days))
	return days, periods, odd, even
}

// entriesMatrix converts a cell matrix into entries wholesale, used in
// two-table mode where every cell belongs to a single week.
func entriesMatrix(cells [][]*Cell) [][]domain.Entry {
	matrix := make([][]domain.Entry, 0, len(cells))
	for _, row := range cells {
		entries := make([]domain.Entry, 0, len(row))
		for _, cell := range row {
			entries = append(entries, cell.Entry())
		}
		matrix = append(matrix, entries)
	}
	return matrix
}
