package edupage

import (
	"sort"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"github.com/khangai-labs/khuvaari-cli/internal/core/domain"
)

// ParseTableStructure normalises one timetable <table> into an
// ordered day axis, a period axis, and a matrix of cells indexed
// [period][day].
//
// The first expanded row is the header; its first column is the
// corner cell and is discarded. Each body row contributes a period
// label (reduced to its digit run when one exists, synthesised
// 1-based when empty) and one matrix row. A header made up entirely
// of digit-bearing labels means the table is transposed — rows are
// days, columns are periods — and the axes and matrix are swapped
// back. Day labels are then canonicalised and the columns reordered
// into week order, unrecognised labels trailing in source order.
func ParseTableStructure(table *goquery.Selection) (days, periods []string, matrix [][]*Cell) {
	grid := ExpandTable(table)
	if len(grid) == 0 {
		return nil, nil, nil
	}

	header := grid[0]
	var rawDays []string
	if len(header) > 1 {
		for _, cell := range header[1:] {
			rawDays = append(rawDays, cell.Text())
		}
	}

	for _, row := range grid[1:] {
		if len(row) == 0 {
			continue
		}
		label := row[0].Text()
		if label != "" {
			if digits := digitRun.FindString(label); digits != "" {
				label = digits
			}
		}
		if label == "" {
			label = strconv.Itoa(len(periods) + 1)
		}
		periods = append(periods, label)
		matrix = append(matrix, row[1:])
	}

	if len(rawDays) > 0 && allPeriodLabels(rawDays) {
		matrix = transpose(matrix)
		rawDays, periods = periods, rawDays
	}

	days, matrix = orderDayAxis(rawDays, matrix)
	return days, periods, matrix
}

func allPeriodLabels(labels []string) bool {
	for _, label := range labels {
		if !LooksLikePeriod(label) {
			return false
		}
	}
	return true
}

// transpose swaps rows and columns, truncating to the shortest row so
// every output row has equal length.
func transpose(matrix [][]*Cell) [][]*Cell {
	if len(matrix) == 0 {
		return nil
	}
	width := len(matrix[0])
	for _, row := range matrix[1:] {
		if len(row) < width {
			width = len(row)
		}
	}
	out := make([][]*Cell, width)
	for c := 0; c < width; c++ {
		out[c] = make([]*Cell, len(matrix))
		for r := range matrix {
			out[c][r] = matrix[r][c]
		}
	}
	return out
}

// dayColumn pairs a day label with its source column index.
type dayColumn struct {
	idx   int
	label string
}

// orderDayAxis canonicalises the raw header labels and reorders the
// matrix columns into canonical week order. Columns whose label
// normalises to empty are dropped; unrecognised labels are kept and
// sorted after all recognised days in their original left-to-right
// order. A header with no usable label at all falls back to the raw
// labels in source order, so an all-unknown header never collapses
// the axis.
func orderDayAxis(rawDays []string, matrix [][]*Cell) ([]string, [][]*Cell) {
	var cols []dayColumn
	for idx, label := range rawDays {
		if label == "" {
			continue
		}
		day, _ := domain.CanonicalDay(label)
		cols = append(cols, dayColumn{idx: idx, label: day})
	}

	sort.SliceStable(cols, func(i, j int) bool {
		return daySortKey(cols[i]) < daySortKey(cols[j])
	})

	if len(cols) == 0 {
		for idx, label := range rawDays {
			cols = append(cols, dayColumn{idx: idx, label: label})
		}
	}

	days := make([]string, 0, len(cols))
	for _, col := range cols {
		days = append(days, col.label)
	}

	ordered := make([][]*Cell, 0, len(matrix))
	for _, row := range matrix {
		orderedRow := make([]*Cell, 0, len(cols))
		for _, col := range cols {
			if col.idx < len(row) {
				orderedRow = append(orderedRow, row[col.idx])
			}
		}
		ordered = append(ordered, orderedRow)
	}

	return days, ordered
}

// daySortKey places recognised days at their canonical position and
// everything else after the whole week, keyed by source column.
func daySortKey(col dayColumn) int {
	if i := domain.DayIndex(col.label); i >= 0 {
		return i
	}
	return len(domain.DayOrder) + col.idx
}
