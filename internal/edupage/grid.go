package edupage

import "github.com/PuerkitoBio/goquery"

// pendingSpan tracks a cell whose rowspan still occupies a column in
// upcoming rows.
type pendingSpan struct {
	cell      *Cell
	remaining int
}

// ExpandTable flattens a <table> into a grid where every (row, column)
// position holds the cell that logically occupies it. A cell with
// rowspan R and colspan C appears at all R x C covered positions; the
// duplicates alias the same *Cell.
//
// The algorithm keeps a map from column index to the cell still
// hanging down from an earlier row. Columns occupied by such a span
// are filled without consuming a source cell; source cells are then
// placed at every column their colspan covers, registering their
// remaining rowspan per column. A final drain fills columns that are
// covered only by carried-over spans after the row's own cells ran out.
func ExpandTable(table *goquery.Selection) [][]*Cell {
	var grid [][]*Cell
	pending := make(map[int]*pendingSpan)

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var row []*Cell
		col := 0

		// Fills consecutive columns held by vertical spans, advancing
		// the cursor without consuming a source cell.
		drain := func() {
			for {
				span, ok := pending[col]
				if !ok {
					return
				}
				row = append(row, span.cell)
				span.remaining--
				if span.remaining == 0 {
					delete(pending, col)
				}
				col++
			}
		}

		drain()
		tr.Find("td, th").Each(func(_ int, td *goquery.Selection) {
			drain()
			cell := newCell(td)
			rowSpan := cell.RowSpan()
			for i := 0; i < cell.ColSpan(); i++ {
				row = append(row, cell)
				if rowSpan > 1 {
					pending[col] = &pendingSpan{cell: cell, remaining: rowSpan - 1}
				}
				col++
			}
		})
		drain()

		grid = append(grid, row)
	})

	return grid
}
