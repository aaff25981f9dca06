package edupage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTable_NoSpans(t *testing.T) {
	table := tableFrom(t, `<table>
		<tr><td>a</td><td>b</td></tr>
		<tr><td>c</td><td>d</td></tr>
	</table>`)

	grid := ExpandTable(table)
	require.Len(t, grid, 2)
	require.Len(t, grid[0], 2)
	require.Len(t, grid[1], 2)
	assert.Equal(t, "a", grid[0][0].Text())
	assert.Equal(t, "b", grid[0][1].Text())
	assert.Equal(t, "c", grid[1][0].Text())
	assert.Equal(t, "d", grid[1][1].Text())
}

func TestExpandTable_RowSpan(t *testing.T) {
	table := tableFrom(t, `<table>
		<tr><td>a</td><td rowspan="2">b</td><td>c</td></tr>
		<tr><td>d</td><td>e</td></tr>
	</table>`)

	grid := ExpandTable(table)
	require.Len(t, grid, 2)
	require.Len(t, grid[0], 3)
	require.Len(t, grid[1], 3)
	assert.Equal(t, "d", grid[1][0].Text())
	assert.Same(t, grid[0][1], grid[1][1], "spanned cell is aliased, not copied")
	assert.Equal(t, "e", grid[1][2].Text())
}

func TestExpandTable_ColSpan(t *testing.T) {
	table := tableFrom(t, `<table>
		<tr><td colspan="2">a</td><td>b</td></tr>
	</table>`)

	grid := ExpandTable(table)
	require.Len(t, grid, 1)
	require.Len(t, grid[0], 3)
	assert.Same(t, grid[0][0], grid[0][1])
	assert.Equal(t, "b", grid[0][2].Text())
}

func TestExpandTable_BlockSpan(t *testing.T) {
	// rowspan 2 x colspan 2 at (0,0) covers four positions.
	table := tableFrom(t, `<table>
		<tr><td rowspan="2" colspan="2">x</td><td>y</td></tr>
		<tr><td>z</td></tr>
	</table>`)

	grid := ExpandTable(table)
	require.Len(t, grid, 2)
	require.Len(t, grid[0], 3)
	require.Len(t, grid[1], 3)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			assert.Same(t, grid[0][0], grid[r][c], "position (%d,%d)", r, c)
		}
	}
	assert.Equal(t, "y", grid[0][2].Text())
	assert.Equal(t, "z", grid[1][2].Text())
}

func TestExpandTable_TrailingSpanFill(t *testing.T) {
	// The second row has no source cell for the last column; the
	// carried-over span must still fill it.
	table := tableFrom(t, `<table>
		<tr><td>a</td><td rowspan="2">b</td></tr>
		<tr><td>c</td></tr>
	</table>`)

	grid := ExpandTable(table)
	require.Len(t, grid, 2)
	require.Len(t, grid[1], 2)
	assert.Equal(t, "c", grid[1][0].Text())
	assert.Same(t, grid[0][1], grid[1][1])
}

func TestExpandTable_InvalidSpansClamped(t *testing.T) {
	table := tableFrom(t, `<table>
		<tr><td rowspan="0">a</td><td colspan="x">b</td><td rowspan="-2">c</td></tr>
		<tr><td>d</td><td>e</td><td>f</td></tr>
	</table>`)

	grid := ExpandTable(table)
	require.Len(t, grid, 2)
	assert.Len(t, grid[0], 3)
	assert.Len(t, grid[1], 3)
	assert.Equal(t, "d", grid[1][0].Text())
}

func TestExpandTable_Empty(t *testing.T) {
	table := tableFrom(t, `<table></table>`)
	assert.Empty(t, ExpandTable(table))
}
