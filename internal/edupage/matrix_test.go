package edupage

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionTables(t *testing.T, body string) []*goquery.Selection {
	t.Helper()
	doc := docFrom(t, "<html><body><h2>X</h2>"+body+"</body></html>")
	sections := CollectSections(doc)
	require.Len(t, sections, 1)
	return sections[0].Tables
}

const weekTableA = `<table>
	<tr><th></th><th>Mon</th><th>Tue</th></tr>
	<tr><td>1</td><td>Math</td><td>Bio</td></tr>
</table>`

const weekTableB = `<table>
	<tr><th></th><th>Mon</th><th>Tue</th></tr>
	<tr><td>1</td><td>Chem</td><td>Phy</td></tr>
</table>`

func TestBuildWeekMatrices_TwoTableMode(t *testing.T) {
	tables := sectionTables(t, weekTableA+weekTableB)

	days, periods, odd, even := BuildWeekMatrices(tables, nil)
	assert.Equal(t, []string{"Даваа", "Мягмар"}, days)
	assert.Equal(t, []string{"1"}, periods)
	require.Len(t, odd, 1)
	require.Len(t, even, 1)
	assert.Equal(t, "Math", odd[0][0].Subject)
	assert.Equal(t, "Chem", even[0][0].Subject, "second table is the even week")
}

func TestBuildWeekMatrices_GlobalDaysWin(t *testing.T) {
	tables := sectionTables(t, weekTableA+weekTableB)
	global := []string{"Даваа", "Мягмар", "Лхагва"}

	days, _, odd, even := BuildWeekMatrices(tables, global)
	assert.Equal(t, global, days)
	require.Len(t, odd[0], 3, "matrices are fitted to the adopted axis")
	require.Len(t, even[0], 3)
	assert.True(t, odd[0][2].IsEmpty())
}

func TestBuildWeekMatrices_MismatchedSecondTableNeverMerges(t *testing.T) {
	second := `<table>
		<tr><th></th><th>Wed</th></tr>
		<tr><td>1</td><td>Chem</td></tr>
		<tr><td>2</td><td>Art</td></tr>
	</table>`
	tables := sectionTables(t, weekTableA+second)

	days, periods, odd, even := BuildWeekMatrices(tables, nil)
	assert.Equal(t, []string{"Даваа", "Мягмар"}, days, "the odd table's day axis wins")
	assert.Equal(t, []string{"1"}, periods, "first non-empty period axis wins")
	require.Len(t, odd, 1)
	require.Len(t, even, 1, "even matrix is fitted to the shared dimensions")
	assert.Equal(t, "Chem", even[0][0].Subject)
}

func TestBuildWeekMatrices_SingleTableSplitsCells(t *testing.T) {
	single := `<table>
		<tr><th></th><th>Mon</th></tr>
		<tr><td>1</td><td><div class="odd">Math</div><div class="even">Bio</div></td></tr>
		<tr><td>2</td><td>Chem</td></tr>
	</table>`
	tables := sectionTables(t, single)

	days, periods, odd, even := BuildWeekMatrices(tables, nil)
	assert.Equal(t, []string{"Даваа"}, days)
	assert.Equal(t, []string{"1", "2"}, periods)
	assert.Equal(t, "Math", odd[0][0].Subject)
	assert.Equal(t, "Bio", even[0][0].Subject)
	assert.Equal(t, odd[1][0], even[1][0], "unmarked cell covers both weeks")
}

func TestBuildWeekMatrices_NoTables(t *testing.T) {
	global := []string{"Даваа", "Мягмар"}
	days, periods, odd, even := BuildWeekMatrices(nil, global)
	assert.Equal(t, global, days, "empty section inherits the shared axis")
	assert.Empty(t, periods)
	assert.Empty(t, odd)
	assert.Empty(t, even)
}

func TestBuildWeekMatrices_DimensionsAlwaysAgree(t *testing.T) {
	tables := sectionTables(t, weekTableA+weekTableB)
	days, periods, odd, even := BuildWeekMatrices(tables, nil)

	require.Len(t, odd, len(periods))
	require.Len(t, even, len(periods))
	for i := range odd {
		assert.Len(t, odd[i], len(days))
		assert.Len(t, even[i], len(days))
	}
}

func TestAxisState(t *testing.T) {
	var axis AxisState
	assert.Nil(t, axis.Days())

	axis.AdoptIfEmpty(nil)
	assert.Nil(t, axis.Days())

	first := []string{"Даваа"}
	axis.AdoptIfEmpty(first)
	assert.Equal(t, first, axis.Days())

	axis.AdoptIfEmpty([]string{"Мягмар"})
	assert.Equal(t, first, axis.Days(), "first non-empty axis wins")
}
