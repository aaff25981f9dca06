package edupage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectSections(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<h2>10A</h2>
		<p>intro</p>
		<table><tr><td>x</td></tr></table>
		<h2>10B</h2>
		<table><tr><td>a</td></tr></table>
		<table><tr><td>b</td></tr></table>
		<h3>  </h3>
		<h2>Empty</h2>
		<h2>10C</h2>
		<table><tr><td>c</td></tr></table>
	</body></html>`)

	sections := CollectSections(doc)
	require.Len(t, sections, 3)
	assert.Equal(t, "10A", sections[0].Name)
	assert.Len(t, sections[0].Tables, 1)
	assert.Equal(t, "10B", sections[1].Name)
	assert.Len(t, sections[1].Tables, 2, "both week tables belong to one section")
	assert.Equal(t, "10C", sections[2].Name)
}

func TestCollectSections_TablesStopAtNextHeading(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<h2>10A</h2>
		<table><tr><td>mine</td></tr></table>
		<h2>10B</h2>
		<table><tr><td>theirs</td></tr></table>
	</body></html>`)

	sections := CollectSections(doc)
	require.Len(t, sections, 2)
	assert.Len(t, sections[0].Tables, 1)
	assert.Len(t, sections[1].Tables, 1)
}

func TestCollectSections_HeadingWithoutTablesSkipped(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<h1>Timetable 2026</h1>
		<h2>10A</h2>
		<table><tr><td>x</td></tr></table>
	</body></html>`)

	sections := CollectSections(doc)
	require.Len(t, sections, 1)
	assert.Equal(t, "10A", sections[0].Name)
}

func TestCollectSections_DuplicateHeadingLaterWins(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<h2>10A</h2>
		<table><tr><td>old</td></tr></table>
		<h2>10A</h2>
		<table><tr><td>new</td></tr></table>
		<table><tr><td>new2</td></tr></table>
	</body></html>`)

	sections := CollectSections(doc)
	require.Len(t, sections, 1)
	assert.Len(t, sections[0].Tables, 2)
}

func TestCollectSections_NormalisesHeadingText(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<h2>  10A
		 анги </h2>
		<table><tr><td>x</td></tr></table>
	</body></html>`)

	sections := CollectSections(doc)
	require.Len(t, sections, 1)
	assert.Equal(t, "10A анги", sections[0].Name)
}
