package edupage

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func docFrom(t *testing.T, fragment string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	require.NoError(t, err)
	return doc
}

func tableFrom(t *testing.T, tableHTML string) *goquery.Selection {
	t.Helper()
	table := docFrom(t, tableHTML).Find("table").First()
	require.Equal(t, 1, table.Length(), "fixture must contain a table")
	return table
}

func cellFrom(t *testing.T, cellHTML string) *Cell {
	t.Helper()
	td := docFrom(t, "<table><tr>"+cellHTML+"</tr></table>").Find("td").First()
	require.Equal(t, 1, td.Length(), "fixture must contain a td")
	return newCell(td)
}
