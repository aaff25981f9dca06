package edupage

import "github.com/PuerkitoBio/goquery"

// Section is one named block of the export document: a heading (class
// or teacher name) plus the tables between it and the next heading.
type Section struct {
	Name   string
	Tables []*goquery.Selection
}

const headingSelector = "h1, h2, h3, h4"

// CollectSections slices the document into named sections. Headings
// with an empty title or with no table before the next heading are
// skipped. When the same title appears twice, the later occurrence
// wins, matching how the export overwrites re-published sections.
func CollectSections(doc *goquery.Document) []Section {
	var sections []Section
	index := make(map[string]int)

	doc.Find(headingSelector).Each(func(_ int, heading *goquery.Selection) {
		title := Normalize(heading.Text())
		if title == "" {
			return
		}

		var tables []*goquery.Selection
		heading.NextUntil(headingSelector).Each(func(_ int, sibling *goquery.Selection) {
			if sibling.Is("table") {
				tables = append(tables, sibling)
			}
		})
		if len(tables) == 0 {
			return
		}

		if i, seen := index[title]; seen {
			sections[i].Tables = tables
			return
		}
		index[title] = len(sections)
		sections = append(sections, Section{Name: title, Tables: tables})
	})

	return sections
}
