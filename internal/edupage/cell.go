package edupage

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/khangai-labs/khuvaari-cli/internal/core/domain"
)

// Cell wraps one source <td> or <th>. Grid expansion aliases the same
// *Cell across every position its spans cover, so the document is
// read at most once per cell regardless of how many grid positions
// reference it.
type Cell struct {
	sel *goquery.Selection

	lines     []string
	linesRead bool
}

func newCell(sel *goquery.Selection) *Cell {
	return &Cell{sel: sel}
}

// RowSpan returns the declared rowspan, clamped to at least 1.
func (c *Cell) RowSpan() int {
	return spanAttr(c.sel, "rowspan")
}

// ColSpan returns the declared colspan, clamped to at least 1.
func (c *Cell) ColSpan() int {
	return spanAttr(c.sel, "colspan")
}

// spanAttr parses a span attribute. Absent or invalid values default
// to 1; non-positive values are clamped to 1.
func spanAttr(sel *goquery.Selection, name string) int {
	attr, exists := sel.Attr(name)
	if !exists {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(attr))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Lines returns the visible text lines of the cell, depth-first in
// document order, one per text node, whitespace-normalised with empty
// lines dropped. Extraction is lazy and cached because spanned cells
// are visited from several grid positions.
func (c *Cell) Lines() []string {
	if !c.linesRead {
		c.lines = selectionLines(c.sel)
		c.linesRead = true
	}
	return c.lines
}

// Text returns the whole cell content as a single normalised string.
// Used for header and period labels, where internal structure does
// not matter.
func (c *Cell) Text() string {
	var parts []string
	for _, node := range c.sel.Nodes {
		collectText(node, &parts)
	}
	return Normalize(strings.Join(parts, " "))
}

// Entry converts the full cell content into one timetable entry,
// ignoring any week markup. Used in two-table mode where the whole
// table belongs to a single week.
func (c *Cell) Entry() domain.Entry {
	return domain.EntryFromLines(c.Lines())
}

// SplitByWeek splits a cell that may stack two week variants into an
// odd-week and an even-week entry.
//
// Each direct child element is classified odd, even, or unknown from
// its class tokens and data-week attribute; unmarked children without
// text (line-break separators) are skipped, and a cell with no
// candidate children at all counts as one shared entry. Unclassified
// children
// fall through an ordered cascade: exactly two unknowns with nothing
// classified are taken positionally (first odd, second even);
// otherwise the first unknown fills a missing odd and the last a
// missing even. Finally a populated side is copied over an empty one,
// since a cell meant for both weeks shows identical content twice.
func (c *Cell) SplitByWeek() (odd, even domain.Entry) {
	var oddEls, evenEls, unknown []*goquery.Selection

	c.sel.Children().Each(func(_ int, child *goquery.Selection) {
		week, ok := weekFromClass(child.AttrOr("class", ""))
		if !ok {
			week, ok = weekFromAttr(child)
		}
		// Unmarked elements with no text of their own, such as the
		// <br> separators inside a plain cell, are not week
		// candidates.
		if !ok && len(selectionLines(child)) == 0 {
			return
		}
		switch {
		case ok && week == domain.WeekOdd:
			oddEls = append(oddEls, child)
		case ok && week == domain.WeekEven:
			evenEls = append(evenEls, child)
		default:
			unknown = append(unknown, child)
		}
	})
	if len(oddEls) == 0 && len(evenEls) == 0 && len(unknown) == 0 {
		// No candidate children at all: the whole cell is one entry
		// shared by both weeks.
		unknown = append(unknown, c.sel)
	}

	if len(oddEls) == 0 && len(evenEls) == 0 && len(unknown) == 2 {
		oddEls = unknown[:1]
		evenEls = unknown[1:]
		unknown = nil
	}
	if len(oddEls) == 0 && len(unknown) > 0 {
		oddEls = append(oddEls, unknown[0])
	}
	if len(evenEls) == 0 && len(unknown) > 0 {
		evenEls = append(evenEls, unknown[len(unknown)-1])
	}
	if len(oddEls) > 0 && len(evenEls) == 0 {
		evenEls = oddEls
	}
	if len(evenEls) > 0 && len(oddEls) == 0 {
		oddEls = evenEls
	}

	return domain.EntryFromLines(elementLines(oddEls)), domain.EntryFromLines(elementLines(evenEls))
}

// weekFromClass classifies an element by its class tokens.
func weekFromClass(classAttr string) (domain.Week, bool) {
	for _, token := range strings.Fields(classAttr) {
		lower := strings.ToLower(token)
		switch {
		case strings.Contains(lower, "odd"), strings.Contains(lower, "week1"), strings.Contains(lower, "aweek"):
			return domain.WeekOdd, true
		case strings.Contains(lower, "even"), strings.Contains(lower, "week2"), strings.Contains(lower, "bweek"):
			return domain.WeekEven, true
		}
	}
	return "", false
}

// weekFromAttr classifies an element by its data-week attribute.
func weekFromAttr(sel *goquery.Selection) (domain.Week, bool) {
	attr, exists := sel.Attr("data-week")
	if !exists {
		return "", false
	}
	value := strings.ToLower(attr)
	switch {
	case strings.Contains(value, "odd"), strings.HasSuffix(value, "1"):
		return domain.WeekOdd, true
	case strings.Contains(value, "even"), strings.HasSuffix(value, "2"):
		return domain.WeekEven, true
	}
	return "", false
}

// elementLines concatenates the text lines of several elements in
// document order.
func elementLines(els []*goquery.Selection) []string {
	var lines []string
	for _, el := range els {
		lines = append(lines, selectionLines(el)...)
	}
	return lines
}

// selectionLines extracts normalised non-empty text lines from a
// selection, depth-first.
func selectionLines(sel *goquery.Selection) []string {
	var lines []string
	for _, node := range sel.Nodes {
		collectLines(node, &lines)
	}
	return lines
}

func collectLines(n *html.Node, lines *[]string) {
	if n.Type == html.TextNode {
		if line := Normalize(n.Data); line != "" {
			*lines = append(*lines, line)
		}
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectLines(child, lines)
	}
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		*parts = append(*parts, n.Data)
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, parts)
	}
}
