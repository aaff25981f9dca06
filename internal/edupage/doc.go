// Package edupage normalises EduPage HTML timetable exports into
// queryable grids.
//
// An export document is a flat list of heading elements (one per class
// or teacher), each followed by one or two <table> elements. The
// tables are irregular: cells span rows and columns, the axes may be
// transposed (rows as days or rows as periods), day labels mix
// Mongolian and English in several abbreviations, and a single cell
// may silently stack the two alternating week variants.
//
// The pipeline runs leaf-first:
//
//	CollectSections -> BuildWeekMatrices -> ParseTableStructure
//	                -> ExpandTable -> SplitByWeek
//
// Every in-document irregularity is resolved by a defined fallback and
// never surfaces as an error; the only failure mode is a missing
// export file. Results are immutable once built.
package edupage
