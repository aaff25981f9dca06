// Package sqlite persists normalised timetables to a SQLite database
// so they can be queried outside the process (reporting, spreadsheets,
// ad-hoc SQL). One row is written per non-empty entry per week; saving
// a document replaces the previous snapshot of the same kind.
package sqlite
