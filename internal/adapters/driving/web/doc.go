// Package web serves the timetable over HTTP: server-rendered HTML
// pages for browsing by school, class and teacher, plus a small JSON
// API. All handlers read from the immutable snapshot and hold no
// state of their own.
package web
