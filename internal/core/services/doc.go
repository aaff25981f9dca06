// Package services implements the core business logic for Khuvaari.
//
// Services implement the driving ports and depend on the driven ports,
// never on concrete adapters. The timetable service owns the immutable
// snapshot built from the export documents; the watcher triggers
// wholesale rebuilds when an export file changes on disk.
package services
