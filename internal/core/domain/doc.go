// Package domain defines the core business entities for Khuvaari.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Entry: One normalised timetable slot for one week variant
//   - Timetable: The normalised grids of one exported document
//   - SectionGrid: The per-class or per-teacher view of a Timetable
//   - Week: The odd/even alternating week variant
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
