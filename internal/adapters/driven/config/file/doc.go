// Package file provides the TOML-backed configuration for Khuvaari.
// Configuration lives in a single file, ~/.khuvaari/config.toml by
// default, and is read once at startup. Missing files yield the
// defaults rather than an error.
package file
