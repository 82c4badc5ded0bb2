// Package filesystem provides the filesystem used by envfill.
//
// Everything is expressed on top of afero.Fs so the engine can run against
// the real OS filesystem in production and an in-memory filesystem in tests.
// WriteFileAtomic implements the write-then-rename strategy used to rewrite
// template files without ever leaving a truncated file behind.
package filesystem
