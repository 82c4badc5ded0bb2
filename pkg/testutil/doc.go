// Package testutil provides utilities for testing envfill components.
//
// Two kinds of fixtures are supported:
//   - real directory trees under t.TempDir(), for tests that exercise the OS
//     filesystem (symlinks, permissions, atomic rename)
//   - in-memory afero filesystems seeded from a map, for everything else
//
// All test data should be defined inline, not in external files.
package testutil
