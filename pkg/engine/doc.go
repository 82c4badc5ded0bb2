// Package engine runs a substitution over every file a glob selects.
//
// A run has two passes. The validate pass resolves the pattern, reads each
// file, extracts its tokens and checks them against the variable mapping;
// nothing is written during this pass, so a coverage or resolution failure
// leaves every file untouched. The write pass then rewrites the files whose
// content changed, one at a time, in enumeration order.
//
// The environment is an input like any other: Options.Environ is the list of
// KEY=VALUE pairs to draw variables from.
package engine
