// Package dirstat provides directory statistics collection.
//
// It walks a directory tree with fastwalk, bounded by depth and filtered by
// hidden-entry and exclusion-glob rules, and aggregates file counts and sizes
// per extension. It also records the most recently modified file and the
// subdirectories found at the depth cutoff.
package dirstat
