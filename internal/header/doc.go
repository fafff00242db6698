// Package header owns the generated stats block at the top of playlist files.
//
// Any contiguous comment block opened by the "# STATS:" sentinel is treated
// as system property and replaced wholesale on every run; the rest of the
// file belongs to its author and is never touched. Removal runs as a small
// two-state machine so malformed or partially migrated blocks cannot leak
// stale lines into the body. Deltas against the previous snapshot render
// with an explicit sign, and a missing snapshot renders uniformly as "N/A".
package header
