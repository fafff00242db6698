// Package annotate orchestrates a stats run: discover playlists, classify
// their entries, diff against stored snapshots, rewrite headers, and persist
// fresh snapshots.
//
// Files are processed independently; any per-file failure is recorded in the
// run report and never aborts the remaining files. A flock on the stats
// directory keeps two runs from racing over the same snapshot store, and
// every run carries a UUID that tags its log lines and report.
package annotate
