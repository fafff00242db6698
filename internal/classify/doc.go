// Package classify partitions playlist entry lines into media categories.
//
// Classification is a pure function of file content: blank lines and comment
// lines are skipped, and every remaining line is tested against an ordered
// matcher list where the first match wins. Lines matching no pattern fall
// into the catch-all category. The package also collects a bounded number of
// sample links per category for snapshot records.
package classify
