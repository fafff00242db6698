// Command playtally scans playlist files, classifies their entry lines by
// media type, and rewrites a leading comment block summarizing current
// counts and their change since the previous run.
package main
