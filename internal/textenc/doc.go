// Package textenc decodes playlist bytes through an explicit encoding chain
// and preserves the original newline style across rewrites.
//
// UTF-8 is always attempted first; a configured legacy charset (windows-1252
// by default) is the single fallback. A file that survives neither decode is
// reported with a typed DecodeError so callers can fail that file without
// aborting the run. The Encoding handle returned by Decode re-encodes output
// with the same charset, so legacy files round-trip unchanged.
package textenc
