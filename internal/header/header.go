package header

import (
	"fmt"
	"strings"
	"time"

	"playtally/internal/classify"
	"playtally/internal/textenc"
)

// Sentinel opens a system-owned header block.
const Sentinel = "# STATS:"

const (
	titleLine     = "# STATS: Media Links Summary"
	separatorLine = "#=================================================="
	timeLayout    = "2006-01-02 15:04:05"
)

type stripState int

const (
	stateScanning stripState = iota
	stateSkippingHeader
)

// Strip removes every system-owned header block from content. A block starts
// at a sentinel line and ends at the first blank line (consumed with the
// block) or at end of content. Operates on LF-normalized text.
func Strip(content string) string {
	lines := strings.Split(content, "\n")
	kept := make([]string, 0, len(lines))

	state := stateScanning
	for _, line := range lines {
		switch state {
		case stateScanning:
			if strings.HasPrefix(strings.TrimSpace(line), Sentinel) {
				state = stateSkippingHeader
				continue
			}
			kept = append(kept, line)
		case stateSkippingHeader:
			if strings.TrimSpace(line) == "" {
				state = stateScanning
				continue
			}
		}
	}

	return strings.Join(kept, "\n")
}

// Render produces the header block lines for the given counts and deltas.
// The timestamp renders in its own location with a fixed UTC±HH label.
func Render(counts classify.Counts, delta Delta, now time.Time) []string {
	_, offset := now.Zone()
	label := fmt.Sprintf("UTC%+03d", offset/3600)

	return []string{
		titleLine,
		fmt.Sprintf("# Updated: %s (%s)", now.Format(timeLayout), label),
		fmt.Sprintf("# M3U8: %d (Change: %s)", counts[classify.CategoryM3U8], delta[classify.CategoryM3U8].Format()),
		fmt.Sprintf("# MP4: %d (Change: %s)", counts[classify.CategoryMP4], delta[classify.CategoryMP4].Format()),
		separatorLine,
		"",
	}
}

// Rewrite strips any prior header block and prepends a fresh one. The
// original newline style (CRLF vs LF) is detected from content and applied
// to the whole result. Rewriting twice with the same counts and delta leaves
// the body byte-identical and the header identical modulo timestamp.
func Rewrite(content string, counts classify.Counts, delta Delta, now time.Time) string {
	newline := textenc.Newline(content)

	normalized := content
	if newline == "\r\n" {
		normalized = strings.ReplaceAll(normalized, "\r\n", "\n")
	}

	body := Strip(normalized)
	block := strings.Join(Render(counts, delta, now), "\n")

	result := block + "\n" + body
	if newline == "\r\n" {
		result = strings.ReplaceAll(result, "\n", "\r\n")
	}
	return result
}
