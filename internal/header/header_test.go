package header_test

import (
	"strings"
	"testing"
	"time"

	"playtally/internal/classify"
	"playtally/internal/header"
)

var testTime = time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)

func counts(m3u8, mp4, other int) classify.Counts {
	return classify.Counts{
		classify.CategoryM3U8:  m3u8,
		classify.CategoryMP4:   mp4,
		classify.CategoryOther: other,
	}
}

func TestComputeDelta(t *testing.T) {
	previous := counts(10, 2, 0)
	current := counts(12, 2, 1)

	delta := header.ComputeDelta(current, previous)
	if got := delta[classify.CategoryM3U8].Format(); got != "+2" {
		t.Fatalf("m3u8 delta = %q, want +2", got)
	}
	if got := delta[classify.CategoryMP4].Format(); got != "0" {
		t.Fatalf("mp4 delta = %q, want 0", got)
	}
}

func TestComputeDeltaNegative(t *testing.T) {
	delta := header.ComputeDelta(counts(3, 0, 0), counts(10, 0, 0))
	if got := delta[classify.CategoryM3U8].Format(); got != "-7" {
		t.Fatalf("m3u8 delta = %q, want -7", got)
	}
}

func TestComputeDeltaWithoutSnapshot(t *testing.T) {
	delta := header.ComputeDelta(counts(5, 1, 0), nil)
	for cat, v := range delta {
		if v.Known {
			t.Fatalf("category %s should be unavailable without a snapshot", cat)
		}
		if v.Format() != header.UnavailableLiteral {
			t.Fatalf("category %s = %q, want %q", cat, v.Format(), header.UnavailableLiteral)
		}
	}
}

func TestComputeDeltaMissingCategory(t *testing.T) {
	previous := classify.Counts{classify.CategoryM3U8: 4}
	delta := header.ComputeDelta(counts(4, 2, 0), previous)
	if got := delta[classify.CategoryM3U8].Format(); got != "0" {
		t.Fatalf("m3u8 delta = %q, want 0", got)
	}
	if got := delta[classify.CategoryMP4].Format(); got != header.UnavailableLiteral {
		t.Fatalf("mp4 delta = %q, want %q", got, header.UnavailableLiteral)
	}
}

func TestRewriteShape(t *testing.T) {
	content := "https://x.com/a.m3u8\nhttps://x.com/b.mp4\n"
	delta := header.ComputeDelta(counts(1, 1, 0), counts(1, 0, 0))

	got := header.Rewrite(content, counts(1, 1, 0), delta, testTime)
	want := strings.Join([]string{
		"# STATS: Media Links Summary",
		"# Updated: 2026-03-14 09:26:53 (UTC+00)",
		"# M3U8: 1 (Change: 0)",
		"# MP4: 1 (Change: N/A)",
		"#==================================================",
		"",
		"https://x.com/a.m3u8",
		"https://x.com/b.mp4",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected rewrite output:\n%q\nwant:\n%q", got, want)
	}
}

func TestRewriteZoneLabel(t *testing.T) {
	zone := time.FixedZone("UTC+08", 8*60*60)
	got := header.Rewrite("x\n", counts(0, 0, 1), header.ComputeDelta(counts(0, 0, 1), nil), testTime.In(zone))
	if !strings.Contains(got, "(UTC+08)") {
		t.Fatalf("expected UTC+08 label in header:\n%s", got)
	}
}

func TestRewriteIsIdempotent(t *testing.T) {
	content := "#EXTM3U\nhttps://x.com/a.m3u8\n\nhttps://x.com/b.mp4\n"
	c := counts(1, 1, 0)
	delta := header.ComputeDelta(c, nil)

	first := header.Rewrite(content, c, delta, testTime)
	second := header.Rewrite(first, c, delta, testTime.Add(time.Hour))

	firstBody := strings.SplitN(first, "#==================================================\n\n", 2)[1]
	secondBody := strings.SplitN(second, "#==================================================\n\n", 2)[1]
	if firstBody != secondBody {
		t.Fatalf("body changed across rewrites:\n%q\nvs\n%q", firstBody, secondBody)
	}

	third := header.Rewrite(second, c, delta, testTime.Add(time.Hour))
	if third != second {
		t.Fatalf("rewrite with identical inputs not stable:\n%q\nvs\n%q", third, second)
	}
}

func TestStripRemovesMultiLineBlocks(t *testing.T) {
	content := strings.Join([]string{
		"# STATS: Media Links Summary",
		"# Updated: 2025-01-01 00:00:00 (UTC+00)",
		"# M3U8: 9 (Change: +1)",
		"# MP4: 0 (Change: 0)",
		"#==================================================",
		"",
		"#EXTM3U",
		"https://x.com/a.m3u8",
	}, "\n")

	got := header.Strip(content)
	want := "#EXTM3U\nhttps://x.com/a.m3u8"
	if got != want {
		t.Fatalf("Strip = %q, want %q", got, want)
	}
}

func TestStripMalformedHeaderWithoutBlankLine(t *testing.T) {
	// Partially migrated block: no blank separator before the body comment.
	// Everything up to the next blank line belongs to the stale block.
	content := "# STATS: Media Links Summary\n# M3U8: 2 (Change: 0)\n\nbody line\n"
	if got := header.Strip(content); got != "body line\n" {
		t.Fatalf("Strip = %q, want body preserved", got)
	}
}

func TestStripWithoutHeaderIsIdentity(t *testing.T) {
	content := "#EXTM3U\n# just a comment\nhttps://x.com/a.m3u8\n"
	if got := header.Strip(content); got != content {
		t.Fatalf("Strip modified headerless content: %q", got)
	}
}

func TestStripHeaderAtEOF(t *testing.T) {
	content := "# STATS: Media Links Summary\n# M3U8: 1 (Change: 0)"
	if got := header.Strip(content); got != "" {
		t.Fatalf("Strip = %q, want empty", got)
	}
}

func TestRewritePreservesCRLF(t *testing.T) {
	content := "#EXTM3U\r\nhttps://x.com/a.m3u8\r\n"
	c := counts(1, 0, 0)
	got := header.Rewrite(content, c, header.ComputeDelta(c, nil), testTime)

	if strings.Contains(strings.ReplaceAll(got, "\r\n", ""), "\n") {
		t.Fatalf("found bare LF in CRLF output: %q", got)
	}
	if !strings.HasPrefix(got, "# STATS: Media Links Summary\r\n") {
		t.Fatalf("header not CRLF terminated: %q", got)
	}
	if !strings.Contains(got, "https://x.com/a.m3u8\r\n") {
		t.Fatalf("body lost CRLF endings: %q", got)
	}
}
