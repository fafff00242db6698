package classify

import (
	"regexp"
	"strings"
)

// Category names a media classification bucket.
type Category string

const (
	CategoryM3U8  Category = "m3u8"
	CategoryMP4   Category = "mp4"
	CategoryOther Category = "other"
)

// Categories lists every category in render order.
var Categories = []Category{CategoryM3U8, CategoryMP4, CategoryOther}

// SampleLimit bounds how many sample lines are retained per category.
const SampleLimit = 3

// Counts maps each category to the number of entry lines it matched.
type Counts map[Category]int

// Total returns the number of classified entry lines.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Result holds category counts plus bounded sample lines per category.
type Result struct {
	Counts  Counts
	Samples map[Category][]string
}

type matcher struct {
	category Category
	pattern  *regexp.Regexp
}

// Extension matches are anchored so ".m3u8" inside a longer token does not
// count; the extension must be followed by end of string, "?", or "/".
var matchers = []matcher{
	{CategoryM3U8, regexp.MustCompile(`(?i)\.m3u8($|[?/])`)},
	{CategoryMP4, regexp.MustCompile(`(?i)\.mp4($|[?/])`)},
}

// Classify counts entry lines per category. Blank lines and lines starting
// with "#" (after trimming) are skipped; matcher order is the tie-break, so
// a line is attributed to the first category whose pattern matches.
func Classify(content string) Result {
	result := Result{
		Counts:  Counts{},
		Samples: map[Category][]string{},
	}
	for _, cat := range Categories {
		result.Counts[cat] = 0
	}

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		category := CategoryOther
		for _, m := range matchers {
			if m.pattern.MatchString(line) {
				category = m.category
				break
			}
		}

		result.Counts[category]++
		if category != CategoryOther && len(result.Samples[category]) < SampleLimit {
			result.Samples[category] = append(result.Samples[category], line)
		}
	}

	return result
}
