package snapshot

import (
	"time"

	"playtally/internal/classify"
)

// Snapshot is the persisted record of a playlist's counts at the last run.
type Snapshot struct {
	FilePath  string
	Counts    classify.Counts
	UpdatedAt time.Time
	// Samples holds up to classify.SampleLimit matched lines per category.
	Samples map[classify.Category][]string
}

// sampleLinks is the JSON shape stored in the sample_links column.
type sampleLinks struct {
	M3U8 []string `json:"m3u8,omitempty"`
	MP4  []string `json:"mp4,omitempty"`
}

func samplesToLinks(samples map[classify.Category][]string) sampleLinks {
	links := sampleLinks{}
	if samples == nil {
		return links
	}
	links.M3U8 = clampSamples(samples[classify.CategoryM3U8])
	links.MP4 = clampSamples(samples[classify.CategoryMP4])
	return links
}

func (l sampleLinks) toSamples() map[classify.Category][]string {
	samples := map[classify.Category][]string{}
	if len(l.M3U8) > 0 {
		samples[classify.CategoryM3U8] = clampSamples(l.M3U8)
	}
	if len(l.MP4) > 0 {
		samples[classify.CategoryMP4] = clampSamples(l.MP4)
	}
	return samples
}

func clampSamples(lines []string) []string {
	if len(lines) <= classify.SampleLimit {
		return lines
	}
	return lines[:classify.SampleLimit]
}
