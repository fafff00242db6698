package annotate

import (
	"time"

	"playtally/internal/classify"
	"playtally/internal/header"
)

// Status describes the outcome for one playlist file.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// FileResult records what happened to a single playlist during a run.
type FileResult struct {
	Path    string          `json:"path"`
	Status  Status          `json:"status"`
	Counts  classify.Counts `json:"counts,omitempty"`
	Delta   header.Delta    `json:"-"`
	Message string          `json:"message,omitempty"`
}

// Report aggregates the outcome of one run.
type Report struct {
	RunID   string          `json:"run_id"`
	Started time.Time       `json:"started"`
	Results []FileResult    `json:"results"`
	Totals  classify.Counts `json:"totals"`
}

func newReport(runID string, started time.Time) *Report {
	totals := classify.Counts{}
	for _, cat := range classify.Categories {
		totals[cat] = 0
	}
	return &Report{RunID: runID, Started: started, Totals: totals}
}

func (r *Report) addSuccess(path string, counts classify.Counts, delta header.Delta) {
	r.Results = append(r.Results, FileResult{Path: path, Status: StatusSuccess, Counts: counts, Delta: delta})
	for cat, n := range counts {
		r.Totals[cat] += n
	}
}

func (r *Report) addFailure(path string, err error) {
	r.Results = append(r.Results, FileResult{Path: path, Status: StatusFailed, Message: err.Error()})
}

// Successes counts files that were rewritten and snapshotted.
func (r *Report) Successes() int {
	count := 0
	for _, result := range r.Results {
		if result.Status == StatusSuccess {
			count++
		}
	}
	return count
}

// Failures returns the results for files that could not be processed.
func (r *Report) Failures() []FileResult {
	var failures []FileResult
	for _, result := range r.Results {
		if result.Status == StatusFailed {
			failures = append(failures, result)
		}
	}
	return failures
}
