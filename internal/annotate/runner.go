package annotate

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"playtally/internal/classify"
	"playtally/internal/config"
	"playtally/internal/fileutil"
	"playtally/internal/header"
	"playtally/internal/logging"
	"playtally/internal/scan"
	"playtally/internal/snapshot"
	"playtally/internal/textenc"
)

// Options tunes a single run.
type Options struct {
	// Force ignores stored snapshots for delta computation; every category
	// renders as unavailable. Fresh snapshots are still written at the end.
	Force bool
}

// Runner drives the per-file pipeline over discovered playlists.
type Runner struct {
	cfg    *config.Config
	store  *snapshot.Store
	logger *slog.Logger
}

// NewRunner wires a runner to its config, snapshot store, and logger.
func NewRunner(cfg *config.Config, store *snapshot.Store, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{cfg: cfg, store: store, logger: logger.With(slog.String(logging.FieldComponent, "annotate"))}
}

// Run discovers playlists under roots and processes each independently.
// Per-file failures land in the report; only lock acquisition, discovery
// errors, and context cancellation abort the run itself.
func (r *Runner) Run(ctx context.Context, roots []string, opts Options) (*Report, error) {
	if err := r.cfg.EnsureDirectories(); err != nil {
		return nil, Wrap(ErrIO, "run", "ensure directories", "", err)
	}

	lock := flock.New(r.cfg.RunLockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, Wrap(ErrLocked, "run", "acquire lock", r.cfg.RunLockPath(), err)
	}
	if !locked {
		return nil, Wrap(ErrLocked, "run", "acquire lock", "another playtally run is using "+r.cfg.Paths.StatsDir, nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, r.logger)

	files, err := scan.Find(roots, r.cfg, logger)
	if err != nil {
		return nil, Wrap(ErrIO, "run", "discover files", "", err)
	}

	report := newReport(runID, time.Now().In(r.cfg.Location()))
	logger.Info("run started", slog.Int("files", len(files)), slog.Bool("force", opts.Force))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		counts, delta, err := r.processFile(ctx, file, opts.Force)
		if err != nil {
			logger.Warn("file failed",
				slog.String(logging.FieldFile, file),
				slog.String("error", err.Error()))
			report.addFailure(file, err)
			continue
		}

		logger.Info("file annotated",
			slog.String(logging.FieldFile, file),
			slog.Int("entries", counts.Total()))
		report.addSuccess(file, counts, delta)
	}

	logger.Info("run finished",
		slog.Int("succeeded", report.Successes()),
		slog.Int("failed", len(report.Failures())))
	return report, nil
}

func (r *Runner) processFile(ctx context.Context, path string, force bool) (classify.Counts, header.Delta, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, Wrap(ErrIO, "annotate", "read file", "", err)
	}

	text, enc, err := textenc.Decode(raw, r.cfg.Encoding.Fallback)
	if err != nil {
		return nil, nil, Wrap(ErrDecode, "annotate", "decode file", "", err)
	}

	result := classify.Classify(text)

	var previous classify.Counts
	if !force {
		// Get fails soft on malformed records, so a corrupt snapshot just
		// means deltas render as unavailable.
		if snap, err := r.store.Get(ctx, path); err == nil && snap != nil {
			previous = snap.Counts
		}
	}
	delta := header.ComputeDelta(result.Counts, previous)

	now := time.Now().In(r.cfg.Location())
	rewritten := header.Rewrite(text, result.Counts, delta, now)

	encoded, err := enc.Encode(rewritten)
	if err != nil {
		return nil, nil, Wrap(ErrIO, "annotate", "encode content", enc.Name(), err)
	}
	if err := fileutil.WriteFileAtomic(path, encoded); err != nil {
		return nil, nil, Wrap(ErrIO, "annotate", "write file", "", err)
	}

	snap := &snapshot.Snapshot{
		FilePath:  path,
		Counts:    result.Counts,
		UpdatedAt: now,
		Samples:   result.Samples,
	}
	if err := r.store.Put(ctx, snap); err != nil {
		return nil, nil, Wrap(ErrStore, "annotate", "write snapshot", "", err)
	}

	return result.Counts, delta, nil
}
